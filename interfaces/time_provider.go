package interfaces

import "time"

// TimeProvider supplies the current time for liveness stamps and expiry checks.
// Injected so tests can use a fixed clock instead of time.Now().
type TimeProvider interface {
	// Now returns current time (UTC in prod, fixed or stepped in tests).
	Now() time.Time
}
