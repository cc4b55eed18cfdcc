package service

import (
	"time"

	"masterserver/interfaces"
)

// timeProvider implements interfaces.TimeProvider via the injected now func.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given now func. Panics on nil now.
// Built in cmd/masterserver with time.Now().UTC; tests pass a fixed or stepped clock.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: NilPanic(now, "service.time_provider.go: now is required")}
}

// Now returns current time from the injected function.
func (t *timeProvider) Now() time.Time {
	return t.now()
}
