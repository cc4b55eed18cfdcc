// Package memory contains the in-process registry of announced game servers.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"masterserver/domain"
	"masterserver/interfaces"
	"masterserver/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type entry struct {
	record    domain.ServerRecord
	expiresAt time.Time // zero when expiry is disabled
}

// Registry is a concurrency-safe in-memory interfaces.Registry.
// A record expires when it has not been refreshed within the liveness window;
// a zero window disables expiry.
type Registry struct {
	mu      sync.RWMutex
	records map[domain.ServerKey]entry

	ttl    time.Duration
	clock  interfaces.TimeProvider
	logger log.Logger
}

// NewRegistry creates an empty registry. Panics on nil clock or logger.
func NewRegistry(ttl time.Duration, clock interfaces.TimeProvider, logger log.Logger) *Registry {
	logger = service.NilPanic(logger, "memory.registry.go: logger is required")
	return &Registry{
		records: make(map[domain.ServerKey]entry),
		ttl:     ttl,
		clock:   service.NilPanic(clock, "memory.registry.go: clock is required"),
		logger:  log.WithPrefix(logger, "component", "MemoryRegistry"),
	}
}

// Upsert never fails.
func (r *Registry) Upsert(_ context.Context, record domain.ServerRecord) error {
	e := entry{record: record}
	if r.ttl > 0 {
		e.expiresAt = r.clock.Now().Add(r.ttl)
	}

	r.mu.Lock()
	r.records[record.Key] = e
	r.mu.Unlock()
	return nil
}

func (r *Registry) Remove(_ context.Context, key domain.ServerKey) error {
	r.mu.Lock()
	delete(r.records, key)
	r.mu.Unlock()
	return nil
}

// Snapshot returns live records sorted by key. Expired records are skipped even if
// the sweeper has not removed them yet.
func (r *Registry) Snapshot(_ context.Context) ([]domain.ServerRecord, error) {
	now := r.clock.Now()

	r.mu.RLock()
	out := make([]domain.ServerRecord, 0, len(r.records))
	for _, e := range r.records {
		if e.expired(now) {
			continue
		}
		out = append(out, e.record)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Len returns the number of stored records, expired ones included until swept.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

// Sweep deletes expired records and returns how many were removed.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	now := r.clock.Now()

	var evicted []domain.ServerRecord
	r.mu.Lock()
	for key, e := range r.records {
		if e.expired(now) {
			evicted = append(evicted, e.record)
			delete(r.records, key)
		}
	}
	r.mu.Unlock()

	for _, rec := range evicted {
		level.Info(r.logger).Log(
			"msg", "Game server expired",
			"key", rec.Key,
			"name", rec.Name,
			"last_seen", rec.LastSeen,
		)
	}
	return len(evicted)
}

// Run sweeps expired records every interval until ctx is done.
// Does nothing when expiry is disabled or interval is not positive.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if r.ttl <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}
