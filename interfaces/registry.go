package interfaces

import (
	"context"

	"masterserver/domain"
)

// Registry represents the store of currently announced game servers.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// Upsert inserts or replaces the record stored at record.Key.
	// Returns:
	// 1) nil on success (always for the in-memory registry);
	// 2) internal_server_error when a remote backend write fails.
	Upsert(ctx context.Context, record domain.ServerRecord) error

	// Remove deletes the record stored at key. Removing an absent key is a no-op.
	// Returns:
	// 1) nil on success or when the key is absent;
	// 2) internal_server_error when a remote backend delete fails.
	Remove(ctx context.Context, key domain.ServerKey) error

	// Snapshot returns an independent copy of all live records.
	// Returns:
	// 1) (records, nil), records is empty (never nil) for an empty registry;
	// 2) (nil, internal_server_error) when a remote backend read fails.
	Snapshot(ctx context.Context) ([]domain.ServerRecord, error)
}
