package interfaces

import (
	"context"

	"masterserver/domain"
)

// MasterServer is the announcing side's view of the master server.
//
// Implemented by masterclient.MasterServerHTTP. Used by cmd/mastercli.
//
//go:generate moq -stub -out mock/master_server.go -pkg mock . MasterServer
type MasterServer interface {
	// Announce registers (active=true) or withdraws (active=false) the game server listening on port.
	// The master server derives the host from the connection.
	// Returns: nil on 200; error on request error or non-200 response.
	Announce(ctx context.Context, name string, port int, active bool) error

	// ListServers returns the servers currently listed by the master server.
	// Returns: (records, nil) on 200, possibly empty; (nil, error) on network, status or decode error.
	// Only Name, Host, Port and Key are populated.
	ListServers(ctx context.Context) ([]domain.ServerRecord, error)
}
