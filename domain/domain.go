package domain

import (
	"net"
	"strconv"
	"time"
)

// ServerKey identifies a registered game server: "host:port" of the announcing process.
type ServerKey string

// NewServerKey builds the key for host and port. IPv6 hosts are bracketed.
func NewServerKey(host string, port int) ServerKey {
	return ServerKey(net.JoinHostPort(host, strconv.Itoa(port)))
}

// ServerRecord represents one announced game server stored by the master server.
type ServerRecord struct {
	Key      ServerKey // unique identity, host:port
	Name     string    // display name, not unique
	Host     string    // peer address of the announcing connection
	Port     int       // game server listening port
	LastSeen time.Time // time of the latest active announce
}

// Announce is a validated announce request. Host always comes from the transport.
type Announce struct {
	Name   string
	Host   string
	Port   int
	Active bool
}

// Key returns the identity of the server the announce refers to.
func (a Announce) Key() ServerKey {
	return NewServerKey(a.Host, a.Port)
}

// Record builds the record stored for an active announce seen at now.
func (a Announce) Record(now time.Time) ServerRecord {
	return ServerRecord{
		Key:      a.Key(),
		Name:     a.Name,
		Host:     a.Host,
		Port:     a.Port,
		LastSeen: now,
	}
}
