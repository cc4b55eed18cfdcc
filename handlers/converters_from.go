package handlers

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"

	"masterserver/domain"
	"masterserver/service"
)

// fromAnnounceParams converts AnnounceParams and the caller's host to domain.Announce.
// Returns service.BadParameterError on validation failure.
func fromAnnounceParams(params AnnounceParams, host string) (domain.Announce, error) {
	name := service.Value(params.Name)
	if strings.TrimSpace(name) == "" {
		return domain.Announce{}, service.NewBadParameterError("name is required", nil)
	}

	if params.Port == nil {
		return domain.Announce{}, service.NewBadParameterError("port is required", nil)
	}
	port, err := strconv.Atoi(*params.Port)
	if err != nil {
		return domain.Announce{}, service.NewBadParameterError("port must be an integer", err)
	}
	if port < 1 || port > 65535 {
		return domain.Announce{}, service.NewBadParameterError("port must be between 1 and 65535", nil)
	}

	if params.Active == nil {
		return domain.Announce{}, service.NewBadParameterError("active is required", nil)
	}
	active, err := parseActive(*params.Active)
	if err != nil {
		return domain.Announce{}, err
	}

	return domain.Announce{
		Name:   name,
		Host:   host,
		Port:   port,
		Active: active,
	}, nil
}

// parseActive accepts the Python literals the legacy game servers send and their lowercase forms.
func parseActive(v string) (bool, error) {
	switch v {
	case "True", "true":
		return true, nil
	case "False", "false":
		return false, nil
	default:
		return false, service.NewBadParameterError("active must be True or False", fmt.Errorf("unrecognized token %q", v))
	}
}

// peerHost returns the IP literal of the connection's remote address.
// IPv4-mapped IPv6 addresses are reported as dotted quads and zones are dropped,
// so a server always gets the same key.
func peerHost(remoteAddr string) (string, error) {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return "", service.NewBadParameterError("cannot determine caller address", err)
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return "", service.NewBadParameterError("cannot determine caller address", err)
	}
	return addr.Unmap().WithZone("").String(), nil
}
