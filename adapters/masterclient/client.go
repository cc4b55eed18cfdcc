// Package masterclient is the announcing side of the master server protocol.
package masterclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"masterserver/domain"
	"masterserver/interfaces"
	"masterserver/service"
)

// MasterServerHTTP creates an interfaces.MasterServer that talks to the master server over HTTP:
// POST baseURL/?name=&port=&active= and GET baseURL/. Panics on empty baseURL or nil client.
//
// The client's Timeout bounds each request; callers may pass shorter deadlines through ctx.
func MasterServerHTTP(baseURL string, client *http.Client) interfaces.MasterServer {
	return &masterServerHTTP{
		baseURL: strings.TrimRight(service.StrPanic(baseURL, "masterclient.client.go: baseURL is required"), "/"),
		client:  service.NilPanic(client, "masterclient.client.go: http client is required"),
	}
}

type masterServerHTTP struct {
	baseURL string
	client  *http.Client
}

// serverInfo is one element of the GET / JSON array.
type serverInfo struct {
	Name string `json:"name"`
	Host string `json:"host"`
	Port int    `json:"port"`
}

// Announce performs POST baseURL/?active=..&name=..&port=.. The active flag is sent as the
// True/False literal every master server revision understands.
func (m *masterServerHTTP) Announce(ctx context.Context, name string, port int, active bool) error {
	query := url.Values{}
	query.Set("name", name)
	query.Set("port", strconv.Itoa(port))
	query.Set("active", activeLiteral(active))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("master server announce returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// ListServers performs GET baseURL/ and decodes the JSON array.
func (m *masterServerHTTP) ListServers(ctx context.Context) ([]domain.ServerRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/", nil)
	if err != nil {
		return nil, err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("master server list returned %d", resp.StatusCode)
	}

	var raw []serverInfo
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode master server listing: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("master server listing is not an array")
	}

	out := make([]domain.ServerRecord, 0, len(raw))
	for _, r := range raw {
		out = append(out, domain.ServerRecord{
			Key:  domain.NewServerKey(r.Host, r.Port),
			Name: r.Name,
			Host: r.Host,
			Port: r.Port,
		})
	}
	return out, nil
}

func activeLiteral(active bool) string {
	if active {
		return "True"
	}
	return "False"
}
