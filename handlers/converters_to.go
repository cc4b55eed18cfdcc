package handlers

import (
	"masterserver/domain"
)

// toServerListResponse converts domain records to the listing; never nil so an empty registry encodes as [].
func toServerListResponse(records []domain.ServerRecord) ServerListResponse {
	out := make(ServerListResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ServerInfo{
			Name: r.Name,
			Host: r.Host,
			Port: r.Port,
		})
	}
	return out
}
