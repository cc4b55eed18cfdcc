package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"masterserver/domain"
	"masterserver/service"

	"github.com/go-redis/redis/v8"
)

const scanCount = 100

// storedRecord is the JSON value kept under <prefix>:<key>.
type storedRecord struct {
	Name     string    `json:"name"`
	Host     string    `json:"host"`
	Port     int       `json:"port"`
	LastSeen time.Time `json:"last_seen"`
}

// Registry is a redis implementation of interfaces.Registry. Every entry carries the
// liveness window as its redis TTL, so stale servers are expired by redis itself.
type Registry struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRegistry creates a redis backed registry. A zero ttl stores entries without expiry.
func NewRegistry(client redis.UniversalClient, prefix string, ttl time.Duration) *Registry {
	return &Registry{
		client: service.NilPanic(client, "myredis.registry.go: redis client is required"),
		prefix: service.StrPanic(prefix, "myredis.registry.go: key prefix is required"),
		ttl:    ttl,
	}
}

func (r *Registry) Upsert(ctx context.Context, record domain.ServerRecord) error {
	bytes, err := json.Marshal(storedRecord{
		Name:     record.Name,
		Host:     record.Host,
		Port:     record.Port,
		LastSeen: record.LastSeen,
	})
	if err != nil {
		return service.NewInternalServerError("Redis marshal record error", fmt.Errorf("can't marshal record (key='%s'), err: %w", record.Key, err))
	}

	if err := r.client.Set(ctx, r.generateKey(record.Key), bytes, r.ttl).Err(); err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write record to redis (key='%s'), err: %w", record.Key, err))
	}
	return nil
}

// Remove deletes the key; DEL of a missing key is not an error.
func (r *Registry) Remove(ctx context.Context, key domain.ServerKey) error {
	if err := r.client.Del(ctx, r.generateKey(key)).Err(); err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete record from redis (key='%s'), err: %w", key, err))
	}
	return nil
}

// Snapshot scans all keys under the prefix then fetches their values.
// Keys that vanish between SCAN and GET, and unreadable values, are skipped.
func (r *Registry) Snapshot(ctx context.Context) ([]domain.ServerRecord, error) {
	var fullKeys []string
	iter := r.client.Scan(ctx, 0, r.prefix+":*", scanCount).Iterator()
	for iter.Next(ctx) {
		fullKeys = append(fullKeys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, service.NewInternalServerError("Redis scan keys error", fmt.Errorf("redis scan keys error, err: %w", err))
	}

	records := make([]domain.ServerRecord, 0, len(fullKeys))
	seen := make(map[domain.ServerKey]struct{}, len(fullKeys))
	for _, fullKey := range fullKeys {
		bytes, err := r.client.Get(ctx, fullKey).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read record from redis (key='%s'), err: %w", fullKey, err))
		}

		var stored storedRecord
		if err := json.Unmarshal(bytes, &stored); err != nil {
			continue
		}
		key := domain.NewServerKey(stored.Host, stored.Port)
		// SCAN may return a key more than once.
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		records = append(records, domain.ServerRecord{
			Key:      key,
			Name:     stored.Name,
			Host:     stored.Host,
			Port:     stored.Port,
			LastSeen: stored.LastSeen,
		})
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Key < records[j].Key })
	return records, nil
}

func (r *Registry) generateKey(key domain.ServerKey) string {
	return r.prefix + ":" + string(key)
}
