package session

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/errors"
	redisclient "github.com/KirkDiggler/skill-roller/internal/redis"
)

// Sweeper finds stored sessions that can no longer be loaded, for example
// snapshots written by an older build, and removes them
type Sweeper struct {
	client redisclient.Client
}

// NewSweeper creates a sweeper over the session keyspace
func NewSweeper(client redisclient.Client) (*Sweeper, error) {
	if client == nil {
		return nil, errors.InvalidArgument("redis client is required")
	}
	return &Sweeper{client: client}, nil
}

// ScanOutput reports one pass over the keyspace
type ScanOutput struct {
	Checked int
	// Corrupt maps session IDs to why they were rejected
	Corrupt map[string]string
}

// Scan reads every session snapshot and reports the broken ones
func (s *Sweeper) Scan(ctx context.Context) (*ScanOutput, error) {
	out := &ScanOutput{Corrupt: make(map[string]string)}

	iter := s.client.Scan(ctx, 0, sessionKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id := strings.TrimPrefix(key, sessionKeyPrefix)

		data, err := s.client.Get(ctx, key).Bytes()
		if errors.Is(err, redisclient.Nil) {
			// expired between SCAN and GET
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", key)
		}
		out.Checked++

		if reason := checkSnapshot(id, data); reason != "" {
			out.Corrupt[id] = reason
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan sessions")
	}

	return out, nil
}

// Purge deletes the given sessions and returns how many were removed
func (s *Sweeper) Purge(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = buildKey(id)
	}

	deleted, err := s.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete sessions")
	}
	return int(deleted), nil
}

// checkSnapshot returns why a stored snapshot is unusable, empty when fine
func checkSnapshot(id string, data []byte) string {
	var s sheet.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return "invalid JSON"
	}
	if s.ID != id {
		return "id does not match key"
	}
	if len(s.Attributes) != len(sheet.AllAttributes()) {
		return "incomplete attribute list"
	}
	for _, name := range sheet.AllAttributes() {
		if s.Attribute(name) == nil {
			return "missing attribute " + string(name)
		}
	}
	return ""
}
