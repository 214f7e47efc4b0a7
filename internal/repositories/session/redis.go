package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/errors"
	redisclient "github.com/KirkDiggler/skill-roller/internal/redis"
)

const (
	// Key pattern: skillcheck_session:{id}
	sessionKeyPrefix = "skillcheck_session:"

	// DefaultTTL is how long an idle session lives
	DefaultTTL = 12 * time.Hour
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client

	// TTL is refreshed on every write. Defaults to DefaultTTL.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis repository for sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new session with the configured TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	created, err := r.client.SetNX(ctx, buildKey(input.Session.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store session in Redis")
	}
	if !created {
		return nil, errors.AlreadyExists("session already exists").WithMeta("session_id", input.Session.ID)
	}

	return &CreateOutput{Session: input.Session}, nil
}

// Get retrieves a session by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDNil)
	}

	data, err := r.client.Get(ctx, buildKey(input.ID)).Bytes()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("session %s not found", input.ID)
		}
		return nil, errors.Wrap(err, "failed to get session from Redis")
	}

	var s sheet.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}

	return &GetOutput{Session: &s}, nil
}

// Update overwrites an existing session and refreshes its TTL
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	updated, err := r.client.SetXX(ctx, buildKey(input.Session.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to update session in Redis")
	}
	if !updated {
		return nil, errors.NotFoundf("session %s not found", input.Session.ID)
	}

	return &UpdateOutput{Session: input.Session}, nil
}

// Delete removes a session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDNil)
	}

	removed, err := r.client.Del(ctx, buildKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete session from Redis")
	}
	if removed == 0 {
		return nil, errors.NotFoundf("session %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func validateSession(s *sheet.Session) error {
	if s == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if s.ID == "" {
		return errors.InvalidArgument(errSessionIDNil)
	}
	return nil
}

// buildKey creates the Redis key for a session
func buildKey(id string) string {
	return sessionKeyPrefix + id
}
