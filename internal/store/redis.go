package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key pattern: level:{id}
	levelKeyPrefix = "level:"
	defaultTTL     = 2 * time.Hour
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redis.UniversalClient
	TTL    time.Duration    // Default level lifetime (0 = 2h)
	Now    func() time.Time // Clock (nil = time.Now)
	NewID  func() string    // ID source (nil = random UUID)
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return fmt.Errorf("%w: redis client is required", ErrInvalidInput)
	}
	if c.TTL < 0 {
		return fmt.Errorf("%w: ttl must not be negative", ErrInvalidInput)
	}
	return nil
}

type redisRepository struct {
	client redis.UniversalClient
	ttl    time.Duration
	now    func() time.Time
	newID  func() string
}

// NewRedisRepository creates a new Redis repository for levels
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	r := &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
		now:    cfg.Now,
		newID:  cfg.NewID,
	}
	if r.ttl == 0 {
		r.ttl = defaultTTL
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.newID == nil {
		r.newID = func() string { return uuid.NewString() }
	}
	return r, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save stores the level with its TTL
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Result == nil {
		return nil, fmt.Errorf("%w: result cannot be nil", ErrInvalidInput)
	}
	if input.TTL < 0 {
		return nil, fmt.Errorf("%w: ttl must not be negative", ErrInvalidInput)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}
	now := r.now()
	level := &Level{
		ID:        r.newID(),
		Result:    input.Result,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	data, err := json.Marshal(level)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal level: %w", err)
	}
	if err := r.client.Set(ctx, r.buildKey(level.ID), data, ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store level in Redis: %w", err)
	}

	return &SaveOutput{Level: level}, nil
}

// Get retrieves a level by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, fmt.Errorf("%w: level ID cannot be empty", ErrInvalidInput)
	}

	data, err := r.client.Get(ctx, r.buildKey(input.ID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, input.ID)
		}
		return nil, fmt.Errorf("failed to get level from Redis: %w", err)
	}

	var level Level
	if err := json.Unmarshal(data, &level); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	return &GetOutput{Level: &level}, nil
}

// Delete removes a level
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) error {
	if input.ID == "" {
		return fmt.Errorf("%w: level ID cannot be empty", ErrInvalidInput)
	}
	if err := r.client.Del(ctx, r.buildKey(input.ID)).Err(); err != nil {
		return fmt.Errorf("failed to delete level from Redis: %w", err)
	}
	return nil
}

// buildKey creates the Redis key for a level
func (r *redisRepository) buildKey(id string) string {
	return levelKeyPrefix + id
}
