package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sos-escalation-backend/internal/database/models"
	apperrors "sos-escalation-backend/internal/errors"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "sos:location:"

// RedisStore shares last reported fixes between service instances
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to the redis server at url (redis://host:port/db)
func NewRedisStore(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisStoreWithClient(client, ttl), nil
}

// NewRedisStoreWithClient wraps an existing client
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Report records the subject's latest fix
func (s *RedisStore) Report(ctx context.Context, subjectID string, loc models.Location) error {
	if err := validate(loc); err != nil {
		return err
	}
	if loc.Source == "" {
		loc.Source = "device"
	}

	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}
	return s.client.Set(ctx, redisKeyPrefix+subjectID, data, s.ttl).Err()
}

// CurrentLocation returns the last fix that has not expired
func (s *RedisStore) CurrentLocation(ctx context.Context, subjectID string) (models.Location, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+subjectID).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Location{}, apperrors.ErrLocationUnavailable
	}
	if err != nil {
		return models.Location{}, fmt.Errorf("read last known location: %w", err)
	}

	var loc models.Location
	if err := json.Unmarshal(data, &loc); err != nil {
		return models.Location{}, fmt.Errorf("failed to unmarshal location: %w", err)
	}
	return loc, nil
}

// Close releases the redis connection pool
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping checks the redis connection
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
