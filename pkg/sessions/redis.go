package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"rightimage-site/pkg/wizard"
)

const keyPrefix = "wizard:"

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore keeps sessions in Redis so several site instances can share
// them. Values expire with the key TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig, ttl time.Duration, logger zerolog.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Info().
		Str("addr", cfg.Addr).
		Int("db", cfg.DB).
		Msg("connected to Redis session store")

	return newRedisStore(client, ttl, logger), nil
}

func newRedisStore(client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*wizard.State, error) {
	val, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var state wizard.State
	if err := json.Unmarshal(val, &state); err != nil {
		s.logger.Warn().Err(err).Str("session", id).Msg("dropping undecodable session")
		return nil, ErrNotFound
	}
	return &state, nil
}

func (s *RedisStore) Save(ctx context.Context, state *wizard.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+state.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

// HealthCheck pings Redis.
func (s *RedisStore) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
