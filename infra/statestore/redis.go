package statestore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/kilianp07/chargeslot/core/state"
)

// RedisConfig configures a RedisStore.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	// Key holds the encoded state. Defaults to "station:<station id>:state".
	Key string `json:"key"`
}

// RedisStore keeps the encoded station state under a single Redis key.
// The key derives from the configured station id and never follows the
// stationId stored in the data, so a station whose state file names another
// id keeps reading and writing the same key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a store for the configured station id.
func NewRedisStore(cfg RedisConfig, stationID string) *RedisStore {
	if cfg.Addr == "" {
		cfg.Addr = "localhost:6379"
	}
	key := cfg.Key
	if key == "" {
		key = fmt.Sprintf("station:%s:state", stationID)
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisStore{client: rdb, key: key}
}

func (s *RedisStore) Save(ctx context.Context, snap state.Snapshot) error {
	var sb strings.Builder
	if err := state.Encode(&sb, snap); err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, sb.String(), 0).Err()
}

func (s *RedisStore) Load(ctx context.Context) (state.Snapshot, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return state.Snapshot{}, state.ErrNoState
	}
	if err != nil {
		return state.Snapshot{}, err
	}
	return state.Decode(strings.NewReader(val))
}

// Close releases the Redis connection pool.
func (s *RedisStore) Close() error { return s.client.Close() }
