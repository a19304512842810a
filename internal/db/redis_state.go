package db

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/terraincognita07/medlifequest/internal/kv"
)

const defaultRedisKeyPrefix = "medlifequest:"

type RedisOptions struct {
	Address   string
	Password  string
	DB        int
	Timeout   time.Duration
	KeyPrefix string
}

// RedisStateStore keeps user state slots as plain Redis string keys. It
// satisfies kv.Store.
type RedisStateStore struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

func OpenRedis(options RedisOptions) (*RedisStateStore, error) {
	if options.Address == "" {
		return nil, errors.New("redis address is required")
	}
	if options.Timeout <= 0 {
		options.Timeout = 3 * time.Second
	}
	if options.KeyPrefix == "" {
		options.KeyPrefix = defaultRedisKeyPrefix
	}

	client := redis.NewClient(&redis.Options{
		Addr:         options.Address,
		Password:     options.Password,
		DB:           options.DB,
		DialTimeout:  options.Timeout,
		ReadTimeout:  options.Timeout,
		WriteTimeout: options.Timeout,
	})

	store := &RedisStateStore{client: client, prefix: options.KeyPrefix, timeout: options.Timeout}
	ctx, cancel := store.context()
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", options.Address, err)
	}
	return store, nil
}

func (store *RedisStateStore) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), store.timeout)
}

func (store *RedisStateStore) Get(key string) ([]byte, error) {
	ctx, cancel := store.context()
	defer cancel()

	value, err := store.client.Get(ctx, store.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, kv.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (store *RedisStateStore) Set(key string, value []byte) error {
	ctx, cancel := store.context()
	defer cancel()
	return store.client.Set(ctx, store.prefix+key, value, 0).Err()
}

func (store *RedisStateStore) Delete(key string) error {
	ctx, cancel := store.context()
	defer cancel()
	return store.client.Del(ctx, store.prefix+key).Err()
}

// Keys scans for slots under the store prefix and returns them unprefixed.
func (store *RedisStateStore) Keys() ([]string, error) {
	ctx, cancel := store.context()
	defer cancel()

	keys := make([]string, 0)
	iter := store.client.Scan(ctx, 0, store.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), store.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	slices.Sort(keys)
	return keys, nil
}

func (store *RedisStateStore) Close() error {
	return store.client.Close()
}
