package redis

import (
	"context"
	"errors"
	"log/slog"

	"propertyHub/internal/storage"

	"github.com/redis/go-redis/v9"
)

type Options struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore keeps the session record in redis. Keys carry no TTL: expiry is
// decided by the session gate from the record's own timestamp.
type RedisStore struct {
	Client *redis.Client
}

func New(ctx context.Context, opts Options) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisStore{Client: client}, nil
}

func NewForTest(ctx context.Context) (*RedisStore, error) {
	return New(ctx, Options{Addr: "localhost:6379"})
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, error) {
	data, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ``, storage.ErrNotFound
	}

	if err != nil {
		slog.Error("Failed to get key from redis", "key", key, slog.Any("err", err))
		return ``, err
	}

	return data, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, value string) error {
	if err := r.Client.Set(ctx, key, value, 0).Err(); err != nil {
		slog.Error("Failed to set key in redis", "key", key, slog.Any("err", err))
		return err
	}

	slog.Debug("Successfully stored key", "key", key)

	return nil
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	if err := r.Client.Del(ctx, key).Err(); err != nil {
		slog.Error("Error deleting key", "key", key, slog.Any("err", err))
		return err
	}

	return nil
}

func (r *RedisStore) Close() error {
	return r.Client.Close()
}
