package rediscache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewClient — клиент Redis с проверкой соединения (fail-fast, как и у Postgres).
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
