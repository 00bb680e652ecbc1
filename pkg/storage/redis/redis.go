// Package redis implements storage.TokenCache on top of go-redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campaigner/pkg/storage"

	goredis "github.com/redis/go-redis/v9"
)

// Options configures the redis client. Addr accepts either host:port or a
// redis:// URL; a URL wins over the other connection fields.
type Options struct {
	Addr      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
}

// Redis is a key/value cache with per-key expiry.
type Redis struct {
	Client *goredis.Client
	prefix string
}

var _ storage.TokenCache = (*Redis)(nil)

// New connects and pings the server.
func New(ctx context.Context, opts Options) (*Redis, error) {
	var redisOpts *goredis.Options
	if strings.HasPrefix(opts.Addr, "redis://") || strings.HasPrefix(opts.Addr, "rediss://") {
		parsed, err := goredis.ParseURL(opts.Addr)
		if err != nil {
			return nil, fmt.Errorf("could not parse redis url: %w", err)
		}
		redisOpts = parsed
	} else {
		redisOpts = &goredis.Options{
			Addr:     opts.Addr,
			Username: opts.Username,
			Password: opts.Password,
			DB:       opts.DB,
		}
	}

	client := goredis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return &Redis{Client: client, prefix: opts.KeyPrefix}, nil
}

func (r *Redis) key(k string) string {
	return r.prefix + k
}

func (r *Redis) Token(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.Client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not get token from redis: %w", err)
	}

	return b, true, nil
}

func (r *Redis) StoreToken(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.Client.Set(ctx, r.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("could not store token in redis: %w", err)
	}

	return nil
}

// Ping checks that the server is reachable.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("could not ping redis: %w", err)
	}

	return nil
}

func (r *Redis) Close() error {
	if err := r.Client.Close(); err != nil {
		return fmt.Errorf("could not close redis client: %w", err)
	}

	return nil
}
