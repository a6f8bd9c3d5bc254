package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rpgo/wealth-planner/internal/domain"
)

const (
	snapshotNamespace = "plan:"
	scanBatch         = 100
	retryInterval     = 200 * time.Millisecond
)

// RedisStore keeps snapshots as JSON strings under <prefix>plan:<name>.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	logger *zap.Logger
}

// NewRedisStore creates a store for the server at addr. It does not connect until first use.
func NewRedisStore(addr, prefix string, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 2 * time.Second,
	})
	return NewRedisStoreWithClient(client, prefix, logger)
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client redis.UniversalClient, prefix string, logger *zap.Logger) *RedisStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisStore{client: client, prefix: prefix, logger: logger}
}

// Connect pings the server, retrying with exponential backoff up to retries extra attempts.
func (r *RedisStore) Connect(ctx context.Context, retries int) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = retryInterval
	policy.MaxInterval = retryInterval * 10

	notify := func(err error, d time.Duration) {
		r.logger.Warn("redis ping failed, retrying", zap.Error(err), zap.Duration("backoff", d))
	}
	operation := func() (string, error) {
		return r.client.Ping(ctx).Result()
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(policy),
		backoff.WithMaxTries(uint(retries+1)),
		backoff.WithNotify(notify))
	if err != nil {
		r.logger.Error("redis unavailable", zap.Error(err))
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	r.logger.Debug("redis connected")
	return nil
}

func (r *RedisStore) key(name string) string {
	return r.prefix + snapshotNamespace + name
}

func (r *RedisStore) Save(ctx context.Context, name string, cfg *domain.Configuration) error {
	if err := validateName(name); err != nil {
		return err
	}
	data, err := encode(cfg)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", name, err)
	}
	r.logger.Debug("snapshot saved", zap.String("name", name), zap.Int("bytes", len(data)))
	return nil
}

func (r *RedisStore) Load(ctx context.Context, name string) (*domain.Configuration, error) {
	data, err := r.client.Get(ctx, r.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot %s: %w", name, err)
	}
	return decode(data)
}

func (r *RedisStore) Delete(ctx context.Context, name string) error {
	n, err := r.client.Del(ctx, r.key(name)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

func (r *RedisStore) List(ctx context.Context) ([]string, error) {
	base := r.prefix + snapshotNamespace
	seen := make(map[string]bool)
	var names []string
	// SCAN may return a key more than once
	iter := r.client.Scan(ctx, 0, base+"*", scanBatch).Iterator()
	for iter.Next(ctx) {
		name := strings.TrimPrefix(iter.Val(), base)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

func (r *RedisStore) Close() error { return r.client.Close() }
