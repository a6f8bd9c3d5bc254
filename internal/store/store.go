// Package store keeps named plan snapshots so a plan can be saved once and
// projected again later. Snapshots live in memory or in Redis.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/domain"
)

var (
	// ErrNotFound is returned when no snapshot exists under a name.
	ErrNotFound = errors.New("snapshot not found")
	// ErrInvalidName is returned for empty names or names containing whitespace or glob characters.
	ErrInvalidName = errors.New("invalid snapshot name")
)

// SnapshotStore saves and restores plan configurations by name.
type SnapshotStore interface {
	Save(ctx context.Context, name string, cfg *domain.Configuration) error
	Load(ctx context.Context, name string) (*domain.Configuration, error)
	Delete(ctx context.Context, name string) error
	// List returns the stored names in ascending order.
	List(ctx context.Context) ([]string, error)
	Close() error
}

// New builds the store selected by the settings. The redis backend is pinged before it is returned.
func New(ctx context.Context, settings config.StoreSettings, logger *zap.Logger) (SnapshotStore, error) {
	switch settings.Backend {
	case "", "memory":
		return NewMemoryStore(), nil
	case "redis":
		s := NewRedisStore(settings.RedisAddr, settings.KeyPrefix, logger)
		if err := s.Connect(ctx, settings.Retries); err != nil {
			_ = s.Close()
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", settings.Backend)
	}
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, " \t\r\n*?[]") {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func encode(cfg *domain.Configuration) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*domain.Configuration, error) {
	var cfg domain.Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &cfg, nil
}
