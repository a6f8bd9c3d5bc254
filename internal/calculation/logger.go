package calculation

import (
	"context"
	"fmt"
	"time"
)

// Logger receives engine progress messages. *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards everything. It is the engine default.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// section wraps one report section for the engine's errgroup. It stops early on a
// cancelled context, prefixes errors with the section name and, in debug mode,
// logs how long the section took.
func (pe *ProjectionEngine) section(ctx context.Context, name string, fn func() error) func() error {
	return func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		if err := fn(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if pe.Debug {
			pe.Logger.Debugf("section %s done in %s", name, time.Since(start))
		}
		return nil
	}
}
