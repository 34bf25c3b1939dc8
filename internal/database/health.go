// file: internal/database/health.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// WaitForHealthy blocks until the database answers a ping, retrying
// with exponential backoff. Used at startup when the database container
// may still be coming up.
func (m *Manager) WaitForHealthy(ctx context.Context, maxWait time.Duration) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxInterval = 5 * time.Second
	policy.MaxElapsedTime = maxWait

	attempt := 0
	operation := func() error {
		attempt++
		if err := m.Health(ctx); err != nil {
			m.logger.Warn("Database not ready yet",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return err
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(policy, ctx)); err != nil {
		return fmt.Errorf("database did not become healthy within %s: %w", maxWait, err)
	}

	m.logger.Info("Database is healthy", zap.Int("attempts", attempt))
	return nil
}

// StartHealthMonitor pings the database on an interval until ctx is
// cancelled, logging state changes.
func (m *Manager) StartHealthMonitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		healthy := true
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				err := m.Health(ctx)
				if err != nil && healthy {
					healthy = false
					m.logger.Error("Database health check failed", zap.Error(err))
				} else if err == nil && !healthy {
					healthy = true
					m.logger.Info("Database health restored")
				}
			}
		}
	}()
}
