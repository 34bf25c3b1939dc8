// file: internal/database/metrics.go
package database

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const slowQueryThreshold = 100 * time.Millisecond

// Metrics tracks query counters for the stats endpoint.
type Metrics struct {
	mu            sync.Mutex
	logger        *zap.Logger
	totalQueries  int64
	failedQueries int64
	slowQueries   int64
	totalDuration time.Duration
}

// NewMetrics creates a metrics recorder
func NewMetrics(logger *zap.Logger) *Metrics {
	return &Metrics{logger: logger}
}

// RecordQuery records one query execution
func (m *Metrics) RecordQuery(duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalQueries++
	m.totalDuration += duration
	if err != nil {
		m.failedQueries++
	}
	if duration > slowQueryThreshold {
		m.slowQueries++
	}
}

// Snapshot returns the current counters
func (m *Metrics) Snapshot() map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	avg := time.Duration(0)
	if m.totalQueries > 0 {
		avg = m.totalDuration / time.Duration(m.totalQueries)
	}
	return map[string]interface{}{
		"total_queries":  m.totalQueries,
		"failed_queries": m.failedQueries,
		"slow_queries":   m.slowQueries,
		"avg_duration":   avg.String(),
	}
}
