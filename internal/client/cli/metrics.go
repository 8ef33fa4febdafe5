package cli

import (
	"sync"

	"go.uber.org/zap"
)

// Metrics is a minimal in-process counter set satisfying
// recovery.MetricsCollector, enough for a CLI process that exits after one
// command — no exporter; each recorded panic is logged with the running
// total.
type Metrics struct {
	mu     sync.Mutex
	panics int
	logger *zap.Logger
}

// NewMetrics returns a Metrics that logs a line through logger every time a
// panic is recorded.
func NewMetrics(logger *zap.Logger) *Metrics {
	return &Metrics{logger: logger}
}

// RecordPanic implements recovery.MetricsCollector.
func (m *Metrics) RecordPanic(location string, panicValue interface{}) {
	m.mu.Lock()
	m.panics++
	m.logger.Warn("recorded panic",
		zap.String("location", location),
		zap.Any("panic", panicValue),
		zap.Int("total_panics", m.panics),
	)
	m.mu.Unlock()
}

// PanicCount returns the number of panics recorded so far.
func (m *Metrics) PanicCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.panics
}
