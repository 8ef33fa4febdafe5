// Package recovery contains the panic-containment helpers hpackctl wraps
// around each goroutine and command handler: a malformed header file or a
// pathological header value shouldn't be able to bring down anything beyond
// the operation that hit it.
package recovery

import (
	"runtime/debug"

	"go.uber.org/zap"
)

// MetricsCollector receives one RecordPanic call per contained panic.
// location is whatever string the caller passed to Recover/SafeGo/
// RecoverWithCallback, not a stack frame.
type MetricsCollector interface {
	RecordPanic(location string, panicValue interface{})
}

// Recoverer is the one instance hpackctl builds per process and threads
// through every command's RunE and every background goroutine.
type Recoverer struct {
	logger  *zap.Logger
	metrics MetricsCollector
}

func NewRecoverer(logger *zap.Logger, metrics MetricsCollector) *Recoverer {
	return &Recoverer{logger: logger, metrics: metrics}
}

func (r *Recoverer) report(logMsg, location string, p interface{}) {
	r.logger.Error(logMsg,
		zap.String("location", location),
		zap.Any("panic", p),
		zap.ByteString("stack", debug.Stack()),
	)
	if r.metrics != nil {
		r.metrics.RecordPanic(location, p)
	}
}

// WrapGoroutine returns fn wrapped in a deferred recover; the returned
// closure never panics regardless of what fn does.
func (r *Recoverer) WrapGoroutine(name string, fn func()) func() {
	return func() {
		defer func() {
			if p := recover(); p != nil {
				r.report("goroutine panic recovered", name, p)
			}
		}()
		fn()
	}
}

// SafeGo starts fn on its own goroutine through WrapGoroutine, so a panic
// inside fn is contained rather than crashing the process.
func (r *Recoverer) SafeGo(name string, fn func()) {
	go r.WrapGoroutine(name, fn)()
}

// Recover is meant to run under defer at the top of a command handler or
// request path; it swallows any in-flight panic after logging and
// recording it.
func (r *Recoverer) Recover(location string) {
	if p := recover(); p != nil {
		r.report("panic recovered", location, p)
	}
}

// RecoverWithCallback behaves like Recover but additionally hands the
// panic value to callback once it's been logged and recorded, letting the
// caller turn it into an error return instead of silently dropping it.
func (r *Recoverer) RecoverWithCallback(location string, callback func(panicValue interface{})) {
	if p := recover(); p != nil {
		r.report("panic recovered with callback", location, p)
		if callback != nil {
			callback(p)
		}
	}
}
