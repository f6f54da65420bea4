package service

import (
	"log"
	"sync"
	"time"

	"github.com/jengzang/trip-metrics-backend-go/internal/metrics"
)

// ErrorReporter receives errors that are handled by degrading silently
type ErrorReporter interface {
	Report(err error)
}

// LogReporter reports errors to the process log
type LogReporter struct {
	collector *metrics.Collector
}

// NewLogReporter creates a log-backed error reporter. collector may be nil.
func NewLogReporter(collector *metrics.Collector) *LogReporter {
	return &LogReporter{collector: collector}
}

// Report logs err
func (r *LogReporter) Report(err error) {
	if err == nil {
		return
	}
	log.Printf("Error: %v", err)
	if r.collector != nil {
		r.collector.ErrorsReported.Inc()
	}
}

// Progress is a user-facing busy indicator that must be disposed once the
// work it tracks is over
type Progress interface {
	Dispose()
}

// ProgressReporter starts progress indicators
type ProgressReporter interface {
	Start(message string) Progress
}

// LogProgress writes progress indicators to the process log
type LogProgress struct{}

// Start logs message and returns a handle that logs the elapsed time on Dispose
func (LogProgress) Start(message string) Progress {
	log.Printf("%s", message)
	return &logProgressHandle{message: message, started: time.Now()}
}

type logProgressHandle struct {
	message string
	started time.Time
	once    sync.Once
}

func (h *logProgressHandle) Dispose() {
	h.once.Do(func() {
		log.Printf("%s done in %v", h.message, time.Since(h.started))
	})
}
