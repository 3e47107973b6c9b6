package handler

import (
	"github.com/philipp01105/msglog/core"
)

// Handler defines the interface for log sinks
type Handler interface {
	// Handle writes a log record. It is called synchronously and must not
	// retain rec after returning.
	Handle(rec *core.Record) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that track their output
type StatsProvider interface {
	Stats() Snapshot
}
