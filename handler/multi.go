package handler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/msglog/core"
)

// MultiHandler sends log records to multiple handlers in order
type MultiHandler struct {
	handlers []Handler
}

// NewMultiHandler creates a new multi-handler. Nil handlers are skipped.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{handlers: make([]Handler, 0, len(handlers))}
	for _, h := range handlers {
		if h != nil {
			m.handlers = append(m.handlers, h)
		}
	}
	return m
}

// Handle passes rec to every handler in the order they were given. A
// failing handler does not stop the ones after it; all errors are
// combined.
func (h *MultiHandler) Handle(rec *core.Record) error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Handle(rec))
	}
	return err
}

// Handlers returns the child handlers
func (h *MultiHandler) Handlers() []Handler {
	return h.handlers
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, handler := range h.handlers {
		err = multierr.Append(err, handler.Close())
	}
	return err
}
