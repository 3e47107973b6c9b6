package benchmark

import (
	"github.com/philipp01105/msglog/core"
	"github.com/philipp01105/msglog/handler"
)

// noopHandler drops records after touching them, isolating the cost of
// resolution and tagging from formatting and I/O.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(rec *core.Record) error {
	_ = len(rec.Body) + len(rec.Tag)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
