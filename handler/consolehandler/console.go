package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/msglog/core"
	"github.com/philipp01105/msglog/formatter"
	"github.com/philipp01105/msglog/handler"
)

// destination is an output stream guarded by its own lock. Two
// destinations backed by the same writer share one lock.
type destination struct {
	w  io.Writer
	mu *sync.Mutex
}

func (d *destination) write(p []byte) error {
	d.mu.Lock()
	_, err := d.w.Write(p)
	d.mu.Unlock()
	return err
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Stdout receives INFO and DEBUG lines (default: os.Stdout)
	Stdout io.Writer
	// Stderr receives WARN and ERROR lines (default: os.Stderr)
	Stderr io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// ConsoleHandler writes records to stdout or stderr by severity
type ConsoleHandler struct {
	out             destination
	err             destination
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	writerFormatter formatter.WriterFormatter
	bufPool         sync.Pool
	stats           *handler.Stats
}

// NewConsoleHandler creates a new console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}

	outMu := &sync.Mutex{}
	errMu := outMu
	if cfg.Stderr != cfg.Stdout {
		errMu = &sync.Mutex{}
	}
	h.out = destination{w: cfg.Stdout, mu: outMu}
	h.err = destination{w: cfg.Stderr, mu: errMu}

	// Cache BufferFormatter so lines are rendered outside the lock
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.bufPool = sync.Pool{
		New: func() interface{} {
			b := new(bytes.Buffer)
			b.Grow(256)
			return b
		},
	}

	return h
}

// Handle formats rec and writes it to the stream for its level with a
// single Write call.
func (h *ConsoleHandler) Handle(rec *core.Record) error {
	dest := &h.out
	if rec.Level.IsErrorClass() {
		dest = &h.err
	}

	var err error
	switch {
	case h.bufferFormatter != nil:
		buf := h.bufPool.Get().(*bytes.Buffer)
		buf.Reset()
		h.bufferFormatter.FormatRecord(rec, buf)
		err = dest.write(buf.Bytes())
		if buf.Cap() <= 64*1024 {
			h.bufPool.Put(buf)
		}
	case h.writerFormatter != nil:
		// FormatTo writes straight to the stream, so it runs under the lock
		dest.mu.Lock()
		err = h.writerFormatter.FormatTo(rec, dest.w)
		dest.mu.Unlock()
	default:
		var data []byte
		data, err = h.formatter.Format(rec)
		if err == nil {
			err = dest.write(data)
		}
	}

	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementWritten(rec.Level)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; the output streams belong to the caller.
func (h *ConsoleHandler) Close() error {
	return nil
}
