package filehandler

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/philipp01105/msglog/core"
	"github.com/philipp01105/msglog/formatter"
	"github.com/philipp01105/msglog/handler"
)

// Bucket suffixes of the two daily files
const (
	InfoBucket  = "inf"
	ErrorBucket = "err"
)

// WriteError reports a failed append to a daily log file
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "msglog: writing " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause
func (e *WriteError) Unwrap() error {
	return e.Err
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Dir is the directory daily files are written to. Empty disables
	// the handler.
	Dir string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// DirPerm is the permission used when creating Dir (default: 0755)
	DirPerm os.FileMode
	// FilePerm is the permission used when creating a file (default: 0644)
	FilePerm os.FileMode
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.DirPerm == 0 {
		cfg.DirPerm = 0755
	}
	if cfg.FilePerm == 0 {
		cfg.FilePerm = 0644
	}
}

// FileHandler appends records to day-keyed files. No file handle is kept
// between calls: every line opens, appends to and closes its file.
type FileHandler struct {
	dir             string
	dirPerm         os.FileMode
	filePerm        os.FileMode
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
	buf             bytes.Buffer
	stats           *handler.Stats
}

// NewFileHandler creates a new file handler. The directory is created
// lazily on the first write.
func NewFileHandler(cfg FileConfig) *FileHandler {
	applyFileDefaults(&cfg)
	h := &FileHandler{
		dir:       cfg.Dir,
		dirPerm:   cfg.DirPerm,
		filePerm:  cfg.FilePerm,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	return h
}

// Enabled reports whether the handler writes anything at all
func (h *FileHandler) Enabled() bool {
	return h.dir != ""
}

// FileName returns the name of the file a record of level logged at t is
// appended to, e.g. "2-6-2016.inf.log".
func FileName(t time.Time, level core.Level) string {
	bucket := InfoBucket
	if level.IsErrorClass() {
		bucket = ErrorBucket
	}
	return fmt.Sprintf("%d-%d-%d.%s.log", t.Day(), int(t.Month()), t.Year(), bucket)
}

// Path returns the full path for a record of level logged at t
func (h *FileHandler) Path(t time.Time, level core.Level) string {
	return filepath.Join(h.dir, FileName(t, level))
}

// Handle appends rec to its daily file. DEBUG records are never written.
// The day-key is taken from the record timestamp so a line always lands in
// the file of the day it shows.
func (h *FileHandler) Handle(rec *core.Record) error {
	if h.dir == "" || !rec.Level.Persistent() {
		return nil
	}

	path := h.Path(rec.Time, rec.Level)

	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := h.render(rec)
	if err != nil {
		h.stats.IncrementFailed()
		return &WriteError{Path: path, Err: err}
	}

	if err := h.appendLine(path, data); err != nil {
		h.stats.IncrementFailed()
		return &WriteError{Path: path, Err: err}
	}
	h.stats.IncrementWritten(rec.Level)
	return nil
}

// render formats rec into the handler-owned buffer; must hold mu
func (h *FileHandler) render(rec *core.Record) ([]byte, error) {
	switch {
	case h.bufferFormatter != nil:
		h.buf.Reset()
		h.bufferFormatter.FormatRecord(rec, &h.buf)
		return h.buf.Bytes(), nil
	case h.writerFormatter != nil:
		h.buf.Reset()
		if err := h.writerFormatter.FormatTo(rec, &h.buf); err != nil {
			return nil, err
		}
		return h.buf.Bytes(), nil
	default:
		return h.formatter.Format(rec)
	}
}

func (h *FileHandler) appendLine(path string, data []byte) error {
	if err := os.MkdirAll(h.dir, h.dirPerm); err != nil {
		return errors.Wrap(err, "creating log directory")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, h.filePerm)
	if err != nil {
		return errors.Wrap(err, "opening log file")
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrap(err, "appending log line")
	}
	return errors.Wrap(f.Close(), "closing log file")
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close is a no-op; no file is held open between writes.
func (h *FileHandler) Close() error {
	return nil
}
