package formatter

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/philipp01105/msglog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log record into bytes
	Format(rec *core.Record) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log record and writes it directly to the writer
	FormatTo(rec *core.Record, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord formats a log record into the given buffer.
	FormatRecord(rec *core.Record, buf *bytes.Buffer)
}

// TimeAppender renders a timestamp, e.g. a compiled catalog date format
type TimeAppender interface {
	AppendFormat(dst []byte, t time.Time) []byte
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat is the Go time layout for the timestamp (empty for RFC3339)
	TimestampFormat string
	// Timestamp renders the timestamp instead of TimestampFormat when set
	Timestamp TimeAppender
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
