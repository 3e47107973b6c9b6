package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/philipp01105/msglog/core"
)

// TextFormatter renders records as
//
//	[<timestamp>]-[<LEVEL>]-[<tag>] <body>
//
// terminated by a newline.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats a record as text
func (f *TextFormatter) Format(rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRecord(rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats a record and writes it to w with a single Write call
func (f *TextFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.FormatRecord(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.DebugLevel: "]-[DEBUG]-[",
	core.InfoLevel:  "]-[INFO]-[",
	core.WarnLevel:  "]-[WARN]-[",
	core.ErrorLevel: "]-[ERROR]-[",
}

// FormatRecord writes the formatted record into buf
func (f *TextFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	// Timestamp - use AppendFormat to avoid string allocation
	if f.Timestamp != nil {
		buf.Write(f.Timestamp.AppendFormat(buf.AvailableBuffer(), rec.Time))
	} else {
		buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	}

	if int(rec.Level) >= 0 && int(rec.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[rec.Level])
	} else {
		buf.WriteString("]-[UNKNOWN]-[")
	}

	buf.WriteString(rec.Tag)
	buf.WriteString("] ")
	buf.WriteString(rec.Body)
	buf.WriteByte('\n')
}
