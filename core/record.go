package core

import (
	"sync"
	"time"
)

// Level represents the severity level of a log record
type Level int8

const (
	// DebugLevel for console-only debugging output
	DebugLevel Level = iota
	// InfoLevel for general informational messages
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages and fault traces
	ErrorLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// IsErrorClass reports whether records of this level go to the error
// stream and the error file bucket.
func (l Level) IsErrorClass() bool {
	return l == WarnLevel || l == ErrorLevel
}

// Persistent reports whether records of this level may be written to a
// log file. Debug output never is.
func (l Level) Persistent() bool {
	return l != DebugLevel && l <= ErrorLevel
}

// Record is a single log line before rendering
type Record struct {
	Time  time.Time
	Level Level
	// Tag is the caller name rendered to a fixed width
	Tag  string
	Body string
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Time{}
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Tag = ""
	r.Body = ""
	recordPool.Put(r)
}
