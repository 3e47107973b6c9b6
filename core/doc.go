// Package core defines the shared types used across msglog.
//
// It provides the Level type with the four severities (DEBUG, INFO, WARN,
// ERROR) and the Record type that represents a single log line before it
// is rendered. Level also carries the two routing rules every sink relies
// on: IsErrorClass selects the error stream and error file bucket, and
// Persistent is false for DEBUG, which never reaches a file.
//
// Records are pooled via sync.Pool. The logger gets a Record with
// GetRecord, hands it to the handlers synchronously and returns it with
// PutRecord once every handler has returned.
package core
