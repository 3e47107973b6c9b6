// Package consolehandler provides the console sink.
//
// INFO and DEBUG records go to Stdout, WARN and ERROR records go to
// Stderr. Each line is rendered into a pooled buffer outside any lock and
// then written with one Write call while holding the lock of its
// destination, so concurrent callers never produce torn or interleaved
// lines. When Stdout and Stderr are the same writer, both destinations
// share a single lock.
package consolehandler
