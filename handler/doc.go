// Package handler provides the Handler interface and the fan-out handler
// used to deliver a rendered log record to its sinks.
//
// Handlers are synchronous: Handle returns after the record has been
// written, and the logger recycles the record right after. There are no
// background goroutines and no queues.
//
// Built-in handlers:
//
//   - consolehandler writes INFO and DEBUG lines to stdout and WARN and
//     ERROR lines to stderr, serializing each destination with its own lock.
//   - filehandler appends INFO, WARN and ERROR lines to day-keyed files,
//     opening and closing the file for every line.
//   - MultiHandler fans one record out to several handlers in order and
//     combines their errors with go.uber.org/multierr.
//   - sloghandler and zaphandler route log/slog and zap output through a
//     logger so it is resolved against the message catalog.
//
// Console and file handlers count written lines per level and failed
// writes in a Stats value, exposed through StatsProvider for monitoring.
package handler
