// Package formatter turns a caller name, a catalog key and positional
// arguments into the final log line.
//
// Resolution goes through a Resolver backed by the message catalog.
// Templates use {0}, {1}, ... placeholders; Substitute fills them by
// index and leaves placeholders without a matching argument verbatim. A
// key missing from the catalog is never an error: it is used as the
// template (with arguments) or as the literal body (without).
//
// Tag renders the caller name to a fixed width of 12 runes, and
// FaultTrace renders an error together with its call stack for the
// fault entry point of the logger.
//
// TextFormatter produces the line itself:
//
//	[02-06-2016 09:05:07]-[INFO]-[Worker......] Hello, World!
//
// It implements Formatter, WriterFormatter and BufferFormatter. Handlers
// check for the latter two at construction time so that each line is
// rendered into a pooled buffer and written with a single Write call.
// Buffers larger than 64 KiB are not returned to the pool.
package formatter
