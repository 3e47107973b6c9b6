// Package logger is the public API of msglog. Most users only need to
// import this package.
//
// Messages are identified by catalog keys. A caller passes its own
// identity (usually itself, or its type name as a string), a key and
// positional arguments:
//
//	log.Info(w, "greet", "World")    // Hello, World!  (greet=Hello, {0}!)
//	log.Warn("Net", "x")             // x  (unknown keys are logged verbatim)
//	log.Fault(db, err)               // message plus call stack at ERROR
//	log.Debug(db, "ping")            // console only, never written to file
//
// Each call produces one line
//
//	[<timestamp>]-[<LEVEL>]-[<tag>] <body>
//
// where the tag is the caller's type name cut or dot-padded to 12 runes
// and the timestamp uses the catalog's display.date.format. INFO and
// DEBUG go to stdout, WARN and ERROR to stderr, and when the catalog
// enables file logging INFO, WARN and ERROR are also appended to daily
// files.
//
// A Logger is immutable after construction and safe for concurrent use.
// Logging never returns an error and never panics because of I/O: the
// first failed write is reported once on stderr and every failure is
// counted (see Failures).
//
// The package keeps a default Logger for the package-level functions.
// Until Init loads a catalog it logs keys verbatim:
//
//	if err := logger.Init("resources/config.properties", "resources/messages.properties"); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	    os.Exit(1)
//	}
//	logger.Info(server, "server.started", port)
package logger
