package logger

import (
	"fmt"
	"io"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/philipp01105/msglog/catalog"
	"github.com/philipp01105/msglog/core"
	"github.com/philipp01105/msglog/formatter"
	"github.com/philipp01105/msglog/handler"
	"github.com/philipp01105/msglog/handler/consolehandler"
	"github.com/philipp01105/msglog/handler/filehandler"
)

// reporterTag is the caller name used for the logger's own failure report
const reporterTag = "Logger"

// Logger is the logging facade (immutable)
type Logger struct {
	handler  handler.Handler
	reporter handler.Handler
	resolver *formatter.Resolver
	now      func() time.Time
	console  *consolehandler.ConsoleHandler
	file     *filehandler.FileHandler
	failures *atomic.Uint64
	report   *sync.Once
}

// Config holds the outputs of a Logger created with New
type Config struct {
	// Stdout receives INFO and DEBUG lines (default: os.Stdout)
	Stdout io.Writer
	// Stderr receives WARN and ERROR lines (default: os.Stderr)
	Stderr io.Writer
	// Now returns the time of a log call (default: time.Now)
	Now func() time.Time
}

// New creates a Logger from a loaded catalog: lines go to the console,
// and to daily files when the catalog settings enable file logging.
func New(cat *catalog.Catalog, cfg Config) *Logger {
	f := formatter.NewTextFormatter(formatter.Config{Timestamp: cat.DateFormat()})

	console := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Stdout:    cfg.Stdout,
		Stderr:    cfg.Stderr,
		Formatter: f,
	})
	file := filehandler.NewFileHandler(filehandler.FileConfig{
		Dir:       cat.Settings().FileDir(),
		Formatter: f,
	})

	l := NewBuilder().
		WithCatalog(cat).
		WithHandler(handler.NewMultiHandler(console, file)).
		WithReporter(console).
		WithClock(cfg.Now).
		Build()
	l.console = console
	l.file = file
	return l
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler  handler.Handler
	reporter handler.Handler
	lookup   formatter.Lookup
	now      func() time.Time
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{now: time.Now}
}

// WithCatalog sets the message catalog keys are resolved against
func (b *Builder) WithCatalog(l formatter.Lookup) *Builder {
	b.lookup = l
	return b
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithReporter sets the handler that receives the one-time report of a
// failed write. It should not depend on the handlers that can fail.
func (b *Builder) WithReporter(h handler.Handler) *Builder {
	b.reporter = h
	return b
}

// WithClock sets the time source; nil keeps time.Now
func (b *Builder) WithClock(now func() time.Time) *Builder {
	if now != nil {
		b.now = now
	}
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:  b.handler,
		reporter: b.reporter,
		resolver: formatter.NewResolver(b.lookup),
		now:      b.now,
		failures: new(atomic.Uint64),
		report:   new(sync.Once),
	}
}

// Info resolves key against the catalog, substitutes args and logs the
// result at INFO level.
func (l *Logger) Info(caller any, key string, args ...any) {
	l.log(core.InfoLevel, caller, l.resolver.Resolve(key, args))
}

// Warn logs a catalog message at WARN level
func (l *Logger) Warn(caller any, key string, args ...any) {
	l.log(core.WarnLevel, caller, l.resolver.Resolve(key, args))
}

// Error logs a catalog message at ERROR level
func (l *Logger) Error(caller any, key string, args ...any) {
	l.log(core.ErrorLevel, caller, l.resolver.Resolve(key, args))
}

// Fault logs err with its call stack at ERROR level
func (l *Logger) Fault(caller any, err error) {
	l.log(core.ErrorLevel, caller, formatter.FaultTrace(err))
}

// Debug logs msg verbatim at DEBUG level. Debug lines only reach the
// console, never a log file.
func (l *Logger) Debug(caller any, msg string) {
	l.log(core.DebugLevel, caller, msg)
}

// Log logs at the given level. INFO, WARN and ERROR resolve key against
// the catalog; DEBUG substitutes args into key without a catalog lookup.
func (l *Logger) Log(level core.Level, caller any, key string, args ...any) {
	if level == core.DebugLevel {
		l.log(level, caller, formatter.Substitute(key, args))
		return
	}
	l.log(level, caller, l.resolver.Resolve(key, args))
}

// log renders and dispatches one record. Failures never reach the caller.
func (l *Logger) log(level core.Level, caller any, body string) {
	if l.handler == nil {
		return
	}

	rec := core.GetRecord()
	rec.Time = l.now()
	rec.Level = level
	rec.Tag = formatter.Tag(CallerName(caller))
	rec.Body = body

	defer func() {
		if r := recover(); r != nil {
			l.contain(fmt.Errorf("handler panic: %v", r))
		}
		core.PutRecord(rec)
	}()

	l.contain(l.handler.Handle(rec))
}

// contain counts a failed write and reports the first one
func (l *Logger) contain(err error) {
	if err == nil {
		return
	}
	l.failures.Add(1)
	l.report.Do(func() {
		if l.reporter == nil {
			return
		}
		_ = l.reporter.Handle(&core.Record{
			Time:  l.now(),
			Level: core.ErrorLevel,
			Tag:   formatter.Tag(reporterTag),
			Body:  "log write failed, further failures are only counted: " + err.Error(),
		})
	})
}

// Failures returns the number of log calls that failed to write
func (l *Logger) Failures() uint64 {
	return l.failures.Load()
}

// Console returns the console handler of a Logger created with New
func (l *Logger) Console() *consolehandler.ConsoleHandler {
	return l.console
}

// File returns the file handler of a Logger created with New
func (l *Logger) File() *filehandler.FileHandler {
	return l.file
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}

// CallerName returns the name a caller is tagged with: a string is used
// as is, any other value is named by its type without package path.
func CallerName(caller any) string {
	switch c := caller.(type) {
	case nil:
		return "nil"
	case string:
		return c
	case reflect.Type:
		return typeName(c)
	default:
		return typeName(reflect.TypeOf(caller))
	}
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
