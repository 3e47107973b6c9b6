package logger

import (
	"sync"

	"github.com/philipp01105/msglog/catalog"
)

// defaultDateFormat is used by the default logger until Init is called
const defaultDateFormat = "dd-MM-yyyy HH:mm:ss"

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Until Init loads a catalog, keys are logged verbatim
	cat, err := catalog.New(catalog.Settings{DateFormat: defaultDateFormat}, nil)
	if err != nil {
		panic(err)
	}
	defaultLogger = New(cat, Config{})
}

// Init loads the catalog from the two sources and installs a logger built
// from it as the default. On error the previous default stays in place
// and the caller should abort startup.
func Init(configPath, messagesPath string) error {
	cat, err := catalog.Load(configPath, messagesPath)
	if err != nil {
		return err
	}
	SetDefault(New(cat, Config{}))
	return nil
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Info logs a catalog message at INFO level using the default logger
func Info(caller any, key string, args ...any) {
	Default().Info(caller, key, args...)
}

// Warn logs a catalog message at WARN level using the default logger
func Warn(caller any, key string, args ...any) {
	Default().Warn(caller, key, args...)
}

// Error logs a catalog message at ERROR level using the default logger
func Error(caller any, key string, args ...any) {
	Default().Error(caller, key, args...)
}

// Fault logs err with its call stack using the default logger
func Fault(caller any, err error) {
	Default().Fault(caller, err)
}

// Debug logs msg to the console using the default logger
func Debug(caller any, msg string) {
	Default().Debug(caller, msg)
}
