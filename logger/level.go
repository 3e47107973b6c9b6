package logger

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/philipp01105/msglog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a string to a Level. The three-letter forms
// (DBG, INF, WRN, ERR) are accepted too.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "DBG":
		return DebugLevel, nil
	case "INFO", "INF":
		return InfoLevel, nil
	case "WARN", "WARNING", "WRN":
		return WarnLevel, nil
	case "ERROR", "ERR":
		return ErrorLevel, nil
	default:
		return InfoLevel, errors.Errorf("unknown level %q", s)
	}
}
