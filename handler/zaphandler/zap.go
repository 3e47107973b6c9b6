package zaphandler

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/msglog/core"
	"github.com/philipp01105/msglog/logger"
)

// CallerKey is the field key that overrides the tag of a line
const CallerKey = "caller"

// DefaultName is the tag used for unnamed zap loggers
const DefaultName = "zap"

// Core is a zapcore.Core that routes entries through a msglog Logger. The
// entry message is the catalog key and field values are the positional
// arguments, in order. The tag is the zap logger name.
type Core struct {
	zapcore.LevelEnabler
	log    *logger.Logger
	values []any
	name   string
}

// NewCore creates a Core writing through l. A nil enab enables all levels.
func NewCore(l *logger.Logger, enab zapcore.LevelEnabler) *Core {
	if enab == nil {
		enab = zapcore.DebugLevel
	}
	return &Core{LevelEnabler: enab, log: l}
}

// With returns a Core whose lines start with the values of fields
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	c2 := *c
	c2.values = make([]any, len(c.values), len(c.values)+len(fields))
	copy(c2.values, c.values)
	c2.values, c2.name = appendFields(c2.values, c2.name, fields)
	return &c2
}

// Check adds c to ce when the entry level is enabled
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write logs ent. It never fails; write errors are contained by the Logger.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	name := c.name
	if name == "" {
		name = ent.LoggerName
	}
	if name == "" {
		name = DefaultName
	}

	args := make([]any, len(c.values), len(c.values)+len(fields))
	copy(args, c.values)
	args, name = appendFields(args, name, fields)

	c.log.Log(levelFromZap(ent.Level), name, ent.Message, args...)
	return nil
}

// Sync is a no-op; msglog writes synchronously.
func (c *Core) Sync() error {
	return nil
}

// appendFields appends the value of each field and picks up a caller field
func appendFields(dst []any, name string, fields []zapcore.Field) ([]any, string) {
	for _, f := range fields {
		switch f.Type {
		case zapcore.SkipType, zapcore.NamespaceType:
			continue
		}

		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		v, ok := enc.Fields[f.Key]
		if !ok {
			continue
		}
		if f.Key == CallerKey {
			if s, ok := v.(string); ok {
				name = s
				continue
			}
		}
		dst = append(dst, v)
	}
	return dst, name
}

// levelFromZap converts a zapcore.Level to a core.Level. DPanic, Panic and
// Fatal are logged as ERROR; zap still panics or exits after the write.
func levelFromZap(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level == zapcore.WarnLevel:
		return core.WarnLevel
	case level == zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
