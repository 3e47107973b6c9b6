package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/magiconair/properties"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Setting keys read from the general settings source
const (
	KeyWriteLogFiles = "write.log.files"
	KeyLogFileDir    = "log.file.dir"
	KeyDateFormat    = "display.date.format"
)

// Settings holds the general logger configuration
type Settings struct {
	// WriteLogFiles enables the daily file sink
	WriteLogFiles bool
	// LogFileDir is the directory daily files are written to
	LogFileDir string
	// DateFormat is the timestamp pattern as configured
	DateFormat string
}

// FileDir returns the directory for log files, or "" when file logging
// is disabled.
func (s Settings) FileDir() string {
	if !s.WriteLogFiles {
		return ""
	}
	return s.LogFileDir
}

// Catalog maps message keys to templates. It is immutable after
// construction and safe for concurrent use without locking.
type Catalog struct {
	settings Settings
	format   *DateFormat
	messages map[string]string
}

// ConfigLoadError reports a catalog source that could not be loaded.
// The logger must not be used when Load returns it.
type ConfigLoadError struct {
	Source string
	Err    error
}

func (e *ConfigLoadError) Error() string {
	return "msglog: loading " + e.Source + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause
func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// Load reads the general settings from configPath and the message
// templates from messagesPath. Files ending in .toml are parsed as TOML
// with nested tables flattened into dotted keys; anything else is read as
// a Java-style properties file.
func Load(configPath, messagesPath string) (*Catalog, error) {
	cfg, err := readSource(configPath)
	if err != nil {
		return nil, &ConfigLoadError{Source: configPath, Err: err}
	}

	settings, format, err := parseSettings(cfg)
	if err != nil {
		return nil, &ConfigLoadError{Source: configPath, Err: err}
	}

	messages, err := readSource(messagesPath)
	if err != nil {
		return nil, &ConfigLoadError{Source: messagesPath, Err: err}
	}

	return newCatalog(settings, format, messages), nil
}

// New builds a catalog from in-memory settings and messages. The date
// format is compiled and the messages map is copied.
func New(settings Settings, messages map[string]string) (*Catalog, error) {
	format, err := compileSettings(settings)
	if err != nil {
		return nil, &ConfigLoadError{Source: "settings", Err: err}
	}
	copied := make(map[string]string, len(messages))
	for k, v := range messages {
		copied[k] = v
	}
	return newCatalog(settings, format, copied), nil
}

func newCatalog(settings Settings, format *DateFormat, messages map[string]string) *Catalog {
	return &Catalog{settings: settings, format: format, messages: messages}
}

// Resolve returns the template for key
func (c *Catalog) Resolve(key string) (string, bool) {
	tmpl, ok := c.messages[key]
	return tmpl, ok
}

// Settings returns the general logger configuration
func (c *Catalog) Settings() Settings {
	return c.settings
}

// DateFormat returns the compiled timestamp format
func (c *Catalog) DateFormat() *DateFormat {
	return c.format
}

// Len returns the number of message templates
func (c *Catalog) Len() int {
	return len(c.messages)
}

// Keys returns the message keys in sorted order
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.messages))
	for k := range c.messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func parseSettings(src map[string]string) (Settings, *DateFormat, error) {
	s := Settings{
		WriteLogFiles: strings.EqualFold(strings.TrimSpace(src[KeyWriteLogFiles]), "true"),
		LogFileDir:    strings.TrimSpace(src[KeyLogFileDir]),
	}
	format, ok := src[KeyDateFormat]
	if !ok {
		return Settings{}, nil, errors.Errorf("missing %s", KeyDateFormat)
	}
	s.DateFormat = format
	df, err := compileSettings(s)
	if err != nil {
		return Settings{}, nil, err
	}
	return s, df, nil
}

func compileSettings(s Settings) (*DateFormat, error) {
	if s.WriteLogFiles && s.LogFileDir == "" {
		return nil, errors.Errorf("%s is enabled but %s is empty", KeyWriteLogFiles, KeyLogFileDir)
	}
	df, err := CompileDateFormat(s.DateFormat)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", KeyDateFormat)
	}
	return df, nil
}

// readSource loads a key/value source by file extension
func readSource(path string) (map[string]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return readTOML(path)
	}
	return readProperties(path)
}

func readProperties(path string) (map[string]string, error) {
	l := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := l.LoadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading properties")
	}
	return p.Map(), nil
}

func readTOML(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading toml")
	}

	var tree map[string]interface{}
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, errors.Wrap(err, "unmarshaling toml")
	}

	out := make(map[string]string)
	flatten("", tree, out)
	return out, nil
}

// flatten turns nested tables into dotted keys so that
// `[write.log] files = true` and `write.log.files = "true"` are equivalent.
func flatten(prefix string, tree map[string]interface{}, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = stringify(val)
		}
	}
}

func stringify(v interface{}) string {
	if arr, ok := v.([]interface{}); ok {
		parts := make([]string, len(arr))
		for i, e := range arr {
			parts[i] = stringify(e)
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}
