package logger

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/philipp01105/msglog/catalog"
	"github.com/philipp01105/msglog/core"
)

type Worker struct{}

type ConnectionManager struct{}

var fixedTime = time.Date(2016, 6, 2, 9, 5, 7, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

// syncBuffer is a bytes.Buffer that can be shared between two streams
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func newCatalog(t testing.TB, dir string) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.Settings{
		WriteLogFiles: dir != "",
		LogFileDir:    dir,
		DateFormat:    "dd-MM-yyyy HH:mm:ss",
	}, map[string]string{
		"greet":     "Hello, {0}!",
		"started":   "Service started",
		"conn.lost": "Connection to {0} lost after {1} retries",
	})
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func newTestLogger(t testing.TB, dir string) (*Logger, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	l := New(newCatalog(t, dir), Config{Stdout: &stdout, Stderr: &stderr, Now: fixedClock})
	return l, &stdout, &stderr
}

func TestLogger_GreetScenario(t *testing.T) {
	l, stdout, stderr := newTestLogger(t, "")

	l.Info(Worker{}, "greet", "World")

	want := "[02-06-2016 09:05:07]-[INFO]-[Worker......] Hello, World!\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
	if stderr.Len() != 0 {
		t.Errorf("Expected nothing on stderr, got %q", stderr.String())
	}
}

func TestLogger_MissingKeyScenario(t *testing.T) {
	l, stdout, stderr := newTestLogger(t, "")

	l.Warn("Net", "x")

	want := "[02-06-2016 09:05:07]-[WARN]-[Net.........] x\n"
	if stderr.String() != want {
		t.Errorf("stderr = %q, want %q", stderr.String(), want)
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected nothing on stdout, got %q", stdout.String())
	}
}

func TestLogger_Levels(t *testing.T) {
	l, stdout, stderr := newTestLogger(t, "")

	l.Info(&Worker{}, "started")
	l.Error(&ConnectionManager{}, "conn.lost", "db-1", 3)
	l.Debug(Worker{}, "raw {0} text")

	out := stdout.String()
	if !strings.Contains(out, "]-[INFO]-[Worker......] Service started\n") {
		t.Errorf("Missing info line in stdout: %q", out)
	}
	if !strings.Contains(out, "]-[DEBUG]-[Worker......] raw {0} text\n") {
		t.Errorf("Expected debug message verbatim in stdout: %q", out)
	}

	errOut := stderr.String()
	if !strings.Contains(errOut, "]-[ERROR]-[ConnectionMa] Connection to db-1 lost after 3 retries\n") {
		t.Errorf("Missing error line in stderr: %q", errOut)
	}
}

func TestLogger_Log(t *testing.T) {
	l, stdout, stderr := newTestLogger(t, "")

	l.Log(InfoLevel, "Bridge", "greet", "slog")
	l.Log(DebugLevel, "Bridge", "greet {0}", "raw")
	l.Log(WarnLevel, "Bridge", "started")

	if !strings.Contains(stdout.String(), "] Hello, slog!\n") {
		t.Errorf("Expected resolved info line, got %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), "]-[DEBUG]-[Bridge......] greet raw\n") {
		t.Errorf("Expected substituted debug line without lookup, got %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "]-[WARN]-[Bridge......] Service started\n") {
		t.Errorf("Expected warn line, got %q", stderr.String())
	}
}

func TestLogger_FaultScenario(t *testing.T) {
	dir := t.TempDir()
	l, stdout, stderr := newTestLogger(t, dir)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		l.Fault("DB", errors.New("conn refused"))
	}()
	go func() {
		defer wg.Done()
		l.Debug("DB", "ping")
	}()
	wg.Wait()

	if !strings.Contains(stderr.String(), "]-[ERROR]-[DB..........] conn refused\n") {
		t.Errorf("Expected fault on stderr, got %q", stderr.String())
	}
	if !strings.Contains(stdout.String(), "]-[DEBUG]-[DB..........] ping\n") {
		t.Errorf("Expected debug on stdout, got %q", stdout.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "2-6-2016.err.log"))
	if err != nil {
		t.Fatalf("Expected error bucket file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "conn refused") {
		t.Errorf("Expected fault message in file, got %q", content)
	}
	if !strings.Contains(content, "TestLogger_FaultScenario") {
		t.Errorf("Expected trace frames in file, got %q", content)
	}
	if strings.Contains(content, "ping") {
		t.Errorf("Debug line written to file: %q", content)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("Expected only the error bucket file, found %d files", len(entries))
	}
}

func TestLogger_DebugNeverPersisted(t *testing.T) {
	for _, enabled := range []bool{true, false} {
		t.Run(fmt.Sprintf("files=%v", enabled), func(t *testing.T) {
			dir := ""
			if enabled {
				dir = t.TempDir()
			}
			l, stdout, _ := newTestLogger(t, dir)

			for i := 0; i < 20; i++ {
				l.Debug(Worker{}, "tick")
			}

			if got := strings.Count(stdout.String(), "tick"); got != 20 {
				t.Errorf("Expected 20 console lines, got %d", got)
			}
			if enabled {
				entries, _ := os.ReadDir(dir)
				if len(entries) != 0 {
					t.Errorf("Expected no files, found %d", len(entries))
				}
				if l.File().Stats().Written[core.DebugLevel] != 0 {
					t.Error("File handler counted a debug write")
				}
			}
		})
	}
}

func TestLogger_FilesDisabledCreatesNothing(t *testing.T) {
	wd := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(wd); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })
	l, _, _ := newTestLogger(t, "")

	for i := 0; i < 50; i++ {
		l.Info(Worker{}, "started")
		l.Warn(Worker{}, "started")
		l.Error(Worker{}, "started")
		l.Fault(Worker{}, errors.New("boom"))
	}

	entries, _ := os.ReadDir(wd)
	if len(entries) != 0 {
		t.Errorf("Expected no files with file logging disabled, found %d", len(entries))
	}
	if l.File().Enabled() {
		t.Error("Expected file handler to be disabled")
	}
}

func TestLogger_DayKeyedFiles(t *testing.T) {
	dir := t.TempDir()
	now := fixedTime
	var stdout, stderr bytes.Buffer
	l := New(newCatalog(t, dir), Config{
		Stdout: &stdout,
		Stderr: &stderr,
		Now:    func() time.Time { return now },
	})

	l.Info(Worker{}, "greet", "monday")
	l.Info(Worker{}, "greet", "again")
	now = now.Add(24 * time.Hour)
	l.Info(Worker{}, "greet", "tuesday")

	d1, err := os.ReadFile(filepath.Join(dir, "2-6-2016.inf.log"))
	if err != nil {
		t.Fatal(err)
	}
	d2, err := os.ReadFile(filepath.Join(dir, "3-6-2016.inf.log"))
	if err != nil {
		t.Fatal(err)
	}

	if strings.Count(string(d1), "\n") != 2 || !strings.Contains(string(d1), "Hello, monday!") {
		t.Errorf("Unexpected day one file: %q", d1)
	}
	if strings.Count(string(d2), "\n") != 1 || !strings.Contains(string(d2), "Hello, tuesday!") {
		t.Errorf("Unexpected day two file: %q", d2)
	}
}

func TestLogger_ConcurrentLines(t *testing.T) {
	dir := t.TempDir()
	out := &syncBuffer{}
	l := New(newCatalog(t, dir), Config{Stdout: out, Stderr: out})

	const goroutines = 10
	const msgs = 40
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < msgs; i++ {
				l.Info(Worker{}, "conn.lost", g, i)
			}
		}(g)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != goroutines*msgs {
		t.Fatalf("Expected %d lines, got %d", goroutines*msgs, len(lines))
	}
	for _, line := range lines {
		if !strings.Contains(line, "]-[INFO]-[Worker......] Connection to ") || !strings.HasSuffix(line, " retries") {
			t.Fatalf("Torn line: %q", line)
		}
	}
	if got := l.File().Stats().Written[core.InfoLevel]; got != goroutines*msgs {
		t.Errorf("Expected %d file lines, got %d", goroutines*msgs, got)
	}
}

func TestLogger_FileFailureContained(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	l, stdout, stderr := newTestLogger(t, filepath.Join(blocker, "logs"))

	l.Info(Worker{}, "started")
	l.Error(Worker{}, "started")
	l.Info(Worker{}, "started")

	if got := strings.Count(stdout.String(), "Service started"); got != 2 {
		t.Errorf("Expected console output despite file failure, got %d lines", got)
	}
	if got := strings.Count(stderr.String(), "log write failed"); got != 1 {
		t.Errorf("Expected exactly one failure report, got %d in %q", got, stderr.String())
	}
	if !strings.Contains(stderr.String(), "]-[ERROR]-[Logger......] log write failed") {
		t.Errorf("Unexpected failure report: %q", stderr.String())
	}
	if l.Failures() != 3 {
		t.Errorf("Failures() = %d, want 3", l.Failures())
	}
}

type panickingHandler struct{}

func (panickingHandler) Handle(*core.Record) error { panic("sink exploded") }
func (panickingHandler) Close() error              { return nil }

func TestLogger_HandlerPanicContained(t *testing.T) {
	l := NewBuilder().WithHandler(panickingHandler{}).Build()

	l.Info(Worker{}, "anything")

	if l.Failures() != 1 {
		t.Errorf("Failures() = %d, want 1", l.Failures())
	}
}

func TestLogger_NoHandler(t *testing.T) {
	l := NewBuilder().Build()
	l.Info(Worker{}, "nothing")
	if err := l.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestCallerName(t *testing.T) {
	type local struct{}
	tests := []struct {
		name   string
		caller any
		want   string
	}{
		{"string", "Net", "Net"},
		{"struct", Worker{}, "Worker"},
		{"pointer", &Worker{}, "Worker"},
		{"typed nil pointer", (*Worker)(nil), "Worker"},
		{"local type", local{}, "local"},
		{"nil", nil, "nil"},
		{"builtin", 42, "int"},
		{"unnamed", []string{}, "[]string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CallerName(tt.caller); got != tt.want {
				t.Errorf("CallerName(%v) = %q, want %q", tt.caller, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INF", InfoLevel, false},
		{" warning ", WarnLevel, false},
		{"ERR", ErrorLevel, false},
		{"fatal", InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultLogger(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	var stdout, stderr bytes.Buffer
	SetDefault(New(newCatalog(t, ""), Config{Stdout: &stdout, Stderr: &stderr, Now: fixedClock}))

	Info(Worker{}, "greet", "default")
	Warn(Worker{}, "x")
	Error(Worker{}, "started")
	Fault(Worker{}, errors.New("kaput"))
	Debug(Worker{}, "dbg")

	if !strings.Contains(stdout.String(), "Hello, default!") || !strings.Contains(stdout.String(), "] dbg\n") {
		t.Errorf("Unexpected stdout: %q", stdout.String())
	}
	for _, want := range []string{"]-[WARN]-[Worker......] x\n", "] Service started\n", "] kaput\n"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("Expected %q in stderr, got %q", want, stderr.String())
		}
	}
}

func TestInit(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.properties")
	msgs := filepath.Join(dir, "messages.properties")
	os.WriteFile(cfg, []byte("write.log.files=false\ndisplay.date.format=HH:mm\n"), 0644)
	os.WriteFile(msgs, []byte("greet=Hello, {0}!\n"), 0644)

	if err := Init(cfg, msgs); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if Default() == prev {
		t.Error("Expected Init to replace the default logger")
	}

	installed := Default()
	var cle *catalog.ConfigLoadError
	if err := Init(filepath.Join(dir, "missing.properties"), msgs); !errors.As(err, &cle) {
		t.Errorf("Expected *ConfigLoadError, got %v", err)
	}
	if Default() != installed {
		t.Error("Failed Init must keep the previous default")
	}
}
