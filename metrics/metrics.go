package metrics

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/msglog/core"
	"github.com/philipp01105/msglog/handler"
	"github.com/philipp01105/msglog/logger"
)

// Sink names used by ForLogger
const (
	ConsoleSink = "console"
	FileSink    = "file"
)

var levels = []core.Level{core.DebugLevel, core.InfoLevel, core.WarnLevel, core.ErrorLevel}

// Collector exports the counters of named sinks as Prometheus metrics.
// Values are read from the sinks at scrape time.
type Collector struct {
	mu       sync.RWMutex
	sinks    map[string]handler.StatsProvider
	failures func() uint64

	lines       *prometheus.Desc
	writeErrors *prometheus.Desc
	contained   *prometheus.Desc
}

// NewCollector creates a Collector without sinks
func NewCollector() *Collector {
	return &Collector{
		sinks: make(map[string]handler.StatsProvider),
		lines: prometheus.NewDesc(
			"msglog_lines_total",
			"Total number of log lines written",
			[]string{"sink", "level"}, nil,
		),
		writeErrors: prometheus.NewDesc(
			"msglog_write_errors_total",
			"Total number of failed log writes",
			[]string{"sink"}, nil,
		),
		contained: prometheus.NewDesc(
			"msglog_contained_failures_total",
			"Total number of log calls whose failure was contained by the logger",
			nil, nil,
		),
	}
}

// ForLogger creates a Collector over the console and file sinks of l and
// its failure count.
func ForLogger(l *logger.Logger) *Collector {
	c := NewCollector()
	if console := l.Console(); console != nil {
		c.AddSink(ConsoleSink, console)
	}
	if file := l.File(); file != nil {
		c.AddSink(FileSink, file)
	}
	c.SetFailureSource(l.Failures)
	return c
}

// AddSink registers p under name, replacing an earlier sink of that name
func (c *Collector) AddSink(name string, p handler.StatsProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sinks[name] = p
}

// SetFailureSource sets the function reporting contained failures
func (c *Collector) SetFailureSource(f func() uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = f
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.lines
	ch <- c.writeErrors
	ch <- c.contained
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.sinks))
	for name := range c.sinks {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		snap := c.sinks[name].Stats()
		for _, level := range levels {
			ch <- prometheus.MustNewConstMetric(c.lines, prometheus.CounterValue,
				float64(snap.Written[level]), name, level.String())
		}
		ch <- prometheus.MustNewConstMetric(c.writeErrors, prometheus.CounterValue,
			float64(snap.FailedTotal), name)
	}

	if c.failures != nil {
		ch <- prometheus.MustNewConstMetric(c.contained, prometheus.CounterValue, float64(c.failures()))
	}
}
