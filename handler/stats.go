package handler

import (
	"sync/atomic"

	"github.com/philipp01105/msglog/core"
)

// Stats tracks handler statistics
type Stats struct {
	// Separate atomic counters per level
	WrittenDebug uint64
	WrittenInfo  uint64
	WrittenWarn  uint64
	WrittenError uint64
	// FailedTotal counts writes that returned an error
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter for a level
func (s *Stats) IncrementWritten(level core.Level) {
	switch level {
	case core.DebugLevel:
		atomic.AddUint64(&s.WrittenDebug, 1)
	case core.InfoLevel:
		atomic.AddUint64(&s.WrittenInfo, 1)
	case core.WarnLevel:
		atomic.AddUint64(&s.WrittenWarn, 1)
	case core.ErrorLevel:
		atomic.AddUint64(&s.WrittenError, 1)
	}
}

// IncrementFailed atomically increments the failure counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetWritten returns the written count for a level
func (s *Stats) GetWritten(level core.Level) uint64 {
	switch level {
	case core.DebugLevel:
		return atomic.LoadUint64(&s.WrittenDebug)
	case core.InfoLevel:
		return atomic.LoadUint64(&s.WrittenInfo)
	case core.WarnLevel:
		return atomic.LoadUint64(&s.WrittenWarn)
	case core.ErrorLevel:
		return atomic.LoadUint64(&s.WrittenError)
	default:
		return 0
	}
}

// GetFailed returns the failure count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// GetTotalWritten returns the total written across all levels
func (s *Stats) GetTotalWritten() uint64 {
	return atomic.LoadUint64(&s.WrittenDebug) +
		atomic.LoadUint64(&s.WrittenInfo) +
		atomic.LoadUint64(&s.WrittenWarn) +
		atomic.LoadUint64(&s.WrittenError)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.WrittenDebug, 0)
	atomic.StoreUint64(&s.WrittenInfo, 0)
	atomic.StoreUint64(&s.WrittenWarn, 0)
	atomic.StoreUint64(&s.WrittenError, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Written     map[core.Level]uint64
	FailedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Written: map[core.Level]uint64{
			core.DebugLevel: s.GetWritten(core.DebugLevel),
			core.InfoLevel:  s.GetWritten(core.InfoLevel),
			core.WarnLevel:  s.GetWritten(core.WarnLevel),
			core.ErrorLevel: s.GetWritten(core.ErrorLevel),
		},
		FailedTotal: s.GetFailed(),
	}
}
