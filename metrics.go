package crawl

import (
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// RunStats is a diagnostic aggregate collected alongside a crawl. It plays
// no part in the termination protocol — that's ActiveCount's job, and
// ActiveCount stays on sync/atomic for the sequential-consistency guarantee
// the termination proof needs. RunStats instead uses xsync's sharded
// Counter, which trades strict total ordering for low contention across
// many concurrent writers, which is exactly the tradeoff a best-effort
// "how many files did we see" tally wants.
type RunStats struct {
	RunID    uuid.UUID
	Strategy Strategy
	Workers  int
	Started  time.Time
	Elapsed  time.Duration

	files      *xsync.Counter
	symlinks   *xsync.Counter
	others     *xsync.Counter
	dirs       *xsync.Counter
	errors     *xsync.Counter
	duplicates *xsync.Counter
}

// NewRunStats allocates a fresh, zeroed RunStats for a crawl about to start
// under the given strategy and worker count.
func NewRunStats(strategy Strategy, workers int) *RunStats {
	return &RunStats{
		RunID:      uuid.New(),
		Strategy:   strategy,
		Workers:    workers,
		Started:    time.Now(),
		files:      xsync.NewCounter(),
		symlinks:   xsync.NewCounter(),
		others:     xsync.NewCounter(),
		dirs:       xsync.NewCounter(),
		errors:     xsync.NewCounter(),
		duplicates: xsync.NewCounter(),
	}
}

// Files is the number of regular-file leaves delivered to the action.
func (s *RunStats) Files() int64 { return s.files.Value() }

// Symlinks is the number of symlink leaves delivered to the action.
func (s *RunStats) Symlinks() int64 { return s.symlinks.Value() }

// Others is the number of non-file, non-symlink leaves delivered to the
// action (sockets, FIFOs, devices, and items an errored predicate couldn't
// classify).
func (s *RunStats) Others() int64 { return s.others.Value() }

// DirsExpanded is the number of directories successfully enumerated.
func (s *RunStats) DirsExpanded() int64 { return s.dirs.Value() }

// Errors is the number of enumeration failures encountered.
func (s *RunStats) Errors() int64 { return s.errors.Value() }

// Duplicates is the number of regular-file leaves skipped because another
// path in the same run already reached the same (device, inode) pair. Only
// nonzero when WithDedupeHardlinks is set.
func (s *RunStats) Duplicates() int64 { return s.duplicates.Value() }

// observeLeaf records a delivered leaf item by kind.
func (s *RunStats) observeLeaf(item WorkItem) {
	switch {
	case item.IsFile():
		s.files.Add(1)
	case item.IsSymlink():
		s.symlinks.Add(1)
	default:
		s.others.Add(1)
	}
}

// finish stamps the elapsed wall time since the run started.
func (s *RunStats) finish() {
	s.Elapsed = time.Since(s.Started)
}
