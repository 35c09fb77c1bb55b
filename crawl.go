// Package crawl traverses a rooted filesystem subtree and invokes a
// caller-supplied action on every discovered entry. It offers three
// interchangeable strategies — a single-worker baseline, a recursive
// goroutine-per-entry spawn, and a fixed-size worker pool sharing one LIFO
// stack — all producing the same observable effect: the action is invoked
// exactly once per reachable non-directory entry.
//
// The pool strategy is the package's centerpiece: a distributed termination
// protocol in which idle workers race to decide, via a single sequentially
// consistent counter, that the crawl is globally complete without a
// condition variable and without ever returning while work remains.
//
// Basic usage:
//
//	err := crawl.Crawl(root, crawl.ActionFunc(func(item crawl.WorkItem) {
//		fmt.Println(item.Path())
//	}), crawl.WithStrategy(crawl.StrategyPool), crawl.WithWorkers(8))
package crawl

import "context"

// Strategy selects which traversal implementation Crawl uses.
type Strategy int

const (
	// StrategyAuto picks Single when the configured worker count is 1 or
	// fewer, and Pool otherwise — the same "sync vs. async" split the
	// reference driver exposes as worker count > 1.
	StrategyAuto Strategy = iota
	// StrategySingle is the iterative, single-goroutine DFS baseline.
	StrategySingle
	// StrategyPool is the fixed-worker, shared-LIFO-stack strategy.
	StrategyPool
	// StrategyRecursive spawns one goroutine per directory entry, joined
	// through a shared handle channel.
	StrategyRecursive
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategySingle:
		return "single"
	case StrategyPool:
		return "pool"
	case StrategyRecursive:
		return "recursive"
	default:
		return "auto"
	}
}

type config struct {
	strategy  Strategy
	workers   int
	ctx       context.Context
	errorSink ErrorSink
	stats     *RunStats
	dedupe    *dedupeState
}

func newConfig(opts []Option) *config {
	cfg := &config{
		strategy: StrategyAuto,
		workers:  1,
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	if cfg.strategy == StrategyAuto {
		if cfg.workers > 1 {
			cfg.strategy = StrategyPool
		} else {
			cfg.strategy = StrategySingle
		}
	}
	return cfg
}

// Option configures a Crawl invocation.
type Option func(*config)

// WithStrategy pins the traversal strategy instead of letting Crawl infer
// one from the worker count.
func WithStrategy(s Strategy) Option {
	return func(c *config) { c.strategy = s }
}

// WithWorkers sets the pool strategy's worker count. Values less than 1 are
// clamped to 1. Ignored by the single and recursive strategies.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithContext attaches a cancellation context, honored by the recursive
// strategy at each task-spawn boundary. The single and pool strategies run
// to completion regardless — there is no cancellation surface for the core
// termination protocol itself.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithErrorSink attaches an observer for enumeration failures. The sink
// never influences traversal; it exists purely so a caller can log or count
// errors the library itself treats as eagerly lossy.
func WithErrorSink(sink ErrorSink) Option {
	return func(c *config) { c.errorSink = sink }
}

// WithStats attaches a RunStats to be populated as the crawl runs. Callers
// own its lifetime and may read it once Crawl returns.
func WithStats(stats *RunStats) Option {
	return func(c *config) { c.stats = stats }
}

// WithDedupeHardlinks enables (device, inode)-based deduplication: a
// regular file reachable through two hardlinked paths is delivered to the
// action only the first time it's encountered. Unavailable on platforms
// without a cheap stat-based inode (Windows), where it's silently a no-op.
func WithDedupeHardlinks() Option {
	return func(c *config) { c.dedupe = newDedupeState() }
}

// Crawl walks the subtree rooted at root, invoking action once for every
// reachable non-directory entry (and for entries whose kind a metadata
// probe failed to determine). It returns once the chosen strategy has
// observed the subtree is exhausted.
func Crawl(root string, action Action, opts ...Option) error {
	cfg := newConfig(opts)
	if cfg.stats != nil {
		cfg.stats.Strategy = cfg.strategy
		cfg.stats.Workers = cfg.workers
		defer cfg.stats.finish()
	}
	switch cfg.strategy {
	case StrategySingle:
		return runSingle(root, action, cfg)
	case StrategyRecursive:
		return runRecursive(root, action, cfg)
	default:
		return runPool(root, action, cfg)
	}
}
