package crawl

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
)

// runPool runs the fixed-worker, shared-stack strategy: N goroutines pop
// from one mutex-guarded LIFO, expanding directories back onto it, until a
// distributed consensus — built entirely from one sequentially consistent
// counter — agrees the subtree is exhausted.
func runPool(root string, action Action, cfg *config) error {
	n := cfg.workers
	if n < 1 {
		n = 1
	}

	stack := newSharedStack()
	stack.pushOne(FromPath(root))

	var active atomic.Int64
	active.Store(int64(n))

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			poolWorker(stack, &active, action, cfg)
		}()
	}
	wg.Wait()

	return nil
}

// poolWorker is one peer in the termination protocol. active starts at N
// (every worker begins ACTIVE). The only way a worker returns is:
//
//   - it just decremented active from 1 to 0 itself (it was the last
//     active worker, and every other worker had therefore already observed
//     an empty stack after its own last expansion — no unpushed children
//     can exist anywhere), or
//   - it observes active already at 0 while itself IDLE (someone else made
//     that same observation first).
//
// All reads and read-modify-writes of active use sequential consistency:
// the proof needs a single total order between one worker's decrement to
// zero and another's terminal load. atomic.Int64's Add and Load both give
// that; a release/acquire pair would still permit a worker to observe zero
// while another is between its pop and its push-back of that pop's
// children.
func poolWorker(stack *sharedStack, active *atomic.Int64, action Action, cfg *config) {
	isActive := true

	for {
		item, ok := stack.pop()
		if !ok {
			if isActive {
				isActive = false
				if active.Add(-1) == 0 {
					return
				}
			} else if active.Load() == 0 {
				return
			}
			runtime.Gosched()
			continue
		}

		if !isActive {
			active.Add(1)
			isActive = true
		}

		expandPool(item, stack, action, cfg)
	}
}

// expandPool processes one popped item. Files, symlinks, and anything a
// metadata probe couldn't classify are leaves delivered straight to the
// action; directories are enumerated and their children pushed back as one
// batch under a single critical section.
func expandPool(item WorkItem, stack *sharedStack, action Action, cfg *config) {
	if !item.IsDir() {
		if cfg.skipDuplicateLeaf(item) {
			return
		}
		action.Visit(item)
		if cfg.stats != nil {
			cfg.stats.observeLeaf(item)
		}
		return
	}

	entries, err := os.ReadDir(item.Path())
	if err != nil {
		cfg.recordError("readdir", item.Path(), err)
		return
	}
	if cfg.stats != nil {
		cfg.stats.dirs.Add(1)
	}

	children := make([]WorkItem, len(entries))
	for i, entry := range entries {
		children[i] = FromListing(filepath.Join(item.Path(), entry.Name()), entry)
	}
	stack.pushBatch(children)
}
