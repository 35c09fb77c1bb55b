package crawl

import (
	"os"
	"path/filepath"
)

// runSingle is the iterative, single-goroutine DFS baseline: a private
// stack seeded with the root path, popped until empty. No concurrency, no
// shared state — the reference every other strategy must agree with.
func runSingle(root string, action Action, cfg *config) error {
	stack := []WorkItem{FromPath(root)}

	for len(stack) > 0 {
		n := len(stack)
		item := stack[n-1]
		stack = stack[:n-1]

		if item.IsDir() {
			entries, err := os.ReadDir(item.Path())
			if err != nil {
				cfg.recordError("readdir", item.Path(), err)
				continue
			}
			if cfg.stats != nil {
				cfg.stats.dirs.Add(1)
			}
			for _, entry := range entries {
				stack = append(stack, FromListing(filepath.Join(item.Path(), entry.Name()), entry))
			}
			continue
		}

		// File, symlink, errored-predicate, or other inode type: all are
		// leaves that reach the action.
		if cfg.skipDuplicateLeaf(item) {
			continue
		}
		action.Visit(item)
		if cfg.stats != nil {
			cfg.stats.observeLeaf(item)
		}
	}

	return nil
}
