package crawl

import "sync"

// dedupeState tracks which (device, inode) pairs a run has already
// delivered, so a regular file reachable through two hardlinked paths is
// only visited once. It's a plain mutex-guarded map rather than anything
// lock-free: dedupe checks happen once per regular-file leaf, nowhere near
// the contention the termination protocol's counter sees.
type dedupeState struct {
	mu   sync.Mutex
	seen map[inodeKey]struct{}
}

func newDedupeState() *dedupeState {
	return &dedupeState{seen: make(map[inodeKey]struct{})}
}

// markAndCheck reports whether path has already been delivered under a
// different name. A path whose inode can't be looked up is never
// considered a duplicate of anything.
func (d *dedupeState) markAndCheck(path string) (duplicate bool) {
	key, ok := lookupInode(path)
	if !ok {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.seen[key]; exists {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

// skipDuplicateLeaf is the single place every strategy funnels a
// regular-file leaf through before delivering it to the action. Only
// regular files are deduped: directories are never revisited by any
// strategy's own bookkeeping, and symlinks/other inode kinds carry their
// own identity regardless of what they point to.
func (c *config) skipDuplicateLeaf(item WorkItem) bool {
	if c.dedupe == nil || !item.IsFile() {
		return false
	}
	if !c.dedupe.markAndCheck(item.Path()) {
		return false
	}
	if c.stats != nil {
		c.stats.duplicates.Add(1)
	}
	return true
}
