package crawl

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
)

// joinHandle is closed by a spawned task when that task (and everything it
// recurses into) has finished.
type joinHandle = <-chan struct{}

// joinChannel is the recursive strategy's completion ledger: an unbounded
// queue of handles (a buffered channel that the driver empties into its own
// list as fast as handles arrive, before awaiting any of them), plus a
// reference count standing in for the Arc<Sender> clone/drop semantics the
// original design describes — Go channels have no built-in sender
// refcounting, so an atomic int32 plays that role. Every spawned task holds
// one reference for as long as it (and its own spawned children) are still
// running; when the last reference is released, the handle queue closes and
// the driver's drain loop ends.
type joinChannel struct {
	handles chan joinHandle
	refs    int32
}

func newJoinChannel() *joinChannel {
	return &joinChannel{handles: make(chan joinHandle, 4096)}
}

// clone returns a new producer reference to the same channel.
func (j *joinChannel) clone() *joinChannel {
	atomic.AddInt32(&j.refs, 1)
	return j
}

// release drops a producer reference, closing the handle queue once the
// last one is gone.
func (j *joinChannel) release() {
	if atomic.AddInt32(&j.refs, -1) == 0 {
		close(j.handles)
	}
}

// runRecursive spawns one goroutine per directory entry, threading a clone
// of the join channel into each so that deeply nested expansions don't nest
// their awaits: every task's completion handle lands on the same shared
// queue the driver drains directly.
func runRecursive(root string, action Action, cfg *config) error {
	jc := newJoinChannel()
	jc.refs = 1 // the driver's own seed producer

	rootDone := make(chan struct{})
	rootClone := jc.clone()
	jc.handles <- joinHandle(rootDone)

	go func() {
		defer close(rootDone)
		recurseTask(cfg.ctx, rootClone, FromPath(root), action, cfg)
	}()

	jc.release() // driver drops its seed producer

	// Collect every handle before awaiting any: awaiting inline would let a
	// task block on a full handle buffer while the driver waits on that task.
	var pending []joinHandle
	for handle := range jc.handles {
		pending = append(pending, handle)
	}
	for _, handle := range pending {
		<-handle
	}

	return nil
}

// recurseTask processes one item. Directories fan out into one spawned
// goroutine per child, each given its own clone of jc; files, symlinks, and
// unclassifiable items are leaves handled inline without a spawn.
func recurseTask(ctx context.Context, jc *joinChannel, item WorkItem, action Action, cfg *config) {
	defer jc.release()

	select {
	case <-ctx.Done():
		return
	default:
	}

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

	for _, entry := range entries {
		child := FromListing(filepath.Join(item.Path(), entry.Name()), entry)
		done := make(chan struct{})
		childJC := jc.clone()

		select {
		case jc.handles <- joinHandle(done):
		case <-ctx.Done():
			close(done)
			childJC.release()
			continue
		}

		go func(it WorkItem) {
			defer close(done)
			recurseTask(ctx, childJC, it, action, cfg)
		}(child)
	}
}
