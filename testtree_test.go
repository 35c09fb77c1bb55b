package crawl

import (
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"
)

// buildTestTree creates:
//
//	root/a.txt
//	root/b.txt
//	root/c.txt
//	root/sub/x.txt
//	root/dir1/file2.txt
//	root/dir1/dir2/file3.txt
//	root/dir3/file4.txt
//
// and returns the root. Individual tests that need a narrower tree build
// their own with t.TempDir() directly.
func buildTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	write := func(rel, content string) {
		t.Helper()
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}

	write("a.txt", "a")
	write("b.txt", "b")
	write("c.txt", "c")
	write(filepath.Join("sub", "x.txt"), "x")
	write(filepath.Join("dir1", "file2.txt"), "2")
	write(filepath.Join("dir1", "dir2", "file3.txt"), "3")
	write(filepath.Join("dir3", "file4.txt"), "4")

	return root
}

// collectingAction records every visited path, guarded by a mutex so it's
// safe for the pool and recursive strategies to share.
type collectingAction struct {
	mu    sync.Mutex
	paths []string
}

func (c *collectingAction) Visit(item WorkItem) {
	c.mu.Lock()
	c.paths = append(c.paths, item.Path())
	c.mu.Unlock()
}

func (c *collectingAction) sorted() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.paths))
	copy(out, c.paths)
	sort.Strings(out)
	return out
}
