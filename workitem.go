package crawl

import (
	"io/fs"
	"os"
)

// WorkItem is one pending unit of traversal: either a path freshly supplied
// by the caller (the root, or an item a strategy seeded by hand) or an entry
// already produced by a directory listing. Listing entries carry the
// directory-entry type bits that ReadDir reported for them, so callers
// avoid a second stat syscall; path-only items have no such
// record and probe lazily.
//
// Both origins present the same predicates; callers never branch on which
// one they hold.
type WorkItem struct {
	path  string
	entry fs.DirEntry // nil when the item came from a bare path
}

// FromPath wraps a raw path with no cached listing metadata.
func FromPath(path string) WorkItem {
	return WorkItem{path: path}
}

// FromListing wraps a path together with the os.DirEntry produced when its
// parent directory was read.
func FromListing(path string, entry fs.DirEntry) WorkItem {
	return WorkItem{path: path, entry: entry}
}

// Path returns the filesystem path this item refers to.
func (w WorkItem) Path() string {
	return w.path
}

// IsDir reports whether the item is an existing directory. A symlink whose
// target is a directory returns false here: symlinks are never recursed
// into, only probed at the link level.
func (w WorkItem) IsDir() bool {
	if w.entry != nil {
		return w.entry.Type().IsDir()
	}
	fi, err := os.Lstat(w.path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

// IsFile reports whether the item is a regular file.
func (w WorkItem) IsFile() bool {
	if w.entry != nil {
		return w.entry.Type().IsRegular()
	}
	fi, err := os.Lstat(w.path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular()
}

// IsSymlink reports whether the item is a symbolic link, tested against
// link-level metadata rather than the link's target.
func (w WorkItem) IsSymlink() bool {
	if w.entry != nil {
		return w.entry.Type()&fs.ModeSymlink != 0
	}
	fi, err := os.Lstat(w.path)
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeSymlink != 0
}
