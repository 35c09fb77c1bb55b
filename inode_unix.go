//go:build unix

package crawl

import "golang.org/x/sys/unix"

// inodeKey identifies a file by its (device, inode) pair, the cheapest way
// to recognize that two different paths name the same underlying file —
// the case a hardlink produces.
type inodeKey struct {
	dev uint64
	ino uint64
}

// lookupInode stats path and reports its device/inode pair. ok is false if
// the stat call fails, which the caller treats as "can't dedupe this one,
// deliver it anyway."
func lookupInode(path string) (inodeKey, bool) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return inodeKey{}, false
	}
	return inodeKey{dev: uint64(st.Dev), ino: uint64(st.Ino)}, true
}
