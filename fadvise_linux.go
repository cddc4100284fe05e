//go:build linux

package quadtree

import "golang.org/x/sys/unix"

// fadviseDontNeed hints that the given file range will not be read again, so
// the kernel may drop it from the page cache. Failure is ignored; the hint
// is advisory.
func fadviseDontNeed(fd int, off, n int64) {
	_ = unix.Fadvise(fd, off, n, unix.FADV_DONTNEED)
}
