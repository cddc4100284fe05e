//go:build !linux

package quadtree

// fadviseDontNeed is a no-op on platforms without posix_fadvise.
func fadviseDontNeed(fd int, off, n int64) {}
