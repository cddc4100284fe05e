package quadtree

import (
	"fmt"
	"io"
	"os"
)

// Save writes the finalized buffer to path in a single call, truncating any
// existing file. The persisted form is a raw copy of the in-memory layout:
// it is only portable between hosts that agree on float representation and
// the record byte order.
func (t *FinalTree) Save(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrIOFailure, path, err)
	}
	if _, err := f.Write(t.buf); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %v", ErrIOFailure, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrIOFailure, path, err)
	}
	return nil
}

// Load reads a file written by Finalize or Save back into memory and exposes
// it as a FinalTree. The file is read in page-sized chunks, and after each
// chunk the kernel is advised that the file pages are no longer needed, so a
// bulk load does not evict more useful data from the page cache. No internal
// offset validation is performed; the format is trusted.
func Load(path string) (*FinalTree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrIOFailure, path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrIOFailure, path, err)
	}

	buf := make([]byte, info.Size())
	pagesize := int64(os.Getpagesize())
	fd := int(f.Fd())

	for off := int64(0); off < info.Size(); off += pagesize {
		end := off + pagesize
		if end > info.Size() {
			end = info.Size()
		}
		if _, err := io.ReadFull(f, buf[off:end]); err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrIOFailure, path, err)
		}
		fadviseDontNeed(fd, off, end-off)
	}

	return newFinalTree(buf)
}
