package quadtree

import "fmt"

// FinalTree is an immutable, finalized quadtree backed by a single
// contiguous byte buffer. The buffer is laid out as a fixed header, the
// inner region, then the leaf region; a child offset stored in an inner
// record resolves to a leaf iff it reaches past the inner region. There is
// no per-record tag.
//
// Multiple goroutines may query the same FinalTree concurrently; no query
// path mutates the buffer.
type FinalTree struct {
	buf []byte

	region   Quadrant
	size     uint64
	maxDepth uint32
	ninners  uint64
	nleafs   uint64

	// leafBase is the offset, from the inner-region base, at which the
	// leaf region starts. Offsets at or past it address leaf records.
	leafBase uint64
}

// newFinalTree wraps buf, decoding the header. Beyond checking that buf can
// hold a header, the format is trusted: internal offsets are not validated.
func newFinalTree(buf []byte) (*FinalTree, error) {
	if len(buf) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrCorruptFile, len(buf))
	}
	t := &FinalTree{
		buf: buf,
		region: Quadrant{
			MinX: getF64(buf[hdrOffRegion+0:]),
			MinY: getF64(buf[hdrOffRegion+8:]),
			MaxX: getF64(buf[hdrOffRegion+16:]),
			MaxY: getF64(buf[hdrOffRegion+24:]),
		},
		size:     getU64(buf[hdrOffSize:]),
		maxDepth: getU32(buf[hdrOffMaxDepth:]),
		ninners:  getU64(buf[hdrOffNInners:]),
		nleafs:   getU64(buf[hdrOffNLeafs:]),
	}
	t.leafBase = t.ninners * innerRecSize
	return t, nil
}

// Region returns the bounding rectangle supplied when the tree was built.
func (t *FinalTree) Region() Quadrant { return t.region }

// Len returns the number of points in the tree.
func (t *FinalTree) Len() uint64 { return t.size }

// MaxDepth returns the deepest descent taken by any insert during build.
func (t *FinalTree) MaxDepth() uint32 { return t.maxDepth }

// Bytes returns the backing buffer. The caller must not modify it.
func (t *FinalTree) Bytes() []byte { return t.buf }

// isLeafOff classifies a node offset: offsets past the inner region address
// leaf records. This comparison is the only node-kind discriminator in the
// finalized form.
func (t *FinalTree) isLeafOff(off uint64) bool {
	return off >= t.leafBase
}

// innerChild returns the offset stored in quadrant q of the inner record at
// off, or 0 when the quadrant has no child.
func (t *FinalTree) innerChild(off uint64, q quadIndex) uint64 {
	return getU64(t.buf[headerSize+off+uint64(q)*8:])
}

// leafLen returns the point count of the leaf record at off.
func (t *FinalTree) leafLen(off uint64) uint64 {
	return getU64(t.buf[headerSize+off:])
}

// leafPoint returns point i of the leaf record at off.
func (t *FinalTree) leafPoint(off uint64, i uint64) Point {
	return getPoint(t.buf[headerSize+off+leafHdrSize+i*pointRecSize:])
}
