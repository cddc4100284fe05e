package quadtree

// Packed record sizes. The header is a fixed 64 bytes: the bounding region
// (4 doubles), the item count, the maximum depth plus 4 bytes of padding,
// and the inner and leaf counts. Inner records follow the header; leaf
// records follow the inner region.
const (
	headerSize   = 4*8 + 8 + 4 + 4 + 8 + 8
	innerRecSize = 4 * 8
	leafHdrSize  = 8
)

// Header field offsets.
const (
	hdrOffRegion   = 0
	hdrOffSize     = 32
	hdrOffMaxDepth = 40
	hdrOffNInners  = 48
	hdrOffNLeafs   = 56
)

// finalizeState tracks the two write cursors of the single finalisation
// pass: nextInner counts inner records emitted so far, and nextLeaf is the
// byte offset (from the inner-region base) at which the next leaf record
// will be written. Writes only ever move forward, so no fix-up pass is
// needed.
type finalizeState struct {
	buf       []byte
	nextInner uint64
	nextLeaf  uint64
}

// Finalize packs the built tree into a single contiguous buffer and returns
// it as an immutable FinalTree. If path is non-empty the buffer is also
// written to that file in one call; the result can later be recovered with
// Load. Finalize consumes the builder: its transient tree is released and
// further Insert or Finalize calls fail with ErrAlreadyFinalized.
func (b *Builder) Finalize(path string) (*FinalTree, error) {
	if b.finalized {
		return nil, ErrAlreadyFinalized
	}

	total := headerSize +
		b.ninners*innerRecSize +
		b.nleafs*leafHdrSize +
		b.size*pointRecSize

	st := &finalizeState{
		buf:      make([]byte, total),
		nextLeaf: b.ninners * innerRecSize,
	}

	putF64(st.buf[hdrOffRegion+0:], b.region.MinX)
	putF64(st.buf[hdrOffRegion+8:], b.region.MinY)
	putF64(st.buf[hdrOffRegion+16:], b.region.MaxX)
	putF64(st.buf[hdrOffRegion+24:], b.region.MaxY)
	putU64(st.buf[hdrOffSize:], b.size)
	putU32(st.buf[hdrOffMaxDepth:], b.maxDepth)
	putU64(st.buf[hdrOffNInners:], b.ninners)
	putU64(st.buf[hdrOffNLeafs:], b.nleafs)

	st.emitInner(b.root.inner, 0)

	// Drop the transient tree so the garbage collector can reclaim it.
	b.root = nil
	b.finalized = true

	t, err := newFinalTree(st.buf)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := t.Save(path); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// emitInner writes the record for in at byte offset off (from the
// inner-region base), then recurses into its children in quadrant order.
// Each child's destination is known before descending: the next free inner
// slot if the child is an inner, the leaf cursor if it is a leaf. The root
// is therefore always at offset 0 and every child occupies a later, disjoint
// range of the buffer.
func (st *finalizeState) emitInner(in *transInner, off uint64) {
	rec := st.buf[headerSize+off:]
	st.nextInner++

	for q := 0; q < 4; q++ {
		child := in.quadrants[q]
		if child == nil {
			putU64(rec[q*8:], 0)
			continue
		}
		if child.inner != nil {
			childOff := st.nextInner * innerRecSize
			putU64(rec[q*8:], childOff)
			st.emitInner(child.inner, childOff)
		} else {
			childOff := st.nextLeaf
			putU64(rec[q*8:], childOff)
			st.emitLeaf(child.leaf, childOff)
		}
	}
}

// emitLeaf writes the count followed by the inline point records, and
// advances the leaf cursor past them.
func (st *finalizeState) emitLeaf(leaf *transLeaf, off uint64) {
	rec := st.buf[headerSize+off:]
	n := uint64(len(leaf.items))
	putU64(rec, n)
	for i, p := range leaf.items {
		putPoint(rec[leafHdrSize+i*pointRecSize:], p)
	}
	st.nextLeaf = off + leafHdrSize + n*pointRecSize
}
