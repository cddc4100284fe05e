package quadtree

// itrFrame is one level of the iterator's hand-managed descent stack. The
// four child rectangles are computed once on entry; re-deriving them from an
// ancestor would compound floating-point error and could classify a boundary
// point differently than the build did.
type itrFrame struct {
	off       uint64
	quadrants [4]Quadrant
	quadrant  quadIndex

	// withinParent is true when the rectangle this node partitions is
	// fully contained in the query region, so every point beneath it
	// matches without per-point filtering. It is monotonic downward.
	withinParent bool
}

// Iterator yields the points of a FinalTree that lie within a query
// rectangle, one at a time, in depth-first order of the containing leaves
// and in insertion order within each leaf. It owns its descent stack and
// must not outlive the tree. An Iterator must not be shared between
// goroutines, but separate iterators over the same tree are independent.
type Iterator struct {
	t      *FinalTree
	region Quadrant

	stack []itrFrame
	so    int // top-of-stack index; -1 once the root has been popped

	leaf     uint64 // offset of the leaf being drained
	haveLeaf bool
	curItem  uint64
}

// pointFilterHook, when non-nil, is invoked for every leaf drained through
// the per-point filtering path rather than the enclosed-subtree path. Test
// instrumentation only.
var pointFilterHook func()

// Query returns an iterator over the points of t that lie within region,
// closed on both axes.
func (t *FinalTree) Query(region Quadrant) *Iterator {
	it := &Iterator{
		t:      t,
		region: region,
		// One frame per level of the deepest descent; the root needs a
		// frame even in a tree that never saw an insert.
		stack: make([]itrFrame, t.maxDepth+1),
	}
	it.stack[0] = itrFrame{off: 0, quadrants: t.region.split()}
	it.advanceToNextLeaf()
	return it
}

// Next returns the next matching point. The second return value is false
// once the iterator is exhausted.
func (it *Iterator) Next() (Point, bool) {
	for it.haveLeaf {
		f := &it.stack[it.so]
		n := it.t.leafLen(it.leaf)
		if !f.withinParent && it.curItem == 0 && n > 0 && pointFilterHook != nil {
			pointFilterHook()
		}
		for it.curItem < n {
			p := it.t.leafPoint(it.leaf, it.curItem)
			it.curItem++
			if f.withinParent || pointInRect(p.X, p.Y, it.region) {
				return p, true
			}
		}
		it.popLeaf()
	}
	return Point{}, false
}

// popLeaf abandons the current leaf frame and moves the descent to the next
// leaf overlapping the query region, if any.
func (it *Iterator) popLeaf() {
	it.so--
	if it.so >= 0 {
		it.stack[it.so].quadrant++
	}
	it.advanceToNextLeaf()
}

// advanceToNextLeaf walks the stack until the top frame is a leaf (setting
// the leaf cursor) or the root has been popped (marking exhaustion). It
// descends only into child quadrants that overlap the query region; the
// withinParent flag is extended downward as it goes.
func (it *Iterator) advanceToNextLeaf() {
	for it.so >= 0 {
		f := &it.stack[it.so]

		if it.t.isLeafOff(f.off) {
			it.leaf = f.off
			it.haveLeaf = true
			it.curItem = 0
			return
		}

		descended := false
		for f.quadrant < 4 {
			childOff := it.t.innerChild(f.off, f.quadrant)
			if childOff == 0 {
				f.quadrant++
				continue
			}
			childRect := f.quadrants[f.quadrant]
			if !overlap(it.region, childRect) {
				f.quadrant++
				continue
			}

			within := f.withinParent || contains(childRect, it.region)
			it.so++
			it.stack[it.so] = itrFrame{
				off:          childOff,
				quadrants:    childRect.split(),
				withinParent: within,
			}
			descended = true
			break
		}
		if descended {
			continue
		}

		// All four quadrants exhausted; backtrack.
		it.so--
		if it.so >= 0 {
			it.stack[it.so].quadrant++
		}
	}
	it.haveLeaf = false
}
