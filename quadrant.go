package quadtree

// Quadrant is an axis-aligned rectangle: the region spans [MinX,MaxX] on the
// X axis and [MinY,MaxY] on the Y axis, closed on both ends. Above an empty
// leaf, every Quadrant in a tree satisfies MaxX > MinX && MaxY > MinY.
type Quadrant struct {
	MinX, MinY, MaxX, MaxY float64
}

// quadIndex names the four children of an inner node. The numeric ordering
// is part of the on-disk record layout: bit 0 is east/west, bit 1 is
// south/north.
type quadIndex uint8

const (
	quadNW quadIndex = 0
	quadNE quadIndex = 1
	quadSW quadIndex = 2
	quadSE quadIndex = 3
)

// valid reports whether q satisfies the tree's region invariant.
func (q Quadrant) valid() bool {
	return q.MaxX > q.MinX && q.MaxY > q.MinY
}

// midpoint returns the dividing coordinates used to pick a child quadrant.
// Callers retain the returned values down the insertion/query path rather
// than recomputing them from an ancestor, so that a point landing exactly on
// a boundary is classified identically during both build and query.
func (q Quadrant) midpoint() (midX, midY float64) {
	return q.MinX + (q.MaxX-q.MinX)/2, q.MinY + (q.MaxY-q.MinY)/2
}

// quadrantFor picks the child quadrant for (x, y) within q, and returns the
// narrowed rectangle for that child. Points on a midpoint boundary are
// assigned to the north/east child.
func (q Quadrant) quadrantFor(x, y float64) (quadIndex, Quadrant) {
	midX, midY := q.midpoint()
	child := q
	var idx quadIndex
	if x >= midX {
		idx |= quadNE // east bit
		child.MinX = midX
	} else {
		child.MaxX = midX
	}
	if y >= midY {
		child.MinY = midY // north carries no bit
	} else {
		idx |= quadSW // south bit
		child.MaxY = midY
	}
	return idx, child
}

// split computes the four child rectangles of q, indexed by quadNW..quadSE.
func (q Quadrant) split() [4]Quadrant {
	midX, midY := q.midpoint()
	var out [4]Quadrant
	out[quadNE] = Quadrant{MinX: midX, MinY: midY, MaxX: q.MaxX, MaxY: q.MaxY}
	out[quadSE] = Quadrant{MinX: midX, MinY: q.MinY, MaxX: q.MaxX, MaxY: midY}
	out[quadSW] = Quadrant{MinX: q.MinX, MinY: q.MinY, MaxX: midX, MaxY: midY}
	out[quadNW] = Quadrant{MinX: q.MinX, MinY: midY, MaxX: midX, MaxY: q.MaxY}
	return out
}

// overlap reports whether a and b share at least one point.
func overlap(a, b Quadrant) bool {
	return a.MinX <= b.MaxX && a.MinY <= b.MaxY &&
		a.MaxX >= b.MinX && a.MaxY >= b.MinY
}

// contains reports whether inner lies entirely within outer.
func contains(inner, outer Quadrant) bool {
	return inner.MinX >= outer.MinX && inner.MinY >= outer.MinY &&
		inner.MaxX <= outer.MaxX && inner.MaxY <= outer.MaxY
}

// pointInRect reports whether (x, y) lies within q, closed on both axes.
func pointInRect(x, y float64, q Quadrant) bool {
	return x >= q.MinX && x <= q.MaxX && y >= q.MinY && y <= q.MaxY
}
