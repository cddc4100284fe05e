package quadtree

// queryAryInitialCap is the starting capacity of QueryArray's result slice.
const queryAryInitialCap = 32

// QueryArray collects the points of t lying within region into a slice,
// draining an Iterator point by point. When maxn is non-zero at most maxn
// points are returned. The returned slice is owned by the caller.
func (t *FinalTree) QueryArray(region Quadrant, maxn uint64) []Point {
	out := make([]Point, 0, queryAryInitialCap)
	it := t.Query(region)
	for {
		if maxn > 0 && uint64(len(out)) >= maxn {
			break
		}
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

// QueryArrayFast is QueryArray at leaf granularity: a leaf whose subtree is
// fully enclosed in region is appended wholesale, skipping per-point
// filtering. It returns the same multiset of points as QueryArray for every
// tree and region.
func (t *FinalTree) QueryArrayFast(region Quadrant, maxn uint64) []Point {
	out := make([]Point, 0, queryAryInitialCap)
	it := t.Query(region)
	for it.haveLeaf {
		if maxn > 0 && uint64(len(out)) >= maxn {
			break
		}
		out = t.includeLeaf(out, it.leaf, region, it.stack[it.so].withinParent)
		it.popLeaf()
	}
	if maxn > 0 && uint64(len(out)) > maxn {
		out = out[:maxn]
	}
	return out
}

// includeLeaf appends the matching points of the leaf at off to out. When
// within is true the leaf's whole subtree lies inside region and every point
// is taken verbatim; otherwise each point is filtered individually.
func (t *FinalTree) includeLeaf(out []Point, off uint64, region Quadrant, within bool) []Point {
	n := t.leafLen(off)

	// Grow once for the whole leaf, doubling past the requirement, rather
	// than letting append reallocate mid-copy.
	if required := uint64(len(out)) + n; required > uint64(cap(out)) {
		grown := make([]Point, len(out), 2*required)
		copy(grown, out)
		out = grown
	}

	if within {
		for i := uint64(0); i < n; i++ {
			out = append(out, t.leafPoint(off, i))
		}
		return out
	}

	if n > 0 && pointFilterHook != nil {
		pointFilterHook()
	}
	for i := uint64(0); i < n; i++ {
		p := t.leafPoint(off, i)
		if pointInRect(p.X, p.Y, region) {
			out = append(out, p)
		}
	}
	return out
}
