package quadtree

import (
	"errors"
	"fmt"
)

// transNode is a node of the transient (build-time) tree. Exactly one of
// inner and leaf is non-nil; a leaf is converted to an inner in place when it
// splits.
type transNode struct {
	inner *transInner
	leaf  *transLeaf
}

// transInner holds up to four children, one per quadrant. A nil entry means
// the quadrant holds no points yet.
type transInner struct {
	quadrants [4]*transNode
}

// transLeaf is a bucket of points. The slice capacity is the bucket size:
// it starts at maxFill and doubles only when the bucket and the point
// overflowing it are all coordinate-identical, which no split can separate.
type transLeaf struct {
	items []Point
}

// Builder accumulates points into a transient quadtree. It is created by
// NewBuilder, mutated only by Insert, and consumed exactly once by Finalize.
// A Builder must not be shared between goroutines.
type Builder struct {
	root    *transNode
	region  Quadrant
	maxFill int

	size     uint64
	maxDepth uint32
	ninners  uint64
	nleafs   uint64

	finalized bool
}

// NewBuilder creates an empty builder over the given bounding region. All
// inserted points must lie within the region, boundary included. maxFill is
// the target upper bound on bucket size; buckets exceed it only when every
// point they hold is coordinate-identical.
func NewBuilder(region Quadrant, maxFill int) (*Builder, error) {
	if !region.valid() {
		return nil, fmt.Errorf("%w: ne (%v,%v) must exceed sw (%v,%v)",
			ErrInvalidRegion, region.MaxX, region.MaxY, region.MinX, region.MinY)
	}
	if maxFill < 1 {
		return nil, errors.New("quadtree: max fill must be at least 1")
	}
	return &Builder{
		root:    &transNode{inner: &transInner{}},
		region:  region,
		maxFill: maxFill,
		ninners: 1, // the root
	}, nil
}

// Insert copies p into the tree. The point must lie within the builder's
// region (boundary included).
func (b *Builder) Insert(p Point) error {
	if b.finalized {
		return ErrAlreadyFinalized
	}
	if !pointInRect(p.X, p.Y, b.region) {
		return fmt.Errorf("%w: (%v,%v)", ErrOutOfRegionInsert, p.X, p.Y)
	}
	b.size++
	b.insert(b.root, p, b.region, 0)
	return nil
}

// insert places p under node, whose region is q. The quadrant is narrowed at
// each inner node using the midpoints of the current level, never recomputed
// from an ancestor, so boundary points classify identically during build and
// query.
func (b *Builder) insert(node *transNode, p Point, q Quadrant, depth uint32) {
	depth++
	if depth > b.maxDepth {
		b.maxDepth = depth
	}

	for {
		if node.inner != nil {
			idx, child := q.quadrantFor(p.X, p.Y)
			if node.inner.quadrants[idx] == nil {
				node.inner.quadrants[idx] = b.newLeafNode()
			}
			b.insert(node.inner.quadrants[idx], p, child, depth)
			return
		}

		if len(node.leaf.items)+1 > b.maxFill {
			b.splitNode(node, p, q, depth)
			if node.inner != nil {
				// The leaf became an inner; go again.
				continue
			}
		}
		node.leaf.items = append(node.leaf.items, p)
		return
	}
}

func (b *Builder) newLeafNode() *transNode {
	b.nleafs++
	return &transNode{leaf: &transLeaf{items: make([]Point, 0, b.maxFill)}}
}

// splitNode handles a bucket that appending pending, the point about to be
// inserted, would push past maxFill. If the bucket cannot be usefully
// divided because its points and pending are all coincident, the bucket is
// kept and grown as needed; this is the only way a leaf may exceed maxFill.
// Otherwise the leaf is converted in place to an inner with four empty
// quadrants and every point is re-inserted under it, using the same region
// and depth it partitions.
func (b *Builder) splitNode(node *transNode, pending Point, q Quadrant, depth uint32) {
	items := node.leaf.items
	if allCoincident(items, pending) {
		if len(items)+1 > cap(items) {
			grown := make([]Point, len(items), 2*cap(items))
			copy(grown, items)
			node.leaf.items = grown
		}
		return
	}

	node.leaf = nil
	node.inner = &transInner{}
	b.ninners++
	b.nleafs--

	// depth-1 undoes the increment insert applies on entry, so the
	// re-inserted points partition the same region at the same depth.
	for _, it := range items {
		b.insert(node, it, q, depth-1)
	}
}

// allCoincident reports whether every point in items shares the coordinates
// of pending. A bucket only refuses to subdivide when the point that
// overflowed it is itself coincident with the whole bucket; a distinct
// arrival always forces a real split.
func allCoincident(items []Point, pending Point) bool {
	for _, it := range items {
		if !sameCoords(it, pending) {
			return false
		}
	}
	return true
}
