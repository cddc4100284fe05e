// Package quadtree implements a point quadtree index for 2-D points carrying
// an opaque 64-bit payload.
//
// A tree has two phases. During the build phase, a *Builder* accepts points
// one at a time and recursively subdivides a bounding region into buckets.
// Calling Finalize packs the built tree into a single contiguous byte buffer
// (a *FinalTree*) that can be queried, saved to disk, and reloaded by raw
// read. FinalTree is immutable; it supports range queries over axis-aligned
// rectangles via an Iterator, or via the QueryArray/QueryArrayFast
// convenience collectors.
//
// A Builder must not be shared between goroutines. Multiple goroutines may
// concurrently query the same FinalTree, and each Iterator owns its own
// descent stack.
package quadtree
