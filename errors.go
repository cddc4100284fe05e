package quadtree

import "errors"

// Sentinel errors returned by the build, finalise, save and load paths. Wrap
// with fmt.Errorf("%w: ...", Err) to attach detail while keeping errors.Is
// usable at call sites.
var (
	// ErrInvalidRegion is returned by NewBuilder when the supplied region
	// does not satisfy ne.X > sw.X && ne.Y > sw.Y.
	ErrInvalidRegion = errors.New("quadtree: invalid region")

	// ErrOutOfRegionInsert is returned by Builder.Insert when the point's
	// coordinates fall outside the tree's bounding region.
	ErrOutOfRegionInsert = errors.New("quadtree: point outside region")

	// ErrAlreadyFinalized is returned by Builder.Insert or Builder.Finalize
	// when called on a builder that has already been finalized. A finalized
	// builder has transferred (and freed) its transient tree.
	ErrAlreadyFinalized = errors.New("quadtree: builder already finalized")

	// ErrIOFailure wraps open/stat/read/write failures from Save and Load.
	ErrIOFailure = errors.New("quadtree: i/o failure")

	// ErrCorruptFile is returned by Load when the file is too small to hold
	// even a header. Beyond this minimal size check, the persisted format is
	// trusted: no internal offset validation is performed.
	ErrCorruptFile = errors.New("quadtree: file too small to be a quadtree")
)
