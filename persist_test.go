package quadtree

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	pts := randomPoints(rnd, 1000)

	b, err := NewBuilder(unitRegion(), 8)
	require.NoError(t, err)
	for _, p := range pts {
		require.NoError(t, b.Insert(p))
	}

	path := filepath.Join(t.TempDir(), "points.qt")
	ft, err := b.Finalize(path)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, ft.Region(), loaded.Region())
	require.Equal(t, ft.Len(), loaded.Len())
	require.Equal(t, ft.MaxDepth(), loaded.MaxDepth())
	require.Equal(t, ft.Bytes(), loaded.Bytes())

	requireSameMultiset(t, pts, drain(loaded.Query(loaded.Region())))
	requireSameMultiset(t,
		ft.QueryArrayFast(ft.Region(), 0),
		loaded.QueryArrayFast(loaded.Region(), 0))
}

func TestSaveThenLoad(t *testing.T) {
	ft := buildTree(t, unitRegion(), 2, []Point{
		{Value: 1, X: 0.25, Y: 0.25},
		{Value: 2, X: 0.75, Y: 0.75},
		{Value: 3, X: 0.75, Y: 0.25},
	})

	path := filepath.Join(t.TempDir(), "tree.qt")
	require.NoError(t, ft.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.EqualValues(t, len(ft.Bytes()), info.Size())

	loaded, err := Load(path)
	require.NoError(t, err)
	requireSameMultiset(t,
		drain(ft.Query(ft.Region())),
		drain(loaded.Query(loaded.Region())))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file"))
	require.ErrorIs(t, err, ErrIOFailure)
}

func TestLoadTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.qt")
	require.NoError(t, os.WriteFile(path, make([]byte, headerSize-1), 0o600))
	_, err := Load(path)
	require.ErrorIs(t, err, ErrCorruptFile)
}

// TestPackedLayout pins the persisted byte layout: a 64-byte header, 32-byte
// inner records, then leaf records of 8 bytes plus 24 bytes per point, with
// the root inner at offset zero of the inner region.
func TestPackedLayout(t *testing.T) {
	require.Equal(t, 64, headerSize)

	b, err := NewBuilder(Quadrant{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, 1)
	require.NoError(t, err)
	require.NoError(t, b.Insert(Point{Value: 0xAA, X: 1, Y: 1})) // SW
	require.NoError(t, b.Insert(Point{Value: 0xBB, X: 9, Y: 9})) // NE
	ninners, nleafs, size := b.ninners, b.nleafs, b.size

	ft, err := b.Finalize("")
	require.NoError(t, err)

	wantLen := headerSize + ninners*innerRecSize + nleafs*leafHdrSize + size*pointRecSize
	require.EqualValues(t, wantLen, len(ft.Bytes()))

	// Header round-trips through the accessor.
	require.Equal(t, Quadrant{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, ft.Region())
	require.EqualValues(t, 2, ft.Len())
	require.Equal(t, ninners, ft.ninners)
	require.Equal(t, nleafs, ft.nleafs)

	// One inner (the root), two leaves hanging off its SW and NE slots.
	require.EqualValues(t, 1, ft.ninners)
	require.False(t, ft.isLeafOff(0))
	swOff := ft.innerChild(0, quadSW)
	neOff := ft.innerChild(0, quadNE)
	require.EqualValues(t, 0, ft.innerChild(0, quadNW))
	require.EqualValues(t, 0, ft.innerChild(0, quadSE))
	require.True(t, ft.isLeafOff(swOff))
	require.True(t, ft.isLeafOff(neOff))

	// DFS emission order: the NW,NE,SW,SE walk reaches NE's leaf first, so
	// it sits at the leaf-region base and SW's leaf directly after it.
	require.EqualValues(t, ft.leafBase, neOff)
	require.EqualValues(t, ft.leafBase+leafHdrSize+pointRecSize, swOff)

	require.EqualValues(t, 1, ft.leafLen(swOff))
	require.Equal(t, Point{Value: 0xAA, X: 1, Y: 1}, ft.leafPoint(swOff, 0))
	require.Equal(t, Point{Value: 0xBB, X: 9, Y: 9}, ft.leafPoint(neOff, 0))
}
