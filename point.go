package quadtree

// Point is a 2-D coordinate carrying an opaque 64-bit payload. The payload is
// never interpreted by the tree; callers typically store an identifier into
// an external table.
type Point struct {
	Value uint64
	X, Y  float64
}

// pointRecSize is the packed on-disk size of one point: 8 bytes payload
// followed by the X and Y coordinates.
const pointRecSize = 8 + 8 + 8

func putPoint(b []byte, p Point) {
	putU64(b[0:], p.Value)
	putF64(b[8:], p.X)
	putF64(b[16:], p.Y)
}

func getPoint(b []byte) Point {
	return Point{
		Value: getU64(b[0:]),
		X:     getF64(b[8:]),
		Y:     getF64(b[16:]),
	}
}

// sameCoords reports whether two points are coordinate-identical. Payloads
// are ignored: a bucket of equal coordinates cannot be subdivided no matter
// what it carries.
func sameCoords(a, b Point) bool {
	return a.X == b.X && a.Y == b.Y
}
