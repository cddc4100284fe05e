package quadtree

import (
	"encoding/binary"
	"math"
)

// Record fields are packed little-endian. This is a fixed choice, not a
// negotiated wire format: the persisted file is only portable between hosts
// that agree on float representation and this byte order.
var byteOrder = binary.LittleEndian

func putU64(b []byte, v uint64) { byteOrder.PutUint64(b, v) }
func getU64(b []byte) uint64    { return byteOrder.Uint64(b) }

func putU32(b []byte, v uint32) { byteOrder.PutUint32(b, v) }
func getU32(b []byte) uint32    { return byteOrder.Uint32(b) }

func putF64(b []byte, v float64) { byteOrder.PutUint64(b, math.Float64bits(v)) }
func getF64(b []byte) float64    { return math.Float64frombits(byteOrder.Uint64(b)) }
