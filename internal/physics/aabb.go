package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is an axis-aligned box. Min <= Max on every axis.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	return NewAABBFromHalfExtents(center, rl.Vector3Scale(size, 0.5))
}

// NewAABBFromHalfExtents creates an AABB spanning center ± half.
func NewAABBFromHalfExtents(center, half rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// Intersects reports whether all three axis intervals overlap.
// Touching faces count as overlapping.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Degenerate reports whether the box has zero extent on any axis.
func (a AABB) Degenerate() bool {
	return a.Min.X >= a.Max.X || a.Min.Y >= a.Max.Y || a.Min.Z >= a.Max.Z
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) Translate(offset rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Add(a.Min, offset),
		Max: rl.Vector3Add(a.Max, offset),
	}
}

// Union returns the smallest box containing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{
		Min: rl.Vector3Min(a.Min, b.Min),
		Max: rl.Vector3Max(a.Max, b.Max),
	}
}

// BoundingBox converts to raylib's box type for debug drawing.
func (a AABB) BoundingBox() rl.BoundingBox {
	return rl.NewBoundingBox(a.Min, a.Max)
}

// Axis identifies one of the three world axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Penetration returns the single-axis push that moves 'a' out of 'b'.
// Each axis resolves toward the nearer face of b; of the three candidates
// the one with the smallest magnitude wins, ties going X, then Y, then Z.
// ok is false when the boxes don't overlap.
func (a AABB) Penetration(b AABB) (axis Axis, push float32, ok bool) {
	if !a.Intersects(b) {
		return AxisX, 0, false
	}

	// Penetration depth in each direction
	dx1 := b.Max.X - a.Min.X // push a in +X
	dx2 := a.Max.X - b.Min.X // push a in -X
	dy1 := b.Max.Y - a.Min.Y // push a in +Y
	dy2 := a.Max.Y - b.Min.Y // push a in -Y
	dz1 := b.Max.Z - a.Min.Z // push a in +Z
	dz2 := a.Max.Z - b.Min.Z // push a in -Z

	px := nearer(dx1, dx2)
	py := nearer(dy1, dy2)
	pz := nearer(dz1, dz2)

	ax, ay, az := abs(px), abs(py), abs(pz)
	switch {
	case ax <= ay && ax <= az:
		return AxisX, px, true
	case ay <= ax && ay <= az:
		return AxisY, py, true
	default:
		return AxisZ, pz, true
	}
}

// Push returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABB) Push(b AABB) rl.Vector3 {
	axis, push, ok := a.Penetration(b)
	if !ok {
		return rl.Vector3Zero()
	}
	return axisVector(axis, push)
}

func axisVector(axis Axis, v float32) rl.Vector3 {
	switch axis {
	case AxisX:
		return rl.Vector3{X: v}
	case AxisY:
		return rl.Vector3{Y: v}
	default:
		return rl.Vector3{Z: v}
	}
}

// nearer picks the smaller of a positive and a negative push on one axis.
func nearer(pos, neg float32) float32 {
	if pos < neg {
		return pos
	}
	return -neg
}
