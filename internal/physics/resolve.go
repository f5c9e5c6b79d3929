package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Resolution is the outcome of pushing a body out of the static world.
type Resolution struct {
	Position rl.Vector3
	Velocity rl.Vector3
	// Grounded is set when any contact pushed the body up (+Y).
	Grounded bool
	// Contacts counts the colliders the body overlapped.
	Contacts int
}

// ResolveStatic pushes a box of the given half extents, centered at pos,
// out of every overlapping collider. Colliders are visited once each in
// slice order and only one axis is corrected per contact; the box is
// rebuilt after each correction so later colliders see the moved body.
// Velocity along a corrected axis is zeroed. Degenerate colliders are skipped.
func ResolveStatic(pos, vel, half rl.Vector3, colliders []AABB) Resolution {
	res := Resolution{Position: pos, Velocity: vel}
	body := NewAABBFromHalfExtents(pos, half)

	for _, c := range colliders {
		if c.Degenerate() {
			continue
		}
		axis, push, ok := body.Penetration(c)
		if !ok {
			continue
		}
		res.Contacts++

		switch axis {
		case AxisX:
			res.Position.X += push
			res.Velocity.X = 0
		case AxisY:
			res.Position.Y += push
			res.Velocity.Y = 0
			if push > 0 {
				res.Grounded = true
			}
		case AxisZ:
			res.Position.Z += push
			res.Velocity.Z = 0
		}

		body = NewAABBFromHalfExtents(res.Position, half)
	}

	return res
}
