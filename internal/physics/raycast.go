package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type RaycastHit struct {
	Index    int // position of the hit collider in the slice passed to Raycast
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast checks for intersection with all colliders and returns the closest hit
func Raycast(origin, direction rl.Vector3, maxDistance float32, colliders []AABB) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for i, box := range colliders {
		if hitInfo, ok := raycastBox(origin, direction, box, maxDistance); ok {
			if hitInfo.Distance < closestHit.Distance {
				closestHit = hitInfo
				closestHit.Index = i
				hit = true
			}
		}
	}

	return closestHit, hit
}

// raycastBox is the slab test against one box.
func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	min, max := box.Min, box.Max

	tmin := float32(-1e30)
	tmax := float32(1e30)

	slabs := [3][4]float32{
		{origin.X, direction.X, min.X, max.X},
		{origin.Y, direction.Y, min.Y, max.Y},
		{origin.Z, direction.Z, min.Z, max.Z},
	}
	for _, s := range slabs {
		o, d, lo, hi := s[0], s[1], s[2], s[3]
		if d == 0 {
			if o < lo || o > hi {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1, Y: 0, Z: 0}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1, Y: 0, Z: 0}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: -1, Z: 0}
	} else if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: 1, Z: 0}
	} else if abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{X: 0, Y: 0, Z: -1}
	} else {
		normal = rl.Vector3{X: 0, Y: 0, Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
