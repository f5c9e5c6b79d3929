package world

import (
	"qoom/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

const (
	ViewNear float32 = 0.1
	ViewFar  float32 = 500.0
)

// ExtractFrustum extracts frustum planes from a view matrix and perspective settings
// Uses the Gribb/Hartmann method for plane extraction
func ExtractFrustum(view rl.Matrix, fovy, aspect float32) Frustum {
	proj := rl.MatrixPerspective(fovy*rl.Deg2rad, aspect, ViewNear, ViewFar)

	// Combine view and projection: VP = P * V
	vp := rl.MatrixMultiply(view, proj)

	var f Frustum

	// Left plane: row4 + row1
	f.planes[0] = normalizePlane(Plane{
		normal: rl.Vector3{
			X: vp.M3 + vp.M0,
			Y: vp.M7 + vp.M4,
			Z: vp.M11 + vp.M8,
		},
		distance: vp.M15 + vp.M12,
	})

	// Right plane: row4 - row1
	f.planes[1] = normalizePlane(Plane{
		normal: rl.Vector3{
			X: vp.M3 - vp.M0,
			Y: vp.M7 - vp.M4,
			Z: vp.M11 - vp.M8,
		},
		distance: vp.M15 - vp.M12,
	})

	// Bottom plane: row4 + row2
	f.planes[2] = normalizePlane(Plane{
		normal: rl.Vector3{
			X: vp.M3 + vp.M1,
			Y: vp.M7 + vp.M5,
			Z: vp.M11 + vp.M9,
		},
		distance: vp.M15 + vp.M13,
	})

	// Top plane: row4 - row2
	f.planes[3] = normalizePlane(Plane{
		normal: rl.Vector3{
			X: vp.M3 - vp.M1,
			Y: vp.M7 - vp.M5,
			Z: vp.M11 - vp.M9,
		},
		distance: vp.M15 - vp.M13,
	})

	// Near plane: row4 + row3
	f.planes[4] = normalizePlane(Plane{
		normal: rl.Vector3{
			X: vp.M3 + vp.M2,
			Y: vp.M7 + vp.M6,
			Z: vp.M11 + vp.M10,
		},
		distance: vp.M15 + vp.M14,
	})

	// Far plane: row4 - row3
	f.planes[5] = normalizePlane(Plane{
		normal: rl.Vector3{
			X: vp.M3 - vp.M2,
			Y: vp.M7 - vp.M6,
			Z: vp.M11 - vp.M10,
		},
		distance: vp.M15 - vp.M14,
	})

	return f
}

// normalizePlane normalizes a plane equation
func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsAABB tests if a box is inside or intersects the frustum.
// For each plane only the corner furthest along the plane normal is checked.
func (f *Frustum) ContainsAABB(box physics.AABB) bool {
	for i := 0; i < 6; i++ {
		n := f.planes[i].normal
		p := box.Min
		if n.X >= 0 {
			p.X = box.Max.X
		}
		if n.Y >= 0 {
			p.Y = box.Max.Y
		}
		if n.Z >= 0 {
			p.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(n, p)+f.planes[i].distance < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum
func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for i := 0; i < 6; i++ {
		dist := rl.Vector3DotProduct(f.planes[i].normal, point) + f.planes[i].distance
		if dist < 0 {
			return false
		}
	}
	return true
}
