package world

import (
	"qoom/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// palette cycles by voxel index so neighbouring boxes are told apart.
var palette = []rl.Color{
	rl.LightGray, rl.Gray, rl.Beige, rl.SkyBlue, rl.Lime,
	rl.Gold, rl.Orange, rl.Pink, rl.Purple, rl.Brown,
}

// Renderer draws a VoxelWorld with raylib immediate-mode primitives.
// It only reads the world; it never rebuilds or mutates it.
type Renderer struct {
	Fovy        float32
	DebugDraw   bool
	Highlighted int // voxel index to outline, -1 for none

	drawn int
}

func NewRenderer(fovy float32) *Renderer {
	return &Renderer{Fovy: fovy, Highlighted: -1}
}

// Draw renders every voxel whose collider survives frustum culling. Must be
// called between rl.BeginMode3D and rl.EndMode3D.
func (r *Renderer) Draw(w *VoxelWorld, view rl.Matrix, aspect float32) {
	frustum := ExtractFrustum(view, r.Fovy, aspect)
	voxels := w.Voxels()
	colliders := w.Colliders()

	r.drawn = 0
	for i, v := range voxels {
		visual := physics.NewAABBFromCenter(v.Center, v.Size)
		if !frustum.ContainsAABB(visual) && !frustum.ContainsAABB(colliders[i]) {
			continue
		}
		r.drawn++

		rl.DrawCube(v.Center, v.Size.X, v.Size.Y, v.Size.Z, palette[i%len(palette)])
		rl.DrawCubeWires(v.Center, v.Size.X, v.Size.Y, v.Size.Z, rl.DarkGray)

		if r.DebugDraw {
			rl.DrawBoundingBox(colliders[i].BoundingBox(), rl.Red)
		}
		if i == r.Highlighted {
			rl.DrawBoundingBox(visual.BoundingBox(), rl.Yellow)
		}
	}
}

// DrawBody outlines a dynamic body, e.g. the player box in debug view.
func (r *Renderer) DrawBody(body physics.AABB, grounded bool) {
	if !r.DebugDraw {
		return
	}
	color := rl.Magenta
	if grounded {
		color = rl.Green
	}
	rl.DrawBoundingBox(body.BoundingBox(), color)
}

// Drawn reports how many voxels the last Draw call submitted.
func (r *Renderer) Drawn() int {
	return r.drawn
}
