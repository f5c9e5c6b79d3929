package world

import (
	"qoom/internal/level"
	"qoom/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Voxel is a placed box as the renderer sees it.
type Voxel struct {
	Center rl.Vector3
	Size   rl.Vector3
}

// VoxelWorld is the static geometry built from a level. Voxels()[i] and
// Colliders()[i] always describe the same placed box.
type VoxelWorld struct {
	voxels         []Voxel
	colliders      []physics.AABB
	collisionScale float32
}

func New() *VoxelWorld {
	return &VoxelWorld{collisionScale: 1}
}

// SetCollisionScale changes the factor used by the next build. It does not
// rebuild by itself.
func (w *VoxelWorld) SetCollisionScale(s float32) {
	w.collisionScale = s
}

func (w *VoxelWorld) CollisionScale() float32 {
	return w.collisionScale
}

// BuildFromLevel rebuilds from l using the current collision scale.
func (w *VoxelWorld) BuildFromLevel(l *level.Level) {
	w.Rebuild(l.Instances(), w.collisionScale)
}

// Rebuild replaces the voxel and collider lists wholesale. Each collider is
// center ± size/2*collisionScale. New slices are allocated on every call,
// so lists handed out earlier stay valid and unchanged.
func (w *VoxelWorld) Rebuild(instances []level.Instance, collisionScale float32) {
	w.collisionScale = collisionScale

	voxels := make([]Voxel, len(instances))
	colliders := make([]physics.AABB, len(instances))
	for i, inst := range instances {
		voxels[i] = Voxel{Center: inst.Position, Size: inst.Scale}
		half := rl.Vector3Scale(inst.Scale, 0.5*collisionScale)
		colliders[i] = physics.NewAABBFromHalfExtents(inst.Position, half)
	}

	w.voxels = voxels
	w.colliders = colliders
}

// Voxels returns the visual placement list. Callers must not modify it.
func (w *VoxelWorld) Voxels() []Voxel {
	return w.voxels
}

// Colliders returns the collision-only boxes. Callers must not modify it.
func (w *VoxelWorld) Colliders() []physics.AABB {
	return w.colliders
}

func (w *VoxelWorld) Len() int {
	return len(w.voxels)
}

// Bounds returns the union of all colliders; ok is false for an empty world.
func (w *VoxelWorld) Bounds() (bounds physics.AABB, ok bool) {
	for i, c := range w.colliders {
		if i == 0 {
			bounds = c
			continue
		}
		bounds = bounds.Union(c)
	}
	return bounds, len(w.colliders) > 0
}

// SpawnPoint returns a position above the center of the world, high enough
// for a body of the given half extents to drop onto the tallest box.
func (w *VoxelWorld) SpawnPoint(half rl.Vector3) rl.Vector3 {
	bounds, ok := w.Bounds()
	if !ok {
		return rl.Vector3{Y: half.Y}
	}
	c := bounds.Center()
	return rl.Vector3{X: c.X, Y: bounds.Max.Y + half.Y + 1, Z: c.Z}
}
