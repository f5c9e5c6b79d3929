package controller

import (
	"math"

	"qoom/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// QuakeController walks with ground friction, separate ground and air
// acceleration toward a capped wish speed, gravity and jumping. It is
// grounded only when the last collision pass pushed it up.
type QuakeController struct {
	tuning Tuning
	look   MouseLook

	position rl.Vector3
	velocity rl.Vector3
	grounded bool
}

func NewQuakeController(t Tuning) *QuakeController {
	return &QuakeController{
		tuning:   t,
		look:     NewMouseLook(t.MouseSensitivity, t.MaxPitch),
		position: rl.Vector3{X: 0, Y: 1, Z: 3},
	}
}

func (c *QuakeController) HandleMouse(x, y float64) {
	c.look.HandleMouse(x, y)
}

// Update advances one tick of dt seconds. dt is used as given.
func (c *QuakeController) Update(dt float32, in InputState, world []physics.AABB) {
	wishdir := in.WishDir(c.look.FlatForward(), c.look.FlatRight())

	wishspeed := c.tuning.MoveSpeed
	if in.Boost {
		wishspeed *= c.tuning.BoostFactor
	}

	c.applyFriction(dt)

	accel := c.tuning.AirAccel
	if c.grounded {
		accel = c.tuning.GroundAccel
	}
	c.accelerate(wishdir, wishspeed, accel, dt)

	c.velocity.Y -= c.tuning.Gravity * dt
	if c.grounded && in.Jump {
		c.velocity.Y = c.tuning.JumpSpeed
		c.grounded = false
	}

	next := rl.Vector3Add(c.position, rl.Vector3Scale(c.velocity, dt))
	res := physics.ResolveStatic(next, c.velocity, c.tuning.HalfExtents, world)

	c.position = res.Position
	c.velocity = res.Velocity
	c.grounded = res.Grounded
}

// applyFriction scales horizontal velocity down while grounded. There is no
// air friction.
func (c *QuakeController) applyFriction(dt float32) {
	if !c.grounded {
		return
	}
	speed := horizontalSpeed(c.velocity)
	if speed < stopSpeed {
		return
	}

	drop := speed * c.tuning.Friction * dt
	newspeed := max(speed-drop, 0)
	if newspeed != speed {
		scale := newspeed / speed
		c.velocity.X *= scale
		c.velocity.Z *= scale
	}
}

// accelerate adds velocity along wishdir until the projected speed reaches
// wishspeed. Speed already at or above wishspeed in that direction is kept,
// not reduced.
func (c *QuakeController) accelerate(wishdir rl.Vector3, wishspeed, accel, dt float32) {
	currentspeed := c.velocity.X*wishdir.X + c.velocity.Z*wishdir.Z
	addspeed := wishspeed - currentspeed
	if addspeed <= 0 {
		return
	}

	accelspeed := min(accel*dt*wishspeed, addspeed)
	c.velocity.X += accelspeed * wishdir.X
	c.velocity.Z += accelspeed * wishdir.Z
}

func (c *QuakeController) View() rl.Matrix {
	return lookAt(c.position, c.look.Forward())
}

func (c *QuakeController) Position() rl.Vector3 {
	return c.position
}

func (c *QuakeController) SetPosition(p rl.Vector3) {
	c.position = p
}

func (c *QuakeController) LookDirection() rl.Vector3 {
	return c.look.Forward()
}

func (c *QuakeController) Velocity() rl.Vector3 {
	return c.velocity
}

func (c *QuakeController) SetVelocity(v rl.Vector3) {
	c.velocity = v
}

func (c *QuakeController) Grounded() bool {
	return c.grounded
}

func (c *QuakeController) Orientation() (yaw, pitch float32) {
	return c.look.Yaw, c.look.Pitch
}

func (c *QuakeController) SetOrientation(yaw, pitch float32) {
	c.look.Set(yaw, pitch)
}

func (c *QuakeController) ResetMouse() {
	c.look.Reset()
}

func (c *QuakeController) Tuning() Tuning {
	return c.tuning
}

// Bounds is the player box at the current position.
func (c *QuakeController) Bounds() physics.AABB {
	return physics.NewAABBFromHalfExtents(c.position, c.tuning.HalfExtents)
}

func horizontalSpeed(v rl.Vector3) float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Z*v.Z)))
}
