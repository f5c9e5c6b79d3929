package controller

import (
	"math"
	"testing"

	"qoom/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const tick = float32(1.0 / 60.0)

// floor is a wide slab whose top face is y=0.
var floor = []physics.AABB{{
	Min: rl.Vector3{X: -100, Y: -1, Z: -100},
	Max: rl.Vector3{X: 100, Y: 0, Z: 100},
}}

// cube is the box placed by "voxel 0 0 0 size=4".
var cube = []physics.AABB{{
	Min: rl.Vector3{X: -2, Y: -2, Z: -2},
	Max: rl.Vector3{X: 2, Y: 2, Z: 2},
}}

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

// standingOnFloor returns a controller at rest on floor after the first
// collision pass has grounded it.
func standingOnFloor(t *testing.T) *QuakeController {
	t.Helper()
	c := NewQuakeController(DefaultTuning())
	c.SetPosition(rl.Vector3{Y: 0.9})
	for i := 0; i < 10 && !c.Grounded(); i++ {
		c.Update(tick, InputState{}, floor)
	}
	if !c.Grounded() {
		t.Fatal("Player never became grounded on the floor")
	}
	return c
}

func TestFrictionMonotonicity(t *testing.T) {
	c := standingOnFloor(t)
	c.SetVelocity(rl.Vector3{X: 5, Z: 2})

	prev := horizontalSpeed(c.Velocity())
	for i := 0; i < 300; i++ {
		c.Update(tick, InputState{}, floor)
		v := c.Velocity()
		speed := horizontalSpeed(v)

		if !c.Grounded() {
			t.Fatalf("Tick %d: player left the ground", i)
		}
		if v.X < 0 || v.Z < 0 {
			t.Fatalf("Tick %d: velocity changed sign: %v", i, v)
		}
		if prev >= stopSpeed {
			if speed >= prev {
				t.Fatalf("Tick %d: speed did not decrease (%v -> %v)", i, prev, speed)
			}
		} else if speed != prev {
			t.Fatalf("Tick %d: speed below the stop threshold changed (%v -> %v)", i, prev, speed)
		}
		prev = speed
	}

	if prev >= stopSpeed {
		t.Errorf("Expected speed to settle below %v, got %v", stopSpeed, prev)
	}
}

func TestSpeedCap(t *testing.T) {
	tests := []struct {
		name  string
		input InputState
		want  float32
	}{
		{"forward", InputState{Forward: true}, 6},
		{"diagonal", InputState{Forward: true, Right: true}, 6},
		{"boost", InputState{Back: true, Boost: true}, 6 * 1.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := standingOnFloor(t)

			var speed float32
			for i := 0; i < 300; i++ {
				c.Update(tick, tt.input, floor)
				speed = horizontalSpeed(c.Velocity())
				if speed > tt.want+1e-3 {
					t.Fatalf("Tick %d: speed %v exceeds wishspeed %v", i, speed, tt.want)
				}
			}
			if !near(speed, tt.want, 1e-2) {
				t.Errorf("Expected speed to converge to %v, got %v", tt.want, speed)
			}
		})
	}
}

func TestLookPitchDoesNotChangeGroundSpeed(t *testing.T) {
	c := standingOnFloor(t)
	c.SetOrientation(-90, 80)

	for i := 0; i < 300; i++ {
		c.Update(tick, InputState{Forward: true}, floor)
	}

	if speed := horizontalSpeed(c.Velocity()); !near(speed, 6, 1e-2) {
		t.Errorf("Expected ground speed 6 while looking up, got %v", speed)
	}
}

func TestOppositeInputsCancel(t *testing.T) {
	c := standingOnFloor(t)
	start := c.Position()

	for i := 0; i < 60; i++ {
		c.Update(tick, InputState{Forward: true, Back: true, Left: true, Right: true}, floor)
	}

	if speed := horizontalSpeed(c.Velocity()); speed != 0 {
		t.Errorf("Expected no horizontal speed, got %v", speed)
	}
	if p := c.Position(); p.X != start.X || p.Z != start.Z {
		t.Errorf("Expected player to stay put, moved to %v", p)
	}
}

func TestLandingFromAbove(t *testing.T) {
	c := NewQuakeController(DefaultTuning())
	c.SetPosition(rl.Vector3{Y: 2.85})
	c.SetVelocity(rl.Vector3{X: 1})

	c.Update(tick, InputState{}, cube)

	if !c.Grounded() {
		t.Error("Expected grounded after being pushed up")
	}
	if !near(c.Position().Y, 2.9, 1e-5) {
		t.Errorf("Expected Y=2.9, got %v", c.Position().Y)
	}
	if c.Velocity().Y != 0 {
		t.Errorf("Expected vertical velocity zeroed, got %v", c.Velocity().Y)
	}
	if c.Velocity().X != 1 || c.Velocity().Z != 0 {
		t.Errorf("Horizontal velocity changed: %v", c.Velocity())
	}
}

func TestRestingDoesNotTunnel(t *testing.T) {
	c := NewQuakeController(DefaultTuning())
	c.SetPosition(rl.Vector3{Y: 2.9 - 0.001})

	c.Update(tick, InputState{}, cube)

	if !c.Grounded() {
		t.Error("Expected grounded")
	}
	bottom := c.Bounds().Min.Y
	if !near(bottom, 2, 1e-5) {
		t.Errorf("Expected feet on the floor top (2), got %v", bottom)
	}
}

func TestDropSettlesOnCube(t *testing.T) {
	c := NewQuakeController(DefaultTuning())
	c.SetPosition(rl.Vector3{Y: 5})

	for i := 0; i < 300; i++ {
		c.Update(tick, InputState{}, cube)
		if c.Position().Y < 2.9-0.2 {
			t.Fatalf("Tick %d: fell into the cube, y=%v", i, c.Position().Y)
		}
	}

	if !c.Grounded() {
		t.Error("Expected grounded after settling")
	}
	if !near(c.Position().Y, 2.9, 1e-4) {
		t.Errorf("Expected to settle at y=2.9, got %v", c.Position().Y)
	}
	if p := c.Position(); p.X != 0 || p.Z != 0 {
		t.Errorf("Expected no horizontal drift, got %v", p)
	}
}

func TestJump(t *testing.T) {
	c := standingOnFloor(t)
	tuning := c.Tuning()

	c.Update(tick, InputState{Jump: true}, floor)

	if c.Grounded() {
		t.Error("Expected airborne right after jumping")
	}
	if c.Velocity().Y != tuning.JumpSpeed {
		t.Errorf("Expected vertical velocity %v, got %v", tuning.JumpSpeed, c.Velocity().Y)
	}

	landed := false
	for i := 0; i < 120; i++ {
		c.Update(tick, InputState{}, floor)
		if c.Grounded() {
			landed = true
			break
		}
	}
	if !landed {
		t.Error("Expected to land again within two seconds")
	}
}

func TestJumpRequiresGround(t *testing.T) {
	c := NewQuakeController(DefaultTuning())
	c.SetPosition(rl.Vector3{Y: 50})

	c.Update(tick, InputState{Jump: true}, floor)

	if c.Velocity().Y > 0 {
		t.Errorf("Airborne jump should do nothing, got vy=%v", c.Velocity().Y)
	}
}

func TestNoAirFriction(t *testing.T) {
	c := NewQuakeController(DefaultTuning())
	c.SetPosition(rl.Vector3{Y: 50})
	c.SetVelocity(rl.Vector3{X: 3})

	for i := 0; i < 10; i++ {
		c.Update(tick, InputState{}, nil)
	}

	if c.Velocity().X != 3 {
		t.Errorf("Expected horizontal speed kept in the air, got %v", c.Velocity().X)
	}
}

func TestAirStrafe(t *testing.T) {
	c := NewQuakeController(DefaultTuning())
	c.SetPosition(rl.Vector3{Y: 50})
	c.SetVelocity(rl.Vector3{X: 3})

	// yaw -90 looks down -Z; strafing sideways to the current motion adds
	// speed along -Z without taking any away from X.
	c.Update(tick, InputState{Forward: true}, nil)

	v := c.Velocity()
	if v.X != 3 {
		t.Errorf("Expected X velocity untouched, got %v", v.X)
	}
	want := -DefaultTuning().AirAccel * tick * DefaultTuning().MoveSpeed
	if !near(v.Z, want, 1e-5) {
		t.Errorf("Expected Z velocity %v, got %v", want, v.Z)
	}
}

func TestEmptyWorldFreeFall(t *testing.T) {
	c := NewQuakeController(DefaultTuning())
	c.SetPosition(rl.Vector3{})

	for i := 0; i < 60; i++ {
		c.Update(tick, InputState{}, nil)
	}

	want := -DefaultTuning().Gravity * tick * 60
	if !near(c.Velocity().Y, want, 1e-3) {
		t.Errorf("Expected vy=%v, got %v", want, c.Velocity().Y)
	}
	if c.Grounded() {
		t.Error("Nothing to stand on, expected airborne")
	}
}

func TestWallStopsMovement(t *testing.T) {
	world := append([]physics.AABB{}, floor...)
	world = append(world, physics.AABB{
		Min: rl.Vector3{X: -10, Y: 0, Z: -3},
		Max: rl.Vector3{X: 10, Y: 4, Z: -2},
	})

	c := standingOnFloor(t)
	for i := 0; i < 240; i++ {
		c.Update(tick, InputState{Forward: true}, world)
	}

	if z := c.Position().Z; !near(z, -2+0.3, 1e-3) {
		t.Errorf("Expected to stop against the wall at z=-1.7, got %v", z)
	}
	if !c.Grounded() {
		t.Error("Expected to stay grounded while pushing into a wall")
	}
}
