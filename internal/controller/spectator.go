package controller

import (
	"qoom/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpectatorController flies along the look direction without gravity or
// collision. Jump rises and Crouch sinks along world Y.
type SpectatorController struct {
	tuning Tuning
	look   MouseLook

	position rl.Vector3
	velocity rl.Vector3
}

func NewSpectatorController(t Tuning) *SpectatorController {
	return &SpectatorController{
		tuning:   t,
		look:     NewMouseLook(t.MouseSensitivity, t.MaxPitch),
		position: rl.Vector3{X: 0, Y: 1, Z: 3},
	}
}

func (s *SpectatorController) HandleMouse(x, y float64) {
	s.look.HandleMouse(x, y)
}

// Update ignores world; it is only there to satisfy Controller.
func (s *SpectatorController) Update(dt float32, in InputState, world []physics.AABB) {
	speed := s.tuning.SpectatorSpeed
	if in.Boost {
		speed *= s.tuning.SpectatorBoost
	}

	f := s.look.Forward()
	r := s.look.Right()

	var move rl.Vector3
	if in.Forward {
		move = rl.Vector3Add(move, f)
	}
	if in.Back {
		move = rl.Vector3Subtract(move, f)
	}
	if in.Left {
		move = rl.Vector3Subtract(move, r)
	}
	if in.Right {
		move = rl.Vector3Add(move, r)
	}
	if in.Jump {
		move.Y += 1
	}
	if in.Crouch {
		move.Y -= 1
	}

	s.velocity = rl.Vector3Scale(move, speed)
	s.position = rl.Vector3Add(s.position, rl.Vector3Scale(s.velocity, dt))
}

func (s *SpectatorController) View() rl.Matrix {
	return lookAt(s.position, s.look.Forward())
}

func (s *SpectatorController) Position() rl.Vector3 {
	return s.position
}

func (s *SpectatorController) SetPosition(p rl.Vector3) {
	s.position = p
}

func (s *SpectatorController) LookDirection() rl.Vector3 {
	return s.look.Forward()
}

// Velocity is the displacement rate of the last Update.
func (s *SpectatorController) Velocity() rl.Vector3 {
	return s.velocity
}

func (s *SpectatorController) Orientation() (yaw, pitch float32) {
	return s.look.Yaw, s.look.Pitch
}

func (s *SpectatorController) SetOrientation(yaw, pitch float32) {
	s.look.Set(yaw, pitch)
}

func (s *SpectatorController) ResetMouse() {
	s.look.Reset()
}
