// Package controller moves a first-person camera through a static box world.
package controller

import (
	"fmt"

	"qoom/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Controller is what the frame loop drives once per frame. The collider
// slice passed to Update is only read during the call and never retained.
type Controller interface {
	HandleMouse(x, y float64)
	Update(dt float32, in InputState, world []physics.AABB)
	View() rl.Matrix
	Position() rl.Vector3
	LookDirection() rl.Vector3
}

// Poser is implemented by controllers whose pose can be handed over to
// another controller.
type Poser interface {
	SetPosition(p rl.Vector3)
	Orientation() (yaw, pitch float32)
	SetOrientation(yaw, pitch float32)
	ResetMouse()
}

type Mode int

const (
	ModeQuake Mode = iota
	ModeSpectator
)

func (m Mode) String() string {
	switch m {
	case ModeQuake:
		return "quake"
	case ModeSpectator:
		return "spectator"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "quake", "walk":
		return ModeQuake, nil
	case "spectator", "noclip", "fly":
		return ModeSpectator, nil
	}
	return ModeQuake, fmt.Errorf("unknown controller mode %q", s)
}

// New creates the controller for mode. t must already be validated.
func New(mode Mode, t Tuning) Controller {
	if mode == ModeSpectator {
		return NewSpectatorController(t)
	}
	return NewQuakeController(t)
}

// Switch builds a controller for mode that starts where from is and looks
// where from looks.
func Switch(from Controller, mode Mode, t Tuning) Controller {
	to := New(mode, t)
	src, ok1 := from.(Poser)
	dst, ok2 := to.(Poser)
	if ok1 && ok2 {
		dst.SetPosition(from.Position())
		dst.SetOrientation(src.Orientation())
	}
	return to
}

// Camera builds a raylib camera from a controller's pose.
func Camera(c Controller, fovy float32) rl.Camera3D {
	pos := c.Position()
	return rl.Camera3D{
		Position:   pos,
		Target:     rl.Vector3Add(pos, c.LookDirection()),
		Up:         worldUp,
		Fovy:       fovy,
		Projection: rl.CameraPerspective,
	}
}

func lookAt(pos, dir rl.Vector3) rl.Matrix {
	return rl.MatrixLookAt(pos, rl.Vector3Add(pos, dir), worldUp)
}
