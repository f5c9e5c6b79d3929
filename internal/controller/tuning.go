package controller

import (
	"errors"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Tuning holds the movement constants. Speeds are in units per second,
// accelerations in units per second squared, angles in degrees.
type Tuning struct {
	MoveSpeed   float32 `json:"moveSpeed"`   // target ground speed
	BoostFactor float32 `json:"boostFactor"` // wishspeed multiplier while boosting
	GroundAccel float32 `json:"groundAccel"`
	AirAccel    float32 `json:"airAccel"`
	Friction    float32 `json:"friction"`
	Gravity     float32 `json:"gravity"`
	JumpSpeed   float32 `json:"jumpSpeed"` // vertical velocity set by a jump

	// Player box, about 0.6 x 1.8 x 0.6 by default
	HalfExtents rl.Vector3 `json:"halfExtents"`

	MouseSensitivity float32 `json:"mouseSensitivity"` // degrees per pixel
	MaxPitch         float32 `json:"maxPitch"`
	Fovy             float32 `json:"fovy"`

	SpectatorSpeed float32 `json:"spectatorSpeed"`
	SpectatorBoost float32 `json:"spectatorBoost"`
}

// stopSpeed is the horizontal speed below which friction is not applied.
const stopSpeed = 1e-4

func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:   6.0,
		BoostFactor: 1.7,
		GroundAccel: 10.0,
		AirAccel:    1.5,
		Friction:    6.0,
		Gravity:     9.81,
		JumpSpeed:   5.0,
		HalfExtents: rl.Vector3{X: 0.3, Y: 0.9, Z: 0.3},

		MouseSensitivity: 0.12,
		MaxPitch:         89.0,
		Fovy:             90.0,

		SpectatorSpeed: 4.0,
		SpectatorBoost: 2.5,
	}
}

// Validate reports tunings that would break the movement model. Controllers
// assume a validated tuning and never check again.
func (t Tuning) Validate() error {
	var errs []error
	nonNegative := func(name string, v float32) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	nonNegative("moveSpeed", t.MoveSpeed)
	nonNegative("groundAccel", t.GroundAccel)
	nonNegative("airAccel", t.AirAccel)
	nonNegative("friction", t.Friction)
	nonNegative("gravity", t.Gravity)
	nonNegative("jumpSpeed", t.JumpSpeed)
	nonNegative("mouseSensitivity", t.MouseSensitivity)
	nonNegative("spectatorSpeed", t.SpectatorSpeed)

	if t.BoostFactor <= 0 {
		errs = append(errs, fmt.Errorf("boostFactor must be positive, got %v", t.BoostFactor))
	}
	if t.SpectatorBoost <= 0 {
		errs = append(errs, fmt.Errorf("spectatorBoost must be positive, got %v", t.SpectatorBoost))
	}
	if t.HalfExtents.X <= 0 || t.HalfExtents.Y <= 0 || t.HalfExtents.Z <= 0 {
		errs = append(errs, fmt.Errorf("halfExtents must be positive, got %v", t.HalfExtents))
	}
	if t.MaxPitch <= 0 || t.MaxPitch >= 90 {
		errs = append(errs, fmt.Errorf("maxPitch must be in (0, 90), got %v", t.MaxPitch))
	}
	if t.Fovy <= 0 || t.Fovy >= 180 {
		errs = append(errs, fmt.Errorf("fovy must be in (0, 180), got %v", t.Fovy))
	}

	return errors.Join(errs...)
}
