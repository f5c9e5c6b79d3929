package controller

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var worldUp = rl.Vector3{X: 0, Y: 1, Z: 0}

// MouseLook turns absolute pointer positions into yaw and pitch.
type MouseLook struct {
	Yaw         float32 // degrees, -90 looks down -Z
	Pitch       float32 // degrees, clamped to ±MaxPitch
	Sensitivity float32 // degrees per pixel
	MaxPitch    float32

	primed       bool
	lastX, lastY float64
}

func NewMouseLook(sensitivity, maxPitch float32) MouseLook {
	return MouseLook{
		Yaw:         -90.0,
		Sensitivity: sensitivity,
		MaxPitch:    maxPitch,
	}
}

// HandleMouse applies the pointer movement since the previous sample.
// The first sample after construction or Reset only sets the reference.
func (m *MouseLook) HandleMouse(x, y float64) {
	if !m.primed {
		m.lastX, m.lastY = x, y
		m.primed = true
	}

	dx := float32(x - m.lastX)
	dy := float32(m.lastY - y) // screen Y grows downwards
	m.lastX, m.lastY = x, y

	m.Yaw += dx * m.Sensitivity
	m.Pitch += dy * m.Sensitivity
	m.Pitch = rl.Clamp(m.Pitch, -m.MaxPitch, m.MaxPitch)
}

// Reset makes the next sample a reference sample, e.g. after the cursor is
// captured again.
func (m *MouseLook) Reset() {
	m.primed = false
}

// Set replaces the orientation, clamping pitch.
func (m *MouseLook) Set(yaw, pitch float32) {
	m.Yaw = yaw
	m.Pitch = rl.Clamp(pitch, -m.MaxPitch, m.MaxPitch)
}

// Forward is the unit look direction.
func (m *MouseLook) Forward() rl.Vector3 {
	yawRad := float64(m.Yaw) * math.Pi / 180
	pitchRad := float64(m.Pitch) * math.Pi / 180
	return rl.Vector3Normalize(rl.Vector3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	})
}

// Right is perpendicular to Forward and world up.
func (m *MouseLook) Right() rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3CrossProduct(m.Forward(), worldUp))
}

// FlatForward is Forward projected onto the XZ plane and renormalized, so
// looking up or down never changes horizontal movement speed.
func (m *MouseLook) FlatForward() rl.Vector3 {
	return flatten(m.Forward())
}

func (m *MouseLook) FlatRight() rl.Vector3 {
	return flatten(m.Right())
}

func flatten(v rl.Vector3) rl.Vector3 {
	v.Y = 0
	return rl.Vector3Normalize(v)
}
