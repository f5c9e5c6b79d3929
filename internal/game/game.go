// Package game runs the frame loop: it polls input, steps the controller
// against the voxel world and draws the result.
package game

import (
	"os"
	"time"

	"qoom/internal/config"
	"qoom/internal/controller"
	"qoom/internal/level"
	"qoom/internal/logger"
	"qoom/internal/physics"
	"qoom/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/sirupsen/logrus"
)

// pickDistance is how far the crosshair looks for a voxel to highlight.
const pickDistance = 50

type Game struct {
	cfg   config.Settings
	mode  controller.Mode
	level *level.Level
	world *world.VoxelWorld
	ctrl  controller.Controller

	renderer *world.Renderer
	spawn    rl.Vector3

	levelModTime time.Time
	lastPoll     float64

	captured bool
}

// New loads the configured level and places the player at its spawn point.
// It does not open a window, so it is safe to use in tests.
func New(cfg config.Settings) *Game {
	mode, err := cfg.Mode()
	if err != nil {
		logger.Log.WithError(err).Warn("Unknown controller, using quake")
	}

	g := &Game{
		cfg:      cfg,
		mode:     mode,
		world:    world.New(),
		ctrl:     controller.New(mode, cfg.Tuning),
		renderer: world.NewRenderer(cfg.Tuning.Fovy),
	}
	g.world.SetCollisionScale(cfg.CollisionScale)

	g.LoadLevel()
	g.Respawn()
	return g
}

// LoadLevel (re)reads the level file and rebuilds the world. A level that
// can't be read leaves an empty world behind instead of failing.
func (g *Game) LoadLevel() {
	path := g.cfg.LevelPath
	log := logger.Log.WithField("path", path)

	l, err := level.Load(path)
	if err != nil {
		log.WithError(err).Warn("Level unavailable, continuing with an empty world")
		l = level.Empty()
	}

	g.level = l
	g.world.BuildFromLevel(l)
	g.spawn = g.world.SpawnPoint(g.cfg.Tuning.HalfExtents)
	g.levelModTime = modTime(path)

	log.WithFields(logrus.Fields{
		"voxels":         g.world.Len(),
		"collisionScale": g.world.CollisionScale(),
	}).Info("Level loaded")
}

// PollLevel reloads the level when its file changed on disk. now is the
// current time in seconds; checks are spaced ReloadInterval apart.
func (g *Game) PollLevel(now float64) bool {
	if g.cfg.ReloadInterval <= 0 || now-g.lastPoll < g.cfg.ReloadInterval {
		return false
	}
	g.lastPoll = now

	mt := modTime(g.cfg.LevelPath)
	if mt.IsZero() || mt.Equal(g.levelModTime) {
		return false
	}

	logger.Log.WithField("path", g.cfg.LevelPath).Info("Level changed on disk, reloading")
	g.LoadLevel()
	return true
}

// Step advances the simulation by dt seconds. Frame times above
// MaxFrameTime are clamped so a stall can't launch the player through the
// floor.
func (g *Game) Step(dt float32, in controller.InputState) {
	if dt < 0 {
		dt = 0
	}
	if dt > g.cfg.MaxFrameTime {
		dt = g.cfg.MaxFrameTime
	}

	g.ctrl.Update(dt, in, g.world.Colliders())

	if g.mode == controller.ModeQuake && g.ctrl.Position().Y < g.cfg.KillY {
		logger.Log.WithField("y", g.ctrl.Position().Y).Debug("Fell out of the world")
		g.Respawn()
	}
}

// Respawn moves the player to the spawn point and stops it.
func (g *Game) Respawn() {
	if p, ok := g.ctrl.(controller.Poser); ok {
		p.SetPosition(g.spawn)
	}
	if q, ok := g.ctrl.(*controller.QuakeController); ok {
		q.SetVelocity(rl.Vector3Zero())
	}
}

// ToggleNoclip swaps between walking and free flight, keeping the pose.
func (g *Game) ToggleNoclip() {
	next := controller.ModeSpectator
	if g.mode == controller.ModeSpectator {
		next = controller.ModeQuake
	}
	g.ctrl = controller.Switch(g.ctrl, next, g.cfg.Tuning)
	g.mode = next

	logger.Log.WithField("mode", next).Info("Controller switched")
}

// SetCollisionScale rebuilds the colliders with a new scale. Visual sizes
// don't change.
func (g *Game) SetCollisionScale(s float32) {
	if s <= 0 || s == g.world.CollisionScale() {
		return
	}
	g.world.Rebuild(g.level.Instances(), s)
	logger.Log.WithField("collisionScale", s).Debug("Colliders rebuilt")
}

// Target returns the voxel under the crosshair.
func (g *Game) Target() (physics.RaycastHit, bool) {
	return physics.Raycast(g.ctrl.Position(), g.ctrl.LookDirection(), pickDistance, g.world.Colliders())
}

func (g *Game) Controller() controller.Controller {
	return g.ctrl
}

func (g *Game) Mode() controller.Mode {
	return g.mode
}

func (g *Game) World() *world.VoxelWorld {
	return g.world
}

func (g *Game) Spawn() rl.Vector3 {
	return g.spawn
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
