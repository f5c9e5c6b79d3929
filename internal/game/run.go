package game

import (
	"fmt"

	"qoom/internal/controller"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Run opens the window and loops until it is closed.
func (g *Game) Run() {
	win := g.cfg.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(win.Width, win.Height, win.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(win.TargetFPS)
	g.setCaptured(true)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	deltaTime := rl.GetFrameTime()

	g.handleKeys()

	if g.captured {
		mouse := rl.GetMousePosition()
		g.ctrl.HandleMouse(float64(mouse.X), float64(mouse.Y))
	}

	g.Step(deltaTime, readInput())
	g.PollLevel(rl.GetTime())

	g.renderer.Highlighted = -1
	if hit, ok := g.Target(); ok {
		g.renderer.Highlighted = hit.Index
	}
}

func (g *Game) handleKeys() {
	// Capture toggle
	if rl.IsKeyPressed(rl.KeyF1) {
		g.setCaptured(!g.captured)
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.ToggleNoclip()
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.renderer.DebugDraw = !g.renderer.DebugDraw
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		g.LoadLevel()
	}
}

func (g *Game) setCaptured(captured bool) {
	g.captured = captured
	if captured {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
	// The cursor jumps when capture changes; don't turn that into a look.
	if p, ok := g.ctrl.(controller.Poser); ok {
		p.ResetMouse()
	}
}

func readInput() controller.InputState {
	return controller.InputState{
		Forward: rl.IsKeyDown(rl.KeyW),
		Back:    rl.IsKeyDown(rl.KeyS),
		Left:    rl.IsKeyDown(rl.KeyA),
		Right:   rl.IsKeyDown(rl.KeyD),
		Jump:    rl.IsKeyDown(rl.KeySpace),
		Crouch:  rl.IsKeyDown(rl.KeyLeftControl),
		Boost:   rl.IsKeyDown(rl.KeyLeftShift),
	}
}

func (g *Game) Draw() {
	camera := controller.Camera(g.ctrl, g.cfg.Tuning.Fovy)
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	aspect := float32(screenW) / float32(max(screenH, 1))

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(camera)
	g.renderer.Draw(g.world, g.ctrl.View(), aspect)
	if q, ok := g.ctrl.(*controller.QuakeController); ok {
		g.renderer.DrawBody(q.Bounds(), q.Grounded())
	}
	rl.EndMode3D()

	// Crosshair
	cx, cy := screenW/2, screenH/2
	rl.DrawLine(cx-8, cy, cx+8, cy, rl.RayWhite)
	rl.DrawLine(cx, cy-8, cx, cy+8, rl.RayWhite)

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Space to jump, Shift to run, Mouse to look", 10, 10, 20, rl.LightGray)
	rl.DrawText("F1 cursor  F2 noclip  F3 debug  F5 reload", 10, 35, 20, rl.LightGray)
	rl.DrawFPS(10, 60)

	if !g.renderer.DebugDraw {
		return
	}

	pos := g.ctrl.Position()
	rl.DrawText(fmt.Sprintf("Mode: %s", g.mode), 10, 85, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Pos: (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z), 10, 105, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Voxels: %d drawn / %d", g.renderer.Drawn(), g.world.Len()), 10, 125, 16, rl.Green)
	if q, ok := g.ctrl.(*controller.QuakeController); ok {
		v := q.Velocity()
		speed := rl.Vector2Length(rl.Vector2{X: v.X, Y: v.Z})
		rl.DrawText(fmt.Sprintf("Speed: %.2f  Vy: %.2f  Grounded: %v", speed, v.Y, q.Grounded()), 10, 145, 16, rl.Green)
	}

	// Sliders need the cursor, so the panel only takes input while it is free
	if g.captured {
		rl.DrawText("F1 to edit collision scale", 10, 170, 16, rl.Gray)
		return
	}

	scale := g.world.CollisionScale()
	bounds := rl.Rectangle{X: 120, Y: 170, Width: 200, Height: 20}
	scale = gui.Slider(bounds, "Collision", fmt.Sprintf("%.2f", scale), scale, 0.1, 2)
	g.SetCollisionScale(scale)

	checkBounds := rl.Rectangle{X: 120, Y: 200, Width: 20, Height: 20}
	g.renderer.DebugDraw = gui.CheckBox(checkBounds, "Debug draw", g.renderer.DebugDraw)
}
