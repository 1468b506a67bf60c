package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-lab/internal/engineconfig"
)

// background is the clear color behind the scene.
var background = rl.NewColor(24, 26, 30, 255)

// Run opens a resizable window sized from w and runs the main loop. Each frame it calls update
// (input, state), then clears the screen and calls draw. setup runs once after the window and
// OpenGL context exist, before the first frame; it may be nil.
func Run(w engineconfig.Window, setup, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // close via window button; ESC is free for the app
	rl.SetTargetFPS(w.TargetFPS)
	if setup != nil {
		setup()
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(background)
		draw()
		rl.EndDrawing()
	}
}
