package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"pool-scene/internal/config"
)

// Open creates the window and GL context and returns the viewport size. A zero width
// or height in cfg sizes the window to the primary monitor.
func Open(cfg config.Window) (width, height int) {
	if cfg.MSAA {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
	}
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	rl.SetTargetFPS(int32(cfg.TargetFPS))
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// Close destroys the window. Call after every GPU resource has been released.
func Close() {
	rl.CloseWindow()
}

// Run drives the main loop until the window is closed. Each frame it clears the screen
// and calls frame with the seconds elapsed since Open.
func Run(frame func(seconds float64)) {
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		frame(rl.GetTime())
		rl.EndDrawing()
	}
}
