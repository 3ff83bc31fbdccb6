// Package app owns the scene graph, camera and controls, and advances them one frame at
// a time.
package app

import (
	"pool-scene/internal/compose"
	"pool-scene/internal/config"
	"pool-scene/internal/orbit"
	"pool-scene/internal/scene"
)

// Loader issues asset requests and applies their completions when polled.
type Loader interface {
	compose.Loader
	Pending() int
	Poll() int
}

// Renderer draws one frame of the graph from the camera.
type Renderer interface {
	Render(g *scene.Graph, cam *scene.Camera)
}

// Input feeds pending pointer input into the controls. It runs once per frame.
type Input interface {
	Apply(c *orbit.Controls)
}

// App is the running scene.
type App struct {
	Graph    *scene.Graph
	Camera   *scene.Camera
	Controls *orbit.Controls
	Chalk    *scene.Node

	loader   Loader
	renderer Renderer
	input    Input
	frames   uint64
}

// New runs the startup sequence: camera and controls, then the composed scene.
// aspect is the viewport's width/height. input may be nil.
func New(cfg config.Config, aspect float32, ld Loader, r Renderer, input Input) *App {
	cam := scene.NewPerspective(cfg.Camera.Fov, aspect, cfg.Camera.Near, cfg.Camera.Far,
		cfg.Camera.Position, cfg.Camera.Target)
	cam.LookAt(cfg.Camera.Target)

	controls := orbit.New(cam)
	controls.EnableDamping = cfg.Controls.EnableDamping
	controls.DampingFactor = cfg.Controls.DampingFactor
	controls.RotateSpeed = cfg.Controls.RotateSpeed
	controls.ZoomSpeed = cfg.Controls.ZoomSpeed
	controls.PanSpeed = cfg.Controls.PanSpeed
	controls.MinDistance = cfg.Controls.MinDistance
	controls.MaxDistance = cfg.Controls.MaxDistance

	g := scene.NewGraph()
	chalk := compose.Build(g, ld)

	return &App{
		Graph:    g,
		Camera:   controls.Camera(),
		Controls: controls,
		Chalk:    chalk,
		loader:   ld,
		renderer: r,
		input:    input,
	}
}

// Step advances one frame at the given time since start, in seconds: apply finished
// loads, take input, spin the chalk, update the controls, then draw.
func (a *App) Step(seconds float64) {
	if a.loader.Pending() > 0 {
		a.loader.Poll()
	}
	if a.input != nil {
		a.input.Apply(a.Controls)
	}
	a.Chalk.Transform.Rotation[1] = float32(seconds)
	a.Controls.Update()
	a.renderer.Render(a.Graph, a.Camera)
	a.frames++
}

// Frames returns the number of completed steps.
func (a *App) Frames() uint64 {
	return a.frames
}
