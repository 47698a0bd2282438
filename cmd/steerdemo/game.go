package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/1siamBot/steering-engine/engine/config"
	"github.com/1siamBot/steering-engine/engine/core"
	"github.com/1siamBot/steering-engine/engine/input"
	"github.com/1siamBot/steering-engine/engine/render"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// Game implements ebiten.Game interface
type Game struct {
	sim      *Sim
	renderer *render.DebugRenderer
	input    *input.InputState
	watcher  *config.Watcher
	status   string
}

func NewGame(sim *Sim, watcher *config.Watcher) *Game {
	cam := render.NewCamera(ScreenWidth, ScreenHeight)
	cfg := sim.Config.Simulation
	cam.Fit(cp.Vector{}, cp.Vector{X: cfg.Width, Y: cfg.Height})

	g := &Game{
		sim:      sim,
		renderer: render.NewDebugRenderer(cam, sim.Walls),
		input:    input.NewInputState(),
		watcher:  watcher,
	}
	sim.Loop.Play()
	return g
}

func (g *Game) Update() error {
	g.input.Update()

	for _, a := range g.input.Actions() {
		switch a {
		case input.ActionToggleVisualizer:
			g.sim.ToggleVisualizer()
		case input.ActionToggleBlockedOnly:
			g.sim.ToggleBlockedOnly()
		case input.ActionReload:
			g.reload()
		case input.ActionPause:
			if g.sim.Loop.State == core.StateRunning {
				g.sim.Loop.Pause()
			} else {
				g.sim.Loop.Play()
			}
		case input.ActionQuit:
			return ebiten.Termination
		}
	}
	g.pollWatcher()

	cam := g.renderer.Camera
	if g.input.Dragging {
		cam.Pan(-float64(g.input.MouseDX), -float64(g.input.MouseDY))
	}
	if g.input.ScrollY != 0 {
		cam.ZoomAt(g.input.ScrollY*0.1, g.input.MouseX, g.input.MouseY)
	}
	if g.input.LeftJustPressed {
		p := cam.ScreenToWorld(g.input.MouseX, g.input.MouseY)
		g.sim.SetArriveTarget(p)
		g.renderer.Target = p
		g.renderer.HasTarget = true
	}

	// Game simulation tick
	g.sim.Loop.Update()
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case name, ok := <-g.watcher.Events:
		if ok {
			g.sim.Logger.Debug("config changed", "file", name)
			g.reload()
		}
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.sim.Logger.Warn("config watcher", "error", err)
		}
	default:
	}
}

func (g *Game) reload() {
	if err := g.sim.Reload(); err != nil {
		g.sim.Logger.Error("reload failed", "error", err)
		g.status = "reload failed: " + err.Error()
		return
	}
	g.renderer.Walls = g.sim.Walls
	g.status = "reloaded " + g.sim.Path
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim.Loop.World)
	render.HUD{
		Tick:       g.sim.Loop.CurrentTick(),
		Agents:     g.sim.Loop.World.EntityCount(),
		Visualizer: g.sim.Avoid.Visualizer.ShowVisualizer,
		Blocked:    g.sim.Avoid.Visualizer.ShowOnlyWhenBlocked,
		Paused:     g.sim.Loop.State != core.StateRunning,
		Status:     g.status,
	}.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
