// Package render draws a top-down debug view of agents, walls and the
// feeler rays of wall avoidance.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/font/basicfont"

	"github.com/1siamBot/steering-engine/engine/core"
	"github.com/1siamBot/steering-engine/engine/physics"
	"github.com/1siamBot/steering-engine/engine/steering"
	"github.com/1siamBot/steering-engine/engine/systems"
)

var (
	backgroundColor = color.RGBA{18, 20, 28, 255}
	wallColor       = color.RGBA{200, 200, 210, 255}
	headingColor    = color.RGBA{255, 255, 255, 200}
	wanderColor     = color.RGBA{255, 200, 0, 160}
	targetColor     = color.RGBA{0, 255, 120, 200}
	defaultAgent    = color.RGBA{80, 160, 255, 255}
)

// Line is one colored segment in world coordinates.
type Line struct {
	From, To cp.Vector
	Color    color.RGBA
}

// FeelerLines returns the rays a should draw this frame. Rays are hidden
// unless the visualizer is on; with ShowOnlyWhenBlocked all three rays are
// returned only on frames where at least one of them is blocked.
func FeelerLines(a *steering.AvoidWalls) []Line {
	if a == nil {
		return nil
	}
	feelers := a.Feelers()
	var lines []Line
	for i := range feelers {
		clr, ok := a.FeelerColor(i)
		if !ok {
			continue
		}
		f := feelers[i]
		lines = append(lines, Line{From: f.Origin, To: f.End, Color: clr})
	}
	return lines
}

// DebugRenderer draws the simulation state.
type DebugRenderer struct {
	Camera *Camera
	Walls  *physics.Walls
	face   text.Face

	// Target marks the arrive goal when set.
	Target    cp.Vector
	HasTarget bool
}

func NewDebugRenderer(cam *Camera, walls *physics.Walls) *DebugRenderer {
	return &DebugRenderer{
		Camera: cam,
		Walls:  walls,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw renders walls, agents and their behaviour overlays.
func (r *DebugRenderer) Draw(screen *ebiten.Image, w *core.World) {
	screen.Fill(backgroundColor)
	r.drawWalls(screen)

	if r.HasTarget {
		x, y := r.Camera.WorldToScreen(r.Target)
		vector.StrokeLine(screen, x-6, y-6, x+6, y+6, 2, targetColor, true)
		vector.StrokeLine(screen, x-6, y+6, x+6, y-6, 2, targetColor, true)
	}

	for _, id := range w.Query(core.CompKinematic) {
		body := w.Get(id, core.CompKinematic).(*systems.Body)
		if body.Kinematic == nil {
			continue
		}
		var look *core.Appearance
		if c := w.Get(id, core.CompAppearance); c != nil {
			look = c.(*core.Appearance)
		}
		if c := w.Get(id, core.CompSteering); c != nil {
			r.drawOverlays(screen, c.(*systems.Steering))
		}
		r.drawAgent(screen, body.Kinematic, look)
	}
}

func (r *DebugRenderer) drawWalls(screen *ebiten.Image) {
	if r.Walls == nil {
		return
	}
	for _, s := range r.Walls.Segments() {
		x0, y0 := r.Camera.WorldToScreen(s.A)
		x1, y1 := r.Camera.WorldToScreen(s.B)
		width := float32(math.Max(2, float64(r.Camera.Length(2*s.Radius))))
		vector.StrokeLine(screen, x0, y0, x1, y1, width, wallColor, true)
	}
}

func (r *DebugRenderer) drawAgent(screen *ebiten.Image, k *steering.KinematicData, look *core.Appearance) {
	radius := 0.6
	clr := defaultAgent
	label := ""
	if look != nil {
		if look.Radius > 0 {
			radius = look.Radius
		}
		clr = look.Color
		label = look.Label
	}

	x, y := r.Camera.WorldToScreen(k.Location)
	px := r.Camera.Length(radius)
	vector.DrawFilledCircle(screen, x, y, px, clr, true)

	nose := k.Location.Add(cp.ForAngle(k.Orientation).Mult(radius * 1.8))
	nx, ny := r.Camera.WorldToScreen(nose)
	vector.StrokeLine(screen, x, y, nx, ny, 2, headingColor, true)

	if label != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x+px+3), float64(y-px-10))
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, label, r.face, op)
	}
}

func (r *DebugRenderer) drawOverlays(screen *ebiten.Image, st *systems.Steering) {
	for _, b := range st.Behaviours {
		switch v := b.(type) {
		case *steering.AvoidWalls:
			for _, l := range FeelerLines(v) {
				x0, y0 := r.Camera.WorldToScreen(l.From)
				x1, y1 := r.Camera.WorldToScreen(l.To)
				vector.StrokeLine(screen, x0, y0, x1, y1, 1, l.Color, true)
			}
		case *steering.Wander:
			if !v.WanderActive() {
				continue
			}
			x, y := r.Camera.WorldToScreen(v.WanderTarget())
			vector.StrokeCircle(screen, x, y, 4, 1, wanderColor, true)
		case *steering.Pursue:
			if !v.PursueActive() {
				continue
			}
			x, y := r.Camera.WorldToScreen(v.PredictedLocation())
			vector.StrokeCircle(screen, x, y, 3, 1, targetColor, true)
		}
	}
}

// HUD is the status text drawn in the top-left corner.
type HUD struct {
	Tick       uint64
	Agents     int
	Visualizer bool
	Blocked    bool
	Paused     bool
	Status     string
}

func (h HUD) Lines() []string {
	state := "running"
	if h.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("tick %d | agents %d | %s", h.Tick, h.Agents, state),
		fmt.Sprintf("[V] feelers %s  [B] blocked only %s  [R] reload  [P] pause", onOff(h.Visualizer), onOff(h.Blocked)),
		"click to move the arriver",
	}
	if h.Status != "" {
		lines = append(lines, h.Status)
	}
	return lines
}

func (h HUD) Draw(screen *ebiten.Image) {
	for i, l := range h.Lines() {
		ebitenutil.DebugPrintAt(screen, l, 10, 8+i*16)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
