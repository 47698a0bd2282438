package render

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/steering-engine/engine/physics"
	"github.com/1siamBot/steering-engine/engine/steering"
)

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.CenterOn(cp.Vector{X: 10, Y: 5})

	x, y := cam.WorldToScreen(cp.Vector{X: 10, Y: 5})
	assert.Equal(t, float32(400), x)
	assert.Equal(t, float32(300), y)

	x, y = cam.WorldToScreen(cp.Vector{X: 11, Y: 5})
	assert.Equal(t, float32(412), x)
	assert.Equal(t, float32(300), y)

	p := cam.ScreenToWorld(412, 312)
	assert.InDelta(t, 11, p.X, 1e-9)
	assert.InDelta(t, 6, p.Y, 1e-9)
}

func TestCameraZoomAtKeepsCursorPoint(t *testing.T) {
	cam := NewCamera(800, 600)
	before := cam.ScreenToWorld(100, 50)
	cam.ZoomAt(1, 100, 50)
	after := cam.ScreenToWorld(100, 50)

	assert.Equal(t, 2.0, cam.Zoom)
	assert.InDelta(t, before.X, after.X, 1e-9)
	assert.InDelta(t, before.Y, after.Y, 1e-9)

	cam.SetZoom(100)
	assert.Equal(t, cam.MaxZoom, cam.Zoom)
}

func TestCameraFit(t *testing.T) {
	cam := NewCamera(800, 450)
	cam.Fit(cp.Vector{}, cp.Vector{X: 80, Y: 45})

	assert.Equal(t, 10.0, cam.Scale)
	x, y := cam.WorldToScreen(cp.Vector{})
	assert.InDelta(t, 0, x, 1e-4)
	assert.InDelta(t, 0, y, 1e-4)
	assert.Equal(t, float32(20), cam.Length(2))
}

func TestFeelerLines(t *testing.T) {
	walls := physics.NewWalls()
	require.NoError(t, walls.Add(cp.Vector{X: 5, Y: -10}, cp.Vector{X: 5, Y: 10}, 0))

	data := steering.NewSteeringData(1, &steering.KinematicData{
		Velocity:     cp.Vector{X: 5},
		MaximumSpeed: 5,
	})
	avoid := steering.NewAvoidWalls(data, steering.NoTarget(), walls)
	avoid.Steer()

	assert.Empty(t, FeelerLines(avoid), "hidden until the visualizer is on")

	avoid.Visualizer.ShowVisualizer = true
	lines := FeelerLines(avoid)
	require.Len(t, lines, steering.FeelerCount)
	assert.Equal(t, avoid.Visualizer.BlockedColor, lines[0].Color)
	assert.InDelta(t, 5, lines[0].To.X, 1e-6)
	assert.Equal(t, avoid.Visualizer.ClearColor, lines[1].Color)

	avoid.Visualizer.ShowOnlyWhenBlocked = true
	assert.Len(t, FeelerLines(avoid), steering.FeelerCount, "every ray is drawn while any is blocked")

	data.Kinematic.Velocity = cp.Vector{X: -5}
	avoid.Steer()
	assert.Empty(t, FeelerLines(avoid))

	assert.Nil(t, FeelerLines(nil))
}

func TestHUDLines(t *testing.T) {
	h := HUD{Tick: 12, Agents: 3, Visualizer: true, Paused: true, Status: "reloaded"}
	lines := h.Lines()
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "tick 12")
	assert.Contains(t, lines[0], "paused")
	assert.Contains(t, lines[1], "feelers on")
	assert.Contains(t, lines[1], "blocked only off")
	assert.Equal(t, "reloaded", lines[3])
}
