package steering

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wallAt returns a caster with an infinite wall at x = wallX facing -X.
func wallAt(wallX float64) RayCasterFunc {
	return func(origin, dir cp.Vector, maxDistance float64) (RayHit, bool) {
		if dir.X <= 0 {
			return RayHit{}, false
		}
		dist := (wallX - origin.X) / dir.X
		if dist < 0 || dist > maxDistance {
			return RayHit{}, false
		}
		return RayHit{
			Point:    origin.Add(dir.Mult(dist)),
			Normal:   cp.Vector{X: -1},
			Distance: dist,
		}, true
	}
}

func TestAvoidWallsWithoutObstacles(t *testing.T) {
	data := agentAt(0, 0, 5)
	a := NewAvoidWalls(data, AtLocation(cp.Vector{Y: 10}), nil)

	out := a.Steer()
	require.Equal(t, OutputVelocities, out.Type)
	requireVector(t, cp.Vector{Y: 20}, out.Linear)
	assert.False(t, a.Blocked())
}

func TestAvoidWallsKeepsHeadingWithoutTarget(t *testing.T) {
	data := agentAt(0, 0, 5)
	data.Kinematic.Velocity = cp.Vector{X: 3}
	a := NewAvoidWalls(data, NoTarget(), nil)

	requireVector(t, cp.Vector{X: 8}, a.Steer().Linear)
}

func TestAvoidWallsRepulsion(t *testing.T) {
	data := agentAt(0, 0, 5)
	data.Kinematic.Velocity = cp.Vector{X: 5}
	a := NewAvoidWalls(data, NoTarget(), wallAt(2))

	out := a.Steer()

	feelers := a.Feelers()
	require.True(t, feelers[0].Blocked)
	assert.InDelta(t, 10, feelers[0].Length, 1e-9)
	assert.InDelta(t, 2, feelers[0].Hit.Distance, 1e-9)
	requireVector(t, cp.Vector{X: 2}, feelers[0].End)

	side := 2 / math.Cos(radians(DefaultFeelerSpreadDegrees))
	for _, f := range feelers[1:] {
		require.True(t, f.Blocked)
		assert.InDelta(t, 5, f.Length, 1e-9)
		assert.InDelta(t, side, f.Hit.Distance, 1e-9)
	}

	want := -(10-2)*DefaultForceMultiplier - 2*(5-side)*DefaultForceMultiplier
	assert.InDelta(t, want, out.Linear.X, 1e-9)
	assert.InDelta(t, 0, out.Linear.Y, 1e-9)
	assert.True(t, a.Blocked())
}

func TestAvoidWallsFeelerGeometry(t *testing.T) {
	data := agentAt(1, 1, 2)
	data.Kinematic.Orientation = math.Pi / 2
	a := NewAvoidWalls(data, NoTarget(), nil)
	a.Steer()

	feelers := a.Feelers()
	requireVector(t, cp.Vector{X: 1, Y: 5}, feelers[0].End)
	left := cp.Vector{X: 1, Y: 1}.Add(cp.ForAngle(math.Pi/2 + radians(30)).Mult(2))
	right := cp.Vector{X: 1, Y: 1}.Add(cp.ForAngle(math.Pi/2 - radians(30)).Mult(2))
	requireVector(t, left, feelers[1].End)
	requireVector(t, right, feelers[2].End)
	for _, f := range feelers {
		requireVector(t, data.Kinematic.Location, f.Origin)
	}
}

func TestAvoidWallsVisualizer(t *testing.T) {
	data := agentAt(0, 0, 5)
	data.Kinematic.Velocity = cp.Vector{X: 5}
	a := NewAvoidWalls(data, NoTarget(), wallAt(9))
	a.Steer()

	_, visible := a.FeelerColor(0)
	assert.False(t, visible, "hidden until enabled")

	a.Visualizer.ShowVisualizer = true
	c, visible := a.FeelerColor(0)
	assert.True(t, visible)
	assert.Equal(t, a.Visualizer.BlockedColor, c)
	c, visible = a.FeelerColor(1)
	assert.True(t, visible)
	assert.Equal(t, a.Visualizer.ClearColor, c)

	_, visible = a.FeelerColor(FeelerCount)
	assert.False(t, visible)

	a.Visualizer.ShowOnlyWhenBlocked = true
	a.SetRayCaster(nil)
	a.Steer()
	_, visible = a.FeelerColor(0)
	assert.False(t, visible)
}

func TestAvoidWallsDefaults(t *testing.T) {
	a := NewAvoidWalls(agentAt(0, 0, 1), NoTarget(), nil)
	o := a.Options()
	assert.True(t, o.NoSlow)
	assert.True(t, o.NoStop)
	assert.True(t, o.NeverCompletes)
	assert.Equal(t, DefaultSteeringMultiplier, a.SteeringMultiplier())
	assert.Equal(t, DefaultForceMultiplier, a.ForceMultiplier())
	assert.Equal(t, DefaultLookAheadMultiplier, a.LookAheadMultiplier())
}
