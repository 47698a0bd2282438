package steering

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/steering-engine/engine/core"
)

// sequence returns values from vals in order, cycling.
func sequence(vals ...float64) RandomSource {
	i := 0
	return func() float64 {
		v := vals[i%len(vals)]
		i++
		return v
	}
}

func TestWanderOrientationStepIsBounded(t *testing.T) {
	w := NewWander(agentAt(0, 0, 5))
	w.SetCircle(0.3, 10, 30)
	rng := rand.New(rand.NewSource(42))
	w.SetRandomSource(rng.Float64)

	prev := w.Orientation()
	for i := 0; i < 2000; i++ {
		w.Steer()
		step := w.Orientation() - prev
		require.Greater(t, step, -0.3)
		require.Less(t, step, 0.3)
		prev = w.Orientation()
	}
}

func TestWanderTargetGeometry(t *testing.T) {
	data := agentAt(2, 3, 5)
	data.Kinematic.Orientation = math.Pi / 2
	w := NewWanderWith(data, nil, nil)
	w.SetRandomSource(sequence(0.75, 0.25))

	out := w.Steer()

	require.InDelta(t, 0.5, w.Orientation(), 1e-12)
	center := cp.Vector{X: 2, Y: 33}
	want := center.Add(cp.ForAngle(0.5 + math.Pi/2).Mult(10))
	requireVector(t, want, w.WanderTarget())
	requireVector(t, want.Sub(data.Kinematic.Location), out.Linear)

	// raw offset, larger than the agent's maximum speed
	assert.Greater(t, out.Linear.Length(), data.Kinematic.MaximumSpeed)
	assert.False(t, out.HasAngular)
}

func TestWanderConfiguresSubBehaviours(t *testing.T) {
	data := agentAt(0, 0, 5)
	move := NewArrive(data, NoTarget())
	move.Options().NoSlow = true
	move.Options().NoStop = true
	look := NewFaceHeading(data)
	look.Options().NoSlow = true

	w := NewWanderWith(data, move, look)

	for _, sub := range []Tunable{w.Move, w.Look} {
		o := sub.Options()
		assert.False(t, o.NoSlow)
		assert.False(t, o.NoStop)
		assert.True(t, o.NeverCompletes)
	}
	assert.True(t, w.Options().NeverCompletes)
}

func TestWanderDefaultLook(t *testing.T) {
	data := agentAt(0, 0, 5)
	data.Kinematic.Velocity = cp.Vector{Y: 1}
	w := NewWander(data)

	look, ok := w.Look.(*FaceHeading)
	require.True(t, ok)
	assert.InDelta(t, radians(DefaultMaximumSlideDegrees), look.CloseEnoughAngle(), 1e-12)
	_, ok = w.Move.(*Arrive)
	assert.True(t, ok)

	out := w.Steer()
	require.True(t, out.HasAngular)
	assert.InDelta(t, 2, out.Angular, 1e-9)

	w.SetMaximumSlideDegrees(10)
	assert.InDelta(t, radians(10), look.CloseEnoughAngle(), 1e-12)
}

func TestWanderStopLocation(t *testing.T) {
	data := agentAt(0, 0, 5)
	w := NewWanderWith(data, nil, nil)
	w.Options().NeverCompletes = false
	w.SetStopLocation(cp.Vector{X: 10}, 1)
	sink := &recordingSink{}
	w.SetEventSink(sink)

	out := w.Steer()
	require.True(t, w.WanderActive())
	assert.Equal(t, OutputVelocities, out.Type)

	data.Kinematic.Location = cp.Vector{X: 9.5}
	for i := 0; i < 20; i++ {
		out = w.Steer()
		assert.Equal(t, OutputNone, out.Type)
		assert.False(t, w.WanderActive())
	}
	assert.Equal(t, 1, sink.count(core.EvtWanderCompleted))

	data.Kinematic.Location = cp.Vector{}
	w.Steer()
	assert.False(t, w.WanderActive())
	assert.Equal(t, 1, sink.count(core.EvtWanderCompleted))
}

func TestWanderNeverCompletesByDefault(t *testing.T) {
	data := agentAt(10, 0, 5)
	w := NewWanderWith(data, nil, nil)
	w.SetStopLocation(cp.Vector{X: 10}, 1)
	sink := &recordingSink{}
	w.SetEventSink(sink)

	assert.Equal(t, OutputNone, w.Steer().Type)
	assert.Empty(t, sink.events)

	data.Kinematic.Location = cp.Vector{}
	assert.Equal(t, OutputVelocities, w.Steer().Type)
	assert.True(t, w.WanderActive())
}

func TestWanderWithoutStopLocationRunsForever(t *testing.T) {
	w := NewWanderWith(agentAt(0, 0, 5), nil, nil)
	w.Options().NeverCompletes = false
	for i := 0; i < 100; i++ {
		require.Equal(t, OutputVelocities, w.Steer().Type)
	}
	assert.Equal(t, Active, w.Completion())
	w.ClearStopLocation()
	_, ok := w.StopLocation()
	assert.False(t, ok)
}

func TestWanderNonPositiveRadius(t *testing.T) {
	data := agentAt(0, 0, 5)
	w := NewWanderWith(data, nil, nil)
	w.SetCircle(1, -3, 4)
	w.SetRandomSource(sequence(0.5))

	out := w.Steer()
	assert.InDelta(t, 4, out.Linear.X, 1e-5)
	assert.InDelta(t, 0, out.Linear.Y, 1e-5)
}
