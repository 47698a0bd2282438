package steering

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/steering-engine/engine/core"
)

func newTestArrive(agentX float64) (*Arrive, *SteeringData, *recordingSink) {
	data := agentAt(agentX, 0, 5)
	a := NewArrive(data, AtLocation(cp.Vector{X: 10}))
	a.SetBrakingDistance(5)
	a.Options().CloseEnoughDistance = 0.1
	sink := &recordingSink{}
	a.SetEventSink(sink)
	return a, data, sink
}

func TestArriveSpeedProfile(t *testing.T) {
	cases := []struct {
		name   string
		agentX float64
		want   float64
	}{
		{"far", 0, 5},
		{"outside_braking", 4, 5},
		{"at_braking_edge", 5, 5},
		{"inside_braking", 7, 3},
		{"near", 9, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, _, _ := newTestArrive(c.agentX)
			out := a.Steer()
			require.Equal(t, OutputVelocities, out.Type)
			requireVector(t, cp.Vector{X: c.want}, out.Linear)
		})
	}
}

func TestArriveSlowsMonotonically(t *testing.T) {
	prev := math.Inf(1)
	for d := 4.9; d > 0.15; d -= 0.1 {
		a, _, _ := newTestArrive(10 - d)
		speed := a.Steer().Linear.Length()
		require.Less(t, speed, prev, "distance %.2f", d)
		prev = speed
	}
}

func TestArriveCompletesExactlyOnce(t *testing.T) {
	a, data, sink := newTestArrive(10)

	for i := 0; i < 50; i++ {
		out := a.Steer()
		requireVector(t, cp.Vector{}, out.Linear)
	}
	assert.Equal(t, 1, sink.count(core.EvtArriveCompleted))
	assert.False(t, a.ArriveActive())
	assert.Equal(t, CompletedNotified, a.Completion())

	ev := sink.events[len(sink.events)-1]
	assert.Equal(t, a.ID(), ev.payload.ID)
	assert.Equal(t, data.Owner, ev.payload.Owner)
	assert.Same(t, a, ev.payload.Behaviour)
}

func TestArriveStopsMovingAgent(t *testing.T) {
	a, data, _ := newTestArrive(9.95)
	data.Kinematic.Velocity = cp.Vector{X: 0.4, Y: -0.2}

	out := a.Steer()
	requireVector(t, cp.Vector{X: -0.4, Y: 0.2}, out.Linear)
}

func TestArriveBrakingStartedOnce(t *testing.T) {
	a, data, sink := newTestArrive(0)

	a.Steer()
	assert.False(t, a.BrakingStarted())
	assert.Zero(t, sink.count(core.EvtArriveBrakingStarted))

	for _, x := range []float64{6, 7, 8, 9} {
		data.Kinematic.Location = cp.Vector{X: x}
		a.Steer()
	}
	assert.True(t, a.BrakingStarted())
	assert.Equal(t, 1, sink.count(core.EvtArriveBrakingStarted))
}

func TestArriveFlags(t *testing.T) {
	t.Run("never_completes_still_stops", func(t *testing.T) {
		a, _, sink := newTestArrive(10)
		a.Options().NeverCompletes = true
		for i := 0; i < 5; i++ {
			requireVector(t, cp.Vector{}, a.Steer().Linear)
		}
		assert.Zero(t, sink.count(core.EvtArriveCompleted))
		assert.True(t, a.ArriveActive())
	})

	t.Run("no_stop_keeps_moving", func(t *testing.T) {
		a, _, sink := newTestArrive(9.95)
		a.Options().NoStop = true
		out := a.Steer()
		assert.Greater(t, out.Linear.X, 0.0)
		assert.Zero(t, sink.count(core.EvtArriveCompleted))
	})

	t.Run("no_slow_full_speed", func(t *testing.T) {
		a, _, sink := newTestArrive(8)
		a.Options().NoSlow = true
		requireVector(t, cp.Vector{X: 5}, a.Steer().Linear)
		assert.False(t, a.BrakingStarted())
		assert.Zero(t, sink.count(core.EvtArriveBrakingStarted))
	})
}

func TestArriveDeliversPendingWhenSinkAttached(t *testing.T) {
	data := agentAt(10, 0, 5)
	a := NewArrive(data, AtLocation(cp.Vector{X: 10}))

	a.Steer()
	assert.Equal(t, CompletedPendingNotify, a.Completion())

	sink := &recordingSink{}
	a.SetEventSink(sink)
	a.Steer()
	a.Steer()
	assert.Equal(t, 1, sink.count(core.EvtArriveCompleted))
	assert.Equal(t, CompletedNotified, a.Completion())
}

func TestArriveNonPositiveBrakingDistance(t *testing.T) {
	a, _, _ := newTestArrive(9)
	a.SetBrakingDistance(0)

	out := a.Steer()
	assert.False(t, math.IsNaN(out.Linear.X))
	requireVector(t, cp.Vector{X: 5}, out.Linear)
}

func TestArriveSetTargetRearms(t *testing.T) {
	a, data, sink := newTestArrive(10)
	a.Steer()
	require.False(t, a.ArriveActive())

	a.SetTarget(AtLocation(cp.Vector{X: 20}))
	assert.True(t, a.ArriveActive())
	requireVector(t, cp.Vector{X: 5}, a.Steer().Linear)

	data.Kinematic.Location = cp.Vector{X: 20}
	a.Steer()
	assert.Equal(t, 2, sink.count(core.EvtArriveCompleted))
}

func TestArriveNoTarget(t *testing.T) {
	a := NewArrive(agentAt(0, 0, 5), NoTarget())
	assert.Equal(t, OutputNone, a.Steer().Type)
}
