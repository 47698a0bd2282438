package steering

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"

	"github.com/1siamBot/steering-engine/engine/core"
)

type recorded struct {
	kind    core.EventType
	payload Notification
}

type recordingSink struct {
	events []recorded
}

func (s *recordingSink) Enqueue(t core.EventType, payload interface{}) {
	s.events = append(s.events, recorded{kind: t, payload: payload.(Notification)})
}

func (s *recordingSink) count(t core.EventType) int {
	n := 0
	for _, e := range s.events {
		if e.kind == t {
			n++
		}
	}
	return n
}

var _ EventSink = core.NewEventBus()

func agentAt(x, y, maxSpeed float64) *SteeringData {
	return NewSteeringData(core.NewEntityID(), &KinematicData{
		Location:            cp.Vector{X: x, Y: y},
		MaximumSpeed:        maxSpeed,
		MaximumAngularSpeed: 2,
	})
}

func requireVector(t *testing.T, want, got cp.Vector) {
	t.Helper()
	require.InDelta(t, want.X, got.X, 1e-9, "x of %v", got)
	require.InDelta(t, want.Y, got.Y, 1e-9, "y of %v", got)
}
