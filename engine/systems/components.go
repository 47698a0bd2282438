package systems

import (
	"github.com/jakecoffman/cp"

	"github.com/1siamBot/steering-engine/engine/core"
	"github.com/1siamBot/steering-engine/engine/steering"
)

// Body carries an agent's kinematic state. Behaviours read it through the
// shared SteeringData and SteeringSystem writes it.
type Body struct {
	*steering.SteeringData
}

func (b *Body) Type() core.ComponentType { return core.CompKinematic }

// Location implements steering.Locator so a body can be followed as a
// transform target. A nil body or one without kinematics has no location.
func (b *Body) Location() (cp.Vector, bool) {
	if b == nil || b.SteeringData == nil || b.Kinematic == nil {
		return cp.Vector{}, false
	}
	return b.Kinematic.Location, true
}

// Steering lists the behaviours driving an agent. Outputs are applied in
// order each tick.
type Steering struct {
	Behaviours []steering.Behaviour
}

func (s *Steering) Type() core.ComponentType { return core.CompSteering }

// LocatorFunc adapts a function to steering.Locator.
type LocatorFunc func() cp.Vector

func (f LocatorFunc) Location() (cp.Vector, bool) {
	if f == nil {
		return cp.Vector{}, false
	}
	return f(), true
}

// SpawnAgent creates an entity with a body for k. The caller attaches
// behaviours built on the returned SteeringData.
func SpawnAgent(w *core.World, k *steering.KinematicData, look *core.Appearance) (core.EntityID, *steering.SteeringData) {
	id := w.Spawn()
	data := steering.NewSteeringData(id, k)
	w.Attach(id, &Body{SteeringData: data})
	if look != nil {
		w.Attach(id, look)
	}
	return id, data
}

// Drive attaches behaviours to an agent, replacing any it had.
func Drive(w *core.World, id core.EntityID, behaviours ...steering.Behaviour) {
	w.Attach(id, &Steering{Behaviours: behaviours})
}

// BehaviourName returns a short lowercase name for b.
func BehaviourName(b steering.Behaviour) string {
	switch b.(type) {
	case *steering.Seek:
		return "seek"
	case *steering.Arrive:
		return "arrive"
	case *steering.Pursue:
		return "pursue"
	case *steering.FaceHeading:
		return "face_heading"
	case *steering.Wander:
		return "wander"
	case *steering.AvoidWalls:
		return "avoid_walls"
	case nil:
		return "none"
	default:
		return "custom"
	}
}
