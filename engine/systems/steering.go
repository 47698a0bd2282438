package systems

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/1siamBot/steering-engine/engine/core"
	"github.com/1siamBot/steering-engine/engine/steering"
)

type sinkHolder interface {
	SetEventSink(steering.EventSink)
	EventSink() steering.EventSink
}

// SteeringSystem runs every agent's behaviours once per tick and integrates
// their outputs into the agent's kinematic state.
type SteeringSystem struct {
	Bus    *core.EventBus
	Logger *log.Logger

	// Rejected counts outputs dropped for carrying non-finite values.
	Rejected int
}

// NewSteeringSystem creates a system that routes completion events to bus.
// A nil logger uses the default charm logger.
func NewSteeringSystem(bus *core.EventBus, logger *log.Logger) *SteeringSystem {
	if logger == nil {
		logger = log.Default()
	}
	return &SteeringSystem{Bus: bus, Logger: logger}
}

func (s *SteeringSystem) Priority() int { return 10 }

func (s *SteeringSystem) Update(w *core.World, dt float64) {
	if s.Bus != nil {
		s.Bus.SetTick(w.TickCount)
	}

	for _, id := range w.Query(core.CompKinematic, core.CompSteering) {
		body := w.Get(id, core.CompKinematic).(*Body)
		st := w.Get(id, core.CompSteering).(*Steering)
		k := body.Kinematic
		if k == nil {
			continue
		}

		turned := false
		for _, b := range st.Behaviours {
			if b == nil {
				continue
			}
			s.attachSink(b)
			out := b.Steer()
			if !finite(out) {
				s.Rejected++
				s.Logger.Warn("dropping non-finite steering output",
					"agent", id, "behaviour", BehaviourName(b), "type", out.Type)
				continue
			}
			apply(k, out, dt)
			if out.HasAngular && out.Type != steering.OutputNone {
				turned = true
			}
		}

		integrate(k, dt, turned)
	}
}

func (s *SteeringSystem) attachSink(b steering.Behaviour) {
	if s.Bus == nil {
		return
	}
	if h, ok := b.(sinkHolder); ok && h.EventSink() == nil {
		h.SetEventSink(s.Bus)
	}
}

func apply(k *steering.KinematicData, out steering.Output, dt float64) {
	switch out.Type {
	case steering.OutputVelocities:
		k.Velocity = k.Velocity.Add(out.Linear)
		if out.HasAngular {
			k.AngularVelocity += out.Angular
		}
	case steering.OutputAccelerations:
		k.Velocity = k.Velocity.Add(out.Linear.Mult(dt))
		if out.HasAngular {
			k.AngularVelocity += out.Angular * dt
		}
	}
}

// integrate clamps speeds and advances location and orientation. Agents
// whose behaviours did not turn them face their direction of travel.
func integrate(k *steering.KinematicData, dt float64, turned bool) {
	if k.MaximumSpeed > 0 {
		k.Velocity = k.Velocity.Clamp(k.MaximumSpeed)
	}
	if k.MaximumAngularSpeed > 0 {
		k.AngularVelocity = math.Max(-k.MaximumAngularSpeed, math.Min(k.MaximumAngularSpeed, k.AngularVelocity))
	}

	k.Location = k.Location.Add(k.Velocity.Mult(dt))

	if turned {
		k.Orientation = wrap(k.Orientation + k.AngularVelocity*dt)
		return
	}
	if k.Velocity.LengthSq() > steering.Epsilon*steering.Epsilon {
		k.Orientation = k.Velocity.ToAngle()
	}
}

func wrap(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

func finite(o steering.Output) bool {
	for _, v := range []float64{o.Linear.X, o.Linear.Y, o.Angular} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Snapshot is a copy of an agent's kinematic state for logging and tests.
type Snapshot struct {
	ID          core.EntityID
	Location    cp.Vector
	Velocity    cp.Vector
	Orientation float64
}

// Snapshots returns the kinematic state of every body in ID order.
func Snapshots(w *core.World) []Snapshot {
	ids := w.Query(core.CompKinematic)
	out := make([]Snapshot, 0, len(ids))
	for _, id := range ids {
		body := w.Get(id, core.CompKinematic).(*Body)
		if body.SteeringData == nil || body.Kinematic == nil {
			continue
		}
		k := body.Kinematic
		out = append(out, Snapshot{ID: id, Location: k.Location, Velocity: k.Velocity, Orientation: k.Orientation})
	}
	return out
}
