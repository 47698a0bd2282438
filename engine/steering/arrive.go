package steering

import "github.com/1siamBot/steering-engine/engine/core"

// DefaultBrakingDistance is the radius within which Arrive starts slowing.
const DefaultBrakingDistance = 5.0

// Arrive seeks the target, slows linearly inside the braking distance and
// stops once close enough.
type Arrive struct {
	base
	brakingDistance float64
	braking         Latch
	arrival         Latch
}

// NewArrive creates an arrive behaviour for data toward target.
func NewArrive(data *SteeringData, target Target) *Arrive {
	a := &Arrive{
		base: newBase(data, target, Options{
			CloseEnoughDistance: DefaultCloseEnoughDistance,
		}),
		brakingDistance: DefaultBrakingDistance,
		braking:         NewLatch(core.EvtArriveBrakingStarted),
		arrival:         NewLatch(core.EvtArriveCompleted),
	}
	a.self = a
	return a
}

// BrakingDistance returns the configured braking radius.
func (a *Arrive) BrakingDistance() float64 { return a.brakingDistance }

// SetBrakingDistance sets the braking radius. Non-positive values are
// clamped to Epsilon when steering.
func (a *Arrive) SetBrakingDistance(d float64) { a.brakingDistance = d }

// BrakingStarted reports whether the agent has entered the braking radius.
func (a *Arrive) BrakingStarted() bool { return a.braking.Done() }

// ArriveActive reports whether the behaviour is still trying to arrive.
func (a *Arrive) ArriveActive() bool { return !a.arrival.Done() }

// Completion returns the arrival latch state.
func (a *Arrive) Completion() CompletionState { return a.arrival.State() }

// SetTarget replaces the target and re-arms braking and arrival.
func (a *Arrive) SetTarget(t Target) {
	a.target = t
	a.braking.Reset()
	a.arrival.Reset()
}

// Steer returns the velocity change toward the target, scaled down inside
// the braking distance and cancelling all velocity at the goal.
func (a *Arrive) Steer() Output {
	k := a.kinematic()
	if k == nil {
		return NoEffect()
	}
	to, ok := a.target.Location()
	if !ok {
		return NoEffect()
	}
	a.deliver(&a.braking, &a.arrival)

	if a.arrival.Done() {
		return VelocityOutput(k.Velocity.Neg())
	}

	offset := to.Sub(k.Location)
	dist := offset.Length()

	if dist <= a.closeEnough() && !a.options.NoStop {
		if !a.options.NeverCompletes {
			a.arrival.Complete()
			a.deliver(&a.arrival)
		}
		return VelocityOutput(k.Velocity.Neg())
	}

	speed := k.MaximumSpeed
	braking := positive(a.brakingDistance)
	if !a.options.NoSlow && dist < braking {
		a.braking.Complete()
		a.deliver(&a.braking)
		speed *= dist / braking
	}

	if dist <= Epsilon {
		return VelocityOutput(k.Velocity.Neg())
	}
	desired := offset.Mult(speed / dist)
	return VelocityOutput(desired.Sub(k.Velocity))
}
