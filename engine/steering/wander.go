package steering

import (
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/1siamBot/steering-engine/engine/core"
)

// Wander defaults.
const (
	DefaultWanderCircleRate          = 1.0
	DefaultWanderCircleRadius        = 10.0
	DefaultWanderCircleOffset        = 30.0
	DefaultMaximumSlideDegrees       = 5.0
	DefaultWanderCloseEnoughDistance = 1.0
)

// RandomSource returns uniform values in [0, 1).
type RandomSource func() float64

// Wander drifts a target around a circle projected ahead of the agent and
// steers at it, producing smooth exploratory motion.
type Wander struct {
	base

	// Move and Look are optional sub-behaviours. They are reconfigured on
	// construction to slow and stop but never complete.
	Move Tunable
	Look Tunable

	circleRate          float64
	circleRadius        float64
	circleOffset        float64
	maximumSlideDegrees float64
	closeEnough         float64
	stopLocation        cp.Vector
	hasStopLocation     bool

	orientation float64
	lastTarget  cp.Vector
	active      bool
	random      RandomSource
	completion  Latch
}

// NewWander creates a wander behaviour for data with an Arrive as Move
// and a FaceHeading as Look.
func NewWander(data *SteeringData) *Wander {
	look := NewFaceHeading(data)
	look.SetCloseEnoughAngle(radians(DefaultMaximumSlideDegrees))
	return NewWanderWith(data, NewArrive(data, NoTarget()), look)
}

// NewWanderWith creates a wander behaviour with explicit sub-behaviours.
// Either may be nil.
func NewWanderWith(data *SteeringData, move, look Tunable) *Wander {
	w := &Wander{
		base:                newBase(data, NoTarget(), Options{NeverCompletes: true}),
		circleRate:          DefaultWanderCircleRate,
		circleRadius:        DefaultWanderCircleRadius,
		circleOffset:        DefaultWanderCircleOffset,
		maximumSlideDegrees: DefaultMaximumSlideDegrees,
		closeEnough:         DefaultWanderCloseEnoughDistance,
		active:              true,
		random:              rand.Float64,
		completion:          NewLatch(core.EvtWanderCompleted),
	}
	w.self = w
	w.Move = configureSub(move)
	w.Look = configureSub(look)
	return w
}

func configureSub(t Tunable) Tunable {
	if t == nil {
		return nil
	}
	o := t.Options()
	o.NoStop = false
	o.NoSlow = false
	o.NeverCompletes = true
	return t
}

// SetRandomSource replaces the uniform generator. A nil source restores
// math/rand.
func (w *Wander) SetRandomSource(r RandomSource) {
	if r == nil {
		r = rand.Float64
	}
	w.random = r
}

// SetCircle sets the per-tick drift rate, circle radius and forward offset.
func (w *Wander) SetCircle(rate, radius, offset float64) {
	w.circleRate = rate
	w.circleRadius = radius
	w.circleOffset = offset
}

// CircleRate returns the maximum per-tick change of the wander orientation.
func (w *Wander) CircleRate() float64 { return w.circleRate }

// CircleRadius returns the wander circle radius.
func (w *Wander) CircleRadius() float64 { return w.circleRadius }

// CircleOffset returns how far ahead of the agent the circle sits.
func (w *Wander) CircleOffset() float64 { return w.circleOffset }

// MaximumSlideDegrees returns the heading error Look tolerates.
func (w *Wander) MaximumSlideDegrees() float64 { return w.maximumSlideDegrees }

// SetMaximumSlideDegrees sets the heading error Look tolerates and pushes it
// to a FaceHeading look.
func (w *Wander) SetMaximumSlideDegrees(d float64) {
	w.maximumSlideDegrees = d
	if f, ok := w.Look.(*FaceHeading); ok {
		f.SetCloseEnoughAngle(radians(d))
	}
}

// SetStopLocation makes the wander complete once the agent gets within
// the close enough distance of location.
func (w *Wander) SetStopLocation(location cp.Vector, closeEnough float64) {
	w.stopLocation = location
	w.hasStopLocation = true
	w.closeEnough = closeEnough
	w.active = true
	w.completion.Reset()
}

// ClearStopLocation removes the stop location; the wander runs forever again.
func (w *Wander) ClearStopLocation() {
	w.hasStopLocation = false
	w.active = true
	w.completion.Reset()
}

// StopLocation returns the stop location, if set.
func (w *Wander) StopLocation() (cp.Vector, bool) {
	return w.stopLocation, w.hasStopLocation
}

// Orientation returns the accumulated wander orientation in radians.
func (w *Wander) Orientation() float64 { return w.orientation }

// WanderTarget returns the point steered at on the last active tick.
func (w *Wander) WanderTarget() cp.Vector { return w.lastTarget }

// WanderActive reports whether the last Steer call was still wandering.
func (w *Wander) WanderActive() bool { return w.active }

// Completion returns the completion latch state.
func (w *Wander) Completion() CompletionState { return w.completion.State() }

// Steer advances the wander orientation and returns the raw offset from the
// agent to the wander target. The offset is deliberately not clamped to
// the agent's maximum speed.
func (w *Wander) Steer() Output {
	k := w.kinematic()
	if k == nil {
		return NoEffect()
	}
	w.deliver(&w.completion)

	w.active = !w.completion.Done()
	if w.active && w.hasStopLocation {
		w.active = w.stopLocation.Distance(k.Location) > w.closeEnough
	}
	if !w.active {
		if !w.options.NeverCompletes {
			w.completion.Complete()
			w.deliver(&w.completion)
		}
		return NoEffect()
	}

	w.orientation += (w.random() - w.random()) * w.circleRate

	facing := k.Orientation
	center := k.Location.Add(cp.ForAngle(facing).Mult(w.circleOffset))
	w.lastTarget = center.Add(cp.ForAngle(w.orientation + facing).Mult(positive(w.circleRadius)))

	out := VelocityOutput(w.lastTarget.Sub(k.Location))
	if w.Look != nil {
		if look := w.Look.Steer(); look.HasAngular {
			out = out.WithAngular(look.Angular)
		}
	}
	return out
}
