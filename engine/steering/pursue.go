package steering

import (
	"github.com/jakecoffman/cp"

	"github.com/1siamBot/steering-engine/engine/core"
)

// DefaultMaxPredict caps how far ahead, in seconds, Pursue extrapolates.
const DefaultMaxPredict = 2.0

// Pursue seeks the point a moving target will occupy after a prediction
// horizon derived from distance and speed.
type Pursue struct {
	base
	maxPredict float64
	active     bool
	predicted  cp.Vector
	completion Latch
}

// NewPursue creates a pursue behaviour for data after target. Only
// kinematic targets carry velocity; other kinds are pursued like Seek.
func NewPursue(data *SteeringData, target Target) *Pursue {
	p := &Pursue{
		base: newBase(data, target, Options{
			CloseEnoughDistance: DefaultCloseEnoughDistance,
		}),
		maxPredict: DefaultMaxPredict,
		active:     true,
		completion: NewLatch(core.EvtPursueCompleted),
	}
	p.self = p
	return p
}

// MaxPredict returns the prediction cap in seconds.
func (p *Pursue) MaxPredict() float64 { return p.maxPredict }

// SetMaxPredict sets the prediction cap. Non-positive values are clamped
// to Epsilon when steering.
func (p *Pursue) SetMaxPredict(v float64) { p.maxPredict = v }

// PursueActive reports whether the last Steer call was still pursuing.
func (p *Pursue) PursueActive() bool { return p.active }

// Completion returns the completion latch state.
func (p *Pursue) Completion() CompletionState { return p.completion.State() }

// PredictedLocation returns the point steered toward on the last active tick.
func (p *Pursue) PredictedLocation() cp.Vector { return p.predicted }

// SetTarget replaces the target and re-arms completion.
func (p *Pursue) SetTarget(t Target) {
	p.target = t
	p.active = true
	p.completion.Reset()
}

// Steer returns the velocity change toward the predicted target location.
// Once within CloseEnoughDistance it falls back to plain seek.
func (p *Pursue) Steer() Output {
	k := p.kinematic()
	if k == nil {
		return NoEffect()
	}
	to, ok := p.target.Location()
	if !ok {
		return NoEffect()
	}
	p.deliver(&p.completion)

	distance := to.Sub(k.Location).Length()
	p.active = distance > p.closeEnough() && !p.completion.Done()
	if !p.active {
		if !p.options.NeverCompletes {
			p.completion.Complete()
			p.deliver(&p.completion)
		}
		return seekOutput(k, to)
	}

	horizon := positive(p.maxPredict)
	speed := k.MaximumSpeed
	predict := horizon
	if speed > distance/horizon {
		predict = distance / speed
	}

	p.predicted = to.Add(p.target.Velocity().Mult(predict))
	return seekOutput(k, p.predicted)
}
