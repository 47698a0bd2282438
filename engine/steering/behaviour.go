package steering

import "sync/atomic"

// DefaultCloseEnoughDistance is the stopping radius used when none is
// configured.
const DefaultCloseEnoughDistance = 0.1

// Behaviour is the single capability every steering behaviour provides.
type Behaviour interface {
	Steer() Output
}

// Tunable is a behaviour whose flags can be reconfigured by a composite
// behaviour or by configuration.
type Tunable interface {
	Behaviour
	ID() int
	Options() *Options
}

// Options are the flags shared by all behaviours. Changes take effect on
// the next Steer call.
type Options struct {
	// NoSlow disables slowing near the goal.
	NoSlow bool
	// NoStop disables stopping at the goal.
	NoStop bool
	// NeverCompletes suppresses the completion state and its event.
	NeverCompletes bool
	// CloseEnoughDistance is the radius within which the goal counts as reached.
	CloseEnoughDistance float64
}

var behaviourCounter int64

func nextBehaviourID() int {
	return int(atomic.AddInt64(&behaviourCounter, 1))
}

// base carries identity, the acting agent, the target, flags and the event
// sink. It is embedded by every behaviour.
type base struct {
	id      int
	data    *SteeringData
	target  Target
	options Options
	sink    EventSink
	self    Behaviour
}

func newBase(data *SteeringData, target Target, options Options) base {
	return base{
		id:      nextBehaviourID(),
		data:    data,
		target:  target,
		options: options,
	}
}

// ID returns the behaviour's process-unique identifier.
func (b *base) ID() int { return b.id }

// Options returns the mutable flags.
func (b *base) Options() *Options { return &b.options }

// Data returns the acting agent's steering data.
func (b *base) Data() *SteeringData { return b.data }

// Target returns the current target.
func (b *base) Target() Target { return b.target }

// SetEventSink attaches the sink that receives this behaviour's events.
func (b *base) SetEventSink(sink EventSink) { b.sink = sink }

// EventSink returns the attached sink, if any.
func (b *base) EventSink() EventSink { return b.sink }

func (b *base) kinematic() *KinematicData {
	if b.data == nil {
		return nil
	}
	return b.data.Kinematic
}

func (b *base) notification() Notification {
	n := Notification{ID: b.id, Behaviour: b.self}
	if b.data != nil {
		n.Owner = b.data.Owner
	}
	return n
}

func (b *base) deliver(latches ...*Latch) {
	for _, l := range latches {
		l.Deliver(b.sink, b.notification())
	}
}

func (b *base) closeEnough() float64 {
	return positive(b.options.CloseEnoughDistance)
}
