package steering

import "math"

const (
	// DefaultSlowingAngleDegrees is the heading error below which turning slows.
	DefaultSlowingAngleDegrees = 30.0
	// DefaultCloseEnoughAngleDegrees is the heading error treated as aligned.
	DefaultCloseEnoughAngleDegrees = 1.0
)

// FaceHeading turns the agent to face its direction of travel. It only
// produces angular output.
type FaceHeading struct {
	base
	slowingAngle     float64
	closeEnoughAngle float64
}

// NewFaceHeading creates a face-heading behaviour for data.
func NewFaceHeading(data *SteeringData) *FaceHeading {
	f := &FaceHeading{
		base:             newBase(data, NoTarget(), Options{}),
		slowingAngle:     radians(DefaultSlowingAngleDegrees),
		closeEnoughAngle: radians(DefaultCloseEnoughAngleDegrees),
	}
	f.self = f
	return f
}

// SetSlowingAngle sets, in radians, the heading error below which the
// turn rate scales down.
func (f *FaceHeading) SetSlowingAngle(a float64) { f.slowingAngle = a }

// SetCloseEnoughAngle sets, in radians, the heading error treated as aligned.
func (f *FaceHeading) SetCloseEnoughAngle(a float64) { f.closeEnoughAngle = a }

// CloseEnoughAngle returns the aligned tolerance in radians.
func (f *FaceHeading) CloseEnoughAngle() float64 { return f.closeEnoughAngle }

// Steer returns the angular velocity change that turns toward the heading.
func (f *FaceHeading) Steer() Output {
	k := f.kinematic()
	if k == nil {
		return NoEffect()
	}
	if _, speed := direction(k.Velocity); speed == 0 {
		return NoEffect()
	}

	delta := wrapAngle(k.Velocity.ToAngle() - k.Orientation)
	size := math.Abs(delta)

	if size <= f.closeEnoughAngle && !f.options.NoStop {
		return AngularOutput(-k.AngularVelocity)
	}

	rate := k.MaximumAngularSpeed
	slowing := positive(f.slowingAngle)
	if !f.options.NoSlow && size < slowing {
		rate *= size / slowing
	}
	return AngularOutput(math.Copysign(rate, delta) - k.AngularVelocity)
}
