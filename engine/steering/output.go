package steering

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// OutputType tells the integrator how to apply an Output.
type OutputType uint8

const (
	// OutputNone has no effect on the agent.
	OutputNone OutputType = iota
	// OutputVelocities are added directly to the agent's velocities.
	OutputVelocities
	// OutputAccelerations are scaled by the tick duration before being added.
	OutputAccelerations
)

func (t OutputType) String() string {
	switch t {
	case OutputNone:
		return "none"
	case OutputVelocities:
		return "velocities"
	case OutputAccelerations:
		return "accelerations"
	default:
		return fmt.Sprintf("OutputType(%d)", uint8(t))
	}
}

// Output is the result of one Steer call. It is produced fresh every tick.
type Output struct {
	Type       OutputType
	Linear     cp.Vector
	Angular    float64
	HasAngular bool
}

// NoEffect returns an output that leaves the agent untouched.
func NoEffect() Output {
	return Output{Type: OutputNone}
}

// VelocityOutput returns a linear velocity adjustment.
func VelocityOutput(linear cp.Vector) Output {
	return Output{Type: OutputVelocities, Linear: linear}
}

// AngularOutput returns an angular velocity adjustment with no linear part.
func AngularOutput(angular float64) Output {
	return Output{Type: OutputVelocities, Angular: angular, HasAngular: true}
}

// WithAngular returns a copy of o carrying an angular adjustment.
func (o Output) WithAngular(angular float64) Output {
	if o.Type == OutputNone {
		o.Type = OutputVelocities
	}
	o.Angular = angular
	o.HasAngular = true
	return o
}

// IsZero reports whether applying o would change nothing.
func (o Output) IsZero() bool {
	if o.Type == OutputNone {
		return true
	}
	return o.Linear.X == 0 && o.Linear.Y == 0 && (!o.HasAngular || o.Angular == 0)
}
