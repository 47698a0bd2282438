// Package steering computes per-tick velocity and rotation adjustments that
// move an agent toward, after, or around things on the XZ ground plane.
//
// Behaviours never mutate the agent. Each Steer call reads the agent's and
// the target's kinematic state and returns an Output that an integrator
// (see engine/systems) applies. Vectors are cp.Vector with X mapped to world
// X and Y mapped to world Z.
package steering

import (
	"github.com/jakecoffman/cp"

	"github.com/1siamBot/steering-engine/engine/core"
)

// KinematicData describes a moving entity: an agent or a target.
type KinematicData struct {
	Location            cp.Vector
	Velocity            cp.Vector
	Orientation         float64 // radians, 0 faces +X
	AngularVelocity     float64 // radians per second
	MaximumSpeed        float64
	MaximumAngularSpeed float64
}

// Speed returns the magnitude of the velocity.
func (k *KinematicData) Speed() float64 {
	return k.Velocity.Length()
}

// Heading returns the unit direction of travel, falling back to the facing
// direction when the entity is not moving.
func (k *KinematicData) Heading() cp.Vector {
	if dir, length := direction(k.Velocity); length > 0 {
		return dir
	}
	return cp.ForAngle(k.Orientation)
}

// SteeringData ties an agent's kinematic state to the entity that owns it.
type SteeringData struct {
	Kinematic *KinematicData
	Owner     core.EntityID
}

// NewSteeringData creates steering data for owner. A nil kinematic is
// replaced by a zero-valued one.
func NewSteeringData(owner core.EntityID, kinematic *KinematicData) *SteeringData {
	if kinematic == nil {
		kinematic = &KinematicData{}
	}
	return &SteeringData{Kinematic: kinematic, Owner: owner}
}
