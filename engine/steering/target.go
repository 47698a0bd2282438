package steering

import "github.com/jakecoffman/cp"

// TargetKind selects where a behaviour reads its target from.
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetLocation
	TargetTransform
	TargetKinematic
)

// Locator is anything with a current world location, such as an engine
// transform. It reports false once the location is gone, for example when
// the entity behind it has been destroyed.
type Locator interface {
	Location() (cp.Vector, bool)
}

// Target is the single source of truth for what a behaviour steers toward.
// Exactly one of its sources is in use, chosen when the target is built.
type Target struct {
	kind      TargetKind
	location  cp.Vector
	locator   Locator
	kinematic *KinematicData
}

// NoTarget returns an empty target. Behaviours that need one produce no
// effect until a target is set.
func NoTarget() Target {
	return Target{}
}

// AtLocation targets a fixed point.
func AtLocation(location cp.Vector) Target {
	return Target{kind: TargetLocation, location: location}
}

// FollowTransform targets whatever location l reports each tick.
func FollowTransform(l Locator) Target {
	if l == nil {
		return NoTarget()
	}
	return Target{kind: TargetTransform, locator: l}
}

// FollowKinematic targets another entity's kinematic state, including its
// velocity.
func FollowKinematic(k *KinematicData) Target {
	if k == nil {
		return NoTarget()
	}
	return Target{kind: TargetKinematic, kinematic: k}
}

// Kind reports the target source.
func (t Target) Kind() TargetKind {
	return t.kind
}

// Location returns the current target location, or false when there is no
// target.
func (t Target) Location() (cp.Vector, bool) {
	switch t.kind {
	case TargetLocation:
		return t.location, true
	case TargetTransform:
		return t.locator.Location()
	case TargetKinematic:
		return t.kinematic.Location, true
	default:
		return cp.Vector{}, false
	}
}

// Velocity returns the tracked velocity of a kinematic target and zero for
// every other kind.
func (t Target) Velocity() cp.Vector {
	if t.kind == TargetKinematic {
		return t.kinematic.Velocity
	}
	return cp.Vector{}
}
