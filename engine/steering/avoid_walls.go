package steering

import (
	"image/color"

	"github.com/jakecoffman/cp"
)

// FeelerCount is the number of rays AvoidWalls casts: forward, left, right.
const FeelerCount = 3

// AvoidWalls defaults.
const (
	DefaultSteeringMultiplier  = 4.0
	DefaultForceMultiplier     = 2.0
	DefaultLookAheadMultiplier = 2.0
	DefaultFeelerSpreadDegrees = 30.0
)

// RayHit is the nearest obstacle a ray reached.
type RayHit struct {
	Point    cp.Vector
	Normal   cp.Vector
	Distance float64
}

// RayCaster answers obstacle queries. direction need not be normalized.
type RayCaster interface {
	CastRay(origin, direction cp.Vector, maxDistance float64) (RayHit, bool)
}

// RayCasterFunc adapts a function to RayCaster.
type RayCasterFunc func(origin, direction cp.Vector, maxDistance float64) (RayHit, bool)

func (f RayCasterFunc) CastRay(origin, direction cp.Vector, maxDistance float64) (RayHit, bool) {
	return f(origin, direction, maxDistance)
}

// Feeler is the transient result of one ray from the last Steer call.
type Feeler struct {
	Origin  cp.Vector
	End     cp.Vector // hit point when blocked
	Length  float64
	Blocked bool
	Hit     RayHit
}

// Visualizer holds the debug drawing toggles read by a renderer.
type Visualizer struct {
	ShowVisualizer      bool
	ShowOnlyWhenBlocked bool
	ClearColor          color.RGBA
	BlockedColor        color.RGBA
}

// DefaultVisualizer draws nothing until enabled; clear rays are cyan and
// blocked rays magenta.
func DefaultVisualizer() Visualizer {
	return Visualizer{
		ClearColor:   color.RGBA{R: 0, G: 255, B: 255, A: 255},
		BlockedColor: color.RGBA{R: 255, G: 0, B: 255, A: 255},
	}
}

// AvoidWalls seeks its target while feeler rays push the agent away from
// obstacles ahead of it.
type AvoidWalls struct {
	base

	Visualizer Visualizer

	caster              RayCaster
	steeringMultiplier  float64
	forceMultiplier     float64
	lookAheadMultiplier float64
	feelerSpread        float64
	feelers             [FeelerCount]Feeler
}

// NewAvoidWalls creates a wall-avoiding behaviour for data toward target.
// With no target the agent keeps its heading. caster may be nil.
func NewAvoidWalls(data *SteeringData, target Target, caster RayCaster) *AvoidWalls {
	a := &AvoidWalls{
		base: newBase(data, target, Options{
			NoSlow:              true,
			NoStop:              true,
			NeverCompletes:      true,
			CloseEnoughDistance: DefaultCloseEnoughDistance,
		}),
		Visualizer:          DefaultVisualizer(),
		caster:              caster,
		steeringMultiplier:  DefaultSteeringMultiplier,
		forceMultiplier:     DefaultForceMultiplier,
		lookAheadMultiplier: DefaultLookAheadMultiplier,
		feelerSpread:        radians(DefaultFeelerSpreadDegrees),
	}
	a.self = a
	return a
}

// SetTarget replaces the target.
func (a *AvoidWalls) SetTarget(t Target) { a.target = t }

// SetRayCaster replaces the obstacle query.
func (a *AvoidWalls) SetRayCaster(c RayCaster) { a.caster = c }

// SetMultipliers sets the seek, repulsion and look-ahead scales.
func (a *AvoidWalls) SetMultipliers(steering, force, lookAhead float64) {
	a.steeringMultiplier = steering
	a.forceMultiplier = force
	a.lookAheadMultiplier = lookAhead
}

// SteeringMultiplier returns the seek scale.
func (a *AvoidWalls) SteeringMultiplier() float64 { return a.steeringMultiplier }

// ForceMultiplier returns the repulsion scale.
func (a *AvoidWalls) ForceMultiplier() float64 { return a.forceMultiplier }

// LookAheadMultiplier returns the feeler length scale.
func (a *AvoidWalls) LookAheadMultiplier() float64 { return a.lookAheadMultiplier }

// SetFeelerSpread sets the side feeler angle, in radians, from the heading.
func (a *AvoidWalls) SetFeelerSpread(radians float64) { a.feelerSpread = radians }

// Feelers returns the rays cast by the last Steer call.
func (a *AvoidWalls) Feelers() [FeelerCount]Feeler { return a.feelers }

// Blocked reports whether any feeler hit an obstacle on the last tick.
func (a *AvoidWalls) Blocked() bool {
	for _, f := range a.feelers {
		if f.Blocked {
			return true
		}
	}
	return false
}

// FeelerColor returns the draw color of feeler i and whether it should be
// drawn at all.
func (a *AvoidWalls) FeelerColor(i int) (color.RGBA, bool) {
	if i < 0 || i >= FeelerCount || !a.Visualizer.ShowVisualizer {
		return color.RGBA{}, false
	}
	if a.Visualizer.ShowOnlyWhenBlocked && !a.Blocked() {
		return color.RGBA{}, false
	}
	if a.feelers[i].Blocked {
		return a.Visualizer.BlockedColor, true
	}
	return a.Visualizer.ClearColor, true
}

// Steer casts the feelers and returns the scaled seek velocity change plus
// one repulsion per blocked feeler, proportional to its penetration.
func (a *AvoidWalls) Steer() Output {
	k := a.kinematic()
	if k == nil {
		return NoEffect()
	}

	heading := k.Heading()
	var seek cp.Vector
	if to, ok := a.target.Location(); ok {
		if desired, _, ok := seekVelocity(k.Location, to, k.MaximumSpeed); ok {
			seek = desired.Sub(k.Velocity)
		}
	} else {
		seek = heading.Mult(k.MaximumSpeed).Sub(k.Velocity)
	}
	seek = seek.Mult(a.steeringMultiplier)

	length := a.lookAheadMultiplier * k.MaximumSpeed
	angles := [FeelerCount]float64{0, a.feelerSpread, -a.feelerSpread}
	lengths := [FeelerCount]float64{length, length / 2, length / 2}

	var repulse cp.Vector
	for i := range a.feelers {
		dir := heading.Rotate(cp.ForAngle(angles[i]))
		f := Feeler{
			Origin: k.Location,
			End:    k.Location.Add(dir.Mult(lengths[i])),
			Length: lengths[i],
		}
		if a.caster != nil && lengths[i] > Epsilon {
			if hit, ok := a.caster.CastRay(k.Location, dir, lengths[i]); ok && hit.Distance <= lengths[i] {
				f.Blocked = true
				f.Hit = hit
				f.End = hit.Point
				repulse = repulse.Add(hit.Normal.Mult((lengths[i] - hit.Distance) * a.forceMultiplier))
			}
		}
		a.feelers[i] = f
	}

	return VelocityOutput(seek.Add(repulse))
}
