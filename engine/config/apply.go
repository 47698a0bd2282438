package config

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/1siamBot/steering-engine/engine/physics"
	"github.com/1siamBot/steering-engine/engine/steering"
)

func degToRad(d float64) float64 { return d * math.Pi / 180 }

// ApplySeek copies seek tuning onto s.
func (c *Config) ApplySeek(s *steering.Seek) {
	s.Options().CloseEnoughDistance = c.Seek.CloseEnoughDistance
}

// ApplyArrive copies arrive tuning onto a.
func (c *Config) ApplyArrive(a *steering.Arrive) {
	o := a.Options()
	o.CloseEnoughDistance = c.Arrive.CloseEnoughDistance
	o.NoSlow = c.Arrive.NoSlow
	o.NoStop = c.Arrive.NoStop
	o.NeverCompletes = c.Arrive.NeverCompletes
	a.SetBrakingDistance(c.Arrive.BrakingDistance)
}

// ApplyPursue copies pursue tuning onto p.
func (c *Config) ApplyPursue(p *steering.Pursue) {
	o := p.Options()
	o.CloseEnoughDistance = c.Pursue.CloseEnoughDistance
	o.NeverCompletes = c.Pursue.NeverCompletes
	p.SetMaxPredict(c.Pursue.MaxPredict)
}

// ApplyFaceHeading copies turning tuning onto f.
func (c *Config) ApplyFaceHeading(f *steering.FaceHeading) {
	f.SetSlowingAngle(degToRad(c.FaceHeading.SlowingAngleDegrees))
	f.SetCloseEnoughAngle(degToRad(c.FaceHeading.CloseEnoughAngleDegrees))
}

// ApplyWander copies wander tuning onto w. A FaceHeading look gets the
// slowing angle from the face_heading section and its tolerance from
// maximum_slide_degrees.
func (c *Config) ApplyWander(w *steering.Wander) {
	w.SetCircle(c.Wander.CircleRate, c.Wander.CircleRadius, c.Wander.CircleOffset)
	w.Options().NeverCompletes = c.Wander.NeverCompletes
	if f, ok := w.Look.(*steering.FaceHeading); ok {
		f.SetSlowingAngle(degToRad(c.FaceHeading.SlowingAngleDegrees))
	}
	w.SetMaximumSlideDegrees(c.Wander.MaximumSlideDegrees)
	if loc, ok := w.StopLocation(); ok {
		w.SetStopLocation(loc, c.Wander.CloseEnoughDistance)
	}
}

// ApplyAvoidWalls copies multipliers, feeler spread and visualizer toggles
// onto a.
func (c *Config) ApplyAvoidWalls(a *steering.AvoidWalls) {
	aw := c.AvoidWalls
	a.SetMultipliers(aw.SteeringMultiplier, aw.ForceMultiplier, aw.LookAheadMultiplier)
	a.SetFeelerSpread(degToRad(aw.FeelerSpreadDegrees))
	a.Visualizer.ShowVisualizer = aw.ShowVisualizer
	a.Visualizer.ShowOnlyWhenBlocked = aw.ShowOnlyWhenBlocked
	a.Visualizer.ClearColor = aw.ClearColor.RGBA
	a.Visualizer.BlockedColor = aw.BlockedColor.RGBA
}

// Apply dispatches on the concrete behaviour type. Unknown behaviours are
// left untouched and reported as false.
func (c *Config) Apply(b steering.Behaviour) bool {
	switch v := b.(type) {
	case *steering.Seek:
		c.ApplySeek(v)
	case *steering.Arrive:
		c.ApplyArrive(v)
	case *steering.Pursue:
		c.ApplyPursue(v)
	case *steering.FaceHeading:
		c.ApplyFaceHeading(v)
	case *steering.Wander:
		c.ApplyWander(v)
	case *steering.AvoidWalls:
		c.ApplyAvoidWalls(v)
	default:
		return false
	}
	return true
}

// BuildWalls creates the configured walls plus a boundary around the
// simulation area when bounds is true.
func (c *Config) BuildWalls(bounds bool) (*physics.Walls, error) {
	w := physics.NewWalls()
	for i, wc := range c.Walls {
		a := cp.Vector{X: wc.A[0], Y: wc.A[1]}
		b := cp.Vector{X: wc.B[0], Y: wc.B[1]}
		if err := w.Add(a, b, wc.Radius); err != nil {
			return nil, fmt.Errorf("config: walls[%d]: %w", i, err)
		}
	}
	if bounds {
		max := cp.Vector{X: c.Simulation.Width, Y: c.Simulation.Height}
		if err := w.AddBounds(cp.Vector{}, max, 0.2); err != nil {
			return nil, fmt.Errorf("config: bounds: %w", err)
		}
	}
	return w, nil
}
