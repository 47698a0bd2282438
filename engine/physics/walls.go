// Package physics answers obstacle queries for steering against static
// wall geometry held in a Chipmunk space.
package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/1siamBot/steering-engine/engine/steering"
)

// ErrDegenerateWall is returned for walls whose endpoints coincide.
var ErrDegenerateWall = errors.New("physics: wall endpoints coincide")

// Segment is one wall as added to the space.
type Segment struct {
	A, B   cp.Vector
	Radius float64
}

// Walls owns a Chipmunk space of static wall segments and implements
// steering.RayCaster against it.
type Walls struct {
	space    *cp.Space
	segments []Segment
}

var _ steering.RayCaster = (*Walls)(nil)

// NewWalls creates an empty wall set.
func NewWalls() *Walls {
	return &Walls{space: cp.NewSpace()}
}

// Add inserts a wall from a to b with the given thickness radius.
func (w *Walls) Add(a, b cp.Vector, radius float64) error {
	if a.Distance(b) <= steering.Epsilon {
		return fmt.Errorf("add wall %v-%v: %w", a, b, ErrDegenerateWall)
	}
	if radius < 0 {
		radius = 0
	}
	shape := cp.NewSegment(w.space.StaticBody, a, b, radius)
	shape.SetFriction(0.8)
	w.space.AddShape(shape)
	w.segments = append(w.segments, Segment{A: a, B: b, Radius: radius})
	return nil
}

// AddBounds encloses the rectangle from min to max with four walls.
func (w *Walls) AddBounds(min, max cp.Vector, radius float64) error {
	corners := []struct{ a, b cp.Vector }{
		{cp.Vector{X: min.X, Y: min.Y}, cp.Vector{X: max.X, Y: min.Y}},
		{cp.Vector{X: max.X, Y: min.Y}, cp.Vector{X: max.X, Y: max.Y}},
		{cp.Vector{X: max.X, Y: max.Y}, cp.Vector{X: min.X, Y: max.Y}},
		{cp.Vector{X: min.X, Y: max.Y}, cp.Vector{X: min.X, Y: min.Y}},
	}
	for _, c := range corners {
		if err := w.Add(c.a, c.b, radius); err != nil {
			return fmt.Errorf("add bounds: %w", err)
		}
	}
	return nil
}

// Segments returns the walls in insertion order.
func (w *Walls) Segments() []Segment {
	return w.segments
}

// Len returns the number of walls.
func (w *Walls) Len() int {
	return len(w.segments)
}

// CastRay returns the nearest wall hit along direction from origin within
// maxDistance.
func (w *Walls) CastRay(origin, direction cp.Vector, maxDistance float64) (steering.RayHit, bool) {
	if w == nil || len(w.segments) == 0 || !(maxDistance > 0) {
		return steering.RayHit{}, false
	}
	length := direction.Length()
	if !(length > steering.Epsilon) {
		return steering.RayHit{}, false
	}
	end := origin.Add(direction.Mult(maxDistance / length))

	info := w.space.SegmentQueryFirst(origin, end, 0, cp.SHAPE_FILTER_ALL)
	if info.Shape == nil {
		return steering.RayHit{}, false
	}
	return steering.RayHit{
		Point:    info.Point,
		Normal:   info.Normal,
		Distance: info.Alpha * maxDistance,
	}, true
}
