package render

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Camera maps the top-down world plane onto the screen
type Camera struct {
	X, Y    float64 // camera center position (world coords)
	Zoom    float64 // zoom level (1.0 = default)
	MinZoom float64
	MaxZoom float64
	Scale   float64 // pixels per world unit at zoom 1
	ScreenW int     // viewport width in pixels
	ScreenH int     // viewport height in pixels
	Speed   float64 // pan speed (pixels per second)
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:    1.0,
		MinZoom: 0.25,
		MaxZoom: 4.0,
		Scale:   12,
		ScreenW: screenW,
		ScreenH: screenH,
		Speed:   500,
	}
}

// Fit centers the camera on the rectangle from min to max and picks the
// largest scale at which it fits the viewport
func (c *Camera) Fit(min, max cp.Vector) {
	w := math.Max(max.X-min.X, 1)
	h := math.Max(max.Y-min.Y, 1)
	c.Zoom = 1
	c.Scale = math.Min(float64(c.ScreenW)/w, float64(c.ScreenH)/h)
	c.CenterOn(cp.Vector{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2})
}

// Pan moves the camera by pixel delta
func (c *Camera) Pan(dx, dy float64) {
	c.X += dx / c.pixelsPerUnit()
	c.Y += dy / c.pixelsPerUnit()
}

// SetZoom sets zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
}

// ZoomAt zooms toward a screen point
func (c *Camera) ZoomAt(delta float64, screenX, screenY int) {
	before := c.ScreenToWorld(screenX, screenY)
	c.SetZoom(c.Zoom + delta)
	after := c.ScreenToWorld(screenX, screenY)
	// keep the point under the cursor stationary
	c.X += before.X - after.X
	c.Y += before.Y - after.Y
}

// CenterOn centers the camera on a world position
func (c *Camera) CenterOn(p cp.Vector) {
	c.X = p.X
	c.Y = p.Y
}

// WorldToScreen converts a world position to screen pixels
func (c *Camera) WorldToScreen(p cp.Vector) (float32, float32) {
	s := c.pixelsPerUnit()
	sx := (p.X-c.X)*s + float64(c.ScreenW)/2
	sy := (p.Y-c.Y)*s + float64(c.ScreenH)/2
	return float32(sx), float32(sy)
}

// ScreenToWorld converts screen pixels to a world position
func (c *Camera) ScreenToWorld(sx, sy int) cp.Vector {
	s := c.pixelsPerUnit()
	return cp.Vector{
		X: (float64(sx)-float64(c.ScreenW)/2)/s + c.X,
		Y: (float64(sy)-float64(c.ScreenH)/2)/s + c.Y,
	}
}

// Length converts a world distance to pixels
func (c *Camera) Length(d float64) float32 {
	return float32(d * c.pixelsPerUnit())
}

func (c *Camera) pixelsPerUnit() float64 {
	s := c.Scale * c.Zoom
	if !(s > 0) {
		return 1
	}
	return s
}
