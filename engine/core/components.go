package core

import "image/color"

// ---- Appearance ----

// Appearance describes how the debug renderer draws an entity
type Appearance struct {
	Label  string
	Radius float64 // world units
	Color  color.RGBA
}

func (a *Appearance) Type() ComponentType { return CompAppearance }
