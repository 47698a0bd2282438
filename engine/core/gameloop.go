package core

import "time"

// SimState represents the overall simulation state
type SimState uint8

const (
	StateStopped SimState = iota
	StateRunning
	StatePaused
)

// GameLoop manages the fixed-timestep loop that ticks the world
type GameLoop struct {
	World       *World
	State       SimState
	TickRate    float64 // fixed ticks per second
	MaxFrame    float64 // longest frame time consumed per Update, in seconds
	accumulator float64
	lastTime    time.Time
	now         func() time.Time
}

// NewGameLoop creates a game loop with fixed tick rate
func NewGameLoop(tickRate float64) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		World:    NewWorld(tickRate),
		TickRate: tickRate,
		MaxFrame: 0.25,
		lastTime: time.Now(),
		now:      time.Now,
	}
}

// Update should be called every render frame. It runs the simulation
// at fixed timestep and returns the interpolation alpha for rendering.
func (gl *GameLoop) Update() float64 {
	now := gl.now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now
	return gl.Advance(frameTime)
}

// Advance feeds frameTime seconds into the accumulator and runs as many
// fixed ticks as fit.
func (gl *GameLoop) Advance(frameTime float64) float64 {
	// Cap frame time to avoid spiral of death
	if frameTime > gl.MaxFrame {
		frameTime = gl.MaxFrame
	}
	if frameTime < 0 {
		frameTime = 0
	}

	dt := gl.Step()
	gl.accumulator += frameTime

	for gl.accumulator >= dt {
		if gl.State == StateRunning {
			gl.World.Tick(dt)
		}
		gl.accumulator -= dt
	}

	return gl.accumulator / dt
}

// Step returns the fixed tick duration in seconds
func (gl *GameLoop) Step() float64 {
	return 1.0 / gl.TickRate
}

// RunTicks runs n ticks immediately, regardless of wall time
func (gl *GameLoop) RunTicks(n int) {
	dt := gl.Step()
	for i := 0; i < n; i++ {
		gl.World.Tick(dt)
	}
}

// Play starts or resumes the simulation
func (gl *GameLoop) Play() {
	gl.State = StateRunning
	gl.lastTime = gl.now()
}

// Pause pauses the simulation
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
}

// CurrentTick returns the current simulation tick
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.World.TickCount
}
