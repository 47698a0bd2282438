package main

import (
	"fmt"
	"image/color"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"

	"github.com/1siamBot/steering-engine/engine/config"
	"github.com/1siamBot/steering-engine/engine/core"
	"github.com/1siamBot/steering-engine/engine/physics"
	"github.com/1siamBot/steering-engine/engine/steering"
	"github.com/1siamBot/steering-engine/engine/systems"
)

var wanderSpawns = []cp.Vector{
	{X: 40, Y: 22},
	{X: 65, Y: 36},
	{X: 30, Y: 8},
	{X: 70, Y: 10},
}

// Sim is the demo scenario: an arriver that heads for clicked points, a
// wanderer that avoids walls and a pursuer chasing the wanderer. When the
// pursuer catches it the wanderer is removed and respawned elsewhere.
type Sim struct {
	Config  *config.Config
	Loop    *core.GameLoop
	Bus     *core.EventBus
	Walls   *physics.Walls
	Steerer *systems.SteeringSystem
	Logger  *log.Logger
	Path    string

	Arrive *steering.Arrive
	Pursue *steering.Pursue
	Wander *steering.Wander
	Avoid  *steering.AvoidWalls

	arriver, pursuer, wanderer core.EntityID
	rng                        *rand.Rand
	Catches                    int
}

// NewSim builds the scenario from cfg. path is the config file reloads read.
func NewSim(cfg *config.Config, path string, seed int64, logger *log.Logger) (*Sim, error) {
	walls, err := cfg.BuildWalls(true)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Sim{
		Config: cfg,
		Loop:   core.NewGameLoop(cfg.Simulation.TickRate),
		Bus:    core.NewEventBus(),
		Walls:  walls,
		Logger: logger,
		Path:   path,
		rng:    rand.New(rand.NewSource(seed)),
	}
	s.Steerer = systems.NewSteeringSystem(s.Bus, logger)
	s.Loop.World.AddSystem(s.Steerer)
	s.Loop.World.AddSystem(&systems.EventLogSystem{Bus: s.Bus})

	systems.LogEvents(s.Bus, logger)
	s.Bus.On(core.EvtPursueCompleted, s.onCaught)
	for _, t := range []core.EventType{core.EvtAgentSpawned, core.EvtAgentDestroyed, core.EvtConfigReloaded} {
		s.Bus.On(t, func(e core.Event) {
			logger.Info(e.Type.String(), "tick", e.Tick, "detail", e.Payload)
		})
	}

	s.spawnArriver()
	s.spawnWanderer(wanderSpawns[0])
	s.spawnPursuer()
	s.applyTuning()
	return s, nil
}

func (s *Sim) spawnArriver() {
	id, data := systems.SpawnAgent(s.Loop.World, &steering.KinematicData{
		Location:     cp.Vector{X: 10, Y: 35},
		MaximumSpeed: 8,
	}, &core.Appearance{Label: "arrive", Radius: 0.7, Color: color.RGBA{80, 160, 255, 255}})
	s.Arrive = steering.NewArrive(data, steering.NoTarget())
	systems.Drive(s.Loop.World, id, s.Arrive)
	s.arriver = id
	s.Bus.Enqueue(core.EvtAgentSpawned, fmt.Sprintf("arriver %d", id))
}

func (s *Sim) spawnWanderer(at cp.Vector) {
	id, data := systems.SpawnAgent(s.Loop.World, &steering.KinematicData{
		Location:            at,
		Velocity:            cp.Vector{X: 1},
		MaximumSpeed:        4,
		MaximumAngularSpeed: 3,
	}, &core.Appearance{Label: "wander", Radius: 0.6, Color: color.RGBA{255, 200, 0, 255}})

	s.Wander = steering.NewWander(data)
	s.Wander.SetRandomSource(s.rng.Float64)
	s.Avoid = steering.NewAvoidWalls(data, steering.FollowTransform(systems.LocatorFunc(s.Wander.WanderTarget)), s.Walls)
	systems.Drive(s.Loop.World, id, s.Wander, s.Avoid)
	s.wanderer = id
	s.Bus.Enqueue(core.EvtAgentSpawned, fmt.Sprintf("wanderer %d", id))
}

func (s *Sim) spawnPursuer() {
	id, data := systems.SpawnAgent(s.Loop.World, &steering.KinematicData{
		Location:     cp.Vector{X: 8, Y: 8},
		MaximumSpeed: 5,
	}, &core.Appearance{Label: "pursue", Radius: 0.7, Color: color.RGBA{255, 80, 80, 255}})
	s.Pursue = steering.NewPursue(data, s.wandererTarget())
	systems.Drive(s.Loop.World, id, s.Pursue)
	s.pursuer = id
	s.Bus.Enqueue(core.EvtAgentSpawned, fmt.Sprintf("pursuer %d", id))
}

func (s *Sim) wandererTarget() steering.Target {
	body, ok := s.Loop.World.Get(s.wanderer, core.CompKinematic).(*systems.Body)
	if !ok {
		return steering.NoTarget()
	}
	return steering.FollowKinematic(body.Kinematic)
}

// onCaught replaces the wanderer and points the pursuer at the new one.
func (s *Sim) onCaught(e core.Event) {
	n, ok := e.Payload.(steering.Notification)
	if !ok || n.Behaviour != steering.Behaviour(s.Pursue) {
		return
	}
	s.Catches++
	s.Loop.World.Destroy(s.wanderer)
	s.Bus.Enqueue(core.EvtAgentDestroyed, fmt.Sprintf("wanderer %d", s.wanderer))

	visual := s.Avoid.Visualizer
	s.spawnWanderer(wanderSpawns[s.Catches%len(wanderSpawns)])
	s.Config.ApplyWander(s.Wander)
	s.Config.ApplyAvoidWalls(s.Avoid)
	s.Avoid.Visualizer = visual
	s.Pursue.SetTarget(s.wandererTarget())
}

func (s *Sim) applyTuning() {
	for _, b := range []steering.Behaviour{s.Arrive, s.Pursue, s.Wander, s.Avoid} {
		s.Config.Apply(b)
	}
}

// Reload rereads the config file and reapplies tuning and walls. On error
// the running configuration is kept.
func (s *Sim) Reload() error {
	cfg, err := config.Load(s.Path)
	if err != nil {
		return err
	}
	walls, err := cfg.BuildWalls(true)
	if err != nil {
		return err
	}
	s.Config = cfg
	s.Walls = walls
	s.Avoid.SetRayCaster(walls)
	s.applyTuning()
	s.Bus.Enqueue(core.EvtConfigReloaded, s.Path)
	return nil
}

// SetArriveTarget sends the arriver to p.
func (s *Sim) SetArriveTarget(p cp.Vector) {
	s.Arrive.SetTarget(steering.AtLocation(p))
}

// ToggleVisualizer flips feeler drawing.
func (s *Sim) ToggleVisualizer() bool {
	s.Avoid.Visualizer.ShowVisualizer = !s.Avoid.Visualizer.ShowVisualizer
	return s.Avoid.Visualizer.ShowVisualizer
}

// ToggleBlockedOnly flips whether feelers are hidden on frames where none
// of them is blocked.
func (s *Sim) ToggleBlockedOnly() bool {
	s.Avoid.Visualizer.ShowOnlyWhenBlocked = !s.Avoid.Visualizer.ShowOnlyWhenBlocked
	return s.Avoid.Visualizer.ShowOnlyWhenBlocked
}

// Wanderer returns the current wanderer entity.
func (s *Sim) Wanderer() core.EntityID { return s.wanderer }

// Run advances n ticks without wall-clock pacing.
func (s *Sim) Run(n int) {
	s.Loop.RunTicks(n)
}

// LogState writes one line per agent.
func (s *Sim) LogState() {
	for _, snap := range systems.Snapshots(s.Loop.World) {
		s.Logger.Info("agent",
			"id", snap.ID,
			"x", fmt.Sprintf("%.2f", snap.Location.X),
			"y", fmt.Sprintf("%.2f", snap.Location.Y),
			"speed", fmt.Sprintf("%.2f", snap.Velocity.Length()),
		)
	}
}

// Arriver returns the click-driven agent.
func (s *Sim) Arriver() core.EntityID { return s.arriver }

// Pursuer returns the chasing agent.
func (s *Sim) Pursuer() core.EntityID { return s.pursuer }
