package systems

import (
	"github.com/charmbracelet/log"

	"github.com/1siamBot/steering-engine/engine/core"
	"github.com/1siamBot/steering-engine/engine/steering"
)

// SteeringEvents lists the event kinds behaviours enqueue.
var SteeringEvents = []core.EventType{
	core.EvtArriveBrakingStarted,
	core.EvtArriveCompleted,
	core.EvtPursueCompleted,
	core.EvtWanderCompleted,
}

// LogEvents registers handlers on bus that log steering events at Debug.
func LogEvents(bus *core.EventBus, logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	for _, t := range SteeringEvents {
		bus.On(t, func(e core.Event) {
			n, ok := e.Payload.(steering.Notification)
			if !ok {
				logger.Debug("steering event", "event", e.Type, "tick", e.Tick)
				return
			}
			logger.Debug("steering event",
				"event", e.Type,
				"tick", e.Tick,
				"agent", n.Owner,
				"behaviour", BehaviourName(n.Behaviour),
				"id", n.ID,
			)
		})
	}
}

// EventLogSystem dispatches the bus at the end of every tick so handlers
// run in simulation order. It sorts after SteeringSystem.
type EventLogSystem struct {
	Bus *core.EventBus
}

func (s *EventLogSystem) Priority() int { return 100 }

func (s *EventLogSystem) Update(w *core.World, dt float64) {
	if s.Bus != nil {
		s.Bus.Dispatch()
	}
}
