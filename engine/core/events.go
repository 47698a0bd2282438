package core

// Event represents a simulation event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

// EventType enumerates every event kind the engine emits
type EventType uint16

const (
	EvtArriveCompleted EventType = iota
	EvtArriveBrakingStarted
	EvtPursueCompleted
	EvtWanderCompleted
	EvtAgentSpawned
	EvtAgentDestroyed
	EvtConfigReloaded
)

var eventNames = [...]string{
	EvtArriveCompleted:      "arrive_completed",
	EvtArriveBrakingStarted: "arrive_braking_started",
	EvtPursueCompleted:      "pursue_completed",
	EvtWanderCompleted:      "wander_completed",
	EvtAgentSpawned:         "agent_spawned",
	EvtAgentDestroyed:       "agent_destroyed",
	EvtConfigReloaded:       "config_reloaded",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
	tick      uint64
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// SetTick stamps subsequently enqueued events with the given tick
func (eb *EventBus) SetTick(tick uint64) {
	eb.tick = tick
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Enqueue queues an event of type t carrying payload, stamped with the
// current tick. It never blocks and never dispatches inline.
func (eb *EventBus) Enqueue(t EventType, payload interface{}) {
	eb.Emit(Event{Type: t, Tick: eb.tick, Payload: payload})
}

// Pending returns the number of queued, undispatched events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events. Events enqueued by handlers during
// dispatch are kept for the next call.
func (eb *EventBus) Dispatch() {
	queued := eb.queue
	eb.queue = nil
	for _, e := range queued {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
	if eb.queue == nil {
		eb.queue = queued[:0]
	}
}
