package steering

import "github.com/1siamBot/steering-engine/engine/core"

// CompletionState is the lifecycle of a one-shot notification.
type CompletionState uint8

const (
	// Active means the condition has not been met yet.
	Active CompletionState = iota
	// CompletedPendingNotify means the condition was met but no sink has
	// received the event yet.
	CompletedPendingNotify
	// CompletedNotified is terminal: the event was delivered exactly once.
	CompletedNotified
)

func (s CompletionState) String() string {
	switch s {
	case Active:
		return "active"
	case CompletedPendingNotify:
		return "pending"
	case CompletedNotified:
		return "notified"
	default:
		return "unknown"
	}
}

// EventSink receives behaviour notifications. Enqueue must not block.
type EventSink interface {
	Enqueue(t core.EventType, payload interface{})
}

// Notification is the payload of every steering event.
type Notification struct {
	ID        int
	Owner     core.EntityID
	Behaviour Behaviour
}

// Latch delivers its event to a sink at most once.
type Latch struct {
	event core.EventType
	state CompletionState
}

// NewLatch creates an active latch for event.
func NewLatch(event core.EventType) Latch {
	return Latch{event: event}
}

// State returns the current lifecycle state.
func (l *Latch) State() CompletionState {
	return l.state
}

// Done reports whether the condition has been met, delivered or not.
func (l *Latch) Done() bool {
	return l.state != Active
}

// Complete records that the condition was met. It is a no-op once done.
func (l *Latch) Complete() {
	if l.state == Active {
		l.state = CompletedPendingNotify
	}
}

// Deliver sends the event to sink if it is pending. It reports whether an
// event was enqueued.
func (l *Latch) Deliver(sink EventSink, payload Notification) bool {
	if l.state != CompletedPendingNotify || sink == nil {
		return false
	}
	sink.Enqueue(l.event, payload)
	l.state = CompletedNotified
	return true
}

// Reset returns the latch to Active.
func (l *Latch) Reset() {
	l.state = Active
}
