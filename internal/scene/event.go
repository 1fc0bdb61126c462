// Package scene contains the prop arena and the per-tick simulation: AABB
// proximity tracking, interaction dispatch, interactable state machines,
// sprite animation cursors, and flicker sampling. Scenes are pure logic:
// rendering targets a core.Screen and audio goes through handles, so the
// whole package is testable without a terminal or a speaker.
package scene

// EventType identifies a message crossing prop boundaries.
type EventType int

const (
	// EventInteraction targets one interactable by id. It is the sole
	// message emitted by the dispatcher in response to player input.
	EventInteraction EventType = iota

	// EventSantaArrived starts the scripted delivery animation.
	EventSantaArrived

	// EventPresentsDelivered is emitted by the delivery animation reaching
	// its drop frame, and consumed by the tree.
	EventPresentsDelivered

	// EventSceneReset is published by Reset and drained on the first tick,
	// so hooks holding accumulated state can clear it.
	EventSceneReset
)

// Event is a typed message on the scene bus. Cross-prop state dependencies
// go through events, never through direct mutation of another prop.
type Event struct {
	Type     EventType
	TargetID string
}

// Bus is a single-tick event queue. Events published while draining are
// delivered on the next drain, which keeps handler iteration stable.
type Bus struct {
	queue []Event
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// Publish appends an event for the next drain.
func (b *Bus) Publish(ev Event) {
	b.queue = append(b.queue, ev)
}

// Drain returns all queued events and resets the queue.
func (b *Bus) Drain() []Event {
	if len(b.queue) == 0 {
		return nil
	}
	out := b.queue
	b.queue = nil
	return out
}

// Len returns the number of queued events.
func (b *Bus) Len() int {
	return len(b.queue)
}
