// Package events routes application events to registered handlers.
//
// Dispatch is synchronous: Publish invokes every matching handler before it
// returns, in registration order, on the caller's goroutine. The frame loop
// is single-threaded, so handlers observe state exactly as it was at the
// moment of publication.
package events

// EventType identifies the kind of an application event.
type EventType int

const (
	// EventNameCommitted signals a committed player-name change.
	// Trigger: NameEditController commit | Payload: *NameCommittedPayload
	EventNameCommitted EventType = iota

	// EventCardSummoned signals a card arriving on the field.
	// Trigger: summon action applied | Payload: *CardSummonedPayload
	EventCardSummoned

	// EventCardDestroyed signals a field card sent to the graveyard.
	// Trigger: destroy action or effect resolution | Payload: *CardSummonedPayload
	EventCardDestroyed

	// EventActionRejected signals an action that could not apply.
	// Trigger: TakeAction returning an error | Payload: nil
	EventActionRejected
)

// NameCommittedPayload carries the old and new committed names.
type NameCommittedPayload struct {
	Previous string
	Name     string
}

// CardSummonedPayload carries the card name and field slot involved.
type CardSummonedPayload struct {
	CardName string
	Slot     int
}

// Event is one application event with an optional payload.
type Event struct {
	Type    EventType
	Payload any
}

// Handler processes specific event types within a context T.
type Handler[T any] interface {
	// HandleEvent processes a single event. Called synchronously during
	// Publish.
	HandleEvent(ctx T, event Event)

	// EventTypes returns the event types this handler processes.
	EventTypes() []EventType
}

// Router dispatches events to registered handlers. Multiple handlers may
// register for the same type; they run in registration order.
type Router[T any] struct {
	handlers map[EventType][]Handler[T]
}

// NewRouter creates an empty router.
func NewRouter[T any]() *Router[T] {
	return &Router[T]{handlers: make(map[EventType][]Handler[T])}
}

// Register adds a handler for its declared event types.
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Publish routes one event to every handler registered for its type.
func (r *Router[T]) Publish(ctx T, event Event) {
	for _, h := range r.handlers[event.Type] {
		h.HandleEvent(ctx, event)
	}
}

// HasHandlers returns true if any handlers are registered for the type.
func (r *Router[T]) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}
