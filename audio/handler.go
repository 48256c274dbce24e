package audio

import "github.com/Skeletonxf/card-game/events"

// CueHandler plays a cue for each UI event it is registered for.
type CueHandler struct {
	Manager *Manager
}

func (h *CueHandler) HandleEvent(_ struct{}, event events.Event) {
	switch event.Type {
	case events.EventNameCommitted:
		h.Manager.PlayCommit()
	case events.EventCardSummoned:
		h.Manager.PlaySummon()
	case events.EventActionRejected, events.EventCardDestroyed:
		h.Manager.PlayError()
	}
}

func (h *CueHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventNameCommitted,
		events.EventCardSummoned,
		events.EventCardDestroyed,
		events.EventActionRejected,
	}
}
