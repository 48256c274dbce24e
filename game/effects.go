package game

// Trigger is the body of a timed effect: what actually happens once the
// timing window (on summon, on draw) is open.
type Trigger interface {
	// Variants lists the distinct ways the trigger can fire. The default
	// is a single parameterless variant.
	Variants(pool CardPool, ct *CardType, s *State, inst CardInstance) []ActivationData

	// Activation applies the immediate part of the trigger.
	Activation(pool CardPool, ct *CardType, s *State, inst CardInstance, act Activation)

	// Resolution applies the delayed part after responses resolve.
	Resolution(pool CardPool, ct *CardType, s *State, inst CardInstance, act Activation)
}

// NopTrigger provides the default trigger behavior. Concrete triggers embed
// it and override what they need.
type NopTrigger struct{}

func (NopTrigger) Variants(CardPool, *CardType, *State, CardInstance) []ActivationData {
	return []ActivationData{{}}
}

func (NopTrigger) Activation(CardPool, *CardType, *State, CardInstance, Activation) {}

func (NopTrigger) Resolution(CardPool, *CardType, *State, CardInstance, Activation) {}

// Condition is a predicate over the game state used by conditional triggers.
type Condition interface {
	Met(pool CardPool, ct *CardType, s *State, inst CardInstance, act Activation) bool
}

// OnSummon fires its trigger while the card sits on the field freshly
// summoned.
type OnSummon struct {
	Mandatory bool
	Trigger   Trigger
}

func (e *OnSummon) CanActivate(pool CardPool, ct *CardType, s *State, inst CardInstance) []Activation {
	open := false
	for _, card := range s.FieldCards() {
		if card.Instance == inst && card.InstanceOf(ct) && card.Status == StatusSummoned {
			open = true
			break
		}
	}
	if !open {
		return nil
	}
	return e.activations(pool, ct, s, inst)
}

func (e *OnSummon) Activate(pool CardPool, ct *CardType, s *State, inst CardInstance, act Activation) {
	e.Trigger.Activation(pool, ct, s, inst, act)
	e.Trigger.Resolution(pool, ct, s, inst, act)
}

func (e *OnSummon) activations(pool CardPool, ct *CardType, s *State, inst CardInstance) []Activation {
	status := ActivationCan
	if e.Mandatory {
		status = ActivationMandatory
	}
	variants := e.Trigger.Variants(pool, ct, s, inst)
	acts := make([]Activation, len(variants))
	for i, data := range variants {
		acts[i] = Activation{Status: status, Data: data}
	}
	return acts
}

// OnDraw fires its trigger while the card sits in hand freshly drawn.
type OnDraw struct {
	Mandatory bool
	Trigger   Trigger
}

func (e *OnDraw) CanActivate(pool CardPool, ct *CardType, s *State, inst CardInstance) []Activation {
	open := false
	for _, card := range s.Hand {
		if card.Instance == inst && card.InstanceOf(ct) && card.Status == StatusDrawn {
			open = true
			break
		}
	}
	if !open {
		return nil
	}
	status := ActivationCan
	if e.Mandatory {
		status = ActivationMandatory
	}
	variants := e.Trigger.Variants(pool, ct, s, inst)
	acts := make([]Activation, len(variants))
	for i, data := range variants {
		acts[i] = Activation{Status: status, Data: data}
	}
	return acts
}

func (e *OnDraw) Activate(pool CardPool, ct *CardType, s *State, inst CardInstance, act Activation) {
	e.Trigger.Activation(pool, ct, s, inst, act)
	e.Trigger.Resolution(pool, ct, s, inst, act)
}

// DestroySelfUnless destroys the carrying card unless its condition holds.
type DestroySelfUnless struct {
	NopTrigger
	Condition Condition
}

func (t *DestroySelfUnless) Activation(pool CardPool, ct *CardType, s *State, inst CardInstance, act Activation) {
	if !t.Condition.Met(pool, ct, s, inst, act) {
		// Ignore the error: if the instance already left the field there is
		// nothing to destroy.
		_ = s.TakeAction(pool, Action{Kind: ActionDestroyOnField, Instance: inst})
	}
}

// SwapHandWithField bounces a chosen field card to hand and summons the
// carrying card into the freed slot.
type SwapHandWithField struct {
	NopTrigger
}

func (t *SwapHandWithField) Variants(pool CardPool, ct *CardType, s *State, inst CardInstance) []ActivationData {
	var variants []ActivationData
	for _, slot := range s.FieldSlots() {
		variants = append(variants, ActivationData{Slot: slot, HasSlot: true})
	}
	return variants
}

func (t *SwapHandWithField) Activation(pool CardPool, ct *CardType, s *State, inst CardInstance, act Activation) {
	if !act.Data.HasSlot {
		return
	}
	target, ok := s.Field[act.Data.Slot]
	if !ok {
		return
	}
	if err := s.TakeAction(pool, Action{Kind: ActionReturnFieldToHand, Instance: target.Instance}); err != nil {
		return
	}
	_ = s.TakeAction(pool, Action{Kind: ActionSummonFromHandToSlot, Instance: inst, Slot: act.Data.Slot})
}

// NamedCardOnField holds while any card with the given name is on the field.
type NamedCardOnField struct {
	Name string
}

func (c *NamedCardOnField) Met(pool CardPool, ct *CardType, s *State, inst CardInstance, act Activation) bool {
	for _, card := range s.FieldCards() {
		if card.HasName(c.Name) {
			return true
		}
	}
	return false
}
