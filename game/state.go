package game

import (
	"errors"
	"sort"
)

// ErrInvalidAction reports an action whose target does not exist in the
// zone the action operates on.
var ErrInvalidAction = errors.New("game: invalid action")

// ActionKind enumerates the moves a player can make.
type ActionKind int

const (
	// ActionSummonFromHand moves a hand card to the next free field slot.
	ActionSummonFromHand ActionKind = iota

	// ActionSummonFromHandToSlot moves a hand card to a chosen free slot.
	ActionSummonFromHandToSlot

	// ActionActivateFromField activates one effect of a field card.
	ActionActivateFromField

	// ActionDestroyOnField sends a field card to the graveyard. Destroyed
	// cards keep their column, so the graveyard is indexed by slot.
	ActionDestroyOnField

	// ActionReturnFieldToHand bounces a field card back to hand. The card
	// loses everything tied to being fielded, which is why bouncing resets
	// accumulated damage.
	ActionReturnFieldToHand
)

// Action is one move against the game state. Effect and Activation are
// meaningful for ActionActivateFromField, Slot for ActionSummonFromHandToSlot.
type Action struct {
	Kind       ActionKind
	Instance   CardInstance
	Effect     EffectID
	Slot       int
	Activation Activation
}

// State is one player's side of the game. Field slots grow outward from the
// center: 0, -1, 1, -2, 2, ...
type State struct {
	Field     map[int]*Card
	Graveyard map[int][]*Card
	Hand      []*Card
	LeftDeck  []*Card
	RightDeck []*Card
}

// NewState creates an empty game state.
func NewState() *State {
	return &State{
		Field:     make(map[int]*Card),
		Graveyard: make(map[int][]*Card),
	}
}

// FieldSlots returns the occupied field slots in ascending order. The field
// is a map, so every iteration over it goes through here to stay
// deterministic.
func (s *State) FieldSlots() []int {
	slots := make([]int, 0, len(s.Field))
	for slot := range s.Field {
		slots = append(slots, slot)
	}
	sort.Ints(slots)
	return slots
}

// FieldCards returns the fielded cards in slot order.
func (s *State) FieldCards() []*Card {
	slots := s.FieldSlots()
	cards := make([]*Card, len(slots))
	for i, slot := range slots {
		cards[i] = s.Field[slot]
	}
	return cards
}

// Actions lists the moves available right now. Mandatory effect activations
// preempt everything else: while one is pending it is the only kind of
// move offered.
func (s *State) Actions(pool CardPool) []Action {
	var mandatory, optional []Action

	for _, card := range s.FieldCards() {
		for n, activations := range card.CanActivate(pool, s) {
			for _, act := range activations {
				a := Action{
					Kind:       ActionActivateFromField,
					Instance:   card.Instance,
					Effect:     EffectID(n),
					Activation: act,
				}
				switch act.Status {
				case ActivationMandatory:
					mandatory = append(mandatory, a)
				case ActivationCan:
					optional = append(optional, a)
				}
			}
		}
	}

	for _, card := range s.Hand {
		optional = append(optional, Action{Kind: ActionSummonFromHand, Instance: card.Instance})
	}

	if len(mandatory) > 0 {
		return mandatory
	}
	return optional
}

// emptySlotOnField finds the first free slot walking outward from the
// center: 0, -1, 1, -2, 2, ...
func (s *State) emptySlotOnField() int {
	index := 0
	for {
		if _, taken := s.Field[index]; !taken {
			return index
		}
		if index >= 0 {
			index = -(index + 1)
		} else {
			index = -index
		}
	}
}

// TakeAction applies one move. Returns ErrInvalidAction when the action's
// target is not where the action expects it.
func (s *State) TakeAction(pool CardPool, action Action) error {
	switch action.Kind {
	case ActionSummonFromHand:
		card, err := s.removeFromHand(action.Instance)
		if err != nil {
			return err
		}
		card.Status = StatusSummoned
		s.Field[s.emptySlotOnField()] = card
		return nil

	case ActionSummonFromHandToSlot:
		if _, taken := s.Field[action.Slot]; taken {
			return ErrInvalidAction
		}
		card, err := s.removeFromHand(action.Instance)
		if err != nil {
			return err
		}
		card.Status = StatusSummoned
		s.Field[action.Slot] = card
		return nil

	case ActionActivateFromField:
		card, _, err := s.findOnField(action.Instance)
		if err != nil {
			return err
		}
		if int(action.Effect) >= len(card.Type.Effects) {
			return ErrInvalidAction
		}
		effect := card.Type.Effects[action.Effect]
		effect.Activate(pool, card.Type, s, card.Instance, action.Activation)
		return nil

	case ActionDestroyOnField:
		card, slot, err := s.findOnField(action.Instance)
		if err != nil {
			return err
		}
		delete(s.Field, slot)
		card.Status = StatusDestroyed
		s.Graveyard[slot] = append(s.Graveyard[slot], card)
		return nil

	case ActionReturnFieldToHand:
		card, slot, err := s.findOnField(action.Instance)
		if err != nil {
			return err
		}
		delete(s.Field, slot)
		card.Status = StatusReturnedToHand
		s.Hand = append(s.Hand, card)
		return nil
	}

	return ErrInvalidAction
}

// DrawLeft moves the top card of the left deck into hand. Drawing is the
// player's free choice of deck and cannot be responded to.
func (s *State) DrawLeft() (*Card, bool) {
	return s.draw(&s.LeftDeck)
}

// DrawRight moves the top card of the right deck into hand.
func (s *State) DrawRight() (*Card, bool) {
	return s.draw(&s.RightDeck)
}

func (s *State) draw(deck *[]*Card) (*Card, bool) {
	if len(*deck) == 0 {
		return nil, false
	}
	card := (*deck)[0]
	*deck = (*deck)[1:]
	card.Status = StatusDrawn
	s.Hand = append(s.Hand, card)
	return card, true
}

func (s *State) removeFromHand(inst CardInstance) (*Card, error) {
	for i, card := range s.Hand {
		if card.Instance == inst {
			s.Hand = append(s.Hand[:i], s.Hand[i+1:]...)
			return card, nil
		}
	}
	return nil, ErrInvalidAction
}

func (s *State) findOnField(inst CardInstance) (*Card, int, error) {
	for _, slot := range s.FieldSlots() {
		if card := s.Field[slot]; card.Instance == inst {
			return card, slot, nil
		}
	}
	return nil, 0, ErrInvalidAction
}
