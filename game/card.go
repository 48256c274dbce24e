// Package game implements the card game rules: cards in play, the zones
// they move between, and the actions a player may take.
package game

// CardStatus tracks the last transition a card in play went through.
type CardStatus int

const (
	StatusNone CardStatus = iota
	StatusDrawn
	StatusDiscarded
	StatusSummoned
	StatusDestroyed
	StatusReturnedToHand
)

// CardInstance uniquely identifies one physical copy of a card for the
// duration of a game. Two copies of the same card type have distinct
// instances.
type CardInstance uint32

// EffectID indexes into a card type's effect list.
type EffectID uint32

// Card is one copy of a card type in play.
type Card struct {
	Type     *CardType
	Status   CardStatus
	Instance CardInstance
}

// ID returns the card type identifier.
func (c *Card) ID() int {
	return c.Type.ID
}

// HasName reports whether this card's type carries the given name.
func (c *Card) HasName(name string) bool {
	return c.Type.Name == name
}

// InstanceOf reports whether this card is a copy of the given type.
func (c *Card) InstanceOf(ct *CardType) bool {
	return c.Type == ct
}

// CanActivate evaluates every effect of the card against the game state,
// in effect order.
func (c *Card) CanActivate(pool CardPool, s *State) [][]Activation {
	result := make([][]Activation, len(c.Type.Effects))
	for i, effect := range c.Type.Effects {
		result[i] = effect.CanActivate(pool, c.Type, s, c.Instance)
	}
	return result
}
