package game

// CardPool resolves card references by name. Satisfied by cards.Pool;
// effects receive it so conditions can inspect the card pool without the
// rules depending on the loader.
type CardPool interface {
	ByName(name string) (*CardType, bool)
}

// CardType is the class cards are instances of. Spells are not a separate
// kind: a card with zero attack and defense played to the back row fills
// that role.
type CardType struct {
	// ID is assigned by the loader from load order; it is not part of the
	// card definition files.
	ID      int
	Name    string
	Attack  int
	Defense int
	Effects []Effect
}

// ActivationStatus says whether an effect can or must activate.
type ActivationStatus int

const (
	ActivationCannot ActivationStatus = iota
	ActivationCan
	ActivationMandatory
)

// ActivationData carries the player's choice for effects that can resolve
// in more than one way. HasSlot guards Slot.
type ActivationData struct {
	Slot    int
	HasSlot bool
}

// Activation is one concrete way an effect may activate right now.
type Activation struct {
	Status ActivationStatus
	Data   ActivationData
}

// Effect is one ability printed on a card type.
type Effect interface {
	// CanActivate lists the ways this effect may activate for the given
	// card instance in the current state. Empty means not activatable.
	CanActivate(pool CardPool, ct *CardType, s *State, inst CardInstance) []Activation

	// Activate performs the effect for one of the activations returned by
	// CanActivate.
	Activate(pool CardPool, ct *CardType, s *State, inst CardInstance, act Activation)
}
