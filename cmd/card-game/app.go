package main

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/Skeletonxf/card-game/cards"
	"github.com/Skeletonxf/card-game/events"
	"github.com/Skeletonxf/card-game/game"
	"github.com/Skeletonxf/card-game/nameedit"
	"github.com/Skeletonxf/card-game/state"
	"github.com/Skeletonxf/card-game/tui"
)

// focusZone is the pane keyboard input goes to.
type focusZone int

const (
	focusName focusZone = iota
	focusActions
)

// App composes the panes and routes input between them. It carries no game
// or editing logic of its own; every transition goes through the
// controller, the store or the game state.
type App struct {
	store  *state.Store
	name   *nameedit.Controller
	commit *tui.Button

	pool   *cards.Pool
	player *game.State

	router *events.Router[struct{}]

	focus   focusZone
	actions []game.Action
	cursor  int
	status  string

	nextInstance game.CardInstance
}

// NewApp wires the panes over a store and a loaded card pool.
func NewApp(store *state.Store, pool *cards.Pool, router *events.Router[struct{}]) *App {
	app := &App{
		store:  store,
		pool:   pool,
		router: router,
		player: game.NewState(),
	}
	app.name = nameedit.NewController(store)
	app.commit = &tui.Button{Label: "Commit", OnActivate: app.commitName}

	app.seedDemoGame()
	app.refreshActions()
	return app
}

// seedDemoGame builds the prototype's starting position: the built-in cards
// split over the two decks, with an opening draw from each.
func (a *App) seedDemoGame() {
	left := []string{"Staple Dragon", "Footsoldier", "Understudy"}
	right := []string{"Dragonification", "Shield Wall"}

	for _, name := range left {
		if card := a.instantiate(name); card != nil {
			a.player.LeftDeck = append(a.player.LeftDeck, card)
		}
	}
	for _, name := range right {
		if card := a.instantiate(name); card != nil {
			a.player.RightDeck = append(a.player.RightDeck, card)
		}
	}

	a.player.DrawLeft()
	a.player.DrawRight()
}

func (a *App) instantiate(name string) *game.Card {
	ct, ok := a.pool.ByName(name)
	if !ok {
		log.Printf("card %q missing from pool", name)
		return nil
	}
	card := &game.Card{Type: ct, Instance: a.nextInstance}
	a.nextInstance++
	return card
}

func (a *App) refreshActions() {
	a.actions = a.player.Actions(a.pool)
	if a.cursor >= len(a.actions) {
		a.cursor = len(a.actions) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// commitName promotes the draft name into the store. Reached only through
// the commit button, which is disabled while draft and committed agree.
func (a *App) commitName() {
	previous := a.store.SelectUserName()
	if !a.name.Commit() {
		return
	}
	a.router.Publish(struct{}{}, events.Event{
		Type: events.EventNameCommitted,
		Payload: &events.NameCommittedPayload{
			Previous: previous,
			Name:     a.store.SelectUserName(),
		},
	})
	a.status = fmt.Sprintf("Name committed: %s", a.store.SelectUserName())
}

// fieldedCard pairs a field card with the slot it sat on, so a destruction
// during effect resolution can be reported against its former slot.
type fieldedCard struct {
	card *game.Card
	slot int
}

// takeSelected applies the action under the cursor to the game state.
func (a *App) takeSelected() {
	if a.cursor >= len(a.actions) {
		return
	}
	action := a.actions[a.cursor]

	var fielded []fieldedCard
	for _, slot := range a.player.FieldSlots() {
		fielded = append(fielded, fieldedCard{a.player.Field[slot], slot})
	}

	if err := a.player.TakeAction(a.pool, action); err != nil {
		a.router.Publish(struct{}{}, events.Event{Type: events.EventActionRejected})
		a.status = fmt.Sprintf("Rejected: %s", describeAction(a.pool, a.player, action))
		a.refreshActions()
		return
	}

	switch action.Kind {
	case game.ActionSummonFromHand, game.ActionSummonFromHandToSlot:
		if card, slot, ok := findInstance(a.player, action.Instance); ok {
			a.router.Publish(struct{}{}, events.Event{
				Type:    events.EventCardSummoned,
				Payload: &events.CardSummonedPayload{CardName: card.Type.Name, Slot: slot},
			})
			a.status = fmt.Sprintf("Summoned %s to slot %+d", card.Type.Name, slot)
		}
	case game.ActionActivateFromField:
		a.status = "Effect resolved"
		for _, f := range fielded {
			if f.card.Status != game.StatusDestroyed {
				continue
			}
			a.router.Publish(struct{}{}, events.Event{
				Type:    events.EventCardDestroyed,
				Payload: &events.CardSummonedPayload{CardName: f.card.Type.Name, Slot: f.slot},
			})
			a.status = fmt.Sprintf("%s was destroyed", f.card.Type.Name)
		}
	}
	a.refreshActions()
}

// findInstance locates a card on the field by instance.
func findInstance(s *game.State, inst game.CardInstance) (*game.Card, int, bool) {
	for _, slot := range s.FieldSlots() {
		if card := s.Field[slot]; card.Instance == inst {
			return card, slot, true
		}
	}
	return nil, 0, false
}

// describeAction renders an action for the action pane.
func describeAction(pool *cards.Pool, s *game.State, action game.Action) string {
	name := "?"
	for _, card := range s.Hand {
		if card.Instance == action.Instance {
			name = card.Type.Name
		}
	}
	for _, card := range s.FieldCards() {
		if card.Instance == action.Instance {
			name = card.Type.Name
		}
	}

	switch action.Kind {
	case game.ActionSummonFromHand:
		return fmt.Sprintf("Summon %s", name)
	case game.ActionSummonFromHandToSlot:
		return fmt.Sprintf("Summon %s to slot %+d", name, action.Slot)
	case game.ActionActivateFromField:
		if action.Activation.Status == game.ActivationMandatory {
			return fmt.Sprintf("Resolve %s (mandatory)", name)
		}
		if action.Activation.Data.HasSlot {
			return fmt.Sprintf("Activate %s on slot %+d", name, action.Activation.Data.Slot)
		}
		return fmt.Sprintf("Activate %s", name)
	case game.ActionDestroyOnField:
		return fmt.Sprintf("Destroy %s", name)
	case game.ActionReturnFieldToHand:
		return fmt.Sprintf("Return %s to hand", name)
	}
	return name
}

// HandleKey processes one key event. Returns false to quit.
func (a *App) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return false
	case tcell.KeyTab:
		if a.focus == focusName {
			a.focus = focusActions
		} else {
			a.focus = focusName
		}
		return true
	}

	switch a.focus {
	case focusName:
		a.handleNameKey(ev)
	case focusActions:
		a.handleActionKey(ev)
	}
	return true
}

func (a *App) handleNameKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEnter {
		a.commit.Enabled = a.name.CanCommit()
		a.commit.Activate()
		return
	}
	a.name.HandleKey(ev.Key(), ev.Rune(), ev.Modifiers())
}

func (a *App) handleActionKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEnter:
		a.takeSelected()
	case ev.Key() == tcell.KeyDown || (ev.Key() == tcell.KeyRune && ev.Rune() == 'j'):
		if a.cursor < len(a.actions)-1 {
			a.cursor++
		}
	case ev.Key() == tcell.KeyUp || (ev.Key() == tcell.KeyRune && ev.Rune() == 'k'):
		if a.cursor > 0 {
			a.cursor--
		}
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'd':
		if card, ok := a.player.DrawLeft(); ok {
			a.status = fmt.Sprintf("Drew %s from the left deck", card.Type.Name)
		} else {
			a.status = "Left deck is empty"
		}
		a.refreshActions()
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'D':
		if card, ok := a.player.DrawRight(); ok {
			a.status = fmt.Sprintf("Drew %s from the right deck", card.Type.Name)
		} else {
			a.status = "Right deck is empty"
		}
		a.refreshActions()
	}
}
