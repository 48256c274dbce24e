package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Skeletonxf/card-game/asset"
	"github.com/Skeletonxf/card-game/audio"
	"github.com/Skeletonxf/card-game/board"
	"github.com/Skeletonxf/card-game/cards"
	"github.com/Skeletonxf/card-game/events"
	"github.com/Skeletonxf/card-game/state"
)

var (
	debugFlag = flag.Bool("debug", false, "Write debug logs to logs/")
	soundFlag = flag.Bool("sound", false, "Enable audio cues")
	nameFlag  = flag.String("name", "Player One", "Initial player name")
)

// logHandler mirrors routed events into the debug log.
type logHandler struct{}

func (logHandler) HandleEvent(_ struct{}, event events.Event) {
	switch payload := event.Payload.(type) {
	case *events.NameCommittedPayload:
		log.Printf("name committed: %q -> %q", payload.Previous, payload.Name)
	case *events.CardSummonedPayload:
		log.Printf("summoned %s to slot %+d", payload.CardName, payload.Slot)
	default:
		if event.Type == events.EventActionRejected {
			log.Print("action rejected")
		}
	}
}

func (logHandler) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventNameCommitted,
		events.EventCardSummoned,
		events.EventCardDestroyed,
		events.EventActionRejected,
	}
}

func main() {
	var screen tcell.Screen

	// Panic recovery: restore the terminal before printing the stack, or
	// the trace is unreadable in the alternate screen buffer.
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\ncard-game crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	// The field layout is static configuration; a collision is a build
	// defect, caught here once rather than checked every render.
	if err := board.Validate(board.FieldSpec); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	pool, err := cards.Load(asset.Cards, "cards")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Printf("loaded %d card types", pool.Len())

	router := events.NewRouter[struct{}]()
	router.Register(logHandler{})

	sound := audio.NewManager()
	if *soundFlag {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio unavailable: %v", err)
		} else {
			defer sound.Cleanup()
			router.Register(&audio.CueHandler{Manager: sound})
		}
	}

	store := state.NewStore(*nameFlag)
	app := NewApp(store, pool, router)

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(styleBg)

	run(screen, app)
}

// run is the frame loop: drain input, apply it, draw, at ~30fps. A
// dedicated goroutine feeds terminal events into a channel so the loop
// never blocks on input.
func run(screen tcell.Screen, app *App) {
	eventCh := make(chan tcell.Event, 16)
	quitCh := make(chan struct{})
	go func() {
		screen.ChannelEvents(eventCh, quitCh)
	}()
	defer close(quitCh)

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	for {
	drain:
		for {
			select {
			case ev := <-eventCh:
				if !handleEvent(screen, app, ev) {
					return
				}
			default:
				break drain
			}
		}

		select {
		case <-ticker.C:
		case ev := <-eventCh:
			if !handleEvent(screen, app, ev) {
				return
			}
		}

		screen.Clear()
		app.Render(screen)
		screen.Show()
	}
}

func handleEvent(screen tcell.Screen, app *App, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return app.HandleKey(ev)
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}
