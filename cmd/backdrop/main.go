// cmd/backdrop/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"particle-backdrop/internal/app"
	"particle-backdrop/internal/capture"
	"particle-backdrop/internal/chat"
	"particle-backdrop/internal/config"
	"particle-backdrop/internal/defs"
	"particle-backdrop/internal/event"
	"particle-backdrop/internal/state"
	"particle-backdrop/internal/ui"
	"particle-backdrop/internal/utils"
	"particle-backdrop/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	stylesPath := flag.String("styles", "", "style definitions JSON (defaults to the built-in set)")
	styleName := flag.String("style", config.DefaultStyle, "initial style")
	seed := flag.Int64("seed", 0, "random seed for particle layout, 0 picks one")
	endpoint := flag.String("endpoint", config.ChatEndpoint, "companion chat endpoint")
	pprofAddr := flag.String("pprof", config.PprofAddr, "pprof listen address, empty to disable")
	verbose := flag.Bool("v", false, "log every backdrop event")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	catalog := defs.DefaultCatalog()
	if *stylesPath != "" {
		var err error
		if catalog, err = defs.LoadStyles(*stylesPath); err != nil {
			log.Fatal(err)
		}
	}
	log.Printf("loaded %d styles", catalog.Len())

	rng := utils.NewPRNGService(*seed)
	log.Printf("particle seed %d", rng.Seed())

	dispatcher := event.NewDispatcher()
	if *verbose {
		logger := event.LogListener{Prefix: "event "}
		for _, t := range []event.EventType{event.StyleChanged, event.StyleRejected, event.ExplosionSpawned, event.ChatMessage, event.FrameCaptured} {
			dispatcher.Subscribe(t, logger)
		}
	}

	renderer := render.NewPointRenderer()
	backdrop := app.NewBackdrop(app.Options{
		Catalog:      catalog,
		InitialStyle: *styleName,
		Renderer:     renderer,
		Rand:         rng,
		Dispatcher:   dispatcher,
	})
	if err := backdrop.Init(config.ScreenWidth, config.ScreenHeight); err != nil {
		log.Fatal(err)
	}

	labelFace, err := render.LoadFace(config.SwitcherFontSize)
	if err != nil {
		log.Fatal(err)
	}
	transcriptFace, err := render.LoadFace(config.TranscriptFontSize)
	if err != nil {
		log.Fatal(err)
	}
	style, _ := backdrop.ActiveStyle()
	switcher := ui.NewStyleSwitcher(catalog.Names(), style.Name, labelFace)
	switcher.Layout(config.ScreenWidth, config.ScreenHeight)

	relay := chat.NewRelay(chat.NewClient(*endpoint), chat.DialogPrompter{Title: config.WindowTitle})
	recorder := capture.NewRecorder(config.CaptureDir)

	sm := state.NewStateMachine()
	bs := state.NewBackdropState(backdrop, renderer, switcher, ui.NewTranscript(config.TranscriptLines, transcriptFace), relay, recorder)
	sm.SetState(bs)
	defer sm.SetState(nil)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := backdrop.Run(state.NewFrameScheduler(sm, bs)); err != nil {
		log.Fatal(err)
	}
}
