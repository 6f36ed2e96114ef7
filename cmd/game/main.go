package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/monosamples/internal/application/replay"
	"github.com/younwookim/monosamples/internal/application/system"
	"github.com/younwookim/monosamples/internal/infrastructure/config"
	"github.com/younwookim/monosamples/internal/infrastructure/render"
	"github.com/younwookim/monosamples/internal/infrastructure/settings"
)

const appName = "monosamples"

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headlessFlag := flag.Int("headless", 0, "Run N ticks without a window and exit")
	fallFlag := flag.String("fall", "", "Tetromino fall rule: tick or accumulated (saved)")
	horizontalFlag := flag.String("horizontal", "", "Tetromino key priority: left-first, right-first or cancel (saved)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadGame()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	assets, err := fs.Sub(assetFS, "assets")
	if err != nil {
		log.Fatalf("Failed to get asset subfs: %v", err)
	}

	a, err := newApp(cfg, assets)
	if err != nil {
		log.Fatalf("Failed to build game: %v", err)
	}

	prefs := settings.Open(appName)
	if *fallFlag != "" || *horizontalFlag != "" {
		fall, horizontal, err := movementOverride(prefs.Settings(), *fallFlag, *horizontalFlag)
		if err != nil {
			log.Fatalf("Invalid movement flag: %v", err)
		}
		if err := prefs.SetMovement(fall, horizontal); err != nil {
			log.Printf("[Main] Failed to save movement settings: %v", err)
		}
	}
	saved := prefs.Settings()

	dt := 1.0 / float64(cfg.Display.Framerate)
	var src system.InputSource
	var recorder *replay.Recorder

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		log.Printf("Replaying %s (%d frames, scene %q)", *replayFlag, len(data.Frames), data.Scene)
		if data.DT > 0 {
			dt = data.DT
		}
		// the recording's rule, not the saved one, reproduces the session
		if err := a.applyMovement(cfg.Tetromino.Movement, data.Fall, data.Horizontal); err != nil {
			log.Fatalf("Invalid movement rule in replay: %v", err)
		}
		if _, err := a.start(data.Scene); err != nil {
			log.Fatalf("Failed to start replay: %v", err)
		}
		src = replay.NewReplayer(*data)
	} else {
		if err := a.applyMovement(cfg.Tetromino.Movement, saved.Fall, saved.Horizontal); err != nil {
			log.Printf("[Main] Ignoring saved movement rule: %v", err)
		}
		binds, err := bindings(cfg)
		if err != nil {
			log.Fatalf("Failed to parse key bindings: %v", err)
		}
		name, err := a.start(saved.LastScene, cfg.StartScene)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		src = system.NewInputSystem(binds)
		if *recordFlag != "" {
			recorder = replay.NewRecorder(name, dt)
			recorder.SetRule(a.tetromino.Rule())
			src = replay.NewRecordingSource(src, recorder)
			log.Printf("Recording input to %s", *recordFlag)
		}
		// only interactive runs remember the scene
		a.registry.OnActivate = func(name string) {
			if err := prefs.SetLastScene(name); err != nil {
				log.Printf("[Main] Failed to save settings: %v", err)
			}
		}
		if err := prefs.SetLastScene(name); err != nil {
			log.Printf("[Main] Failed to save settings: %v", err)
		}
	}

	a.input.Attach(src)
	a.game.SetDT(dt)

	if *headlessFlag > 0 {
		runHeadless(a, *headlessFlag)
	} else {
		scale := max(cfg.Display.Scale, 1)
		ebiten.SetWindowSize(cfg.Display.ScreenWidth*scale, cfg.Display.ScreenHeight*scale)
		ebiten.SetWindowTitle(cfg.Display.Title)
		ebiten.SetTPS(cfg.Display.Framerate)

		if err := ebiten.RunGame(a.game); err != nil {
			log.Fatal(err)
		}
	}

	if recorder != nil {
		recorder.Stop()
		if err := recorder.Save(*recordFlag); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", *recordFlag, recorder.FrameCount())
		}
	}
}

// runHeadless runs up to ticks updates against a no-op renderer
func runHeadless(a *app, ticks int) {
	var nop render.Nop
	for i := 0; i < ticks; i++ {
		if err := a.game.Update(); err != nil {
			if !errors.Is(err, ebiten.Termination) {
				log.Printf("[Headless] %v", err)
			}
			break
		}
		a.game.Render(&nop)
	}
	name, _ := a.registry.Active()
	log.Printf("[Headless] %d ticks, %d sprites drawn, scene %q", a.game.Ticks(), nop.Draws, name)
	if g := a.tetromino.Group(); g != nil {
		log.Printf("[Headless] Tetromino %s at %v", g.Phase(), g.Positions())
	}
	a.registry.Close()
}
