package main

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/younwookim/monosamples/internal/application/game"
	"github.com/younwookim/monosamples/internal/application/scene"
	"github.com/younwookim/monosamples/internal/application/scene/ball"
	"github.com/younwookim/monosamples/internal/application/scene/player"
	"github.com/younwookim/monosamples/internal/application/scene/tetromino"
	"github.com/younwookim/monosamples/internal/application/system"
	"github.com/younwookim/monosamples/internal/domain/entity"
	"github.com/younwookim/monosamples/internal/infrastructure/config"
	"github.com/younwookim/monosamples/internal/infrastructure/content"
	"github.com/younwookim/monosamples/internal/infrastructure/settings"
)

// app is the wired object graph for one run
type app struct {
	game      *game.Game
	registry  *scene.Registry
	tetromino *tetromino.Scene
	ball      *ball.Scene
	player    *player.Scene
	input     *system.Latch
}

// newApp builds the registry, scenes and driver. All scenes read input from
// a single latch; attach a source before the first tick.
func newApp(cfg *config.GameConfig, assets fs.FS) (*app, error) {
	tc, err := cfg.Tetromino.Entity()
	if err != nil {
		return nil, fmt.Errorf("tetromino config: %w", err)
	}
	bg, err := cfg.Display.BackgroundColor()
	if err != nil {
		return nil, err
	}

	vp := cfg.Display.Viewport()
	latch := system.NewLatch(nil)
	loader := content.NewLoader(assets)

	a := &app{
		input:    latch,
		registry: scene.NewRegistry(),
		tetromino: tetromino.New(loader, latch, vp, cfg.Tetromino.Texture, tc),
		ball: ball.New(loader, latch, vp, ball.Config{
			Texture: cfg.Ball.Texture,
			Start:   cfg.Ball.Start.Vec2(),
			Speed:   cfg.Ball.Speed,
		}),
		player: player.New(loader, latch, vp, player.Config{
			Texture: cfg.Player.Texture,
			Start:   cfg.Player.Start.Vec2(),
			Speed:   cfg.Player.Speed,
			Scale:   cfg.Player.Scale,
		}),
	}
	a.registry.Register(tetromino.Name, a.tetromino)
	a.registry.Register(ball.Name, a.ball)
	a.registry.Register(player.Name, a.player)

	a.game = game.New(a.registry, latch, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	a.game.SetDT(1.0 / float64(cfg.Display.Framerate))
	a.game.SetBackground(bg)
	return a, nil
}

// start activates the first registered name in candidates. A scene that
// loads with errors still counts as started.
func (a *app) start(candidates ...string) (string, error) {
	for _, name := range candidates {
		if name == "" {
			continue
		}
		if _, ok := a.registry.State(name); !ok {
			log.Printf("[Main] Scene %q not registered, trying next", name)
			continue
		}
		_ = a.registry.Activate(name)
		return name, nil
	}
	return "", fmt.Errorf("no start scene among %q: %w", candidates, scene.ErrSceneNotFound)
}

// applyMovement overrides the tetromino rule from settings or a recording. Empty
// values fall back to base.
func (a *app) applyMovement(base config.MovementConfig, fall, horizontal string) error {
	if fall == "" && horizontal == "" {
		return nil
	}
	if fall == "" {
		fall = base.Fall
	}
	if horizontal == "" {
		horizontal = base.Horizontal
	}
	rule, err := entity.ParseMovementRule(fall, horizontal)
	if err != nil {
		return err
	}
	a.tetromino.SetRule(rule)
	log.Printf("[Main] Tetromino movement: fall=%s horizontal=%s", rule.Fall, rule.Horizontal)
	return nil
}

// movementOverride merges movement flags over the saved values. Only the
// halves that were passed replace saved ones, and each is validated.
func movementOverride(saved settings.Settings, fall, horizontal string) (string, string, error) {
	if fall != "" {
		if _, err := entity.ParseFallRule(fall); err != nil {
			return "", "", err
		}
	} else {
		fall = saved.Fall
	}
	if horizontal != "" {
		if _, err := entity.ParsePriority(horizontal); err != nil {
			return "", "", err
		}
	} else {
		horizontal = saved.Horizontal
	}
	return fall, horizontal, nil
}

// bindings converts configured key names
func bindings(cfg *config.GameConfig) ([]system.Binding, error) {
	out := make([]system.Binding, 0, len(cfg.Bindings))
	for _, b := range cfg.Bindings {
		bind, err := system.ParseBinding(b.Key, b.Scene)
		if err != nil {
			return nil, err
		}
		out = append(out, bind)
	}
	return out, nil
}
