// Package game provides the frame driver that feeds input to the scene
// registry and implements ebiten.Game.
package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/monosamples/internal/application/scene"
	"github.com/younwookim/monosamples/internal/application/system"
	"github.com/younwookim/monosamples/internal/domain/entity"
	"github.com/younwookim/monosamples/internal/infrastructure/render"
)

// Game implements ebiten.Game on top of a scene registry.
type Game struct {
	registry   *scene.Registry
	input      *system.Latch
	batch      *render.Batch
	screenW    int
	screenH    int
	dt         float64
	background color.Color
	ticks      int
	hud        bool
}

// New creates a driver. input is polled once per tick; scenes should read
// from the same latch.
func New(registry *scene.Registry, input *system.Latch, screenW, screenH int) *Game {
	return &Game{
		registry:   registry,
		input:      input,
		batch:      render.NewBatch(nil),
		screenW:    screenW,
		screenH:    screenH,
		dt:         1.0 / 60.0, // Default to 60 FPS
		background: color.RGBA{100, 149, 237, 255},
		hud:        true,
	}
}

// Update runs one tick. Implements ebiten.Game interface.
//
// Returns ebiten.Termination once the exit input is seen; the active scene
// is unloaded first.
func (g *Game) Update() error {
	in := g.input.Poll()
	if in.Exit {
		g.registry.Close()
		return ebiten.Termination
	}

	if in.SceneRequest != "" {
		if name, _ := g.registry.Active(); name != in.SceneRequest {
			// the registry logs both failure kinds; neither stops the loop
			_ = g.registry.Activate(in.SceneRequest)
		}
	}

	g.registry.Tick(g.dt)
	g.ticks++
	return nil
}

// Draw clears the screen and renders the active scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.batch.Target(screen)
	g.registry.Render(g.batch)

	if g.hud {
		name, _ := g.registry.Active()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("scene: %s  tick: %d\n1/2/3 switch  Esc quit", name, g.ticks))
	}
}

// Render draws the active scene through r without a screen. Used by
// headless runs.
func (g *Game) Render(r entity.Renderer) {
	g.registry.Render(r)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetBackground sets the clear colour
func (g *Game) SetBackground(c color.Color) {
	g.background = c
}

// SetHUD toggles the debug overlay
func (g *Game) SetHUD(on bool) {
	g.hud = on
}

// Ticks returns the number of completed updates
func (g *Game) Ticks() int {
	return g.ticks
}

// SpritesDrawn returns the sprite count of the last drawn frame
func (g *Game) SpritesDrawn() int {
	return g.batch.Draws()
}
