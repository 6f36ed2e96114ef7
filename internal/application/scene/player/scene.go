// Package player provides the scaled, flipping player sprite scene.
package player

import (
	"log"

	"github.com/younwookim/monosamples/internal/application/scene"
	"github.com/younwookim/monosamples/internal/application/system"
	"github.com/younwookim/monosamples/internal/domain/entity"
)

// Name is the registry key of this scene
const Name = "player"

// Config holds the player's start values
type Config struct {
	Texture string
	Start   entity.Vec2
	Speed   float32
	Scale   float32
}

// Scene moves the player sprite
type Scene struct {
	content  scene.Content
	input    system.InputSource
	viewport entity.Viewport
	cfg      Config

	player *entity.Player
}

// New creates the scene
func New(content scene.Content, input system.InputSource, vp entity.Viewport, cfg Config) *Scene {
	return &Scene{content: content, input: input, viewport: vp, cfg: cfg}
}

func (s *Scene) Initialize() {
	s.player = entity.NewPlayer(s.cfg.Start, s.cfg.Speed, s.cfg.Scale)
}

func (s *Scene) Load() error {
	tex, err := s.content.Load(s.cfg.Texture)
	if err != nil {
		log.Printf("[Player] %v", err)
		return err
	}
	s.player.Texture = tex
	return nil
}

func (s *Scene) Update(dt float64) {
	if s.player == nil {
		return
	}
	s.player.Move(float32(dt), s.input.GetInput().Controls(), s.viewport)
}

func (s *Scene) Draw(r entity.Renderer) {
	err := scene.DrawBatch(r, func(r entity.Renderer) {
		if s.player != nil {
			s.player.Draw(r)
		}
	})
	if err != nil {
		log.Printf("[Player] %v", err)
	}
}

func (s *Scene) Unload() {
	if s.player == nil {
		return
	}
	if s.player.Texture != nil {
		s.player.Texture.Release()
	}
	s.player = nil
}

// Player returns the live player, nil while unloaded
func (s *Scene) Player() *entity.Player {
	return s.player
}
