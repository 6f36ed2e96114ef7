// Package tetromino provides the falling T-piece scene.
package tetromino

import (
	"log"

	"github.com/younwookim/monosamples/internal/application/scene"
	"github.com/younwookim/monosamples/internal/application/system"
	"github.com/younwookim/monosamples/internal/domain/entity"
)

// Name is the registry key of this scene
const Name = "tetromino"

// Scene runs one shape group that falls, steers and respawns forever
type Scene struct {
	content  scene.Content
	input    system.InputSource
	viewport entity.Viewport
	texture  string
	cfg      entity.TetrominoConfig

	group *entity.Tetromino
}

// New creates the scene. Nothing is loaded until the registry activates it.
func New(content scene.Content, input system.InputSource, vp entity.Viewport, texture string, cfg entity.TetrominoConfig) *Scene {
	return &Scene{
		content:  content,
		input:    input,
		viewport: vp,
		texture:  texture,
		cfg:      cfg,
	}
}

// Initialize drops any previous group
func (s *Scene) Initialize() {
	s.group = nil
}

// Load builds the group. A missing texture is logged and returned, but the
// group is still created and simulates without drawing.
func (s *Scene) Load() error {
	tex, err := s.content.Load(s.texture)
	if err != nil {
		log.Printf("[Tetromino] Texture unavailable, running without visuals: %v", err)
		tex = nil
	}

	group, gerr := entity.NewTetromino(tex, s.cfg)
	if gerr != nil {
		if tex != nil {
			tex.Release()
		}
		return gerr
	}
	s.group = group
	return err
}

// Update advances the group with the current directional input
func (s *Scene) Update(dt float64) {
	if s.group == nil {
		return
	}
	s.group.Update(float32(dt), s.input.GetInput().Controls(), s.viewport)
}

// Draw draws the group inside one batch
func (s *Scene) Draw(r entity.Renderer) {
	err := scene.DrawBatch(r, func(r entity.Renderer) {
		if s.group != nil {
			s.group.Draw(r)
		}
	})
	if err != nil {
		log.Printf("[Tetromino] %v", err)
	}
}

// Unload releases the group's texture
func (s *Scene) Unload() {
	s.group.Dispose()
	s.group = nil
}

// SetRule changes the movement rule now and for later loads
func (s *Scene) SetRule(rule entity.MovementRule) {
	s.cfg.Rule = rule
	if s.group != nil {
		s.group.SetRule(rule)
	}
}

// Rule returns the movement rule used by the next step
func (s *Scene) Rule() entity.MovementRule {
	return s.cfg.Rule
}

// Group returns the live group, nil while unloaded
func (s *Scene) Group() *entity.Tetromino {
	return s.group
}
