// Package ball provides the arrow-key ball scene.
package ball

import (
	"log"

	"github.com/younwookim/monosamples/internal/application/scene"
	"github.com/younwookim/monosamples/internal/application/system"
	"github.com/younwookim/monosamples/internal/domain/entity"
)

// Name is the registry key of this scene
const Name = "ball"

// Config holds the ball's start values
type Config struct {
	Texture string
	Start   entity.Vec2
	Speed   float32
}

// Scene moves a single ball around the screen
type Scene struct {
	content  scene.Content
	input    system.InputSource
	viewport entity.Viewport
	cfg      Config

	ball          *entity.Ball
	missingLogged bool
}

// New creates the scene
func New(content scene.Content, input system.InputSource, vp entity.Viewport, cfg Config) *Scene {
	return &Scene{content: content, input: input, viewport: vp, cfg: cfg}
}

// Initialize puts the ball back at its start position
func (s *Scene) Initialize() {
	s.ball = entity.NewBall(s.cfg.Start, s.cfg.Speed)
	s.missingLogged = false
}

// Load attaches the ball texture
func (s *Scene) Load() error {
	tex, err := s.content.Load(s.cfg.Texture)
	if err != nil {
		log.Printf("[Ball] %v", err)
		return err
	}
	s.ball.Texture = tex
	return nil
}

// Update moves the ball by the held arrow keys
func (s *Scene) Update(dt float64) {
	if s.ball == nil {
		return
	}
	s.ball.Move(float32(dt), s.input.GetInput().Controls(), s.viewport)
}

// Draw draws the ball, or nothing if its texture never loaded
func (s *Scene) Draw(r entity.Renderer) {
	if s.ball != nil && s.ball.Texture == nil && !s.missingLogged {
		log.Printf("[Ball] No texture, skipping draw")
		s.missingLogged = true
	}
	err := scene.DrawBatch(r, func(r entity.Renderer) {
		if s.ball != nil {
			s.ball.Draw(r)
		}
	})
	if err != nil {
		log.Printf("[Ball] %v", err)
	}
}

// Unload releases the texture
func (s *Scene) Unload() {
	if s.ball == nil {
		return
	}
	if s.ball.Texture != nil {
		s.ball.Texture.Release()
		s.ball.Texture = nil
	}
	s.ball = nil
}

// Ball returns the live ball, nil while unloaded
func (s *Scene) Ball() *entity.Ball {
	return s.ball
}
