// Package scene defines the Scene interface for game screens and the
// registry that switches between them.
//
// Each screen (ball demo, tetromino demo, player demo) implements Scene
// and is registered under a name. The frame driver forwards ticks and
// draws to whichever scene the registry holds active.
package scene

import (
	"errors"
	"fmt"

	"github.com/younwookim/monosamples/internal/domain/entity"
)

// Scene represents a game screen with lifecycle hooks.
//
// The registry calls Initialize then Load when the scene becomes active and
// Unload when another scene replaces it. Update and Draw are only called
// between Load and Unload.
type Scene interface {
	// Initialize resets in-memory state. It must not touch content.
	Initialize()

	// Load acquires content (textures). A returned error leaves the scene
	// active in a degraded state; Update and Draw must cope with missing
	// content.
	Load() error

	// Update advances the scene by dt seconds.
	Update(dt float64)

	// Draw renders the scene through r. The scene owns the Begin/End pair.
	Draw(r entity.Renderer)

	// Unload releases everything Load acquired.
	Unload()
}

// Content loads textures by name. The caller owns the returned texture.
type Content interface {
	Load(name string) (entity.Texture, error)
}

var (
	// ErrSceneNotFound is returned when activating a name that was never registered
	ErrSceneNotFound = errors.New("scene not found")

	// ErrDraw wraps a failure recovered from inside a draw batch
	ErrDraw = errors.New("draw failed")
)

// LoadError reports a scene that was activated but failed to load its content
type LoadError struct {
	Scene string
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("scene %q loaded with errors: %v", e.Scene, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// DrawBatch opens a batch on r, runs draw and always closes the batch.
// A panic inside draw is recovered and returned as an error wrapping ErrDraw.
func DrawBatch(r entity.Renderer, draw func(entity.Renderer)) (err error) {
	r.Begin()
	defer r.End()
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrDraw, rec)
		}
	}()

	draw(r)
	return nil
}
