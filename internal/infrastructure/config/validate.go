package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/younwookim/monosamples/internal/domain/entity"
)

// Validate checks the values the scenes rely on
func (c *GameConfig) Validate() error {
	var errs []error

	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("display size %dx%d must be positive", c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("framerate %d must be positive", c.Display.Framerate))
	}
	if _, err := c.Display.BackgroundColor(); err != nil {
		errs = append(errs, err)
	}
	if c.StartScene == "" {
		errs = append(errs, errors.New("startScene is required"))
	}
	for i, b := range c.Bindings {
		if b.Key == "" || b.Scene == "" {
			errs = append(errs, fmt.Errorf("binding %d needs both key and scene", i))
		}
	}

	t := c.Tetromino
	if len(t.Spawn) == 0 {
		errs = append(errs, errors.New("tetromino spawn layout is empty"))
	}
	if t.FrameWidth <= 0 || t.FrameHeight <= 0 {
		errs = append(errs, fmt.Errorf("tetromino frame %dx%d must be positive", t.FrameWidth, t.FrameHeight))
	}
	if t.StepInterval <= 0 {
		errs = append(errs, fmt.Errorf("tetromino stepInterval %v must be positive", t.StepInterval))
	}
	if _, err := entity.ParseMovementRule(t.Movement.Fall, t.Movement.Horizontal); err != nil {
		errs = append(errs, fmt.Errorf("tetromino movement: %w", err))
	}

	if c.Player.Scale < 0 {
		errs = append(errs, fmt.Errorf("player scale %v must not be negative", c.Player.Scale))
	}

	return errors.Join(errs...)
}

// Viewport returns the screen size as a clamping viewport
func (d DisplayConfig) Viewport() entity.Viewport {
	return entity.Viewport{Width: float32(d.ScreenWidth), Height: float32(d.ScreenHeight)}
}

// BackgroundColor parses Background; empty means cornflower blue
func (d DisplayConfig) BackgroundColor() (color.RGBA, error) {
	if d.Background == "" {
		return color.RGBA{100, 149, 237, 255}, nil
	}
	hex := strings.TrimPrefix(d.Background, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("background %q is not #RRGGBB", d.Background)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("background %q is not #RRGGBB: %w", d.Background, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Vec2 converts a config position
func (p PositionConfig) Vec2() entity.Vec2 {
	return entity.Vec2{X: p.X, Y: p.Y}
}

// Entity converts the tetromino section into the domain config
func (t TetrominoConfig) Entity() (entity.TetrominoConfig, error) {
	rule, err := entity.ParseMovementRule(t.Movement.Fall, t.Movement.Horizontal)
	if err != nil {
		return entity.TetrominoConfig{}, err
	}
	spawn := make([]entity.Vec2, len(t.Spawn))
	for i, p := range t.Spawn {
		spawn[i] = p.Vec2()
	}
	return entity.TetrominoConfig{
		Speed:        t.Speed,
		StepInterval: t.StepInterval,
		FrameWidth:   t.FrameWidth,
		FrameHeight:  t.FrameHeight,
		Frame:        t.Frame,
		Spawn:        spawn,
		Rule:         rule,
	}, nil
}
