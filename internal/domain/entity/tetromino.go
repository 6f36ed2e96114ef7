package entity

import "errors"

// Phase is the fall simulation state of a shape group
type Phase int

const (
	PhaseFalling Phase = iota
	PhaseResting
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "Falling"
	case PhaseResting:
		return "Resting"
	default:
		return "Unknown"
	}
}

// TeeSpawn is the T-piece layout: three blocks in a row with one beneath
// the middle.
var TeeSpawn = []Vec2{
	{X: 132, Y: 100},
	{X: 100, Y: 100},
	{X: 164, Y: 100},
	{X: 132, Y: 132},
}

// TetrominoConfig configures a shape group
type TetrominoConfig struct {
	Speed        float32 // pixels per second
	StepInterval float32 // seconds between movement steps
	FrameWidth   int
	FrameHeight  int
	Frame        int // index of the source frame on the sprite sheet
	Spawn        []Vec2
	Rule         MovementRule
}

// DefaultTetrominoConfig returns the T-piece defaults
func DefaultTetrominoConfig() TetrominoConfig {
	spawn := make([]Vec2, len(TeeSpawn))
	copy(spawn, TeeSpawn)
	return TetrominoConfig{
		Speed:        200,
		StepInterval: 0.1,
		FrameWidth:   32,
		FrameHeight:  32,
		Frame:        0,
		Spawn:        spawn,
	}
}

// Tetromino is a fixed group of shapes that falls and steers as one piece.
// It owns the texture; its shapes hold non-owning references.
//
// positions[i] is the authoritative position of shapes[i]; every step
// writes positions back into shapes before returning.
type Tetromino struct {
	cfg       TetrominoConfig
	texture   Texture
	shapes    []*Shape
	positions []Vec2
	elapsed   float32
	phase     Phase
}

// NewTetromino creates a group at its spawn layout. tex may be nil, in
// which case the group simulates but draws nothing.
func NewTetromino(tex Texture, cfg TetrominoConfig) (*Tetromino, error) {
	if len(cfg.Spawn) == 0 {
		return nil, errors.New("tetromino spawn layout is empty")
	}
	if cfg.FrameWidth <= 0 || cfg.FrameHeight <= 0 {
		return nil, errors.New("tetromino frame size must be positive")
	}
	if cfg.Frame < 0 {
		return nil, errors.New("tetromino frame index must not be negative")
	}

	src := Frames(cfg.Frame+1, cfg.FrameWidth, cfg.FrameHeight)[cfg.Frame]

	t := &Tetromino{
		cfg:       cfg,
		texture:   tex,
		shapes:    make([]*Shape, len(cfg.Spawn)),
		positions: make([]Vec2, len(cfg.Spawn)),
		phase:     PhaseFalling,
	}
	copy(t.positions, cfg.Spawn)
	for i, pos := range t.positions {
		t.shapes[i] = NewShape(tex, pos, src)
	}
	return t, nil
}

// Update advances the fall simulation by dt seconds.
//
// The tick that finds the group resting respawns it and does nothing else.
func (t *Tetromino) Update(dt float32, c Controls, vp Viewport) {
	if t.phase == PhaseResting {
		t.respawn()
		return
	}

	t.elapsed += dt
	if t.elapsed < t.cfg.StepInterval {
		return
	}

	t.step(dt, c, vp)
	t.elapsed = 0

	if t.onFloor(vp) {
		t.phase = PhaseResting
	}
}

// step moves every shape once. Horizontal displacement always uses dt;
// the fall rule only picks the vertical time base.
func (t *Tetromino) step(dt float32, c Controls, vp Viewport) {
	fall := t.cfg.Speed * dt
	if t.cfg.Rule.Fall == FallAccumulated {
		fall = t.cfg.Speed * t.elapsed
	}
	d := Vec2{
		X: t.cfg.Rule.Horizontal.Axis(c.Left, c.Right) * t.cfg.Speed * dt,
		Y: fall,
	}
	fw, fh := float32(t.cfg.FrameWidth), float32(t.cfg.FrameHeight)

	for i, p := range t.positions {
		t.positions[i] = vp.ClampTopLeft(p.Add(d), fw, fh)
	}
	t.syncShapes()
}

func (t *Tetromino) onFloor(vp Viewport) bool {
	fh := float32(t.cfg.FrameHeight)
	for _, p := range t.positions {
		if p.Y+fh >= vp.Height {
			return true
		}
	}
	return false
}

func (t *Tetromino) respawn() {
	copy(t.positions, t.cfg.Spawn)
	t.syncShapes()
	t.elapsed = 0
	t.phase = PhaseFalling
}

func (t *Tetromino) syncShapes() {
	for i, s := range t.shapes {
		s.Position = t.positions[i]
	}
}

// Draw issues one draw call per shape in array order
func (t *Tetromino) Draw(r Renderer) {
	for _, s := range t.shapes {
		s.Draw(r)
	}
}

// Dispose releases the texture. Safe to call more than once and on a
// group built without a texture.
func (t *Tetromino) Dispose() {
	if t == nil || t.texture == nil {
		return
	}
	t.texture.Release()
	t.texture = nil
	for _, s := range t.shapes {
		s.detach()
	}
}

// Phase returns the current simulation phase
func (t *Tetromino) Phase() Phase {
	return t.phase
}

// Positions returns a copy of the shape positions
func (t *Tetromino) Positions() []Vec2 {
	out := make([]Vec2, len(t.positions))
	copy(out, t.positions)
	return out
}

// Shapes returns a copy of the shapes as last synchronised
func (t *Tetromino) Shapes() []Shape {
	out := make([]Shape, len(t.shapes))
	for i, s := range t.shapes {
		out[i] = *s
	}
	return out
}

// HasTexture reports whether the group still holds its texture
func (t *Tetromino) HasTexture() bool {
	return t.texture != nil
}

// Rule returns the active movement rule
func (t *Tetromino) Rule() MovementRule {
	return t.cfg.Rule
}

// SetRule swaps the movement rule; takes effect on the next step
func (t *Tetromino) SetRule(r MovementRule) {
	t.cfg.Rule = r
}
