package entity

// Ball is a single sprite steered with the four arrow keys.
// Position is the sprite centre.
type Ball struct {
	Texture  Texture
	Position Vec2
	Speed    float32 // pixels per second
}

// NewBall creates a ball without a texture; the scene attaches one on load
func NewBall(pos Vec2, speed float32) *Ball {
	return &Ball{Position: pos, Speed: speed}
}

// Move applies held-key movement and keeps the whole sprite on screen.
// Opposite keys cancel. Does nothing without a texture, since the clamp
// bounds depend on its size.
func (b *Ball) Move(dt float32, c Controls, vp Viewport) {
	if b.Texture == nil {
		return
	}
	delta := b.Speed * dt
	b.Position.X += Cancel.Axis(c.Left, c.Right) * delta
	b.Position.Y += Cancel.Axis(c.Up, c.Down) * delta

	w, h := b.Texture.Size()
	b.Position = vp.ClampCenter(b.Position, float32(w), float32(h))
}

// Draw draws the ball centred on its position
func (b *Ball) Draw(r Renderer) {
	if b.Texture == nil {
		return
	}
	w, h := b.Texture.Size()
	topLeft := Vec2{X: b.Position.X - float32(w)/2, Y: b.Position.Y - float32(h)/2}
	r.DrawSprite(b.Texture, topLeft, nil, White)
}

// Player is a top-left positioned sprite that faces the way it last moved
// horizontally and is drawn scaled.
type Player struct {
	Texture  Texture
	Position Vec2
	Speed    float32
	Scale    float32
	flipped  bool
}

// NewPlayer creates a player without a texture. A non-positive scale
// means 1.
func NewPlayer(pos Vec2, speed, scale float32) *Player {
	if scale <= 0 {
		scale = 1
	}
	return &Player{Position: pos, Speed: speed, Scale: scale}
}

// Move applies held-key movement, updates facing and clamps the drawn
// (scaled) sprite to the viewport.
func (p *Player) Move(dt float32, c Controls, vp Viewport) {
	if p.Texture == nil {
		return
	}
	delta := p.Speed * dt
	p.Position.X += Cancel.Axis(c.Left, c.Right) * delta
	p.Position.Y += Cancel.Axis(c.Up, c.Down) * delta

	// right is checked last and wins when both are held
	if c.Left {
		p.flipped = true
	}
	if c.Right {
		p.flipped = false
	}

	w, h := p.Texture.Size()
	p.Position = vp.ClampTopLeft(p.Position, float32(w)*p.Scale, float32(h)*p.Scale)
}

// Flipped reports whether the player faces left
func (p *Player) Flipped() bool {
	return p.flipped
}

// Draw draws the player scaled and mirrored when facing left
func (p *Player) Draw(r Renderer) {
	if p.Texture == nil {
		return
	}
	r.DrawSpriteEx(p.Texture, p.Position, SpriteOptions{
		Scale: p.Scale,
		FlipH: p.flipped,
		Tint:  White,
	})
}
