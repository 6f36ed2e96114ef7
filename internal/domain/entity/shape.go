package entity

// Shape is a single texture-backed rectangle. The texture reference is
// non-owning: whoever created the texture releases it.
type Shape struct {
	texture  Texture
	Position Vec2 // top-left
	Source   Rect
}

// NewShape creates a shape drawing src of tex at pos
func NewShape(tex Texture, pos Vec2, src Rect) *Shape {
	return &Shape{texture: tex, Position: pos, Source: src}
}

// Draw issues one draw call, or none when the texture is absent
func (s *Shape) Draw(r Renderer) {
	if s.texture == nil {
		return
	}
	src := s.Source
	r.DrawSprite(s.texture, s.Position, &src, White)
}

// detach drops the texture reference once the owner has released it
func (s *Shape) detach() {
	s.texture = nil
}
