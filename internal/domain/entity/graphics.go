package entity

import "image/color"

// Texture is a decoded, GPU-resident image shared by one or more sprites.
// Release frees the underlying resource; implementations must tolerate
// repeated calls.
type Texture interface {
	Size() (w, h int)
	Release()
}

// SpriteOptions holds the optional transform for DrawSpriteEx
type SpriteOptions struct {
	Source *Rect // nil draws the whole texture
	Scale  float32
	FlipH  bool
	Tint   color.Color
}

// Renderer is a sprite batch. Scenes bracket a frame's draw calls with
// Begin/End; entities only issue draw calls.
type Renderer interface {
	Begin()
	DrawSprite(tex Texture, pos Vec2, src *Rect, tint color.Color)
	DrawSpriteEx(tex Texture, pos Vec2, opts SpriteOptions)
	End()
}

// White is the neutral tint
var White color.Color = color.White
