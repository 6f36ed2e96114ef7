// Package render implements entity.Renderer on top of ebiten.
package render

import (
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/monosamples/internal/domain/entity"
)

// imageSource is implemented by textures backed by an ebiten image
type imageSource interface {
	Image() *ebiten.Image
}

// Batch draws sprites onto a destination image between Begin and End.
// Draw calls outside a Begin/End pair are dropped.
type Batch struct {
	dst    *ebiten.Image
	open   bool
	draws  int
	frames int
}

// NewBatch creates a batch targeting dst
func NewBatch(dst *ebiten.Image) *Batch {
	return &Batch{dst: dst}
}

// Target swaps the destination image, usually once per frame
func (b *Batch) Target(dst *ebiten.Image) {
	b.dst = dst
}

// Begin opens the batch and resets the draw counter
func (b *Batch) Begin() {
	if b.open {
		log.Printf("[Render] Begin called twice without End")
	}
	b.open = true
	b.draws = 0
}

// End closes the batch
func (b *Batch) End() {
	b.open = false
	b.frames++
}

// DrawSprite draws src of tex at pos with no scaling
func (b *Batch) DrawSprite(tex entity.Texture, pos entity.Vec2, src *entity.Rect, tint color.Color) {
	b.DrawSpriteEx(tex, pos, entity.SpriteOptions{Source: src, Scale: 1, Tint: tint})
}

// DrawSpriteEx draws tex at pos applying scale, horizontal flip and tint.
// The flip mirrors the sprite in place so pos stays the top-left corner.
func (b *Batch) DrawSpriteEx(tex entity.Texture, pos entity.Vec2, opts entity.SpriteOptions) {
	if !b.open || b.dst == nil || tex == nil {
		return
	}
	is, ok := tex.(imageSource)
	if !ok {
		return
	}
	img := is.Image()
	if img == nil {
		return
	}

	if opts.Source != nil {
		s := opts.Source
		img = img.SubImage(image.Rect(s.X, s.Y, s.X+s.W, s.Y+s.H)).(*ebiten.Image)
	}

	scale := float64(opts.Scale)
	if scale <= 0 {
		scale = 1
	}

	op := &ebiten.DrawImageOptions{}
	if opts.FlipH {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(pos.X), float64(pos.Y))
	if opts.Tint != nil {
		op.ColorScale.ScaleWithColor(opts.Tint)
	}

	b.dst.DrawImage(img, op)
	b.draws++
}

// Draws returns the number of sprites drawn since the last Begin
func (b *Batch) Draws() int {
	return b.draws
}

// Frames returns the number of completed Begin/End pairs
func (b *Batch) Frames() int {
	return b.frames
}

// Nop is a renderer that discards everything. Used for headless runs.
type Nop struct {
	Draws int
}

func (n *Nop) Begin() {}
func (n *Nop) End()   {}

func (n *Nop) DrawSprite(entity.Texture, entity.Vec2, *entity.Rect, color.Color) {
	n.Draws++
}

func (n *Nop) DrawSpriteEx(entity.Texture, entity.Vec2, entity.SpriteOptions) {
	n.Draws++
}
