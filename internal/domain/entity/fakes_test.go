package entity

import "image/color"

type fakeTexture struct {
	w, h     int
	released int
}

func (f *fakeTexture) Size() (int, int) { return f.w, f.h }
func (f *fakeTexture) Release()         { f.released++ }

type drawCall struct {
	tex  Texture
	pos  Vec2
	src  *Rect
	opts SpriteOptions
}

type recordingRenderer struct {
	begins, ends int
	draws        []drawCall
}

func (r *recordingRenderer) Begin() { r.begins++ }
func (r *recordingRenderer) End()   { r.ends++ }

func (r *recordingRenderer) DrawSprite(tex Texture, pos Vec2, src *Rect, tint color.Color) {
	r.draws = append(r.draws, drawCall{tex: tex, pos: pos, src: src, opts: SpriteOptions{Source: src, Tint: tint}})
}

func (r *recordingRenderer) DrawSpriteEx(tex Texture, pos Vec2, opts SpriteOptions) {
	r.draws = append(r.draws, drawCall{tex: tex, pos: pos, src: opts.Source, opts: opts})
}
