package ball

import (
	"image/color"

	"github.com/younwookim/monosamples/internal/application/system"
	"github.com/younwookim/monosamples/internal/domain/entity"
)

type fakeTexture struct {
	w, h     int
	released int
}

func (f *fakeTexture) Size() (int, int) { return f.w, f.h }
func (f *fakeTexture) Release()         { f.released++ }

type fakeContent struct {
	tex *fakeTexture
	err error
}

func (c *fakeContent) Load(string) (entity.Texture, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.tex, nil
}

type fixedInput struct{ state system.InputState }

func (f *fixedInput) GetInput() system.InputState { return f.state }

type spriteCall struct {
	pos  entity.Vec2
	opts entity.SpriteOptions
}

type recordingRenderer struct {
	begins, ends int
	calls        []spriteCall
}

func (r *recordingRenderer) Begin() { r.begins++ }
func (r *recordingRenderer) End()   { r.ends++ }

func (r *recordingRenderer) DrawSprite(_ entity.Texture, pos entity.Vec2, src *entity.Rect, tint color.Color) {
	r.calls = append(r.calls, spriteCall{pos: pos, opts: entity.SpriteOptions{Source: src, Scale: 1, Tint: tint}})
}

func (r *recordingRenderer) DrawSpriteEx(_ entity.Texture, pos entity.Vec2, opts entity.SpriteOptions) {
	r.calls = append(r.calls, spriteCall{pos: pos, opts: opts})
}
