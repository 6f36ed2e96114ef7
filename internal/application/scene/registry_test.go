package scene

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/monosamples/internal/application/state"
	"github.com/younwookim/monosamples/internal/domain/entity"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	name    string
	journal *[]string

	initCalled   int
	loadCalled   int
	updateCalled int
	drawCalled   int
	unloadCalled int
	lastDT       float64
	loadErr      error
}

func (m *mockScene) record(event string) {
	if m.journal != nil {
		*m.journal = append(*m.journal, m.name+"."+event)
	}
}

func (m *mockScene) Initialize() {
	m.initCalled++
	m.record("initialize")
}

func (m *mockScene) Load() error {
	m.loadCalled++
	m.record("load")
	return m.loadErr
}

func (m *mockScene) Update(dt float64) {
	m.updateCalled++
	m.lastDT = dt
}

func (m *mockScene) Draw(r entity.Renderer) {
	m.drawCalled++
}

func (m *mockScene) Unload() {
	m.unloadCalled++
	m.record("unload")
}

type nopRenderer struct {
	begins, ends int
	panicOnDraw  bool
}

func (n *nopRenderer) Begin() { n.begins++ }
func (n *nopRenderer) End()   { n.ends++ }

func (n *nopRenderer) DrawSprite(entity.Texture, entity.Vec2, *entity.Rect, color.Color) {
	if n.panicOnDraw {
		panic("device lost")
	}
}

func (n *nopRenderer) DrawSpriteEx(entity.Texture, entity.Vec2, entity.SpriteOptions) {
	if n.panicOnDraw {
		panic("device lost")
	}
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Active()
	assert.False(t, ok, "no scene active initially")
	assert.Empty(t, r.Names())
}

func TestRegistry_TickRenderWithoutScene(t *testing.T) {
	r := NewRegistry()

	assert.NotPanics(t, func() {
		r.Tick(0.016)
		r.Render(&nopRenderer{})
	})
}

func TestRegistry_ActivateUnknown(t *testing.T) {
	r := NewRegistry()
	a := &mockScene{name: "A"}
	r.Register("A", a)
	require.NoError(t, r.Activate("A"))

	err := r.Activate("missing")

	assert.ErrorIs(t, err, ErrSceneNotFound)
	name, ok := r.Active()
	assert.True(t, ok)
	assert.Equal(t, "A", name, "current scene is untouched")
	assert.Equal(t, 0, a.unloadCalled)
}

func TestRegistry_ActivateOrder(t *testing.T) {
	var journal []string
	r := NewRegistry()
	a := &mockScene{name: "A", journal: &journal}
	b := &mockScene{name: "B", journal: &journal}

	r.Register("A", a)
	require.NoError(t, r.Activate("A"))
	r.Register("B", b)
	require.NoError(t, r.Activate("B"))

	assert.Equal(t, []string{
		"A.initialize", "A.load",
		"A.unload",
		"B.initialize", "B.load",
	}, journal)
	assert.Equal(t, 1, a.unloadCalled, "A unloaded exactly once")

	st, ok := r.State("A")
	require.True(t, ok)
	assert.Equal(t, state.StateUnloaded, st)
	st, _ = r.State("B")
	assert.Equal(t, state.StateLoaded, st)
}

func TestRegistry_DelegatesToActiveScene(t *testing.T) {
	r := NewRegistry()
	a := &mockScene{name: "A"}
	b := &mockScene{name: "B"}
	r.Register("A", a)
	r.Register("B", b)
	require.NoError(t, r.Activate("A"))

	r.Tick(0.016)
	r.Render(&nopRenderer{})

	assert.Equal(t, 1, a.updateCalled)
	assert.Equal(t, 0.016, a.lastDT)
	assert.Equal(t, 1, a.drawCalled)
	assert.Equal(t, 0, b.updateCalled)
	assert.Equal(t, 0, b.drawCalled)
}

func TestRegistry_LoadFailureStaysActive(t *testing.T) {
	r := NewRegistry()
	a := &mockScene{name: "A", loadErr: errors.New("texture missing")}
	r.Register("A", a)

	err := r.Activate("A")

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "A", loadErr.Scene)
	assert.EqualError(t, errors.Unwrap(err), "texture missing")

	name, ok := r.Active()
	assert.True(t, ok)
	assert.Equal(t, "A", name)
	st, _ := r.State("A")
	assert.Equal(t, state.StateDegraded, st)

	assert.NotPanics(t, func() {
		r.Tick(0.016)
		r.Render(&nopRenderer{})
	})
	assert.Equal(t, 1, a.updateCalled)
}

func TestRegistry_RegisterOverwrites(t *testing.T) {
	r := NewRegistry()
	first := &mockScene{name: "first"}
	second := &mockScene{name: "second"}

	r.Register("A", first)
	r.Register("A", second)
	require.NoError(t, r.Activate("A"))

	assert.Equal(t, 0, first.initCalled)
	assert.Equal(t, 1, second.initCalled)
	assert.Equal(t, []string{"A"}, r.Names())
}

func TestRegistry_ReactivateSameScene(t *testing.T) {
	r := NewRegistry()
	a := &mockScene{name: "A"}
	r.Register("A", a)

	require.NoError(t, r.Activate("A"))
	require.NoError(t, r.Activate("A"))

	assert.Equal(t, 1, a.unloadCalled)
	assert.Equal(t, 2, a.initCalled)
	assert.Equal(t, 2, a.loadCalled)
}

func TestRegistry_OnActivate(t *testing.T) {
	r := NewRegistry()
	var activated []string
	r.OnActivate = func(name string) { activated = append(activated, name) }
	r.Register("A", &mockScene{name: "A"})
	r.Register("B", &mockScene{name: "B", loadErr: errors.New("boom")})

	_ = r.Activate("A")
	_ = r.Activate("B")
	_ = r.Activate("nope")

	assert.Equal(t, []string{"A", "B"}, activated)
}

func TestRegistry_Close(t *testing.T) {
	r := NewRegistry()
	a := &mockScene{name: "A"}
	r.Register("A", a)
	require.NoError(t, r.Activate("A"))

	r.Close()
	r.Close()

	assert.Equal(t, 1, a.unloadCalled)
	_, ok := r.Active()
	assert.False(t, ok)
}

func TestRegistry_Names(t *testing.T) {
	r := NewRegistry()
	r.Register("tetromino", &mockScene{})
	r.Register("ball", &mockScene{})
	r.Register("player", &mockScene{})

	assert.Equal(t, []string{"ball", "player", "tetromino"}, r.Names())
}

func TestDrawBatch(t *testing.T) {
	t.Run("brackets draw calls", func(t *testing.T) {
		rd := &nopRenderer{}
		called := false

		err := DrawBatch(rd, func(entity.Renderer) { called = true })

		assert.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, 1, rd.begins)
		assert.Equal(t, 1, rd.ends)
	})

	t.Run("closes the batch when a draw fails", func(t *testing.T) {
		rd := &nopRenderer{panicOnDraw: true}

		err := DrawBatch(rd, func(r entity.Renderer) {
			r.DrawSprite(nil, entity.Vec2{}, nil, entity.White)
		})

		assert.ErrorIs(t, err, ErrDraw)
		assert.Contains(t, err.Error(), "device lost")
		assert.Equal(t, 1, rd.ends)
	})
}
