package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testViewport = Viewport{Width: 768, Height: 1024}

func newTestTetromino(t *testing.T, tex Texture, rule MovementRule) *Tetromino {
	t.Helper()
	cfg := DefaultTetrominoConfig()
	cfg.Rule = rule
	tet, err := NewTetromino(tex, cfg)
	require.NoError(t, err)
	return tet
}

func assertInSync(t *testing.T, tet *Tetromino) {
	t.Helper()
	positions := tet.Positions()
	shapes := tet.Shapes()
	require.Equal(t, len(positions), len(shapes), "positions and shapes must have the same length")
	for i := range positions {
		assert.Equal(t, positions[i], shapes[i].Position, "shape %d out of sync", i)
	}
}

func TestNewTetromino(t *testing.T) {
	tex := &fakeTexture{w: 128, h: 32}
	tet := newTestTetromino(t, tex, MovementRule{})

	assert.Equal(t, PhaseFalling, tet.Phase())
	assert.Equal(t, TeeSpawn, tet.Positions())
	assert.True(t, tet.HasTexture())
	assertInSync(t, tet)

	for _, s := range tet.Shapes() {
		assert.Equal(t, Rect{X: 0, Y: 0, W: 32, H: 32}, s.Source)
	}
}

func TestNewTetromino_InvalidConfig(t *testing.T) {
	t.Run("empty spawn", func(t *testing.T) {
		cfg := DefaultTetrominoConfig()
		cfg.Spawn = nil
		_, err := NewTetromino(nil, cfg)
		assert.Error(t, err)
	})

	t.Run("zero frame size", func(t *testing.T) {
		cfg := DefaultTetrominoConfig()
		cfg.FrameHeight = 0
		_, err := NewTetromino(nil, cfg)
		assert.Error(t, err)
	})

	t.Run("negative frame index", func(t *testing.T) {
		cfg := DefaultTetrominoConfig()
		cfg.Frame = -1
		_, err := NewTetromino(nil, cfg)
		assert.Error(t, err)
	})
}

func TestTetromino_NoStepBeforeInterval(t *testing.T) {
	tet := newTestTetromino(t, nil, MovementRule{})

	tet.Update(0.05, Controls{}, testViewport)

	assert.Equal(t, TeeSpawn, tet.Positions())
}

func TestTetromino_FallRules(t *testing.T) {
	tests := []struct {
		name  string
		rule  FallRule
		wantY float32
	}{
		{"tick uses the stepping tick's dt", FallTick, 110},
		{"accumulated uses the elapsed total", FallAccumulated, 120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tet := newTestTetromino(t, nil, MovementRule{Fall: tt.rule})

			tet.Update(0.05, Controls{}, testViewport)
			tet.Update(0.05, Controls{}, testViewport)

			assert.InDelta(t, tt.wantY, tet.Positions()[1].Y, 0.001)
			assertInSync(t, tet)
		})
	}
}

func TestTetromino_AccumulatedFallKeepsHorizontalStep(t *testing.T) {
	tet := newTestTetromino(t, nil, MovementRule{Fall: FallAccumulated})

	tet.Update(0.05, Controls{Left: true}, testViewport)
	tet.Update(0.05, Controls{Left: true}, testViewport)

	pos := tet.Positions()
	assert.InDelta(t, 90, pos[1].X, 0.001, "horizontal step is speed*dt")
	assert.InDelta(t, 120, pos[1].Y, 0.001, "vertical step is speed*elapsed")
	assertInSync(t, tet)
}

func TestTetromino_SourceFrame(t *testing.T) {
	cfg := DefaultTetrominoConfig()
	cfg.Frame = 2
	tet, err := NewTetromino(nil, cfg)
	require.NoError(t, err)

	for _, s := range tet.Shapes() {
		assert.Equal(t, Rect{X: 64, Y: 0, W: 32, H: 32}, s.Source)
	}
}

func TestTetromino_HorizontalPriority(t *testing.T) {
	both := Controls{Left: true, Right: true}

	tests := []struct {
		name     string
		priority Priority
		controls Controls
		wantDX   float32
	}{
		{"left only", LeftFirst, Controls{Left: true}, -20},
		{"right only", LeftFirst, Controls{Right: true}, 20},
		{"both, left first", LeftFirst, both, -20},
		{"both, right first", RightFirst, both, 20},
		{"both, cancel", Cancel, both, 0},
		{"none", LeftFirst, Controls{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tet := newTestTetromino(t, nil, MovementRule{Horizontal: tt.priority})

			tet.Update(0.1, tt.controls, testViewport)

			pos := tet.Positions()
			for i := range pos {
				assert.InDelta(t, TeeSpawn[i].X+tt.wantDX, pos[i].X, 0.001)
				assert.InDelta(t, TeeSpawn[i].Y+20, pos[i].Y, 0.001)
			}
		})
	}
}

func TestTetromino_RestingThenRespawn(t *testing.T) {
	tet := newTestTetromino(t, &fakeTexture{w: 128, h: 32}, MovementRule{})

	ticks := 0
	for tet.Phase() != PhaseResting {
		tet.Update(0.1, Controls{}, testViewport)
		assertInSync(t, tet)
		ticks++
		require.Less(t, ticks, 1000, "group never came to rest")
	}

	touching := false
	for _, p := range tet.Positions() {
		if p.Y+32 >= testViewport.Height {
			touching = true
		}
	}
	assert.True(t, touching, "a shape must touch the floor when resting")

	tet.Update(0.1, Controls{}, testViewport)

	assert.Equal(t, PhaseFalling, tet.Phase())
	assert.Equal(t, []Vec2{{X: 132, Y: 100}, {X: 100, Y: 100}, {X: 164, Y: 100}, {X: 132, Y: 132}}, tet.Positions())
	assertInSync(t, tet)
}

func TestTetromino_HorizontalClampHolds(t *testing.T) {
	for _, c := range []Controls{{Left: true}, {Right: true}} {
		tet := newTestTetromino(t, nil, MovementRule{})

		for i := 0; i < 500; i++ {
			tet.Update(0.1, c, testViewport)
			for _, p := range tet.Positions() {
				require.GreaterOrEqual(t, p.X, float32(0))
				require.LessOrEqual(t, p.X, float32(736))
			}
			assertInSync(t, tet)
		}
	}
}

func TestTetromino_Draw(t *testing.T) {
	tex := &fakeTexture{w: 128, h: 32}
	tet := newTestTetromino(t, tex, MovementRule{})
	r := &recordingRenderer{}

	tet.Draw(r)

	require.Len(t, r.draws, 4)
	for i, d := range r.draws {
		assert.Same(t, tex, d.tex)
		assert.Equal(t, TeeSpawn[i], d.pos, "draw order must follow array order")
		require.NotNil(t, d.src)
		assert.Equal(t, Rect{W: 32, H: 32}, *d.src)
	}
	assert.Zero(t, r.begins, "groups never open the batch themselves")
	assert.Zero(t, r.ends)
}

func TestTetromino_DrawWithoutTexture(t *testing.T) {
	tet := newTestTetromino(t, nil, MovementRule{})
	r := &recordingRenderer{}

	tet.Draw(r)

	assert.Empty(t, r.draws)
}

func TestTetromino_Dispose(t *testing.T) {
	t.Run("releases once when called twice", func(t *testing.T) {
		tex := &fakeTexture{w: 128, h: 32}
		tet := newTestTetromino(t, tex, MovementRule{})

		tet.Dispose()
		tet.Dispose()

		assert.Equal(t, 1, tex.released)
		assert.False(t, tet.HasTexture())

		r := &recordingRenderer{}
		tet.Draw(r)
		assert.Empty(t, r.draws, "disposed group must not draw")
	})

	t.Run("without texture", func(t *testing.T) {
		tet := newTestTetromino(t, nil, MovementRule{})
		assert.NotPanics(t, tet.Dispose)
	})

	t.Run("nil group", func(t *testing.T) {
		var tet *Tetromino
		assert.NotPanics(t, tet.Dispose)
	})
}

func TestTetromino_SetRule(t *testing.T) {
	tet := newTestTetromino(t, nil, MovementRule{})
	rule := MovementRule{Fall: FallAccumulated, Horizontal: Cancel}

	tet.SetRule(rule)

	assert.Equal(t, rule, tet.Rule())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "Falling", PhaseFalling.String())
	assert.Equal(t, "Resting", PhaseResting.String())
	assert.Equal(t, "Unknown", Phase(7).String())
}
