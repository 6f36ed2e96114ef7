package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/monosamples/internal/domain/entity"
)

// InputState holds the input for one tick. Directions and Exit are
// held-key state; SceneRequest is the scene whose binding was pressed
// this tick.
type InputState struct {
	Left         bool
	Right        bool
	Up           bool
	Down         bool
	Exit         bool
	SceneRequest string
}

// Controls returns the directional part of the state
func (s InputState) Controls() entity.Controls {
	return entity.Controls{Left: s.Left, Right: s.Right, Up: s.Up, Down: s.Down}
}

// InputSource yields the input for the current tick
type InputSource interface {
	GetInput() InputState
}

// Binding maps a key to the scene it activates
type Binding struct {
	Key   ebiten.Key
	Scene string
}

// ParseBinding resolves an ebiten key name such as "Digit1"
func ParseBinding(key, scene string) (Binding, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(key)); err != nil {
		return Binding{}, fmt.Errorf("binding for scene %q: %w", scene, err)
	}
	return Binding{Key: k, Scene: scene}, nil
}

// InputSystem polls the keyboard and gamepads
type InputSystem struct {
	bindings []Binding

	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
	gamepadBack func() bool
}

// NewInputSystem creates an input system with the given scene bindings
func NewInputSystem(bindings []Binding) *InputSystem {
	return &InputSystem{
		bindings:    bindings,
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
		gamepadBack: anyGamepadBack,
	}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	in := InputState{
		Left:  s.pressed(ebiten.KeyArrowLeft),
		Right: s.pressed(ebiten.KeyArrowRight),
		Up:    s.pressed(ebiten.KeyArrowUp),
		Down:  s.pressed(ebiten.KeyArrowDown),
		Exit:  s.pressed(ebiten.KeyEscape) || s.gamepadBack(),
	}

	// first binding wins if several are pressed on the same tick
	for _, b := range s.bindings {
		if s.justPressed(b.Key) {
			in.SceneRequest = b.Scene
			break
		}
	}
	return in
}

func anyGamepadBack() bool {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonCenterLeft) {
			return true
		}
	}
	return false
}

// Latch polls an InputSource once per tick and serves the same state to
// every reader until the next Poll.
type Latch struct {
	src     InputSource
	current InputState
}

// NewLatch wraps src
func NewLatch(src InputSource) *Latch {
	return &Latch{src: src}
}

// Attach replaces the source read by Poll
func (l *Latch) Attach(src InputSource) {
	l.src = src
}

// Poll reads the next state from the source. Without a source the state
// is empty.
func (l *Latch) Poll() InputState {
	if l.src == nil {
		l.current = InputState{}
		return l.current
	}
	l.current = l.src.GetInput()
	return l.current
}

// GetInput returns the state captured by the last Poll
func (l *Latch) GetInput() InputState {
	return l.current
}
