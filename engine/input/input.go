package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is a demo command triggered by a key.
type Action uint8

const (
	ActionToggleVisualizer Action = iota
	ActionToggleBlockedOnly
	ActionReload
	ActionPause
	ActionQuit
)

// DefaultBindings maps keys to demo actions.
var DefaultBindings = map[ebiten.Key]Action{
	ebiten.KeyV:      ActionToggleVisualizer,
	ebiten.KeyB:      ActionToggleBlockedOnly,
	ebiten.KeyR:      ActionReload,
	ebiten.KeyP:      ActionPause,
	ebiten.KeyEscape: ActionQuit,
}

// Frame is the raw device state sampled once per frame.
type Frame struct {
	MouseX, MouseY int
	LeftDown       bool
	RightDown      bool
	ScrollY        float64
	JustPressed    []ebiten.Key
}

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	MouseDX, MouseDY int // delta since last frame
	LeftPressed      bool
	RightPressed     bool
	LeftJustPressed  bool
	RightJustPressed bool
	ScrollY          float64

	// Drag (right button pans the camera)
	Dragging bool

	Bindings map[ebiten.Key]Action
	actions  []Action
	keys     []ebiten.Key
}

func NewInputState() *InputState {
	return &InputState{Bindings: DefaultBindings}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	x, y := ebiten.CursorPosition()
	_, scrollY := ebiten.Wheel()
	s.Apply(Frame{
		MouseX:      x,
		MouseY:      y,
		LeftDown:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		RightDown:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		ScrollY:     scrollY,
		JustPressed: s.keys,
	})
}

// Apply folds one frame of device state into s.
func (s *InputState) Apply(f Frame) {
	s.MouseDX = f.MouseX - s.MouseX
	s.MouseDY = f.MouseY - s.MouseY
	s.MouseX, s.MouseY = f.MouseX, f.MouseY

	s.LeftJustPressed = f.LeftDown && !s.LeftPressed
	s.RightJustPressed = f.RightDown && !s.RightPressed
	s.LeftPressed = f.LeftDown
	s.RightPressed = f.RightDown
	s.ScrollY = f.ScrollY
	s.Dragging = f.RightDown && !s.RightJustPressed

	s.actions = s.actions[:0]
	for _, k := range f.JustPressed {
		if a, ok := s.Bindings[k]; ok {
			s.actions = append(s.actions, a)
		}
	}
}

// Actions returns the actions triggered this frame in key order.
func (s *InputState) Actions() []Action {
	return s.actions
}

// Triggered reports whether a fired this frame.
func (s *InputState) Triggered(a Action) bool {
	for _, got := range s.actions {
		if got == a {
			return true
		}
	}
	return false
}
