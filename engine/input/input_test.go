package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestApplyTracksButtonsAndDelta(t *testing.T) {
	s := NewInputState()

	s.Apply(Frame{MouseX: 10, MouseY: 20, LeftDown: true})
	assert.True(t, s.LeftJustPressed)
	assert.Equal(t, 10, s.MouseDX)

	s.Apply(Frame{MouseX: 15, MouseY: 18, LeftDown: true})
	assert.False(t, s.LeftJustPressed)
	assert.True(t, s.LeftPressed)
	assert.Equal(t, 5, s.MouseDX)
	assert.Equal(t, -2, s.MouseDY)

	s.Apply(Frame{RightDown: true})
	assert.True(t, s.RightJustPressed)
	assert.False(t, s.Dragging)
	s.Apply(Frame{RightDown: true})
	assert.True(t, s.Dragging)
}

func TestApplyMapsKeysToActions(t *testing.T) {
	s := NewInputState()
	s.Apply(Frame{JustPressed: []ebiten.Key{ebiten.KeyV, ebiten.KeyQ, ebiten.KeyR}})

	assert.Equal(t, []Action{ActionToggleVisualizer, ActionReload}, s.Actions())
	assert.True(t, s.Triggered(ActionReload))
	assert.False(t, s.Triggered(ActionPause))

	s.Apply(Frame{})
	assert.Empty(t, s.Actions())
}
