package config

import (
	"testing"

	"github.com/automoto/actioninput/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBindingsHaveNoConflicts(t *testing.T) {
	m, err := NewDefaultBindings()
	require.NoError(t, err)

	assert.Len(t, m.Chords(ActionJump), 2)
	special := m.Chords(ActionSpecial)
	require.Len(t, special, 2)
	assert.Len(t, special[0], 2)

	for player := 0; player < Input.MaxPlayers; player++ {
		assert.Len(t, m.Player(player).Chords(ActionJump), 1, "player %d", player)
		assert.Nil(t, m.Player(player).Chords(ActionSaveBindings), "player %d", player)
	}
	assert.Nil(t, m.Player(Input.MaxPlayers).Chords(ActionJump))
}

func TestDefaultDPadBindsButtons(t *testing.T) {
	m, err := NewDefaultBindings()
	require.NoError(t, err)

	assert.False(t, m.IsAxisBound(input.DPadX))
	assert.False(t, m.IsAxisBound(input.DPadY))
	assert.True(t, m.IsAxisBound(input.LeftStickX))
	assert.True(t, m.IsKeyBound(input.NewPlayerDataWithID(input.GamepadButton(ebiten.StandardGamepadButtonLeftLeft), 0)))
	assert.True(t, m.IsKeyBound(input.NewPlayerData(input.GamepadButton(ebiten.StandardGamepadButtonLeftTop))))

	sources := m.AxisSources(AxisMoveX)
	require.Len(t, sources, 4)
	assert.Equal(t, uint32(0), sources[0].Deadzone)
	assert.Equal(t, 0.25, sources[2].DeadzoneValue())
}

func TestApplyDefaultBindingsReplacesExisting(t *testing.T) {
	m := input.NewActionMap[ActionID, AxisID]()
	require.NoError(t, m.BindButtonAction(ActionJump, input.Key(ebiten.KeyJ)))
	require.NoError(t, ApplyDefaultBindings(m))
	assert.Len(t, m.Chords(ActionJump), 2)
}

func TestActionIDText(t *testing.T) {
	for id := ActionNone; id < ActionCount; id++ {
		text, err := id.MarshalText()
		require.NoError(t, err)

		var parsed ActionID
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, id, parsed)
	}

	var a ActionID
	assert.Error(t, a.UnmarshalText([]byte("Fly")))
	_, err := ActionCount.MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "ActionID(42)", ActionID(42).String())
}

func TestAxisIDText(t *testing.T) {
	for id := AxisMoveX; id < AxisCount; id++ {
		text, err := id.MarshalText()
		require.NoError(t, err)

		var parsed AxisID
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, id, parsed)
	}

	var a AxisID
	assert.Error(t, a.UnmarshalText([]byte("Zoom")))
}
