package main

import (
	"bytes"
	"testing"

	"github.com/automoto/actioninput/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsPassCheck(t *testing.T) {
	var defaults bytes.Buffer
	require.NoError(t, writeDefaults(&defaults))

	var out bytes.Buffer
	require.NoError(t, checkBindings(defaults.Bytes(), &out, true))
	assert.Contains(t, out.String(), "ok: ")
	assert.Contains(t, out.String(), "key:Space")
	assert.Contains(t, out.String(), "bound axis LeftStickX")
}

func TestCheckReportsConflicts(t *testing.T) {
	data := []byte(`{
		"key_action_bindings": [
			{"player": 0, "action": "Jump", "chords": [["gamepad:RightBottom"]]},
			{"player": 0, "action": "Special", "chords": [["gamepad:RightBottom", "gamepad:LeftTop"]]}
		],
		"axis_action_bindings": []
	}`)

	var out bytes.Buffer
	err := checkBindings(data, &out, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, input.ErrBindingConflict)
	assert.Empty(t, out.String())
}

func TestCheckRejectsUnknownAction(t *testing.T) {
	data := []byte(`{"key_action_bindings": [{"player": null, "action": "Fly", "chords": [["key:F"]]}]}`)
	assert.Error(t, checkBindings(data, &bytes.Buffer{}, false))
}
