package systems

import (
	"testing"

	"github.com/automoto/actioninput/components"
	cfg "github.com/automoto/actioninput/config"
	"github.com/automoto/actioninput/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func TestConnectGamepadAssignsPlayers(t *testing.T) {
	g := input.NewGamepadMap()

	assert.Equal(t, input.Player(0), connectGamepad(g, 7, "pad"))
	assert.Equal(t, input.Player(1), connectGamepad(g, 3, "pad"))
	// already connected
	assert.Equal(t, input.Player(1), connectGamepad(g, 3, "pad"))

	disconnectGamepad(g, 7)
	assert.Equal(t, input.Player(0), connectGamepad(g, 9, "pad"), "free slot is reused")
	assert.Equal(t, input.Player(0), g.ScopeFor(7), "mapping survives a disconnect")
}

func TestReconnectedGamepadMovesOffTakenSlot(t *testing.T) {
	g := input.NewGamepadMap()

	require.Equal(t, input.Player(0), connectGamepad(g, 7, "pad"))
	disconnectGamepad(g, 7)
	require.Equal(t, input.Player(0), connectGamepad(g, 9, "pad"))

	assert.Equal(t, input.Player(1), connectGamepad(g, 7, "pad"))
	assert.Equal(t, input.Player(0), g.ScopeFor(9))
}

func TestReconnectedGamepadKeepsFreeSlot(t *testing.T) {
	g := input.NewGamepadMap()

	connectGamepad(g, 7, "pad")
	connectGamepad(g, 8, "pad")
	disconnectGamepad(g, 7)

	assert.Equal(t, input.Player(0), connectGamepad(g, 7, "pad"))
	assert.Equal(t, input.Player(1), g.ScopeFor(8))
}

func TestConnectGamepadBeyondMaxPlayersFeedsGlobal(t *testing.T) {
	g := input.NewGamepadMap()
	for i := 0; i < cfg.Input.MaxPlayers; i++ {
		connectGamepad(g, ebiten.GamepadID(i), "pad")
	}
	assert.Equal(t, input.Global, connectGamepad(g, 100, "extra"))
}

func TestFreePlayerSlot(t *testing.T) {
	g := input.NewGamepadMap()
	g.Connect(1)
	g.MapGamepad(1, 0)
	g.Connect(2)
	g.MapGamepad(2, 2)

	player, ok := freePlayerSlot(g, 4)
	require.True(t, ok)
	assert.Equal(t, 1, player)

	_, ok = freePlayerSlot(g, 1)
	assert.False(t, ok)
}

func TestActiveScopes(t *testing.T) {
	data, err := NewInputData()
	require.NoError(t, err)
	assert.Equal(t, []input.Scope{input.Global}, ActiveScopes(&data))

	connectGamepad(data.Gamepads, 4, "pad")
	connectGamepad(data.Gamepads, 5, "pad")
	assert.Equal(t, []input.Scope{input.Global, input.Player(0), input.Player(1)}, ActiveScopes(&data))
}

func TestInputForRoutesScopes(t *testing.T) {
	data, err := NewInputData()
	require.NoError(t, err)

	jump := input.GamepadButton(ebiten.StandardGamepadButtonRightBottom)
	data.State.SetButtonState(input.NewPlayerDataWithID(jump, 2), input.ButtonPressed)
	input.Update(data.State, data.Map, 1.0/60)

	assert.True(t, InputFor(&data, input.Player(2)).JustPressed(cfg.ActionJump))
	assert.False(t, InputFor(&data, input.Player(1)).JustPressed(cfg.ActionJump))
	assert.False(t, InputFor(&data, input.Global).JustPressed(cfg.ActionJump))
}

func TestInputDebugLines(t *testing.T) {
	data, err := NewInputData()
	require.NoError(t, err)

	data.State.SetButtonState(input.NewPlayerData(input.Key(ebiten.KeySpace)), input.ButtonPressed)
	data.State.SetButtonState(input.NewPlayerData(input.Key(ebiten.KeyD)), input.ButtonHeld)
	input.Update(data.State, data.Map, 1.0/60)

	lines := InputDebugLines(&data)
	require.Len(t, lines, 3)
	assert.Equal(t, "global", lines[0])
	assert.Equal(t, "  Jump:Pressed", lines[1])
	assert.Equal(t, "  MoveX:+1.00", lines[2])
}

func TestUpdatePlayerMovesAndConsumesSpecial(t *testing.T) {
	data, err := NewInputData()
	require.NoError(t, err)
	state := data.State

	press := func(states map[input.ButtonCode]input.ButtonState) {
		for _, key := range data.Map.BoundKeys() {
			state.SetButtonState(key, input.ButtonIdle)
		}
		for b, s := range states {
			state.SetButtonState(input.NewPlayerData(b), s)
		}
		input.Update(state, data.Map, 1.0/60)
	}

	p := &components.PlayerData{Position: math.Vec2{X: 100, Y: 100}}
	shift, e := input.Key(ebiten.KeyShiftLeft), input.Key(ebiten.KeyE)
	right, up := input.Key(ebiten.KeyD), input.Key(ebiten.KeyW)

	press(map[input.ButtonCode]input.ButtonState{right: input.ButtonPressed, up: input.ButtonPressed, shift: input.ButtonPressed, e: input.ButtonPressed})
	updatePlayer(p, InputFor(&data, input.Global))
	assert.Greater(t, p.Position.X, 100.0)
	assert.Less(t, p.Position.Y, 100.0, "up moves towards the top of the screen")
	assert.Equal(t, 1, p.Specials)
	assert.True(t, state.Used(cfg.ActionSpecial))

	press(map[input.ButtonCode]input.ButtonState{shift: input.ButtonHeld, e: input.ButtonHeld})
	updatePlayer(p, InputFor(&data, input.Global))
	assert.Equal(t, 1, p.Specials, "holding the chord does not fire again")
}

func TestJumpHop(t *testing.T) {
	data, err := NewInputData()
	require.NoError(t, err)
	space := input.NewPlayerData(input.Key(ebiten.KeySpace))
	p := &components.PlayerData{}

	tick := func(state input.ButtonState) {
		data.State.SetButtonState(space, state)
		input.Update(data.State, data.Map, 1.0/60)
		updatePlayer(p, InputFor(&data, input.Global))
	}

	tick(input.ButtonPressed)
	require.NotNil(t, p.Hop)

	tick(input.ButtonIdle)
	assert.Greater(t, p.Grow, 0.0)

	for i := 0; i < cfg.Avatar.JumpTicks; i++ {
		tick(input.ButtonIdle)
	}
	assert.Nil(t, p.Hop)
	assert.Zero(t, p.Grow)
}

func TestSyncPlayers(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	syncPlayers(e, []input.Scope{input.Global, input.Player(0), input.Player(1)})
	assert.Equal(t, 3, countPlayers(e))

	syncPlayers(e, []input.Scope{input.Global, input.Player(1)})
	assert.Equal(t, 2, countPlayers(e))

	var scopes []input.Scope
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		scopes = append(scopes, components.Player.Get(entry).Scope)
	})
	assert.ElementsMatch(t, []input.Scope{input.Global, input.Player(1)}, scopes)
}

func countPlayers(e *ecs.ECS) int {
	n := 0
	components.Player.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
