package systems

import (
	"image/color"

	"github.com/automoto/actioninput/archetypes"
	"github.com/automoto/actioninput/components"
	cfg "github.com/automoto/actioninput/config"
	"github.com/automoto/actioninput/input"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePlayers keeps one avatar per active scope and drives each from its
// scope's resolved input. Must run AFTER UpdateInput.
func UpdatePlayers(e *ecs.ECS) {
	data := getOrCreateInput(e)
	syncPlayers(e, ActiveScopes(data))

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		updatePlayer(player, InputFor(data, player.Scope))
	})
}

// syncPlayers spawns avatars for new scopes and removes those of scopes that
// are gone.
func syncPlayers(e *ecs.ECS, scopes []input.Scope) {
	want := make(map[input.Scope]bool, len(scopes))
	for _, s := range scopes {
		want[s] = true
	}

	var stale []*donburi.Entry
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		scope := components.Player.Get(entry).Scope
		if want[scope] {
			delete(want, scope)
		} else {
			stale = append(stale, entry)
		}
	})
	for _, entry := range stale {
		entry.Remove()
	}

	for _, s := range scopes {
		if want[s] {
			spawnPlayer(e, s)
		}
	}
}

func spawnPlayer(e *ecs.ECS, scope input.Scope) *donburi.Entry {
	entry := archetypes.Player.Spawn(e)
	components.Player.SetValue(entry, components.PlayerData{
		Scope: scope,
		Position: math.Vec2{
			X: float64(cfg.C.Width) / 2,
			Y: float64(cfg.C.Height) / 2,
		},
		Color: playerColor(scope),
	})
	return entry
}

func playerColor(scope input.Scope) color.RGBA {
	id, ok := scope.ID()
	if !ok || len(cfg.Avatar.Colors) == 0 {
		return cfg.White
	}
	return cfg.Avatar.Colors[id%len(cfg.Avatar.Colors)]
}

func updatePlayer(player *components.PlayerData, in ScopeInput) {
	if player.Hop != nil {
		grow, _, done := player.Hop.Update(1)
		player.Grow = float64(grow)
		if done {
			player.Hop = nil
			player.Grow = 0
		}
	}
	if player.AttackTicks > 0 {
		player.AttackTicks--
	}

	// Axes are positive up, the screen grows downwards
	move := in.XYAxes(cfg.AxisMoveX, cfg.AxisMoveY)
	player.Position.X = clamp(player.Position.X+move.X*cfg.Avatar.Speed, 0, float64(cfg.C.Width)-cfg.Avatar.Size)
	player.Position.Y = clamp(player.Position.Y-move.Y*cfg.Avatar.Speed, 0, float64(cfg.C.Height)-cfg.Avatar.Size)

	aim := in.XYAxesRaw(cfg.AxisAimX, cfg.AxisAimY)
	player.Aim = math.Vec2{X: aim.X * cfg.Avatar.AimLength, Y: -aim.Y * cfg.Avatar.AimLength}

	if in.JustPressed(cfg.ActionJump) {
		player.Hop = newHop()
	}
	if in.JustPressed(cfg.ActionAttack) || in.Held(cfg.ActionAttack) {
		player.AttackTicks = cfg.Avatar.AttackTicks
	}
	if in.JustReleased(cfg.ActionDodge) {
		player.Dodges++
	}
	if in.JustPressed(cfg.ActionSpecial) {
		player.Specials++
		// Holding the chord must not fire again
		in.UseButtonAction(cfg.ActionSpecial)
	}
}

// newHop grows the avatar and shrinks it back over JumpTicks ticks
func newHop() *gween.Sequence {
	half := float32(cfg.Avatar.JumpTicks) / 2
	grow := float32(cfg.Avatar.JumpGrow)

	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, grow, half, ease.OutQuad),
		gween.New(grow, 0, half, ease.InQuad),
	)
	return seq
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
