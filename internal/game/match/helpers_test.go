package match_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/gvd/internal/game/combat"
	"github.com/cory-johannsen/gvd/internal/game/dice"
	"github.com/cory-johannsen/gvd/internal/game/gear"
	"github.com/cory-johannsen/gvd/internal/game/match"
)

// scriptedRoller returns its queued values in order, then fallback forever.
// Every value is reduced into [0, n).
type scriptedRoller struct {
	queue    []int
	fallback int
}

func (s *scriptedRoller) Intn(n int) int {
	v := s.fallback
	if len(s.queue) > 0 {
		v, s.queue = s.queue[0], s.queue[1:]
	}
	return v % n
}

func (s *scriptedRoller) Roll(expr dice.Expression) dice.RollResult {
	return dice.Roll(expr, s)
}

// healingEnemies makes every scripted action roll a 10 and every God dodge fail.
func healingEnemies() *scriptedRoller { return &scriptedRoller{fallback: 99} }

// scriptedHuman plays its queued intents, then attacks the first enemy.
type scriptedHuman struct {
	intents  []match.Intent
	err      error
	chosen   int
	inspects []match.Snapshot
}

func (h *scriptedHuman) Choose(_ context.Context, _ match.Snapshot) (match.Intent, error) {
	h.chosen++
	if h.err != nil {
		return match.Intent{}, h.err
	}
	if len(h.intents) == 0 {
		return match.Attack(0), nil
	}
	in := h.intents[0]
	h.intents = h.intents[1:]
	return in, nil
}

func (h *scriptedHuman) Inspect(view match.Snapshot) { h.inspects = append(h.inspects, view) }

func actor(t *testing.T, name string, health, damage, armor int, typ gear.Type, tier gear.Tier) *combat.Actor {
	t.Helper()
	a := combat.NewActor(name, name, health, damage, armor)
	require.NoError(t, a.Equip(gear.MustNew(name+"'s weapon", typ, tier)))
	return a
}

// demonHero has 110 HP, 45 damage and 10 armor.
func demonHero(t *testing.T) *combat.Actor {
	return actor(t, "Hero", 100, 20, 5, gear.Sword, gear.Demon)
}

// goblin has 60 HP, 25 damage and 7 armor.
func goblin(t *testing.T, name string) *combat.Actor {
	return actor(t, name, 50, 10, 2, gear.Sword, gear.Normal)
}

// angel has 155 HP, 32 damage and 55 armor at full health.
func angel(t *testing.T) *combat.Actor {
	return actor(t, "Angel Guardian", 120, 12, 15, gear.Spear, gear.God)
}

// demonKnight has 90 HP, 40 damage and 13 armor.
func demonKnight(t *testing.T) *combat.Actor {
	return actor(t, "Demon Knight", 80, 15, 8, gear.Sword, gear.Demon)
}

// wound removes exactly amount health from a, bypassing dodge.
func wound(t *testing.T, a *combat.Actor, amount int) {
	t.Helper()
	res := combat.NewResolver(&scriptedRoller{fallback: 99}, nil)
	res.ApplyDamage(a, amount+a.EffectiveArmor(), nil)
}

func newMatch(t *testing.T, player *combat.Actor, enemies []*combat.Actor, human match.IntentSource, roller match.Roller, opts ...match.Option) (*match.Match, *combat.Recorder) {
	t.Helper()
	rec := &combat.Recorder{}
	m, err := match.New(player, enemies, human, roller, append([]match.Option{match.WithObserver(rec)}, opts...)...)
	require.NoError(t, err)
	return m, rec
}
