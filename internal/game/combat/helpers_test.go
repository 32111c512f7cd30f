package combat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/gvd/internal/game/combat"
	"github.com/cory-johannsen/gvd/internal/game/gear"
)

// fixedSrc returns val for every Intn call, reduced into range.
type fixedSrc struct{ val int }

func (f fixedSrc) Intn(n int) int { return f.val % n }

// seqSrc returns its values in order, then keeps repeating the last one.
type seqSrc struct {
	vals []int
	i    int
}

func (s *seqSrc) Intn(n int) int {
	v := s.vals[len(s.vals)-1]
	if s.i < len(s.vals) {
		v = s.vals[s.i]
		s.i++
	}
	return v % n
}

// noDodge never triggers the 20% God-tier dodge.
var noDodge = fixedSrc{val: 99}

func equipped(t *testing.T, name string, health, damage, armor int, typ gear.Type, tier gear.Tier) *combat.Actor {
	t.Helper()
	a := combat.NewActor(name, name, health, damage, armor)
	require.NoError(t, a.Equip(gear.MustNew(name+" gear", typ, tier)))
	return a
}

func demonHero(t *testing.T) *combat.Actor {
	return equipped(t, "Hero", 100, 20, 5, gear.Sword, gear.Demon)
}

func godHero(t *testing.T) *combat.Actor {
	return equipped(t, "Saint", 100, 20, 5, gear.Spear, gear.God)
}

func goblin(t *testing.T) *combat.Actor {
	return equipped(t, "Goblin", 50, 10, 0, gear.Sword, gear.Normal)
}
