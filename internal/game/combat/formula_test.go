package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/gvd/internal/game/combat"
	"github.com/cory-johannsen/gvd/internal/game/gear"
)

func TestEffectiveDamage_DemonThresholds(t *testing.T) {
	a := demonHero(t) // 20 base + 25 gear, 110 max health
	tests := []struct {
		hp   int
		want int
	}{
		{110, 45}, // full
		{55, 45},  // exactly 0.5 is not below half
		{54, 67},  // < 0.5: 45 × 1.5 truncated
		{28, 67},  // 0.2545 is still above a quarter
		{27, 135}, // < 0.25: 45 × 3
		{0, 135},
	}
	for _, tc := range tests {
		a.SetHealthForTest(tc.hp)
		assert.Equal(t, tc.want, a.EffectiveDamage(), "hp=%d", tc.hp)
	}
}

func TestEffectiveDamage_SoulsAndWorshippers(t *testing.T) {
	d := demonHero(t)
	d.Souls = 3
	assert.Equal(t, 51, d.EffectiveDamage())
	d.SetHealthForTest(10)
	assert.Equal(t, 141, d.EffectiveDamage(), "soul bonus is added after the multipliers")

	g := godHero(t)
	g.Worshippers = 2
	assert.Equal(t, 50, g.EffectiveDamage())

	n := goblin(t)
	n.Souls, n.Worshippers = 4, 4
	assert.Equal(t, 25, n.EffectiveDamage(), "counters only matter under their tier")
}

func TestEffectiveArmor_GodBoundary(t *testing.T) {
	// 200 max health, 27 armor before the multiplier.
	a := equipped(t, "Angel", 165, 12, 5, gear.Spear, gear.God)
	a.SetHealthForTest(160) // 0.8
	assert.Equal(t, 40, a.EffectiveArmor())
	a.SetHealthForTest(150) // exactly 0.75
	assert.Equal(t, 27, a.EffectiveArmor())
	a.SetHealthForTest(151)
	assert.Equal(t, 40, a.EffectiveArmor())
}

func TestEffectiveArmor_NoMultiplierOffGod(t *testing.T) {
	d := demonHero(t)
	assert.Equal(t, 10, d.EffectiveArmor())
}

func TestExecutionDamage(t *testing.T) {
	hero := demonHero(t)
	g := goblin(t) // 60 max
	dmg, exec := hero.ExecutionDamage(g)
	assert.Equal(t, 45, dmg)
	assert.False(t, exec)

	g.SetHealthForTest(17) // 0.283
	dmg, exec = hero.ExecutionDamage(g)
	assert.Equal(t, 67, dmg)
	assert.True(t, exec)

	saint := godHero(t)
	dmg, exec = saint.ExecutionDamage(g)
	assert.Equal(t, 40, dmg)
	assert.False(t, exec, "execution is a Demon-tier rule")
}

// TestEffectiveDamage_Property_DemonTriple verifies a Demon actor at 20% health
// deals exactly three times its full-health damage before the soul bonus.
func TestEffectiveDamage_Property_DemonTriple(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		k := rapid.IntRange(1, 100).Draw(rt, "k")
		base := rapid.IntRange(0, 200).Draw(rt, "base_damage")
		typ := gear.Type(rapid.IntRange(0, 2).Draw(rt, "type"))
		g := gear.MustNew("g", typ, gear.Demon)
		a := combat.NewActor("x", "X", 5*k*10, base, 0)
		_ = a.Equip(g)
		full := a.EffectiveDamage()
		a.SetHealthForTest(a.MaxHealth() / 5)
		assert.InDelta(rt, 0.2, a.HealthFraction(), 1e-9)
		assert.Equal(rt, 3*full, a.EffectiveDamage())
	})
}
