package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/gvd/internal/game/combat"
	"github.com/cory-johannsen/gvd/internal/game/gear"
)

func TestUseAbility_Poison(t *testing.T) {
	rec := &combat.Recorder{}
	res := combat.NewResolver(noDodge, rec)
	hero, g := demonHero(t), goblin(t)
	require.NoError(t, res.UseAbility(hero, gear.Poison, g, []*combat.Actor{g}))
	assert.True(t, g.Poisoned())
	assert.Equal(t, 3, g.PoisonTurns())
	assert.Len(t, rec.OfKind(combat.KindAbilityUsed), 1)
	assert.Len(t, rec.OfKind(combat.KindPoisoned), 1)
}

func TestUseAbility_MultiAttack(t *testing.T) {
	res := combat.NewResolver(noDodge, nil)
	hero := demonHero(t)
	a, b := goblin(t), goblin(t)
	dead := goblin(t)
	dead.SetHealthForTest(0)
	require.NoError(t, res.UseAbility(hero, gear.MultiAttack, nil, []*combat.Actor{a, dead, b}))
	// 45 × 0.7 = 31, minus 5 armor
	assert.Equal(t, 34, a.CurrentHealth())
	assert.Equal(t, 34, b.CurrentHealth())
	assert.Equal(t, 0, dead.CurrentHealth())
}

func TestUseAbility_MultiAttack_StopsWhenAttackerFalls(t *testing.T) {
	rec := &combat.Recorder{}
	res := combat.NewResolver(noDodge, rec)
	hero := demonHero(t)
	hero.SetHealthForTest(1)
	first := equipped(t, "First Knight", 80, 500, 0, gear.Sword, gear.Demon)
	first.SetHealthForTest(1)
	second := equipped(t, "Second Knight", 80, 500, 0, gear.Sword, gear.Demon)
	full := second.CurrentHealth()

	require.NoError(t, res.UseAbility(hero, gear.MultiAttack, nil, []*combat.Actor{first, second}))
	assert.False(t, first.IsAlive())
	assert.False(t, hero.IsAlive())
	assert.Equal(t, full, second.CurrentHealth())
	assert.Len(t, rec.OfKind(combat.KindDeathBlow), 1)
}

func TestUseAbility_MultiAttack_EmptyRoster(t *testing.T) {
	res := combat.NewResolver(noDodge, nil)
	err := res.UseAbility(demonHero(t), gear.MultiAttack, nil, nil)
	assert.ErrorIs(t, err, combat.ErrEmptyRoster)
}

func TestUseAbility_SoulSteal(t *testing.T) {
	rec := &combat.Recorder{}
	res := combat.NewResolver(noDodge, rec)
	hero := demonHero(t)
	weak, healthy := goblin(t), goblin(t)
	weak.SetHealthForTest(17) // below 18 = 0.3 × 60
	healthy.SetHealthForTest(18)

	require.NoError(t, res.UseAbility(hero, gear.SoulSteal, nil, []*combat.Actor{weak, healthy}))
	assert.Equal(t, 1, hero.Souls)
	assert.Equal(t, 12, weak.CurrentHealth(), "10 incoming minus 5 armor")
	assert.Equal(t, 18, healthy.CurrentHealth())
	assert.Len(t, rec.OfKind(combat.KindSoulGained), 1)
}

func TestUseAbility_SoulSteal_NoDeathBlow(t *testing.T) {
	rec := &combat.Recorder{}
	res := combat.NewResolver(noDodge, rec)
	hero := demonHero(t)
	knight := equipped(t, "Demon Knight", 80, 15, 0, gear.Arrow, gear.Demon)
	knight.SetHealthForTest(3)
	require.NoError(t, res.UseAbility(hero, gear.SoulSteal, nil, []*combat.Actor{knight}))
	assert.False(t, knight.IsAlive())
	assert.Empty(t, rec.OfKind(combat.KindDeathBlow), "soul steal damage carries no attacker")
	assert.Equal(t, hero.MaxHealth(), hero.CurrentHealth())
}

func TestUseAbility_Restrain(t *testing.T) {
	res := combat.NewResolver(noDodge, nil)
	saint, g := godHero(t), goblin(t)
	require.NoError(t, res.UseAbility(saint, gear.Restrain, g, []*combat.Actor{g}))
	assert.True(t, g.Restrained())
}

func TestUseAbility_HolyTakedown(t *testing.T) {
	res := combat.NewResolver(noDodge, nil)
	saint, g := godHero(t), goblin(t)
	// 40 damage + 40 armor (27 × 1.5 at full health) - 5 goblin armor
	require.NoError(t, res.UseAbility(saint, gear.HolyTakedown, g, []*combat.Actor{g}))
	assert.Equal(t, 0, g.CurrentHealth())
}

func TestUseAbility_DivineProtection(t *testing.T) {
	rec := &combat.Recorder{}
	res := combat.NewResolver(noDodge, rec)
	saint := godHero(t)
	saint.SetHealthForTest(100)
	require.NoError(t, res.UseAbility(saint, gear.DivineProtection, nil, nil))
	assert.Equal(t, 1, saint.Worshippers)
	assert.Equal(t, 115, saint.CurrentHealth())
	assert.Equal(t, 45, saint.EffectiveDamage())
	assert.Len(t, rec.OfKind(combat.KindWorshipperGained), 1)

	saint.SetHealthForTest(saint.MaxHealth() - 3)
	require.NoError(t, res.UseAbility(saint, gear.DivineProtection, nil, nil))
	assert.Equal(t, saint.MaxHealth(), saint.CurrentHealth())
}

func TestUseAbility_Errors(t *testing.T) {
	res := combat.NewResolver(noDodge, nil)
	hero, saint, g := demonHero(t), godHero(t), goblin(t)
	enemies := []*combat.Actor{g}

	tests := []struct {
		name    string
		actor   *combat.Actor
		ability gear.Ability
		target  *combat.Actor
		want    error
	}{
		{"normal gear grants nothing", g, gear.Poison, hero, combat.ErrUnknownAbility},
		{"demon cannot restrain", hero, gear.Restrain, g, combat.ErrUnknownAbility},
		{"zero value", saint, gear.AbilityUnknown, g, combat.ErrUnknownAbility},
		{"out of range value", saint, gear.Ability(99), g, combat.ErrUnknownAbility},
		{"death blow is passive", hero, gear.DeathBlow, g, combat.ErrPassiveAbility},
		{"holy armor is passive", saint, gear.HolyArmor, g, combat.ErrPassiveAbility},
		{"poison without target", hero, gear.Poison, nil, combat.ErrInvalidTargetIndex},
		{"takedown without target", saint, gear.HolyTakedown, nil, combat.ErrInvalidTargetIndex},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := res.UseAbility(tc.actor, tc.ability, tc.target, enemies)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Equal(t, 60, g.CurrentHealth())
	assert.False(t, g.Poisoned())
}

func TestLiving(t *testing.T) {
	a, b := goblin(t), goblin(t)
	b.SetHealthForTest(0)
	assert.Equal(t, []*combat.Actor{a}, combat.Living([]*combat.Actor{a, b}))
	assert.Empty(t, combat.Living(nil))
}

func TestObservers_FanOut(t *testing.T) {
	r1, r2 := &combat.Recorder{}, &combat.Recorder{}
	var calls int
	obs := combat.Observers{r1, nil, r2, combat.ObserverFunc(func(combat.Event) { calls++ })}
	obs.Observe(combat.Event{Kind: combat.KindHeal})
	assert.Len(t, r1.Events, 1)
	assert.Len(t, r2.Events, 1)
	assert.Equal(t, 1, calls)
	r1.Reset()
	assert.Empty(t, r1.Events)
	assert.Equal(t, "heal", combat.KindHeal.String())
	assert.Equal(t, "unknown", combat.Kind(-3).String())
}
