package match

import (
	"fmt"

	"github.com/cory-johannsen/gvd/internal/game/combat"
	"github.com/cory-johannsen/gvd/internal/game/condition"
	"github.com/cory-johannsen/gvd/internal/game/dice"
	"github.com/cory-johannsen/gvd/internal/game/gear"
)

var (
	actionRoll   = dice.MustParse("1d10")
	poisonFlip   = dice.MustParse("1d2")
	restrainFlip = dice.MustParse("1d3")
)

const (
	scriptedHealAmount = 10
	darkEnergyScale    = 1.2
)

// scriptedTurns lets each living enemy act in roster order.
// The loop stops as soon as the player is dead.
func (m *Match) scriptedTurns() {
	for _, e := range m.enemies {
		if !m.player.IsAlive() {
			return
		}
		if !e.IsAlive() {
			continue
		}
		if m.res.SkipRestrained(e) {
			continue
		}
		m.scriptedAction(e)
	}
}

// scriptedAction rolls 1d10: 1-6 attacks, 7-8 uses a tier ability, 9-10 heals.
func (m *Match) scriptedAction(e *combat.Actor) {
	roll := m.roller.Roll(actionRoll).Total()
	switch {
	case roll <= 6:
		m.strike(e)
	case roll <= 8:
		m.tierAction(e)
	default:
		m.res.Heal(e, scriptedHealAmount)
	}
}

func (m *Match) tierAction(e *combat.Actor) {
	p := m.player
	switch e.Tier() {
	case gear.Demon:
		if !p.Poisoned() && m.roller.Roll(poisonFlip).Total() == 1 {
			m.afflict(e, condition.Poisoned)
			return
		}
		dmg := int(float64(e.EffectiveDamage()) * darkEnergyScale)
		m.res.Strike(e, p, dmg, fmt.Sprintf("%s attacks with dark energy!", e.Name))
	case gear.God:
		if !p.Restrained() && m.roller.Roll(restrainFlip).Total() == 1 {
			m.afflict(e, condition.Restrained)
			return
		}
		dmg := e.EffectiveDamage() + e.EffectiveArmor()/2
		m.res.Strike(e, p, dmg, fmt.Sprintf("%s performs a holy strike!", e.Name))
	default:
		m.strike(e)
	}
}

// strike is a plain scripted attack; the execution bonus is reserved for the player.
func (m *Match) strike(e *combat.Actor) {
	m.res.Strike(e, m.player, e.EffectiveDamage(), fmt.Sprintf("%s attacks %s!", e.Name, m.player.Name))
}

func (m *Match) afflict(e *combat.Actor, id condition.ID) {
	if err := m.res.Afflict(m.player, id, e); err != nil {
		m.res.Diagnose(e, err)
	}
}
