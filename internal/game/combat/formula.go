package combat

import "github.com/cory-johannsen/gvd/internal/game/gear"

const (
	demonFrenzyThreshold  = 0.5
	demonFrenzyMultiplier = 1.5
	demonDesperateThresh  = 0.25
	demonDesperateMult    = 2.0
	soulDamage            = 2
	worshipperDamage      = 5
	holyArmorThreshold    = 0.75
	holyArmorMultiplier   = 1.5
	executionThreshold    = 0.3
	executionMultiplier   = 1.5
)

// HealthFraction returns CurrentHealth() / MaxHealth().
func (a *Actor) HealthFraction() float64 {
	return float64(a.currentHealth) / float64(a.maxHealth)
}

// EffectiveDamage returns the outgoing damage of the actor's current state.
//
// Demon: below half health the base value is multiplied by 1.5, below a
// quarter by a further 2, then every soul adds 2. God: every worshipper adds 5.
func (a *Actor) EffectiveDamage() int {
	dmg := a.BaseDamage
	if a.gear == nil {
		return dmg
	}
	dmg += a.gear.DamageBonus()
	switch a.gear.Tier() {
	case gear.Demon:
		frac := a.HealthFraction()
		mult := 1.0
		if frac < demonFrenzyThreshold {
			mult *= demonFrenzyMultiplier
		}
		if frac < demonDesperateThresh {
			mult *= demonDesperateMult
		}
		dmg = scale(dmg, mult) + a.Souls*soulDamage
	case gear.God:
		dmg += a.Worshippers * worshipperDamage
	}
	return dmg
}

// EffectiveArmor returns the actor's armor; God gear above 75% health grants ×1.5.
func (a *Actor) EffectiveArmor() int {
	armor := a.BaseArmor
	if a.gear == nil {
		return armor
	}
	armor += a.gear.ArmorBonus()
	if a.gear.Tier() == gear.God && a.HealthFraction() > holyArmorThreshold {
		armor = scale(armor, holyArmorMultiplier)
	}
	return armor
}

// ExecutionDamage returns the damage of a basic attack against target,
// including the Demon-tier bonus against targets below 30% health.
func (a *Actor) ExecutionDamage(target *Actor) (int, bool) {
	dmg := a.EffectiveDamage()
	if a.Tier() == gear.Demon && target.HealthFraction() < executionThreshold {
		return scale(dmg, executionMultiplier), true
	}
	return dmg, false
}

// scale multiplies v by m and truncates toward zero.
func scale(v int, m float64) int {
	return int(float64(v) * m)
}
