package combat

import (
	"fmt"

	"github.com/cory-johannsen/gvd/internal/game/condition"
	"github.com/cory-johannsen/gvd/internal/game/gear"
)

const (
	multiAttackMultiplier = 0.7
	soulStealThreshold    = 0.3
	soulStealDamage       = 10
	divineProtectionHeal  = 15
)

// UseAbility resolves ability for actor. Targeted abilities act on target;
// area abilities act on every living actor in enemies.
//
// Postcondition: Returns a wrapped ErrUnknownAbility, ErrPassiveAbility,
// ErrInvalidTargetIndex or ErrEmptyRoster and changes nothing when the ability
// cannot be resolved.
func (r *Resolver) UseAbility(actor *Actor, ability gear.Ability, target *Actor, enemies []*Actor) error {
	if actor.gear == nil || !actor.gear.Grants(ability) {
		return fmt.Errorf("%s cannot use %s: %w", actor.Name, ability, ErrUnknownAbility)
	}
	if ability.Passive() {
		return fmt.Errorf("%s: %w", ability, ErrPassiveAbility)
	}
	if ability.Targeted() && (target == nil || !target.IsAlive()) {
		return fmt.Errorf("%s needs a living target: %w", ability, ErrInvalidTargetIndex)
	}

	living := Living(enemies)
	switch ability {
	case gear.Poison:
		r.announce(actor, ability, fmt.Sprintf("%s poisons %s!", actor.Name, target.Name))
		return r.Afflict(target, condition.Poisoned, actor)

	case gear.Restrain:
		r.announce(actor, ability, fmt.Sprintf("%s restrains %s!", actor.Name, target.Name))
		return r.Afflict(target, condition.Restrained, actor)

	case gear.HolyTakedown:
		dmg := actor.EffectiveDamage() + actor.EffectiveArmor()
		r.announce(actor, ability, fmt.Sprintf("%s performs Holy Takedown!", actor.Name))
		r.ApplyDamage(target, dmg, actor)
		return nil

	case gear.MultiAttack:
		if len(living) == 0 {
			return fmt.Errorf("%s: %w", ability, ErrEmptyRoster)
		}
		dmg := scale(actor.EffectiveDamage(), multiAttackMultiplier)
		r.announce(actor, ability, fmt.Sprintf("%s attacks all enemies!", actor.Name))
		for _, e := range living {
			if !actor.IsAlive() {
				break
			}
			r.ApplyDamage(e, dmg, actor)
		}
		return nil

	case gear.SoulSteal:
		if len(living) == 0 {
			return fmt.Errorf("%s: %w", ability, ErrEmptyRoster)
		}
		r.announce(actor, ability, fmt.Sprintf("%s attempts to steal souls!", actor.Name))
		for _, e := range living {
			if float64(e.currentHealth) < float64(e.maxHealth)*soulStealThreshold {
				r.GainSoul(actor, fmt.Sprintf("Soul partially stolen from %s!", e.Name))
				r.ApplyDamage(e, soulStealDamage, nil)
			}
		}
		return nil

	case gear.DivineProtection:
		actor.Worshippers++
		r.announce(actor, ability, fmt.Sprintf("%s gains a worshipper and divine healing!", actor.Name))
		r.emitFor(actor, KindWorshipperGained, nil, actor.Worshippers,
			fmt.Sprintf("Total worshippers: %d", actor.Worshippers))
		r.Heal(actor, divineProtectionHeal)
		return nil
	}
	return fmt.Errorf("%s: %w", ability, ErrUnknownAbility)
}

func (r *Resolver) announce(actor *Actor, ability gear.Ability, narrative string) {
	r.emitFor(actor, KindAbilityUsed, nil, int(ability), narrative)
}

// Living returns the actors in roster with health above zero, preserving order.
func Living(roster []*Actor) []*Actor {
	var out []*Actor
	for _, a := range roster {
		if a.IsAlive() {
			out = append(out, a)
		}
	}
	return out
}
