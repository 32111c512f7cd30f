package combat

import (
	"fmt"

	"github.com/cory-johannsen/gvd/internal/game/condition"
	"github.com/cory-johannsen/gvd/internal/game/gear"
)

const (
	divineDodgeChance     = 20 // percent
	holyVsDemonMultiplier = 1.5
)

// Source is the subset of dice.Source used by the resolver.
type Source interface {
	Intn(n int) int
}

// Resolver applies damage, healing and status changes to actors and reports each
// mutation to its Observer. It is not safe for concurrent use.
type Resolver struct {
	src   Source
	obs   Observer
	round int
}

// NewResolver creates a Resolver drawing randomness from src.
//
// Precondition: src must be non-nil; obs may be nil (events are dropped).
func NewResolver(src Source, obs Observer) *Resolver {
	if obs == nil {
		obs = ObserverFunc(func(Event) {})
	}
	return &Resolver{src: src, obs: obs}
}

// SetRound stamps subsequent events with round n.
func (r *Resolver) SetRound(n int) { r.round = n }

// Round returns the round stamped on events.
func (r *Resolver) Round() int { return r.round }

// Emit stamps ev with the current round and forwards it.
func (r *Resolver) Emit(ev Event) {
	ev.Round = r.round
	r.obs.Observe(ev)
}

func (r *Resolver) emitFor(a *Actor, k Kind, source *Actor, amount int, narrative string) {
	ev := Event{
		Kind:      k,
		ActorID:   a.ID,
		Actor:     a.Name,
		Amount:    amount,
		HP:        a.currentHealth,
		MaxHP:     a.maxHealth,
		Narrative: narrative,
	}
	if source != nil {
		ev.Source = source.Name
	}
	r.Emit(ev)
}

// Diagnose reports a non-fatal error as a KindDiagnostic event for actor.
func (r *Resolver) Diagnose(actor *Actor, err error) {
	ev := Event{Kind: KindDiagnostic, Err: err, Narrative: err.Error()}
	if actor != nil {
		ev.ActorID, ev.Actor = actor.ID, actor.Name
		ev.HP, ev.MaxHP = actor.currentHealth, actor.maxHealth
	}
	r.Emit(ev)
}

// ApplyDamage resolves one hit of incoming damage against defender.
//
//   - A God-tier defender negates the whole hit 20% of the time.
//   - Otherwise the defender loses max(1, incoming - EffectiveArmor()),
//     ×1.5 when a God-tier attacker hits a Demon-tier defender.
//   - A Demon-tier defender brought to 0 by a known attacker strikes back once
//     with its BaseDamage; the counter-hit carries no attacker.
//
// attacker may be nil for environmental damage.
// Postcondition: Returns the health the defender lost; defender health >= 0.
func (r *Resolver) ApplyDamage(defender *Actor, incoming int, attacker *Actor) int {
	if defender.Tier() == gear.God && r.src.Intn(100) < divineDodgeChance {
		r.emitFor(defender, KindDodge, attacker, 0,
			fmt.Sprintf("%s's Divine Protection activated! No damage taken!", defender.Name))
		return 0
	}

	actual := incoming - defender.EffectiveArmor()
	if actual < 1 {
		actual = 1
	}
	if attacker != nil && attacker.Tier() == gear.God && defender.Tier() == gear.Demon {
		actual = scale(actual, holyVsDemonMultiplier)
		r.emitFor(defender, KindHolyBonus, attacker, actual, "Holy damage! Extra effective against demons!")
	}

	before := defender.currentHealth
	defender.loseHealth(actual)
	lost := before - defender.currentHealth
	r.emitFor(defender, KindDamage, attacker, actual,
		fmt.Sprintf("%s takes %d damage! (Health: %d/%d)", defender.Name, actual, defender.currentHealth, defender.maxHealth))

	if !defender.IsAlive() && defender.Tier() == gear.Demon && attacker != nil && !defender.deathBlowSpent {
		defender.deathBlowSpent = true
		r.emitFor(defender, KindDeathBlow, attacker, defender.BaseDamage,
			fmt.Sprintf("%s triggers Death Blow!", defender.Name))
		r.ApplyDamage(attacker, defender.BaseDamage, nil)
	}
	return lost
}

// Attack resolves a basic attack from attacker against target, including the
// Demon-tier execution bonus against weakened targets.
func (r *Resolver) Attack(attacker, target *Actor) int {
	dmg, executed := attacker.ExecutionDamage(target)
	if executed {
		r.emitFor(target, KindExecution, attacker, dmg, "Execution bonus! Attacking weakened enemy!")
	}
	return r.Strike(attacker, target, dmg, fmt.Sprintf("%s attacks %s!", attacker.Name, target.Name))
}

// Strike announces an attack with the given narrative and applies dmg to target.
func (r *Resolver) Strike(attacker, target *Actor, dmg int, narrative string) int {
	r.emitFor(target, KindAttack, attacker, dmg, narrative)
	return r.ApplyDamage(target, dmg, attacker)
}

// Heal restores up to amount health on a.
//
// Postcondition: a.CurrentHealth() == min(before+amount, MaxHealth()).
func (r *Resolver) Heal(a *Actor, amount int) int {
	gained := a.restore(amount)
	r.emitFor(a, KindHeal, nil, gained,
		fmt.Sprintf("%s heals for %d HP! (Health: %d/%d)", a.Name, amount, a.currentHealth, a.maxHealth))
	return gained
}

// Afflict applies a status condition to target. Poison resets to its full duration.
func (r *Resolver) Afflict(target *Actor, id condition.ID, source *Actor) error {
	if err := target.conditions.Apply(id); err != nil {
		return err
	}
	switch id {
	case condition.Poisoned:
		r.emitFor(target, KindPoisoned, source, target.PoisonTurns(),
			fmt.Sprintf("%s has been poisoned for %d turns!", target.Name, target.PoisonTurns()))
	case condition.Restrained:
		r.emitFor(target, KindRestrained, source, 1,
			fmt.Sprintf("%s has been restrained for 1 turn!", target.Name))
	}
	return nil
}

// TickStatus advances a's round-based conditions. Poison ticks deal their raw
// damage without armor or Death Blow. A God-tier actor may still dodge a tick,
// and the tick counts against the duration either way.
func (r *Resolver) TickStatus(a *Actor) {
	for _, tk := range a.conditions.Tick() {
		if tk.Damage > 0 && a.Tier() == gear.God && r.src.Intn(100) < divineDodgeChance {
			r.emitFor(a, KindDodge, nil, 0,
				fmt.Sprintf("%s's Divine Protection activated! No damage taken!", a.Name))
		} else if tk.Damage > 0 {
			a.loseHealth(tk.Damage)
			r.emitFor(a, KindPoisonTick, nil, tk.Damage,
				fmt.Sprintf("%s takes %d poison damage! (Health: %d/%d)", a.Name, tk.Damage, a.currentHealth, a.maxHealth))
		}
		if tk.Expired && tk.ID == condition.Poisoned {
			r.emitFor(a, KindPoisonCleared, nil, 0, fmt.Sprintf("%s is no longer poisoned!", a.Name))
		}
	}
}

// SkipRestrained clears a pending restraint on a and reports whether its action is lost.
func (r *Resolver) SkipRestrained(a *Actor) bool {
	if !a.ConsumeRestraint() {
		return false
	}
	r.emitFor(a, KindRestrainedSkip, nil, 0, fmt.Sprintf("%s is restrained and cannot act!", a.Name))
	return true
}

// GainSoul awards one soul to a.
func (r *Resolver) GainSoul(a *Actor, reason string) {
	a.Souls++
	r.emitFor(a, KindSoulGained, nil, a.Souls, fmt.Sprintf("%s Total souls: %d", reason, a.Souls))
}
