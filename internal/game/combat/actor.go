// Package combat implements the combat resolution engine: actors, the damage
// and armor formulas, damage application and the gear ability table.
package combat

import (
	"errors"

	"github.com/cory-johannsen/gvd/internal/game/condition"
	"github.com/cory-johannsen/gvd/internal/game/gear"
)

// ErrAlreadyEquipped is returned when Equip is called on an actor that already has gear.
var ErrAlreadyEquipped = errors.New("combat: actor already has gear equipped")

// Actor is one participant in a match, either the human player or a scripted enemy.
//
// Invariant: 0 <= CurrentHealth() <= MaxHealth() after every mutation.
type Actor struct {
	ID         string
	Name       string
	BaseDamage int
	BaseArmor  int
	// Souls feed the Demon-tier damage bonus.
	Souls int
	// Worshippers feed the God-tier damage bonus.
	Worshippers int

	maxHealth      int
	currentHealth  int
	gear           *gear.Gear
	conditions     *condition.Set
	deathBlowSpent bool
}

// NewActor creates an unequipped actor at full health.
//
// Precondition: health >= 1.
// Postcondition: CurrentHealth() == MaxHealth() == health.
func NewActor(id, name string, health, damage, armor int) *Actor {
	if health < 1 {
		health = 1
	}
	return &Actor{
		ID:            id,
		Name:          name,
		BaseDamage:    damage,
		BaseArmor:     armor,
		maxHealth:     health,
		currentHealth: health,
		conditions:    condition.NewSet(),
	}
}

// Equip takes ownership of g and permanently raises max and current health by its health bonus.
//
// Precondition: g must not be nil.
// Postcondition: Returns ErrAlreadyEquipped if the actor already carries gear; state is unchanged.
func (a *Actor) Equip(g *gear.Gear) error {
	if g == nil {
		return errors.New("combat: cannot equip nil gear")
	}
	if a.gear != nil {
		return ErrAlreadyEquipped
	}
	a.gear = g
	a.maxHealth += g.HealthBonus()
	a.currentHealth += g.HealthBonus()
	return nil
}

// Gear returns the equipped gear, or nil.
func (a *Actor) Gear() *gear.Gear { return a.gear }

// Tier returns the tier of the equipped gear; unequipped actors count as Normal.
func (a *Actor) Tier() gear.Tier {
	if a.gear == nil {
		return gear.Normal
	}
	return a.gear.Tier()
}

// Abilities returns the ordered ability list of the equipped gear.
func (a *Actor) Abilities() []gear.Ability {
	if a.gear == nil {
		return nil
	}
	return a.gear.Abilities()
}

// MaxHealth returns the health cap including the gear bonus.
func (a *Actor) MaxHealth() int { return a.maxHealth }

// CurrentHealth returns the current health.
func (a *Actor) CurrentHealth() int { return a.currentHealth }

// IsAlive reports whether CurrentHealth() > 0.
func (a *Actor) IsAlive() bool { return a.currentHealth > 0 }

// Poisoned reports whether the actor is poisoned.
func (a *Actor) Poisoned() bool { return a.conditions.Has(condition.Poisoned) }

// PoisonTurns returns the remaining poison ticks.
func (a *Actor) PoisonTurns() int { return a.conditions.Remaining(condition.Poisoned) }

// Restrained reports whether the actor's next action is blocked.
func (a *Actor) Restrained() bool { return a.conditions.Has(condition.Restrained) }

// Conditions returns the actor's status set.
func (a *Actor) Conditions() *condition.Set { return a.conditions }

// ConsumeRestraint clears a pending restraint and reports whether the action is blocked.
func (a *Actor) ConsumeRestraint() bool { return a.conditions.ConsumeAction() }

// loseHealth subtracts amount, flooring at zero.
func (a *Actor) loseHealth(amount int) {
	a.currentHealth -= amount
	if a.currentHealth < 0 {
		a.currentHealth = 0
	}
}

// restore adds amount, capped at MaxHealth, and returns the health actually gained.
func (a *Actor) restore(amount int) int {
	before := a.currentHealth
	a.currentHealth += amount
	if a.currentHealth > a.maxHealth {
		a.currentHealth = a.maxHealth
	}
	return a.currentHealth - before
}
