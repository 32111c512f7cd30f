// Package gear defines the equipment descriptors that actors carry into a match.
//
// Every bonus and ability a piece of gear grants is a pure function of its
// (Type, Tier) pair and is looked up from the tables in this file.
package gear

import (
	"fmt"
	"strings"
)

// Type is the weapon family of a piece of gear.
type Type int

const (
	Sword Type = iota
	Spear
	Arrow
)

// String returns the display name of the type.
func (t Type) String() string {
	switch t {
	case Sword:
		return "Sword"
	case Spear:
		return "Spear"
	case Arrow:
		return "Arrow"
	default:
		return "Unknown"
	}
}

// Tier is the rarity class of a piece of gear.
type Tier int

const (
	Normal Tier = iota
	Demon
	God
)

// String returns the display name of the tier.
func (t Tier) String() string {
	switch t {
	case Normal:
		return "Normal"
	case Demon:
		return "DEMON"
	case God:
		return "GOD"
	default:
		return "Unknown"
	}
}

// ParseType maps a lower-case identifier ("sword", "spear", "arrow") to a Type.
//
// Postcondition: Returns an error for any other input.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sword":
		return Sword, nil
	case "spear":
		return Spear, nil
	case "arrow":
		return Arrow, nil
	}
	return 0, fmt.Errorf("gear: unknown type %q", s)
}

// ParseTier maps a lower-case identifier ("normal", "demon", "god") to a Tier.
//
// Postcondition: Returns an error for any other input.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal":
		return Normal, nil
	case "demon":
		return Demon, nil
	case "god":
		return God, nil
	}
	return 0, fmt.Errorf("gear: unknown tier %q", s)
}

// bonus is a set of flat stat adjustments.
type bonus struct {
	health int
	armor  int
	damage int
}

// typeBonuses holds the base bonuses per weapon family.
var typeBonuses = map[Type]bonus{
	Sword: {health: 10, armor: 5, damage: 15},
	Spear: {health: 5, armor: 2, damage: 20},
	Arrow: {health: 0, armor: 0, damage: 25},
}

// tierProfile is the secondary bonus and ability set a tier grants.
type tierProfile struct {
	bonus     bonus
	abilities []Ability
}

// tierProfiles is the single tier lookup table shared by stat construction
// and ability resolution.
var tierProfiles = map[Tier]tierProfile{
	Normal: {},
	Demon: {
		bonus:     bonus{damage: 10},
		abilities: []Ability{SoulSteal, Poison, MultiAttack, DeathBlow},
	},
	God: {
		bonus:     bonus{health: 30, armor: 20},
		abilities: []Ability{Restrain, HolyArmor, HolyTakedown, DivineProtection},
	},
}

// Gear is an immutable equipment descriptor.
type Gear struct {
	name      string
	typ       Type
	tier      Tier
	abilities []Ability
	bonus     bonus
}

// New builds a Gear for the given type and tier.
//
// Precondition: typ and tier must be declared constants.
// Postcondition: Bonuses and abilities are fixed for the lifetime of the Gear.
func New(name string, typ Type, tier Tier) (*Gear, error) {
	tb, ok := typeBonuses[typ]
	if !ok {
		return nil, fmt.Errorf("gear: invalid type %d", typ)
	}
	tp, ok := tierProfiles[tier]
	if !ok {
		return nil, fmt.Errorf("gear: invalid tier %d", tier)
	}
	abilities := make([]Ability, len(tp.abilities))
	copy(abilities, tp.abilities)
	return &Gear{
		name:      name,
		typ:       typ,
		tier:      tier,
		abilities: abilities,
		bonus: bonus{
			health: tb.health + tp.bonus.health,
			armor:  tb.armor + tp.bonus.armor,
			damage: tb.damage + tp.bonus.damage,
		},
	}, nil
}

// MustNew is New that panics on error. Useful in tests and fixed catalogs.
func MustNew(name string, typ Type, tier Tier) *Gear {
	g, err := New(name, typ, tier)
	if err != nil {
		panic(err)
	}
	return g
}

// Name returns the display label.
func (g *Gear) Name() string { return g.name }

// Type returns the weapon family.
func (g *Gear) Type() Type { return g.typ }

// Tier returns the rarity class.
func (g *Gear) Tier() Tier { return g.tier }

// HealthBonus returns the max health granted on equip.
func (g *Gear) HealthBonus() int { return g.bonus.health }

// ArmorBonus returns the flat armor added to the wearer.
func (g *Gear) ArmorBonus() int { return g.bonus.armor }

// DamageBonus returns the flat damage added to the wearer.
func (g *Gear) DamageBonus() int { return g.bonus.damage }

// Abilities returns a copy of the ordered ability list.
func (g *Gear) Abilities() []Ability {
	out := make([]Ability, len(g.abilities))
	copy(out, g.abilities)
	return out
}

// Grants reports whether a is part of this gear's ability set.
func (g *Gear) Grants(a Ability) bool {
	for _, have := range g.abilities {
		if have == a {
			return true
		}
	}
	return false
}
