package match

import (
	"context"

	"github.com/cory-johannsen/gvd/internal/game/combat"
	"github.com/cory-johannsen/gvd/internal/game/gear"
)

// IntentKind identifies what the human player wants to do this turn.
// The zero value (IntentUnknown) is intentionally invalid.
type IntentKind int

const (
	IntentUnknown IntentKind = iota
	IntentAttack
	IntentAbility
	IntentHeal
	// IntentInspect asks for a roster snapshot and does not consume the turn.
	IntentInspect
)

// String returns the human-readable name of the intent kind.
func (k IntentKind) String() string {
	switch k {
	case IntentAttack:
		return "attack"
	case IntentAbility:
		return "ability"
	case IntentHeal:
		return "heal"
	case IntentInspect:
		return "inspect"
	default:
		return "unknown"
	}
}

// Intent is one choice made by the human player.
// Target indexes Snapshot.Enemies; Ability indexes Snapshot.Player.Abilities.
type Intent struct {
	Kind    IntentKind
	Target  int
	Ability int
}

// Attack returns an attack intent against the enemy at index target.
func Attack(target int) Intent { return Intent{Kind: IntentAttack, Target: target} }

// UseAbility returns an ability intent. target is ignored by untargeted abilities.
func UseAbility(ability, target int) Intent {
	return Intent{Kind: IntentAbility, Ability: ability, Target: target}
}

// Heal returns a self-heal intent.
func Heal() Intent { return Intent{Kind: IntentHeal} }

// Inspect returns a roster inspection intent.
func Inspect() Intent { return Intent{Kind: IntentInspect} }

// IntentSource supplies the human player's decisions.
type IntentSource interface {
	// Choose blocks until the player picks an intent for the current turn.
	Choose(ctx context.Context, view Snapshot) (Intent, error)
	// Inspect receives the roster snapshot requested by an IntentInspect.
	Inspect(view Snapshot)
}

// ActorView is a read-only snapshot of one actor's combat state.
type ActorView struct {
	ID          string
	Name        string
	HP          int
	MaxHP       int
	Damage      int
	Armor       int
	GearName    string
	GearType    gear.Type
	Tier        gear.Tier
	Abilities   []gear.Ability
	Souls       int
	Worshippers int
	Poisoned    bool
	PoisonTurns int
	Restrained  bool
}

// View captures the current state of a.
func View(a *combat.Actor) ActorView {
	v := ActorView{
		ID:          a.ID,
		Name:        a.Name,
		HP:          a.CurrentHealth(),
		MaxHP:       a.MaxHealth(),
		Damage:      a.EffectiveDamage(),
		Armor:       a.EffectiveArmor(),
		Tier:        a.Tier(),
		Abilities:   a.Abilities(),
		Souls:       a.Souls,
		Worshippers: a.Worshippers,
		Poisoned:    a.Poisoned(),
		PoisonTurns: a.PoisonTurns(),
		Restrained:  a.Restrained(),
	}
	if g := a.Gear(); g != nil {
		v.GearName = g.Name()
		v.GearType = g.Type()
	}
	return v
}

// Snapshot is the roster state offered to the human player.
type Snapshot struct {
	Round  int
	Player ActorView
	// Enemies lists the living enemies; intent target indexes refer to this order.
	Enemies []ActorView
}
