package gear

// Ability identifies one gear-granted special ability.
// The zero value (AbilityUnknown) is intentionally invalid.
type Ability int

const (
	AbilityUnknown Ability = iota
	SoulSteal
	Poison
	MultiAttack
	DeathBlow
	Restrain
	HolyArmor
	HolyTakedown
	DivineProtection
)

// String returns the display name of the ability.
func (a Ability) String() string {
	switch a {
	case SoulSteal:
		return "Soul Steal"
	case Poison:
		return "Poison"
	case MultiAttack:
		return "Multi-Attack"
	case DeathBlow:
		return "Death Blow"
	case Restrain:
		return "Restrain"
	case HolyArmor:
		return "Holy Armor"
	case HolyTakedown:
		return "Holy Takedown"
	case DivineProtection:
		return "Divine Protection"
	default:
		return "unknown"
	}
}

// Passive reports whether the ability triggers on its own and cannot be invoked.
func (a Ability) Passive() bool {
	return a == DeathBlow || a == HolyArmor
}

// Targeted reports whether the ability needs a single enemy target.
func (a Ability) Targeted() bool {
	switch a {
	case Poison, Restrain, HolyTakedown:
		return true
	default:
		return false
	}
}
