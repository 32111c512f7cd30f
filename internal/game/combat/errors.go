package combat

import "errors"

// Errors reported by the resolver. None of them is fatal to a match; the turn
// controller turns them into KindDiagnostic events.
var (
	// ErrInvalidTargetIndex means a selection did not name a living enemy.
	ErrInvalidTargetIndex = errors.New("invalid target index")
	// ErrUnknownAbility means the ability is not granted by the actor's gear.
	ErrUnknownAbility = errors.New("unknown ability")
	// ErrEmptyRoster means an attack or ability had no valid targets.
	ErrEmptyRoster = errors.New("no targets available")
	// ErrPassiveAbility means the ability triggers automatically and cannot be invoked.
	ErrPassiveAbility = errors.New("ability is passive")
)
