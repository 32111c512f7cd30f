package combat

// Kind classifies an observation event.
type Kind int

const (
	KindUnknown Kind = iota
	KindRoundStart
	KindAttack
	KindDamage
	KindDodge
	KindHolyBonus
	KindExecution
	KindDeathBlow
	KindHeal
	KindPoisoned
	KindPoisonTick
	KindPoisonCleared
	KindRestrained
	KindRestrainedSkip
	KindAbilityUsed
	KindSoulGained
	KindWorshipperGained
	KindDefeated
	KindDiagnostic
	KindMatchEnd
)

var kindNames = map[Kind]string{
	KindRoundStart:       "round_start",
	KindAttack:           "attack",
	KindDamage:           "damage",
	KindDodge:            "dodge",
	KindHolyBonus:        "holy_bonus",
	KindExecution:        "execution",
	KindDeathBlow:        "death_blow",
	KindHeal:             "heal",
	KindPoisoned:         "poisoned",
	KindPoisonTick:       "poison_tick",
	KindPoisonCleared:    "poison_cleared",
	KindRestrained:       "restrained",
	KindRestrainedSkip:   "restrained_skip",
	KindAbilityUsed:      "ability_used",
	KindSoulGained:       "soul_gained",
	KindWorshipperGained: "worshipper_gained",
	KindDefeated:         "defeated",
	KindDiagnostic:       "diagnostic",
	KindMatchEnd:         "match_end",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Event records one state change for the presentation layer.
type Event struct {
	Round int
	Kind  Kind
	// ActorID and Actor identify the actor whose state changed.
	ActorID string
	Actor   string
	// Source is the name of the actor that caused the change, if any.
	Source string
	// Amount is the magnitude: damage dealt, health healed, counter value.
	Amount int
	// HP and MaxHP are the affected actor's health after the change.
	HP    int
	MaxHP int
	// Err is set on KindDiagnostic events.
	Err       error
	Narrative string
}

// Observer receives every event the engine emits.
type Observer interface {
	Observe(ev Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ev Event)

// Observe calls f(ev).
func (f ObserverFunc) Observe(ev Event) { f(ev) }

// Observers fans one event out to several observers in order.
type Observers []Observer

// Observe forwards ev to every non-nil observer.
func (o Observers) Observe(ev Event) {
	for _, obs := range o {
		if obs != nil {
			obs.Observe(ev)
		}
	}
}

// Recorder keeps every event it observes, in order.
type Recorder struct {
	Events []Event
}

// Observe appends ev.
func (r *Recorder) Observe(ev Event) { r.Events = append(r.Events, ev) }

// OfKind returns the recorded events with the given kind.
func (r *Recorder) OfKind(k Kind) []Event {
	var out []Event
	for _, ev := range r.Events {
		if ev.Kind == k {
			out = append(out, ev)
		}
	}
	return out
}

// Reset drops every recorded event.
func (r *Recorder) Reset() { r.Events = nil }
