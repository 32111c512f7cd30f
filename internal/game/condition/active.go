package condition

import (
	"fmt"
	"sort"
)

// Active tracks one applied condition on an actor.
type Active struct {
	Def *Def
	// Remaining is the rounds left for ExpireRounds conditions; 0 otherwise.
	Remaining int
}

// Tick reports what one status tick did to a single condition.
type Tick struct {
	ID ID
	// Damage is the raw health loss the holder takes for this tick.
	Damage int
	// Remaining is the rounds left after the decrement.
	Remaining int
	// Expired is true when the condition was removed by this tick.
	Expired bool
}

// Set holds all conditions currently applied to one actor.
// It is not safe for concurrent use; the caller must serialise access.
type Set struct {
	active map[ID]*Active
}

// NewSet creates an empty Set.
func NewSet() *Set {
	return &Set{active: make(map[ID]*Active)}
}

// Apply adds the condition, or resets its duration when already present.
//
// Postcondition: Has(id) is true; Remaining(id) equals the Def's Rounds.
func (s *Set) Apply(id ID) error {
	def, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("condition: unknown condition %q", id)
	}
	remaining := 0
	if def.Expiry == ExpireRounds {
		remaining = def.Rounds
	}
	s.active[id] = &Active{Def: def, Remaining: remaining}
	return nil
}

// Has reports whether the condition is currently active.
func (s *Set) Has(id ID) bool {
	_, ok := s.active[id]
	return ok
}

// Remaining returns the rounds left on id, or 0 if it is not active.
func (s *Set) Remaining(id ID) int {
	if ac, ok := s.active[id]; ok {
		return ac.Remaining
	}
	return 0
}

// Remove deletes the condition. Removing an absent condition is a no-op.
func (s *Set) Remove(id ID) {
	delete(s.active, id)
}

// Tick advances every ExpireRounds condition by one round in ID order.
// Each ticked condition reports its damage; conditions reaching 0 are removed.
//
// Postcondition: For every returned Tick with Expired set, Has(ID) is false.
func (s *Set) Tick() []Tick {
	var ticks []Tick
	for _, id := range s.ids() {
		ac := s.active[id]
		if ac.Def.Expiry != ExpireRounds {
			continue
		}
		ac.Remaining--
		tk := Tick{ID: id, Damage: ac.Def.TickDamage, Remaining: ac.Remaining}
		if ac.Remaining <= 0 {
			tk.Remaining = 0
			tk.Expired = true
			delete(s.active, id)
		}
		ticks = append(ticks, tk)
	}
	return ticks
}

// ConsumeAction removes every ExpireOnAction condition and reports whether
// any was present, meaning the pending action is blocked.
func (s *Set) ConsumeAction() bool {
	blocked := false
	for id, ac := range s.active {
		if ac.Def.Expiry == ExpireOnAction {
			blocked = true
			delete(s.active, id)
		}
	}
	return blocked
}

// All returns a snapshot of the active conditions ordered by ID.
func (s *Set) All() []Active {
	out := make([]Active, 0, len(s.active))
	for _, id := range s.ids() {
		out = append(out, *s.active[id])
	}
	return out
}

func (s *Set) ids() []ID {
	ids := make([]ID, 0, len(s.active))
	for id := range s.active {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
