// Package condition tracks the transient status effects applied to actors.
package condition

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// ID names a status condition.
type ID string

const (
	// Poisoned deals TickDamage at every status tick for a fixed number of rounds.
	Poisoned ID = "poisoned"
	// Restrained blocks the holder's next action, then clears.
	Restrained ID = "restrained"
)

// Expiry is how a condition runs out.
type Expiry int

const (
	// ExpireRounds conditions count down once per status tick.
	ExpireRounds Expiry = iota
	// ExpireOnAction conditions are removed the first time the holder would act.
	ExpireOnAction
)

// UnmarshalYAML accepts "rounds" or "on_action".
func (e *Expiry) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "rounds":
		*e = ExpireRounds
	case "on_action":
		*e = ExpireOnAction
	default:
		return fmt.Errorf("line %d: unknown expiry %q", node.Line, s)
	}
	return nil
}

// Def is the static definition of a condition, loaded from YAML.
type Def struct {
	ID     ID     `yaml:"id"`
	Name   string `yaml:"name"`
	Expiry Expiry `yaml:"expiry"`
	// Rounds is the starting duration for ExpireRounds conditions.
	Rounds int `yaml:"rounds"`
	// TickDamage is raw health lost at each status tick; it bypasses armor.
	TickDamage int `yaml:"tick_damage"`
}

//go:embed conditions.yaml
var builtin []byte

var defs = mustLoad(builtin)

// LoadDefs parses a YAML list of condition definitions keyed by ID.
//
// Postcondition: every returned Def has a non-empty ID and Name, a unique ID,
// and a positive Rounds when it expires by rounds.
func LoadDefs(data []byte) (map[ID]*Def, error) {
	var list []*Def
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&list); err != nil {
		return nil, fmt.Errorf("parsing conditions: %w", err)
	}
	out := make(map[ID]*Def, len(list))
	for _, d := range list {
		switch {
		case d.ID == "":
			return nil, fmt.Errorf("condition %q: id must not be empty", d.Name)
		case d.Name == "":
			return nil, fmt.Errorf("condition %q: name must not be empty", d.ID)
		case d.Expiry == ExpireRounds && d.Rounds < 1:
			return nil, fmt.Errorf("condition %q: rounds must be >= 1, got %d", d.ID, d.Rounds)
		}
		if _, dup := out[d.ID]; dup {
			return nil, fmt.Errorf("condition %q: defined twice", d.ID)
		}
		out[d.ID] = d
	}
	return out, nil
}

func mustLoad(data []byte) map[ID]*Def {
	m, err := LoadDefs(data)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup returns the Def for id, or (nil, false) if id is not a known condition.
func Lookup(id ID) (*Def, bool) {
	d, ok := defs[id]
	return d, ok
}

// All returns every known Def ordered by ID.
func All() []*Def {
	out := make([]*Def, 0, len(defs))
	for _, d := range defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
