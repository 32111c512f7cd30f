// Package roster holds the fixed combat content: player base stats, the
// starting gear options and the enemy templates.
package roster

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/gvd/internal/game/combat"
	"github.com/cory-johannsen/gvd/internal/game/gear"
)

//go:embed catalog.yaml
var embedded []byte

// ErrUnknownGear is returned when a gear id is not in the starting options.
var ErrUnknownGear = errors.New("roster: unknown gear")

// Stats are the base values of an actor before gear.
type Stats struct {
	Health int `yaml:"health"`
	Damage int `yaml:"damage"`
	Armor  int `yaml:"armor"`
}

// Validate requires positive health and non-negative damage and armor.
func (s Stats) Validate() error {
	if s.Health < 1 {
		return fmt.Errorf("health must be >= 1, got %d", s.Health)
	}
	if s.Damage < 0 {
		return fmt.Errorf("damage must be >= 0, got %d", s.Damage)
	}
	if s.Armor < 0 {
		return fmt.Errorf("armor must be >= 0, got %d", s.Armor)
	}
	return nil
}

// GearSpec describes one piece of gear by name, type and tier.
type GearSpec struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Tier string `yaml:"tier"`
}

// Build creates a fresh Gear from the spec.
func (s GearSpec) Build() (*gear.Gear, error) {
	typ, err := gear.ParseType(s.Type)
	if err != nil {
		return nil, err
	}
	tier, err := gear.ParseTier(s.Tier)
	if err != nil {
		return nil, err
	}
	return gear.New(s.Name, typ, tier)
}

// Template defines an enemy archetype.
type Template struct {
	Stats `yaml:",inline"`

	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Gear GearSpec `yaml:"gear"`
}

// Validate checks that the template can produce an equipped actor.
func (t *Template) Validate() error {
	if t.ID == "" {
		return errors.New("enemy template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("enemy template %q: name must not be empty", t.ID)
	}
	if err := t.Stats.Validate(); err != nil {
		return fmt.Errorf("enemy template %q: %w", t.ID, err)
	}
	if _, err := t.Gear.Build(); err != nil {
		return fmt.Errorf("enemy template %q: %w", t.ID, err)
	}
	return nil
}

// Catalog is the full content set for a match.
type Catalog struct {
	Player       Stats      `yaml:"player"`
	DefaultGear  string     `yaml:"default_gear"`
	StartingGear []GearSpec `yaml:"starting_gear"`
	Enemies      []Template `yaml:"enemies"`
}

// Default returns the catalog compiled into the binary.
//
// Postcondition: Returns a validated *Catalog, or an error if the embedded
// content is malformed.
func Default() (*Catalog, error) {
	return LoadFromBytes(embedded)
}

// LoadFromBytes parses and validates a catalog from raw YAML.
func LoadFromBytes(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports every problem in the catalog as one joined error.
func (c *Catalog) Validate() error {
	var errs []error
	if err := c.Player.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if len(c.StartingGear) == 0 {
		errs = append(errs, errors.New("starting_gear must not be empty"))
	}
	seen := make(map[string]bool, len(c.StartingGear))
	for i, g := range c.StartingGear {
		if g.ID == "" {
			errs = append(errs, fmt.Errorf("starting_gear[%d]: id must not be empty", i))
			continue
		}
		if seen[g.ID] {
			errs = append(errs, fmt.Errorf("starting_gear %q: duplicate id", g.ID))
		}
		seen[g.ID] = true
		if _, err := g.Build(); err != nil {
			errs = append(errs, fmt.Errorf("starting_gear %q: %w", g.ID, err))
		}
	}
	if !seen[c.DefaultGear] {
		errs = append(errs, fmt.Errorf("default_gear %q: %w", c.DefaultGear, ErrUnknownGear))
	}
	if len(c.Enemies) == 0 {
		errs = append(errs, errors.New("enemies must not be empty"))
	}
	for i := range c.Enemies {
		if err := c.Enemies[i].Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Gear returns the starting gear option with the given id.
func (c *Catalog) Gear(id string) (GearSpec, error) {
	for _, g := range c.StartingGear {
		if g.ID == id {
			return g, nil
		}
	}
	return GearSpec{}, fmt.Errorf("%q: %w", id, ErrUnknownGear)
}

// ChooseGear returns the option for id, falling back to the default gear when
// id is unknown. The bool reports whether the fallback was used.
func (c *Catalog) ChooseGear(id string) (GearSpec, bool) {
	if g, err := c.Gear(id); err == nil {
		return g, false
	}
	g, _ := c.Gear(c.DefaultGear)
	return g, true
}

// NewPlayer creates the human actor with the given name and starting gear.
//
// Postcondition: The returned actor is equipped and at full health.
func (c *Catalog) NewPlayer(name string, g GearSpec) (*combat.Actor, error) {
	if name == "" {
		return nil, errors.New("roster: player name must not be empty")
	}
	return equip(combat.NewActor(uuid.NewString(), name, c.Player.Health, c.Player.Damage, c.Player.Armor), g)
}

// Spawn creates one fresh, equipped actor per enemy template, in catalog order.
func (c *Catalog) Spawn() ([]*combat.Actor, error) {
	out := make([]*combat.Actor, 0, len(c.Enemies))
	for _, t := range c.Enemies {
		a, err := equip(combat.NewActor(uuid.NewString(), t.Name, t.Health, t.Damage, t.Armor), t.Gear)
		if err != nil {
			return nil, fmt.Errorf("spawning %q: %w", t.ID, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func equip(a *combat.Actor, spec GearSpec) (*combat.Actor, error) {
	g, err := spec.Build()
	if err != nil {
		return nil, err
	}
	if err := a.Equip(g); err != nil {
		return nil, err
	}
	return a, nil
}
