package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/cory-johannsen/gvd/internal/game/combat"
	"github.com/cory-johannsen/gvd/internal/game/gear"
	"github.com/cory-johannsen/gvd/internal/game/match"
)

// Renderer writes match output to a terminal. It implements combat.Observer.
type Renderer struct {
	w   io.Writer
	pal Palette
	err error
}

// NewRenderer creates a Renderer writing to w; color enables ANSI styling.
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, pal: Palette{Enabled: color}}
}

// Err returns the first write error, if any.
func (r *Renderer) Err() error { return r.err }

func (r *Renderer) println(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s+"\n")
}

// Print writes s followed by a newline.
func (r *Renderer) Print(s string) { r.println(s) }

// Prompt writes s without a trailing newline.
func (r *Renderer) Prompt(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

var eventColors = map[combat.Kind]string{
	combat.KindDamage:           Red,
	combat.KindPoisonTick:       Green,
	combat.KindPoisoned:         Green,
	combat.KindPoisonCleared:    Green,
	combat.KindHeal:             BrightGreen,
	combat.KindRestrained:       Magenta,
	combat.KindRestrainedSkip:   Magenta,
	combat.KindDodge:            BrightYellow,
	combat.KindHolyBonus:        BrightYellow,
	combat.KindWorshipperGained: Yellow,
	combat.KindExecution:        BrightRed,
	combat.KindDeathBlow:        BrightRed,
	combat.KindSoulGained:       BrightRed,
	combat.KindAbilityUsed:      BrightCyan,
	combat.KindDiagnostic:       Yellow,
}

// Observe implements combat.Observer.
func (r *Renderer) Observe(ev combat.Event) {
	switch ev.Kind {
	case combat.KindRoundStart:
		r.println("")
		r.println(r.pal.Colorf(Bold+Cyan, "========== TURN %d ==========", ev.Amount))
	case combat.KindDefeated:
		r.println(r.pal.Colorize(Bold, ev.Narrative))
	case combat.KindDiagnostic:
		r.println(r.pal.Colorf(Yellow, "%s. Skipping turn...", ev.Narrative))
	case combat.KindMatchEnd:
		r.Banner(ev.Narrative)
	default:
		if c, ok := eventColors[ev.Kind]; ok {
			r.println(r.pal.Colorize(c, ev.Narrative))
			return
		}
		r.println(ev.Narrative)
	}
}

// Banner writes title framed by rules.
func (r *Renderer) Banner(title string) {
	rule := strings.Repeat("=", len(title)+8)
	r.println("")
	r.println(r.pal.Colorize(BrightYellow, rule))
	r.println(r.pal.Colorize(Bold+BrightYellow, "    "+title))
	r.println(r.pal.Colorize(BrightYellow, rule))
}

// Gear writes the type, tier, bonuses and abilities of g.
func (r *Renderer) Gear(g *gear.Gear) {
	r.println("")
	r.println(r.pal.Colorf(Bold, "=== %s ===", g.Name()))
	r.println(fmt.Sprintf("Type: %s", g.Type()))
	r.println("Level: " + r.pal.Colorize(TierColor(g.Tier()), g.Tier().String()))
	r.println(fmt.Sprintf("Health Bonus: +%d", g.HealthBonus()))
	r.println(fmt.Sprintf("Armor Bonus: +%d", g.ArmorBonus()))
	r.println(fmt.Sprintf("Damage Bonus: +%d", g.DamageBonus()))
	if abilities := g.Abilities(); len(abilities) > 0 {
		names := make([]string, len(abilities))
		for i, a := range abilities {
			names[i] = a.String()
		}
		r.println("Abilities: " + strings.Join(names, ", "))
	}
}

// Status writes the combat state of one actor.
func (r *Renderer) Status(v match.ActorView) {
	r.println("")
	r.println(r.pal.Colorf(Bold, "=== %s ===", v.Name))
	r.println(fmt.Sprintf("Health: %d/%d", v.HP, v.MaxHP))
	r.println(fmt.Sprintf("Damage: %d", v.Damage))
	r.println(fmt.Sprintf("Armor: %d", v.Armor))
	if v.GearName != "" {
		r.println(fmt.Sprintf("Equipped: %s (%s)", v.GearName, r.pal.Colorize(TierColor(v.Tier), v.Tier.String())))
	}
	if v.Souls > 0 {
		r.println(fmt.Sprintf("Souls collected: %d", v.Souls))
	}
	if v.Worshippers > 0 {
		r.println(fmt.Sprintf("Worshippers: %d", v.Worshippers))
	}
	if v.Poisoned {
		r.println(r.pal.Colorf(Green, "Poisoned (%d turns)", v.PoisonTurns))
	}
	if v.Restrained {
		r.println(r.pal.Colorize(Magenta, "Restrained"))
	}
}

// Result writes the closing summary of a finished match.
func (r *Renderer) Result(res match.Result) {
	r.println(fmt.Sprintf("Rounds fought: %d", res.Rounds))
	r.Status(res.Player)
}
