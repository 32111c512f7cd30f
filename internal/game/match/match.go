// Package match runs the turn controller: one human actor against a roster of
// scripted actors until one side has no living members.
package match

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"go.uber.org/zap"

	"github.com/cory-johannsen/gvd/internal/game/combat"
	"github.com/cory-johannsen/gvd/internal/game/dice"
	"github.com/cory-johannsen/gvd/internal/game/gear"
)

const playerHealAmount = 20

// Setup and intent errors.
var (
	ErrNoPlayer      = errors.New("match: player must not be nil")
	ErrNoEnemies     = errors.New("match: at least one enemy is required")
	ErrNoGear        = errors.New("match: every actor must have gear equipped")
	ErrInvalidIntent = errors.New("invalid choice")
)

// Outcome is the terminal result of a match.
type Outcome int

const (
	OutcomeNone Outcome = iota
	Victory
	Defeat
)

// String returns a human-readable outcome label.
func (o Outcome) String() string {
	switch o {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "none"
	}
}

// Result summarises a finished match.
type Result struct {
	Outcome Outcome
	Rounds  int
	Player  ActorView
}

// Roller is the randomness used by the controller; *dice.Roller satisfies it.
type Roller interface {
	combat.Source
	Roll(expr dice.Expression) dice.RollResult
}

// Match owns the actor roster for the duration of one fight.
// It is not safe for concurrent use.
type Match struct {
	player  *combat.Actor
	enemies []*combat.Actor
	human   IntentSource
	roller  Roller
	res     *combat.Resolver
	logger  *zap.Logger
	machine *fsm.FSM

	round          int
	outcome        Outcome
	playerReported bool
}

// Option configures a Match.
type Option func(*matchOptions)

type matchOptions struct {
	observer combat.Observer
	logger   *zap.Logger
}

// WithObserver routes every engine event to obs.
func WithObserver(obs combat.Observer) Option {
	return func(o *matchOptions) { o.observer = obs }
}

// WithLogger sets the logger for state transitions and the final outcome.
func WithLogger(l *zap.Logger) Option {
	return func(o *matchOptions) { o.logger = l }
}

// New creates a match between player and enemies. The match takes ownership of
// every actor.
//
// Precondition: human and roller must be non-nil.
// Postcondition: Returns ErrNoPlayer, ErrNoEnemies or ErrNoGear on invalid setup.
func New(player *combat.Actor, enemies []*combat.Actor, human IntentSource, roller Roller, opts ...Option) (*Match, error) {
	if player == nil {
		return nil, ErrNoPlayer
	}
	if len(enemies) == 0 {
		return nil, ErrNoEnemies
	}
	if player.Gear() == nil {
		return nil, fmt.Errorf("%s: %w", player.Name, ErrNoGear)
	}
	for _, e := range enemies {
		if e == nil {
			return nil, errors.New("match: enemy must not be nil")
		}
		if e.Gear() == nil {
			return nil, fmt.Errorf("%s: %w", e.Name, ErrNoGear)
		}
	}

	o := matchOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	m := &Match{
		player:  player,
		enemies: append([]*combat.Actor(nil), enemies...),
		human:   human,
		roller:  roller,
		res:     combat.NewResolver(roller, o.observer),
		logger:  o.logger,
	}
	m.machine = newMachine(m.logger, func() int { return m.round })
	return m, nil
}

// State returns the current turn state.
func (m *Match) State() string { return m.machine.Current() }

// Round returns the number of the current round, starting at 1.
func (m *Match) Round() int { return m.round }

// Player returns the human actor.
func (m *Match) Player() *combat.Actor { return m.player }

// Enemies returns the enemies still on the roster.
func (m *Match) Enemies() []*combat.Actor {
	return append([]*combat.Actor(nil), m.enemies...)
}

// Snapshot captures the roster state offered to the human player.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{Round: m.round, Player: View(m.player)}
	for _, e := range combat.Living(m.enemies) {
		s.Enemies = append(s.Enemies, View(e))
	}
	return s
}

// Run plays rounds until victory or defeat.
//
// Postcondition: On nil error the returned Result has a terminal Outcome.
// A non-nil error means the intent source failed or ctx was cancelled.
func (m *Match) Run(ctx context.Context) (Result, error) {
	for m.machine.Current() != StateFinished {
		if err := m.Step(ctx); err != nil {
			return Result{}, err
		}
	}
	return m.result(), nil
}

// PlayRound advances through one full round and reports whether the match ended.
func (m *Match) PlayRound(ctx context.Context) (bool, error) {
	for {
		if err := m.Step(ctx); err != nil {
			return false, err
		}
		switch m.machine.Current() {
		case StateFinished:
			return true, nil
		case StateRoundStart:
			return false, nil
		}
	}
}

// Step performs the work of the current state and moves to the next one.
func (m *Match) Step(ctx context.Context) error {
	var next string
	switch m.machine.Current() {
	case StateRoundStart:
		if err := ctx.Err(); err != nil {
			return err
		}
		m.startRound()
		next = eventTick
	case StateStatusTick:
		m.statusTick()
		next = eventAct
	case StateActiveAction:
		if err := m.playerTurn(ctx); err != nil {
			return err
		}
		next = eventCleanup
	case StateActiveCleanup:
		m.cleanup()
		next = eventReact
	case StateReactiveAction:
		m.scriptedTurns()
		next = eventCleanup
	case StateReactiveCleanup:
		m.cleanup()
		next = eventCheck
	case StateCheckEnd:
		next = eventNextRound
		if m.checkEnd() {
			next = eventFinish
		}
	case StateFinished:
		return nil
	}
	if err := m.machine.Event(ctx, next); err != nil {
		return fmt.Errorf("match: transition %q from %q: %w", next, m.machine.Current(), err)
	}
	return nil
}

func (m *Match) startRound() {
	m.round++
	m.res.SetRound(m.round)
	m.res.Emit(combat.Event{
		Kind:      combat.KindRoundStart,
		Amount:    m.round,
		Narrative: fmt.Sprintf("TURN %d", m.round),
	})
}

// statusTick advances poison on the player, then on each enemy in roster order.
func (m *Match) statusTick() {
	m.res.TickStatus(m.player)
	for _, e := range m.enemies {
		m.res.TickStatus(e)
	}
}

// playerTurn asks the human for intents until one consumes the turn.
func (m *Match) playerTurn(ctx context.Context) error {
	if !m.player.IsAlive() {
		return nil
	}
	if m.res.SkipRestrained(m.player) {
		return nil
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		view := m.Snapshot()
		in, err := m.human.Choose(ctx, view)
		if err != nil {
			return fmt.Errorf("choosing intent: %w", err)
		}
		if in.Kind == IntentInspect {
			m.human.Inspect(view)
			continue
		}
		if err := m.resolveIntent(in); err != nil {
			m.res.Diagnose(m.player, err)
		}
		return nil
	}
}

func (m *Match) resolveIntent(in Intent) error {
	switch in.Kind {
	case IntentAttack:
		target, err := m.target(in.Target)
		if err != nil {
			return err
		}
		m.res.Attack(m.player, target)
		return nil

	case IntentAbility:
		abilities := m.player.Abilities()
		if len(abilities) == 0 {
			return fmt.Errorf("no special abilities available: %w", combat.ErrUnknownAbility)
		}
		if in.Ability < 0 || in.Ability >= len(abilities) {
			return fmt.Errorf("ability %d of %d: %w", in.Ability+1, len(abilities), combat.ErrUnknownAbility)
		}
		ability := abilities[in.Ability]
		var target *combat.Actor
		if ability.Targeted() {
			t, err := m.target(in.Target)
			if err != nil {
				return err
			}
			target = t
		}
		return m.res.UseAbility(m.player, ability, target, m.enemies)

	case IntentHeal:
		m.res.Heal(m.player, playerHealAmount)
		return nil
	}
	return fmt.Errorf("%w: %s action", ErrInvalidIntent, in.Kind)
}

// target resolves an index into the living enemy roster.
func (m *Match) target(i int) (*combat.Actor, error) {
	living := combat.Living(m.enemies)
	if len(living) == 0 {
		return nil, combat.ErrEmptyRoster
	}
	if i < 0 || i >= len(living) {
		return nil, fmt.Errorf("target %d of %d: %w", i+1, len(living), combat.ErrInvalidTargetIndex)
	}
	return living[i], nil
}

// cleanup removes defeated enemies; a living Demon-tier player collects a soul for each.
func (m *Match) cleanup() {
	kept := make([]*combat.Actor, 0, len(m.enemies))
	for _, e := range m.enemies {
		if e.IsAlive() {
			kept = append(kept, e)
			continue
		}
		m.reportDefeat(e)
		if m.player.Tier() == gear.Demon && m.player.IsAlive() {
			m.res.GainSoul(m.player, "Soul stolen!")
		}
	}
	m.enemies = kept
	if !m.player.IsAlive() && !m.playerReported {
		m.playerReported = true
		m.reportDefeat(m.player)
	}
}

func (m *Match) reportDefeat(a *combat.Actor) {
	m.res.Emit(combat.Event{
		Kind:      combat.KindDefeated,
		ActorID:   a.ID,
		Actor:     a.Name,
		MaxHP:     a.MaxHealth(),
		Narrative: fmt.Sprintf("%s has been defeated!", a.Name),
	})
}

// checkEnd records the outcome and reports whether the match is over.
func (m *Match) checkEnd() bool {
	switch {
	case !m.player.IsAlive():
		m.outcome = Defeat
	case len(m.enemies) == 0:
		m.outcome = Victory
	default:
		return false
	}
	narrative := "VICTORY! YOU ARE THE CHAMPION!"
	if m.outcome == Defeat {
		narrative = "DEFEAT! BETTER LUCK NEXT TIME"
	}
	m.res.Emit(combat.Event{
		Kind:      combat.KindMatchEnd,
		ActorID:   m.player.ID,
		Actor:     m.player.Name,
		Amount:    int(m.outcome),
		HP:        m.player.CurrentHealth(),
		MaxHP:     m.player.MaxHealth(),
		Narrative: narrative,
	})
	m.logger.Info("match finished",
		zap.String("outcome", m.outcome.String()),
		zap.Int("rounds", m.round),
		zap.String("player", m.player.Name),
		zap.Int("souls", m.player.Souls),
		zap.Int("worshippers", m.player.Worshippers),
	)
	return true
}

func (m *Match) result() Result {
	return Result{Outcome: m.outcome, Rounds: m.round, Player: View(m.player)}
}
