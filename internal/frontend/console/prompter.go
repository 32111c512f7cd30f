package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cory-johannsen/gvd/internal/game/match"
	"github.com/cory-johannsen/gvd/internal/game/roster"
)

// Prompter reads the human player's choices from numbered menus.
// Menu input is 1-based; the intents it returns use 0-based indexes.
type Prompter struct {
	in  *bufio.Reader
	out *Renderer
}

var _ match.IntentSource = (*Prompter)(nil)

// NewPrompter creates a Prompter reading from in and writing menus through out.
func NewPrompter(in io.Reader, out *Renderer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// readLine returns the next line without its line terminator.
// A final line without a newline is returned before io.EOF.
func (p *Prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readChoice prompts and parses a 1-based menu number. Unparseable input yields 0.
func (p *Prompter) readChoice(ctx context.Context) (int, error) {
	p.out.Prompt("Choice: ")
	line, err := p.readLine(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// WaitForStart shows the welcome line and waits for Enter.
func (p *Prompter) WaitForStart(ctx context.Context) error {
	p.out.Print("Welcome to the Terminal Combat Game!")
	p.out.Prompt("Press Enter to start...")
	_, err := p.readLine(ctx)
	return err
}

// AskName asks for the character's name and returns it trimmed.
func (p *Prompter) AskName(ctx context.Context) (string, error) {
	p.out.Prompt("Enter your character's name: ")
	line, err := p.readLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ChooseGear offers the starting gear options and returns the chosen id.
// An out-of-range choice returns the empty id.
func (p *Prompter) ChooseGear(ctx context.Context, options []roster.GearSpec) (string, error) {
	p.out.Print("")
	p.out.Print("Choose your starting gear:")
	for i, g := range options {
		p.out.Print(fmt.Sprintf("%d. %s (%s %s)", i+1, g.Name, strings.ToUpper(g.Tier), titleCase(g.Type)))
	}
	n, err := p.readChoice(ctx)
	if err != nil {
		return "", err
	}
	if n < 1 || n > len(options) {
		return "", nil
	}
	return options[n-1].ID, nil
}

// Choose implements match.IntentSource.
func (p *Prompter) Choose(ctx context.Context, view match.Snapshot) (match.Intent, error) {
	p.out.Status(view.Player)
	p.out.Print("")
	p.out.Print("Choose your action:")
	p.out.Print("1. Attack")
	p.out.Print("2. Use Special Ability")
	p.out.Print("3. Heal (20 HP)")
	p.out.Print("4. View Enemy Status")
	n, err := p.readChoice(ctx)
	if err != nil {
		return match.Intent{}, err
	}

	switch n {
	case 1:
		t, err := p.chooseTarget(ctx, view)
		if err != nil {
			return match.Intent{}, err
		}
		return match.Attack(t), nil
	case 2:
		return p.chooseAbility(ctx, view)
	case 3:
		return match.Heal(), nil
	case 4:
		return match.Inspect(), nil
	}
	return match.Intent{}, nil
}

// Inspect implements match.IntentSource.
func (p *Prompter) Inspect(view match.Snapshot) {
	for _, e := range view.Enemies {
		p.out.Status(e)
	}
}

func (p *Prompter) chooseTarget(ctx context.Context, view match.Snapshot) (int, error) {
	p.out.Print("Choose target:")
	for i, e := range view.Enemies {
		p.out.Print(fmt.Sprintf("%d. %s (HP: %d/%d)", i+1, e.Name, e.HP, e.MaxHP))
	}
	n, err := p.readChoice(ctx)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}

func (p *Prompter) chooseAbility(ctx context.Context, view match.Snapshot) (match.Intent, error) {
	abilities := view.Player.Abilities
	p.out.Print("Special Abilities:")
	for i, a := range abilities {
		label := a.String()
		if a.Passive() {
			label += " (passive)"
		}
		p.out.Print(fmt.Sprintf("%d. %s", i+1, label))
	}
	n, err := p.readChoice(ctx)
	if err != nil {
		return match.Intent{}, err
	}
	idx := n - 1
	if idx < 0 || idx >= len(abilities) || !abilities[idx].Targeted() {
		return match.UseAbility(idx, 0), nil
	}
	t, err := p.chooseTarget(ctx, view)
	if err != nil {
		return match.Intent{}, err
	}
	return match.UseAbility(idx, t), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
