package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, args ...string) string {
	t.Helper()
	t.Setenv("ARENA_LOGGING_LEVEL", "error")
	t.Setenv("ARENA_MATCH_COLOR", "false")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestCatalogCommand(t *testing.T) {
	out := run(t, "", "catalog")
	assert.Contains(t, out, "[demon_sword]")
	assert.Contains(t, out, "=== Hunter's Bow ===")
	assert.Contains(t, out, "=== Angel Guardian ===")
	assert.Contains(t, out, "Health: 155/155")
}

func TestPlay_SeededMatchUntilInputEnds(t *testing.T) {
	input := "\nTester\n" + strings.Repeat("1\n1\n", 200)
	out := run(t, input, "--gear", "demon_sword", "--seed", "42")

	assert.Contains(t, out, "=== Bloodthirsty Blade ===")
	assert.Contains(t, out, "TURN 1")
	assert.Contains(t, out, "Thanks for playing!")
}

func TestPlay_UnknownGearFallsBack(t *testing.T) {
	out := run(t, "\n", "--name", "Tester", "--gear", "laser", "--seed", "1")
	assert.Contains(t, out, "Invalid choice! Defaulting to Hunter's Bow")
}

func TestPlay_InteractiveGearChoice(t *testing.T) {
	out := run(t, "\nTester\n2\n", "--seed", "1")
	assert.Contains(t, out, "Choose your starting gear:")
	assert.Contains(t, out, "=== Divine Lance ===")
}

func TestPlay_AsksForName(t *testing.T) {
	out := run(t, "\nAlice\n", "--gear", "god_spear", "--seed", "1")
	assert.Contains(t, out, "Enter your character's name:")
	assert.Contains(t, out, "=== Alice ===")
}

func TestPlay_BlankNameDefaults(t *testing.T) {
	out := run(t, "\n\n", "--gear", "god_spear", "--seed", "1")
	assert.Contains(t, out, "=== Hero ===")
}

func TestPlay_NameFlagSkipsPrompt(t *testing.T) {
	out := run(t, "\n", "--name", "Bob", "--gear", "god_spear", "--seed", "1")
	assert.NotContains(t, out, "Enter your character's name:")
	assert.Contains(t, out, "=== Bob ===")
}
