package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aocenv"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(context.Background(), aocenv.NewLogger("", false), &buf, args)
	return buf.String(), err
}

func TestGlobalFlags(t *testing.T) {
	verbose, rest := globalFlags([]string{"-v", "context", "show"})
	assert.True(t, verbose)
	assert.Equal(t, []string{"context", "show"}, rest)

	verbose, rest = globalFlags([]string{"--verbose", "-v", "stats"})
	assert.True(t, verbose)
	assert.Equal(t, []string{"stats"}, rest)

	// A literal -v after the subcommand is an argument, not the global
	// flag, and must reach the subcommand untouched.
	verbose, rest = globalFlags([]string{"start", "-v"})
	assert.False(t, verbose)
	assert.Equal(t, []string{"start", "-v"}, rest)

	verbose, rest = globalFlags(nil)
	assert.False(t, verbose)
	assert.Empty(t, rest)
}

func TestRunNoArgsPrintsUsage(t *testing.T) {
	t.Setenv("AOC_ENV_ROOT", t.TempDir())

	out, err := runCLI(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "context set|show|clear")
}

func TestRunUnknownCommand(t *testing.T) {
	t.Setenv("AOC_ENV_ROOT", t.TempDir())

	_, err := runCLI(t, "frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestContextCommands(t *testing.T) {
	t.Setenv("AOC_ENV_ROOT", t.TempDir())

	out, err := runCLI(t, "context", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No context is currently set.")

	out, err = runCLI(t, "context", "set", "--year", "2020", "--day", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "Context set to year 2020, day 10.")

	out, err = runCLI(t, "context", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "year 2020, day 10")

	out, err = runCLI(t, "context", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Context cleared.")

	out, err = runCLI(t, "context", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No context is currently set.")
}

func TestContextSetShortFlags(t *testing.T) {
	t.Setenv("AOC_ENV_ROOT", t.TempDir())

	out, err := runCLI(t, "context", "set", "-y", "2019", "-d", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "year 2019, day 5")
}

func TestContextSetRejectsInvalid(t *testing.T) {
	t.Setenv("AOC_ENV_ROOT", t.TempDir())

	tests := []struct {
		name string
		args []string
	}{
		{"missing flags", []string{"context", "set"}},
		{"missing day", []string{"context", "set", "--year", "2020"}},
		{"year before the first event", []string{"context", "set", "--year", "2014", "--day", "1"}},
		{"day out of range", []string{"context", "set", "--year", "2020", "--day", "26"}},
		{"unparseable year", []string{"context", "set", "--year", "twenty", "--day", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			assert.Error(t, err)
		})
	}

	// Nothing was persisted by the rejected attempts.
	out, err := runCLI(t, "context", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "No context is currently set.")
}

func TestStartPopulatesNotepad(t *testing.T) {
	root := t.TempDir()
	t.Setenv("AOC_ENV_ROOT", root)

	out, err := runCLI(t, "start")
	require.NoError(t, err)
	assert.Contains(t, out, "notepad.go")

	env, err := aocenv.Open(root, aocenv.NewLogger("", false))
	require.NoError(t, err)
	assert.False(t, env.ScratchEmpty())
}

func TestClearCommand(t *testing.T) {
	root := t.TempDir()
	t.Setenv("AOC_ENV_ROOT", root)

	_, err := runCLI(t, "start")
	require.NoError(t, err)

	_, err = runCLI(t, "clear")
	require.NoError(t, err)

	env, err := aocenv.Open(root, aocenv.NewLogger("", false))
	require.NoError(t, err)
	assert.True(t, env.ScratchEmpty())
}

func TestListEmptyArchive(t *testing.T) {
	t.Setenv("AOC_ENV_ROOT", t.TempDir())

	out, err := runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No solutions have been saved yet.")
}

func TestTemplateListEmpty(t *testing.T) {
	t.Setenv("AOC_ENV_ROOT", t.TempDir())

	out, err := runCLI(t, "template", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No custom templates found.")
}

func TestHelpCommand(t *testing.T) {
	t.Setenv("AOC_ENV_ROOT", t.TempDir())

	out, err := runCLI(t, "help")
	require.NoError(t, err)
	assert.Contains(t, out, "Commands:")
}
