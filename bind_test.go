package aocenv

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scratchProgram = `package main

import (
	"fmt"

	"aocenv"
)

func main() {
	env, _ := aocenv.Open("", nil)
	res, _ := env.Submit(nil, 42, 1)
	fmt.Println(res)
	env.Bind(1, false)
}
`

func TestBindArchivesScratch(t *testing.T) {
	env, _ := newTestEnv(t)
	writeScratch(t, env, scratchProgram)

	require.NoError(t, env.Bind(1, false))

	got, err := os.ReadFile(env.paths.solutionPath(env.year, env.day, 1))
	require.NoError(t, err)

	assert.Contains(t, string(got), "func main()")
	assert.Contains(t, string(got), "env.Submit(nil, 42, 1)")
	assert.NotContains(t, string(got), ".Bind(", "archive must not re-archive itself")
	assert.Regexp(t, `\S\n\z`, string(got), "single trailing newline")
}

func TestBindMissingScratch(t *testing.T) {
	env, _ := newTestEnv(t)

	err := env.Bind(1, false)
	assert.ErrorIs(t, err, errNoScratch)
}

func TestBindInvalidPart(t *testing.T) {
	env, _ := newTestEnv(t)
	writeScratch(t, env, scratchProgram)

	assert.Error(t, env.Bind(0, false))
	assert.Error(t, env.Bind(3, true))
}

func TestBindOverwriteProtection(t *testing.T) {
	env, _ := newTestEnv(t)
	writeScratch(t, env, "package main\n\n// first\nfunc main() {}\n")
	require.NoError(t, env.Bind(2, false))

	writeScratch(t, env, "package main\n\n// second\nfunc main() {}\n")

	// Without overwrite the existing archive survives untouched.
	require.NoError(t, env.Bind(2, false))
	got, err := os.ReadFile(env.paths.solutionPath(env.year, env.day, 2))
	require.NoError(t, err)
	assert.Contains(t, string(got), "first")

	// With overwrite it is replaced.
	require.NoError(t, env.Bind(2, true))
	got, err = os.ReadFile(env.paths.solutionPath(env.year, env.day, 2))
	require.NoError(t, err)
	assert.Contains(t, string(got), "second")
}

func TestBindAutoClear(t *testing.T) {
	env, _ := newTestEnv(t)
	env.cfg.AutoClearOnBind = true
	writeScratch(t, env, scratchProgram)

	require.NoError(t, env.Bind(1, false))

	b, err := os.ReadFile(env.paths.notepadPath())
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestBindKeepsScratchByDefault(t *testing.T) {
	env, _ := newTestEnv(t)
	writeScratch(t, env, scratchProgram)

	require.NoError(t, env.Bind(1, false))

	b, err := os.ReadFile(env.paths.notepadPath())
	require.NoError(t, err)
	assert.Equal(t, scratchProgram, string(b))
}

func TestBindFormatterFailureIsNotFatal(t *testing.T) {
	env, _ := newTestEnv(t)
	env.cfg.AutoFormatOnBind = true

	orig := gofmtCommand
	gofmtCommand = []string{"definitely-not-a-formatter-on-path"}
	t.Cleanup(func() { gofmtCommand = orig })

	writeScratch(t, env, scratchProgram)
	require.NoError(t, env.Bind(1, false))

	_, err := os.Stat(env.paths.solutionPath(env.year, env.day, 1))
	assert.NoError(t, err, "archive must be written even when formatting fails")
}

func TestBindCallPatternStripping(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		removed bool
	}{
		{"bare call", "\tenv.Bind(1, false)", true},
		{"call with assignment", "\terr := env.Bind(2, true)", true},
		{"call with discard", "\t_ = env.Bind(1, false)", true},
		{"indented with spaces", "    env.Bind(1, false)", true},
		{"submit call stays", "\tres, err := env.Submit(ctx, 42, 1)", false},
		{"mention in a string stays", "\tfmt.Println(\"call env.Bind(1, false) next\")", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bindCallPattern.ReplaceAllString(tt.line, "")
			if tt.removed {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.line, got)
			}
		})
	}
}

func TestBindCommitFailureIsNotFatal(t *testing.T) {
	// The workspace is not a git repository, so the commit step fails;
	// the archive must still land.
	env, _ := newTestEnv(t)
	env.cfg.AutoCommitOnBind = true
	writeScratch(t, env, scratchProgram)

	require.NoError(t, env.Bind(1, false))

	_, err := os.Stat(env.paths.solutionPath(env.year, env.day, 1))
	assert.NoError(t, err)
}

func TestBindErrNoScratchMessage(t *testing.T) {
	env, _ := newTestEnv(t)
	err := env.Bind(1, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNoScratch))
}
