package aocenv

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeGateway is a scriptable stand-in for the puzzle site.
type fakeGateway struct {
	postResponse string
	postErr      error
	postCalls    int

	known    map[int]string
	knownErr error

	fetchData map[dataKind]string
	fetchErr  error

	progress    map[int]map[int]int
	progressErr error
}

func (g *fakeGateway) fetch(_ context.Context, _, _ int, kind dataKind) (string, error) {
	if g.fetchErr != nil {
		return "", g.fetchErr
	}
	return g.fetchData[kind], nil
}

func (g *fakeGateway) postAnswer(_ context.Context, _, _, _ int, _ string) (string, error) {
	g.postCalls++
	if g.postErr != nil {
		return "", g.postErr
	}
	return g.postResponse, nil
}

func (g *fakeGateway) knownAnswers(_ context.Context, _, _ int) (map[int]string, error) {
	if g.knownErr != nil {
		return nil, g.knownErr
	}
	return g.known, nil
}

func (g *fakeGateway) yearProgress(_ context.Context, year int) (map[int]int, error) {
	if g.progressErr != nil {
		return nil, g.progressErr
	}
	return g.progress[year], nil
}

// newTestEnv builds an Env over a temp workspace with the fake gateway
// wired in. Auto settings that shell out are disabled so tests stay
// hermetic.
func newTestEnv(t *testing.T) (*Env, *fakeGateway) {
	t.Helper()

	root := t.TempDir()
	paths := newLayout(root)
	require.NoError(t, paths.ensureDirs())

	cfg := DefaultConfig()
	cfg.AutoBind = false
	cfg.AutoFormatOnBind = false

	gw := &fakeGateway{}
	env := &Env{
		log:      NewLogger("", false),
		cfg:      cfg,
		paths:    paths,
		flags:    envFlags{},
		year:     2023,
		day:      7,
		contexts: newContextStore(paths.contextPath()),
		progress: newProgressStore(paths.progressPath()),
		gw:       gw,
		timerOut: io.Discard,
	}
	return env, gw
}

func writeScratch(t *testing.T, env *Env, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(env.paths.notepadPath(), []byte(content), 0o644))
}
