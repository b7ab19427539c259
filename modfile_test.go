package aocenv

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesWorkspaceModule(t *testing.T) {
	root := t.TempDir()

	_, err := Open(root, NewLogger("", false))
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(root, "go.mod"))
	require.NoError(t, err)
	content := string(b)

	assert.Contains(t, content, "module aoc-workspace")
	assert.Contains(t, content, "require aocenv v0.0.0")

	// The replace directive must point at a directory that actually holds
	// the aocenv module, so the template's import resolves under "go run".
	_, after, found := strings.Cut(content, "replace aocenv => ")
	require.True(t, found, "go.mod must carry a replace directive for aocenv")
	target := strings.TrimSpace(strings.SplitN(after, "\n", 2)[0])

	lib, err := os.ReadFile(filepath.Join(target, "go.mod"))
	require.NoError(t, err, "replace target must be a module directory")
	assert.Contains(t, string(lib), "module aocenv")
	assert.Contains(t, defaultTemplate, "\"aocenv\"", "template import must match the replaced module path")
}

func TestOpenKeepsExistingWorkspaceModule(t *testing.T) {
	root := t.TempDir()
	custom := "module my-solutions\n\ngo 1.24\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte(custom), 0o644))

	_, err := Open(root, NewLogger("", false))
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(root, "go.mod"))
	require.NoError(t, err)
	assert.Equal(t, custom, string(b), "a user-managed go.mod must not be rewritten")
}

func TestEnsureWorkspaceModuleSkipsCheckout(t *testing.T) {
	src, ok := librarySourceDir()
	require.True(t, ok)

	// Pointing the workspace at the checkout itself must not clobber the
	// library's own go.mod.
	before, err := os.ReadFile(filepath.Join(src, "go.mod"))
	require.NoError(t, err)

	require.NoError(t, ensureWorkspaceModule(src, NewLogger("", false)))

	after, err := os.ReadFile(filepath.Join(src, "go.mod"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}
