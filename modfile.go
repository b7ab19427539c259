package aocenv

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ensureWorkspaceModule writes a minimal go.mod into the workspace so that
// "go run notepad.go" and the archived solution files can resolve their
// import of this library. The library is not published, so the workspace
// module points back at the tool's source checkout with a replace
// directive. An existing go.mod is left untouched; when the checkout
// cannot be located the workspace is left module-less with a warning.
func ensureWorkspaceModule(root string, log *Logger) error {
	path := filepath.Join(root, "go.mod")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	src, ok := librarySourceDir()
	if !ok {
		log.Warn("could not locate the aocenv checkout; write a go.mod with a replace directive for aocenv before running notepad.go")
		return nil
	}
	if same, err := sameDir(root, src); err == nil && same {
		// The checkout itself cannot double as a workspace: notepad.go
		// would collide with the library package.
		log.Warn("the workspace root is the aocenv checkout; use a separate directory (or set AOC_ENV_ROOT)")
		return nil
	}

	content := fmt.Sprintf("module aoc-workspace\n\ngo 1.24\n\nrequire aocenv v0.0.0\n\nreplace aocenv => %s\n", src)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write workspace go.mod: %w", err)
	}
	log.Infof("created workspace go.mod pointing aocenv at %s", src)
	return nil
}

// librarySourceDir reports the directory holding this library's source, as
// recorded at build time. Valid as long as the binary runs from the
// checkout it was built in, which is how "go run ./cmd/aoc" and a local
// "go build" behave.
func librarySourceDir() (string, bool) {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "", false
	}
	dir := filepath.Dir(file)
	if _, err := os.Stat(filepath.Join(dir, "go.mod")); err != nil {
		return "", false
	}
	return dir, true
}

func sameDir(a, b string) (bool, error) {
	ia, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	ib, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(ia, ib), nil
}
