package aocenv

import (
	"fmt"
	"os"
	"path/filepath"
)

// layout maps a workspace root to the fixed file locations the tool
// manages.
type layout struct {
	root string
}

func newLayout(root string) layout {
	return layout{root: root}
}

// WorkspaceRoot returns the workspace root: AOC_ENV_ROOT when set,
// otherwise the current directory.
func WorkspaceRoot() string {
	if root := os.Getenv("AOC_ENV_ROOT"); root != "" {
		return root
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func (l layout) configPath() string   { return filepath.Join(l.root, "config.json") }
func (l layout) contextPath() string  { return filepath.Join(l.root, ".context.json") }
func (l layout) notepadPath() string  { return filepath.Join(l.root, "notepad.go") }
func (l layout) cacheDir() string     { return filepath.Join(l.root, ".cache") }
func (l layout) logsDir() string      { return filepath.Join(l.root, ".logs") }
func (l layout) solutionsDir() string { return filepath.Join(l.root, "solutions") }
func (l layout) templatesDir() string { return filepath.Join(l.root, ".templates") }

func (l layout) progressPath() string {
	return filepath.Join(l.cacheDir(), "progress.json")
}

// solutionPath is the permanent archive location for one puzzle part.
func (l layout) solutionPath(year, day, part int) string {
	return filepath.Join(l.solutionsDir(), fmt.Sprintf("%d", year), fmt.Sprintf("%02d", day), fmt.Sprintf("part_%d.go", part))
}

func (l layout) testsPath(year, day int) string {
	return filepath.Join(l.cacheDir(), "tests", fmt.Sprintf("%d", year), fmt.Sprintf("%02d.json", day))
}

func (l layout) templatePath(name string) string {
	return filepath.Join(l.templatesDir(), name+".go.template")
}

// ensureDirs creates the directories the tool expects, each with a
// .gitkeep so the workspace can be committed empty.
func (l layout) ensureDirs() error {
	for _, dir := range []string{l.cacheDir(), l.logsDir(), l.solutionsDir(), l.templatesDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
		keep := filepath.Join(dir, ".gitkeep")
		if _, err := os.Stat(keep); os.IsNotExist(err) {
			if err := os.WriteFile(keep, nil, 0o644); err != nil {
				return fmt.Errorf("touch %s: %w", keep, err)
			}
		}
	}
	return nil
}
