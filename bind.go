package aocenv

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// errNoScratch indicates the notepad.go scratch file is absent.
var errNoScratch = errors.New("notepad.go not found")

// bindCallPattern matches lines that are nothing but a call back into
// Bind. Archived copies must not re-archive themselves, so these lines are
// stripped before writing.
var bindCallPattern = regexp.MustCompile(`(?m)^[ \t]*(?:[\w, ]+\s*:?=\s*)?\w+\.Bind\([^)]*\)[ \t]*\r?$`)

// gofmtCommand formats the scratch file in place before archiving.
// Overridable in tests.
var gofmtCommand = []string{"gofmt", "-w"}

// Bind archives the scratch solution to solutions/<year>/<dd>/part_<part>.go.
// An existing archive is only replaced when overwrite is set. Formatting,
// committing and clearing are best effort: their failures are logged and
// reported but never crash the caller, and they never undo the archive.
func (e *Env) Bind(part int, overwrite bool) error {
	if part != 1 && part != 2 {
		err := errors.New("the part argument for Bind must be 1 or 2")
		e.log.Err(err.Error())
		return err
	}

	src := e.paths.notepadPath()
	if _, err := os.Stat(src); err != nil {
		e.log.Err("notepad.go not found")
		return errNoScratch
	}

	e.log.Infof("binding solution for %d-%02d part %d", e.year, e.day, part)

	if e.cfg.AutoFormatOnBind {
		args := append(gofmtCommand[1:], src)
		if out, err := exec.Command(gofmtCommand[0], args...).CombinedOutput(); err != nil {
			e.log.Errf("failed to format notepad.go: %v (%s)", err, strings.TrimSpace(string(out)))
			e.log.Warn("proceeding to bind the unformatted file")
		}
	}

	dest := e.paths.solutionPath(e.year, e.day, part)
	if _, err := os.Stat(dest); err == nil && !overwrite {
		e.log.Warnf("solution already exists at %s, bind with overwrite to replace it", dest)
		return nil
	}

	content, err := os.ReadFile(src)
	if err != nil {
		e.log.Errf("failed to bind solution: %v", err)
		return fmt.Errorf("read notepad: %w", err)
	}
	cleaned := strings.TrimRight(bindCallPattern.ReplaceAllString(string(content), ""), " \t\n\r")

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		e.log.Errf("failed to bind solution: %v", err)
		return fmt.Errorf("mkdir solution dir: %w", err)
	}
	if err := os.WriteFile(dest, []byte(cleaned+"\n"), 0o644); err != nil {
		e.log.Errf("failed to bind solution: %v", err)
		return fmt.Errorf("write solution: %w", err)
	}
	e.log.Okf("solution saved to %s", dest)

	if e.cfg.AutoCommitOnBind {
		if err := gitCommitSolution(e.paths.root, dest, e.year, e.day, part); err != nil {
			e.log.Errf("failed to commit solution: %v", err)
		}
	}

	if e.cfg.AutoClearOnBind {
		e.log.Info("auto-clearing notepad.go")
		if err := e.Clear(); err != nil {
			e.log.Errf("failed to clear notepad.go: %v", err)
		}
	}
	return nil
}

// gitCommitSolution stages the archived file and commits it with a
// generated message. The workspace must already be a git repository.
func gitCommitSolution(root, path string, year, day, part int) error {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	add := exec.Command("git", "add", rel)
	add.Dir = root
	if out, err := add.CombinedOutput(); err != nil {
		return fmt.Errorf("git add: %w (%s)", err, strings.TrimSpace(string(out)))
	}

	msg := fmt.Sprintf("Add solution for %d day %02d part %d", year, day, part)
	commit := exec.Command("git", "commit", "-m", msg)
	commit.Dir = root
	if out, err := commit.CombinedOutput(); err != nil {
		return fmt.Errorf("git commit: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}
