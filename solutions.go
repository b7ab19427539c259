package aocenv

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// SolutionRef identifies one archived solution file.
type SolutionRef struct {
	Year, Day, Part int
}

func (r SolutionRef) String() string {
	return fmt.Sprintf("%d day %02d part %d", r.Year, r.Day, r.Part)
}

var reSolutionFile = regexp.MustCompile(`^part_([12])\.go$`)

// ListSolutions walks the archive tree and returns every archived part,
// newest puzzle first.
func (e *Env) ListSolutions() ([]SolutionRef, error) {
	var refs []SolutionRef
	root := e.paths.solutionsDir()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		m := reSolutionFile.FindStringSubmatch(d.Name())
		if m == nil {
			return nil
		}
		dir := filepath.Dir(path)
		day, derr := strconv.Atoi(filepath.Base(dir))
		year, yerr := strconv.Atoi(filepath.Base(filepath.Dir(dir)))
		part, _ := strconv.Atoi(m[1])
		if yerr != nil || derr != nil {
			return nil
		}
		refs = append(refs, SolutionRef{Year: year, Day: day, Part: part})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk solutions: %w", err)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Year != refs[j].Year {
			return refs[i].Year > refs[j].Year
		}
		if refs[i].Day != refs[j].Day {
			return refs[i].Day > refs[j].Day
		}
		return refs[i].Part < refs[j].Part
	})
	return refs, nil
}

// LoadSolution copies an archived solution for the active context back
// into notepad.go. A non-empty notepad is only overwritten with force.
func (e *Env) LoadSolution(part int, force bool) error {
	if part != 1 && part != 2 {
		return errors.New("part must be 1 or 2")
	}
	path := e.paths.solutionPath(e.year, e.day, part)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("solution not found at %s", path)
		}
		return fmt.Errorf("read solution: %w", err)
	}
	if !e.ScratchEmpty() && !force {
		return ErrScratchNotEmpty
	}
	if err := os.WriteFile(e.paths.notepadPath(), content, 0o644); err != nil {
		return fmt.Errorf("write notepad: %w", err)
	}
	return nil
}
