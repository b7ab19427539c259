package aocenv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// envFlags is the process environment surface, read once at Open and
// immutable afterwards.
type envFlags struct {
	TestMode   bool
	TestInput  string
	TestOutput string
	TimeIt     bool
}

func readEnvFlags() envFlags {
	return envFlags{
		TestMode:   os.Getenv("AOC_TEST_MODE") == "true",
		TestInput:  os.Getenv("AOC_TEST_INPUT"),
		TestOutput: os.Getenv("AOC_TEST_OUTPUT"),
		TimeIt:     os.Getenv("AOC_TIME_IT") == "true",
	}
}

// Env is an opened workspace. The puzzle context is resolved once in Open
// and stays fixed for the Env's lifetime; everything that needs it takes
// it from here rather than from ambient process state.
type Env struct {
	log      *Logger
	cfg      Config
	paths    layout
	flags    envFlags
	year     int
	day      int
	contexts *contextStore
	progress *progressStore
	gw       gateway

	// timerOut receives Timed reports; stdout outside of tests.
	timerOut io.Writer
}

// Open loads the workspace at root (WorkspaceRoot() when empty), resolves
// the active puzzle context and returns the ready environment. A nil
// logger gets a default one writing to the workspace's .logs directory.
func Open(root string, log *Logger) (*Env, error) {
	if root == "" {
		root = WorkspaceRoot()
	}
	paths := newLayout(root)
	if err := paths.ensureDirs(); err != nil {
		return nil, err
	}
	if log == nil {
		log = NewLogger(paths.logsDir(), false)
	}
	if err := ensureWorkspaceModule(root, log); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(paths.configPath())
	if err != nil {
		return nil, err
	}

	contexts := newContextStore(paths.contextPath())
	year, day, err := resolveContext(contexts, log)
	if err != nil {
		return nil, err
	}

	return &Env{
		log:      log,
		cfg:      cfg,
		paths:    paths,
		flags:    readEnvFlags(),
		year:     year,
		day:      day,
		contexts: contexts,
		progress: newProgressStore(paths.progressPath()),
		gw:       newSiteClient(cfg, paths.cacheDir(), log),
		timerOut: os.Stdout,
	}, nil
}

// Year returns the active puzzle year.
func (e *Env) Year() int { return e.year }

// Day returns the active puzzle day.
func (e *Env) Day() int { return e.day }

// Latest returns the most recent puzzle unlocked by the calendar.
func (e *Env) Latest() (year, day int) { return e.contexts.latest() }

// NotepadPath returns the scratch file location.
func (e *Env) NotepadPath() string { return e.paths.notepadPath() }

// Input returns the puzzle input for the active context. In Test Mode it
// returns the fixed example input instead of touching the network.
func (e *Env) Input(ctx context.Context) (string, error) {
	if e.flags.TestMode {
		e.log.Info("TEST MODE: returning example input")
		return e.flags.TestInput, nil
	}
	return e.gw.fetch(ctx, e.year, e.day, dataInput)
}

// Instructions returns the puzzle text for the active context, formatted
// for the terminal.
func (e *Env) Instructions(ctx context.Context) (string, error) {
	return e.gw.fetch(ctx, e.year, e.day, dataInstructions)
}

// InputParser returns a Parser over the puzzle input.
func (e *Env) InputParser(ctx context.Context) (*Parser, error) {
	input, err := e.Input(ctx)
	if err != nil {
		return nil, err
	}
	return Parse(input), nil
}

// SetContext validates and persists a puzzle context for subsequent runs.
// The already-resolved context of this Env does not change.
func (e *Env) SetContext(year, day int) error {
	return e.contexts.write(year, day)
}

// SavedContext reports the persisted context, if any.
func (e *Env) SavedContext() (year, day int, ok bool, err error) {
	return e.contexts.read()
}

// ClearContext removes the persisted context.
func (e *Env) ClearContext() error {
	return e.contexts.clear()
}

// StarsFor returns the locally recorded star count for a puzzle.
func (e *Env) StarsFor(year, day int) (int, error) {
	rec, err := e.progress.read()
	if err != nil {
		return 0, err
	}
	return rec.starsFor(year, day), nil
}

// AllStars returns the whole local progress record keyed by numeric year
// and day.
func (e *Env) AllStars() (map[int]map[int]int, error) {
	rec, err := e.progress.read()
	if err != nil {
		return nil, err
	}
	out := map[int]map[int]int{}
	for ys, days := range rec.Progress {
		year, err := strconv.Atoi(ys)
		if err != nil {
			continue
		}
		for ds, stars := range days {
			day, err := strconv.Atoi(ds)
			if err != nil {
				continue
			}
			if out[year] == nil {
				out[year] = map[int]int{}
			}
			out[year][day] = stars
		}
	}
	return out, nil
}

// Sync scrapes the provider's per-year calendars and overwrites the local
// progress record with the authoritative star counts. Years that fail to
// scrape are logged and skipped.
func (e *Env) Sync(ctx context.Context) error {
	latestYear, _ := e.contexts.latest()
	rec := emptyProgress()
	synced := 0
	for year := firstPuzzleYear; year <= latestYear; year++ {
		stars, err := e.gw.yearProgress(ctx, year)
		if err != nil {
			if errors.Is(err, errNoSession) {
				return err
			}
			e.log.Errf("failed to sync progress for %d: %v", year, err)
			continue
		}
		for day, n := range stars {
			rec.raiseStars(year, day, n)
		}
		synced++
		e.log.Infof("synced progress for %d", year)
	}
	if synced == 0 {
		return fmt.Errorf("sync: no year could be scraped")
	}
	return e.progress.write(rec)
}

// Clear truncates the notepad.go scratch file.
func (e *Env) Clear() error {
	if _, err := os.Stat(e.paths.notepadPath()); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := os.WriteFile(e.paths.notepadPath(), nil, 0o644); err != nil {
		return fmt.Errorf("clear notepad: %w", err)
	}
	e.log.Info("notepad.go has been cleared")
	return nil
}

// ScratchEmpty reports whether notepad.go is missing or blank.
func (e *Env) ScratchEmpty() bool {
	b, err := os.ReadFile(e.paths.notepadPath())
	if err != nil {
		return true
	}
	return len(bytes.TrimSpace(b)) == 0
}
