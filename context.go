package aocenv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ValidationError reports a puzzle context that is out of range or not yet
// unlocked. Nothing is persisted when it is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// savedContext is the on-disk shape of .context.json.
type savedContext struct {
	Year int `json:"year"`
	Day  int `json:"day"`
}

// contextStore persists the selected (year, day) pair across runs.
// Validation happens at write time only: a pair read back from disk is
// used verbatim.
type contextStore struct {
	path   string
	latest func() (int, int)
}

func newContextStore(path string) *contextStore {
	return &contextStore{
		path:   path,
		latest: func() (int, int) { return latestPuzzle(time.Now()) },
	}
}

// read returns the saved pair, or ok=false when no context is persisted.
func (s *contextStore) read() (year, day int, ok bool, err error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, 0, false, nil
		}
		return 0, 0, false, fmt.Errorf("read context: %w", err)
	}
	var sc savedContext
	if err := json.Unmarshal(b, &sc); err != nil {
		return 0, 0, false, fmt.Errorf("parse context: %w", err)
	}
	return sc.Year, sc.Day, true, nil
}

// write validates the pair against the calendar and persists it.
func (s *contextStore) write(year, day int) error {
	latestYear, latestDay := s.latest()

	if year < firstPuzzleYear || year > latestYear {
		return &ValidationError{Reason: fmt.Sprintf("year must be between %d and %d", firstPuzzleYear, latestYear)}
	}
	if day < 1 || day > 25 {
		return &ValidationError{Reason: "day must be between 1 and 25"}
	}
	if year == latestYear && day > latestDay {
		return &ValidationError{Reason: fmt.Sprintf(
			"puzzle for %d-%02d is not yet available; the latest is %d-%02d",
			year, day, latestYear, latestDay)}
	}

	b, err := json.Marshal(savedContext{Year: year, Day: day})
	if err != nil {
		return fmt.Errorf("marshal context: %w", err)
	}
	b = append(b, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write temp context: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace context: %w", err)
	}
	return nil
}

// clear removes any saved context, reverting resolution to the calendar.
func (s *contextStore) clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear context: %w", err)
	}
	return nil
}

// resolveContext picks the active (year, day): a persisted pair verbatim
// if one exists, otherwise the latest unlocked puzzle. Called once per
// process; the result is immutable for the Env's lifetime.
func resolveContext(store *contextStore, log *Logger) (year, day int, err error) {
	year, day, ok, err := store.read()
	if err != nil {
		return 0, 0, err
	}
	if ok {
		log.Infof("using persisted context: year %d, day %d", year, day)
		return year, day, nil
	}
	year, day = store.latest()
	log.Info("no context set, defaulting to the latest puzzle")
	return year, day, nil
}
