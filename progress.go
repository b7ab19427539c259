package aocenv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// progressRecord maps year -> day -> stars earned (0, 1 or 2). Keys are
// strings to match the on-disk JSON shape.
type progressRecord struct {
	Progress map[string]map[string]int `json:"progress"`
}

func emptyProgress() progressRecord {
	return progressRecord{Progress: map[string]map[string]int{}}
}

func (r progressRecord) starsFor(year, day int) int {
	return r.Progress[strconv.Itoa(year)][strconv.Itoa(day)]
}

// raiseStars records stars for a puzzle, never lowering an existing count.
// It reports whether the record changed.
func (r *progressRecord) raiseStars(year, day, stars int) bool {
	if r.Progress == nil {
		r.Progress = map[string]map[string]int{}
	}
	ys := strconv.Itoa(year)
	ds := strconv.Itoa(day)
	if r.Progress[ys] == nil {
		r.Progress[ys] = map[string]int{}
	}
	if stars <= r.Progress[ys][ds] {
		return false
	}
	r.Progress[ys][ds] = stars
	return true
}

// progressStore is the whole-record read-modify-write persistence for the
// local star count. It does no locking: the tool assumes a single user and
// a single process at a time.
type progressStore struct {
	path string
}

func newProgressStore(path string) *progressStore {
	return &progressStore{path: path}
}

// read returns the persisted record, or an empty one when none exists.
func (s *progressStore) read() (progressRecord, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return emptyProgress(), nil
		}
		return progressRecord{}, fmt.Errorf("stat progress: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(s.path), koanfjson.Parser()); err != nil {
		return progressRecord{}, fmt.Errorf("load progress: %w", err)
	}
	rec := emptyProgress()
	if err := k.UnmarshalWithConf("", &rec, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return progressRecord{}, fmt.Errorf("unmarshal progress: %w", err)
	}
	if rec.Progress == nil {
		rec.Progress = map[string]map[string]int{}
	}
	return rec, nil
}

// write overwrites the whole record.
func (s *progressStore) write(rec progressRecord) error {
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir progress dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write temp progress: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace progress: %w", err)
	}
	return nil
}
