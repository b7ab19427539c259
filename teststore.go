package aocenv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// TestCase is one saved example input with its expected output.
type TestCase struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// testSet is the on-disk shape of .cache/tests/<year>/<dd>.json.
type testSet struct {
	Part1 []TestCase `json:"part_1"`
	Part2 []TestCase `json:"part_2"`
}

func (ts *testSet) forPart(part int) *[]TestCase {
	if part == 1 {
		return &ts.Part1
	}
	return &ts.Part2
}

func (e *Env) readTests() (testSet, error) {
	path := e.paths.testsPath(e.year, e.day)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return testSet{}, nil
		}
		return testSet{}, fmt.Errorf("stat tests: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return testSet{}, fmt.Errorf("load tests: %w", err)
	}
	var ts testSet
	if err := k.UnmarshalWithConf("", &ts, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return testSet{}, fmt.Errorf("unmarshal tests: %w", err)
	}
	return ts, nil
}

func (e *Env) writeTests(ts testSet) error {
	path := e.paths.testsPath(e.year, e.day)
	if ts.Part1 == nil {
		ts.Part1 = []TestCase{}
	}
	if ts.Part2 == nil {
		ts.Part2 = []TestCase{}
	}
	b, err := json.MarshalIndent(ts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tests: %w", err)
	}
	b = append(b, '\n')
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir tests dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write temp tests: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace tests: %w", err)
	}
	return nil
}

// AddTest appends a test case for one part of the active puzzle.
func (e *Env) AddTest(part int, tc TestCase) error {
	if part != 1 && part != 2 {
		return errors.New("part must be 1 or 2")
	}
	ts, err := e.readTests()
	if err != nil {
		return err
	}
	cases := ts.forPart(part)
	*cases = append(*cases, tc)
	return e.writeTests(ts)
}

// Tests returns the saved test cases for one part of the active puzzle.
func (e *Env) Tests(part int) ([]TestCase, error) {
	if part != 1 && part != 2 {
		return nil, errors.New("part must be 1 or 2")
	}
	ts, err := e.readTests()
	if err != nil {
		return nil, err
	}
	return *ts.forPart(part), nil
}

// DeleteTest removes the test case at the zero-based index for one part.
func (e *Env) DeleteTest(part, index int) error {
	if part != 1 && part != 2 {
		return errors.New("part must be 1 or 2")
	}
	ts, err := e.readTests()
	if err != nil {
		return err
	}
	cases := ts.forPart(part)
	if index < 0 || index >= len(*cases) {
		return fmt.Errorf("test #%d for part %d does not exist", index+1, part)
	}
	*cases = append((*cases)[:index], (*cases)[index+1:]...)
	return e.writeTests(ts)
}
