package aocenv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrScratchNotEmpty is returned when an operation would overwrite a
// non-empty notepad.go without force. Callers may confirm with the user
// and retry with force set.
var ErrScratchNotEmpty = errors.New("notepad.go is not empty")

// defaultTemplate is the built-in notepad skeleton used when no "default"
// template has been saved.
const defaultTemplate = `package main

import (
	"context"
	"fmt"

	"aocenv"
)

func main() {
	ctx := context.Background()
	env, err := aocenv.Open("", nil)
	if err != nil {
		panic(err)
	}
	defer env.Timed()()

	input, err := env.Input(ctx)
	if err != nil {
		panic(err)
	}

	answer := solve(aocenv.Parse(input))

	result, err := env.Submit(ctx, answer, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(result)
}

func solve(p *aocenv.Parser) any {
	return nil
}
`

// SaveTemplate stores the current notepad.go content under the given
// template name.
func (e *Env) SaveTemplate(name string, force bool) error {
	path := e.paths.templatePath(name)
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("template %q already exists", name)
	}
	content, err := os.ReadFile(e.paths.notepadPath())
	if err != nil {
		return fmt.Errorf("read notepad: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir templates dir: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}

// LoadTemplate writes a template into notepad.go. The built-in skeleton
// backs the "default" name when no saved template shadows it. A non-empty
// notepad is only overwritten with force.
func (e *Env) LoadTemplate(name string, force bool) error {
	content := []byte(defaultTemplate)
	path := e.paths.templatePath(name)
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		content = b
	case name == "default" && errors.Is(err, os.ErrNotExist):
		// fall through to the built-in skeleton
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("template %q not found", name)
	default:
		return fmt.Errorf("read template: %w", err)
	}

	if !e.ScratchEmpty() && !force {
		return ErrScratchNotEmpty
	}
	if err := os.WriteFile(e.paths.notepadPath(), content, 0o644); err != nil {
		return fmt.Errorf("write notepad: %w", err)
	}
	return nil
}

// ListTemplates returns the names of the saved templates, sorted.
func (e *Env) ListTemplates() ([]string, error) {
	entries, err := os.ReadDir(e.paths.templatesDir())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read templates dir: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go.template") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".go.template"))
	}
	sort.Strings(names)
	return names, nil
}

// DeleteTemplate removes a saved template. The "default" name is
// protected so a workspace always has a starting skeleton.
func (e *Env) DeleteTemplate(name string) error {
	if strings.EqualFold(name, "default") {
		return errors.New("the default template is protected")
	}
	path := e.paths.templatePath(name)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("template %q not found", name)
		}
		return fmt.Errorf("delete template: %w", err)
	}
	return nil
}
