package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"aocenv"
)

func runSetup(log *aocenv.Logger, out io.Writer) error {
	fmt.Fprintln(out, styleBold.Render("--- Advent of Code Environment Setup ---"))

	// Opening the workspace creates the directory skeleton and the
	// workspace go.mod that lets notepad.go import aocenv.
	if _, err := openEnv(log); err != nil {
		return err
	}
	fmt.Fprintln(out, styleOK.Render(fmt.Sprintf("✅ Workspace initialized at %s", aocenv.WorkspaceRoot())))

	session, err := promptLine("\nPaste your session cookie: ")
	if err != nil {
		return err
	}
	session = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(session), "session="))
	if session == "" {
		return fmt.Errorf("empty session cookie")
	}

	cfg := aocenv.DefaultConfig()
	cfg.Session = session
	cfg.AutoBind = confirmDefault("\nAutomatically archive your code (bind) on a correct submission?", true)
	cfg.AutoClearOnBind = confirmDefault("Automatically clear notepad.go after a successful bind?", false)
	cfg.AutoCommitOnBind = confirmDefault("Automatically commit solutions to git after a successful bind?", true)

	path := filepath.Join(aocenv.WorkspaceRoot(), "config.json")
	if err := aocenv.SaveConfig(path, cfg); err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}
	fmt.Fprintln(out, styleOK.Render(fmt.Sprintf("\n✅ Configuration saved to %s", path)))
	return nil
}

func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stdout, prompt)
	sc := bufio.NewScanner(os.Stdin)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return sc.Text(), nil
}

// confirm asks a yes/no question, defaulting to no.
func confirm(question string) bool {
	return confirmDefault(question, false)
}

func confirmDefault(question string, def bool) bool {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	answer, err := promptLine(fmt.Sprintf("%s %s ", question, hint))
	if err != nil {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return def
	}
}
