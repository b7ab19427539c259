package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"

	"aocenv"
)

func runText(ctx context.Context, log *aocenv.Logger, out io.Writer, args []string) error {
	env, err := openEnv(log)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, styleBold.Render(fmt.Sprintf("--- 🗓️ Advent of Code %d - Day %d ---", env.Year(), env.Day())))
	fmt.Fprintln(out)
	text, err := env.Instructions(ctx)
	if err != nil {
		return fmt.Errorf("fetch instructions: %w", err)
	}
	fmt.Fprintln(out, text)
	return nil
}

func runInput(ctx context.Context, log *aocenv.Logger, out io.Writer, args []string) error {
	env, err := openEnv(log)
	if err != nil {
		return err
	}
	log.Infof("getting input for %d-%02d", env.Year(), env.Day())
	input, err := env.Input(ctx)
	if err != nil {
		return fmt.Errorf("fetch input: %w", err)
	}
	fmt.Fprintf(out, "--- Puzzle Input for %d-%02d ---\n", env.Year(), env.Day())
	fmt.Fprint(out, input)
	return nil
}

// runNotepad executes notepad.go with "go run", passing the timing flag
// through the environment.
func runNotepad(ctx context.Context, log *aocenv.Logger, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("run", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var timeIt bool
	fs.BoolVarP(&timeIt, "time", "t", false, "time the execution of the solution")
	if err := fs.Parse(args); err != nil {
		return err
	}

	env, err := openEnv(log)
	if err != nil {
		return err
	}
	if _, err := os.Stat(env.NotepadPath()); err != nil {
		return fmt.Errorf("notepad.go not found at %s", env.NotepadPath())
	}

	log.Infof("executing notepad.go with context %d-%02d", env.Year(), env.Day())
	cmd := exec.CommandContext(ctx, "go", "run", env.NotepadPath())
	cmd.Dir = filepath.Dir(env.NotepadPath())
	cmd.Env = os.Environ()
	if timeIt {
		cmd.Env = append(cmd.Env, "AOC_TIME_IT=true")
	}
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("notepad.go exited with an error: %w", err)
	}
	return nil
}

func runLoad(log *aocenv.Logger, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("load", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var force bool
	fs.BoolVarP(&force, "force", "f", false, "overwrite notepad.go if not empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: aoc load PART [-f]")
	}
	part, err := strconv.Atoi(fs.Arg(0))
	if err != nil || (part != 1 && part != 2) {
		return fmt.Errorf("PART must be 1 or 2")
	}

	env, err := openEnv(log)
	if err != nil {
		return err
	}
	if err := env.LoadSolution(part, force); err != nil {
		if errors.Is(err, aocenv.ErrScratchNotEmpty) && confirm("Warning: notepad.go is not empty! Overwrite it?") {
			err = env.LoadSolution(part, true)
		}
		if err != nil {
			if errors.Is(err, aocenv.ErrScratchNotEmpty) {
				fmt.Fprintln(out, "Load operation cancelled.")
				return nil
			}
			return err
		}
	}
	fmt.Fprintln(out, styleOK.Render(fmt.Sprintf("✅ Loaded part %d for %d-%02d into notepad.go.", part, env.Year(), env.Day())))
	return nil
}

func runStart(log *aocenv.Logger, out io.Writer, args []string) error {
	fs := pflag.NewFlagSet("start", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var force bool
	fs.BoolVarP(&force, "force", "f", false, "overwrite notepad.go if not empty")
	if err := fs.Parse(args); err != nil {
		return err
	}
	name := "default"
	if fs.NArg() > 0 {
		name = fs.Arg(0)
	}
	return loadTemplateInteractive(log, out, name, force)
}

func runClear(log *aocenv.Logger, out io.Writer) error {
	env, err := openEnv(log)
	if err != nil {
		return err
	}
	if err := env.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(out, styleOK.Render("✅ notepad.go has been cleared."))
	return nil
}
