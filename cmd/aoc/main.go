// Command aoc manages an Advent of Code workspace: puzzle context, input
// and instructions, answer submission from notepad.go, solution archiving,
// templates, saved test cases and star statistics.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"aocenv"
)

func main() {
	_ = godotenv.Load()

	verbose, args := globalFlags(os.Args[1:])

	root := aocenv.WorkspaceRoot()
	log := aocenv.NewLogger(filepath.Join(root, ".logs"), verbose)

	if err := run(context.Background(), log, os.Stdout, args); err != nil {
		log.Err(err.Error())
		os.Exit(1)
	}
}

// globalFlags consumes the leading -v/--verbose flags. Anything after the
// subcommand belongs to the subcommand, so stripping stops at the first
// other argument.
func globalFlags(args []string) (verbose bool, rest []string) {
	rest = args
	for len(rest) > 0 && (rest[0] == "-v" || rest[0] == "--verbose") {
		verbose = true
		rest = rest[1:]
	}
	return verbose, rest
}

func run(ctx context.Context, log *aocenv.Logger, out io.Writer, args []string) error {
	if len(args) == 0 {
		printUsage(out)
		return nil
	}

	switch args[0] {
	case "help", "-h", "--help":
		printUsage(out)
		return nil
	case "setup":
		return runSetup(log, out)
	case "context":
		return runContext(log, out, args[1:])
	case "template":
		return runTemplate(log, out, args[1:])
	case "test":
		return runTest(ctx, log, out, args[1:])
	case "text":
		return runText(ctx, log, out, args[1:])
	case "input":
		return runInput(ctx, log, out, args[1:])
	case "run":
		return runNotepad(ctx, log, out, args[1:])
	case "load":
		return runLoad(log, out, args[1:])
	case "start":
		return runStart(log, out, args[1:])
	case "clear":
		return runClear(log, out)
	case "list":
		return runList(log, out)
	case "sync":
		return runSync(ctx, log, out)
	case "stats":
		return runStats(log, out)
	default:
		printUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func printUsage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "aoc: Advent of Code workspace manager")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  aoc [-v] COMMAND [flags]")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Commands:")
	_, _ = fmt.Fprintln(w, "  setup                     Interactive configuration wizard")
	_, _ = fmt.Fprintln(w, "  context set|show|clear    Manage the persistent puzzle context")
	_, _ = fmt.Fprintln(w, "  text                      Show the puzzle instructions")
	_, _ = fmt.Fprintln(w, "  input                     Show the puzzle input")
	_, _ = fmt.Fprintln(w, "  run [-t|--time]           Run notepad.go, optionally timed")
	_, _ = fmt.Fprintln(w, "  start [NAME] [-f]         Populate notepad.go from a template")
	_, _ = fmt.Fprintln(w, "  load PART [-f]            Load an archived solution into notepad.go")
	_, _ = fmt.Fprintln(w, "  clear                     Clear notepad.go")
	_, _ = fmt.Fprintln(w, "  list                      List archived solutions")
	_, _ = fmt.Fprintln(w, "  template save|load|list|delete")
	_, _ = fmt.Fprintln(w, "  test add|list|delete|run  Manage and run saved test cases")
	_, _ = fmt.Fprintln(w, "  sync                      Pull star progress from the website")
	_, _ = fmt.Fprintln(w, "  stats                     Show the star table")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Environment:")
	_, _ = fmt.Fprintln(w, "  AOC_ENV_ROOT  Workspace root (default: current directory)")
	_, _ = fmt.Fprintln(w, "  NO_COLOR      Disable colored output")
}

// openEnv opens the workspace rooted per AOC_ENV_ROOT / cwd.
func openEnv(log *aocenv.Logger) (*aocenv.Env, error) {
	return aocenv.Open("", log)
}
