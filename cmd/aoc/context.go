package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"aocenv"
)

func runContext(log *aocenv.Logger, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: aoc context set|show|clear")
	}

	env, err := openEnv(log)
	if err != nil {
		return err
	}

	switch args[0] {
	case "set":
		fs := pflag.NewFlagSet("context set", pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		var (
			year int
			day  int
		)
		fs.IntVarP(&year, "year", "y", 0, "the puzzle year to set (required)")
		fs.IntVarP(&day, "day", "d", 0, "the puzzle day to set (required)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if year == 0 || day == 0 {
			return fmt.Errorf("usage: aoc context set --year Y --day D")
		}
		if err := env.SetContext(year, day); err != nil {
			return err
		}
		fmt.Fprintln(out, styleOK.Render(fmt.Sprintf("✅ Context set to year %d, day %d.", year, day)))
		return nil

	case "show":
		year, day, ok, err := env.SavedContext()
		if err != nil {
			return err
		}
		if ok {
			fmt.Fprintf(out, "The current context is set to: year %d, day %d\n", year, day)
		} else {
			fmt.Fprintln(out, "No context is currently set.")
			fmt.Fprintln(out, "The tool will default to the latest available puzzle.")
		}
		return nil

	case "clear":
		if err := env.ClearContext(); err != nil {
			return err
		}
		fmt.Fprintln(out, styleOK.Render("✅ Context cleared."))
		fmt.Fprintln(out, "The tool will now default to the latest available puzzle.")
		return nil

	default:
		return fmt.Errorf("unknown context command: %s", args[0])
	}
}
