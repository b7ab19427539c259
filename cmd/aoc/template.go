package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"aocenv"
)

func runTemplate(log *aocenv.Logger, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: aoc template save|load|list|delete")
	}

	switch args[0] {
	case "save":
		fs := pflag.NewFlagSet("template save", pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		var force bool
		fs.BoolVarP(&force, "force", "f", false, "overwrite an existing template")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return fmt.Errorf("usage: aoc template save NAME [-f]")
		}
		env, err := openEnv(log)
		if err != nil {
			return err
		}
		if err := env.SaveTemplate(fs.Arg(0), force); err != nil {
			return err
		}
		fmt.Fprintln(out, styleOK.Render(fmt.Sprintf("✅ Template %q saved.", fs.Arg(0))))
		return nil

	case "load":
		fs := pflag.NewFlagSet("template load", pflag.ContinueOnError)
		fs.SetOutput(io.Discard)
		var force bool
		fs.BoolVarP(&force, "force", "f", false, "overwrite notepad.go if not empty")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if fs.NArg() != 1 {
			return fmt.Errorf("usage: aoc template load NAME [-f]")
		}
		return loadTemplateInteractive(log, out, fs.Arg(0), force)

	case "list":
		env, err := openEnv(log)
		if err != nil {
			return err
		}
		names, err := env.ListTemplates()
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(out, "No custom templates found.")
			return nil
		}
		fmt.Fprintln(out, styleBold.Render("--- Custom Templates ---"))
		for _, name := range names {
			fmt.Fprintf(out, "  - %s\n", name)
		}
		return nil

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: aoc template delete NAME")
		}
		env, err := openEnv(log)
		if err != nil {
			return err
		}
		if !confirm(fmt.Sprintf("Are you sure you want to delete the template %q?", args[1])) {
			fmt.Fprintln(out, "Delete operation cancelled.")
			return nil
		}
		if err := env.DeleteTemplate(args[1]); err != nil {
			return err
		}
		fmt.Fprintln(out, styleOK.Render(fmt.Sprintf("✅ Template %q deleted.", args[1])))
		return nil

	default:
		return fmt.Errorf("unknown template command: %s", args[0])
	}
}

// loadTemplateInteractive loads a template, asking before clobbering a
// non-empty notepad.
func loadTemplateInteractive(log *aocenv.Logger, out io.Writer, name string, force bool) error {
	env, err := openEnv(log)
	if err != nil {
		return err
	}
	err = env.LoadTemplate(name, force)
	if errors.Is(err, aocenv.ErrScratchNotEmpty) {
		fmt.Fprintln(out, styleWarn.Render("Warning: notepad.go is not empty!"))
		if !confirm("Do you want to overwrite its contents?") {
			fmt.Fprintln(out, "Load operation cancelled.")
			return nil
		}
		err = env.LoadTemplate(name, true)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, styleOK.Render(fmt.Sprintf("✅ Template %q loaded into notepad.go.", name)))
	return nil
}
