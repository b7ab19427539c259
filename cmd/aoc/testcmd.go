package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"aocenv"
)

func runTest(ctx context.Context, log *aocenv.Logger, out io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: aoc test add|list|delete|run")
	}

	env, err := openEnv(log)
	if err != nil {
		return err
	}

	switch args[0] {
	case "add":
		return testAdd(env, out, args[1:])
	case "list":
		return testList(env, out)
	case "delete":
		return testDelete(env, out, args[1:])
	case "run":
		return testRun(ctx, env, log, out)
	default:
		return fmt.Errorf("unknown test command: %s", args[0])
	}
}

func testAdd(env *aocenv.Env, out io.Writer, args []string) error {
	part := 0
	if len(args) > 0 {
		part, _ = strconv.Atoi(args[0])
	}
	if part != 1 && part != 2 {
		answer, err := promptLine("Which part is this test for? (1 or 2) ")
		if err != nil {
			return err
		}
		part, _ = strconv.Atoi(strings.TrimSpace(answer))
		if part != 1 && part != 2 {
			return fmt.Errorf("part must be 1 or 2")
		}
	}

	fmt.Fprintf(out, "--- Adding New Test Case for %d-%02d Part %d ---\n", env.Year(), env.Day(), part)
	fmt.Fprintln(out, "Paste the example input, then end with a line containing only '.':")
	input, err := readUntilDot(os.Stdin)
	if err != nil {
		return err
	}
	if strings.TrimSpace(input) == "" {
		fmt.Fprintln(out, "No input provided. Aborting.")
		return nil
	}
	output, err := promptLine("What is the expected output? ")
	if err != nil {
		return err
	}

	tc := aocenv.TestCase{Input: strings.TrimRight(input, "\n"), Output: strings.TrimSpace(output)}
	if err := env.AddTest(part, tc); err != nil {
		return err
	}
	fmt.Fprintln(out, styleOK.Render("\n✅ Test case added."))
	return nil
}

func testList(env *aocenv.Env, out io.Writer) error {
	fmt.Fprintln(out, styleBold.Render(fmt.Sprintf("--- Test Cases for %d-%02d ---", env.Year(), env.Day())))
	total := 0
	for part := 1; part <= 2; part++ {
		cases, err := env.Tests(part)
		if err != nil {
			return err
		}
		if len(cases) == 0 {
			continue
		}
		total += len(cases)
		fmt.Fprintln(out, styleWarn.Render(fmt.Sprintf("\nPart %d:", part)))
		for i, tc := range cases {
			fmt.Fprintln(out, styleBold.Render(fmt.Sprintf("  Test #%d:", i+1)))
			fmt.Fprintln(out, styleDim.Render("    --- Input ---"))
			for _, line := range strings.Split(tc.Input, "\n") {
				fmt.Fprintf(out, "    %s\n", line)
			}
			fmt.Fprintf(out, "    --- Expected Output ---\n    %s\n", tc.Output)
		}
	}
	if total == 0 {
		fmt.Fprintln(out, "No test cases found. Add one with 'aoc test add'.")
	}
	return nil
}

func testDelete(env *aocenv.Env, out io.Writer, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: aoc test delete PART INDEX")
	}
	part, err := strconv.Atoi(args[0])
	if err != nil || (part != 1 && part != 2) {
		return fmt.Errorf("PART must be 1 or 2")
	}
	index, err := strconv.Atoi(args[1])
	if err != nil || index < 1 {
		return fmt.Errorf("INDEX must be a positive number")
	}
	if err := env.DeleteTest(part, index-1); err != nil {
		return err
	}
	fmt.Fprintln(out, styleOK.Render(fmt.Sprintf("✅ Test #%d for part %d deleted.", index, part)))
	return nil
}

// Patterns for detecting which part notepad.go targets.
var (
	reSubmitPart = regexp.MustCompile(`\.Submit\(\s*[^,]+,\s*[^,]+,\s*([12])\s*\)`)
	reBindPart   = regexp.MustCompile(`\.Bind\(\s*([12])\s*[,)]`)
)

// testRun executes notepad.go once per saved test case in Test Mode,
// counting the PASSED lines in its output.
func testRun(ctx context.Context, env *aocenv.Env, log *aocenv.Logger, out io.Writer) error {
	content, err := os.ReadFile(env.NotepadPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("notepad.go not found")
		}
		return fmt.Errorf("read notepad: %w", err)
	}

	part := 0
	if m := reSubmitPart.FindSubmatch(content); m != nil {
		part, _ = strconv.Atoi(string(m[1]))
	} else if m := reBindPart.FindSubmatch(content); m != nil {
		part, _ = strconv.Atoi(string(m[1]))
	}
	if part == 0 {
		fmt.Fprintln(out, styleErr.Render("Error: could not determine the part from notepad.go."))
		fmt.Fprintln(out, styleErr.Render("Hint: make sure there is an env.Submit(ctx, answer, 1) or env.Bind(1, false) call."))
		return nil
	}

	cases, err := env.Tests(part)
	if err != nil {
		return err
	}
	if len(cases) == 0 {
		fmt.Fprintf(out, "No test cases found for part %d. Add one with 'aoc test add'.\n", part)
		return nil
	}

	fmt.Fprintln(out, styleBold.Render(fmt.Sprintf("--- Running %d Test(s) for Part %d ---", len(cases), part)))
	passed := 0
	for i, tc := range cases {
		fmt.Fprintln(out, styleWarn.Render(fmt.Sprintf("\n--- Test Case #%d ---", i+1)))

		cmd := exec.CommandContext(ctx, "go", "run", env.NotepadPath())
		cmd.Dir = filepath.Dir(env.NotepadPath())
		cmd.Env = append(os.Environ(),
			"AOC_TEST_MODE=true",
			"AOC_TEST_INPUT="+tc.Input,
			"AOC_TEST_OUTPUT="+tc.Output,
		)
		output, err := cmd.CombinedOutput()
		text := strings.TrimSpace(string(output))
		fmt.Fprintln(out, text)
		if err != nil {
			log.Errf("test #%d run failed: %v", i+1, err)
			continue
		}
		if strings.Contains(text, "✅ PASSED") {
			passed++
		}
	}

	summary := fmt.Sprintf("\n--- Summary ---\n%d / %d tests passed.", passed, len(cases))
	if passed == len(cases) {
		fmt.Fprintln(out, styleOK.Render(summary))
	} else {
		fmt.Fprintln(out, styleErr.Render(summary))
	}
	return nil
}

// readUntilDot collects stdin lines until a line containing only ".".
// Blank lines are kept, so multi-block inputs survive.
func readUntilDot(r io.Reader) (string, error) {
	var sb strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "." {
			break
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
