// Package aocenv manages a local Advent of Code workspace: it resolves
// which puzzle (year, day) is active, fetches and caches puzzle text and
// input, submits answers, tracks star progress, and archives working code
// from the notepad.go scratch file once a part is solved.
//
// # Layout
//
// The workspace root is the current directory, or the path in the
// AOC_ENV_ROOT environment variable. It must be its own directory, not
// the aocenv checkout: notepad.go is a main package and cannot share a
// directory with the library source. Inside it the tool maintains:
//
//	notepad.go       the scratch solution file
//	go.mod           workspace module with a replace directive for aocenv,
//	                 created on first use so "go run notepad.go" resolves
//	solutions/       archived solutions, <year>/<dd>/part_<1|2>.go
//	.cache/          puzzle input/instructions cache, progress record, tests
//	.templates/      user notepad templates
//	.logs/           the aoc.log file
//	config.json      session cookie and auto_* settings
//	.context.json    the persisted puzzle context, if any
//
// # Usage
//
// Solution files open the environment once and use it for input and
// submission:
//
//	env, err := aocenv.Open("", nil)
//	input, err := env.Input(ctx)
//	result, err := env.Submit(ctx, answer, 1)
//
// The aoc CLI (cmd/aoc) wraps the same environment for workspace
// management; run "aoc help" for the command surface.
//
// # Test Mode
//
// When AOC_TEST_MODE=true the environment never touches the network:
// Input returns AOC_TEST_INPUT and Submit compares against
// AOC_TEST_OUTPUT. The "aoc test run" command drives this.
package aocenv
