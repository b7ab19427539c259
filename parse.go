package aocenv

import (
	"regexp"
	"strconv"
	"strings"
)

// Parser offers the common first moves on a puzzle input: lines, blank
// line separated blocks, integer extraction, grids and per-line regex
// captures. It never fails; malformed numbers are simply skipped.
type Parser struct {
	data string
}

// Parse wraps raw puzzle input.
func Parse(data string) *Parser {
	return &Parser{data: data}
}

// String returns the raw input.
func (p *Parser) String() string { return p.data }

// Lines returns the non-empty lines.
func (p *Parser) Lines() []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(p.data), "\n") {
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Blocks returns the input split on blank lines, each block trimmed.
func (p *Parser) Blocks() []*Parser {
	var out []*Parser
	for _, block := range strings.Split(strings.TrimSpace(p.data), "\n\n") {
		out = append(out, Parse(strings.TrimSpace(block)))
	}
	return out
}

var reInt = regexp.MustCompile(`-?\d+`)

// Ints returns every integer in the input, in order of appearance.
func (p *Parser) Ints() []int {
	var out []int
	for _, m := range reInt.FindAllString(p.data, -1) {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// LineInts returns the integers found on each non-empty line.
func (p *Parser) LineInts() [][]int {
	lines := p.Lines()
	out := make([][]int, len(lines))
	for i, line := range lines {
		out[i] = Parse(line).Ints()
	}
	return out
}

// Fields splits each non-empty line on the separator, trimming each field.
// An empty separator splits on whitespace.
func (p *Parser) Fields(sep string) [][]string {
	lines := p.Lines()
	out := make([][]string, len(lines))
	for i, line := range lines {
		if sep == "" {
			out[i] = strings.Fields(line)
			continue
		}
		parts := strings.Split(line, sep)
		for j, part := range parts {
			parts[j] = strings.TrimSpace(part)
		}
		out[i] = parts
	}
	return out
}

// Extract applies a regex to each non-empty line and returns the capture
// groups of the first match, or nil for lines that do not match.
func (p *Parser) Extract(pattern string) [][]string {
	re := regexp.MustCompile(pattern)
	lines := p.Lines()
	out := make([][]string, len(lines))
	for i, line := range lines {
		if m := re.FindStringSubmatch(line); m != nil {
			out[i] = m[1:]
		}
	}
	return out
}

// Bytes returns the input as a byte grid, one row per non-empty line.
func (p *Parser) Bytes() [][]byte {
	lines := p.Lines()
	out := make([][]byte, len(lines))
	for i, line := range lines {
		out[i] = []byte(line)
	}
	return out
}

// Grid returns the input as a Grid.
func (p *Parser) Grid() *Grid {
	return NewGrid(p.Lines())
}
