package aocenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParserLines(t *testing.T) {
	p := Parse("a\nb\n\nc\n")
	assert.Equal(t, []string{"a", "b", "c"}, p.Lines())
}

func TestParserBlocks(t *testing.T) {
	p := Parse("1\n2\n\n3\n4\n\n5\n")
	blocks := p.Blocks()
	assert.Len(t, blocks, 3)
	assert.Equal(t, []string{"1", "2"}, blocks[0].Lines())
	assert.Equal(t, []string{"3", "4"}, blocks[1].Lines())
	assert.Equal(t, []string{"5"}, blocks[2].Lines())
}

func TestParserInts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"plain list", "1 2 3", []int{1, 2, 3}},
		{"negatives", "x=-4, y=17", []int{-4, 17}},
		{"embedded in text", "move 3 from 12 to 7", []int{3, 12, 7}},
		{"none", "no digits here", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.in).Ints())
		})
	}
}

func TestParserLineInts(t *testing.T) {
	p := Parse("1 2\n3 4 5\n\n6\n")
	assert.Equal(t, [][]int{{1, 2}, {3, 4, 5}, {6}}, p.LineInts())
}

func TestParserFields(t *testing.T) {
	t.Run("custom separator trims fields", func(t *testing.T) {
		p := Parse("a , b\nc ,d\n")
		assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, p.Fields(","))
	})

	t.Run("empty separator splits on whitespace", func(t *testing.T) {
		p := Parse("a  b\tc\n")
		assert.Equal(t, [][]string{{"a", "b", "c"}}, p.Fields(""))
	})
}

func TestParserExtract(t *testing.T) {
	p := Parse("pos=<1,2>\nnope\npos=<3,4>\n")
	got := p.Extract(`pos=<(\d+),(\d+)>`)
	assert.Equal(t, [][]string{{"1", "2"}, nil, {"3", "4"}}, got)
}

func TestParserBytesAndGrid(t *testing.T) {
	p := Parse("ab\ncd\n")
	assert.Equal(t, [][]byte{[]byte("ab"), []byte("cd")}, p.Bytes())

	g := p.Grid()
	assert.Equal(t, 2, g.W)
	assert.Equal(t, 2, g.H)
	assert.Equal(t, byte('c'), g.At(Point{0, 1}))
}

func TestParserString(t *testing.T) {
	assert.Equal(t, "raw\n", Parse("raw\n").String())
}
