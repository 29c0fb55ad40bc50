package referee

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/sylvanbot/sylvan/board"
	"github.com/sylvanbot/sylvan/move"
)

func boardText(b *board.Board) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\n", board.NumCells)
	for _, c := range b.Cells() {
		fmt.Fprintf(&sb, "%d %d", c.Index, c.Richness)
		for _, n := range c.Neighbors {
			fmt.Fprintf(&sb, " %d", n)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

const turnText = `3
19
6 12
2 8 0
3
0 2 1 0
7 1 0 1
21 0 1 1
4
WAIT
GROW 0
SEED 0 8
SEED 0 2
`

func TestReadBoardAndTurn(t *testing.T) {
	is := is.New(t)
	r := NewReader(strings.NewReader(boardText(board.Standard()) + turnText))

	b, err := r.ReadBoard()
	is.NoErr(err)
	is.Equal(b.Cell(1).Neighbors, board.Standard().Cell(1).Neighbors)

	turn, err := r.ReadTurn(b, 5)
	is.NoErr(err)
	st := turn.State
	is.Equal(st.Turn, 5)
	is.Equal(st.Day, 3)
	is.Equal(st.Nutrients, 19)
	is.Equal(st.Sun, 6)
	is.Equal(st.Score, 12)
	is.Equal(st.OppSun, 2)
	is.Equal(st.OppScore, 8)
	is.True(!st.OppWaiting)
	is.Equal(st.TreeCount(), 3)

	tr, ok := st.TreeAt(7)
	is.True(ok)
	is.True(!tr.Mine)
	is.True(tr.Dormant)
	is.Equal(tr.Size, 1)
	is.Equal(st.CountMine(0), 1)

	is.Equal(len(turn.Legal), 4)
	is.True(turn.Legal[2].Equals(move.NewSeedMove(0, 8)))

	_, err = r.ReadTurn(b, 6)
	is.Equal(err, io.EOF)
}

func TestReadTurnErrors(t *testing.T) {
	b := board.Standard()
	type testcase struct {
		name string
		in   string
	}
	for _, tc := range []testcase{
		{"sun line short", "3\n19\n6\n"},
		{"tree line short", "3\n19\n6 12\n2 8 0\n1\n0 2 1\n"},
		{"size out of range", "3\n19\n6 12\n2 8 0\n1\n0 4 1 0\n0\n"},
		{"is_mine not a flag", "3\n19\n6 12\n2 8 0\n1\n0 2 2 0\n0\n"},
		{"not a number", "3\n19\n6 12\n2 8 x\n"},
		{"missing tree line", "3\n19\n6 12\n2 8 0\n2\n0 2 1 0\n"},
		{"missing legal move", "3\n19\n6 12\n2 8 0\n0\n2\nWAIT\n"},
		{"unknown legal move", "3\n19\n6 12\n2 8 0\n0\n1\nJUMP 4\n"},
		{"two trees on a cell", "3\n19\n6 12\n2 8 0\n2\n0 2 1 0\n0 1 0 0\n0\n"},
		{"day not a number", "three\n"},
		{"negative day", "-3\n19\n6 12\n2 8 0\n1\n0 2 1 0\n0\n"},
		{"day after the last", "24\n19\n6 12\n2 8 0\n0\n0\n"},
	} {
		_, err := NewReader(strings.NewReader(tc.in)).ReadTurn(b, 1)
		assert.True(t, errors.Is(err, ErrMalformed), "%s: %v", tc.name, err)
	}
}

func TestReadBoardErrors(t *testing.T) {
	good := boardText(board.Standard())
	lines := strings.SplitAfter(good, "\n")
	for _, in := range []string{
		"",
		"36\n" + strings.Join(lines[1:37], ""),
		strings.Join(lines[:20], ""),
		strings.Replace(good, "0 3 1 2 3 4 5 6", "0 3 1 2 3 4 5", 1),
		strings.Replace(good, "0 3 1 2 3 4 5 6", "0 3 1 2 3 4 5 40", 1),
	} {
		_, err := NewReader(strings.NewReader(in)).ReadBoard()
		assert.True(t, errors.Is(err, ErrMalformed), "input %q: %v", in, err)
	}
}

func TestWriteMove(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	is.NoErr(WriteMove(&buf, move.NewSeedMove(4, 13)))
	is.NoErr(WriteMove(&buf, move.NewWaitMove()))
	is.Equal(buf.String(), "SEED 4 13\nWAIT\n")
}
