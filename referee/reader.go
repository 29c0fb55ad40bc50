// Package referee speaks the referee's line protocol: the board once at
// startup, then one block of lines per turn, and one move line back.
package referee

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sylvanbot/sylvan/board"
	"github.com/sylvanbot/sylvan/game"
	"github.com/sylvanbot/sylvan/move"
)

var ErrMalformed = errors.New("malformed input")

// Turn is everything the referee sends for one turn.
type Turn struct {
	State *game.State
	// Legal is the referee's own list of legal moves.
	Legal []*move.Move
}

// Reader consumes the protocol one line at a time. Every line is read
// exactly once.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{sc: bufio.NewScanner(r)}
}

func (r *Reader) malformed(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, r.line, fmt.Sprintf(format, args...))
}

// next returns the fields of the next line. io.EOF is only returned when
// the stream ends cleanly.
func (r *Reader) next() ([]string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	r.line++
	return strings.Fields(r.sc.Text()), nil
}

// ints reads a line holding exactly n integers.
func (r *Reader) ints(n int, what string) ([]int, error) {
	fields, err := r.next()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrMalformed, what, io.ErrUnexpectedEOF)
	} else if err != nil {
		return nil, err
	}
	if len(fields) != n {
		return nil, r.malformed("%s: expected %d fields, got %d", what, n, len(fields))
	}
	vals := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, r.malformed("%s: %v", what, err)
		}
		vals[i] = v
	}
	return vals, nil
}

func (r *Reader) flag(v int, what string) (bool, error) {
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, r.malformed("%s must be 0 or 1, got %d", what, v)
}

// ReadBoard reads the startup block: the cell count, then one line per
// cell with its index, richness and six neighbors.
func (r *Reader) ReadBoard() (*board.Board, error) {
	count, err := r.ints(1, "cell count")
	if err != nil {
		return nil, err
	}
	if count[0] < 0 {
		return nil, r.malformed("negative cell count %d", count[0])
	}
	cells := make([]board.Cell, count[0])
	for i := range cells {
		vals, err := r.ints(2+board.NumDirections, "cell")
		if err != nil {
			return nil, err
		}
		cells[i].Index = vals[0]
		cells[i].Richness = vals[1]
		copy(cells[i].Neighbors[:], vals[2:])
	}
	b, err := board.New(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return b, nil
}

// ReadTurn reads one turn's block. It returns io.EOF if the stream ends
// before the turn starts, which is how a game ends.
func (r *Reader) ReadTurn(b *board.Board, turn int) (*Turn, error) {
	fields, err := r.next()
	if err != nil {
		return nil, err
	}
	if len(fields) != 1 {
		return nil, r.malformed("day: expected 1 field, got %d", len(fields))
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, r.malformed("day: %v", err)
	}
	if day < 0 || day > game.LastDay {
		return nil, r.malformed("day %d out of range", day)
	}
	snap := game.Snapshot{Turn: turn, Day: day}

	vals, err := r.ints(1, "nutrients")
	if err != nil {
		return nil, err
	}
	snap.Nutrients = vals[0]

	if vals, err = r.ints(2, "sun and score"); err != nil {
		return nil, err
	}
	snap.Sun, snap.Score = vals[0], vals[1]

	if vals, err = r.ints(3, "opponent sun, score and waiting"); err != nil {
		return nil, err
	}
	snap.OppSun, snap.OppScore = vals[0], vals[1]
	if snap.OppWaiting, err = r.flag(vals[2], "opp_is_waiting"); err != nil {
		return nil, err
	}

	if vals, err = r.ints(1, "tree count"); err != nil {
		return nil, err
	}
	if vals[0] < 0 || vals[0] > board.NumCells {
		return nil, r.malformed("tree count %d out of range", vals[0])
	}
	trees := make([]game.PlacedTree, vals[0])
	for i := range trees {
		tv, err := r.ints(4, "tree")
		if err != nil {
			return nil, err
		}
		mine, err := r.flag(tv[2], "is_mine")
		if err != nil {
			return nil, err
		}
		dormant, err := r.flag(tv[3], "is_dormant")
		if err != nil {
			return nil, err
		}
		trees[i] = game.PlacedTree{Cell: tv[0], Tree: game.Tree{Size: tv[1], Mine: mine, Dormant: dormant}}
	}
	st, err := game.NewState(b, snap, trees)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, r.line, err)
	}

	if vals, err = r.ints(1, "legal move count"); err != nil {
		return nil, err
	}
	if vals[0] < 0 {
		return nil, r.malformed("negative legal move count %d", vals[0])
	}
	legal := make([]*move.Move, 0, vals[0])
	for i := 0; i < vals[0]; i++ {
		if _, err := r.next(); err == io.EOF {
			return nil, fmt.Errorf("%w: reading legal moves: %w", ErrMalformed, io.ErrUnexpectedEOF)
		} else if err != nil {
			return nil, err
		}
		m, err := move.Parse(r.sc.Text())
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, r.line, err)
		}
		legal = append(legal, m)
	}
	return &Turn{State: st, Legal: legal}, nil
}
