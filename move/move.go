package move

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MoveType is the kind of action a move takes.
type MoveType uint8

const (
	MoveTypeWait MoveType = iota
	MoveTypeGrow
	MoveTypeSeed
	MoveTypeComplete
)

var ErrUnknownMove = errors.New("unknown move")

func (t MoveType) String() string {
	switch t {
	case MoveTypeWait:
		return "WAIT"
	case MoveTypeGrow:
		return "GROW"
	case MoveTypeSeed:
		return "SEED"
	case MoveTypeComplete:
		return "COMPLETE"
	}
	return "UNHANDLED"
}

// Move is a single action. For a seed, cell is the source tree and target
// the cell receiving the seed; target is unused otherwise.
type Move struct {
	action MoveType
	cell   int
	target int
}

func NewWaitMove() *Move {
	return &Move{action: MoveTypeWait}
}

func NewGrowMove(cell int) *Move {
	return &Move{action: MoveTypeGrow, cell: cell}
}

func NewCompleteMove(cell int) *Move {
	return &Move{action: MoveTypeComplete, cell: cell}
}

func NewSeedMove(source, target int) *Move {
	return &Move{action: MoveTypeSeed, cell: source, target: target}
}

func (m *Move) Action() MoveType {
	return m.action
}

// Cell is the tree the move acts on; for a seed it is the source tree.
func (m *Move) Cell() int {
	return m.cell
}

// Target is the cell a seed lands on.
func (m *Move) Target() int {
	return m.target
}

// Equals compares two moves by action and cells.
func (m *Move) Equals(o *Move) bool {
	if m.action != o.action {
		return false
	}
	switch m.action {
	case MoveTypeWait:
		return true
	case MoveTypeSeed:
		return m.cell == o.cell && m.target == o.target
	}
	return m.cell == o.cell
}

// String is the exact line the referee expects.
func (m *Move) String() string {
	switch m.action {
	case MoveTypeGrow, MoveTypeComplete:
		return fmt.Sprintf("%s %d", m.action, m.cell)
	case MoveTypeSeed:
		return fmt.Sprintf("SEED %d %d", m.cell, m.target)
	}
	return "WAIT"
}

// ShortDescription is meant for logs.
func (m *Move) ShortDescription() string {
	if m.action == MoveTypeSeed {
		return fmt.Sprintf("SEED %d -> %d", m.cell, m.target)
	}
	return m.String()
}

// Parse reads a move in the referee's format. Trailing tokens after a WAIT
// are ignored, since bots may attach a message to it.
func Parse(s string) (*Move, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrUnknownMove)
	}
	ints := func(want int) ([]int, error) {
		if len(fields) != want+1 {
			return nil, fmt.Errorf("%w: %q needs %d arguments", ErrUnknownMove, s, want)
		}
		vals := make([]int, want)
		for i := range vals {
			v, err := strconv.Atoi(fields[i+1])
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrUnknownMove, s, err)
			}
			vals[i] = v
		}
		return vals, nil
	}

	switch fields[0] {
	case "WAIT":
		return NewWaitMove(), nil
	case "GROW":
		v, err := ints(1)
		if err != nil {
			return nil, err
		}
		return NewGrowMove(v[0]), nil
	case "COMPLETE":
		v, err := ints(1)
		if err != nil {
			return nil, err
		}
		return NewCompleteMove(v[0]), nil
	case "SEED":
		v, err := ints(2)
		if err != nil {
			return nil, err
		}
		return NewSeedMove(v[0], v[1]), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}
