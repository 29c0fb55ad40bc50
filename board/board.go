// Package board holds the static topology of the hex forest: 37 cells,
// their soil richness, and the six directional links between them.
package board

import (
	"errors"
	"fmt"
)

const (
	// NumCells is the number of cells on the board: the center plus three rings.
	NumCells = 37
	// NumDirections is the number of hex directions. Direction 0 points east
	// and the rest follow counter-clockwise.
	NumDirections = 6
	// NoNeighbor marks a direction that leads off the board.
	NoNeighbor = -1
	// MaxRichness is the best soil tier.
	MaxRichness = 3
)

var ErrInvalidTopology = errors.New("invalid board topology")

// Direction is one of the six hex directions, 0 through 5.
type Direction int

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 3) % NumDirections
}

// A Cell is a single hex. Neighbors is indexed by Direction; NoNeighbor
// entries must never be used as a cell index.
type Cell struct {
	Index     int
	Richness  int
	Neighbors [NumDirections]int
}

// Board is the immutable topology. It is built once at startup and shared
// read-only by every per-turn state.
type Board struct {
	cells [NumCells]Cell
}

// New validates the given cells and returns a Board. The cells may arrive
// in any order; each must carry a distinct index.
func New(cells []Cell) (*Board, error) {
	if len(cells) != NumCells {
		return nil, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidTopology, NumCells, len(cells))
	}
	b := &Board{}
	seen := [NumCells]bool{}
	for _, c := range cells {
		if c.Index < 0 || c.Index >= NumCells {
			return nil, fmt.Errorf("%w: cell index %d out of range", ErrInvalidTopology, c.Index)
		}
		if seen[c.Index] {
			return nil, fmt.Errorf("%w: duplicate cell index %d", ErrInvalidTopology, c.Index)
		}
		if c.Richness < 0 || c.Richness > MaxRichness {
			return nil, fmt.Errorf("%w: cell %d has richness %d", ErrInvalidTopology, c.Index, c.Richness)
		}
		for d, n := range c.Neighbors {
			if n != NoNeighbor && (n < 0 || n >= NumCells) {
				return nil, fmt.Errorf("%w: cell %d direction %d points to %d", ErrInvalidTopology, c.Index, d, n)
			}
		}
		seen[c.Index] = true
		b.cells[c.Index] = c
	}
	return b, nil
}

// Cell returns a copy of the cell at idx.
func (b *Board) Cell(idx int) Cell {
	return b.cells[idx]
}

// Neighbor returns the index of the cell next to idx in direction d, or
// NoNeighbor at the edge of the board.
func (b *Board) Neighbor(idx int, d Direction) int {
	return b.cells[idx].Neighbors[d]
}

func (b *Board) Richness(idx int) int {
	return b.cells[idx].Richness
}

// Cells returns a copy of all cells in index order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, NumCells)
	copy(cells, b.cells[:])
	return cells
}
