// Package game holds the per-turn snapshot of the forest: who owns which
// tree, how big it is, and both players' sun and score.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/samber/lo"

	"github.com/sylvanbot/sylvan/board"
)

const (
	// MaxTreeSize is the size of a tree that can be completed.
	MaxTreeSize = 3
	// LastDay is the final day of a game; days run 0 through LastDay.
	LastDay = 23
)

var ErrInvalidState = errors.New("invalid game state")

// A Tree occupies one cell. Dormant trees already acted this day.
type Tree struct {
	Size    int
	Mine    bool
	Dormant bool
}

// PlacedTree is a tree together with the cell it stands on.
type PlacedTree struct {
	Cell int
	Tree
}

// Snapshot carries the scalar fields of a turn. Turn is the bot's own
// monotonic counter; Day is the referee's authoritative day.
type Snapshot struct {
	Turn       int
	Day        int
	Nutrients  int
	Sun        int
	Score      int
	OppSun     int
	OppScore   int
	OppWaiting bool
}

type slot struct {
	tree     Tree
	occupied bool
}

// State is one turn's view of the game. It is built fresh every turn and
// never mutated afterwards.
type State struct {
	Snapshot

	board     *board.Board
	forest    [board.NumCells]slot
	treeCount int
}

// NewState builds a State on top of the shared board. At most one tree may
// stand on a cell and sizes must be within [0, MaxTreeSize].
func NewState(b *board.Board, snap Snapshot, trees []PlacedTree) (*State, error) {
	st := &State{Snapshot: snap, board: b}
	for _, pt := range trees {
		if pt.Cell < 0 || pt.Cell >= board.NumCells {
			return nil, fmt.Errorf("%w: tree on cell %d", ErrInvalidState, pt.Cell)
		}
		if pt.Size < 0 || pt.Size > MaxTreeSize {
			return nil, fmt.Errorf("%w: tree on cell %d has size %d", ErrInvalidState, pt.Cell, pt.Size)
		}
		if st.forest[pt.Cell].occupied {
			return nil, fmt.Errorf("%w: two trees on cell %d", ErrInvalidState, pt.Cell)
		}
		st.forest[pt.Cell] = slot{tree: pt.Tree, occupied: true}
		st.treeCount++
	}
	return st, nil
}

func (s *State) Board() *board.Board {
	return s.board
}

// TreeAt returns the tree on a cell, if any.
func (s *State) TreeAt(cell int) (Tree, bool) {
	sl := s.forest[cell]
	return sl.tree, sl.occupied
}

// CountMine returns how many of our trees have the given size.
func (s *State) CountMine(size int) int {
	return lo.CountBy(s.forest[:], func(sl slot) bool {
		return sl.occupied && sl.tree.Mine && sl.tree.Size == size
	})
}

// CountMineAll returns how many trees we own.
func (s *State) CountMineAll() int {
	return lo.CountBy(s.forest[:], func(sl slot) bool {
		return sl.occupied && sl.tree.Mine
	})
}

func (s *State) TreeCount() int {
	return s.treeCount
}

// Trees returns every tree in ascending cell order.
func (s *State) Trees() []PlacedTree {
	trees := make([]PlacedTree, 0, s.treeCount)
	for i, sl := range s.forest {
		if sl.occupied {
			trees = append(trees, PlacedTree{Cell: i, Tree: sl.tree})
		}
	}
	return trees
}

// Fingerprint identifies a position independently of the bot's turn
// counter, so the same position replayed twice hashes the same.
func (s *State) Fingerprint() uint64 {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d/%d/%d/%d/%d/%d/%v", s.Day, s.Nutrients, s.Sun, s.Score, s.OppSun, s.OppScore, s.OppWaiting)
	for _, pt := range s.Trees() {
		fmt.Fprintf(&sb, "|%d:%d:%v:%v", pt.Cell, pt.Size, pt.Mine, pt.Dormant)
	}
	return xxhash.Sum64String(sb.String())
}

// ToDisplayText is a compact, log-friendly rendering of the state.
func (s *State) ToDisplayText() string {
	var sb strings.Builder
	mine := s.CountMineAll()
	fmt.Fprintf(&sb, "turn %d day %d nutrients %d | me: sun %d score %d trees %d | opp: sun %d score %d trees %d waiting %v\n",
		s.Turn, s.Day, s.Nutrients, s.Sun, s.Score, mine,
		s.OppSun, s.OppScore, s.treeCount-mine, s.OppWaiting)
	for _, pt := range s.Trees() {
		owner := "opp"
		if pt.Mine {
			owner = "me"
		}
		dormant := ""
		if pt.Dormant {
			dormant = " z"
		}
		fmt.Fprintf(&sb, "  %2d: %s size %d%s\n", pt.Cell, owner, pt.Size, dormant)
	}
	return sb.String()
}
