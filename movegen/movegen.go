// Package movegen enumerates the moves we can legally make in a state.
package movegen

import (
	"github.com/sylvanbot/sylvan/board"
	"github.com/sylvanbot/sylvan/game"
	"github.com/sylvanbot/sylvan/move"
)

// CompleteCost is the sun paid to complete a size-3 tree.
const CompleteCost = 4

// GrowthCost is the base sun cost of growing a tree of the given size,
// before the surcharge for trees we already own at the next size.
// The table is 1, 3, 7.
func GrowthCost(size int) int {
	c := size*4 - 1
	if c < 0 {
		return -c
	}
	return c
}

func canAct(tr game.Tree) bool {
	return tr.Mine && !tr.Dormant
}

// Completes returns a COMPLETE for every awake size-3 tree we own, if we
// can afford it.
func Completes(st *game.State) []*move.Move {
	moves := []*move.Move{}
	if st.Sun < CompleteCost {
		return moves
	}
	for _, pt := range st.Trees() {
		if canAct(pt.Tree) && pt.Size == game.MaxTreeSize {
			moves = append(moves, move.NewCompleteMove(pt.Cell))
		}
	}
	return moves
}

// Grows returns a GROW for every awake tree we own that can still grow and
// whose cost we can pay.
func Grows(st *game.State) []*move.Move {
	moves := []*move.Move{}
	for _, pt := range st.Trees() {
		if !canAct(pt.Tree) || pt.Size >= game.MaxTreeSize {
			continue
		}
		if st.Sun >= GrowthCost(pt.Size)+st.CountMine(pt.Size+1) {
			moves = append(moves, move.NewGrowMove(pt.Cell))
		}
	}
	return moves
}

// Seeds returns a SEED from every awake tree we own of size at least 1 to
// every empty, usable cell within its reach. A seed costs one sun per seed
// we already have on the board.
func Seeds(st *game.State) []*move.Move {
	moves := []*move.Move{}
	if st.Sun < st.CountMine(0) {
		return moves
	}
	for _, pt := range st.Trees() {
		if !canAct(pt.Tree) || pt.Size == 0 {
			continue
		}
		for _, target := range SeedTargets(st, pt.Cell, pt.Size) {
			moves = append(moves, move.NewSeedMove(pt.Cell, target))
		}
	}
	return moves
}

type frontier struct {
	cell int
	dist int
}

// SeedTargets lists the empty cells with richness above zero within reach
// steps of source, each once. Cells are listed in depth-first order,
// visiting directions 0 to 5 at every step.
func SeedTargets(st *game.State, source, reach int) []int {
	b := st.Board()
	targets := []int{}
	collected := map[int]bool{}

	stack := []frontier{{cell: source}}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.cell != source || cur.dist != 0 {
			if _, occupied := st.TreeAt(cur.cell); !occupied && !collected[cur.cell] && b.Richness(cur.cell) > 0 {
				collected[cur.cell] = true
				targets = append(targets, cur.cell)
			}
		}
		if cur.dist >= reach {
			continue
		}
		// Push in reverse so direction 0 comes off the stack first.
		for d := board.NumDirections - 1; d >= 0; d-- {
			n := b.Neighbor(cur.cell, board.Direction(d))
			if n == board.NoNeighbor {
				continue
			}
			stack = append(stack, frontier{cell: n, dist: cur.dist + 1})
		}
	}
	return targets
}

// Generate returns every legal move: grows, completes, seeds, and a WAIT,
// which is always last.
func Generate(st *game.State) []*move.Move {
	moves := Grows(st)
	moves = append(moves, Completes(st)...)
	moves = append(moves, Seeds(st)...)
	return append(moves, move.NewWaitMove())
}
