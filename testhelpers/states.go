// Package testhelpers builds forests for tests: hand-placed fixtures on the
// standard board, random forests, and YAML selector scenarios.
package testhelpers

import (
	"lukechampine.com/frand"

	"github.com/sylvanbot/sylvan/board"
	"github.com/sylvanbot/sylvan/game"
)

// StandardBoard is shared by every fixture; boards are immutable.
var StandardBoard = board.Standard()

// Mine is one of our trees on cell.
func Mine(cell, size int) game.PlacedTree {
	return game.PlacedTree{Cell: cell, Tree: game.Tree{Size: size, Mine: true}}
}

// Opp is an opponent tree on cell.
func Opp(cell, size int) game.PlacedTree {
	return game.PlacedTree{Cell: cell, Tree: game.Tree{Size: size}}
}

// Asleep marks a tree dormant.
func Asleep(pt game.PlacedTree) game.PlacedTree {
	pt.Dormant = true
	return pt
}

// State builds a state on the standard board and panics on invalid
// fixtures.
func State(snap game.Snapshot, trees ...game.PlacedTree) *game.State {
	st, err := game.NewState(StandardBoard, snap, trees)
	if err != nil {
		panic(err)
	}
	return st
}

// RandomState places up to maxTrees random trees on distinct cells.
func RandomState(maxTrees int) *game.State {
	n := frand.Intn(maxTrees + 1)
	cells := frand.Perm(board.NumCells)[:n]
	trees := make([]game.PlacedTree, 0, n)
	for _, c := range cells {
		trees = append(trees, game.PlacedTree{Cell: c, Tree: game.Tree{
			Size:    frand.Intn(game.MaxTreeSize + 1),
			Mine:    frand.Intn(2) == 1,
			Dormant: frand.Intn(4) == 0,
		}})
	}
	snap := game.Snapshot{
		Day:       frand.Intn(game.LastDay + 1),
		Nutrients: frand.Intn(21),
		Sun:       frand.Intn(40),
		OppSun:    frand.Intn(40),
	}
	return State(snap, trees...)
}
