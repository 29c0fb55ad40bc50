// Package bot picks the move to play each turn. It runs a fixed list of
// policies in order; the first one that commits to a move wins.
package bot

import (
	"context"

	"github.com/samber/lo"

	"github.com/sylvanbot/sylvan/board"
	"github.com/sylvanbot/sylvan/game"
	"github.com/sylvanbot/sylvan/move"
)

// Candidates is the legal move list split by action.
type Candidates struct {
	Completes []*move.Move
	Grows     []*move.Move
	Seeds     []*move.Move
}

// Partition splits moves by action, keeping their order. WAIT is dropped;
// it is the selector's fallback.
func Partition(moves []*move.Move) Candidates {
	of := func(t move.MoveType) []*move.Move {
		return lo.Filter(moves, func(m *move.Move, _ int) bool { return m.Action() == t })
	}
	return Candidates{
		Completes: of(move.MoveTypeComplete),
		Grows:     of(move.MoveTypeGrow),
		Seeds:     of(move.MoveTypeSeed),
	}
}

// A Policy looks at its share of the candidates and either commits to one
// of them or passes.
type Policy interface {
	Name() string
	Choose(ctx context.Context, st *game.State, c Candidates) (*move.Move, bool)
}

// richnessBonus is the extra score a completed tree on cell would earn.
func richnessBonus(b *board.Board, cell int) int {
	return b.Richness(cell)*2 - 2
}
