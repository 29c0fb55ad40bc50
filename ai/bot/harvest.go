package bot

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/sylvanbot/sylvan/equity"
	"github.com/sylvanbot/sylvan/game"
	"github.com/sylvanbot/sylvan/move"
)

// We start cutting trees once we own at least this many size-3 trees minus
// the current day.
const harvestHorizon = 20

// HarvestPolicy completes the tree whose loss costs the least sun
// tomorrow, once the end of the game is close enough.
type HarvestPolicy struct{}

func (HarvestPolicy) Name() string { return "harvest" }

func (HarvestPolicy) Choose(ctx context.Context, st *game.State, c Candidates) (*move.Move, bool) {
	if st.CountMine(game.MaxTreeSize) < harvestHorizon-st.Day {
		return nil, false
	}
	logger := zerolog.Ctx(ctx)
	nextDay := equity.NextDay(st.Day)

	var best *move.Move
	bestScore := math.MaxFloat64
	for _, m := range c.Completes {
		score := equity.SunRate(st, m.Cell(), game.MaxTreeSize, nextDay)
		if score < bestScore || (score == bestScore && best != nil &&
			equity.SunRate(st, m.Cell(), game.MaxTreeSize, equity.FullCycle) <
				equity.SunRate(st, best.Cell(), game.MaxTreeSize, equity.FullCycle)) {
			bestScore = score
			best = m
		}
		logger.Debug().Str("move", m.ShortDescription()).Float64("sun-rate", score).Msg("harvest-candidate")
	}
	if best == nil {
		return nil, false
	}
	if st.Nutrients+richnessBonus(st.Board(), best.Cell()) <= 0 {
		logger.Debug().Str("move", best.ShortDescription()).Int("nutrients", st.Nutrients).
			Msg("harvest would not score")
		return nil, false
	}
	return best, true
}
