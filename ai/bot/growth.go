package bot

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/sylvanbot/sylvan/equity"
	"github.com/sylvanbot/sylvan/game"
	"github.com/sylvanbot/sylvan/move"
)

// GrowthPolicy grows the tree that gains the most sun tomorrow by being
// one size larger, as long as enough days remain for it to pay off.
type GrowthPolicy struct{}

func (GrowthPolicy) Name() string { return "growth" }

func (GrowthPolicy) Choose(ctx context.Context, st *game.State, c Candidates) (*move.Move, bool) {
	if len(c.Grows) == 0 {
		return nil, false
	}
	logger := zerolog.Ctx(ctx)
	nextDay := equity.NextDay(st.Day)

	var best *move.Move
	bestSize := 0
	// Gains are compared against the current best's grown sun rate.
	bar := -math.MaxFloat64
	for _, m := range c.Grows {
		tr, _ := st.TreeAt(m.Cell())
		current := equity.SunRate(st, m.Cell(), tr.Size, nextDay)
		grown := equity.SunRate(st, m.Cell(), tr.Size+1, nextDay)
		diff := grown - current

		better := diff > bar || (diff == bar && best != nil &&
			equity.SunRate(st, m.Cell(), tr.Size+1, equity.FullCycle)-
				equity.SunRate(st, best.Cell(), bestSize+1, equity.FullCycle) > 0)
		// A grow that changes nothing tomorrow must at least pay off over
		// the whole cycle.
		worthwhile := diff > 0 || (diff == 0 &&
			equity.SunRate(st, m.Cell(), tr.Size+1, equity.FullCycle) >
				equity.SunRate(st, m.Cell(), tr.Size, equity.FullCycle))
		if better && worthwhile {
			best = m
			bestSize = tr.Size
			bar = grown
		}
		logger.Debug().Str("move", m.ShortDescription()).Float64("sun-rate", grown).
			Float64("diff", diff).Msg("growth-candidate")
	}
	if best == nil {
		return nil, false
	}
	if st.Day >= game.LastDay-(game.MaxTreeSize-(bestSize+1)) {
		logger.Debug().Str("move", best.ShortDescription()).Msg("too late to grow")
		return nil, false
	}
	return best, true
}
