package bot

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/sylvanbot/sylvan/equity"
	"github.com/sylvanbot/sylvan/game"
	"github.com/sylvanbot/sylvan/move"
)

// No seeds are planted from this day on; they would not grow in time.
const lastSeedingDay = 20

// SeedingPolicy plants a seed where our own trees throw the least shade,
// one seed at a time.
type SeedingPolicy struct{}

func (SeedingPolicy) Name() string { return "seeding" }

func (SeedingPolicy) Choose(ctx context.Context, st *game.State, c Candidates) (*move.Move, bool) {
	if len(c.Seeds) == 0 || st.CountMine(0) != 0 {
		return nil, false
	}
	logger := zerolog.Ctx(ctx)
	b := st.Board()

	var best *move.Move
	bestScore := -math.MaxFloat64
	for _, m := range c.Seeds {
		shaded := equity.ShadowDayCount(st, equity.FullCycle, 0, true, m.Target())
		score := float64(equity.CycleLength-shaded) / equity.CycleLength
		if score > bestScore || (score == bestScore && best != nil &&
			richnessBonus(b, m.Target()) > richnessBonus(b, best.Target())) {
			bestScore = score
			best = m
		}
		logger.Debug().Str("move", m.ShortDescription()).Float64("light", score).Msg("seeding-candidate")
	}
	if best == nil || st.Day >= lastSeedingDay {
		return nil, false
	}
	return best, true
}
