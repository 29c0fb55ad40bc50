package bot

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sylvanbot/sylvan/game"
	"github.com/sylvanbot/sylvan/move"
	"github.com/sylvanbot/sylvan/movegen"
)

// Selector runs its policies in order. A later policy never overrides an
// earlier one's choice, and a policy that declines hands over to the next.
type Selector struct {
	policies []Policy
}

// NewSelector returns the standard cascade: harvest, growth, seeding.
func NewSelector() *Selector {
	return &Selector{policies: []Policy{HarvestPolicy{}, GrowthPolicy{}, SeedingPolicy{}}}
}

// NewSelectorWithPolicies runs a custom cascade.
func NewSelectorWithPolicies(policies ...Policy) *Selector {
	return &Selector{policies: policies}
}

// BestMove returns the move to play. It returns WAIT when no policy
// commits, or when ctx is done before the cascade finishes.
func (s *Selector) BestMove(ctx context.Context, st *game.State) *move.Move {
	logger := zerolog.Ctx(ctx)
	c := Partition(movegen.Generate(st))
	logger.Debug().Int("completes", len(c.Completes)).Int("grows", len(c.Grows)).
		Int("seeds", len(c.Seeds)).Msg("candidates")

	for _, p := range s.policies {
		if err := ctx.Err(); err != nil {
			logger.Warn().Err(err).Str("policy", p.Name()).Msg("out of time, waiting")
			return move.NewWaitMove()
		}
		if m, ok := p.Choose(ctx, st, c); ok {
			logger.Debug().Str("policy", p.Name()).Str("move", m.ShortDescription()).Msg("committed")
			return m
		}
	}
	return move.NewWaitMove()
}
