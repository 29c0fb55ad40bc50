package bot

import (
	"context"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/sylvanbot/sylvan/game"
	"github.com/sylvanbot/sylvan/move"
	"github.com/sylvanbot/sylvan/testhelpers"
)

func TestScenarios(t *testing.T) {
	scenarios, err := testhelpers.LoadScenarios("testdata/scenarios.yaml")
	if err != nil {
		t.Fatal(err)
	}
	sel := NewSelector()
	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			is := is.New(t)
			st, err := sc.State()
			is.NoErr(err)
			want, err := sc.ExpectedMove()
			is.NoErr(err)
			got := sel.BestMove(context.Background(), st)
			is.Equal(got.String(), want.String())
		})
	}
}

func TestDeterministic(t *testing.T) {
	sel := NewSelector()
	for i := 0; i < 100; i++ {
		st := testhelpers.RandomState(20)
		first := sel.BestMove(context.Background(), st)
		second := sel.BestMove(context.Background(), st)
		assert.True(t, first.Equals(second), "%v vs %v", first, second)
	}
}

func TestChosenMoveIsLegal(t *testing.T) {
	sel := NewSelector()
	for i := 0; i < 200; i++ {
		st := testhelpers.RandomState(20)
		m := sel.BestMove(context.Background(), st)
		if m.Action() == move.MoveTypeWait {
			continue
		}
		tr, ok := st.TreeAt(m.Cell())
		assert.True(t, ok)
		assert.True(t, tr.Mine)
		assert.False(t, tr.Dormant)
	}
}

func TestCancelledContextWaits(t *testing.T) {
	is := is.New(t)
	st := testhelpers.State(game.Snapshot{Day: 20, Sun: 7}, testhelpers.Mine(0, 2))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	is.Equal(NewSelector().BestMove(ctx, st).Action(), move.MoveTypeWait)
}

type fixedPolicy struct {
	m  *move.Move
	ok bool
}

func (p fixedPolicy) Name() string { return "fixed" }

func (p fixedPolicy) Choose(context.Context, *game.State, Candidates) (*move.Move, bool) {
	return p.m, p.ok
}

func TestFirstCommitWins(t *testing.T) {
	is := is.New(t)
	st := testhelpers.State(game.Snapshot{})
	sel := NewSelectorWithPolicies(
		fixedPolicy{move.NewGrowMove(1), false},
		fixedPolicy{move.NewGrowMove(2), true},
		fixedPolicy{move.NewGrowMove(3), true},
	)
	is.Equal(sel.BestMove(context.Background(), st).String(), "GROW 2")
	is.Equal(NewSelectorWithPolicies().BestMove(context.Background(), st).String(), "WAIT")
}

func TestPartition(t *testing.T) {
	is := is.New(t)
	c := Partition([]*move.Move{
		move.NewGrowMove(4),
		move.NewCompleteMove(1),
		move.NewSeedMove(1, 2),
		move.NewGrowMove(5),
		move.NewWaitMove(),
	})
	is.Equal(len(c.Grows), 2)
	is.Equal(c.Grows[1].Cell(), 5)
	is.Equal(len(c.Completes), 1)
	is.Equal(len(c.Seeds), 1)
}

func TestHarvestGate(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	// Richness 1 on cell 19 adds nothing, so nutrients alone must be positive.
	st := testhelpers.State(game.Snapshot{Day: 22, Sun: 4, Nutrients: 0}, testhelpers.Mine(19, 3))
	c := Partition([]*move.Move{move.NewCompleteMove(19)})
	_, ok := HarvestPolicy{}.Choose(ctx, st, c)
	is.True(!ok)

	st = testhelpers.State(game.Snapshot{Day: 22, Sun: 4, Nutrients: 1}, testhelpers.Mine(19, 3))
	m, ok := HarvestPolicy{}.Choose(ctx, st, c)
	is.True(ok)
	is.Equal(m.String(), "COMPLETE 19")

	// Richness 3 at the center carries a zero-nutrient harvest.
	st = testhelpers.State(game.Snapshot{Day: 22, Sun: 4, Nutrients: 0}, testhelpers.Mine(0, 3))
	_, ok = HarvestPolicy{}.Choose(ctx, st, Partition([]*move.Move{move.NewCompleteMove(0)}))
	is.True(ok)
}
