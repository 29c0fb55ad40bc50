package runner

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sylvanbot/sylvan/config"
)

func TestReplay(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigTurnBudget, 0)
	cfg.Set(config.ConfigReplayThreads, 2)

	paths := []string{"testdata/short_game.txt", "testdata/short_game.txt"}
	reports, err := Replay(context.Background(), cfg, paths)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, rep := range reports {
		assert.Equal(t, "testdata/short_game.txt", rep.Path)
		require.Len(t, rep.Turns, 3)
		assert.Equal(t, "SEED 19 7", rep.Turns[0].Move)
		assert.Equal(t, "GROW 19", rep.Turns[2].Move)
		assert.Equal(t, 2, rep.Turns[2].Day)
	}
	assert.Equal(t, reports[0].Turns[1].Position, reports[1].Turns[1].Position)
	assert.Len(t, reports[0].Turns[1].Position, 16)
	assert.Equal(t, 6, DecisionTimes(reports).N)
}

func TestReplayMissingFile(t *testing.T) {
	_, err := Replay(context.Background(), config.DefaultConfig(), []string{"testdata/nope.txt"})
	assert.ErrorContains(t, err, "testdata/nope.txt")
}
