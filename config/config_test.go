package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.GetString(ConfigLogLevel))
	assert.False(t, cfg.GetBool(ConfigLogConsole))
	assert.Equal(t, 90*time.Millisecond, cfg.TurnBudget())
	assert.Equal(t, "", cfg.GetString(ConfigRecordPath))
	assert.GreaterOrEqual(t, cfg.ReplayThreads(), 1)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SYLVAN_LOG_LEVEL", "debug")
	t.Setenv("SYLVAN_TURN_BUDGET", "40ms")
	t.Setenv("SYLVAN_REPLAY_THREADS", "0")
	t.Setenv("SYLVAN_LOG_CONSOLE", "true")

	cfg := &Config{}
	cfg.Load()
	assert.Equal(t, "debug", cfg.GetString(ConfigLogLevel))
	assert.Equal(t, 40*time.Millisecond, cfg.TurnBudget())
	assert.Equal(t, 1, cfg.ReplayThreads())
	assert.True(t, cfg.GetBool(ConfigLogConsole))
}
