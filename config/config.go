package config

import (
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ConfigLogLevel      = "log-level"
	ConfigLogConsole    = "log-console"
	ConfigTurnBudget    = "turn-budget"
	ConfigRecordPath    = "record-path"
	ConfigReplayThreads = "replay-threads"
)

// Config holds ambient settings. The bot takes no flags and reads no files;
// everything comes from SYLVAN_* environment variables.
type Config struct {
	*viper.Viper
}

// DefaultConfig returns a config with defaults only, ignoring the
// environment.
func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigLogLevel, "info")
	c.SetDefault(ConfigLogConsole, false)
	c.SetDefault(ConfigTurnBudget, 90*time.Millisecond)
	c.SetDefault(ConfigRecordPath, "")
	c.SetDefault(ConfigReplayThreads, runtime.NumCPU())
}

// Load reads the defaults and then the environment.
func (c *Config) Load() {
	c.Viper = viper.New()
	c.setDefaults()
	c.SetEnvPrefix("sylvan")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
}

// TurnBudget is the soft deadline for one decision. A non-positive budget
// disables the deadline.
func (c *Config) TurnBudget() time.Duration {
	return c.GetDuration(ConfigTurnBudget)
}

func (c *Config) ReplayThreads() int {
	if n := c.GetInt(ConfigReplayThreads); n > 0 {
		return n
	}
	return 1
}
