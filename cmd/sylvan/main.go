package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sylvanbot/sylvan/config"
	"github.com/sylvanbot/sylvan/runner"
)

func main() {
	cfg := &config.Config{}
	cfg.Load()

	logger := newLogger(cfg)
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var in io.Reader = os.Stdin
	if path := cfg.GetString(config.ConfigRecordPath); path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create transcript")
		}
		defer f.Close()
		in = io.TeeReader(os.Stdin, f)
		log.Info().Str("path", path).Msg("recording transcript")
	}

	r := runner.NewRunner(cfg, in, os.Stdout)
	if err := r.Run(logger.WithContext(ctx)); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

// newLogger writes to stderr; stdout belongs to the referee.
func newLogger(cfg *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetString(config.ConfigLogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var w io.Writer = os.Stderr
	if cfg.GetBool(config.ConfigLogConsole) {
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		output.FormatLevel = func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		}
		w = output
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
