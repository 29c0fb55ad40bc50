// replay re-runs recorded transcripts through the bot and reports what it
// played and how long each decision took.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/sylvanbot/sylvan/config"
	"github.com/sylvanbot/sylvan/runner"
)

const histogramBins = 15

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: replay transcript...")
		os.Exit(2)
	}
	cfg := &config.Config{}
	cfg.Load()

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	level, err := zerolog.ParseLevel(cfg.GetString(config.ConfigLogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(output).Level(level).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	log.Logger = logger

	ctx := logger.WithContext(context.Background())
	reports, err := runner.Replay(ctx, cfg, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("replay failed")
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		log.Fatal().Err(err).Msg("could not write report")
	}
	enc.Close()

	summary := runner.DecisionTimes(reports)
	fmt.Printf("\ndecision time (us): %s\n", summary)
	if summary.N > 1 {
		h := histogram.Hist(histogramBins, runner.DecisionMicros(reports))
		if err := histogram.Fprint(os.Stdout, h, histogram.Linear(40)); err != nil {
			log.Fatal().Err(err).Msg("could not draw histogram")
		}
	}
}
