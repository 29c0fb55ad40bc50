package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/sylvanbot/sylvan/config"
	"github.com/sylvanbot/sylvan/stats"
)

// TurnReport is one replayed decision.
type TurnReport struct {
	Turn     int    `yaml:"turn"`
	Day      int    `yaml:"day"`
	Position string `yaml:"position"`
	Move     string `yaml:"move"`
	Micros   int64  `yaml:"micros"`
}

// GameReport is the replay of one recorded transcript.
type GameReport struct {
	Path  string       `yaml:"path"`
	Turns []TurnReport `yaml:"turns"`
}

// Replay feeds each recorded transcript through a fresh Runner, in
// parallel, and returns one report per path in the order given.
func Replay(ctx context.Context, cfg *config.Config, paths []string) ([]GameReport, error) {
	reports := make([]GameReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.ReplayThreads())
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			rep, err := replayFile(ctx, cfg, p)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func replayFile(ctx context.Context, cfg *config.Config, path string) (GameReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return GameReport{}, err
	}
	defer f.Close()

	logger := zerolog.Ctx(ctx).With().Str("transcript", path).Logger()
	r := NewRunner(cfg, f, io.Discard)
	if err := r.Run(logger.WithContext(ctx)); err != nil {
		return GameReport{}, err
	}
	return GameReport{
		Path: path,
		Turns: lo.Map(r.History(), func(t TurnResult, _ int) TurnReport {
			return TurnReport{
				Turn:     t.Turn,
				Day:      t.Day,
				Position: fmt.Sprintf("%016x", t.Fingerprint),
				Move:     t.Move.String(),
				Micros:   t.Elapsed.Microseconds(),
			}
		}),
	}, nil
}

// DecisionMicros lists every replayed decision time, in microseconds.
func DecisionMicros(reports []GameReport) []float64 {
	var micros []float64
	for _, rep := range reports {
		for _, t := range rep.Turns {
			micros = append(micros, float64(t.Micros))
		}
	}
	return micros
}

// DecisionTimes summarizes how long the replayed decisions took.
func DecisionTimes(reports []GameReport) stats.Summary {
	return stats.Summarize(DecisionMicros(reports))
}
