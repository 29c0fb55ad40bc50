// Package runner drives a game: it reads the board once, then answers
// every turn with one move until the referee closes the stream.
package runner

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/sylvanbot/sylvan/ai/bot"
	"github.com/sylvanbot/sylvan/board"
	"github.com/sylvanbot/sylvan/config"
	"github.com/sylvanbot/sylvan/move"
	"github.com/sylvanbot/sylvan/referee"
)

// TurnResult records one answered turn.
type TurnResult struct {
	Turn        int
	Day         int
	Fingerprint uint64
	Move        *move.Move
	Elapsed     time.Duration
}

// Runner owns the only state that lives across turns: the board and the
// turn counter.
type Runner struct {
	in       *referee.Reader
	out      io.Writer
	selector *bot.Selector
	budget   time.Duration

	board   *board.Board
	turn    int
	history []TurnResult
}

func NewRunner(cfg *config.Config, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		in:       referee.NewReader(in),
		out:      out,
		selector: bot.NewSelector(),
		budget:   cfg.TurnBudget(),
	}
}

// Run plays until the input ends. A clean end of input returns nil; any
// malformed input or failed write is returned as an error.
func (r *Runner) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)
	b, err := r.in.ReadBoard()
	if err != nil {
		return err
	}
	r.board = b
	logger.Debug().Msg("board loaded")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.turn++
		t, err := r.in.ReadTurn(r.board, r.turn)
		if errors.Is(err, io.EOF) {
			logger.Info().Int("turns", r.turn-1).Msg("input closed")
			return nil
		} else if err != nil {
			return err
		}
		res := r.PlayTurn(ctx, t)
		if err := referee.WriteMove(r.out, res.Move); err != nil {
			return err
		}
		r.history = append(r.history, res)
	}
}

// PlayTurn decides the move for one turn under the soft deadline.
func (r *Runner) PlayTurn(ctx context.Context, t *referee.Turn) TurnResult {
	st := t.State
	logger := zerolog.Ctx(ctx).With().Int("turn", st.Turn).Int("day", st.Day).Logger()
	ctx = logger.WithContext(ctx)
	logger.Debug().Msg(st.ToDisplayText())

	start := time.Now()
	dctx := ctx
	if r.budget > 0 {
		var cancel context.CancelFunc
		dctx, cancel = context.WithTimeout(ctx, r.budget)
		defer cancel()
	}
	m := r.selector.BestMove(dctx, st)
	elapsed := time.Since(start)

	if len(t.Legal) > 0 && !lo.ContainsBy(t.Legal, m.Equals) {
		logger.Warn().Str("move", m.String()).Msg("move not in the referee's legal list, waiting instead")
		m = move.NewWaitMove()
	}
	logger.Info().Str("move", m.String()).Dur("elapsed", elapsed).Msg("decided")
	return TurnResult{
		Turn:        st.Turn,
		Day:         st.Day,
		Fingerprint: st.Fingerprint(),
		Move:        m,
		Elapsed:     elapsed,
	}
}

// History returns the turns answered so far.
func (r *Runner) History() []TurnResult {
	return r.history
}
