// Package batch compares every record of a hand pair stream on a pool of
// workers and tallies the outcomes.
package batch

import (
	"context"
	"errors"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhands/internal/euler"
	"github.com/lox/pokerhands/poker"
)

// MaxReportedErrors caps how many malformed lines a Summary describes.
const MaxReportedErrors = 10

// Summary is the aggregate result of a run.
type Summary struct {
	Records           int                    `json:"records"`
	Hand1Wins         int                    `json:"hand1_wins"`
	Hand2Wins         int                    `json:"hand2_wins"`
	Ties              int                    `json:"ties"`
	Malformed         int                    `json:"malformed"`
	WinningCategories map[poker.Category]int `json:"winning_categories"`
	Errors            []string               `json:"errors,omitempty"`
	Elapsed           time.Duration          `json:"elapsed_ns"`
}

func (s *Summary) add(o outcome) {
	if o.err != nil {
		s.Malformed++
		if len(s.Errors) < MaxReportedErrors {
			s.Errors = append(s.Errors, o.err.Error())
		}
		return
	}

	s.Records++
	switch o.result.Winner {
	case 1:
		s.Hand1Wins++
		s.WinningCategories[o.result.Hand1.Category]++
	case -1:
		s.Hand2Wins++
		s.WinningCategories[o.result.Hand2.Category]++
	default:
		s.Ties++
	}
}

type outcome struct {
	result poker.Result
	err    error
}

// Runner fans records out to a fixed number of workers.
type Runner struct {
	workers int
	logger  *log.Logger
	clock   quartz.Clock
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the worker count. Values below one select runtime.NumCPU.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithClock sets the clock used to time runs.
func WithClock(clock quartz.Clock) Option {
	return func(r *Runner) {
		r.clock = clock
	}
}

// NewRunner creates a runner logging through logger.
func NewRunner(logger *log.Logger, opts ...Option) *Runner {
	r := &Runner{
		logger: logger.WithPrefix("batch"),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = runtime.NumCPU()
	}
	return r
}

// Workers returns the effective worker count.
func (r *Runner) Workers() int {
	return r.workers
}

// Run reads src to the end. Malformed lines are counted and logged but
// never abort the run; read failures and cancellation do.
func (r *Runner) Run(ctx context.Context, src *euler.Reader) (Summary, error) {
	start := r.clock.Now()
	summary := Summary{WinningCategories: make(map[poker.Category]int)}

	g, ctx := errgroup.WithContext(ctx)
	records := make(chan euler.Record, r.workers*2)
	outcomes := make(chan outcome, r.workers*2)

	send := func(o outcome) error {
		select {
		case outcomes <- o:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	g.Go(func() error {
		defer close(records)
		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			rec, err := src.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}

			var lineErr *euler.LineError
			if errors.As(err, &lineErr) {
				r.logger.Warn("Skipping malformed record", "line", lineErr.Line, "error", lineErr.Err)
				if err := send(outcome{err: lineErr}); err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}

			select {
			case records <- rec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	for range r.workers {
		g.Go(func() error {
			for rec := range records {
				res, err := poker.Evaluate(rec.Hand1, rec.Hand2)
				if err != nil {
					err = &euler.LineError{Line: rec.Line, Text: rec.Format(), Err: err}
				}
				if err := send(outcome{result: res, err: err}); err != nil {
					return err
				}
			}
			return nil
		})
	}

	go func() {
		defer close(outcomes)
		_ = g.Wait()
	}()

	for o := range outcomes {
		summary.add(o)
	}

	summary.Elapsed = r.clock.Since(start)
	if err := g.Wait(); err != nil {
		return summary, err
	}

	r.logger.Info("Run complete",
		"records", summary.Records,
		"hand1_wins", summary.Hand1Wins,
		"malformed", summary.Malformed,
		"workers", r.workers,
		"elapsed", summary.Elapsed)
	return summary, nil
}
