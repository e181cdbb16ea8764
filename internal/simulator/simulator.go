package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"holdem-showdown/internal/rng"
	"holdem-showdown/pkg/deck"
)

// ErrInvalidTrials is returned when the number of trials is not positive
var ErrInvalidTrials = errors.New("trials must be greater than zero")

// Options configures a simulation
type Options struct {
	Trials  int
	Workers int
	// Seed makes a run reproducible for a fixed worker count, zero picks a seed from the clock
	Seed int64
	// Transcript receives every deal when set
	Transcript io.Writer
}

// Simulator deals heads-up hands and tallies the winners
type Simulator struct {
	opts   Options
	logger logrus.FieldLogger

	transcriptMu sync.Mutex
}

// New returns a new simulator
func New(opts Options) (*Simulator, error) {
	if opts.Trials <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTrials, opts.Trials)
	}

	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	if opts.Workers > opts.Trials {
		opts.Workers = opts.Trials
	}

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	return &Simulator{
		opts: opts,
		logger: logrus.WithFields(logrus.Fields{
			"trials":  opts.Trials,
			"workers": opts.Workers,
			"seed":    opts.Seed,
		}),
	}, nil
}

// Options returns the options after defaults have been applied
func (s *Simulator) Options() Options {
	return s.opts
}

// Run runs every trial and returns the merged tallies
// Workers stop between trials when the context is cancelled.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	s.logger.Info("starting simulation")

	results := make([]*Result, s.opts.Workers)
	g, ctx := errgroup.WithContext(ctx)

	base := s.opts.Trials / s.opts.Workers
	extra := s.opts.Trials % s.opts.Workers
	for w := 0; w < s.opts.Workers; w++ {
		w := w
		trials := base
		if w < extra {
			trials++
		}

		g.Go(func() error {
			result, err := s.runWorker(ctx, w, trials)
			if err != nil {
				return err
			}

			results[w] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.WithError(err).Warn("simulation stopped")
		return nil, err
	}

	merged := NewResult()
	merged.Seed = s.opts.Seed
	merged.Workers = s.opts.Workers
	for _, r := range results {
		merged.Merge(r)
	}

	merged.Elapsed = time.Since(start)
	s.logger.WithFields(logrus.Fields{
		"p1Wins":  merged.P1Wins,
		"p2Wins":  merged.P2Wins,
		"splits":  merged.Splits,
		"elapsed": merged.Elapsed,
	}).Info("simulation complete")

	return merged, nil
}

func (s *Simulator) runWorker(ctx context.Context, worker, trials int) (*Result, error) {
	d := deck.NewWithGenerator(rng.ForWorker(s.opts.Seed, worker))
	result := NewResult()

	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		d.Shuffle()
		deal, err := PlayHand(d)
		if err != nil {
			return nil, fmt.Errorf("worker %d: %w", worker, err)
		}

		result.Add(deal)
		if s.opts.Transcript != nil {
			if err := s.writeTranscript(deal); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

func (s *Simulator) writeTranscript(deal Deal) error {
	s.transcriptMu.Lock()
	defer s.transcriptMu.Unlock()

	return WriteDeal(s.opts.Transcript, deal)
}
