package workers

import (
	"context"
	"errors"

	"github.com/fahim1105/seu-matrimony/internal/logger"
	"golang.org/x/sync/errgroup"
)

// ErrStopGroup is returned by a worker that finished normally and wants the
// rest of the group to stop. Run does not report it.
var ErrStopGroup = errors.New("stop worker group")

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker and waits for all of them. It returns the first
// error other than ErrStopGroup.
func (w *Workers) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	for i, worker := range w.workers {
		g.Go(func() error {
			err := worker.Run(gCtx)
			if err != nil && !errors.Is(err, ErrStopGroup) {
				w.logger.Err(err).Str("func", "Workers.Run").Int("worker", i).Msg("worker failed")
			}
			return err
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, ErrStopGroup) {
		return err
	}
	return nil
}
