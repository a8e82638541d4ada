package app

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

const sweepTimeout = 2 * time.Minute

// newSweepScheduler registers the orphan sweep as a singleton interval job. The scheduler
// is returned unstarted.
func newSweepScheduler(sweeper *usecase.OrphanSweeper, interval time.Duration, logger *logging.Logger) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			runSweep(sweeper, logger)
		}),
		gocron.WithName("storage-orphan-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}
	return sched, nil
}

func runSweep(sweeper *usecase.OrphanSweeper, logger *logging.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	result, err := sweeper.Sweep(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "storage orphan sweep failed", "error", err)
		return
	}
	if result.Scanned > 0 {
		logger.InfoContext(ctx, "storage orphan sweep finished",
			"scanned", result.Scanned,
			"resolved", result.Resolved,
			"failed", result.Failed,
		)
	}
}
