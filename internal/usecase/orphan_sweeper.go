package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/league-portal/internal/domain/media"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

// SweepResult counts what one sweep did with the pending orphans.
type SweepResult struct {
	Scanned  int
	Resolved int
	Failed   int
}

// OrphanSweeper retries object deletes that failed after their rows were removed.
type OrphanSweeper struct {
	orphans   media.OrphanRepository
	store     media.ObjectStore
	logger    *logging.Logger
	batchSize int
	workers   int
}

func NewOrphanSweeper(
	orphans media.OrphanRepository,
	store media.ObjectStore,
	logger *logging.Logger,
	batchSize, workers int,
) *OrphanSweeper {
	if logger == nil {
		logger = logging.Default()
	}
	if batchSize <= 0 {
		batchSize = 50
	}
	if workers <= 0 {
		workers = 1
	}
	return &OrphanSweeper{
		orphans:   orphans,
		store:     store,
		logger:    logger,
		batchSize: batchSize,
		workers:   workers,
	}
}

// Sweep processes one batch of the oldest orphans. Per-object failures are recorded on
// the orphan row and do not fail the sweep.
func (s *OrphanSweeper) Sweep(ctx context.Context) (SweepResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OrphanSweeper.Sweep")
	defer span.End()

	pending, err := s.orphans.ListPending(ctx, s.batchSize)
	if err != nil {
		return SweepResult{}, fmt.Errorf("list pending orphans: %w", err)
	}
	result := SweepResult{Scanned: len(pending)}
	if len(pending) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(pending)))
	if err != nil {
		return SweepResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var resolved, failed atomic.Int32
	var workers sync.WaitGroup
	for _, orphan := range pending {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if s.sweepOne(ctx, orphan) {
				resolved.Add(1)
				return
			}
			failed.Add(1)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return SweepResult{}, fmt.Errorf("submit orphan to worker pool: %w", err)
		}
	}
	workers.Wait()

	result.Resolved = int(resolved.Load())
	result.Failed = int(failed.Load())
	if result.Scanned > 0 {
		s.logger.InfoContext(ctx, "storage orphan sweep finished",
			"scanned", result.Scanned,
			"resolved", result.Resolved,
			"failed", result.Failed,
		)
	}
	return result, nil
}

func (s *OrphanSweeper) sweepOne(ctx context.Context, orphan media.Orphan) bool {
	if err := s.store.Delete(ctx, orphan.ObjectKey); err != nil {
		s.logger.WarnContext(ctx, "storage orphan delete failed",
			"orphan_id", orphan.ID,
			"object_key", orphan.ObjectKey,
			"attempts", orphan.Attempts+1,
			"error", err,
		)
		if markErr := s.orphans.MarkFailed(ctx, orphan.ID, err.Error()); markErr != nil {
			s.logger.ErrorContext(ctx, "mark storage orphan failed", "orphan_id", orphan.ID, "error", markErr)
		}
		return false
	}
	if err := s.orphans.Resolve(ctx, orphan.ID); err != nil {
		s.logger.ErrorContext(ctx, "resolve storage orphan failed", "orphan_id", orphan.ID, "error", err)
		return false
	}
	return true
}
