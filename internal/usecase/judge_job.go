package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/minijudge/minijudge/internal/domain"
	"github.com/minijudge/minijudge/internal/repository"
)

// JudgeJobUsecase orchestrates one queued job: idempotency check → batch
// judge → verdict publish.
type JudgeJobUsecase struct {
	idempotent repository.IdempotencyStore
	judge      repository.BatchJudge
	publisher  repository.VerdictPublisher
	logger     *zap.Logger
}

// NewJudgeJobUsecase creates a new JudgeJobUsecase.
func NewJudgeJobUsecase(
	idempotent repository.IdempotencyStore,
	judge repository.BatchJudge,
	publisher repository.VerdictPublisher,
	logger *zap.Logger,
) *JudgeJobUsecase {
	return &JudgeJobUsecase{
		idempotent: idempotent,
		judge:      judge,
		publisher:  publisher,
		logger:     logger,
	}
}

// Execute processes a single job end to end. Returns (isDuplicate, error).
func (uc *JudgeJobUsecase) Execute(ctx context.Context, job *domain.Job) (bool, error) {
	acquired, err := uc.idempotent.AcquireLock(ctx, job.JobID)
	if err != nil {
		uc.logger.Error("Failed to acquire idempotency lock",
			zap.Error(err), zap.String("job_id", job.JobID.String()))
		return false, err
	}
	if !acquired {
		uc.logger.Info("Duplicate message detected, skipping",
			zap.String("job_id", job.JobID.String()))
		return true, nil
	}

	batch := uc.judge.RunMany(ctx, job.Submission, job.TestCases)

	verdict := &domain.JobVerdict{
		JobID:      job.JobID,
		Language:   job.Submission.Language,
		Batch:      batch,
		FinishedAt: time.Now().UTC(),
	}

	if err := uc.publisher.Publish(ctx, verdict); err != nil {
		uc.logger.Error("Failed to publish verdict",
			zap.Error(err), zap.String("job_id", job.JobID.String()))
		return false, err
	}

	// Keep the lock with a TTL so late redeliveries stay deduplicated.
	_ = uc.idempotent.ReleaseLock(ctx, job.JobID)

	uc.logger.Info("Job judged",
		zap.String("job_id", job.JobID.String()),
		zap.String("language", job.Submission.Language),
		zap.Int("passed", batch.Passed),
		zap.Int("failed", batch.Failed),
	)

	return false, nil
}
