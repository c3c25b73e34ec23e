package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/minijudge/minijudge/internal/domain"
)

// IdempotencyStore defines the interface for distributed deduplication locks.
type IdempotencyStore interface {
	// AcquireLock attempts to acquire an exclusive processing lock for a job.
	// Returns true if the lock was acquired (first time), false if already locked (duplicate).
	AcquireLock(ctx context.Context, jobID uuid.UUID) (bool, error)

	// ReleaseLock releases the processing lock with a TTL for eventual cleanup.
	ReleaseLock(ctx context.Context, jobID uuid.UUID) error
}

// VerdictPublisher delivers finished job verdicts to downstream consumers.
type VerdictPublisher interface {
	Publish(ctx context.Context, verdict *domain.JobVerdict) error
}

// BatchJudge runs a submission against a batch of test cases.
type BatchJudge interface {
	RunMany(ctx context.Context, sub domain.Submission, cases []domain.TestCase) domain.BatchResult
}
