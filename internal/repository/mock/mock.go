package mock

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/minijudge/minijudge/internal/domain"
	"github.com/minijudge/minijudge/internal/repository"
)

// ---- IdempotencyStore mock ----

var _ repository.IdempotencyStore = (*IdempotencyStore)(nil)

// IdempotencyStore is a test double for repository.IdempotencyStore.
type IdempotencyStore struct {
	mu sync.Mutex

	AcquireLockFn func(ctx context.Context, jobID uuid.UUID) (bool, error)
	ReleaseLockFn func(ctx context.Context, jobID uuid.UUID) error

	AcquireCalls []uuid.UUID
	ReleaseCalls []uuid.UUID
}

func (m *IdempotencyStore) AcquireLock(ctx context.Context, jobID uuid.UUID) (bool, error) {
	m.mu.Lock()
	m.AcquireCalls = append(m.AcquireCalls, jobID)
	m.mu.Unlock()
	if m.AcquireLockFn != nil {
		return m.AcquireLockFn(ctx, jobID)
	}
	return true, nil // default: lock acquired
}

func (m *IdempotencyStore) ReleaseLock(ctx context.Context, jobID uuid.UUID) error {
	m.mu.Lock()
	m.ReleaseCalls = append(m.ReleaseCalls, jobID)
	m.mu.Unlock()
	if m.ReleaseLockFn != nil {
		return m.ReleaseLockFn(ctx, jobID)
	}
	return nil
}

// ---- VerdictPublisher mock ----

var _ repository.VerdictPublisher = (*VerdictPublisher)(nil)

// VerdictPublisher is a test double for repository.VerdictPublisher.
type VerdictPublisher struct {
	mu sync.Mutex

	PublishFn func(ctx context.Context, verdict *domain.JobVerdict) error

	Published []*domain.JobVerdict
}

func (m *VerdictPublisher) Publish(ctx context.Context, verdict *domain.JobVerdict) error {
	m.mu.Lock()
	m.Published = append(m.Published, verdict)
	m.mu.Unlock()
	if m.PublishFn != nil {
		return m.PublishFn(ctx, verdict)
	}
	return nil
}

// ---- BatchJudge mock ----

var _ repository.BatchJudge = (*BatchJudge)(nil)

// BatchJudge is a test double for repository.BatchJudge.
type BatchJudge struct {
	mu sync.Mutex

	RunManyFn func(ctx context.Context, sub domain.Submission, cases []domain.TestCase) domain.BatchResult

	RunManyCalls []domain.Submission
}

func (m *BatchJudge) RunMany(ctx context.Context, sub domain.Submission, cases []domain.TestCase) domain.BatchResult {
	m.mu.Lock()
	m.RunManyCalls = append(m.RunManyCalls, sub)
	m.mu.Unlock()
	if m.RunManyFn != nil {
		return m.RunManyFn(ctx, sub, cases)
	}
	return domain.BatchResult{
		Total:  len(cases),
		Passed: len(cases),
		Results: func() []domain.TestResult {
			out := make([]domain.TestResult, len(cases))
			for i := range cases {
				out[i] = domain.TestResult{
					Index:      i + 1,
					Outcome:    domain.ExecutionOutcome{Status: domain.StatusOK},
					Comparison: &domain.ComparisonResult{ExactMatch: true, MatchPercentage: 100},
				}
			}
			return out
		}(),
	}
}
