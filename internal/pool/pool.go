package pool

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/minijudge/minijudge/internal/domain"
	"github.com/minijudge/minijudge/internal/metrics"
	"github.com/minijudge/minijudge/internal/usecase"
)

// WorkerPool manages a fixed-size pool of goroutines that process jobs.
type WorkerPool struct {
	size    int
	jobs    <-chan *domain.JobMessage
	judgeUC *usecase.JudgeJobUsecase
	logger  *zap.Logger
	wg      sync.WaitGroup
}

// NewWorkerPool creates a new fixed-size worker pool.
func NewWorkerPool(size int, jobs <-chan *domain.JobMessage, judgeUC *usecase.JudgeJobUsecase, logger *zap.Logger) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    jobs,
		judgeUC: judgeUC,
		logger:  logger,
	}
}

// Start launches all worker goroutines. Call Stop to wait for them to finish.
func (p *WorkerPool) Start(ctx context.Context) {
	p.logger.Info("Starting worker pool", zap.Int("pool_size", p.size))

	for i := 0; i < p.size; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

// Stop waits for all workers to finish their current jobs and exit.
func (p *WorkerPool) Stop() {
	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

func (p *WorkerPool) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Worker panic recovered",
				zap.Int("worker_id", id),
				zap.Any("panic", r),
			)
		}
	}()

	p.logger.Debug("Worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("Worker shutting down", zap.Int("worker_id", id))
			return
		case msg, ok := <-p.jobs:
			if !ok {
				p.logger.Debug("Job channel closed", zap.Int("worker_id", id))
				return
			}

			p.process(ctx, id, msg)
		}
	}
}

func (p *WorkerPool) process(ctx context.Context, id int, msg *domain.JobMessage) {
	job := msg.Job

	p.logger.Info("Worker processing job",
		zap.Int("worker_id", id),
		zap.String("job_id", job.JobID.String()),
		zap.String("language", job.Submission.Language),
		zap.Int("test_cases", len(job.TestCases)),
	)

	metrics.WorkersActive.Inc()
	isDuplicate, err := p.judgeUC.Execute(ctx, job)
	metrics.WorkersActive.Dec()

	if err != nil {
		p.logger.Error("Job execution failed",
			zap.Int("worker_id", id),
			zap.String("job_id", job.JobID.String()),
			zap.Error(err),
		)

		// Nack without requeue — failed jobs go to DLQ.
		// Requeuing a deterministic failure would cause an infinite loop.
		if nackErr := msg.Nack(false); nackErr != nil {
			p.logger.Error("Failed to NACK message",
				zap.String("job_id", job.JobID.String()),
				zap.Error(nackErr),
			)
		}
		return
	}

	if isDuplicate {
		p.logger.Debug("Duplicate job skipped",
			zap.Int("worker_id", id),
			zap.String("job_id", job.JobID.String()),
		)
	}

	// Duplicates are still ACKed so the message leaves the queue.
	if ackErr := msg.Ack(); ackErr != nil {
		p.logger.Error("Failed to ACK message",
			zap.String("job_id", job.JobID.String()),
			zap.Error(ackErr),
		)
	}
}
