package pool_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minijudge/minijudge/internal/domain"
	"github.com/minijudge/minijudge/internal/pool"
	"github.com/minijudge/minijudge/internal/repository/mock"
	"github.com/minijudge/minijudge/internal/usecase"
)

func newTestPool(t *testing.T, poolSize int, judge *mock.BatchJudge, pub *mock.VerdictPublisher) (chan *domain.JobMessage, *pool.WorkerPool, context.CancelFunc) {
	t.Helper()

	logger := zap.NewNop()
	idem := &mock.IdempotencyStore{}
	uc := usecase.NewJudgeJobUsecase(idem, judge, pub, logger)

	ch := make(chan *domain.JobMessage, 16)
	ctx, cancel := context.WithCancel(context.Background())
	wp := pool.NewWorkerPool(poolSize, ch, uc, logger)
	wp.Start(ctx)

	return ch, wp, cancel
}

func sendJob(ch chan<- *domain.JobMessage, acked *atomic.Int32, nacked *atomic.Int32) {
	ch <- &domain.JobMessage{
		Job: &domain.Job{
			JobID: uuid.New(),
			Submission: domain.Submission{
				SourceCode: "print('test')",
				Language:   "python",
			},
			TestCases: []domain.TestCase{{Input: "", ExpectedOutput: "test"}},
		},
		Ack: func() error {
			acked.Add(1)
			return nil
		},
		Nack: func(requeue bool) error {
			nacked.Add(1)
			return nil
		},
	}
}

// Test: pool processes jobs and ACKs them.
func TestPool_ProcessAndAck(t *testing.T) {
	judge := &mock.BatchJudge{}
	pub := &mock.VerdictPublisher{}
	ch, wp, cancel := newTestPool(t, 2, judge, pub)

	var acked, nacked atomic.Int32

	for i := 0; i < 5; i++ {
		sendJob(ch, &acked, &nacked)
	}

	// Give workers time to process.
	time.Sleep(200 * time.Millisecond)

	cancel()
	wp.Stop()

	if acked.Load() != 5 {
		t.Errorf("expected 5 ACKs, got %d", acked.Load())
	}
	if nacked.Load() != 0 {
		t.Errorf("expected 0 NACKs, got %d", nacked.Load())
	}
	if len(pub.Published) != 5 {
		t.Errorf("expected 5 published verdicts, got %d", len(pub.Published))
	}
}

// Test: pool NACKs (without requeue) jobs whose publish fails.
func TestPool_NacksOnFailure(t *testing.T) {
	judge := &mock.BatchJudge{}
	pub := &mock.VerdictPublisher{
		PublishFn: func(ctx context.Context, verdict *domain.JobVerdict) error {
			return domain.ErrPublishFailed
		},
	}
	ch, wp, cancel := newTestPool(t, 1, judge, pub)

	var acked, nacked atomic.Int32
	sendJob(ch, &acked, &nacked)

	time.Sleep(200 * time.Millisecond)

	cancel()
	wp.Stop()

	if nacked.Load() != 1 {
		t.Errorf("expected 1 NACK, got %d", nacked.Load())
	}
	if acked.Load() != 0 {
		t.Errorf("expected 0 ACKs, got %d", acked.Load())
	}
}

// Test: workers drain and exit when the job channel closes.
func TestPool_StopsOnClosedChannel(t *testing.T) {
	judge := &mock.BatchJudge{}
	ch, wp, cancel := newTestPool(t, 3, judge, &mock.VerdictPublisher{})
	defer cancel()

	var acked, nacked atomic.Int32
	sendJob(ch, &acked, &nacked)
	close(ch)

	done := make(chan struct{})
	go func() {
		wp.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pool did not stop after channel close")
	}

	if acked.Load() != 1 {
		t.Errorf("expected in-flight job to finish, acks=%d", acked.Load())
	}
}
