// Package judge turns (code, language, input, expected output) into a verdict.
package judge

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/minijudge/minijudge/internal/domain"
	"github.com/minijudge/minijudge/internal/language"
	"github.com/minijudge/minijudge/internal/metrics"
	"github.com/minijudge/minijudge/internal/workspace"
)

// Judge drives submissions through the workspace, compile, execute and
// compare stages. It holds no mutable state, so one instance may serve
// concurrent runs; each run owns its workspace exclusively.
type Judge struct {
	registry *language.Registry
	timeout  time.Duration
	logger   *zap.Logger
}

// New creates a Judge with the given per-stage timeout budget.
func New(registry *language.Registry, timeout time.Duration, logger *zap.Logger) *Judge {
	return &Judge{
		registry: registry,
		timeout:  timeout,
		logger:   logger,
	}
}

// Result is the verdict of a single run: the execution outcome plus, when an
// expected output was supplied, its comparison.
type Result struct {
	Outcome    domain.ExecutionOutcome
	Comparison *domain.ComparisonResult
}

// RunOne judges a single (submission, stdin, expected) triple. The expected
// output is optional; when nil no comparison is produced. Every failure mode
// surfaces as a populated outcome, never as a panic or a bare error.
func (j *Judge) RunOne(ctx context.Context, sub domain.Submission, stdin string, expected *string) Result {
	outcome := j.runPipeline(ctx, sub, stdin)

	metrics.JudgementsTotal.WithLabelValues(sub.Language, string(outcome.Status)).Inc()

	res := Result{Outcome: outcome}
	if expected != nil {
		cmp := Compare(outcome.Stdout, *expected)
		res.Comparison = &cmp
	}
	return res
}

// RunMany judges every test case in submission order, running the full
// pipeline once per case. Cases are independent: a failure on one never
// affects the execution or reported status of the next.
func (j *Judge) RunMany(ctx context.Context, sub domain.Submission, cases []domain.TestCase) domain.BatchResult {
	batch := domain.BatchResult{
		Total:   len(cases),
		Results: make([]domain.TestResult, 0, len(cases)),
	}

	for i, tc := range cases {
		expected := tc.ExpectedOutput
		res := j.RunOne(ctx, sub, tc.Input, &expected)

		tr := domain.TestResult{
			Index:      i + 1,
			Outcome:    res.Outcome,
			Comparison: res.Comparison,
		}
		if tr.Passed() {
			batch.Passed++
		} else {
			batch.Failed++
		}
		batch.Results = append(batch.Results, tr)
	}

	j.logger.Info("batch judged",
		zap.String("language", sub.Language),
		zap.Int("total", batch.Total),
		zap.Int("passed", batch.Passed),
		zap.Int("failed", batch.Failed),
	)

	return batch
}

// runPipeline is the workspace → compile → execute sequence for one run.
func (j *Judge) runPipeline(ctx context.Context, sub domain.Submission, stdin string) domain.ExecutionOutcome {
	profile, err := j.registry.Resolve(sub.Language)
	if err != nil {
		// No workspace is created for an unknown language.
		return domain.ExecutionOutcome{
			Status: domain.StatusUnsupportedLanguage,
			Stderr: err.Error(),
		}
	}

	runID := uuid.New().String()

	ws, err := workspace.Acquire(runID, sub.SourceCode, profile)
	if err != nil {
		metrics.PipelineFaults.Inc()
		j.logger.Error("workspace acquisition failed",
			zap.String("run_id", runID),
			zap.Error(err),
		)
		return domain.ExecutionOutcome{
			Status: domain.StatusInternalError,
			Stderr: "failed to prepare workspace: " + err.Error(),
		}
	}
	defer ws.Release()

	if failed := j.compile(ctx, profile, ws); failed != nil {
		return *failed
	}

	return j.execute(ctx, profile, ws, stdin)
}
