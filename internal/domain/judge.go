package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutcomeStatus is the terminal classification of one compile-or-execute attempt.
type OutcomeStatus string

const (
	StatusOK                  OutcomeStatus = "OK"
	StatusCompileError        OutcomeStatus = "COMPILE_ERROR"
	StatusCompileTimeout      OutcomeStatus = "COMPILE_TIMEOUT"
	StatusRuntimeError        OutcomeStatus = "RUNTIME_ERROR"
	StatusExecutionTimeout    OutcomeStatus = "EXECUTION_TIMEOUT"
	StatusUnsupportedLanguage OutcomeStatus = "UNSUPPORTED_LANGUAGE"
	StatusInternalError       OutcomeStatus = "INTERNAL_ERROR"
)

// Passed reports whether the attempt itself succeeded (output comparison aside).
func (s OutcomeStatus) Passed() bool {
	return s == StatusOK
}

// Submission is the (source code, language id) pair to be judged.
// Immutable once constructed; owned by a single judge invocation.
type Submission struct {
	SourceCode string `json:"source_code"`
	Language   string `json:"language"`
}

// TestCase pairs an input text with the output it is expected to produce.
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expected_output"`
}

// ExecutionOutcome is produced exactly once per run and never mutated after.
// ExitCode is nil when no process reached the exit path (timeouts, spawn faults).
type ExecutionOutcome struct {
	Status   OutcomeStatus `json:"status"`
	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	ExitCode *int          `json:"exit_code,omitempty"`
	Duration time.Duration `json:"duration"`
}

// LineDiff records one position where actual and expected output disagree.
// Line numbers are 1-based; a side that ran out of lines reports "<missing>".
type LineDiff struct {
	Line     int    `json:"line"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// ComparisonResult is the line-oriented diff of actual vs expected output.
type ComparisonResult struct {
	ExactMatch      bool       `json:"exact_match"`
	LineDiffs       []LineDiff `json:"line_differences"`
	MatchPercentage float64    `json:"match_percentage"`
}

// TestResult is the verdict for one test case within a batch.
type TestResult struct {
	Index      int               `json:"test_case_id"`
	Outcome    ExecutionOutcome  `json:"outcome"`
	Comparison *ComparisonResult `json:"comparison,omitempty"`
}

// Passed reports whether this test case counts as passed: the run must have
// completed OK and the output must match the expected text exactly.
func (r TestResult) Passed() bool {
	return r.Outcome.Status.Passed() && r.Comparison != nil && r.Comparison.ExactMatch
}

// BatchResult aggregates the verdicts of a batch run. Results keep submission
// order and 1-based indexes regardless of per-case failures.
type BatchResult struct {
	Total   int          `json:"total"`
	Passed  int          `json:"passed"`
	Failed  int          `json:"failed"`
	Results []TestResult `json:"results"`
}

// Job is an asynchronous judge task received from the queue.
type Job struct {
	JobID      uuid.UUID  `json:"job_id"`
	Submission Submission `json:"submission"`
	TestCases  []TestCase `json:"test_cases"`
	CreatedAt  time.Time  `json:"created_at"`
}

// JobMessage wraps a Job with the broker acknowledgement callbacks. The worker
// pool calls Ack/Nack only after the judge pipeline has finished.
type JobMessage struct {
	Job  *Job
	Ack  func() error
	Nack func(requeue bool) error
}

// JobVerdict is published to the results queue once a job completes.
type JobVerdict struct {
	JobID      uuid.UUID   `json:"job_id"`
	Language   string      `json:"language"`
	Batch      BatchResult `json:"batch"`
	FinishedAt time.Time   `json:"finished_at"`
}
