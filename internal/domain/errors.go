package domain

import "errors"

var (
	// ErrEmptySourceCode is returned when a submission carries no source text.
	ErrEmptySourceCode = errors.New("source code cannot be empty")

	// ErrNoTestCases is returned when a batch request carries no test cases.
	ErrNoTestCases = errors.New("at least one test case is required")

	// ErrPublishFailed is returned when the message broker publish fails.
	ErrPublishFailed = errors.New("failed to publish to message queue")
)
