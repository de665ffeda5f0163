package errors

import (
	"fmt"
)

// AnalysisError represents a structured analysis error with a stable code
type AnalysisError struct {
	ErrorCode string      `json:"error_code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Fatal     bool        `json:"-"`
}

// Error implements the error interface
func (e *AnalysisError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Details)
	}
	return e.Message
}

// Is reports whether target carries the same error code, so wrapped
// instances created with detail helpers still match the predefined errors
func (e *AnalysisError) Is(target error) bool {
	t, ok := target.(*AnalysisError)
	if !ok {
		return false
	}
	return e.ErrorCode == t.ErrorCode
}

// New creates a new AnalysisError with the given parameters
func New(errorCode, message string) *AnalysisError {
	return &AnalysisError{
		ErrorCode: errorCode,
		Message:   message,
	}
}

// NewWithDetails creates a new AnalysisError with additional details
func NewWithDetails(errorCode, message string, details interface{}) *AnalysisError {
	return &AnalysisError{
		ErrorCode: errorCode,
		Message:   message,
		Details:   details,
	}
}

// Predefined error types for the analysis taxonomy
var (
	// ErrEmptyDataset means no numeric samples survived parsing. Fatal:
	// the whole run aborts.
	ErrEmptyDataset = &AnalysisError{
		ErrorCode: "EMPTY_DATASET",
		Message:   "no numeric samples parsed from input",
		Fatal:     true,
	}

	// ErrEmptySeries means an empty value slice reached a statistics
	// routine. This is a contract violation by the caller, not bad input.
	ErrEmptySeries = New("EMPTY_SERIES", "empty value series passed to statistics")

	// ErrDegenerateTrend means the OLS denominator is numerically zero
	// (fewer than two samples). Trend and forecast reports are skipped;
	// independent reports still complete.
	ErrDegenerateTrend = New("DEGENERATE_TREND", "not enough samples to fit a trend line")

	// ErrInvalidHorizon rejects a non-positive forecast horizon at the
	// configuration boundary.
	ErrInvalidHorizon = New("INVALID_HORIZON", "forecast periods must be at least 1")

	// ErrInvalidWindow rejects a non-positive moving-average window at the
	// configuration boundary.
	ErrInvalidWindow = New("INVALID_WINDOW", "moving average window must be at least 1")
)

// Helper functions for specific error types

// EmptyDatasetError creates a fatal empty-dataset error carrying parse counters
func EmptyDatasetError(totalLines, skippedLines int) *AnalysisError {
	return &AnalysisError{
		ErrorCode: "EMPTY_DATASET",
		Message:   "no numeric samples parsed from input",
		Details:   fmt.Sprintf("%d lines read, %d skipped as non-numeric", totalLines, skippedLines),
		Fatal:     true,
	}
}

// EmptySeriesError creates an empty-series error naming the offending call site
func EmptySeriesError(operation string) *AnalysisError {
	return NewWithDetails("EMPTY_SERIES", "empty value series passed to statistics", operation)
}

// DegenerateTrendError creates a degenerate-trend error carrying the sample count
func DegenerateTrendError(sampleCount int) *AnalysisError {
	return NewWithDetails("DEGENERATE_TREND", "not enough samples to fit a trend line",
		fmt.Sprintf("have %d samples, need at least 2", sampleCount))
}

// InvalidHorizonError creates an invalid-horizon error carrying the rejected value
func InvalidHorizonError(periods int) *AnalysisError {
	return NewWithDetails("INVALID_HORIZON", "forecast periods must be at least 1", periods)
}

// InvalidWindowError creates an invalid-window error carrying the rejected value
func InvalidWindowError(window int) *AnalysisError {
	return NewWithDetails("INVALID_WINDOW", "moving average window must be at least 1", window)
}

// IsFatal reports whether err should abort the whole run rather than
// degrade it to a partial set of reports
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if ae, ok := err.(*AnalysisError); ok {
		return ae.Fatal
	}
	return false
}

// ExitCode maps an error to the process exit code for the CLI boundary
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
