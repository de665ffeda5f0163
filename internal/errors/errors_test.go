package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPredefinedErrors tests the analysis error taxonomy
func TestPredefinedErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   *AnalysisError
		code  string
		fatal bool
	}{
		{"empty dataset", ErrEmptyDataset, "EMPTY_DATASET", true},
		{"empty series", ErrEmptySeries, "EMPTY_SERIES", false},
		{"degenerate trend", ErrDegenerateTrend, "DEGENERATE_TREND", false},
		{"invalid horizon", ErrInvalidHorizon, "INVALID_HORIZON", false},
		{"invalid window", ErrInvalidWindow, "INVALID_WINDOW", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.ErrorCode)
			assert.Equal(t, tt.fatal, IsFatal(tt.err))
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestDetailHelpersMatchSentinels verifies errors.Is works across detail helpers
func TestDetailHelpersMatchSentinels(t *testing.T) {
	assert.True(t, stderrors.Is(EmptyDatasetError(10, 10), ErrEmptyDataset))
	assert.True(t, stderrors.Is(DegenerateTrendError(1), ErrDegenerateTrend))
	assert.True(t, stderrors.Is(InvalidHorizonError(0), ErrInvalidHorizon))
	assert.True(t, stderrors.Is(InvalidWindowError(-3), ErrInvalidWindow))
	assert.True(t, stderrors.Is(EmptySeriesError("Summarize"), ErrEmptySeries))

	// Wrapping with fmt keeps the match
	wrapped := fmt.Errorf("trend report: %w", DegenerateTrendError(1))
	assert.True(t, stderrors.Is(wrapped, ErrDegenerateTrend))
	assert.False(t, stderrors.Is(wrapped, ErrInvalidHorizon))
}

// TestErrorMessageIncludesDetails tests detail formatting
func TestErrorMessageIncludesDetails(t *testing.T) {
	err := DegenerateTrendError(1)
	assert.Contains(t, err.Error(), "have 1 samples")

	plain := New("SOME_CODE", "some message")
	assert.Equal(t, "some message", plain.Error())
}

// TestExitCode tests CLI exit code mapping
func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(ErrEmptyDataset))
	assert.Equal(t, 1, ExitCode(stderrors.New("anything")))
}
