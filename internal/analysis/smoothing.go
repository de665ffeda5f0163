package analysis

import (
	apperrors "trendcli/internal/errors"
)

// MovingAverage computes the trailing-window mean series. The output has
// the same length as the input; element i averages the trailing
// min(window, i+1) values, so partial windows at the start of the series
// use fewer points instead of zero-padding, which would bias early
// outputs toward zero.
func MovingAverage(values []float64, window int) ([]float64, error) {
	if window < 1 {
		return nil, apperrors.InvalidWindowError(window)
	}

	// Each window is summed directly rather than maintained as a rolling
	// sum. A rolling sum drifts by accumulated rounding error, which breaks
	// the window-1 identity on values like 0.1.
	smoothed := make([]float64, len(values))
	for i := range values {
		start := i + 1 - window
		if start < 0 {
			start = 0
		}
		sum := 0.0
		for _, v := range values[start : i+1] {
			sum += v
		}
		smoothed[i] = sum / float64(i+1-start)
	}

	return smoothed, nil
}
