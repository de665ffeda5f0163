package analysis

import (
	"math"

	apperrors "trendcli/internal/errors"
)

// Summarize computes descriptive statistics over a value slice.
//
// Variance is the population variance (divide by N, not N-1), keeping the
// numbers consistent with the rest of the engine; a single-sample slice has
// stddev 0. An empty slice is a contract violation by the caller: callers
// working on sub-slices, such as seasonality windows, must guard
// independently.
func Summarize(values []float64) (StatisticsSummary, error) {
	if len(values) == 0 {
		return StatisticsSummary{}, apperrors.EmptySeriesError("Summarize")
	}

	n := float64(len(values))

	sum := 0.0
	min := values[0]
	max := values[0]
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	mean := sum / n

	sumSq := 0.0
	for _, v := range values {
		diff := v - mean
		sumSq += diff * diff
	}
	variance := sumSq / n

	return StatisticsSummary{
		Count:    len(values),
		Mean:     mean,
		StdDev:   math.Sqrt(variance),
		Variance: variance,
		Min:      min,
		Max:      max,
	}, nil
}
