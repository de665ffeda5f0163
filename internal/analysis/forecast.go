package analysis

import (
	apperrors "trendcli/internal/errors"
)

// confidenceZ is the 95% normal quantile used for the forecast margin
const confidenceZ = 1.96

// Forecast extrapolates the trend line periodsAhead periods beyond the
// sample window. For offset k the line is evaluated at index N−1+k, where
// N is the summary count.
//
// The confidence margin is confidenceZ × stddev and is the same width at
// every horizon. A true prediction interval widens with distance; the
// fixed width is a documented simplification kept so reported numbers stay
// stable.
func Forecast(model TrendModel, summary StatisticsSummary, periodsAhead int) ([]ForecastPoint, error) {
	if periodsAhead < 1 {
		return nil, apperrors.InvalidHorizonError(periodsAhead)
	}

	margin := confidenceZ * summary.StdDev
	lastIndex := float64(summary.Count - 1)

	points := make([]ForecastPoint, periodsAhead)
	for k := 1; k <= periodsAhead; k++ {
		value := model.ValueAt(lastIndex + float64(k))
		points[k-1] = ForecastPoint{
			PeriodOffset: k,
			Value:        value,
			LowerBound:   value - margin,
			UpperBound:   value + margin,
		}
	}

	return points, nil
}
