package analysis

import (
	apperrors "trendcli/internal/errors"
)

// FitTrend fits an ordinary-least-squares line to the values, using the
// zero-based sample index as the independent variable. The opaque time
// label is never part of the fit.
//
//	slope     = (N·Σxy − Σx·Σy) / (N·Σx² − (Σx)²)
//	intercept = (Σy − slope·Σx) / N
//
// Returns a degenerate-trend error when the denominator is numerically
// zero, which happens with fewer than two samples.
func FitTrend(values []float64) (TrendModel, error) {
	n := float64(len(values))

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range values {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denominator := n*sumXX - sumX*sumX
	if denominator == 0 {
		return TrendModel{}, apperrors.DegenerateTrendError(len(values))
	}

	slope := (n*sumXY - sumX*sumY) / denominator
	intercept := (sumY - slope*sumX) / n

	return TrendModel{Slope: slope, Intercept: intercept}, nil
}
