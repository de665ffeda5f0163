package analysis

import (
	"math"
)

// DefaultSeasonalityPeriods are the candidate periods scored when the
// caller supplies none
var DefaultSeasonalityPeriods = []int{7, 12, 24, 30}

// Classification thresholds for the normalized score.
const (
	strongSeasonality   = 0.7
	moderateSeasonality = 0.4
)

// DetectSeasonality scores each candidate period p with enough data
// (count ≥ 2p).
//
// The legacy Score is the mean over i ∈ [0, count−p) of value[i]·value[i+p]:
// an uncentered, unnormalized second-moment product. It is scale-dependent
// and must not be silently normalized away, since that would change
// reported magnitudes. NormalizedScore is the Pearson-style autocorrelation
// at the same lag, exposed alongside as a labeled enhancement, and drives
// the Strength classification.
//
// Candidates without enough data are omitted from the result rather than
// scored as zero.
func DetectSeasonality(values []float64, periods []int) []SeasonalityScore {
	if len(periods) == 0 {
		periods = DefaultSeasonalityPeriods
	}

	var scores []SeasonalityScore
	for _, p := range periods {
		if p < 1 || len(values) < 2*p {
			continue
		}

		normalized := autocorrelation(values, p)
		scores = append(scores, SeasonalityScore{
			Period:          p,
			Score:           lagProduct(values, p),
			NormalizedScore: normalized,
			Strength:        classifyStrength(normalized),
		})
	}

	return scores
}

// lagProduct computes the legacy mean lag-product statistic at lag p
func lagProduct(values []float64, p int) float64 {
	n := len(values) - p
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += values[i] * values[i+p]
	}
	return sum / float64(n)
}

// autocorrelation computes the sample autocorrelation at lag p, with the
// full-series mean and variance as the reference. Returns 0 for a
// constant series.
func autocorrelation(values []float64, p int) float64 {
	n := len(values)

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)

	var numerator, denominator float64
	for i := 0; i < n-p; i++ {
		numerator += (values[i] - mean) * (values[i+p] - mean)
	}
	for _, v := range values {
		diff := v - mean
		denominator += diff * diff
	}

	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// classifyStrength maps a normalized score onto the reporting heuristic
func classifyStrength(normalized float64) string {
	switch {
	case math.Abs(normalized) >= strongSeasonality:
		return "strong"
	case math.Abs(normalized) >= moderateSeasonality:
		return "moderate"
	default:
		return "weak"
	}
}
