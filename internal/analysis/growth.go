package analysis

import (
	"trendcli/internal/series"
)

// GrowthRates computes the period-over-period percentage change for each
// sample. The first sample is the baseline and has no growth figure. For
// i ≥ 1:
//
//	growth% = (value[i] − value[i−1]) / value[i−1] × 100
//
// When the previous value is zero the growth is reported as undefined
// ("N/A") instead of propagating an infinite result.
func GrowthRates(samples []series.Sample) []GrowthPoint {
	points := make([]GrowthPoint, len(samples))

	for i, s := range samples {
		point := GrowthPoint{
			PeriodIndex: i,
			Label:       s.Label,
			Value:       s.Value,
		}

		if i == 0 {
			point.Baseline = true
		} else if prev := samples[i-1].Value; prev != 0 {
			point.GrowthPercent = (s.Value - prev) / prev * 100
			point.Defined = true
		}

		points[i] = point
	}

	return points
}
