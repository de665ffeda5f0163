package analysis

import (
	"trendcli/internal/series"
)

// DefaultAnomalyThresholdSigma is the default flagging threshold in
// standard deviations
const DefaultAnomalyThresholdSigma = 3.0

// DetectAnomalies flags samples strictly outside
// mean ± thresholdSigma·stddev. Values exactly on a bound are not
// anomalous. Output preserves sample order.
//
// A non-positive threshold falls back to the default. There is no fatal
// path: on a constant series the bounds collapse to zero width and every
// non-equal value is flagged, which is the intended behavior.
func DetectAnomalies(samples []series.Sample, summary StatisticsSummary, thresholdSigma float64) AnomalyReport {
	if thresholdSigma <= 0 {
		thresholdSigma = DefaultAnomalyThresholdSigma
	}

	lower := summary.Mean - thresholdSigma*summary.StdDev
	upper := summary.Mean + thresholdSigma*summary.StdDev

	report := AnomalyReport{
		ThresholdSigma: thresholdSigma,
		LowerBound:     lower,
		UpperBound:     upper,
	}

	for _, s := range samples {
		if s.Value < lower || s.Value > upper {
			report.Flagged = append(report.Flagged, FlaggedSample{
				Index: s.Index,
				Label: s.Label,
				Value: s.Value,
			})
		}
	}

	return report
}
