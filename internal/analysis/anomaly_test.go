package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trendcli/internal/series"
)

func makeSamples(values []float64) []series.Sample {
	samples := make([]series.Sample, len(values))
	for i, v := range values {
		samples[i] = series.Sample{Index: i, Value: v}
	}
	return samples
}

// TestDetectAnomaliesConstantSeries tests degenerate zero-width bounds
func TestDetectAnomaliesConstantSeries(t *testing.T) {
	t.Run("all equal flags nothing", func(t *testing.T) {
		values := []float64{5, 5, 5, 5, 5}
		summary, err := Summarize(values)
		require.NoError(t, err)

		report := DetectAnomalies(makeSamples(values), summary, 3.0)
		assert.Empty(t, report.Flagged)
		assert.Equal(t, 5.0, report.LowerBound)
		assert.Equal(t, 5.0, report.UpperBound)
	})

	t.Run("near-constant flags every outlier", func(t *testing.T) {
		// stddev is dominated by the one outlier, but the point is the
		// strict comparison: with zero-width bounds every non-equal value
		// would be flagged, which a constant-plus-spike series shows.
		values := []float64{5, 5, 5, 5, 500}
		summary, err := Summarize(values)
		require.NoError(t, err)

		// Tight threshold so the spike falls outside
		report := DetectAnomalies(makeSamples(values), summary, 1.0)
		require.Len(t, report.Flagged, 1)
		assert.Equal(t, 4, report.Flagged[0].Index)
		assert.Equal(t, 500.0, report.Flagged[0].Value)
	})
}

// TestDetectAnomaliesStrictBounds tests that boundary values are not flagged
func TestDetectAnomaliesStrictBounds(t *testing.T) {
	summary := StatisticsSummary{Mean: 10, StdDev: 2}
	// Bounds at threshold 2: [6, 14]
	samples := makeSamples([]float64{6, 14, 5.999, 14.001, 10})

	report := DetectAnomalies(samples, summary, 2.0)
	require.Len(t, report.Flagged, 2)
	assert.Equal(t, 5.999, report.Flagged[0].Value)
	assert.Equal(t, 14.001, report.Flagged[1].Value)
	assert.Equal(t, 6.0, report.LowerBound)
	assert.Equal(t, 14.0, report.UpperBound)
}

// TestDetectAnomaliesOrderPreserved tests output ordering
func TestDetectAnomaliesOrderPreserved(t *testing.T) {
	summary := StatisticsSummary{Mean: 0, StdDev: 1}
	samples := []series.Sample{
		{Index: 0, Label: "a", Value: 10},
		{Index: 1, Label: "b", Value: 0},
		{Index: 2, Label: "c", Value: -10},
		{Index: 3, Label: "d", Value: 8},
	}

	report := DetectAnomalies(samples, summary, 3.0)
	require.Len(t, report.Flagged, 3)
	assert.Equal(t, []string{"a", "c", "d"}, []string{
		report.Flagged[0].Label,
		report.Flagged[1].Label,
		report.Flagged[2].Label,
	})
}

// TestDetectAnomaliesDefaultThreshold tests the non-positive fallback
func TestDetectAnomaliesDefaultThreshold(t *testing.T) {
	summary := StatisticsSummary{Mean: 0, StdDev: 1}
	report := DetectAnomalies(makeSamples([]float64{0}), summary, 0)
	assert.Equal(t, DefaultAnomalyThresholdSigma, report.ThresholdSigma)
	assert.Equal(t, -3.0, report.LowerBound)
	assert.Equal(t, 3.0, report.UpperBound)
}
