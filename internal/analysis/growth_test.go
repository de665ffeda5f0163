package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGrowthRatesReferenceSeries tests the documented end-to-end numbers
func TestGrowthRatesReferenceSeries(t *testing.T) {
	points := GrowthRates(makeSamples([]float64{100, 105, 98, 110, 120}))
	require.Len(t, points, 5)

	baseline := points[0]
	assert.True(t, baseline.Baseline)
	assert.False(t, baseline.Defined)
	assert.Equal(t, 100.0, baseline.Value)
	assert.Equal(t, "baseline", baseline.GrowthLabel())

	assert.True(t, points[1].Defined)
	assert.InDelta(t, 5.0, points[1].GrowthPercent, 1e-9)

	assert.InDelta(t, -6.6666666667, points[2].GrowthPercent, 1e-9)
	assert.InDelta(t, 12.2448979592, points[3].GrowthPercent, 1e-9)
	assert.InDelta(t, 9.0909090909, points[4].GrowthPercent, 1e-9)
}

// TestGrowthRatesZeroBaseline tests the N/A recovery instead of infinity
func TestGrowthRatesZeroBaseline(t *testing.T) {
	points := GrowthRates(makeSamples([]float64{0, 10, 0, 5}))
	require.Len(t, points, 4)

	// Growth over a zero previous value is unavailable, not infinite
	assert.False(t, points[1].Defined)
	assert.Equal(t, "N/A", points[1].GrowthLabel())

	// 0 after 10 is a plain -100%
	assert.True(t, points[2].Defined)
	assert.InDelta(t, -100.0, points[2].GrowthPercent, 1e-9)

	// 5 after 0 is unavailable again
	assert.False(t, points[3].Defined)
	assert.Equal(t, "N/A", points[3].GrowthLabel())
}

// TestGrowthRatesSingleSample tests that one sample is just the baseline
func TestGrowthRatesSingleSample(t *testing.T) {
	points := GrowthRates(makeSamples([]float64{7}))
	require.Len(t, points, 1)
	assert.True(t, points[0].Baseline)
	assert.False(t, points[0].Defined)
}

// TestGrowthLabelFormatting tests display rendering
func TestGrowthLabelFormatting(t *testing.T) {
	up := GrowthPoint{GrowthPercent: 5, Defined: true}
	assert.Equal(t, "+5.00%", up.GrowthLabel())

	down := GrowthPoint{GrowthPercent: -6.67, Defined: true}
	assert.Equal(t, "-6.67%", down.GrowthLabel())
}
