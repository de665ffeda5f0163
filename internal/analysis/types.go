package analysis

import (
	"fmt"
	"time"
)

// StatisticsSummary contains descriptive statistics over a value series.
// It is derived on demand and never cached across calls.
type StatisticsSummary struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"stddev"`
	Variance float64 `json:"variance"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
}

// TrendDirection classifies a fitted slope for reporting
type TrendDirection string

const (
	// TrendIncreasing means the slope exceeds the dead-band
	TrendIncreasing TrendDirection = "increasing"
	// TrendDecreasing means the slope falls below the negative dead-band
	TrendDecreasing TrendDirection = "decreasing"
	// TrendStable means the slope sits inside the dead-band
	TrendStable TrendDirection = "stable"
)

// slopeDeadBand is the half-width of the "stable" classification band
const slopeDeadBand = 0.001

// TrendModel is an ordinary-least-squares line fit over the zero-based
// sample index
type TrendModel struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// ValueAt evaluates the trend line at index x
func (m TrendModel) ValueAt(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// Direction classifies the slope using the reporting dead-band
func (m TrendModel) Direction() TrendDirection {
	switch {
	case m.Slope > slopeDeadBand:
		return TrendIncreasing
	case m.Slope < -slopeDeadBand:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// ForecastPoint is one extrapolated period beyond the sample window
type ForecastPoint struct {
	// PeriodOffset is the distance beyond the last sample, starting at 1
	PeriodOffset int     `json:"period_offset"`
	Value        float64 `json:"value"`
	LowerBound   float64 `json:"lower_bound"`
	UpperBound   float64 `json:"upper_bound"`
}

// FlaggedSample is one observation outside the anomaly bounds
type FlaggedSample struct {
	Index int     `json:"index"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// AnomalyReport lists samples outside mean ± thresholdSigma·stddev,
// in sample order
type AnomalyReport struct {
	ThresholdSigma float64         `json:"threshold_sigma"`
	LowerBound     float64         `json:"lower_bound"`
	UpperBound     float64         `json:"upper_bound"`
	Flagged        []FlaggedSample `json:"flagged"`
}

// GrowthPoint is the period-over-period change for one sample
type GrowthPoint struct {
	PeriodIndex   int     `json:"period_index"`
	Label         string  `json:"label"`
	Value         float64 `json:"value"`
	GrowthPercent float64 `json:"growth_percent"`
	// Defined is false for the baseline sample and whenever the previous
	// value is zero; GrowthPercent is meaningless in those cases
	Defined bool `json:"defined"`
	// Baseline marks the first sample
	Baseline bool `json:"baseline"`
}

// GrowthLabel renders the growth column for display: the percentage,
// "baseline" for the first sample, or "N/A" when undefined
func (g GrowthPoint) GrowthLabel() string {
	switch {
	case g.Baseline:
		return "baseline"
	case !g.Defined:
		return "N/A"
	default:
		return fmt.Sprintf("%+.2f%%", g.GrowthPercent)
	}
}

// SeasonalityScore scores one candidate period.
//
// Score is the legacy lag-product statistic: the mean of value[i]·value[i+p].
// It is uncentered and unnormalized, so it is scale-dependent and is NOT a
// Pearson autocorrelation; its numbers are preserved as-is for continuity.
// NormalizedScore is the Pearson-style autocorrelation at the same lag,
// bounded to [-1, 1], and is what the Strength heuristic is based on.
type SeasonalityScore struct {
	Period          int     `json:"period"`
	Score           float64 `json:"score"`
	NormalizedScore float64 `json:"normalized_score"`
	Strength        string  `json:"strength"`
}

// ReportKind identifies one independently computable report
type ReportKind string

const (
	ReportSummary       ReportKind = "summary"
	ReportTrend         ReportKind = "trend"
	ReportForecast      ReportKind = "forecast"
	ReportAnomalies     ReportKind = "anomalies"
	ReportGrowth        ReportKind = "growth"
	ReportSeasonality   ReportKind = "seasonality"
	ReportMovingAverage ReportKind = "moving_average"
)

// AllReports returns every report kind in presentation order
func AllReports() []ReportKind {
	return []ReportKind{
		ReportSummary,
		ReportTrend,
		ReportForecast,
		ReportAnomalies,
		ReportGrowth,
		ReportSeasonality,
		ReportMovingAverage,
	}
}

// TrendReport pairs the fitted model with its classification
type TrendReport struct {
	Model     TrendModel     `json:"model"`
	Direction TrendDirection `json:"direction"`
}

// SkippedReport records a report that could not be computed in an
// otherwise successful run
type SkippedReport struct {
	Kind   ReportKind `json:"kind"`
	Reason string     `json:"reason"`
}

// Report is the combined output of one analysis run. Only requested
// reports are populated; anything skipped is listed with its reason.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	SampleCount int       `json:"sample_count"`

	Summary       *StatisticsSummary `json:"summary,omitempty"`
	Trend         *TrendReport       `json:"trend,omitempty"`
	Forecast      []ForecastPoint    `json:"forecast,omitempty"`
	Anomalies     *AnomalyReport     `json:"anomalies,omitempty"`
	Growth        []GrowthPoint      `json:"growth,omitempty"`
	Seasonality   []SeasonalityScore `json:"seasonality,omitempty"`
	MovingAverage []float64          `json:"moving_average,omitempty"`

	Skipped []SkippedReport `json:"skipped,omitempty"`
}
