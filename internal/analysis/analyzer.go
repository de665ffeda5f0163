package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"trendcli/internal/config"
	apperrors "trendcli/internal/errors"
	"trendcli/internal/infrastructure"
	"trendcli/internal/series"
)

// Analyzer runs a caller-selected set of reports over one immutable
// SampleSet. Reports are independent: a failure local to one, such as a
// degenerate trend on a single-sample set, is recorded as a skip note and
// does not prevent the others from completing.
type Analyzer struct {
	set    *series.SampleSet
	cfg    config.AnalysisConfig
	logger *slog.Logger
}

// NewAnalyzer creates an analyzer for the given sample set. Out-of-range
// tunables fall back to their defaults; the config package rejects them
// earlier for configured runs, so this only matters for direct library use.
func NewAnalyzer(set *series.SampleSet, cfg config.AnalysisConfig, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.AnomalyThresholdSigma <= 0 {
		cfg.AnomalyThresholdSigma = DefaultAnomalyThresholdSigma
	}
	if cfg.ForecastPeriods < 1 {
		cfg.ForecastPeriods = 5
	}
	if cfg.MovingAverageWindow < 1 {
		cfg.MovingAverageWindow = 7
	}
	if len(cfg.SeasonalityPeriods) == 0 {
		cfg.SeasonalityPeriods = DefaultSeasonalityPeriods
	}

	return &Analyzer{set: set, cfg: cfg, logger: logger}
}

// Run computes the requested reports, or all of them when none are named.
// Independent reports run concurrently; the SampleSet is read-only after
// load, so the fan-out needs no locking beyond the skip-note list.
//
// The returned error is non-nil only for dataset-level failures that abort
// the whole run. Degraded runs return a report with Skipped entries.
func (a *Analyzer) Run(ctx context.Context, kinds ...ReportKind) (*Report, error) {
	if a.set == nil || a.set.Len() == 0 {
		return nil, apperrors.ErrEmptyDataset
	}
	if len(kinds) == 0 {
		kinds = AllReports()
	}

	ctx = infrastructure.EnsureRunID(ctx)
	started := time.Now()

	report := &Report{
		RunID:       infrastructure.GetRunID(ctx),
		GeneratedAt: started.UTC(),
		SampleCount: a.set.Len(),
	}

	requested := make(map[ReportKind]bool, len(kinds))
	for _, k := range kinds {
		requested[k] = true
	}

	values := a.set.Values()
	samples := a.set.Samples()

	// The anomaly detector and forecaster both depend on the summary, so
	// it is computed up front regardless of whether it was requested.
	summary, err := Summarize(values)
	if err != nil {
		return nil, err
	}
	if requested[ReportSummary] {
		s := summary
		report.Summary = &s
	}

	var skippedMu sync.Mutex
	skip := func(kind ReportKind, reason error) {
		skippedMu.Lock()
		report.Skipped = append(report.Skipped, SkippedReport{Kind: kind, Reason: reason.Error()})
		skippedMu.Unlock()
		a.logger.WarnContext(ctx, "report skipped",
			slog.String("report", string(kind)),
			slog.String("reason", reason.Error()))
	}

	g, ctx := errgroup.WithContext(ctx)

	if requested[ReportTrend] || requested[ReportForecast] {
		g.Go(func() error {
			model, err := FitTrend(values)
			if err != nil {
				if requested[ReportTrend] {
					skip(ReportTrend, err)
				}
				if requested[ReportForecast] {
					skip(ReportForecast, fmt.Errorf("trend unavailable: %w", err))
				}
				return nil
			}
			if requested[ReportTrend] {
				report.Trend = &TrendReport{Model: model, Direction: model.Direction()}
			}
			if requested[ReportForecast] {
				points, err := Forecast(model, summary, a.cfg.ForecastPeriods)
				if err != nil {
					skip(ReportForecast, err)
					return nil
				}
				report.Forecast = points
			}
			return nil
		})
	}

	if requested[ReportAnomalies] {
		g.Go(func() error {
			anomalies := DetectAnomalies(samples, summary, a.cfg.AnomalyThresholdSigma)
			report.Anomalies = &anomalies
			return nil
		})
	}

	if requested[ReportGrowth] {
		g.Go(func() error {
			report.Growth = GrowthRates(samples)
			return nil
		})
	}

	if requested[ReportSeasonality] {
		g.Go(func() error {
			report.Seasonality = DetectSeasonality(values, a.cfg.SeasonalityPeriods)
			return nil
		})
	}

	if requested[ReportMovingAverage] {
		g.Go(func() error {
			smoothed, err := MovingAverage(values, a.cfg.MovingAverageWindow)
			if err != nil {
				skip(ReportMovingAverage, err)
				return nil
			}
			report.MovingAverage = smoothed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Deterministic skip order for output and tests
	sort.Slice(report.Skipped, func(i, j int) bool {
		return report.Skipped[i].Kind < report.Skipped[j].Kind
	})

	a.logger.InfoContext(ctx, "analysis run completed",
		slog.Int("samples", report.SampleCount),
		slog.Int("reports_requested", len(kinds)),
		slog.Int("reports_skipped", len(report.Skipped)),
		slog.Duration("elapsed", time.Since(started)))

	return report, nil
}
