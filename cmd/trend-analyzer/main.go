package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"trendcli/internal/analysis"
	"trendcli/internal/chart"
	"trendcli/internal/config"
	apperrors "trendcli/internal/errors"
	"trendcli/internal/exporter"
	"trendcli/internal/infrastructure"
	"trendcli/internal/series"
)

// chartReport is the CLI-only pseudo report for the text chart; the
// analysis package knows nothing about rendering
const chartReport = "chart"

func main() {
	input := flag.String("input", "-", "input file path, or - for stdin")
	delimiter := flag.String("delimiter", "", "field delimiter (default from config, ',')")
	timeColumn := flag.Int("time-column", 0, "1-based time column (default from config, 1)")
	dataColumn := flag.Int("data-column", -1, "1-based data column, 0 = last field (default from config)")
	forecastPeriods := flag.Int("forecast", 0, "forecast periods (default from config)")
	maWindow := flag.Int("ma-window", 0, "moving average window (default from config)")
	threshold := flag.Float64("threshold", 0, "anomaly threshold in standard deviations (default from config)")
	reports := flag.String("reports", "all", "comma-separated reports: summary,trend,forecast,anomalies,growth,seasonality,moving_average,chart or all")
	format := flag.String("format", "text", "output format: text | csv | json | xlsx")
	out := flag.String("out", "", "output file path (required for csv/json/xlsx)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	applyFlagOverrides(cfg, *delimiter, *timeColumn, *dataColumn, *forecastPeriods, *maWindow, *threshold)
	if err := cfg.Validate(); err != nil {
		fatal(logger, fmt.Errorf("invalid options: %w", err))
	}

	kinds, wantChart, err := parseReports(*reports)
	if err != nil {
		fatal(logger, err)
	}

	ctx := infrastructure.EnsureRunID(context.Background())
	logger.InfoContext(ctx, "starting trend analysis",
		slog.String("input", *input),
		slog.String("format", *format),
		slog.String("reports", *reports))

	lines, err := readLines(*input)
	if err != nil {
		fatal(logger, fmt.Errorf("failed to read input: %w", err))
	}

	set, stats, err := series.Load(lines, series.LoadOptions{
		Delimiter:  cfg.Input.Delimiter,
		TimeColumn: cfg.Input.TimeColumn,
		DataColumn: cfg.Input.DataColumn,
	}, logger)
	if err != nil {
		fatal(logger, err)
	}
	logger.InfoContext(ctx, "samples loaded",
		slog.Int("parsed", stats.Parsed),
		slog.Int("skipped", stats.Skipped),
		slog.Bool("header_detected", stats.HeaderDetected))

	analyzer := analysis.NewAnalyzer(set, cfg.Analysis, logger)
	report, err := analyzer.Run(ctx, kinds...)
	if err != nil {
		fatal(logger, err)
	}

	if err := writeOutput(report, set, cfg, *format, *out, wantChart); err != nil {
		fatal(logger, err)
	}

	// Degraded runs still exit zero; the skip notes make the gaps visible
	if len(report.Skipped) > 0 {
		logger.WarnContext(ctx, "run completed with skipped reports",
			slog.Int("skipped", len(report.Skipped)))
	}
}

// applyFlagOverrides copies explicitly set flags over the loaded config
func applyFlagOverrides(cfg *config.Config, delimiter string, timeColumn, dataColumn, forecastPeriods, maWindow int, threshold float64) {
	if delimiter != "" {
		cfg.Input.Delimiter = delimiter
	}
	if timeColumn > 0 {
		cfg.Input.TimeColumn = timeColumn
	}
	if dataColumn >= 0 {
		cfg.Input.DataColumn = dataColumn
	}
	if forecastPeriods > 0 {
		cfg.Analysis.ForecastPeriods = forecastPeriods
	}
	if maWindow > 0 {
		cfg.Analysis.MovingAverageWindow = maWindow
	}
	if threshold > 0 {
		cfg.Analysis.AnomalyThresholdSigma = threshold
	}
}

// parseReports resolves the -reports flag into report kinds plus the
// CLI-level chart switch
func parseReports(spec string) ([]analysis.ReportKind, bool, error) {
	spec = strings.TrimSpace(strings.ToLower(spec))
	if spec == "" || spec == "all" {
		return nil, true, nil
	}

	valid := make(map[analysis.ReportKind]bool)
	for _, k := range analysis.AllReports() {
		valid[k] = true
	}

	var kinds []analysis.ReportKind
	wantChart := false
	for _, part := range strings.Split(spec, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if name == chartReport {
			wantChart = true
			continue
		}
		kind := analysis.ReportKind(name)
		if !valid[kind] {
			return nil, false, fmt.Errorf("unknown report %q", name)
		}
		kinds = append(kinds, kind)
	}

	if len(kinds) == 0 && !wantChart {
		return nil, false, fmt.Errorf("no reports selected")
	}
	if len(kinds) == 0 {
		// Chart only: the renderer needs nothing from the analyzer, but
		// a summary keeps the output self-describing.
		kinds = []analysis.ReportKind{analysis.ReportSummary}
	}
	return kinds, wantChart, nil
}

// readLines reads the whole input before any analysis starts
func readLines(path string) ([]string, error) {
	var scanner *bufio.Scanner
	if path == "-" {
		scanner = bufio.NewScanner(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		scanner = bufio.NewScanner(file)
	}

	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	return lines, scanner.Err()
}

// writeOutput routes the finished report to the requested destination
func writeOutput(report *analysis.Report, set *series.SampleSet, cfg *config.Config, format, out string, wantChart bool) error {
	switch format {
	case "text":
		printText(report)
		if wantChart {
			grid, err := chart.Render(set.Values(), cfg.Chart.Width, cfg.Chart.Height)
			if err != nil {
				return err
			}
			fmt.Println()
			fmt.Println(grid.String())
		}
		return nil
	case "csv":
		return exporter.WriteReportCSV(report, requireOut(out, "report.csv"))
	case "json":
		return exporter.WriteReportJSON(report, requireOut(out, "report.json"))
	case "xlsx":
		return exporter.WriteReportXLSX(report, requireOut(out, "report.xlsx"))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// requireOut falls back to a default file name next to the working directory
func requireOut(out, fallback string) string {
	if out == "" {
		return fallback
	}
	return out
}

// printText renders the report sections as aligned text on stdout
func printText(report *analysis.Report) {
	fmt.Printf("run %s (%d samples)\n", report.RunID, report.SampleCount)

	for _, section := range exporter.Sections(report) {
		fmt.Println()
		fmt.Println(section.Name)
		fmt.Println(strings.Repeat("-", len(section.Name)))
		fmt.Println(strings.Join(section.Headers, "\t"))
		for _, record := range section.Records {
			fmt.Println(strings.Join(record, "\t"))
		}
		if len(section.Records) == 0 {
			fmt.Println("(none)")
		}
	}
}

// fatal logs one descriptive message and exits non-zero
func fatal(logger *slog.Logger, err error) {
	logger.Error("analysis failed", slog.String("error", err.Error()))
	fmt.Fprintf(os.Stderr, "trend-analyzer: %v\n", err)
	os.Exit(apperrors.ExitCode(err))
}
