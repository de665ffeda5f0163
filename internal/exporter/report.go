package exporter

import (
	"fmt"
	"strconv"

	"trendcli/internal/analysis"
)

// Section is one tabular block of an exported report
type Section struct {
	Name    string
	Headers []string
	Records [][]string
}

// Sections converts the populated parts of a report into tabular blocks
// in presentation order. Skipped reports produce a trailing section naming
// what was dropped and why.
func Sections(report *analysis.Report) []Section {
	var sections []Section

	if report.Summary != nil {
		s := report.Summary
		sections = append(sections, Section{
			Name:    "Summary",
			Headers: []string{"Count", "Mean", "StdDev", "Variance", "Min", "Max"},
			Records: [][]string{{
				strconv.Itoa(s.Count),
				formatFloat(s.Mean),
				formatFloat(s.StdDev),
				formatFloat(s.Variance),
				formatFloat(s.Min),
				formatFloat(s.Max),
			}},
		})
	}

	if report.Trend != nil {
		sections = append(sections, Section{
			Name:    "Trend",
			Headers: []string{"Slope", "Intercept", "Direction"},
			Records: [][]string{{
				formatFloat(report.Trend.Model.Slope),
				formatFloat(report.Trend.Model.Intercept),
				string(report.Trend.Direction),
			}},
		})
	}

	if len(report.Forecast) > 0 {
		records := make([][]string, len(report.Forecast))
		for i, p := range report.Forecast {
			records[i] = []string{
				strconv.Itoa(p.PeriodOffset),
				formatFloat(p.Value),
				formatFloat(p.LowerBound),
				formatFloat(p.UpperBound),
			}
		}
		sections = append(sections, Section{
			Name:    "Forecast",
			Headers: []string{"PeriodOffset", "Value", "LowerBound", "UpperBound"},
			Records: records,
		})
	}

	if report.Anomalies != nil {
		records := make([][]string, len(report.Anomalies.Flagged))
		for i, f := range report.Anomalies.Flagged {
			records[i] = []string{strconv.Itoa(f.Index), f.Label, formatFloat(f.Value)}
		}
		sections = append(sections, Section{
			Name: fmt.Sprintf("Anomalies (threshold %.1fσ, bounds [%s, %s])",
				report.Anomalies.ThresholdSigma,
				formatFloat(report.Anomalies.LowerBound),
				formatFloat(report.Anomalies.UpperBound)),
			Headers: []string{"Index", "Label", "Value"},
			Records: records,
		})
	}

	if len(report.Growth) > 0 {
		records := make([][]string, len(report.Growth))
		for i, g := range report.Growth {
			records[i] = []string{
				strconv.Itoa(g.PeriodIndex),
				g.Label,
				formatFloat(g.Value),
				g.GrowthLabel(),
			}
		}
		sections = append(sections, Section{
			Name:    "Growth",
			Headers: []string{"Period", "Label", "Value", "Growth"},
			Records: records,
		})
	}

	if len(report.Seasonality) > 0 {
		records := make([][]string, len(report.Seasonality))
		for i, s := range report.Seasonality {
			records[i] = []string{
				strconv.Itoa(s.Period),
				formatFloat(s.Score),
				formatFloat(s.NormalizedScore),
				s.Strength,
			}
		}
		sections = append(sections, Section{
			Name:    "Seasonality",
			Headers: []string{"Period", "Score", "NormalizedScore", "Strength"},
			Records: records,
		})
	}

	if len(report.MovingAverage) > 0 {
		records := make([][]string, len(report.MovingAverage))
		for i, v := range report.MovingAverage {
			records[i] = []string{strconv.Itoa(i), formatFloat(v)}
		}
		sections = append(sections, Section{
			Name:    "MovingAverage",
			Headers: []string{"Index", "Value"},
			Records: records,
		})
	}

	if len(report.Skipped) > 0 {
		records := make([][]string, len(report.Skipped))
		for i, s := range report.Skipped {
			records[i] = []string{string(s.Kind), s.Reason}
		}
		sections = append(sections, Section{
			Name:    "Skipped",
			Headers: []string{"Report", "Reason"},
			Records: records,
		})
	}

	return sections
}

// formatFloat renders a float the same way everywhere in the export layer
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
