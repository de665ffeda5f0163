package series

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	apperrors "trendcli/internal/errors"
)

// numericPattern matches the data fields accepted by the loader: an
// optional sign, digits, and an optional fractional part. Scientific
// notation is deliberately not accepted.
var numericPattern = regexp.MustCompile(`^-?[0-9]+\.?[0-9]*$`)

// LoadOptions configures how raw records are split into samples
type LoadOptions struct {
	// Delimiter separates fields within a record (default ",")
	Delimiter string
	// TimeColumn is the 1-based index of the time/date field (default 1)
	TimeColumn int
	// DataColumn is the 1-based index of the numeric field. Zero selects
	// the last field, resolved once from the first line that parses into
	// a sample and then fixed for the rest of the input.
	DataColumn int
}

// LoadStats reports what the loader did with the raw input
type LoadStats struct {
	// TotalLines is the number of physical lines seen, blank or not
	TotalLines int `json:"total_lines"`
	// Parsed is the number of valid samples produced
	Parsed int `json:"parsed"`
	// Skipped counts non-numeric lines dropped with a warning
	Skipped int `json:"skipped"`
	// HeaderDetected is true when the first physical line was silently
	// treated as a header
	HeaderDetected bool `json:"header_detected"`
}

// Load parses already-read text records into a SampleSet.
//
// Blank lines are skipped. A line whose data field is not numeric is
// silently treated as a header only when it is the first physical line;
// any other non-numeric line is skipped with a counted warning. Returns
// an empty-dataset error when no valid samples remain. A nil logger falls
// back to the process default.
func Load(lines []string, opts LoadOptions, logger *slog.Logger) (*SampleSet, LoadStats, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}
	if opts.TimeColumn < 1 {
		opts.TimeColumn = 1
	}

	var (
		stats   LoadStats
		samples []Sample
		dataCol = opts.DataColumn
	)

	for lineNo, raw := range lines {
		stats.TotalLines++

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		fields := strings.Split(line, opts.Delimiter)

		// The default data column is the last field. It is pinned only
		// once a line actually parses, so a header whose field count
		// differs from the data lines cannot lock in the wrong column.
		col := dataCol
		if col < 1 {
			col = len(fields)
		}

		label := ""
		if opts.TimeColumn <= len(fields) {
			label = strings.TrimSpace(fields[opts.TimeColumn-1])
		}

		var dataField string
		if col <= len(fields) {
			dataField = strings.TrimSpace(fields[col-1])
		}

		if !numericPattern.MatchString(dataField) {
			if lineNo == 0 {
				// Header row: only the first physical line gets this
				// treatment.
				stats.HeaderDetected = true
				continue
			}
			stats.Skipped++
			logger.Warn("skipping non-numeric line",
				slog.Int("line", lineNo+1),
				slog.String("field", dataField))
			continue
		}

		value, err := strconv.ParseFloat(dataField, 64)
		if err != nil {
			stats.Skipped++
			logger.Warn("skipping unparsable numeric field",
				slog.Int("line", lineNo+1),
				slog.String("field", dataField))
			continue
		}

		if dataCol < 1 {
			dataCol = col
		}

		samples = append(samples, Sample{
			Index: len(samples),
			Label: label,
			Value: value,
		})
	}

	stats.Parsed = len(samples)

	if len(samples) == 0 {
		return nil, stats, apperrors.EmptyDatasetError(stats.TotalLines, stats.Skipped)
	}

	if stats.Skipped > 0 {
		logger.Warn("input contained non-numeric lines",
			slog.Int("skipped", stats.Skipped),
			slog.Int("parsed", stats.Parsed))
	}

	return NewSampleSet(samples), stats, nil
}
