package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"trendcli/internal/analysis"
)

// WriteReportJSON writes the full report structure as indented JSON
func WriteReportJSON(report *analysis.Report, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(filePath, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteReportCSV writes the report sections into one CSV file
func WriteReportCSV(report *analysis.Report, filePath string) error {
	return WriteSectionedCSV(filePath, Sections(report))
}
