package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"trendcli/internal/analysis"
)

// WriteReportXLSX writes the report as an Excel workbook with one sheet
// per populated section
func WriteReportXLSX(report *analysis.Report, filePath string) error {
	sections := Sections(report)
	if len(sections) == 0 {
		return fmt.Errorf("report has no populated sections to export")
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, section := range sections {
		name := sheetName(section.Name)
		if i == 0 {
			// Rename the default sheet instead of leaving an empty one
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", name, err)
			}
		}

		// Title row carries the full section name, headers follow
		if err := f.SetCellValue(name, "A1", section.Name); err != nil {
			return fmt.Errorf("failed to write title: %w", err)
		}
		if err := writeRow(f, name, 2, section.Headers); err != nil {
			return err
		}
		for r, record := range section.Records {
			if err := writeRow(f, name, r+3, record); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeRow writes one row of string cells starting at column A
func writeRow(f *excelize.File, sheet string, row int, cells []string) error {
	for c, value := range cells {
		cell, err := excelize.CoordinatesToCellName(c+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

// sheetName derives a valid worksheet name from a section name: the first
// word, truncated to Excel's 31-character limit
func sheetName(sectionName string) string {
	name := sectionName
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		name = name[:idx]
	}
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
