package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	Append    bool
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func WriteCSV(filePath string, options WriteOptions) error {
	slog.Debug("writing CSV file",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(options.Records)))

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if options.Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(filePath, flags, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Write BOM if requested (helps Excel recognize UTF-8)
	if options.BOMPrefix && !options.Append {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if !options.Append && len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteSectionedCSV writes report sections into one CSV file, separated
// by a section title row and a blank row
func WriteSectionedCSV(filePath string, sections []Section) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for i, section := range sections {
		if i > 0 {
			if err := writer.Write([]string{}); err != nil {
				return fmt.Errorf("failed to write separator: %w", err)
			}
		}
		if err := writer.Write([]string{section.Name}); err != nil {
			return fmt.Errorf("failed to write section title: %w", err)
		}
		if err := writer.Write(section.Headers); err != nil {
			return fmt.Errorf("failed to write section headers: %w", err)
		}
		for _, record := range section.Records {
			if err := writer.Write(record); err != nil {
				return fmt.Errorf("failed to write section record: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
