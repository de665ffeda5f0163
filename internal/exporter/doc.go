// Package exporter writes analysis reports to CSV, JSON, and XLSX files.
// The engine itself only produces structured reports; everything about
// their on-disk shape lives here.
package exporter
