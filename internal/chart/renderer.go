package chart

import (
	apperrors "trendcli/internal/errors"
)

// Default chart dimensions in characters
const (
	DefaultWidth  = 60
	DefaultHeight = 20
)

// Glyphs used by the renderer
const (
	fillGlyph  = '█'
	blankGlyph = ' '
)

// Mode selects how columns are mapped onto samples
type Mode int

const (
	// ModeNearest picks one sample per column by nearest-neighbor
	// downsampling. Lossy for series longer than the chart width; this is
	// the accepted default approximation.
	ModeNearest Mode = iota
	// ModeMinMax draws the min/max span of each column's sample bucket.
	// An opt-in alternative for long series; it changes the visual
	// semantics, so it never replaces the default.
	ModeMinMax
)

// Grid is an ephemeral 2D glyph mapping produced only for rendering.
// Row 0 is the top of the chart.
type Grid struct {
	cells [][]rune
}

// Width returns the number of columns
func (g *Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return len(g.cells)
}

// Row returns one row as a string
func (g *Grid) Row(i int) string {
	return string(g.cells[i])
}

// String renders the grid top row first, one line per row
func (g *Grid) String() string {
	out := make([]byte, 0, g.Height()*(g.Width()+1))
	for i, row := range g.cells {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, string(row)...)
	}
	return string(out)
}

// Render maps the value range onto a width×height character grid using
// nearest-neighbor downsampling. Non-positive dimensions fall back to the
// defaults.
//
// The value range is [min, max]; when max equals min the range is forced
// to 1, so a flat series renders as a single line instead of dividing by
// zero. Each column fills from its quantized row downward to suggest
// magnitude.
func Render(values []float64, width, height int) (*Grid, error) {
	return RenderMode(values, width, height, ModeNearest)
}

// RenderMode is Render with an explicit column mapping mode
func RenderMode(values []float64, width, height int, mode Mode) (*Grid, error) {
	if len(values) == 0 {
		return nil, apperrors.EmptySeriesError("RenderMode")
	}
	if width < 1 {
		width = DefaultWidth
	}
	if height < 1 {
		height = DefaultHeight
	}

	vmin := values[0]
	vmax := values[0]
	for _, v := range values {
		if v < vmin {
			vmin = v
		}
		if v > vmax {
			vmax = v
		}
	}
	valueRange := vmax - vmin
	if valueRange == 0 {
		valueRange = 1
	}

	grid := &Grid{cells: make([][]rune, height)}
	for r := range grid.cells {
		row := make([]rune, width)
		for c := range row {
			row[c] = blankGlyph
		}
		grid.cells[r] = row
	}

	count := len(values)
	for col := 0; col < width; col++ {
		switch mode {
		case ModeMinMax:
			lo, hi := columnExtremes(values, col, width)
			top := quantizeRow(hi, vmin, valueRange, height)
			bottom := quantizeRow(lo, vmin, valueRange, height)
			for r := top; r <= bottom; r++ {
				grid.cells[r][col] = fillGlyph
			}
		default:
			idx := col * count / width
			if idx > count-1 {
				idx = count - 1
			}
			top := quantizeRow(values[idx], vmin, valueRange, height)
			for r := top; r < height; r++ {
				grid.cells[r][col] = fillGlyph
			}
		}
	}

	return grid, nil
}

// quantizeRow maps a value onto its grid row; row 0 is the top
func quantizeRow(v, vmin, valueRange float64, height int) int {
	scaled := (v - vmin) / valueRange
	row := height - 1 - int(scaled*float64(height-1))
	if row < 0 {
		row = 0
	}
	if row > height-1 {
		row = height - 1
	}
	return row
}

// columnExtremes returns the min and max of the column's sample bucket
func columnExtremes(values []float64, col, width int) (lo, hi float64) {
	count := len(values)
	start := col * count / width
	end := (col + 1) * count / width
	if start > count-1 {
		start = count - 1
	}
	if end <= start {
		end = start + 1
	}
	lo = values[start]
	hi = values[start]
	for _, v := range values[start:end] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
