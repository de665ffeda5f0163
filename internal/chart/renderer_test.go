package chart

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "trendcli/internal/errors"
)

// TestRenderFlatSeries tests that a flat series draws one consistent line
func TestRenderFlatSeries(t *testing.T) {
	grid, err := Render([]float64{5, 5, 5, 5, 5}, 20, 10)
	require.NoError(t, err)

	assert.Equal(t, 20, grid.Width())
	assert.Equal(t, 10, grid.Height())

	// The forced unit range puts the flat line on the bottom row
	bottom := grid.Row(9)
	assert.Equal(t, strings.Repeat("█", 20), bottom)

	for r := 0; r < 9; r++ {
		assert.Equal(t, strings.Repeat(" ", 20), grid.Row(r), "row %d must be empty", r)
	}
}

// TestRenderAreaFill tests that columns fill downward from their value row
func TestRenderAreaFill(t *testing.T) {
	// Two samples mapping onto a 2-column grid: min and max
	grid, err := Render([]float64{0, 10}, 2, 5)
	require.NoError(t, err)

	// Column 0 holds the minimum: only the bottom cell is set
	// Column 1 holds the maximum: the full column is set
	for r := 0; r < 5; r++ {
		row := grid.Row(r)
		if r < 4 {
			assert.Equal(t, byte(' '), row[0])
		}
		assert.Equal(t, "█", string([]rune(row)[1]))
	}
	assert.Equal(t, "██", grid.Row(4))
}

// TestRenderNearestNeighborDownsampling tests index selection and clamping
func TestRenderNearestNeighborDownsampling(t *testing.T) {
	// 10 samples onto 4 columns: indices 0, 2, 5, 7
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	grid, err := Render(values, 4, 10)
	require.NoError(t, err)

	// Column c shows values[c*10/4]; the top filled row encodes it
	expectIdx := []int{0, 2, 5, 7}
	for col, idx := range expectIdx {
		topFilled := -1
		for r := 0; r < grid.Height(); r++ {
			if []rune(grid.Row(r))[col] == '█' {
				topFilled = r
				break
			}
		}
		require.NotEqual(t, -1, topFilled, "column %d has no fill", col)
		assert.Equal(t, 9-idx, topFilled, "column %d should show sample %d", col, idx)
	}
}

// TestRenderUpsampledShortSeries tests count < width with index clamping
func TestRenderUpsampledShortSeries(t *testing.T) {
	grid, err := Render([]float64{1, 2}, 7, 4)
	require.NoError(t, err)
	assert.Equal(t, 7, grid.Width())
	// No panic and the final column clamps onto the last sample
	assert.Equal(t, "█", string([]rune(grid.Row(0))[6]))
}

// TestRenderDefaults tests fallback dimensions
func TestRenderDefaults(t *testing.T) {
	grid, err := Render([]float64{1, 2, 3}, 0, -5)
	require.NoError(t, err)
	assert.Equal(t, DefaultWidth, grid.Width())
	assert.Equal(t, DefaultHeight, grid.Height())
}

// TestRenderEmptySeries tests the contract-violation path
func TestRenderEmptySeries(t *testing.T) {
	_, err := Render(nil, 10, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrEmptySeries))
}

// TestRenderMinMaxMode tests the opt-in min/max column span rendering
func TestRenderMinMaxMode(t *testing.T) {
	// A spike inside a bucket is invisible to nearest-neighbor but spans
	// the column in min/max mode.
	values := []float64{0, 100, 0, 0, 0, 0, 0, 0}
	gridNN, err := Render(values, 4, 10)
	require.NoError(t, err)
	gridMM, err := RenderMode(values, 4, 10, ModeMinMax)
	require.NoError(t, err)

	// Nearest neighbor samples index 0 for column 0 and misses the spike
	assert.Equal(t, byte(' '), gridNN.Row(0)[0])
	// Min/max sees the spike at the top of column 0's bucket [0,2)
	assert.Equal(t, "█", string([]rune(gridMM.Row(0))[0]))
	// And the same column still reaches the bottom row for the min
	assert.Equal(t, "█", string([]rune(gridMM.Row(9))[0]))
}

// TestGridString tests the string rendering shape
func TestGridString(t *testing.T) {
	grid, err := Render([]float64{1, 2, 3}, 6, 4)
	require.NoError(t, err)

	lines := strings.Split(grid.String(), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Len(t, []rune(line), 6)
	}
}
