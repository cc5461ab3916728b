package component

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agrotools/feedlot-calc/internal/model"
	"github.com/agrotools/feedlot-calc/internal/ui/style"
)

const cellWidth = 7

// HeatmapGrid renders the purchase x sale margin matrix. Rows follow the
// purchase axis, columns the sale axis. Each cell is colored by margin sign,
// the breakeven sale price per row is marked with a boundary glyph, and the
// cursor cell is inverted.
type HeatmapGrid struct {
	matrix    [][]float64
	purchases []float64
	sales     []float64
	breakeven []float64

	cursorRow int
	cursorCol int
	width     int
	height    int

	axisStyle      lipgloss.Style
	profitStyle    lipgloss.Style
	lossStyle      lipgloss.Style
	breakevenStyle lipgloss.Style
	cursorStyle    lipgloss.Style
}

// NewHeatmapGrid creates a new heatmap grid component
func NewHeatmapGrid() *HeatmapGrid {
	palette := style.DefaultPalette()

	return &HeatmapGrid{
		axisStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		profitStyle: lipgloss.NewStyle().
			Foreground(palette.Profit),

		lossStyle: lipgloss.NewStyle().
			Foreground(palette.Loss),

		breakevenStyle: lipgloss.NewStyle().
			Foreground(palette.Breakeven).
			Bold(true),

		cursorStyle: lipgloss.NewStyle().
			Reverse(true).
			Bold(true),
	}
}

// SetData replaces the rendered matrix and its axes. The breakeven curve is
// parallel to the purchase axis. The cursor is clamped into the new bounds.
func (g *HeatmapGrid) SetData(matrix [][]float64, purchaseAxis, saleAxis model.Axis, breakeven []float64) *HeatmapGrid {
	g.matrix = matrix
	g.purchases = purchaseAxis.Values()
	g.sales = saleAxis.Values()
	g.breakeven = breakeven
	g.clampCursor()
	return g
}

// SetSize sets the component dimensions
func (g *HeatmapGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// MoveCursor shifts the cursor by the given row/column delta
func (g *HeatmapGrid) MoveCursor(dRow, dCol int) {
	g.cursorRow += dRow
	g.cursorCol += dCol
	g.clampCursor()
}

// Cursor returns the selected purchase price, sale price and margin.
func (g *HeatmapGrid) Cursor() (purchase, sale, margin float64, ok bool) {
	if len(g.matrix) == 0 || g.cursorRow >= len(g.purchases) || g.cursorCol >= len(g.sales) {
		return 0, 0, 0, false
	}
	return g.purchases[g.cursorRow], g.sales[g.cursorCol], g.matrix[g.cursorRow][g.cursorCol], true
}

// View renders the visible window of the grid around the cursor
func (g *HeatmapGrid) View() string {
	if len(g.matrix) == 0 || len(g.sales) == 0 {
		return g.axisStyle.Render("no data")
	}

	visibleCols := maxInt((g.width-cellWidth-2)/cellWidth, 1)
	visibleRows := maxInt(g.height-2, 1)

	colStart := windowStart(g.cursorCol, visibleCols, len(g.sales))
	rowStart := windowStart(g.cursorRow, visibleRows, len(g.purchases))
	colEnd := minInt(colStart+visibleCols, len(g.sales))
	rowEnd := minInt(rowStart+visibleRows, len(g.purchases))

	var b strings.Builder

	// Header row: sale prices
	b.WriteString(strings.Repeat(" ", cellWidth+1))
	for j := colStart; j < colEnd; j++ {
		b.WriteString(g.axisStyle.Render(fmt.Sprintf("%*.0f", cellWidth, g.sales[j])))
	}
	b.WriteString("\n")

	for i := rowStart; i < rowEnd; i++ {
		b.WriteString(g.axisStyle.Render(fmt.Sprintf("%*.0f", cellWidth, g.purchases[i])))
		b.WriteString(" ")
		for j := colStart; j < colEnd; j++ {
			b.WriteString(g.renderCell(i, j))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (g *HeatmapGrid) renderCell(i, j int) string {
	margin := g.matrix[i][j]
	text := fmt.Sprintf("%*s", cellWidth, compactNumber(margin))

	if i == g.cursorRow && j == g.cursorCol {
		return g.cursorStyle.Render(text)
	}
	if g.isBreakevenCell(i, j) {
		return g.breakevenStyle.Render(text)
	}
	if margin >= 0 {
		return g.profitStyle.Render(text)
	}
	return g.lossStyle.Render(text)
}

// isBreakevenCell reports whether the row's breakeven sale price falls
// between this column and the next, i.e. the zero crossing of the row.
func (g *HeatmapGrid) isBreakevenCell(i, j int) bool {
	if i >= len(g.breakeven) {
		return false
	}
	be := g.breakeven[i]
	if j+1 < len(g.sales) {
		return g.sales[j] <= be && be < g.sales[j+1]
	}
	return g.sales[j] <= be
}

func (g *HeatmapGrid) clampCursor() {
	g.cursorRow = minInt(maxInt(g.cursorRow, 0), maxInt(len(g.purchases)-1, 0))
	g.cursorCol = minInt(maxInt(g.cursorCol, 0), maxInt(len(g.sales)-1, 0))
}

// windowStart centers the cursor in a window of the given size
func windowStart(cursor, window, total int) int {
	start := cursor - window/2
	if start+window > total {
		start = total - window
	}
	if start < 0 {
		start = 0
	}
	return start
}

// compactNumber formats large margins into the fixed cell width
func compactNumber(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case abs >= 1e4:
		return fmt.Sprintf("%.0fk", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
