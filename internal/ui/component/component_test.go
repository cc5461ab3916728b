package component

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrotools/feedlot-calc/internal/model"
)

func TestParamFormParsesEdits(t *testing.T) {
	form := NewParamForm(model.DefaultParams())

	// Clear the focused field (purchase price) and type a new value.
	for i := 0; i < 10; i++ {
		form.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	}
	var changed bool
	for _, r := range "2750" {
		_, ch := form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		changed = changed || ch
	}

	assert.True(t, changed)
	assert.InDelta(t, 2750, form.Params().PurchasePrice, 1e-9)
}

func TestParamFormKeepsLastGoodValueOnGarbage(t *testing.T) {
	form := NewParamForm(model.DefaultParams())
	before := form.Params().PurchasePrice

	_, changed := form.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.False(t, changed)
	assert.InDelta(t, before, form.Params().PurchasePrice, 1e-9)
}

func TestParamFormFocusWraps(t *testing.T) {
	form := NewParamForm(model.DefaultParams())

	for i := 0; i < len(form.fields); i++ {
		form.FocusNext()
	}
	assert.Equal(t, 0, form.focusIndex)

	form.FocusPrev()
	assert.Equal(t, len(form.fields)-1, form.focusIndex)
}

func TestParamFormSetParamsRefreshesInputs(t *testing.T) {
	form := NewParamForm(model.DefaultParams())

	p := model.DefaultParams()
	p.SalePrice = 4100
	form.SetParams(p)

	assert.Equal(t, "4100", form.fields[1].input.Value())
	assert.InDelta(t, 4100, form.Params().SalePrice, 1e-9)
}

func TestSparklineResample(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	out := resample(data, 5)
	require.Len(t, out, 5)
	assert.InDelta(t, 0, out[0], 1e-9)
	assert.InDelta(t, 9, out[4], 1e-9)

	same := resample(data, 10)
	assert.Equal(t, data, same)
}

func TestSparklineHandlesEmptyData(t *testing.T) {
	s := NewSparkline(10)
	assert.NotEmpty(t, s.View())
}

func TestHeatmapGridCursorClamped(t *testing.T) {
	params := model.DefaultParams()
	purchaseAxis := model.Axis{Min: 2000, Max: 4000, Count: 5}
	saleAxis := model.Axis{Min: 3000, Max: 5000, Count: 5}

	grid := NewHeatmapGrid().SetData(
		model.HeatmapMatrix(params, purchaseAxis, saleAxis),
		purchaseAxis, saleAxis,
		model.BreakevenCurve(params, purchaseAxis),
	)

	grid.MoveCursor(-10, -10)
	purchase, sale, _, ok := grid.Cursor()
	require.True(t, ok)
	assert.InDelta(t, 2000, purchase, 1e-9)
	assert.InDelta(t, 3000, sale, 1e-9)

	grid.MoveCursor(100, 100)
	purchase, sale, _, ok = grid.Cursor()
	require.True(t, ok)
	assert.InDelta(t, 4000, purchase, 1e-9)
	assert.InDelta(t, 5000, sale, 1e-9)
}

func TestHeatmapGridCursorMatchesModel(t *testing.T) {
	params := model.DefaultParams()
	purchaseAxis := model.Axis{Min: 2000, Max: 4000, Count: 3}
	saleAxis := model.Axis{Min: 3000, Max: 5000, Count: 3}

	grid := NewHeatmapGrid().SetData(
		model.HeatmapMatrix(params, purchaseAxis, saleAxis),
		purchaseAxis, saleAxis,
		model.BreakevenCurve(params, purchaseAxis),
	)

	grid.MoveCursor(1, 2)
	purchase, sale, margin, ok := grid.Cursor()
	require.True(t, ok)

	p := params
	p.PurchasePrice = purchase
	p.SalePrice = sale
	assert.InDelta(t, model.ComputeProfit(p).NetMargin, margin, 1e-9)
}

func TestHeatmapBreakevenCellBracketsCurve(t *testing.T) {
	params := model.DefaultParams()
	purchaseAxis := model.Axis{Min: 2000, Max: 4000, Count: 5}
	saleAxis := model.Axis{Min: 0, Max: 10000, Count: 101}

	breakeven := model.BreakevenCurve(params, purchaseAxis)
	grid := NewHeatmapGrid().SetData(
		model.HeatmapMatrix(params, purchaseAxis, saleAxis),
		purchaseAxis, saleAxis, breakeven,
	)

	for i := range breakeven {
		found := false
		for j := range grid.sales {
			if grid.isBreakevenCell(i, j) {
				found = true
				assert.LessOrEqual(t, grid.sales[j], breakeven[i])
				break
			}
		}
		assert.True(t, found, "row %d has no breakeven cell", i)
	}
}

func TestWindowStartCentersCursor(t *testing.T) {
	assert.Equal(t, 0, windowStart(0, 5, 20))
	assert.Equal(t, 8, windowStart(10, 5, 20))
	assert.Equal(t, 15, windowStart(19, 5, 20))
	assert.Equal(t, 0, windowStart(2, 10, 5))
}

func TestCompactNumber(t *testing.T) {
	assert.Equal(t, "950", compactNumber(950))
	assert.Equal(t, "-950", compactNumber(-950))
	assert.Equal(t, "12k", compactNumber(12345))
	assert.Equal(t, "1.5M", compactNumber(1500000))
}
