// internal/model/grid_test.go
package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxisValues(t *testing.T) {
	axis := Axis{Min: 2000, Max: 6000, Count: 81}
	values := axis.Values()

	require.Len(t, values, 81)
	assert.Equal(t, 2000.0, values[0])
	assert.Equal(t, 6000.0, values[80])
	assert.InDelta(t, 50, values[1]-values[0], 1e-9)

	assert.Equal(t, []float64{5}, Axis{Min: 5, Max: 9, Count: 1}.Values())
	assert.Nil(t, Axis{Min: 1, Max: 2, Count: 0}.Values())
	assert.Nil(t, Axis{Min: 1, Max: 2, Count: -3}.Values())
}

func TestSensitivityCurveMatchesPointwise(t *testing.T) {
	p := referenceParams()
	axis := Axis{Min: 2000, Max: 6000, Count: 81}

	margins := SensitivityCurve(p, axis)
	prices := axis.Values()
	require.Len(t, margins, len(prices))

	for i, price := range prices {
		q := p
		q.SalePrice = price
		assert.Equal(t, ComputeProfit(q).NetMargin, margins[i], "grid point %d", i)
	}

	// curve inherits sale price monotonicity
	for i := 1; i < len(margins); i++ {
		assert.Greater(t, margins[i], margins[i-1])
	}
}

func TestElasticityForwardDifference(t *testing.T) {
	p := referenceParams()
	axis := Axis{Min: 2000, Max: 6000, Count: 81}
	prices := axis.Values()
	margins := SensitivityCurve(p, axis)

	// margin is linear in sale price with slope = exit weight
	got := Elasticity(prices, margins, 3500)
	assert.InDelta(t, p.ExitWeight, got, 1e-6)

	// reference price snaps to the nearest grid point
	assert.InDelta(t, p.ExitWeight, Elasticity(prices, margins, 3512), 1e-6)

	// right boundary falls back to the same index: zero delta over epsilon
	assert.Equal(t, 0.0, Elasticity(prices, margins, 6000))

	// degenerate inputs
	assert.Equal(t, 0.0, Elasticity(nil, nil, 3500))
	assert.Equal(t, 0.0, Elasticity(prices, margins[:2], 3500))
}

func TestHeatmapGridConsistency(t *testing.T) {
	p := referenceParams()
	purchaseAxis := Axis{Min: 2000, Max: 6000, Count: 9}
	saleAxis := Axis{Min: 2000, Max: 6000, Count: 11}

	matrix := HeatmapMatrix(p, purchaseAxis, saleAxis)
	purchases := purchaseAxis.Values()
	sales := saleAxis.Values()

	require.Len(t, matrix, len(purchases))
	for i, row := range matrix {
		require.Len(t, row, len(sales))
		for j, cell := range row {
			q := p
			q.PurchasePrice = purchases[i]
			q.SalePrice = sales[j]
			assert.Equal(t, ComputeProfit(q).NetMargin, cell, "cell (%d,%d)", i, j)
		}
	}
}

func TestBreakevenCurveMarksZeroMarginBoundary(t *testing.T) {
	p := referenceParams()
	purchaseAxis := Axis{Min: 2000, Max: 6000, Count: 21}
	saleAxis := Axis{Min: 0, Max: 9000, Count: 181}

	curve := BreakevenCurve(p, purchaseAxis)
	matrix := HeatmapMatrix(p, purchaseAxis, saleAxis)
	sales := saleAxis.Values()
	require.Len(t, curve, len(matrix))

	for i, breakeven := range curve {
		nearest := nearestIndex(sales, breakeven)
		for j := range sales {
			if math.Abs(sales[j]-breakeven) > math.Abs(sales[nearest]-breakeven) {
				assert.GreaterOrEqual(t, math.Abs(matrix[i][j]), math.Abs(matrix[i][nearest]),
					"row %d: margin magnitude must grow with distance from breakeven", i)
			}
		}
	}
}

func TestBreakevenCurveIndependentOfSalePrice(t *testing.T) {
	p := referenceParams()
	axis := Axis{Min: 2000, Max: 6000, Count: 5}

	a := BreakevenCurve(p, axis)
	p.SalePrice = 99999
	b := BreakevenCurve(p, axis)
	assert.Equal(t, a, b)
}

func TestHerdTotals(t *testing.T) {
	p := DefaultParams()
	r := ComputeProfit(p)
	h := Herd(p, r)

	assert.Equal(t, 100.0, h.HeadCount)
	assert.InDelta(t, 99, h.SellableHead, 1e-9)
	assert.InDelta(t, r.Revenue*99, h.Revenue, 1e-6)
	assert.InDelta(t, r.TotalInvestment*100, h.Investment, 1e-6)
	assert.InDelta(t, h.Revenue-h.Investment, h.NetMargin, 1e-6)

	// herd math stays finite on garbage input
	p.HeadCount = math.NaN()
	p.MortalityPct = math.Inf(1)
	h = Herd(p, ComputeProfit(p))
	assert.False(t, math.IsNaN(h.NetMargin))
	assert.False(t, math.IsInf(h.ReturnPct, 0))
}
