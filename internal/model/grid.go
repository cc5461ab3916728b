// internal/model/grid.go
package model

import "math"

// Axis defines an evenly spaced sampling range, Count points over
// [Min, Max] inclusive.
type Axis struct {
	Min   float64 `json:"min" mapstructure:"min"`
	Max   float64 `json:"max" mapstructure:"max"`
	Count int     `json:"count" mapstructure:"count"`
}

// Values materializes the axis. A single-point axis collapses to Min.
func (a Axis) Values() []float64 {
	if a.Count <= 0 {
		return nil
	}
	values := make([]float64, a.Count)
	if a.Count == 1 {
		values[0] = a.Min
		return values
	}
	step := (a.Max - a.Min) / float64(a.Count-1)
	for i := range values {
		values[i] = a.Min + float64(i)*step
	}
	return values
}

// SensitivityCurve evaluates net margin at every sale price of the axis,
// holding the remaining parameters fixed. The returned slice is parallel to
// axis.Values().
func SensitivityCurve(p ScenarioParams, axis Axis) []float64 {
	prices := axis.Values()
	margins := make([]float64, len(prices))
	for i, price := range prices {
		p.SalePrice = price
		margins[i] = ComputeProfit(p).NetMargin
	}
	return margins
}

// Elasticity estimates dMargin/dPrice at refPrice from a sampled curve:
// nearest grid index, then a one-sided forward difference to the next point
// (falling back to the same index at the right boundary).
func Elasticity(prices, margins []float64, refPrice float64) float64 {
	if len(prices) == 0 || len(prices) != len(margins) {
		return 0
	}
	idx := nearestIndex(prices, refPrice)
	next := idx + 1
	if next >= len(prices) {
		next = idx
	}
	return (margins[next] - margins[idx]) / guard(prices[next]-prices[idx])
}

func nearestIndex(values []float64, target float64) int {
	best := 0
	bestDist := math.Abs(values[0] - target)
	for i, v := range values[1:] {
		if d := math.Abs(v - target); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best
}

// HeatmapMatrix samples net margin over a (purchase price x sale price)
// grid. Row-major: row i fixes purchaseAxis[i], column j varies the sale
// price. Cells are exact pointwise ComputeProfit evaluations, never
// interpolated.
func HeatmapMatrix(p ScenarioParams, purchaseAxis, saleAxis Axis) [][]float64 {
	purchases := purchaseAxis.Values()
	sales := saleAxis.Values()

	matrix := make([][]float64, len(purchases))
	for i, purchase := range purchases {
		row := make([]float64, len(sales))
		p.PurchasePrice = purchase
		for j, sale := range sales {
			p.SalePrice = sale
			row[j] = ComputeProfit(p).NetMargin
		}
		matrix[i] = row
	}
	return matrix
}

// BreakevenCurve returns the analytic zero-margin sale price for every
// purchase price of the axis. BreakevenSalePrice does not depend on the sale
// price argument, so it is evaluated at zero. Overlaid on the heatmap this
// marks the exact zero-margin boundary per row.
func BreakevenCurve(p ScenarioParams, purchaseAxis Axis) []float64 {
	purchases := purchaseAxis.Values()
	curve := make([]float64, len(purchases))
	p.SalePrice = 0
	for i, purchase := range purchases {
		p.PurchasePrice = purchase
		curve[i] = ComputeProfit(p).BreakevenSalePrice
	}
	return curve
}
