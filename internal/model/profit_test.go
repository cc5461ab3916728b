// internal/model/profit_test.go
package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceParams is Scenario A from the product notes.
func referenceParams() ScenarioParams {
	return ScenarioParams{
		PurchasePrice:       3000,
		SalePrice:           3500,
		PurchaseWeight:      200,
		ExitWeight:          300,
		PricePerTon:         60000,
		FeedConversionRatio: 8,
		AverageDailyGain:    1.5,
		DailyOverheadCost:   20,
		HealthCostPerHead:   1000,
	}
}

func resultFields(r ProfitResult) map[string]float64 {
	return map[string]float64{
		"net_purchase_price":          r.NetPurchasePrice,
		"net_sale_price":              r.NetSalePrice,
		"feed_margin":                 r.FeedMargin,
		"net_margin":                  r.NetMargin,
		"purchase_to_sale_ratio":      r.PurchaseToSaleRatio,
		"breakeven_purchase_price":    r.BreakevenPurchasePrice,
		"breakeven_sale_price":        r.BreakevenSalePrice,
		"sale_price_drop_to_zero_pct": r.SalePriceDropToZeroPct,
		"cost_per_kg_produced":        r.CostPerKgProduced,
		"overhead_per_kg":             r.OverheadPerKg,
		"investment_return_pct":       r.InvestmentReturnPct,
		"monthly_return_pct":          r.MonthlyReturnPct,
		"annual_return_pct":           r.AnnualReturnPct,
		"days_on_feed":                r.DaysOnFeed,
		"total_investment":            r.TotalInvestment,
		"purchase_cost":               r.PurchaseCost,
		"total_feed_cost":             r.TotalFeedCost,
		"total_overhead_cost":         r.TotalOverheadCost,
		"revenue":                     r.Revenue,
	}
}

func assertAllFinite(t *testing.T, r ProfitResult) {
	t.Helper()
	for name, value := range resultFields(r) {
		assert.Falsef(t, math.IsNaN(value), "%s is NaN", name)
		assert.Falsef(t, math.IsInf(value, 0), "%s is infinite", name)
	}
}

func TestComputeProfitReferenceScenario(t *testing.T) {
	p := referenceParams()
	r := ComputeProfit(p)

	require.Greater(t, r.DaysOnFeed, 0.0)
	assertAllFinite(t, r)

	// weight gain 100kg, feed 8 * 60 = 480 $/kg gain
	assert.InDelta(t, 48000, r.TotalFeedCost, 1e-9)
	assert.InDelta(t, 100.0/1.5, r.DaysOnFeed, 1e-9)
	assert.InDelta(t, 600000, r.PurchaseCost, 1e-9)
	assert.InDelta(t, 1050000, r.Revenue, 1e-9)

	p.SalePrice = 4000
	higher := ComputeProfit(p)
	assert.Greater(t, higher.NetMargin, r.NetMargin,
		"raising sale price must raise net margin")
}

func TestComputeProfitTotality(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	cases := map[string]ScenarioParams{
		"zero values":         {},
		"zero daily gain":     {ExitWeight: 300, PurchaseWeight: 200, AverageDailyGain: 0},
		"negative daily gain": {ExitWeight: 300, PurchaseWeight: 200, AverageDailyGain: -2},
		"zero exit weight":    {PurchaseWeight: 200, SalePrice: 3500},
		"negative gain":       {PurchaseWeight: 400, ExitWeight: 300, AverageDailyGain: 1.2},
		"zero sale price":     {PurchaseWeight: 200, ExitWeight: 300, AverageDailyGain: 1.2, PurchasePrice: 3000},
		"all NaN": {
			PurchasePrice: nan, SalePrice: nan, PurchaseWeight: nan, ExitWeight: nan,
			PricePerTon: nan, FeedConversionRatio: nan, AverageDailyGain: nan,
			DailyOverheadCost: nan, HealthCostPerHead: nan,
		},
		"all +Inf": {
			PurchasePrice: inf, SalePrice: inf, PurchaseWeight: inf, ExitWeight: inf,
			PricePerTon: inf, FeedConversionRatio: inf, AverageDailyGain: inf,
			DailyOverheadCost: inf, HealthCostPerHead: inf,
		},
		"mixed non-finite": {
			PurchasePrice: -inf, SalePrice: nan, PurchaseWeight: 200, ExitWeight: nan,
			PricePerTon: inf, FeedConversionRatio: -8, AverageDailyGain: nan,
			DailyOverheadCost: -30, HealthCostPerHead: -inf,
		},
		"negative everything": {
			PurchasePrice: -3000, SalePrice: -3500, PurchaseWeight: -200, ExitWeight: -460,
			PricePerTon: -64000, FeedConversionRatio: -8, AverageDailyGain: -1.2,
			DailyOverheadCost: -30, HealthCostPerHead: -1200,
		},
	}

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			assertAllFinite(t, ComputeProfit(p))
		})
	}
}

func TestDegenerateDailyGainStaysFinite(t *testing.T) {
	p := referenceParams()
	p.AverageDailyGain = 0

	r := ComputeProfit(p)
	assertAllFinite(t, r)
	// gain clamps to epsilon, so days on feed explodes but stays finite
	assert.Greater(t, r.DaysOnFeed, 0.0)
}

func TestBreakevenSalePriceZerosMargin(t *testing.T) {
	cases := []ScenarioParams{
		referenceParams(),
		DefaultParams(),
		{PurchasePrice: 100, SalePrice: 50, PurchaseWeight: 10, ExitWeight: 400,
			PricePerTon: 90000, FeedConversionRatio: 12, AverageDailyGain: 0.4,
			DailyOverheadCost: 75, HealthCostPerHead: 2500},
	}

	for _, p := range cases {
		be := ComputeProfit(p).BreakevenSalePrice
		p.SalePrice = be
		assert.InDelta(t, 0, ComputeProfit(p).NetMargin, 1e-6,
			"net margin at breakeven sale price")
	}
}

func TestBreakevenPurchasePriceZerosMargin(t *testing.T) {
	p := referenceParams()
	be := ComputeProfit(p).BreakevenPurchasePrice
	p.PurchasePrice = be
	assert.InDelta(t, 0, ComputeProfit(p).NetMargin, 1e-6,
		"net margin at breakeven purchase price")
}

func TestNetMarginMonotoneInSalePrice(t *testing.T) {
	p := referenceParams()

	prev := math.Inf(-1)
	for price := 1000.0; price <= 6000; price += 250 {
		p.SalePrice = price
		margin := ComputeProfit(p).NetMargin
		require.Greater(t, margin, prev, "margin must strictly increase at sale price %.0f", price)
		prev = margin
	}
}

func TestFeedPriceDeltaShiftsMarginExactly(t *testing.T) {
	p := referenceParams()
	base := ComputeProfit(p)

	const delta = 5000.0
	p.PricePerTon += delta
	bumped := ComputeProfit(p)

	gain := p.ExitWeight - p.PurchaseWeight
	expected := gain * p.FeedConversionRatio * (delta / 1000)

	assert.InDelta(t, expected, bumped.TotalFeedCost-base.TotalFeedCost, 1e-6)
	assert.InDelta(t, -expected, bumped.NetMargin-base.NetMargin, 1e-6)
}

func TestTotalInvestmentComposition(t *testing.T) {
	p := referenceParams()
	r := ComputeProfit(p)

	sum := r.PurchaseCost + r.TotalFeedCost + r.TotalOverheadCost + p.HealthCostPerHead
	assert.InDelta(t, sum, r.TotalInvestment, 1e-9)
	assert.GreaterOrEqual(t, r.TotalInvestment, r.TotalFeedCost)
	assert.GreaterOrEqual(t, r.TotalInvestment, r.TotalOverheadCost)
	assert.GreaterOrEqual(t, r.TotalInvestment, p.HealthCostPerHead)
}

func TestComputeProfitIsPure(t *testing.T) {
	p := referenceParams()
	assert.Equal(t, ComputeProfit(p), ComputeProfit(p))
}
