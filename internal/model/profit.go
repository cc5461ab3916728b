// internal/model/profit.go
package model

// ProfitResult is the full per-head breakdown of one scenario evaluation.
// It is a value: recomputed from scratch on every parameter change and for
// every grid cell, never mutated in place.
type ProfitResult struct {
	NetPurchasePrice float64 `json:"net_purchase_price"`
	NetSalePrice     float64 `json:"net_sale_price"`

	FeedMargin          float64 `json:"feed_margin"`
	NetMargin           float64 `json:"net_margin"`
	PurchaseToSaleRatio float64 `json:"purchase_to_sale_ratio"`

	BreakevenPurchasePrice float64 `json:"breakeven_purchase_price"`
	BreakevenSalePrice     float64 `json:"breakeven_sale_price"`
	SalePriceDropToZeroPct float64 `json:"sale_price_drop_to_zero_pct"`

	CostPerKgProduced float64 `json:"cost_per_kg_produced"`
	OverheadPerKg     float64 `json:"overhead_per_kg"`

	InvestmentReturnPct float64 `json:"investment_return_pct"`
	MonthlyReturnPct    float64 `json:"monthly_return_pct"`
	AnnualReturnPct     float64 `json:"annual_return_pct"`

	DaysOnFeed      float64 `json:"days_on_feed"`
	TotalInvestment float64 `json:"total_investment"`

	// Cost components, kept so callers can show the investment breakdown.
	PurchaseCost      float64 `json:"purchase_cost"`
	TotalFeedCost     float64 `json:"total_feed_cost"`
	TotalOverheadCost float64 `json:"total_overhead_cost"`
	Revenue           float64 `json:"revenue"`
}

// ComputeProfit evaluates one scenario. It is total: inputs are sanitized
// first and every denominator is floored at Epsilon, so the result is finite
// for any input, including degenerate ones. Negative weight gain is allowed
// and simply produces negative feed cost and days on feed.
func ComputeProfit(p ScenarioParams) ProfitResult {
	p = p.sanitized()

	weightGain := p.ExitWeight - p.PurchaseWeight
	daysOnFeed := weightGain / p.AverageDailyGain

	feedCostPerKgGain := p.FeedConversionRatio * (p.PricePerTon / 1000)
	totalFeedCost := weightGain * feedCostPerKgGain
	totalOverheadCost := p.DailyOverheadCost * daysOnFeed

	purchaseCost := p.PurchasePrice * p.PurchaseWeight
	revenue := p.SalePrice * p.ExitWeight

	growCost := totalFeedCost + totalOverheadCost + p.HealthCostPerHead
	netMargin := revenue - (purchaseCost + growCost)
	totalInvestment := purchaseCost + growCost

	investmentReturnPct := netMargin / guard(totalInvestment) * 100
	monthlyReturnPct := investmentReturnPct / guard(daysOnFeed/30)

	return ProfitResult{
		NetPurchasePrice: p.PurchasePrice,
		NetSalePrice:     p.SalePrice,

		FeedMargin:          revenue - purchaseCost - totalFeedCost,
		NetMargin:           netMargin,
		PurchaseToSaleRatio: p.PurchasePrice / guard(p.SalePrice),

		BreakevenPurchasePrice: (revenue - growCost) / guard(p.PurchaseWeight),
		BreakevenSalePrice:     (purchaseCost + growCost) / guard(p.ExitWeight),
		SalePriceDropToZeroPct: (p.SalePrice - (purchaseCost+growCost)/guard(p.ExitWeight)) / guard(p.SalePrice) * 100,

		CostPerKgProduced: growCost / guard(weightGain),
		OverheadPerKg:     p.DailyOverheadCost / p.AverageDailyGain,

		InvestmentReturnPct: investmentReturnPct,
		MonthlyReturnPct:    monthlyReturnPct,
		AnnualReturnPct:     monthlyReturnPct * 12,

		DaysOnFeed:      daysOnFeed,
		TotalInvestment: totalInvestment,

		PurchaseCost:      purchaseCost,
		TotalFeedCost:     totalFeedCost,
		TotalOverheadCost: totalOverheadCost,
		Revenue:           revenue,
	}
}
