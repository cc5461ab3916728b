// internal/model/params.go
package model

import "math"

// Epsilon is the floor used for every guarded denominator in the model.
// Division never sees a true zero, so every derived metric stays finite.
const Epsilon = 1e-9

// ScenarioParams holds the inputs of one feedlot scenario evaluation.
// Prices are $/kg, weights kg, feed price $/ton, gain kg/day.
type ScenarioParams struct {
	PurchasePrice       float64 `json:"purchase_price" mapstructure:"purchase_price"`
	SalePrice           float64 `json:"sale_price" mapstructure:"sale_price"`
	PurchaseWeight      float64 `json:"purchase_weight" mapstructure:"purchase_weight"`
	ExitWeight          float64 `json:"exit_weight" mapstructure:"exit_weight"`
	PricePerTon         float64 `json:"price_per_ton" mapstructure:"price_per_ton"`
	FeedConversionRatio float64 `json:"feed_conversion_ratio" mapstructure:"feed_conversion_ratio"`
	AverageDailyGain    float64 `json:"average_daily_gain" mapstructure:"average_daily_gain"`
	DailyOverheadCost   float64 `json:"daily_overhead_cost" mapstructure:"daily_overhead_cost"`
	HealthCostPerHead   float64 `json:"health_cost_per_head" mapstructure:"health_cost_per_head"`

	// Herd-level inputs. Not used by ComputeProfit, only by Herd().
	HeadCount    float64 `json:"head_count" mapstructure:"head_count"`
	MortalityPct float64 `json:"mortality_pct" mapstructure:"mortality_pct"`
}

// DefaultParams returns the documented default scenario.
func DefaultParams() ScenarioParams {
	return ScenarioParams{
		PurchasePrice:       3000,
		SalePrice:           3500,
		PurchaseWeight:      200,
		ExitWeight:          460,
		PricePerTon:         64000,
		FeedConversionRatio: 8,
		AverageDailyGain:    1.2,
		DailyOverheadCost:   30,
		HealthCostPerHead:   1200,
		HeadCount:           100,
		MortalityPct:        1,
	}
}

// sanitized applies the guarding policy: non-finite inputs become zero,
// except ExitWeight and AverageDailyGain which are clamped to Epsilon since
// both end up in denominators.
func (p ScenarioParams) sanitized() ScenarioParams {
	p.PurchasePrice = finiteOrZero(p.PurchasePrice)
	p.SalePrice = finiteOrZero(p.SalePrice)
	p.PurchaseWeight = finiteOrZero(p.PurchaseWeight)
	p.PricePerTon = finiteOrZero(p.PricePerTon)
	p.FeedConversionRatio = finiteOrZero(p.FeedConversionRatio)
	p.DailyOverheadCost = finiteOrZero(p.DailyOverheadCost)
	p.HealthCostPerHead = finiteOrZero(p.HealthCostPerHead)
	p.HeadCount = finiteOrZero(p.HeadCount)
	p.MortalityPct = finiteOrZero(p.MortalityPct)

	if !isFinite(p.ExitWeight) || p.ExitWeight <= Epsilon {
		p.ExitWeight = Epsilon
	}
	if !isFinite(p.AverageDailyGain) || p.AverageDailyGain <= 0 {
		p.AverageDailyGain = Epsilon
	}
	return p
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func finiteOrZero(x float64) float64 {
	if isFinite(x) {
		return x
	}
	return 0
}

// guard floors a denominator at Epsilon.
func guard(x float64) float64 {
	return math.Max(Epsilon, x)
}
