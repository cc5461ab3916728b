// internal/model/herd.go
package model

// HerdResult scales a per-head result to the whole lot. Costs are paid for
// every purchased head; revenue only comes from the head that survive to
// sale.
type HerdResult struct {
	HeadCount     float64 `json:"head_count"`
	SellableHead  float64 `json:"sellable_head"`
	Revenue       float64 `json:"revenue"`
	TotalCost     float64 `json:"total_cost"`
	NetMargin     float64 `json:"net_margin"`
	Investment    float64 `json:"investment"`
	ReturnPct     float64 `json:"return_pct"`
	MarginPerHead float64 `json:"margin_per_head"`
}

// Herd computes lot-level totals from a scenario and its per-head result.
func Herd(p ScenarioParams, r ProfitResult) HerdResult {
	p = p.sanitized()

	head := p.HeadCount
	if head < 0 {
		head = 0
	}
	survival := 1 - p.MortalityPct/100
	if survival < 0 {
		survival = 0
	}
	sellable := head * survival

	revenue := r.Revenue * sellable
	investment := r.TotalInvestment * head
	netMargin := revenue - investment

	return HerdResult{
		HeadCount:     head,
		SellableHead:  sellable,
		Revenue:       revenue,
		TotalCost:     investment,
		NetMargin:     netMargin,
		Investment:    investment,
		ReturnPct:     netMargin / guard(investment) * 100,
		MarginPerHead: netMargin / guard(head),
	}
}
