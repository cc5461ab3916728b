package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agrotools/feedlot-calc/internal/model"
	"github.com/agrotools/feedlot-calc/internal/ui/style"
)

// MetricsPanel renders the per-head result and the herd aggregates as a
// bordered two-column panel.
type MetricsPanel struct {
	result model.ProfitResult
	herd   model.HerdResult
	width  int

	containerStyle lipgloss.Style
	titleStyle     lipgloss.Style
	labelStyle     lipgloss.Style
	valueStyle     lipgloss.Style
	profitStyle    lipgloss.Style
	lossStyle      lipgloss.Style
}

// NewMetricsPanel creates a new metrics panel
func NewMetricsPanel() *MetricsPanel {
	palette := style.DefaultPalette()

	return &MetricsPanel{
		width: 60,

		containerStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(palette.Primary).
			Padding(1, 2),

		titleStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		valueStyle: lipgloss.NewStyle().
			Foreground(palette.Text),

		profitStyle: lipgloss.NewStyle().
			Foreground(palette.Profit).
			Bold(true),

		lossStyle: lipgloss.NewStyle().
			Foreground(palette.Loss).
			Bold(true),
	}
}

// SetResult updates the displayed per-head result
func (m *MetricsPanel) SetResult(result model.ProfitResult) *MetricsPanel {
	m.result = result
	return m
}

// SetHerd updates the displayed herd aggregates
func (m *MetricsPanel) SetHerd(herd model.HerdResult) *MetricsPanel {
	m.herd = herd
	return m
}

// SetWidth sets the panel width
func (m *MetricsPanel) SetWidth(width int) *MetricsPanel {
	m.width = width
	return m
}

// View renders the metrics panel
func (m *MetricsPanel) View() string {
	r := m.result
	h := m.herd

	var b strings.Builder

	b.WriteString(m.titleStyle.Render("Per Head"))
	b.WriteString("\n")
	b.WriteString(m.row("Net margin", m.signedMoney(r.NetMargin)))
	b.WriteString(m.row("Feed margin", m.signedMoney(r.FeedMargin)))
	b.WriteString(m.row("Total investment", m.money(r.TotalInvestment)))
	b.WriteString(m.row("Days on feed", fmt.Sprintf("%.0f", r.DaysOnFeed)))
	b.WriteString(m.row("Cost per kg produced", m.money(r.CostPerKgProduced)))
	b.WriteString(m.row("Breakeven sale price", m.money(r.BreakevenSalePrice)))
	b.WriteString(m.row("Breakeven purchase price", m.money(r.BreakevenPurchasePrice)))
	b.WriteString(m.row("Sale price cushion", fmt.Sprintf("%.1f%%", r.SalePriceDropToZeroPct)))
	b.WriteString(m.row("Return on investment", m.signedPct(r.InvestmentReturnPct)))
	b.WriteString(m.row("Monthly return", m.signedPct(r.MonthlyReturnPct)))
	b.WriteString(m.row("Annual return", m.signedPct(r.AnnualReturnPct)))

	b.WriteString("\n")
	b.WriteString(m.titleStyle.Render("Herd"))
	b.WriteString("\n")
	b.WriteString(m.row("Head placed", fmt.Sprintf("%.0f", h.HeadCount)))
	b.WriteString(m.row("Head sold", fmt.Sprintf("%.1f", h.SellableHead)))
	b.WriteString(m.row("Revenue", m.money(h.Revenue)))
	b.WriteString(m.row("Investment", m.money(h.Investment)))
	b.WriteString(m.row("Net margin", m.signedMoney(h.NetMargin)))
	b.WriteString(m.row("Margin per head", m.signedMoney(h.MarginPerHead)))
	b.WriteString(m.row("Return", m.signedPct(h.ReturnPct)))

	return m.containerStyle.Width(m.width).Render(strings.TrimRight(b.String(), "\n"))
}

func (m *MetricsPanel) row(label, value string) string {
	labelWidth := 26
	padded := fmt.Sprintf("%-*s", labelWidth, label)
	return m.labelStyle.Render(padded) + value + "\n"
}

func (m *MetricsPanel) money(v float64) string {
	return m.valueStyle.Render(fmt.Sprintf("%.2f", v))
}

func (m *MetricsPanel) signedMoney(v float64) string {
	if v >= 0 {
		return m.profitStyle.Render(fmt.Sprintf("+%.2f", v))
	}
	return m.lossStyle.Render(fmt.Sprintf("%.2f", v))
}

func (m *MetricsPanel) signedPct(v float64) string {
	if v >= 0 {
		return m.profitStyle.Render(fmt.Sprintf("+%.2f%%", v))
	}
	return m.lossStyle.Render(fmt.Sprintf("%.2f%%", v))
}
