package component

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agrotools/feedlot-calc/internal/model"
	"github.com/agrotools/feedlot-calc/internal/ui/style"
)

// paramField binds one numeric input to a ScenarioParams field
type paramField struct {
	label string
	get   func(*model.ScenarioParams) float64
	set   func(*model.ScenarioParams, float64)
	input textinput.Model
	err   string
}

// ParamForm is the editable parameter form of the dashboard. Every field is
// numeric; a field that fails to parse keeps the last good value and shows
// an inline error.
type ParamForm struct {
	fields     []paramField
	focusIndex int
	params     model.ScenarioParams
	width      int

	labelStyle   lipgloss.Style
	inputStyle   lipgloss.Style
	focusedStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

// NewParamForm creates the form pre-filled with the given parameters
func NewParamForm(params model.ScenarioParams) *ParamForm {
	palette := style.DefaultPalette()

	f := &ParamForm{
		params: params,
		width:  44,

		labelStyle: lipgloss.NewStyle().
			Foreground(palette.TextMuted),

		inputStyle: lipgloss.NewStyle().
			Foreground(palette.Text),

		focusedStyle: lipgloss.NewStyle().
			Foreground(palette.Primary).
			Bold(true),

		errorStyle: lipgloss.NewStyle().
			Foreground(palette.Error),
	}

	f.addField("Purchase price (per kg)",
		func(p *model.ScenarioParams) float64 { return p.PurchasePrice },
		func(p *model.ScenarioParams, v float64) { p.PurchasePrice = v })
	f.addField("Sale price (per kg)",
		func(p *model.ScenarioParams) float64 { return p.SalePrice },
		func(p *model.ScenarioParams, v float64) { p.SalePrice = v })
	f.addField("Purchase weight (kg)",
		func(p *model.ScenarioParams) float64 { return p.PurchaseWeight },
		func(p *model.ScenarioParams, v float64) { p.PurchaseWeight = v })
	f.addField("Exit weight (kg)",
		func(p *model.ScenarioParams) float64 { return p.ExitWeight },
		func(p *model.ScenarioParams, v float64) { p.ExitWeight = v })
	f.addField("Feed price (per ton)",
		func(p *model.ScenarioParams) float64 { return p.PricePerTon },
		func(p *model.ScenarioParams, v float64) { p.PricePerTon = v })
	f.addField("Feed conversion ratio",
		func(p *model.ScenarioParams) float64 { return p.FeedConversionRatio },
		func(p *model.ScenarioParams, v float64) { p.FeedConversionRatio = v })
	f.addField("Average daily gain (kg)",
		func(p *model.ScenarioParams) float64 { return p.AverageDailyGain },
		func(p *model.ScenarioParams, v float64) { p.AverageDailyGain = v })
	f.addField("Daily overhead cost",
		func(p *model.ScenarioParams) float64 { return p.DailyOverheadCost },
		func(p *model.ScenarioParams, v float64) { p.DailyOverheadCost = v })
	f.addField("Health cost per head",
		func(p *model.ScenarioParams) float64 { return p.HealthCostPerHead },
		func(p *model.ScenarioParams, v float64) { p.HealthCostPerHead = v })
	f.addField("Head count",
		func(p *model.ScenarioParams) float64 { return p.HeadCount },
		func(p *model.ScenarioParams, v float64) { p.HeadCount = v })
	f.addField("Mortality (%)",
		func(p *model.ScenarioParams) float64 { return p.MortalityPct },
		func(p *model.ScenarioParams, v float64) { p.MortalityPct = v })

	f.fields[0].input.Focus()
	return f
}

func (f *ParamForm) addField(label string, get func(*model.ScenarioParams) float64, set func(*model.ScenarioParams, float64)) {
	ti := textinput.New()
	ti.Width = 12
	ti.Prompt = ""
	ti.SetValue(formatParam(get(&f.params)))

	f.fields = append(f.fields, paramField{
		label: label,
		get:   get,
		set:   set,
		input: ti,
	})
}

// Params returns the current parameter set
func (f *ParamForm) Params() model.ScenarioParams {
	return f.params
}

// SetParams replaces the parameter set and refreshes every input
func (f *ParamForm) SetParams(params model.ScenarioParams) *ParamForm {
	f.params = params
	for i := range f.fields {
		f.fields[i].input.SetValue(formatParam(f.fields[i].get(&f.params)))
		f.fields[i].err = ""
	}
	return f
}

// SetWidth sets the form width
func (f *ParamForm) SetWidth(width int) *ParamForm {
	f.width = width
	return f
}

// FocusNext moves focus to the next field, wrapping around
func (f *ParamForm) FocusNext() {
	f.moveFocus(1)
}

// FocusPrev moves focus to the previous field, wrapping around
func (f *ParamForm) FocusPrev() {
	f.moveFocus(-1)
}

func (f *ParamForm) moveFocus(delta int) {
	f.fields[f.focusIndex].input.Blur()
	f.focusIndex = (f.focusIndex + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focusIndex].input.Focus()
}

// Update forwards the message to the focused input and re-parses its value.
// It reports whether the parameter set changed.
func (f *ParamForm) Update(msg tea.Msg) (tea.Cmd, bool) {
	field := &f.fields[f.focusIndex]
	before := field.input.Value()

	var cmd tea.Cmd
	field.input, cmd = field.input.Update(msg)

	after := field.input.Value()
	if after == before {
		return cmd, false
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(after), 64)
	if err != nil {
		field.err = "not a number"
		return cmd, false
	}

	field.err = ""
	field.set(&f.params, value)
	return cmd, true
}

// View renders the form
func (f *ParamForm) View() string {
	var b strings.Builder
	labelWidth := 26

	for i := range f.fields {
		field := &f.fields[i]

		label := fmt.Sprintf("%-*s", labelWidth, field.label)
		if i == f.focusIndex {
			b.WriteString(f.focusedStyle.Render("▸ " + label))
		} else {
			b.WriteString(f.labelStyle.Render("  " + label))
		}

		b.WriteString(f.inputStyle.Render(field.input.View()))
		if field.err != "" {
			b.WriteString(" " + f.errorStyle.Render(field.err))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatParam trims trailing zeros so the inputs stay editable
func formatParam(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
