package component

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agrotools/feedlot-calc/internal/ui/style"
)

// sparkChars from lowest to highest
var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a margin curve as a row of block characters. Points at
// or above zero are drawn in the profit color, points below zero in the
// loss color, so the breakeven crossing is visible at a glance.
type Sparkline struct {
	data  []float64
	width int

	profitStyle lipgloss.Style
	lossStyle   lipgloss.Style
	emptyStyle  lipgloss.Style
}

// NewSparkline creates a new sparkline component
func NewSparkline(width int) *Sparkline {
	palette := style.DefaultPalette()

	return &Sparkline{
		width:       width,
		profitStyle: lipgloss.NewStyle().Foreground(palette.Profit),
		lossStyle:   lipgloss.NewStyle().Foreground(palette.Loss),
		emptyStyle:  lipgloss.NewStyle().Foreground(palette.TextMuted),
	}
}

// SetData sets the data points for the sparkline
func (s *Sparkline) SetData(data []float64) *Sparkline {
	s.data = make([]float64, len(data))
	copy(s.data, data)
	return s
}

// SetWidth sets the width of the sparkline
func (s *Sparkline) SetWidth(width int) *Sparkline {
	if width > 0 {
		s.width = width
	}
	return s
}

// View renders the sparkline
func (s *Sparkline) View() string {
	if len(s.data) == 0 || s.width <= 0 {
		return s.emptyStyle.Render(strings.Repeat("▁", maxInt(s.width, 1)))
	}

	points := resample(s.data, s.width)
	min, max := minMax(points)

	var b strings.Builder
	for _, value := range points {
		var index int
		if max > min {
			normalized := (value - min) / (max - min)
			index = int(normalized * float64(len(sparkChars)-1))
			if index < 0 {
				index = 0
			} else if index >= len(sparkChars) {
				index = len(sparkChars) - 1
			}
		} else {
			index = len(sparkChars) / 2
		}

		ch := string(sparkChars[index])
		if value >= 0 {
			b.WriteString(s.profitStyle.Render(ch))
		} else {
			b.WriteString(s.lossStyle.Render(ch))
		}
	}

	return b.String()
}

// resample reduces or stretches the series to exactly width points by
// nearest-index sampling. Values are never interpolated.
func resample(data []float64, width int) []float64 {
	if len(data) == width {
		out := make([]float64, width)
		copy(out, data)
		return out
	}

	out := make([]float64, width)
	for i := 0; i < width; i++ {
		idx := i * (len(data) - 1) / maxInt(width-1, 1)
		out[i] = data[idx]
	}
	return out
}

func minMax(data []float64) (float64, float64) {
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
