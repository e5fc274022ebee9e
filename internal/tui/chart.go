package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ChartLayout carries the sizing the chart renderer needs plus the layout
// generation. The generation changes on every view-mode toggle and resize;
// anything cached against a render must key on it so no chart layout
// survives a mode switch.
type ChartLayout struct {
	Width      int
	Height     int
	Generation int
}

// Series is one line to plot.
type Series struct {
	Label  string
	Values []float64
	Marker rune
	Style  lipgloss.Style
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as a single-row block-character trend, resampled
// to width columns. Purely derived from its inputs.
func Sparkline(values []float64, width int, style lipgloss.Style) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}

	samples := resample(values, width)
	lo, hi := minMax(samples)

	var b strings.Builder
	for _, v := range samples {
		idx := 0
		if hi > lo {
			idx = int((v - lo) / (hi - lo) * float64(len(sparkRunes)-1))
		} else {
			idx = len(sparkRunes) / 2
		}
		b.WriteRune(sparkRunes[idx])
	}
	return style.Render(b.String())
}

// LineChart plots one or more series on a shared scale with y-axis bounds
// and first/last x labels. Later series draw over earlier ones, so the
// primary series should come last.
func LineChart(series []Series, xFirst, xLast string, layout ChartLayout) string {
	width, height := layout.Width, layout.Height
	if width < 16 {
		width = 16
	}
	if height < 4 {
		height = 4
	}

	lo, hi := seriesBounds(series)
	if hi <= lo {
		hi = lo + 1
	}

	yLabels := []string{
		fmt.Sprintf("%.1f", hi),
		fmt.Sprintf("%.1f", lo),
	}
	labelWidth := len(yLabels[0])
	if len(yLabels[1]) > labelWidth {
		labelWidth = len(yLabels[1])
	}
	plotWidth := width - labelWidth - 2
	if plotWidth < 8 {
		plotWidth = 8
	}

	type cell struct {
		r     rune
		style lipgloss.Style
	}
	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, plotWidth)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}

	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		samples := resample(s.Values, plotWidth)
		for x, v := range samples {
			row := int((hi - v) / (hi - lo) * float64(height-1))
			if row < 0 {
				row = 0
			}
			if row >= height {
				row = height - 1
			}
			grid[row][x] = cell{r: s.Marker, style: s.Style}
		}
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		switch y {
		case 0:
			b.WriteString(fmt.Sprintf("%*s ┤", labelWidth, yLabels[0]))
		case height - 1:
			b.WriteString(fmt.Sprintf("%*s ┤", labelWidth, yLabels[1]))
		default:
			b.WriteString(strings.Repeat(" ", labelWidth) + " │")
		}
		for x := 0; x < plotWidth; x++ {
			c := grid[y][x]
			if c.r == ' ' {
				b.WriteByte(' ')
			} else {
				b.WriteString(c.style.Render(string(c.r)))
			}
		}
		b.WriteByte('\n')
	}

	// X axis with first/last labels.
	b.WriteString(strings.Repeat(" ", labelWidth) + " └" + strings.Repeat("─", plotWidth) + "\n")
	gap := plotWidth - len(xFirst) - len(xLast)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(strings.Repeat(" ", labelWidth+2) + xFirst + strings.Repeat(" ", gap) + xLast)

	return b.String()
}

// resample stretches or shrinks values to exactly width samples.
func resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) == 0 {
		return nil
	}
	out := make([]float64, width)
	if len(values) == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	// A single column has no interpolation span; show the latest sample.
	if width == 1 {
		out[0] = values[len(values)-1]
		return out
	}
	for i := 0; i < width; i++ {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		j := int(pos)
		if j >= len(values)-1 {
			out[i] = values[len(values)-1]
			continue
		}
		frac := pos - float64(j)
		out[i] = values[j]*(1-frac) + values[j+1]*frac
	}
	return out
}

func minMax(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

func seriesBounds(series []Series) (float64, float64) {
	first := true
	var lo, hi float64
	for _, s := range series {
		for _, v := range s.Values {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	return lo, hi
}
