package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
	"thirdcoast.systems/wicket/internal/charts"
)

// qualitative palette; group i gets palette[i % len(palette)]
var palette = []string{
	"636efa", "ef553b", "00cc96", "ab63fa", "ffa15a",
	"19d3f3", "ff6692", "b6e880", "ff97ff", "fecb52",
}

// Color returns the drawing colour for group index i.
func Color(i int) drawing.Color {
	return drawing.ColorFromHex(Hex(i))
}

// Hex returns the CSS hex (without '#') for group index i.
func Hex(i int) string {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// LegendEntry maps one colour group to its swatch.
type LegendEntry struct {
	Label string
	Hex   string
}

// Legend returns the colour assignment SVG uses for s, in group order.
func Legend(s *charts.Spec) []LegendEntry {
	groups := s.Groups()
	out := make([]LegendEntry, len(groups))
	for i, g := range groups {
		out[i] = LegendEntry{Label: g, Hex: "#" + Hex(i)}
	}
	return out
}

func groupIndex(s *charts.Spec) map[string]int {
	idx := map[string]int{}
	for i, g := range s.Groups() {
		idx[g] = i
	}
	return idx
}
