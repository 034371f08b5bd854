// Package render draws chart specifications as SVG using go-chart.
package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"thirdcoast.systems/wicket/internal/charts"
)

// ErrNoData is returned when a spec has nothing plottable.
var ErrNoData = errors.New("no data to plot")

const (
	DefaultWidth  = 1024
	DefaultHeight = 520

	barWidth   = 40
	barSpacing = 16
)

// SVG writes the chart for s to w.
func SVG(w io.Writer, s *charts.Spec) error {
	var err error
	switch {
	case s.Kind == charts.KindPie:
		err = pie(w, s)
	case s.Stacked():
		err = stackedBar(w, s)
	case s.Kind == charts.KindBar:
		err = bar(w, s)
	case s.Kind == charts.KindLine, s.Kind == charts.KindScatter:
		err = xy(w, s)
	default:
		err = fmt.Errorf("unsupported chart kind %q", s.Kind)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", s.ID, err)
	}
	return nil
}

func barCanvasWidth(n int) int {
	return max(DefaultWidth, n*(barWidth+barSpacing)+160)
}

func bar(w io.Writer, s *charts.Spec) error {
	cats := s.Categories()
	if len(cats) == 0 {
		return ErrNoData
	}
	idx := groupIndex(s)

	top := 0.0
	bars := make([]chart.Value, 0, len(cats))
	for _, c := range cats {
		top = math.Max(top, c.Value)
		style := chart.Style{FillColor: Color(0), StrokeColor: Color(0)}
		if i, ok := idx[c.Label]; ok {
			style = chart.Style{FillColor: Color(i), StrokeColor: Color(i)}
		}
		bars = append(bars, chart.Value{Label: c.Label, Value: c.Value, Style: style})
	}

	graph := chart.BarChart{
		Title:      s.Title,
		Width:      barCanvasWidth(len(bars)),
		Height:     DefaultHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 48, Bottom: 16}},
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name:  s.Label(valueColumn(s)),
			Range: valueRange(0, top),
		},
		Bars: bars,
	}
	return graph.Render(chart.SVG, w)
}

func stackedBar(w io.Writer, s *charts.Spec) error {
	stacks := s.Stacks()
	if len(stacks) == 0 {
		return ErrNoData
	}
	idx := groupIndex(s)

	bars := make([]chart.StackedBar, 0, len(stacks))
	for _, st := range stacks {
		values := make([]chart.Value, 0, len(st.Parts))
		for _, p := range st.Parts {
			c := Color(idx[p.Label])
			values = append(values, chart.Value{
				Label: p.Label,
				Value: p.Value,
				Style: chart.Style{FillColor: c, StrokeColor: c},
			})
		}
		bars = append(bars, chart.StackedBar{Name: st.Label, Width: barWidth, Values: values})
	}

	graph := chart.StackedBarChart{
		Title:      s.Title,
		Width:      barCanvasWidth(len(bars)),
		Height:     DefaultHeight,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 48, Bottom: 16}},
		XAxis:      chart.Style{TextRotationDegrees: 45},
		Bars:       bars,
	}
	return graph.Render(chart.SVG, w)
}

func pie(w io.Writer, s *charts.Spec) error {
	cats := s.Categories()
	if len(cats) == 0 {
		return ErrNoData
	}
	idx := groupIndex(s)

	values := make([]chart.Value, 0, len(cats))
	for _, c := range cats {
		col := Color(idx[c.Label])
		values = append(values, chart.Value{
			Label: c.Label,
			Value: c.Value,
			Style: chart.Style{FillColor: col, StrokeColor: col},
		})
	}

	graph := chart.PieChart{
		Title:  s.Title,
		Width:  DefaultHeight,
		Height: DefaultHeight,
		Values: values,
	}
	return graph.Render(chart.SVG, w)
}

func xy(w io.Writer, s *charts.Spec) error {
	series := s.Series()
	if len(series) == 0 {
		return ErrNoData
	}
	idx := groupIndex(s)

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	out := make([]chart.Series, 0, len(series))
	for i, sr := range series {
		xs := make([]float64, len(sr.Points))
		ys := make([]float64, len(sr.Points))
		for j, p := range sr.Points {
			xs[j], ys[j] = p.X, p.Y
			xMin, xMax = math.Min(xMin, p.X), math.Max(xMax, p.X)
			yMin, yMax = math.Min(yMin, p.Y), math.Max(yMax, p.Y)
		}

		ci := i
		if g, ok := idx[sr.Name]; ok {
			ci = g
		}
		col := Color(ci)
		style := chart.Style{StrokeColor: col, StrokeWidth: 2, DotColor: col, DotWidth: 3}
		if s.Kind == charts.KindScatter {
			style = chart.Style{StrokeWidth: chart.Disabled, DotColor: col, DotWidth: 5}
		}
		out = append(out, chart.ContinuousSeries{
			Name:    sr.Name,
			XValues: xs,
			YValues: ys,
			Style:   style,
		})
	}

	graph := chart.Chart{
		Title:      s.Title,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16}},
		XAxis: chart.XAxis{
			Name:           s.Label(s.X),
			Range:          valueRange(xMin, xMax),
			ValueFormatter: compactFormatter,
		},
		YAxis: chart.YAxis{
			Name:           s.Label(s.Y),
			Range:          valueRange(yMin, yMax),
			ValueFormatter: compactFormatter,
		},
		Series: out,
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}
	return graph.Render(chart.SVG, w)
}

// valueColumn is the column the Y axis describes; counted bars have none.
func valueColumn(s *charts.Spec) string {
	if s.Counted() {
		return "count"
	}
	return s.Y
}

// valueRange widens degenerate ranges so go-chart never sees a zero delta.
func valueRange(lo, hi float64) *chart.ContinuousRange {
	if lo > hi {
		lo, hi = 0, 1
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	pad := (hi - lo) * 0.05
	if lo >= 0 && lo-pad < 0 {
		return &chart.ContinuousRange{Min: 0, Max: hi + pad}
	}
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func compactFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		if f == math.Trunc(f) {
			return fmt.Sprintf("%.0f", f)
		}
		return fmt.Sprintf("%.1f", f)
	}
	return fmt.Sprintf("%v", v)
}
