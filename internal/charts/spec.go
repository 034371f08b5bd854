// Package charts derives the dashboard's chart specifications from a loaded
// match table.
package charts

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"thirdcoast.systems/wicket/internal/dataset"
)

// Kind is the visual form of a chart.
type Kind string

const (
	KindBar     Kind = "bar"
	KindPie     Kind = "pie"
	KindLine    Kind = "line"
	KindScatter Kind = "scatter"
)

var titleCaser = cases.Title(language.English)

// Spec is a declarative description of one chart. It is built once and never
// modified; Source may be the full table or a filtered view of it.
type Spec struct {
	ID     string
	Kind   Kind
	Source *dataset.Table

	X     string
	Y     string
	Color string
	Names string // pie categories

	Title  string
	Labels map[string]string
}

// Rows is the number of rows the chart is built from.
func (s *Spec) Rows() int {
	if s.Source == nil {
		return 0
	}
	return s.Source.Len()
}

// Label returns the display name for a bound column.
func (s *Spec) Label(column string) string {
	if l, ok := s.Labels[column]; ok {
		return l
	}
	return titleCaser.String(strings.ReplaceAll(column, "_", " "))
}

// Counted reports whether bar heights are row counts rather than sums of Y.
func (s *Spec) Counted() bool {
	return s.Kind == KindPie || (s.Kind == KindBar && s.Y == "")
}

// Stacked reports whether bars are split by a colour column other than X.
func (s *Spec) Stacked() bool {
	return s.Kind == KindBar && s.Color != "" && s.Color != s.X
}

// NumericColumns lists the bound columns the chart reads as numbers. A text
// column in one of these positions leaves the chart empty.
func (s *Spec) NumericColumns() []string {
	switch {
	case s.Kind == KindLine || s.Kind == KindScatter:
		return []string{s.X, s.Y}
	case !s.Counted():
		return []string{s.Y}
	}
	return nil
}

// Tab pairs a visible label with its chart.
type Tab struct {
	Label string
	Slug  string
	Chart *Spec
}

// TabGroup is the ordered set of dashboard tabs.
type TabGroup []Tab

// Find returns the tab with the given slug.
func (g TabGroup) Find(slug string) (Tab, bool) {
	for _, t := range g {
		if t.Slug == slug {
			return t, true
		}
	}
	return Tab{}, false
}

// Chart returns the spec with the given chart id.
func (g TabGroup) Chart(id string) (*Spec, bool) {
	for _, t := range g {
		if t.Chart != nil && t.Chart.ID == id {
			return t.Chart, true
		}
	}
	return nil, false
}

// NumericBinding is a column read as a number and the charts reading it.
type NumericBinding struct {
	Column string
	Charts []string
}

// NumericBindings collects NumericColumns across the group, in tab order.
func (g TabGroup) NumericBindings() []NumericBinding {
	var out []NumericBinding
	index := map[string]int{}
	for _, t := range g {
		if t.Chart == nil {
			continue
		}
		for _, col := range t.Chart.NumericColumns() {
			i, ok := index[col]
			if !ok {
				i = len(out)
				index[col] = i
				out = append(out, NumericBinding{Column: col})
			}
			out[i].Charts = append(out[i].Charts, t.Chart.ID)
		}
	}
	return out
}
