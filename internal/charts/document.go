package charts

// Document is the JSON form of a Spec, including the aggregated data a client
// needs to draw it.
type Document struct {
	ID     string            `json:"id"`
	Kind   Kind              `json:"kind"`
	Title  string            `json:"title"`
	Rows   int               `json:"rows"`
	X      string            `json:"x,omitempty"`
	Y      string            `json:"y,omitempty"`
	Color  string            `json:"color,omitempty"`
	Names  string            `json:"names,omitempty"`
	Labels map[string]string `json:"labels"`

	Categories []Category `json:"categories,omitempty"`
	Stacks     []Stack    `json:"stacks,omitempty"`
	Series     []Series   `json:"series,omitempty"`
}

// Document resolves labels for every bound column and computes the chart data.
func (s *Spec) Document() Document {
	d := Document{
		ID:     s.ID,
		Kind:   s.Kind,
		Title:  s.Title,
		Rows:   s.Rows(),
		X:      s.X,
		Y:      s.Y,
		Color:  s.Color,
		Names:  s.Names,
		Labels: map[string]string{},
	}
	for _, col := range []string{s.X, s.Y, s.Color, s.Names} {
		if col != "" {
			d.Labels[col] = s.Label(col)
		}
	}

	switch {
	case s.Stacked():
		d.Stacks = s.Stacks()
	case s.Kind == KindBar || s.Kind == KindPie:
		d.Categories = s.Categories()
	default:
		d.Series = s.Series()
	}
	return d
}

// TabSummary is the JSON listing entry for one tab.
type TabSummary struct {
	Label   string `json:"label"`
	Slug    string `json:"slug"`
	ChartID string `json:"chart_id"`
	Kind    Kind   `json:"kind"`
	Rows    int    `json:"rows"`
}

// Summaries lists the tabs in order.
func (g TabGroup) Summaries() []TabSummary {
	out := make([]TabSummary, 0, len(g))
	for _, t := range g {
		out = append(out, TabSummary{
			Label:   t.Label,
			Slug:    t.Slug,
			ChartID: t.Chart.ID,
			Kind:    t.Chart.Kind,
			Rows:    t.Chart.Rows(),
		})
	}
	return out
}
