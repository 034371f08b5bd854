package charts

import (
	"slices"
)

// Category is one bar or pie slice.
type Category struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Stack is one bar split into coloured parts.
type Stack struct {
	Label string     `json:"label"`
	Parts []Category `json:"parts"`
}

// Point is one x/y observation.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is one colour group of a line or scatter chart.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// ordered accumulates values by key while remembering first-appearance order.
type ordered struct {
	keys []string
	vals map[string]float64
}

func newOrdered() *ordered {
	return &ordered{vals: map[string]float64{}}
}

func (o *ordered) add(key string, v float64) {
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] += v
}

// rowValue returns what a row contributes to a bar or slice.
func (s *Spec) rowValue(row int) (float64, bool) {
	if s.Counted() {
		return 1, true
	}
	return s.Source.Number(row, s.Y)
}

func (s *Spec) categoryColumn() string {
	if s.Kind == KindPie {
		return s.Names
	}
	return s.X
}

// Categories returns bar heights or pie slices in first-appearance order.
// Heights are row counts when no Y column is bound, otherwise sums of Y.
// Rows with a null in a bound column are skipped.
func (s *Spec) Categories() []Category {
	if s.Source == nil || (s.Kind != KindBar && s.Kind != KindPie) {
		return nil
	}
	col := s.categoryColumn()
	acc := newOrdered()
	for r := 0; r < s.Source.Len(); r++ {
		label, ok := s.Source.Text(r, col)
		if !ok {
			continue
		}
		v, ok := s.rowValue(r)
		if !ok {
			continue
		}
		acc.add(label, v)
	}

	out := make([]Category, 0, len(acc.keys))
	for _, k := range acc.keys {
		out = append(out, Category{Label: k, Value: acc.vals[k]})
	}
	return out
}

// Groups returns the distinct values of the colour column in first-appearance
// order. Renderers use the index into this slice to pick a colour.
func (s *Spec) Groups() []string {
	if s.Source == nil {
		return nil
	}
	col := s.Color
	if s.Kind == KindPie {
		col = s.Names
	}
	if col == "" {
		return nil
	}
	var out []string
	seen := map[string]struct{}{}
	for r := 0; r < s.Source.Len(); r++ {
		v, ok := s.Source.Text(r, col)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Stacks splits each X category by the colour column. Parts keep the order of
// Groups and omit empty combinations.
func (s *Spec) Stacks() []Stack {
	if s.Source == nil || !s.Stacked() {
		return nil
	}
	xs := newOrdered()
	cells := map[string]*ordered{}
	for r := 0; r < s.Source.Len(); r++ {
		x, ok := s.Source.Text(r, s.X)
		if !ok {
			continue
		}
		c, ok := s.Source.Text(r, s.Color)
		if !ok {
			continue
		}
		v, ok := s.rowValue(r)
		if !ok {
			continue
		}
		xs.add(x, v)
		if cells[x] == nil {
			cells[x] = newOrdered()
		}
		cells[x].add(c, v)
	}

	groups := s.Groups()
	out := make([]Stack, 0, len(xs.keys))
	for _, x := range xs.keys {
		st := Stack{Label: x}
		for _, g := range groups {
			if v, ok := cells[x].vals[g]; ok {
				st.Parts = append(st.Parts, Category{Label: g, Value: v})
			}
		}
		out = append(out, st)
	}
	return out
}

// Series returns one point set per colour group. Line points are sorted by x;
// scatter points keep row order.
func (s *Spec) Series() []Series {
	if s.Source == nil || (s.Kind != KindLine && s.Kind != KindScatter) {
		return nil
	}
	index := map[string]int{}
	var out []Series
	for r := 0; r < s.Source.Len(); r++ {
		x, ok := s.Source.Number(r, s.X)
		if !ok {
			continue
		}
		y, ok := s.Source.Number(r, s.Y)
		if !ok {
			continue
		}
		name := s.Label(s.Y)
		if s.Color != "" {
			if name, ok = s.Source.Text(r, s.Color); !ok {
				continue
			}
		}
		i, seen := index[name]
		if !seen {
			i = len(out)
			index[name] = i
			out = append(out, Series{Name: name})
		}
		out[i].Points = append(out[i].Points, Point{X: x, Y: y})
	}

	if s.Kind == KindLine {
		for i := range out {
			slices.SortStableFunc(out[i].Points, func(a, b Point) int {
				switch {
				case a.X < b.X:
					return -1
				case a.X > b.X:
					return 1
				}
				return 0
			})
		}
	}
	return out
}
