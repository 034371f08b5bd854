package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the inferred type of a column.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
)

func (k Kind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "text"
}

// Column names every chart relies on.
const (
	ColTeam1           = "team_1"
	ColTeam1Runs       = "team_1_runs"
	ColTeam2           = "team_2"
	ColTeam2Runs       = "team_2_runs"
	ColMatchCategory   = "match_category"
	ColWorldCupYear    = "world_cup_year"
	ColWinningTeam     = "winning_team"
	ColBestBatter1     = "best_batter_1"
	ColBestBatter1Runs = "best_batter_1_runs"
	ColVenue           = "venue"
)

// RequiredColumns lists the columns Validate insists on, in report order.
var RequiredColumns = []string{
	ColTeam1, ColTeam1Runs, ColTeam2, ColTeam2Runs,
	ColMatchCategory, ColWorldCupYear, ColWinningTeam,
	ColBestBatter1, ColBestBatter1Runs, ColVenue,
}

// Cells recognised as missing values.
var nullTokens = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsNullToken reports whether a raw cell should be read as a missing value.
func IsNullToken(s string) bool {
	_, ok := nullTokens[strings.TrimSpace(s)]
	return ok
}

// Column holds one typed column. Cells are never modified after load.
type Column struct {
	Name string
	Kind Kind

	raw   []string
	nums  []float64
	valid []bool
}

func newColumn(name string, raw []string) *Column {
	c := &Column{
		Name:  name,
		raw:   raw,
		nums:  make([]float64, len(raw)),
		valid: make([]bool, len(raw)),
	}

	numeric := true
	var nonFinite []int
	for i, v := range raw {
		if IsNullToken(v) {
			continue
		}
		c.valid[i] = true
		if !numeric {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			numeric = false
			continue
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			nonFinite = append(nonFinite, i)
			continue
		}
		c.nums[i] = f
	}
	if numeric {
		c.Kind = KindNumeric
		// inf and friends parse as floats but cannot be plotted
		for _, i := range nonFinite {
			c.valid[i] = false
		}
	} else {
		c.Kind = KindText
		clear(c.nums)
	}
	return c
}

// subset returns a column restricted to the given row indexes.
func (c *Column) subset(rows []int) *Column {
	out := &Column{
		Name:  c.Name,
		Kind:  c.Kind,
		raw:   make([]string, len(rows)),
		nums:  make([]float64, len(rows)),
		valid: make([]bool, len(rows)),
	}
	for i, r := range rows {
		out.raw[i] = c.raw[r]
		out.nums[i] = c.nums[r]
		out.valid[i] = c.valid[r]
	}
	return out
}

// NonNull returns the number of non-null cells.
func (c *Column) NonNull() int {
	n := 0
	for _, v := range c.valid {
		if v {
			n++
		}
	}
	return n
}

// Table is an immutable, column-oriented view of the match dataset.
type Table struct {
	source  string
	size    int64
	rows    int
	columns []*Column
	index   map[string]int
}

func newTable(source string, header []string, cells [][]string) *Table {
	t := &Table{
		source: source,
		rows:   len(cells),
		index:  make(map[string]int, len(header)),
	}
	for ci, name := range header {
		raw := make([]string, len(cells))
		for ri, row := range cells {
			if ci < len(row) {
				raw[ri] = row[ci]
			}
		}
		// First occurrence wins for duplicated header names.
		if _, dup := t.index[name]; !dup {
			t.index[name] = len(t.columns)
		}
		t.columns = append(t.columns, newColumn(name, raw))
	}
	return t
}

// Source is the file name (or reader label) the table was read from.
func (t *Table) Source() string { return t.source }

// Size is the byte size of the source file, or 0 when unknown.
func (t *Table) Size() int64 { return t.size }

// Len returns the number of rows.
func (t *Table) Len() int { return t.rows }

// Columns returns the header names in file order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Has reports whether the table has a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// IsNull reports whether the cell is missing. Unknown columns read as null.
func (t *Table) IsNull(row int, name string) bool {
	c, ok := t.Column(name)
	if !ok || row < 0 || row >= t.rows {
		return true
	}
	return !c.valid[row]
}

// Text returns the cell as written in the file, trimmed of surrounding spaces.
func (t *Table) Text(row int, name string) (string, bool) {
	if t.IsNull(row, name) {
		return "", false
	}
	c, _ := t.Column(name)
	return strings.TrimSpace(c.raw[row]), true
}

// Number returns the cell as a float. It fails for null cells and text columns.
func (t *Table) Number(row int, name string) (float64, bool) {
	if t.IsNull(row, name) {
		return 0, false
	}
	c, _ := t.Column(name)
	if c.Kind != KindNumeric {
		return 0, false
	}
	return c.nums[row], true
}

// DropNA returns a new table holding only the rows where every named column is
// non-null. The receiver is left untouched.
func (t *Table) DropNA(names ...string) *Table {
	keep := make([]int, 0, t.rows)
	for r := 0; r < t.rows; r++ {
		ok := true
		for _, name := range names {
			if t.IsNull(r, name) {
				ok = false
				break
			}
		}
		if ok {
			keep = append(keep, r)
		}
	}

	out := &Table{
		source:  t.source,
		size:    t.size,
		rows:    len(keep),
		columns: make([]*Column, len(t.columns)),
		index:   t.index,
	}
	for i, c := range t.columns {
		out.columns[i] = c.subset(keep)
	}
	return out
}
