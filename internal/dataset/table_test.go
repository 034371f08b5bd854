package dataset

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Table {
	t.Helper()
	tbl, err := Load(filepath.Join("testdata", "matches.csv"))
	require.NoError(t, err)
	return tbl
}

func TestTable_KindInference(t *testing.T) {
	tbl := loadFixture(t)

	expect := map[string]Kind{
		ColTeam1:           KindText,
		ColTeam1Runs:       KindNumeric,
		ColTeam2Runs:       KindNumeric,
		ColMatchCategory:   KindText,
		ColWorldCupYear:    KindNumeric,
		ColBestBatter1:     KindText,
		ColBestBatter1Runs: KindNumeric, // "NA" is a null, not text
		ColVenue:           KindText,
	}
	for name, kind := range expect {
		c, ok := tbl.Column(name)
		require.True(t, ok, name)
		require.Equal(t, kind, c.Kind, name)
	}
}

func TestTable_CellAccess(t *testing.T) {
	tbl := loadFixture(t)

	s, ok := tbl.Text(0, ColTeam1)
	require.True(t, ok)
	require.Equal(t, "India", s)

	n, ok := tbl.Number(0, ColTeam1Runs)
	require.True(t, ok)
	require.Equal(t, 336.0, n)

	_, ok = tbl.Number(0, ColTeam1)
	require.False(t, ok, "text columns have no numeric value")

	require.True(t, tbl.IsNull(2, ColBestBatter1))
	require.True(t, tbl.IsNull(5, ColBestBatter1Runs))
	require.True(t, tbl.IsNull(0, "no_such_column"))
	require.True(t, tbl.IsNull(-1, ColTeam1))
	require.True(t, tbl.IsNull(tbl.Len(), ColTeam1))
}

func TestTable_DropNA(t *testing.T) {
	tbl := loadFixture(t)

	kept := tbl.DropNA(ColBestBatter1, ColBestBatter1Runs)
	require.Equal(t, 6, kept.Len())
	require.Equal(t, 10, tbl.Len(), "receiver is not modified")

	for r := 0; r < kept.Len(); r++ {
		require.False(t, kept.IsNull(r, ColBestBatter1))
		require.False(t, kept.IsNull(r, ColBestBatter1Runs))
	}

	first, _ := kept.Text(0, ColBestBatter1)
	require.Equal(t, "Rohit Sharma", first)
	last, _ := kept.Text(kept.Len()-1, ColBestBatter1)
	require.Equal(t, "Travis Head", last)

	c, _ := kept.Column(ColBestBatter1)
	require.Equal(t, 6, c.NonNull())
}

func TestTable_ShortRowsArePaddedWithNulls(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("a,b,c\n1,2\n4,5,6\n"), "short.csv")
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	require.True(t, tbl.IsNull(0, "c"))

	c, _ := tbl.Column("c")
	require.Equal(t, KindNumeric, c.Kind)
	require.Equal(t, 1, c.NonNull())
}

func TestIsNullToken(t *testing.T) {
	for _, s := range []string{"", " ", "NA", "N/A", "NaN", "nan", "null", "NULL", "None", "<NA>", "#N/A"} {
		require.True(t, IsNullToken(s), "%q", s)
	}
	for _, s := range []string{"0", "India", "none", "-"} {
		require.False(t, IsNullToken(s), "%q", s)
	}
}

func TestTable_NonFiniteNumbersAreNull(t *testing.T) {
	csv := "team_1,team_1_runs,world_cup_year\n" +
		"India,Infinity,2019\n" +
		"Australia,-inf,2019\n" +
		"England,241,2023\n" +
		"Pakistan,+Inf,2023\n"
	tbl, err := ReadCSV(strings.NewReader(csv), "matches.csv")
	require.NoError(t, err)

	runs, ok := tbl.Column("team_1_runs")
	require.True(t, ok)
	require.Equal(t, KindNumeric, runs.Kind)
	require.Equal(t, 1, runs.NonNull())

	require.True(t, tbl.IsNull(0, "team_1_runs"))
	_, ok = tbl.Number(1, "team_1_runs")
	require.False(t, ok)
	v, ok := tbl.Number(2, "team_1_runs")
	require.True(t, ok)
	require.Equal(t, 241.0, v)

	require.Equal(t, 1, tbl.DropNA("team_1_runs").Len())
}

func TestTable_InfInTextColumnStaysText(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader("venue\ninf\nLord's\n"), "matches.csv")
	require.NoError(t, err)

	venue, ok := tbl.Column("venue")
	require.True(t, ok)
	require.Equal(t, KindText, venue.Kind)
	require.Equal(t, 2, venue.NonNull())
	s, ok := tbl.Text(0, "venue")
	require.True(t, ok)
	require.Equal(t, "inf", s)
}
