package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"thirdcoast.systems/wicket/internal/charts"
	"thirdcoast.systems/wicket/internal/dataset"
)

const header = "team_1,team_2,team_1_runs,team_2_runs,match_category,world_cup_year,winning_team,best_batter_1,best_batter_1_runs,venue\n"

const rows = `India,Pakistan,336,212,Group,2019,India,Rohit Sharma,140,Old Trafford
Australia,England,285,221,Group,2019,Australia,Aaron Finch,100,Lord's
New Zealand,India,239,221,Semi-final,2019,New Zealand,,,Old Trafford
England,New Zealand,241,241,Final,2019,England,Ben Stokes,84,Lord's
India,Australia,199,201,Group,2023,Australia,KL Rahul,97,Chennai
Australia,India,241,240,Final,2023,Australia,Travis Head,137,Ahmedabad
`

func buildTabs(t *testing.T, csv string) charts.TabGroup {
	t.Helper()
	tbl, err := dataset.ReadCSV(strings.NewReader(csv), "matches.csv")
	require.NoError(t, err)
	require.NoError(t, dataset.Validate(tbl))
	return charts.Build(tbl)
}

func TestSVG_EveryTab(t *testing.T) {
	t.Parallel()

	for _, tab := range buildTabs(t, header+rows) {
		t.Run(tab.Slug, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, SVG(&buf, tab.Chart))
			out := buf.String()
			require.True(t, strings.HasPrefix(strings.TrimSpace(out), "<svg"), "expected svg document")
			require.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
		})
	}
}

func TestSVG_SingleRowRanges(t *testing.T) {
	tabs := buildTabs(t, header+strings.SplitN(rows, "\n", 2)[0]+"\n")
	for _, tab := range tabs {
		var buf bytes.Buffer
		require.NoError(t, SVG(&buf, tab.Chart), tab.Slug)
	}
}

func TestSVG_NoData(t *testing.T) {
	for _, tab := range buildTabs(t, header) {
		var buf bytes.Buffer
		err := SVG(&buf, tab.Chart)
		require.ErrorIs(t, err, ErrNoData, tab.Slug)
		require.Contains(t, err.Error(), tab.Chart.ID)
	}
}

func TestLegend_FollowsGroupOrder(t *testing.T) {
	spec, ok := buildTabs(t, header+rows).Chart("venue-performance")
	require.True(t, ok)

	require.Equal(t, []LegendEntry{
		{Label: "India", Hex: "#636efa"},
		{Label: "Australia", Hex: "#ef553b"},
		{Label: "New Zealand", Hex: "#00cc96"},
		{Label: "England", Hex: "#ab63fa"},
	}, Legend(spec))
}

func TestHex_Wraps(t *testing.T) {
	require.Equal(t, Hex(0), Hex(len(palette)))
	require.Equal(t, Hex(3), Hex(-3))
}

func TestValueRange(t *testing.T) {
	r := valueRange(5, 5)
	require.Less(t, r.Min, 5.0)
	require.Greater(t, r.Max, 5.0)

	r = valueRange(0, 100)
	require.Equal(t, 0.0, r.Min)
	require.InDelta(t, 105.0, r.Max, 1e-9)

	r = valueRange(1000, 2000)
	require.InDelta(t, 950.0, r.Min, 1e-9)

	r = valueRange(0, -1)
	require.Equal(t, 0.0, r.Min)
	require.Greater(t, r.Max, 0.0)
}
