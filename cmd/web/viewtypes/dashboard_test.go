package viewtypes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"thirdcoast.systems/wicket/internal/charts"
	"thirdcoast.systems/wicket/internal/dataset"
	"thirdcoast.systems/wicket/pkg/utils/markdown"
)

const matchesCSV = `team_1,team_2,team_1_runs,team_2_runs,match_category,world_cup_year,winning_team,best_batter_1,best_batter_1_runs,venue
India,Pakistan,336,212,Group,2019,India,Rohit Sharma,140,Old Trafford
Australia,England,285,221,Group,2019,Australia,,,Lord's
England,New Zealand,241,241,Final,2019,England,Ben Stokes,84,Lord's
`

func newDashboard(t *testing.T) *Dashboard {
	t.Helper()
	tbl, err := dataset.ReadCSV(strings.NewReader(matchesCSV), "/data/processed_cricket_data.csv")
	require.NoError(t, err)
	require.NoError(t, dataset.Validate(tbl))
	about := markdown.NewMarkdown("Data from **ESPN**")
	return &Dashboard{
		Title:       "Cricket World Cup Dashboard",
		About:       about.Render(),
		Description: about.PlainText(),
		Table:       tbl,
		Tabs:        charts.Build(tbl),
	}
}

func TestDashboard_Page(t *testing.T) {
	d := newDashboard(t)

	p, ok := d.Page("")
	require.True(t, ok)
	require.Equal(t, "team-performance", p.Panel.Slug)
	require.Len(t, p.Nav, 7)
	require.True(t, p.Nav[0].Selected)
	require.Contains(t, string(p.About), "<strong>ESPN</strong>")
	require.Equal(t, "Data from ESPN", p.Description)

	p, ok = d.Page("yearly-trends")
	require.True(t, ok)
	require.False(t, p.Nav[0].Selected)
	require.True(t, p.Nav[2].Selected)
	require.Equal(t, "/api/tabs/yearly-trends", p.Nav[2].PatchURL)

	_, ok = d.Page("nope")
	require.False(t, ok)

	_, ok = (&Dashboard{}).Page("")
	require.False(t, ok)
}

func TestDashboard_Panel(t *testing.T) {
	d := newDashboard(t)

	tab, ok := d.Tabs.Find("match-outcomes")
	require.True(t, ok)
	p := d.Panel(tab)
	require.Equal(t, "/charts/match-outcomes.svg", p.ImageURL)
	require.True(t, p.HasChart)
	require.Equal(t, "Match Category", p.LegendTitle)
	require.Len(t, p.Legend, 2)
	require.Equal(t, "3 matches charted", p.Summary)

	tab, _ = d.Tabs.Find("top-batters")
	d.HasChart = func(id string) bool { return id != "top-batters" }
	p = d.Panel(tab)
	require.False(t, p.HasChart)
	require.Equal(t, "2 matches charted", p.Summary)
}

func TestDashboard_Footer(t *testing.T) {
	d := newDashboard(t)
	require.Equal(t, "3 matches loaded from processed_cricket_data.csv", d.Footer())

	d.Table = nil
	require.Empty(t, d.Footer())
}

func TestURLs(t *testing.T) {
	require.Equal(t, "/tabs/top-batters", TabHref("top-batters"))
	require.Equal(t, "/api/tabs/top-batters", TabPatchURL("top-batters"))
	require.Equal(t, "/charts/top-batters.svg", ChartURL("top-batters"))
}
