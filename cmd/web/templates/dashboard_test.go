package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/wicket/cmd/web/viewtypes"
	"thirdcoast.systems/wicket/internal/render"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestTabNav(t *testing.T) {
	out := renderString(t, TabNav([]viewtypes.TabLink{
		{Label: "Team Performance", Slug: "team-performance", Href: "/tabs/team-performance", PatchURL: "/api/tabs/team-performance", Selected: true},
		{Label: "Match Outcomes", Slug: "match-outcomes", Href: "/tabs/match-outcomes", PatchURL: "/api/tabs/match-outcomes"},
	}))

	require.True(t, strings.HasPrefix(out, `<ul id="tab-nav"`))
	require.Contains(t, out, `href="/tabs/team-performance" aria-selected="true"`)
	require.Contains(t, out, `href="/tabs/match-outcomes" aria-selected="false"`)
	require.Contains(t, out, `data-on:click__prevent="@get(&#39;/api/tabs/match-outcomes&#39;)"`)
	require.Equal(t, 2, strings.Count(out, "<li "))
}

func TestTabContent(t *testing.T) {
	panel := viewtypes.TabPanel{
		Label:       "Venue Performance",
		Slug:        "venue-performance",
		ChartID:     "venue-performance",
		Title:       "Winning Teams by Venue",
		ImageURL:    "/charts/venue-performance.svg",
		HasChart:    true,
		LegendTitle: "Winning Team",
		Legend: []render.LegendEntry{
			{Label: "India", Hex: "#636efa"},
			{Label: "Australia", Hex: "#ef553b"},
		},
		Summary: "10 matches charted",
	}

	t.Run("with chart", func(t *testing.T) {
		out := renderString(t, TabContent(panel))
		require.True(t, strings.HasPrefix(out, `<section id="tab-content"`))
		require.Contains(t, out, `aria-labelledby="tab-venue-performance"`)
		require.Contains(t, out, `<img src="/charts/venue-performance.svg" alt="Winning Teams by Venue">`)
		require.Contains(t, out, "Winning Team</li>")
		require.Contains(t, out, "</span> India</li>")
		require.Contains(t, out, `style="background:#636efa;"`)
		require.Contains(t, out, "10 matches charted")
		require.NotContains(t, out, "No data to plot.")
	})

	t.Run("without chart", func(t *testing.T) {
		p := panel
		p.HasChart = false
		p.Legend = nil
		out := renderString(t, TabContent(p))
		require.Contains(t, out, "No data to plot.")
		require.NotContains(t, out, "<img")
		require.NotContains(t, out, `class="legend"`)
	})
}

func TestDashboardPage_Escapes(t *testing.T) {
	out := renderString(t, DashboardPage(viewtypes.Page{
		Title: `Runs <script>alert("x")</script>`,
		Panel: viewtypes.TabPanel{Label: "Lord's", Slug: "lords", Title: "A & B"},
	}))

	require.True(t, strings.HasPrefix(out, "<!doctype html>"))
	require.NotContains(t, out, "<script>alert")
	require.Contains(t, out, "&lt;script&gt;")
	require.Contains(t, out, "A &amp; B")
	require.Contains(t, out, DatastarScriptURL)
	require.NotContains(t, out, "<footer")
}

func TestDashboard_About(t *testing.T) {
	out := renderString(t, Dashboard(viewtypes.Page{
		Title:  "Dashboard",
		About:  "<p>Data from <strong>ESPN</strong></p>",
		Footer: "3 matches loaded from matches.csv",
	}))

	require.Contains(t, out, "<p>Data from <strong>ESPN</strong></p>")
	require.Contains(t, out, "<footer")
	require.Contains(t, out, "3 matches loaded from matches.csv")
}

func TestLayout_Description(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		out := renderString(t, Layout("Dashboard", `Runs & "wickets"`))
		require.Contains(t, out, `<meta name="description" content="Runs &amp; &#34;wickets&#34;">`)
		require.Contains(t, out, "<title>Dashboard</title>")
		require.True(t, strings.HasSuffix(out, "<body></body></html>"))
	})

	t.Run("empty", func(t *testing.T) {
		out := renderString(t, Layout("Dashboard", ""))
		require.NotContains(t, out, `name="description"`)
	})
}
