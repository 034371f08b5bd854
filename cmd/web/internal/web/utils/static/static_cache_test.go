package static

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"thirdcoast.systems/wicket/internal/charts"
	"thirdcoast.systems/wicket/internal/dataset"
)

func TestNewStaticCache_BuildsEntries(t *testing.T) {
	cache, err := NewStaticCache()
	require.NoError(t, err)
	require.NotNil(t, cache)
	require.NotEmpty(t, cache.entries)

	ci, ok := cache.entries["dist/main.css"]
	require.True(t, ok, "expected dist/main.css to be embedded")

	require.NotEmpty(t, ci.ETag)
	require.True(t, regexp.MustCompile(`^\"[0-9a-f]{64}\"$`).MatchString(ci.ETag))
	require.True(t, ci.Size > 0)
	require.False(t, ci.LastModified.IsZero())
	require.True(t, strings.HasPrefix(ci.ContentType, "text/css"))
}

func serve(t *testing.T, cache *StaticCache, prefix, target string, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	err := cache.ServeStaticFile(prefix)(e.NewContext(req, rec))
	if err != nil {
		e.HTTPErrorHandler(err, e.NewContext(req, rec))
	}
	return rec
}

func TestServeStaticFile(t *testing.T) {
	cache, err := NewStaticCache()
	require.NoError(t, err)

	rec := serve(t, cache, "/static/", "/static/dist/main.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-cache, must-revalidate", rec.Header().Get(echo.HeaderCacheControl))
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	require.Contains(t, rec.Body.String(), ".tab-nav")

	rec = serve(t, cache, "/static/", "/static/dist/main.css", map[string]string{"If-None-Match": etag})
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = serve(t, cache, "/static/", "/static/dist/missing.css", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewChartCache(t *testing.T) {
	csv := "team_1,team_2,team_1_runs,team_2_runs,match_category,world_cup_year,winning_team,best_batter_1,best_batter_1_runs,venue\n" +
		"India,Pakistan,336,212,Group,2019,India,,,Old Trafford\n" +
		"Australia,England,285,221,Final,2019,Australia,,,Lord's\n"
	tbl, err := dataset.ReadCSV(strings.NewReader(csv), "matches.csv")
	require.NoError(t, err)

	mod := time.Date(2023, 11, 19, 0, 0, 0, 0, time.UTC)
	cache := NewChartCache(charts.Build(tbl), mod)

	require.True(t, cache.Has(ChartPath("team-performance")))
	require.False(t, cache.Has(ChartPath("top-batters")), "no batter rows to plot")

	rec := serve(t, cache, "/charts/", "/charts/venue-performance.svg", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/svg+xml", rec.Header().Get(echo.HeaderContentType))
	require.Equal(t, mod.Format(http.TimeFormat), rec.Header().Get(echo.HeaderLastModified))
	require.Contains(t, rec.Body.String(), "<svg")

	rec = serve(t, cache, "/charts/", "/charts/venue-performance.svg",
		map[string]string{echo.HeaderIfModifiedSince: mod.Add(time.Hour).Format(http.TimeFormat)})
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = serve(t, cache, "/charts/", "/charts/top-batters.svg", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewChartCache_SkipsChartsThatFailToRender(t *testing.T) {
	csv := "team_1,team_2,team_1_runs,team_2_runs,match_category,world_cup_year,winning_team,best_batter_1,best_batter_1_runs,venue\n" +
		"India,Pakistan,336,212,Group,2019,India,Rohit Sharma,140,Old Trafford\n"
	tbl, err := dataset.ReadCSV(strings.NewReader(csv), "matches.csv")
	require.NoError(t, err)

	tabs := charts.Build(tbl)
	tabs = append(tabs, charts.Tab{
		Label: "Radar",
		Slug:  "radar",
		Chart: &charts.Spec{ID: "radar", Kind: charts.Kind("radar"), Source: tbl},
	})

	cache := NewChartCache(tabs, time.Now())
	require.False(t, cache.Has(ChartPath("radar")))
	for _, tab := range tabs[:7] {
		require.True(t, cache.Has(ChartPath(tab.Chart.ID)), tab.Chart.ID)
	}
}
