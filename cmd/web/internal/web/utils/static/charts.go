package static

import (
	"bytes"
	"errors"
	"log/slog"
	"time"

	"thirdcoast.systems/wicket/internal/charts"
	"thirdcoast.systems/wicket/internal/render"
)

const svgContentType = "image/svg+xml"

// ChartPath is the cache key for a chart's rendered SVG.
func ChartPath(id string) string {
	return id + ".svg"
}

// NewChartCache renders every chart once. The table behind tabs is immutable,
// so the SVGs never go stale for the life of the process. Charts that cannot be
// drawn are left out; the page shows a placeholder in their place and the
// other tabs are still served.
func NewChartCache(tabs charts.TabGroup, modTime time.Time) *StaticCache {
	c := &StaticCache{entries: make(map[string]CachedFileInfo)}

	for _, tab := range tabs {
		var buf bytes.Buffer
		err := render.SVG(&buf, tab.Chart)
		if errors.Is(err, render.ErrNoData) {
			slog.Warn("chart has no data", "chart", tab.Chart.ID, "rows", tab.Chart.Rows())
			continue
		}
		if err != nil {
			slog.Error("failed to render chart", "chart", tab.Chart.ID, "rows", tab.Chart.Rows(), "error", err)
			continue
		}
		c.Put(ChartPath(tab.Chart.ID), svgContentType, buf.Bytes(), modTime)
		slog.Debug("rendered chart", "chart", tab.Chart.ID, "bytes", buf.Len())
	}
	return c
}
