package dashboard

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/starfederation/datastar-go/datastar"
	"thirdcoast.systems/wicket/cmd/web/handlers/common"
	"thirdcoast.systems/wicket/cmd/web/templates"
	"thirdcoast.systems/wicket/cmd/web/viewtypes"
)

// HandleTabPatch swaps the tab strip and tab content over SSE.
func HandleTabPatch(d *viewtypes.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Look the tab up before NewSSE; once headers are flushed we can no
		// longer answer with a 404.
		tab, ok := d.Tabs.Find(c.Param("slug"))
		if !ok {
			return common.ErrNotFound("unknown tab")
		}

		common.SetSSEHeaders(c)
		sse := datastar.NewSSE(c.Response().Writer, c.Request())

		if err := sse.PatchElementTempl(templates.TabNav(d.Nav(tab.Slug))); err != nil {
			slog.Error("failed to send tab nav SSE patch", "error", err, "tab", tab.Slug)
			return err
		}
		if err := sse.PatchElementTempl(templates.TabContent(d.Panel(tab))); err != nil {
			slog.Error("failed to send tab content SSE patch", "error", err, "tab", tab.Slug)
			return err
		}
		script := fmt.Sprintf("history.replaceState(null, '', %q)", viewtypes.TabHref(tab.Slug))
		if err := sse.ExecuteScript(script); err != nil {
			slog.Warn("failed to send history update", "error", err, "tab", tab.Slug)
		}
		return nil
	}
}

// HandleTabsIndex lists the tabs as JSON.
func HandleTabsIndex(d *viewtypes.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, d.Tabs.Summaries())
	}
}

// HandleChartSpec returns one chart specification with its aggregated data.
func HandleChartSpec(d *viewtypes.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		spec, ok := d.Tabs.Chart(c.Param("id"))
		if !ok {
			return common.ErrNotFound("unknown chart")
		}
		return c.JSON(http.StatusOK, spec.Document())
	}
}
