package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"thirdcoast.systems/wicket/cmd/web/handlers/common"
	"thirdcoast.systems/wicket/cmd/web/templates"
	"thirdcoast.systems/wicket/cmd/web/viewtypes"
)

// HandleIndex renders the dashboard with the first tab active.
func HandleIndex(d *viewtypes.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, ok := d.Page("")
		if !ok {
			return common.ErrInternal("dashboard has no tabs")
		}
		return common.Render(c, http.StatusOK, templates.DashboardPage(page))
	}
}

// HandleTabPage renders the dashboard with the :slug tab active. This is the
// fallback for browsers without JavaScript.
func HandleTabPage(d *viewtypes.Dashboard) echo.HandlerFunc {
	return func(c echo.Context) error {
		page, ok := d.Page(c.Param("slug"))
		if !ok {
			return common.ErrNotFound("unknown tab")
		}
		return common.Render(c, http.StatusOK, templates.DashboardPage(page))
	}
}
