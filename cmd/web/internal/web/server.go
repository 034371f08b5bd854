package web

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"thirdcoast.systems/wicket/cmd/web/handlers/dashboard"
	staticpkg "thirdcoast.systems/wicket/cmd/web/internal/web/utils/static"
	"thirdcoast.systems/wicket/cmd/web/viewtypes"
	"thirdcoast.systems/wicket/internal/charts"
	"thirdcoast.systems/wicket/internal/dataset"
	"thirdcoast.systems/wicket/pkg/utils/markdown"
)

// Options carries the page settings that come from configuration.
type Options struct {
	Title string
	About string
	Debug bool
}

type Webserver struct {
	*echo.Echo
	dashboard   *viewtypes.Dashboard
	staticCache *staticpkg.StaticCache
	chartCache  *staticpkg.StaticCache
}

// NewWebserver wires the routes for an already loaded and validated table.
// Charts are rendered here, once, before the server accepts requests.
func NewWebserver(table *dataset.Table, tabs charts.TabGroup, opts Options) (*Webserver, error) {
	e := echo.New()
	e.Debug = opts.Debug

	staticCache, err := staticpkg.NewStaticCache()
	if err != nil {
		return nil, err
	}

	chartCache := staticpkg.NewChartCache(tabs, time.Now())

	about := markdown.NewMarkdown(opts.About)

	webserver := &Webserver{
		Echo: e,
		dashboard: &viewtypes.Dashboard{
			Title:       opts.Title,
			About:       about.Render(),
			Description: about.PlainText(),
			Table:       table,
			Tabs:        tabs,
			HasChart: func(id string) bool {
				return chartCache.Has(staticpkg.ChartPath(id))
			},
		},
		staticCache: staticCache,
		chartCache:  chartCache,
	}

	if err = webserver.registerRoutes(); err != nil {
		return nil, err
	}

	if err = webserver.setupMiddleware(); err != nil {
		return nil, err
	}

	return webserver, nil
}

func (s *Webserver) setupMiddleware() error {
	s.HideBanner = true
	s.HidePort = true
	s.Use(middleware.BodyLimit("2M"))
	s.Use(middleware.Recover())
	s.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))
	s.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/healthz"
		},
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  false,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
				"remote_ip", v.RemoteIP,
				"request_id", v.RequestID,
			}
			if v.Error != nil {
				fields = append(fields, "error", v.Error)
			}
			slog.Info("request", fields...)
			return nil
		},
	}))

	return nil
}

func (s *Webserver) registerRoutes() error {
	apiGroup := s.Group("/api")
	apiGroup.GET("/tabs", dashboard.HandleTabsIndex(s.dashboard))
	apiGroup.GET("/tabs/:slug", dashboard.HandleTabPatch(s.dashboard))
	apiGroup.GET("/charts/:id", dashboard.HandleChartSpec(s.dashboard))

	// Health check
	s.GET("/healthz", func(c echo.Context) error {
		return c.String(200, "ok")
	})

	// Static file serving
	s.GET("/static/*", s.staticCache.ServeStaticFile("/static/"))
	s.GET("/charts/*", s.chartCache.ServeStaticFile("/charts/"))

	// Content routes
	s.GET("/tabs/:slug", dashboard.HandleTabPage(s.dashboard))
	s.GET("/", dashboard.HandleIndex(s.dashboard))

	return nil
}
