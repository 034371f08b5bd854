package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"thirdcoast.systems/wicket/internal/application"
	"thirdcoast.systems/wicket/internal/config"
	"thirdcoast.systems/wicket/internal/dataset"
)

func main() {
	slog.Info("Starting dataset check")

	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conf, err := config.LoadConfig(startupCtx)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	table, tabs, err := application.LoadDashboard(*conf)
	if err != nil {
		var le *dataset.LoadError
		if errors.As(err, &le) && len(le.Missing) > 0 {
			slog.Error("dataset is missing required columns", "path", le.Path, "missing", le.Missing)
		}
		slog.Error("dataset check failed", "error", err)
		os.Exit(1)
	}

	for _, name := range table.Columns() {
		col, _ := table.Column(name)
		slog.Info("Column", "name", name, "kind", col.Kind, "non_null", col.NonNull())
	}
	for _, tab := range tabs {
		slog.Info("Tab", "label", tab.Label, "chart", tab.Chart.ID, "kind", tab.Chart.Kind, "rows", tab.Chart.Rows())
	}

	slog.Info("Dataset check completed successfully", "rows", table.Len(), "tabs", len(tabs))
}
