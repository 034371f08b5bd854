package application

import (
	"log/slog"

	"thirdcoast.systems/wicket/internal/charts"
	"thirdcoast.systems/wicket/internal/config"
	"thirdcoast.systems/wicket/internal/dataset"
)

// LoadDashboard reads and validates the configured dataset, then derives the
// dashboard tabs from it. Errors come straight from dataset.Load so callers can
// match them with errors.Is against dataset.ErrMissingInputFile and
// dataset.ErrIncompleteSchema.
func LoadDashboard(conf config.Config) (*dataset.Table, charts.TabGroup, error) {
	slog.Info("Loading dataset", "path", conf.DatasetPath)

	table, err := dataset.Load(conf.DatasetPath)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Dataset loaded", "rows", table.Len(), "columns", len(table.Columns()), "bytes", table.Size())

	tabs := charts.Build(table)
	for _, tab := range tabs {
		slog.Debug("Built chart", "tab", tab.Label, "kind", tab.Chart.Kind, "rows", tab.Chart.Rows())
	}
	for _, col := range TextNumericColumns(table, tabs) {
		slog.Warn("Column read as numbers holds text; its charts will be empty",
			"column", col.Column, "charts", col.Charts)
	}
	return table, tabs, nil
}

// TextNumericColumns returns the numeric bindings whose column was inferred as
// text, e.g. a runs column with a not-out marker such as "140*".
func TextNumericColumns(table *dataset.Table, tabs charts.TabGroup) []charts.NumericBinding {
	var out []charts.NumericBinding
	for _, b := range tabs.NumericBindings() {
		col, ok := table.Column(b.Column)
		if ok && col.Kind != dataset.KindNumeric {
			out = append(out, b)
		}
	}
	return out
}
