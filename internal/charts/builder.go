package charts

import (
	"thirdcoast.systems/wicket/internal/dataset"
	"thirdcoast.systems/wicket/pkg/utils/slug"
)

type builder struct {
	label string
	build func(t *dataset.Table) *Spec
}

// builders are independent; the slice order is the tab order.
var builders = []builder{
	{"Team Performance", teamPerformance},
	{"Match Outcomes", matchOutcomes},
	{"Yearly Trends", yearlyTrends},
	{"Winning Teams", winningTeams},
	{"Top Batters", topBatters},
	{"Venue Performance", venuePerformance},
	{"Team Runs Comparison", teamRunsComparison},
}

// Build derives every dashboard tab from t. The table must already have passed
// dataset.Validate; nothing here re-checks it.
func Build(t *dataset.Table) TabGroup {
	tabs := make(TabGroup, 0, len(builders))
	for _, b := range builders {
		tabs = append(tabs, Tab{
			Label: b.label,
			Slug:  slug.Make(b.label),
			Chart: b.build(t),
		})
	}
	return tabs
}

func teamPerformance(t *dataset.Table) *Spec {
	return &Spec{
		ID:     "team-performance",
		Kind:   KindBar,
		Source: t,
		X:      dataset.ColTeam1,
		Y:      dataset.ColTeam1Runs,
		Color:  dataset.ColTeam1,
		Title:  "Runs Scored by Teams",
		Labels: map[string]string{
			dataset.ColTeam1:     "Team",
			dataset.ColTeam1Runs: "Total Runs",
		},
	}
}

func matchOutcomes(t *dataset.Table) *Spec {
	return &Spec{
		ID:     "match-outcomes",
		Kind:   KindPie,
		Source: t,
		Names:  dataset.ColMatchCategory,
		Title:  "Match Outcomes Distribution",
	}
}

func yearlyTrends(t *dataset.Table) *Spec {
	return &Spec{
		ID:     "yearly-trends",
		Kind:   KindLine,
		Source: t,
		X:      dataset.ColWorldCupYear,
		Y:      dataset.ColTeam1Runs,
		Color:  dataset.ColTeam1,
		Title:  "Runs Scored Over the Years",
		Labels: map[string]string{
			dataset.ColWorldCupYear: "Year",
			dataset.ColTeam1Runs:    "Runs Scored",
		},
	}
}

func winningTeams(t *dataset.Table) *Spec {
	return &Spec{
		ID:     "winning-teams",
		Kind:   KindBar,
		Source: t,
		X:      dataset.ColWinningTeam,
		Color:  dataset.ColWinningTeam,
		Title:  "Matches Won by Teams",
		Labels: map[string]string{
			dataset.ColWinningTeam: "Winning Team",
		},
	}
}

// topBatters is the only chart built from a filtered view.
func topBatters(t *dataset.Table) *Spec {
	return &Spec{
		ID:     "top-batters",
		Kind:   KindBar,
		Source: t.DropNA(dataset.ColBestBatter1, dataset.ColBestBatter1Runs),
		X:      dataset.ColBestBatter1,
		Y:      dataset.ColBestBatter1Runs,
		Color:  dataset.ColBestBatter1,
		Title:  "Top Batters and Their Runs",
		Labels: map[string]string{
			dataset.ColBestBatter1:     "Batter",
			dataset.ColBestBatter1Runs: "Runs",
		},
	}
}

func venuePerformance(t *dataset.Table) *Spec {
	return &Spec{
		ID:     "venue-performance",
		Kind:   KindBar,
		Source: t,
		X:      dataset.ColVenue,
		Color:  dataset.ColWinningTeam,
		Title:  "Winning Teams by Venue",
		Labels: map[string]string{
			dataset.ColVenue:       "Venue",
			dataset.ColWinningTeam: "Winning Team",
		},
	}
}

func teamRunsComparison(t *dataset.Table) *Spec {
	return &Spec{
		ID:     "team-runs-comparison",
		Kind:   KindScatter,
		Source: t,
		X:      dataset.ColTeam1Runs,
		Y:      dataset.ColTeam2Runs,
		Color:  dataset.ColTeam1,
		Title:  "Team Runs Comparison",
		Labels: map[string]string{
			dataset.ColTeam1Runs: "Team 1 Runs",
			dataset.ColTeam2Runs: "Team 2 Runs",
		},
	}
}
