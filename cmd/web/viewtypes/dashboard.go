package viewtypes

import (
	"fmt"
	"html/template"
	"path/filepath"

	"thirdcoast.systems/wicket/internal/charts"
	"thirdcoast.systems/wicket/internal/dataset"
	"thirdcoast.systems/wicket/internal/render"
	"thirdcoast.systems/wicket/pkg/utils/format"
)

const maxLegendLabel = 40

// Dashboard is everything the web layer renders. It is assembled once at
// startup and only read afterwards.
type Dashboard struct {
	Title string
	// About is sanitized HTML.
	About template.HTML
	// Description is About as plain text.
	Description string
	Table *dataset.Table
	Tabs  charts.TabGroup

	// HasChart reports whether a rendered SVG exists for a chart id.
	HasChart func(id string) bool
}

// TabLink is one entry of the tab strip.
type TabLink struct {
	Label    string
	Slug     string
	Href     string
	PatchURL string
	Selected bool
}

// TabPanel is the content of the active tab.
type TabPanel struct {
	Label       string
	Slug        string
	ChartID     string
	Title       string
	ImageURL    string
	HasChart    bool
	LegendTitle string
	Legend      []render.LegendEntry
	Summary     string
}

// Page is the full dashboard page with one tab active.
type Page struct {
	Title       string
	Description string
	About       template.HTML
	Nav         []TabLink
	Panel       TabPanel
	Footer      string
}

// TabHref is the no-JavaScript URL of a tab.
func TabHref(slug string) string { return "/tabs/" + slug }

// TabPatchURL is the Datastar endpoint that swaps a tab in place.
func TabPatchURL(slug string) string { return "/api/tabs/" + slug }

// ChartURL is where a chart's SVG is served.
func ChartURL(id string) string { return "/charts/" + id + ".svg" }

// Page builds the page with slug active. An empty slug selects the first tab.
func (d *Dashboard) Page(slug string) (Page, bool) {
	if len(d.Tabs) == 0 {
		return Page{}, false
	}
	tab := d.Tabs[0]
	if slug != "" {
		var ok bool
		if tab, ok = d.Tabs.Find(slug); !ok {
			return Page{}, false
		}
	}

	return Page{
		Title:       d.Title,
		Description: d.Description,
		About:       d.About,
		Nav:         d.Nav(tab.Slug),
		Panel:       d.Panel(tab),
		Footer:      d.Footer(),
	}, true
}

// Nav returns the tab strip with active selected.
func (d *Dashboard) Nav(active string) []TabLink {
	links := make([]TabLink, 0, len(d.Tabs))
	for _, t := range d.Tabs {
		links = append(links, TabLink{
			Label:    t.Label,
			Slug:     t.Slug,
			Href:     TabHref(t.Slug),
			PatchURL: TabPatchURL(t.Slug),
			Selected: t.Slug == active,
		})
	}
	return links
}

// Panel describes one tab's content.
func (d *Dashboard) Panel(tab charts.Tab) TabPanel {
	spec := tab.Chart
	p := TabPanel{
		Label:    tab.Label,
		Slug:     tab.Slug,
		ChartID:  spec.ID,
		Title:    spec.Title,
		ImageURL: ChartURL(spec.ID),
		HasChart: d.HasChart == nil || d.HasChart(spec.ID),
		Summary:  fmt.Sprintf("%s charted", format.Plural(spec.Rows(), "match", "matches")),
	}

	legendCol := spec.Color
	if spec.Kind == charts.KindPie {
		legendCol = spec.Names
	}
	if legendCol != "" {
		p.LegendTitle = spec.Label(legendCol)
		for _, e := range render.Legend(spec) {
			e.Label = format.Truncate(e.Label, maxLegendLabel)
			p.Legend = append(p.Legend, e)
		}
	}
	return p
}

// Footer describes where the data came from.
func (d *Dashboard) Footer() string {
	if d.Table == nil {
		return ""
	}
	s := fmt.Sprintf("%s loaded from %s",
		format.Plural(d.Table.Len(), "match", "matches"),
		filepath.Base(d.Table.Source()))
	if d.Table.Size() > 0 {
		s += fmt.Sprintf(" (%s)", format.Bytes(d.Table.Size()))
	}
	return s
}
