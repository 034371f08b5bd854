package viewtypes

// ============================================================================
// SHARED CSS CLASS CONSTANTS
// Class names defined in static/dist/main.css, used across template files.
// ============================================================================

// PageClass wraps the whole dashboard.
var PageClass = "page"

// PageHeading is the main h1 heading style.
var PageHeading = "page-heading"

// AboutClass is the optional markdown blurb under the heading.
var AboutClass = "about"

// TabNavClass is the tab strip.
var TabNavClass = "tab-nav"

// TabPanelClass is the container the active tab renders into.
var TabPanelClass = "tab-panel"

// ChartClass wraps the chart image; it scrolls horizontally for wide bar charts.
var ChartClass = "chart"

// ChartEmptyClass replaces the chart when there is nothing to plot.
var ChartEmptyClass = "chart chart-empty"

// LegendClass is the colour legend list below a chart.
var LegendClass = "legend"

// SwatchClass is a single colour square inside the legend.
var SwatchClass = "swatch"

// MetaClass is the small print under a chart.
var MetaClass = "meta"

// FooterClass is the page footer.
var FooterClass = "footer"
