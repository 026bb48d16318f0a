package engine

import (
	"encoding/json"
)

// ============================================================================
// FUNDVIEW ENGINE TYPES - render-ready widgets
// ============================================================================
// A binder turns rows into exactly one Widget. Widgets carry display-ready
// strings; the page only places them, it never formats numbers itself.
// ============================================================================

// Widget is the content of one mount point.
type Widget interface {
	Kind() string
}

// Surface is the host page as seen by binders: a set of named mount points.
// Put replaces whatever the mount held before. Draw hands a chart config to
// the charting library for the given canvas mount.
type Surface interface {
	Put(mount string, w Widget)
	Draw(mount string, chart *ChartConfig)
}

// ============================================================================
// TEXT / STATS
// ============================================================================

// TextWidget is a single line of text, e.g. the funding total.
type TextWidget struct {
	Text string `json:"text"`
}

func (TextWidget) Kind() string { return "text" }

// Stat is one labelled figure of the KPI panel.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// StatsWidget is a stack of labelled figures.
type StatsWidget struct {
	Stats []Stat `json:"stats"`
}

func (StatsWidget) Kind() string { return "stats" }

// ============================================================================
// BARS
// ============================================================================

// AssetBar is one label/percentage line plus its proportional bar.
type AssetBar struct {
	Label     string  `json:"label"`
	Share     float64 `json:"share"`
	ShareText string  `json:"shareText"` // "42%"
	Width     string  `json:"width"`     // CSS width of the filled part, "42%"
}

// BarsWidget lists asset bars in fetch order.
type BarsWidget struct {
	Bars []AssetBar `json:"bars"`
}

func (BarsWidget) Kind() string { return "bars" }

// ============================================================================
// TABLE
// ============================================================================

// TableData defines how to render a table body.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func (*TableData) Kind() string { return "table" }

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "currency"
	Align string `json:"align"` // "left", "right"
}

// ============================================================================
// LISTS
// ============================================================================

// ProjectEntry is one project with its status badge.
// BadgeClass is derived from the raw status; unknown statuses simply get a
// class no stylesheet rule matches.
type ProjectEntry struct {
	Name       string `json:"name"`
	Status     string `json:"status"`
	BadgeClass string `json:"badgeClass"`
}

// ProjectsWidget lists projects in fetch order.
type ProjectsWidget struct {
	Projects []ProjectEntry `json:"projects"`
}

func (ProjectsWidget) Kind() string { return "projects" }

// Document is one entry of the evidence list.
type Document struct {
	Name   string `json:"name"`
	Notice string `json:"notice"` // shown on click, nothing is downloaded
}

// DocumentsWidget is the fixed evidence document list.
type DocumentsWidget struct {
	Documents []Document `json:"documents"`
}

func (DocumentsWidget) Kind() string { return "documents" }

// ============================================================================
// CHART TYPES - the config handed to the charting library as-is
// ============================================================================

// ChartConfig mirrors the charting library's constructor argument:
// { type, data: { labels, datasets }, options }.
type ChartConfig struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

func (*ChartConfig) Kind() string { return "chart" }

// ChartData holds the labels and series of a chart.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is one series.
type ChartDataset struct {
	Label           string    `json:"label,omitempty"`
	Data            []float64 `json:"data"`
	BackgroundColor Colors    `json:"backgroundColor,omitempty"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BorderWidth     *int      `json:"borderWidth,omitempty"`
	Fill            bool      `json:"fill,omitempty"`
	Tension         float64   `json:"tension,omitempty"`
}

// Colors marshals as a bare string when it holds one color and as an array
// otherwise, matching what the charting library accepts per dataset.
type Colors []string

func (c Colors) MarshalJSON() ([]byte, error) {
	if len(c) == 1 {
		return json.Marshal(c[0])
	}
	return json.Marshal([]string(c))
}

// ChartOptions is the subset of chart options the dashboard sets.
type ChartOptions struct {
	Plugins             ChartPlugins          `json:"plugins"`
	Cutout              string                `json:"cutout,omitempty"`
	Scales              map[string]ChartScale `json:"scales,omitempty"`
	Responsive          bool                  `json:"responsive,omitempty"`
	MaintainAspectRatio *bool                 `json:"maintainAspectRatio,omitempty"`
}

// ChartPlugins configures built-in plugins.
type ChartPlugins struct {
	Legend ChartLegend `json:"legend"`
}

// ChartLegend configures the legend.
type ChartLegend struct {
	Display  *bool  `json:"display,omitempty"`
	Position string `json:"position,omitempty"`
}

// ChartScale configures one axis.
type ChartScale struct {
	BeginAtZero bool `json:"beginAtZero"`
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }
