// Package render is the host page of the dashboard. A Page exposes the mount
// points binders write into and turns them into one HTML document.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"sort"
	"sync"

	"github.com/spektr-org/fundview/engine"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// DefaultChartScript is where the page loads the charting library from.
const DefaultChartScript = "https://cdn.jsdelivr.net/npm/chart.js@4"

// DefaultTitle is the document title.
const DefaultTitle = "Funding Transparency Dashboard"

// Mounts lists every mount point the page provides, in page order.
var Mounts = []string{
	engine.MountTotalAmount,
	engine.MountCountryChart,
	engine.MountAssetTypes,
	engine.MountFinanceChart,
	engine.MountContributors,
	engine.MountKPIs,
	engine.MountDocList,
	engine.MountProjectList,
}

// ============================================================================
// PAGE - the mount-point surface
// ============================================================================

// Page holds the current content of every mount point. It is safe for the
// concurrent writes of one render pass. Use one Page per page load.
type Page struct {
	mu      sync.Mutex
	widgets map[string]engine.Widget
	cfg     *pageConfig
}

// NewPage creates an empty page. Mounts nobody writes keep their placeholder.
func NewPage(opts ...Option) *Page {
	cfg := &pageConfig{
		Title:       DefaultTitle,
		ChartScript: DefaultChartScript,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Page{
		widgets: make(map[string]engine.Widget),
		cfg:     cfg,
	}
}

// Put replaces the content of mount.
func (p *Page) Put(mount string, w engine.Widget) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.widgets[mount] = w
}

// Draw attaches a chart to the canvas mount. Drawing again replaces the chart.
func (p *Page) Draw(mount string, chart *engine.ChartConfig) {
	p.Put(mount, chart)
}

// Widget returns the content of mount, if any binder wrote it.
func (p *Page) Widget(mount string) (engine.Widget, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	w, ok := p.widgets[mount]
	return w, ok
}

// Snapshot returns a copy of every written mount.
func (p *Page) Snapshot() map[string]engine.Widget {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]engine.Widget, len(p.widgets))
	for k, v := range p.widgets {
		out[k] = v
	}
	return out
}

// ============================================================================
// RENDER
// ============================================================================

type chartCall struct {
	Mount  string
	Config *engine.ChartConfig
}

type pageData struct {
	Title       string
	ChartScript string
	Mounts      map[string]engine.Widget
	Charts      []chartCall
}

// Render writes the page as HTML. Nothing is written if the template fails.
func (p *Page) Render(w io.Writer) error {
	data := pageData{
		Title:       p.cfg.Title,
		ChartScript: p.cfg.ChartScript,
		Mounts:      p.Snapshot(),
	}
	for mount, widget := range data.Mounts {
		if chart, ok := widget.(*engine.ChartConfig); ok {
			data.Charts = append(data.Charts, chartCall{Mount: mount, Config: chart})
		}
	}
	sort.Slice(data.Charts, func(i, j int) bool {
		return data.Charts[i].Mount < data.Charts[j].Mount
	})

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "page.html", data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
