package render

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/fundview/engine"
	"github.com/spektr-org/fundview/source"
)

func render(t *testing.T, p *Page) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, p.Render(&buf))
	return buf.String()
}

func TestEmptyPageKeepsPlaceholders(t *testing.T) {
	html := render(t, NewPage())

	assert.Contains(t, html, `<div id="total-amount">$0.00</div>`)
	assert.Contains(t, html, `<canvas id="country-chart"></canvas>`)
	assert.Contains(t, html, `<canvas id="finance-chart"></canvas>`)
	assert.NotContains(t, html, "new Chart(")
	assert.Contains(t, html, `<script src="`+DefaultChartScript+`"></script>`)
	assert.Contains(t, html, "<title>"+DefaultTitle+"</title>")
}

func TestPutReplacesContent(t *testing.T) {
	p := NewPage()
	p.Put(engine.MountTotalAmount, engine.TextWidget{Text: "$1.00"})
	p.Put(engine.MountTotalAmount, engine.TextWidget{Text: "$2.00"})

	w, ok := p.Widget(engine.MountTotalAmount)
	require.True(t, ok)
	assert.Equal(t, engine.TextWidget{Text: "$2.00"}, w)

	html := render(t, p)
	assert.Contains(t, html, `<div id="total-amount">$2.00</div>`)
	assert.NotContains(t, html, "$1.00")
}

func TestWidgetMissingMount(t *testing.T) {
	_, ok := NewPage().Widget(engine.MountKPIs)
	assert.False(t, ok)
}

func TestRenderDemoDashboard(t *testing.T) {
	p := NewPage(WithTitle("Demo Fund"))
	report := engine.New(source.Demo(), p).Run(context.Background())
	require.Empty(t, report.Skipped())

	html := render(t, p)

	assert.Contains(t, html, "<title>Demo Fund</title>")
	assert.Contains(t, html, `<div id="total-amount">$1,250,000.00</div>`)
	assert.Contains(t, html, `<strong>$43,210.00</strong><span>Avg. Funding / Project</span>`)
	assert.Contains(t, html, `<span style="width:42%"></span>`)
	assert.Contains(t, html, `<tr><td>Jane Doe</td><td>$125,000.00</td></tr>`)
	assert.Contains(t, html, `<span class="status-pill status-pending">pending</span>`)
	assert.Contains(t, html, `<li data-notice="Pretend download: External-Audit.xlsx">External-Audit.xlsx</li>`)

	assert.Contains(t, html, `new Chart(document.getElementById("country-chart"), {"type":"doughnut"`)
	assert.Contains(t, html, `new Chart(document.getElementById("finance-chart"), {"type":"line"`)
	assert.Contains(t, html, `"label":"M-o-M Funding ($M)"`)
}

func TestRenderChartsInMountOrder(t *testing.T) {
	p := NewPage()
	p.Draw(engine.MountFinanceChart, &engine.ChartConfig{Type: "line"})
	p.Draw(engine.MountCountryChart, &engine.ChartConfig{Type: "doughnut"})

	html := render(t, p)

	country := strings.Index(html, `getElementById("country-chart")`)
	finance := strings.Index(html, `getElementById("finance-chart")`)
	require.NotEqual(t, -1, country)
	require.NotEqual(t, -1, finance)
	assert.Less(t, country, finance)
}

func TestRenderEscapesRowText(t *testing.T) {
	p := NewPage()
	p.Put(engine.MountProjectList, engine.BuildProjects([]source.Row{
		{"name": "<script>alert(1)</script>", "status": `x" onclick="y`},
	}, "name", "status"))
	p.Draw(engine.MountCountryChart, engine.BuildDonut([]source.Row{
		{"country": "</script><b>", "value": 1.0},
	}, "country", "value", nil))

	html := render(t, p)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.NotContains(t, html, `onclick="y`)
	assert.NotContains(t, html, "</script><b>")
}

func TestFailedBinderLeavesPlaceholder(t *testing.T) {
	src := source.SourceFunc(func(ctx context.Context, dataset string) ([]source.Row, error) {
		if dataset == "metrics" {
			return nil, &source.FetchError{Dataset: dataset, StatusCode: 502, Err: errors.New("bad gateway")}
		}
		return source.Demo().Rows(ctx, dataset)
	})
	p := NewPage()

	engine.New(src, p).Run(context.Background())
	html := render(t, p)

	assert.Contains(t, html, `<div id="total-amount">$0.00</div>`)
	assert.Contains(t, html, `<tr><td>Harry Doe</td><td>$87,500.00</td></tr>`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderWriteError(t *testing.T) {
	err := NewPage().Render(failingWriter{})
	assert.ErrorContains(t, err, "disk full")
}

func TestSnapshotIsACopy(t *testing.T) {
	p := NewPage()
	p.Put(engine.MountTotalAmount, engine.TextWidget{Text: "$1.00"})

	snap := p.Snapshot()
	delete(snap, engine.MountTotalAmount)

	_, ok := p.Widget(engine.MountTotalAmount)
	assert.True(t, ok)
}

func TestMountsCoverEveryBinder(t *testing.T) {
	for _, b := range engine.DefaultBinders(nil, nil) {
		assert.Contains(t, Mounts, b.Mount, b.Name)
	}
}
