package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spektr-org/fundview/source"
)

// ============================================================================
// EXECUTOR - one render pass = every binder once, all in parallel
// ============================================================================
// Binders share nothing: each fetches its own dataset, builds its widget and
// writes its own mount point. A failing binder leaves its mount untouched and
// never affects the others, so Run has no error to return.
// ============================================================================

var tracer = otel.Tracer("github.com/spektr-org/fundview/engine")

// Status is the result of one binder run.
type Status string

const (
	StatusRendered Status = "rendered"
	StatusSkipped  Status = "skipped"
)

// Outcome describes one binder run.
type Outcome struct {
	Binder        string        `json:"binder"`
	Dataset       string        `json:"dataset,omitempty"`
	Mount         string        `json:"mount"`
	Status        Status        `json:"status"`
	Rows          int           `json:"rows"`
	MissingFields int           `json:"missingFields,omitempty"`
	Err           error         `json:"-"`
	Duration      time.Duration `json:"duration"`
}

// Report collects the outcomes of one render pass, in binder order.
type Report struct {
	PassID   string        `json:"passId"`
	Outcomes []Outcome     `json:"outcomes"`
	Duration time.Duration `json:"duration"`
}

// Skipped returns the outcomes whose binder did not render.
func (r *Report) Skipped() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusSkipped {
			out = append(out, o)
		}
	}
	return out
}

// Dashboard wires a row source to a surface through a set of binders.
type Dashboard struct {
	src     source.Source
	surface Surface
	cfg     *config
	binders []Binder
}

// New creates a Dashboard. Without WithBinders it uses DefaultBinders.
func New(src source.Source, surface Surface, opts ...Option) *Dashboard {
	cfg := applyOptions(opts)

	binders := cfg.Binders
	if binders == nil {
		binders = DefaultBinders(cfg.Palette, cfg.Documents)
	}

	return &Dashboard{
		src:     src,
		surface: surface,
		cfg:     cfg,
		binders: binders,
	}
}

// Binders returns the binders in page order.
func (d *Dashboard) Binders() []Binder {
	return d.binders
}

// Run fires every binder once and waits for all of them to settle.
// Completion order is whatever order the fetches finish in.
func (d *Dashboard) Run(ctx context.Context) *Report {
	start := time.Now()
	report := &Report{
		PassID:   uuid.NewString(),
		Outcomes: make([]Outcome, len(d.binders)),
	}
	logger := d.cfg.Logger.With(zap.String("pass", report.PassID))

	ctx, span := tracer.Start(ctx, "engine.run",
		trace.WithAttributes(attribute.String("fundview.pass", report.PassID)))
	defer span.End()

	var g errgroup.Group
	if d.cfg.Concurrency > 0 {
		g.SetLimit(d.cfg.Concurrency)
	}
	for i, b := range d.binders {
		g.Go(func() error {
			report.Outcomes[i] = d.bind(ctx, b, logger)
			return nil
		})
	}
	_ = g.Wait()

	report.Duration = time.Since(start)
	logger.Info("render pass complete",
		zap.Int("binders", len(d.binders)),
		zap.Int("skipped", len(report.Skipped())),
		zap.Duration("duration", report.Duration))
	return report
}

// Bind re-runs a single binder by name, fully replacing its mount content.
func (d *Dashboard) Bind(ctx context.Context, name string) (Outcome, error) {
	for _, b := range d.binders {
		if b.Name == name {
			return d.bind(ctx, b, d.cfg.Logger), nil
		}
	}
	return Outcome{}, fmt.Errorf("unknown binder %q", name)
}

// datasetName resolves a logical dataset name through WithDatasets.
func (d *Dashboard) datasetName(logical string) string {
	if name, ok := d.cfg.Datasets[logical]; ok {
		return name
	}
	return logical
}

func (d *Dashboard) bind(ctx context.Context, b Binder, logger *zap.Logger) (out Outcome) {
	start := time.Now()
	out = Outcome{Binder: b.Name, Mount: b.Mount}
	if b.Dataset != "" {
		out.Dataset = d.datasetName(b.Dataset)
	}
	logger = logger.With(zap.String("binder", b.Name), zap.String("mount", b.Mount))

	ctx, span := tracer.Start(ctx, "engine.bind", trace.WithAttributes(
		attribute.String("fundview.binder", b.Name),
		attribute.String("fundview.dataset", out.Dataset)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			out.Status = StatusSkipped
			out.Err = fmt.Errorf("binder %s panicked: %v", b.Name, r)
			span.SetStatus(codes.Error, out.Err.Error())
			logger.Error("binder panicked", zap.Any("panic", r))
		}
		out.Duration = time.Since(start)
	}()

	var rows []source.Row
	if out.Dataset != "" {
		fetched, err := d.src.Rows(ctx, out.Dataset)
		if err != nil {
			out.Status = StatusSkipped
			out.Err = err
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Warn("binder skipped", zap.String("dataset", out.Dataset), zap.Error(err))
			return out
		}
		rows = fetched

		if b.Schema != nil {
			missing := b.Schema.Check(out.Dataset, rows)
			out.MissingFields = len(missing)
			for _, m := range missing {
				logger.Debug("missing field, using default", zap.Error(m))
			}
		}
	}

	w := b.Build(rows)
	if chart, ok := w.(*ChartConfig); ok {
		d.surface.Draw(b.Mount, chart)
	} else {
		d.surface.Put(b.Mount, w)
	}

	out.Status = StatusRendered
	out.Rows = len(rows)
	logger.Debug("binder rendered", zap.Int("rows", len(rows)), zap.String("widget", w.Kind()))
	return out
}
