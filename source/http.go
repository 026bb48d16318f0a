package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ============================================================================
// HTTP SOURCE - GET {base}/{dataset} against a spreadsheet-to-JSON proxy
// ============================================================================
// No retry, no caching, no auth. Every call is independent and may run
// concurrently with others. The client's own timeout (if any) is the only one.
// ============================================================================

var tracer = otel.Tracer("github.com/spektr-org/fundview/source")

// HTTPSource fetches datasets from a published spreadsheet endpoint.
type HTTPSource struct {
	base    string
	client  *http.Client
	limiter *rate.Limiter
	format  Format
	logger  *zap.Logger
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		if c != nil {
			s.client = c
		}
	}
}

// WithLimiter makes every request wait for a token first.
func WithLimiter(l *rate.Limiter) HTTPOption {
	return func(s *HTTPSource) {
		s.limiter = l
	}
}

// WithFormat selects the body decoder (JSON by default).
func WithFormat(f Format) HTTPOption {
	return func(s *HTTPSource) {
		if f != "" {
			s.format = f
		}
	}
}

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l *zap.Logger) HTTPOption {
	return func(s *HTTPSource) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewHTTPSource creates a source rooted at base, e.g.
// "https://opensheet.elk.sh/<sheet-id>".
func NewHTTPSource(base string, opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		base:   base,
		client: http.DefaultClient,
		format: FormatJSON,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// URL returns the endpoint for a dataset. The name is path-escaped.
func (s *HTTPSource) URL(dataset string) (string, error) {
	return url.JoinPath(s.base, dataset)
}

// Rows fetches and decodes one dataset.
func (s *HTTPSource) Rows(ctx context.Context, dataset string) ([]Row, error) {
	ctx, span := tracer.Start(ctx, "source.http.rows",
		trace.WithAttributes(attribute.String("fundview.dataset", dataset)))
	defer span.End()

	rows, err := s.fetch(ctx, dataset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("fundview.rows", len(rows)))
	return rows, nil
}

func (s *HTTPSource) fetch(ctx context.Context, dataset string) ([]Row, error) {
	endpoint, err := s.URL(dataset)
	if err != nil {
		return nil, &FetchError{Dataset: dataset, URL: s.base, Err: err}
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, &FetchError{Dataset: dataset, URL: endpoint, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &FetchError{Dataset: dataset, URL: endpoint, Err: err}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &FetchError{Dataset: dataset, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Dataset: dataset, URL: endpoint, StatusCode: resp.StatusCode,
			Err: fmt.Errorf("read body: %w", err)}
	}

	s.logger.Debug("dataset fetched",
		zap.String("dataset", dataset),
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Dataset: dataset, URL: endpoint, StatusCode: resp.StatusCode,
			Err: fmt.Errorf("body: %s", truncate(string(body), 200))}
	}

	var rows []Row
	switch s.format {
	case FormatCSV:
		rows, err = DecodeCSV(body)
	default:
		rows, err = DecodeJSON(body)
	}
	if err != nil {
		return nil, &ParseError{Dataset: dataset, Err: err}
	}
	return rows, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
