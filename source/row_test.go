package source

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 38.0, 38},
		{"int", 12, 12},
		{"plain string", "1250000", 1250000},
		{"padded string", "  42 ", 42},
		{"fraction", "8.5", 8.5},
		{"currency string", "$43,210", 43210},
		{"negative currency", "-$12.50", -12.5},
		{"percent suffix", "42%", 42},
		{"leading dot", ".5", 0.5},
		{"exponent", "1e3", 1000},
		{"json number", json.Number("17.25"), 17.25},
		{"garbage", "n/a", 0},
		{"empty", "", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"nested", map[string]any{"a": 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToFloat(tt.in))
		})
	}
}

func TestToText(t *testing.T) {
	assert.Equal(t, "", ToText(nil))
	assert.Equal(t, "active", ToText("active"))
	assert.Equal(t, "12", ToText(12.0))
	assert.Equal(t, "8.5", ToText(8.5))
	assert.Equal(t, "true", ToText(true))
	assert.Equal(t, "7", ToText(json.Number("7")))
}

func TestRowAccessors(t *testing.T) {
	row := Row{"metric": "total_funding", "value": "1250000"}

	assert.True(t, row.Has("metric"))
	assert.False(t, row.Has("missing"))
	assert.Equal(t, "total_funding", row.Text("metric"))
	assert.Equal(t, 1250000.0, row.Float("value"))
	assert.Equal(t, "", row.Text("missing"))
	assert.Equal(t, 0.0, row.Float("missing"))
}

func TestStaticSource(t *testing.T) {
	src := StaticSource{"projects": {{"name": "Literacy Program", "status": "complete"}}}

	rows, err := src.Rows(context.Background(), "projects")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "complete", rows[0].Text("status"))

	_, err = src.Rows(context.Background(), "assets")
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 404, fe.StatusCode)
	assert.True(t, errors.Is(err, ErrUnknownDataset))
}

func TestStaticSourceCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Demo().Rows(ctx, "metrics")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDemoCoversDefaultDatasets(t *testing.T) {
	demo := Demo()
	for _, name := range []string{"metrics", "country", "assets", "finance", "contributors", "projects"} {
		rows, err := demo.Rows(context.Background(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, rows, name)
	}
}

func TestSourceFunc(t *testing.T) {
	var got string
	src := SourceFunc(func(_ context.Context, dataset string) ([]Row, error) {
		got = dataset
		return nil, nil
	})
	_, err := src.Rows(context.Background(), "finance")
	require.NoError(t, err)
	assert.Equal(t, "finance", got)
}
