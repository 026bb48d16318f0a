package schema

import (
	"testing"

	"github.com/spektr-org/fundview/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckReportsMissingFields(t *testing.T) {
	rows := []source.Row{
		{"country": "USA", "value": "38"},
		{"country": "Korea"},
		{"value": "16"},
	}

	missing := Country().Check("country", rows)
	require.Len(t, missing, 2)

	assert.Equal(t, 1, missing[0].Row)
	assert.Equal(t, "value", missing[0].Field)
	assert.Equal(t, 2, missing[1].Row)
	assert.Equal(t, "country", missing[1].Field)
	assert.EqualError(t, missing[1], `dataset "country" row 2: missing field "country"`)
}

func TestCheckUsesFetchedName(t *testing.T) {
	missing := Contributors().Check("donors", []source.Row{{}})
	require.Len(t, missing, 2)
	assert.Equal(t, "donors", missing[0].Dataset)
}

func TestCheckCompleteRows(t *testing.T) {
	rows := []source.Row{{"name": "Literacy Program", "status": "complete"}}
	assert.Empty(t, Projects().Check("projects", rows))
}

func TestFields(t *testing.T) {
	assert.Equal(t, []string{"metric", "value"}, Metrics().Fields())
	assert.Equal(t, []string{"name", "status"}, Projects().Fields())
	assert.Empty(t, Projects().MeasureKeys())
}

func TestAllNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range All() {
		assert.False(t, seen[c.Name], c.Name)
		seen[c.Name] = true
	}
	assert.Len(t, seen, 6)
}
