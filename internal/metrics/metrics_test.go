package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quoteserver/internal/errkind"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "ok", OutcomeLabel(nil))
	assert.Equal(t, "not_found", OutcomeLabel(errkind.E(errkind.NotFound, "get quote 1", nil)))
	assert.Equal(t, "internal", OutcomeLabel(errors.New("boom")))
}

func TestRecordLookup(t *testing.T) {
	before := counterValue(t, QuoteLookups.WithLabelValues("by_id", "not_found"))

	RecordLookup("by_id", errkind.E(errkind.NotFound, "get quote 1", nil))

	assert.Equal(t, before+1, counterValue(t, QuoteLookups.WithLabelValues("by_id", "not_found")))
}

func TestRecordImport(t *testing.T) {
	inserted := counterValue(t, ImportRecords.WithLabelValues("inserted"))
	skipped := counterValue(t, ImportRecords.WithLabelValues("skipped"))
	failed := counterValue(t, ImportRecords.WithLabelValues("failed"))

	RecordImport(3, 2, 1)

	assert.Equal(t, inserted+3, counterValue(t, ImportRecords.WithLabelValues("inserted")))
	assert.Equal(t, skipped+2, counterValue(t, ImportRecords.WithLabelValues("skipped")))
	assert.Equal(t, failed+1, counterValue(t, ImportRecords.WithLabelValues("failed")))
}
