// Package metrics exposes prometheus collectors for quote lookups and imports.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mrlokans/quoteserver/internal/errkind"
)

var (
	// QuoteLookups counts read operations by operation and outcome.
	QuoteLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quote_server",
		Name:      "lookups_total",
		Help:      "Quote lookups by operation and outcome.",
	}, []string{"operation", "outcome"})

	// ImportRecords counts imported records by result.
	ImportRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "quote_server",
		Name:      "import_records_total",
		Help:      "Imported quote records by result.",
	}, []string{"result"})
)

// OutcomeLabel renders an error as the label value used by QuoteLookups.
func OutcomeLabel(err error) string {
	switch errkind.OutcomeOf(err) {
	case errkind.OutcomeOK:
		return "ok"
	case errkind.OutcomeNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// RecordLookup counts one lookup.
func RecordLookup(operation string, err error) {
	QuoteLookups.WithLabelValues(operation, OutcomeLabel(err)).Inc()
}

// RecordImport adds one import pass to ImportRecords.
func RecordImport(inserted, skipped, failed int) {
	ImportRecords.WithLabelValues("inserted").Add(float64(inserted))
	ImportRecords.WithLabelValues("skipped").Add(float64(skipped))
	ImportRecords.WithLabelValues("failed").Add(float64(failed))
}
