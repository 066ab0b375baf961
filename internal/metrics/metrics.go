package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "membertrack_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "membertrack_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MembersCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "membertrack_members_created_total",
			Help: "Total number of members created",
		},
		[]string{"membership_type"},
	)

	MembersDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "membertrack_members_deleted_total",
			Help: "Total number of members deleted",
		},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "membertrack_payments_recorded_total",
			Help: "Total number of payments recorded",
		},
		[]string{"payment_type"},
	)

	ImportedRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "membertrack_imported_rows_total",
			Help: "Total number of spreadsheet rows processed on import",
		},
		[]string{"result"},
	)

	ExportsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "membertrack_exports_total",
			Help: "Total number of spreadsheet exports",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordMemberCreated(membershipType string) {
	MembersCreatedTotal.WithLabelValues(membershipType).Inc()
}

func RecordMemberDeleted() {
	MembersDeletedTotal.Inc()
}

func RecordPayment(paymentType string) {
	PaymentsRecordedTotal.WithLabelValues(paymentType).Inc()
}

func RecordImportedRow(result string) {
	ImportedRowsTotal.WithLabelValues(result).Inc()
}

func RecordExport() {
	ExportsTotal.Inc()
}
