package pagination

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts list requests by collection and range mode (all, head, window).
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_list_requests_total",
			Help: "Total number of list requests by collection and range mode",
		},
		[]string{"collection", "mode"},
	)

	// ErrorsTotal counts rejected range parameters by collection.
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_list_range_errors_total",
			Help: "Total number of list requests rejected for invalid range parameters",
		},
		[]string{"collection"},
	)

	// ReturnedItems tracks how many items list responses carry.
	ReturnedItems = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forum_list_returned_items",
			Help:    "Number of items returned by list requests",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 1000},
		},
		[]string{"collection"},
	)
)

// RecordRequest records a successfully parsed range.
func RecordRequest(collection string, r Range) {
	RequestsTotal.WithLabelValues(collection, r.Mode()).Inc()
}

// RecordError records a rejected range.
func RecordError(collection string) {
	ErrorsTotal.WithLabelValues(collection).Inc()
}

// RecordReturned records the size of a list response.
func RecordReturned(collection string, n int) {
	ReturnedItems.WithLabelValues(collection).Observe(float64(n))
}
