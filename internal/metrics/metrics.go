package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// OrdersPlaced counts orders successfully placed.
	OrdersPlaced = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "canteen_orders_placed_total",
		Help: "Number of orders placed.",
	})

	// StorageFailures counts persistence writes that failed. In-memory state
	// stays authoritative when this fires, so it is the only trace of a
	// write that was lost.
	StorageFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "canteen_storage_failures_total",
		Help: "Number of failed persistence writes, by collection.",
	}, []string{"collection"})

	// Requests counts handled HTTP requests.
	Requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "canteen_http_requests_total",
		Help: "Number of HTTP requests handled, by method, path and status.",
	}, []string{"method", "path", "status"})
)

func init() {
	prometheus.MustRegister(OrdersPlaced, StorageFailures, Requests)
}
