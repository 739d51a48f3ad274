package alloc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	reasonBadSize        = "bad_size"
	reasonNotInitialized = "not_initialized"
	reasonNoFit          = "no_fit"

	resultOK             = "ok"
	resultInvalidPointer = "invalid_pointer"
	resultDoubleFree     = "double_free"

	pathIdentity = "identity"
	pathShrink   = "shrink"
	pathGrow     = "grow_in_place"
	pathMove     = "move"
	pathFree     = "free"
	pathAlloc    = "alloc"
	pathFailed   = "failed"
)

type metrics struct {
	allocRequests *prometheus.CounterVec
	allocFailures *prometheus.CounterVec
	frees         *prometheus.CounterVec
	resizes       *prometheus.CounterVec
	coalesces     *prometheus.CounterVec
	splits        prometheus.Counter
}

// newMetrics registers the allocator metrics with reg. A nil reg yields
// working but unregistered collectors.
func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		allocRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "heapkit",
			Name:      "alloc_requests_total",
			Help:      "Total number of allocation requests by search strategy.",
		}, []string{"strategy"}),
		allocFailures: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "heapkit",
			Name:      "alloc_failures_total",
			Help:      "Total number of allocation requests that returned no allocation.",
		}, []string{"reason"}),
		frees: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "heapkit",
			Name:      "free_total",
			Help:      "Total number of free calls by result.",
		}, []string{"result"}),
		resizes: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "heapkit",
			Name:      "resize_total",
			Help:      "Total number of resize calls by the path that served them.",
		}, []string{"path"}),
		coalesces: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: "heapkit",
			Name:      "coalesce_total",
			Help:      "Total number of free block merges by direction.",
		}, []string{"direction"}),
		splits: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "heapkit",
			Name:      "split_total",
			Help:      "Total number of block splits.",
		}),
	}
}
