// Package growthmetrics exports DynamicArray growth as Prometheus metrics.
package growthmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wandb/wandb/containers/pkg/collections"
	"github.com/wandb/wandb/containers/pkg/observability/wberrors"
)

// Observer is a collections.GrowthObserver that updates Prometheus
// collectors.
type Observer struct {
	reallocations *prometheus.CounterVec
	failures      *prometheus.CounterVec
	relocated     prometheus.Counter
	capacity      prometheus.Histogram
}

var _ collections.GrowthObserver = &Observer{}

// New creates an Observer and registers its collectors.
func New(registerer prometheus.Registerer, namespace string) (*Observer, error) {
	o := &Observer{
		reallocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reallocations_total",
				Help:      "Number of buffer reallocations, by operation.",
			},
			[]string{"reason"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "allocation_failures_total",
				Help:      "Number of buffer allocations that failed, by operation.",
			},
			[]string{"reason"},
		),
		relocated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relocated_elements_total",
				Help:      "Number of live elements moved into new buffers.",
			},
		),
		capacity: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "allocated_capacity",
				Help:      "Capacity of each newly allocated buffer.",
				Buckets:   prometheus.ExponentialBuckets(16, 2, 16),
			},
		),
	}

	for _, collector := range []prometheus.Collector{
		o.reallocations,
		o.failures,
		o.relocated,
		o.capacity,
	} {
		if err := registerer.Register(collector); err != nil {
			return nil, wberrors.Enrichf(err, "growthmetrics: failed to register collector")
		}
	}

	return o, nil
}

func (o *Observer) Reallocated(event collections.GrowthEvent) {
	o.reallocations.WithLabelValues(event.Reason.String()).Inc()
	o.relocated.Add(float64(event.Size))
	o.capacity.Observe(float64(event.NewCapacity))
}

func (o *Observer) AllocationFailed(event collections.GrowthEvent, _ error) {
	o.failures.WithLabelValues(event.Reason.String()).Inc()
}
