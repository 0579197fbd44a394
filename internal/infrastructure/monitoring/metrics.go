// Package monitoring collects Prometheus metrics for the menu engine.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks engine and catalog activity
type Metrics struct {
	regenerations      prometheus.Counter
	regenerationTime   prometheus.Histogram
	catalogMutations   *prometheus.CounterVec
	recipeCombinations prometheus.Histogram
	ordersPlaced       prometheus.Counter
	ordersRejected     prometheus.Counter
}

// NewMetrics registers the engine metrics with a registry
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		regenerations: factory.NewCounter(prometheus.CounterOpts{
			Name: "barkeep_menu_regenerations_total",
			Help: "Number of full menu recomputations",
		}),
		regenerationTime: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "barkeep_menu_regeneration_seconds",
			Help:    "Duration of full menu recomputations",
			Buckets: prometheus.DefBuckets,
		}),
		catalogMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "barkeep_catalog_mutations_total",
			Help: "Barstock mutations by operation",
		}, []string{"operation"}),
		recipeCombinations: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "barkeep_recipe_combinations",
			Help:    "Bottle combinations enumerated per recipe",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128},
		}),
		ordersPlaced: factory.NewCounter(prometheus.CounterOpts{
			Name: "barkeep_orders_placed_total",
			Help: "Orders accepted",
		}),
		ordersRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "barkeep_orders_rejected_total",
			Help: "Orders rejected because the recipe was not makeable",
		}),
	}
}

// RecordRegeneration notes one full menu recomputation
func (m *Metrics) RecordRegeneration(seconds float64) {
	m.regenerations.Inc()
	m.regenerationTime.Observe(seconds)
}

// RecordMutation notes one barstock mutation
func (m *Metrics) RecordMutation(operation string) {
	m.catalogMutations.WithLabelValues(operation).Inc()
}

// RecordCombinations notes the combination count of one resolved recipe
func (m *Metrics) RecordCombinations(n int) {
	m.recipeCombinations.Observe(float64(n))
}

// RecordOrderPlaced notes an accepted order
func (m *Metrics) RecordOrderPlaced() {
	m.ordersPlaced.Inc()
}

// RecordOrderRejected notes an order refused for stock reasons
func (m *Metrics) RecordOrderRejected() {
	m.ordersRejected.Inc()
}
