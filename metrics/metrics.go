// Package metrics exports A* search statistics as Prometheus collectors.
//
// A Collector implements astar.Recorder; attach it with astar.WithRecorder.
// Collectors are registered on a caller-supplied prometheus.Registerer so
// that tests and short-lived CLI runs can use a private registry.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/astar"
)

const namespace = "gridpath"

// Collector records one observation per search.
type Collector struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	pathLen  prometheus.Histogram
	duration prometheus.Histogram
}

var _ astar.Recorder = (*Collector)(nil)

// New builds a Collector and registers its metrics on reg.
// A nil reg means prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total A* searches by outcome",
		}, []string{"outcome"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_expanded_nodes",
			Help:      "Nodes expanded per A* search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}),
		pathLen: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_path_length",
			Help:      "Cells in the returned path, start and goal included",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1 to 8192
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "A* search duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}),
	}

	for _, col := range []prometheus.Collector{c.searches, c.expanded, c.pathLen, c.duration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	// Pre-create every outcome so dashboards see zeros instead of gaps.
	for _, o := range []astar.Outcome{astar.OutcomeFound, astar.OutcomeNotFound, astar.OutcomeTruncated, astar.OutcomeInvalid} {
		c.searches.WithLabelValues(string(o))
	}
	return c, nil
}

// ObserveSearch implements astar.Recorder. Invalid requests only count
// towards searches_total.
func (c *Collector) ObserveSearch(outcome astar.Outcome, expanded int, pathLen int, elapsed time.Duration) {
	c.searches.WithLabelValues(string(outcome)).Inc()
	if outcome == astar.OutcomeInvalid {
		return
	}
	c.expanded.Observe(float64(expanded))
	c.duration.Observe(elapsed.Seconds())
	if outcome == astar.OutcomeFound {
		c.pathLen.Observe(float64(pathLen))
	}
}
