// Package metrics exports merge statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/alexisbeaulieu97/twmerge/pkg/twmerge"
)

// Observer implements twmerge.Observer with Prometheus collectors.
type Observer struct {
	merges      prometheus.Counter
	tokens      *prometheus.CounterVec
	cache       *prometheus.CounterVec
	mergeTokens prometheus.Histogram
}

// NewObserver creates the collectors and registers them on reg.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		merges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "twmerge",
			Name:      "merges_total",
			Help:      "Number of class lists merged.",
		}),
		tokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "twmerge",
			Name:      "tokens_total",
			Help:      "Class tokens processed, by outcome.",
		}, []string{"outcome"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "twmerge",
			Name:      "classify_cache_total",
			Help:      "Classification memo lookups, by result.",
		}, []string{"result"}),
		mergeTokens: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "twmerge",
			Name:      "merge_tokens",
			Help:      "Number of input tokens per merge.",
			Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128},
		}),
	}

	for _, c := range []prometheus.Collector{o.merges, o.tokens, o.cache, o.mergeTokens} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// ObserveClassify records a memo lookup.
func (o *Observer) ObserveClassify(hit bool) {
	if hit {
		o.cache.WithLabelValues("hit").Inc()
		return
	}
	o.cache.WithLabelValues("miss").Inc()
}

// ObserveMerge records the outcome counts of one merge.
func (o *Observer) ObserveMerge(stats twmerge.Stats) {
	o.merges.Inc()
	o.mergeTokens.Observe(float64(stats.Tokens))
	o.tokens.WithLabelValues(string(twmerge.OutcomeKept)).Add(float64(stats.Kept))
	o.tokens.WithLabelValues(string(twmerge.OutcomeOverridden)).Add(float64(stats.Overridden))
	o.tokens.WithLabelValues(string(twmerge.OutcomeRejected)).Add(float64(stats.Rejected))
}

var _ twmerge.Observer = (*Observer)(nil)
