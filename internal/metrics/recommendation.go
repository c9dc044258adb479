package metrics

import "github.com/prometheus/client_golang/prometheus"

// Recommendation is the set of domain metrics. Collectors are passed
// explicitly to the components that record them.
type Recommendation struct {
	RebuildDuration   prometheus.Histogram
	RebuildsTotal     *prometheus.CounterVec
	GenerationSize    *prometheus.GaugeVec
	GenerationAge     prometheus.Gauge
	RecommendsTotal   *prometheus.CounterVec
	SkippedRecords    *prometheus.CounterVec
	RecommendDuration *prometheus.HistogramVec
}

// NewRecommendation creates unregistered recommendation metrics.
func NewRecommendation() *Recommendation {
	return &Recommendation{
		RebuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "corpus_rebuild_duration_seconds",
			Help:      "Corpus generation build duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		RebuildsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "corpus_rebuilds_total",
				Help:      "Corpus rebuild attempts by outcome",
			},
			[]string{"status"}, // "ok" / "error" / "rejected"
		),
		GenerationSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "generation_size",
				Help:      "Size of the current corpus generation",
			},
			[]string{"kind"}, // "projects" / "collaborators" / "documents" / "vocabulary"
		),
		GenerationAge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_built_timestamp_seconds",
			Help:      "Unix time the current generation was built",
		}),
		RecommendsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recommendations_total",
				Help:      "Recommendation requests served by kind and strategy",
			},
			[]string{"kind", "strategy"},
		),
		SkippedRecords: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "skipped_records_total",
				Help:      "Records skipped because they could not be decoded or scored",
			},
			[]string{"kind"},
		),
		RecommendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "recommendation_duration_seconds",
				Help:      "Time to compute one recommendation list",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
			},
			[]string{"kind"},
		),
	}
}

// Register registers every collector with reg.
func (m *Recommendation) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		m.RebuildDuration, m.RebuildsTotal, m.GenerationSize, m.GenerationAge,
		m.RecommendsTotal, m.SkippedRecords, m.RecommendDuration,
	} {
		if err := reg.Register(c); err != nil {
			return err //nolint:wrapcheck // registration error is self-describing
		}
	}
	return nil
}
