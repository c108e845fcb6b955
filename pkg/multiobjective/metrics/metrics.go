package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/algorithms"
	"github.com/mihai-snyk/mosa-ranking/pkg/multiobjective/framework"
)

const subsystem = "ranking"

// Metrics groups the collectors describing ranking passes.
type Metrics struct {
	PassDuration  *prometheus.HistogramVec
	Passes        *prometheus.CounterVec
	Fronts        *prometheus.GaugeVec
	ZeroFrontSize *prometheus.GaugeVec
	Unranked      *prometheus.GaugeVec
}

// New creates the collectors without registering them.
func New() *Metrics {
	return &Metrics{
		PassDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Subsystem: subsystem,
			Name:      "pass_duration_seconds",
			Help:      "Time taken by one ranking pass.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"strategy"}),
		Passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Subsystem: subsystem,
			Name:      "passes_total",
			Help:      "Number of ranking passes.",
		}, []string{"strategy"}),
		Fronts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "fronts",
			Help:      "Number of fronts built by the last ranking pass.",
		}, []string{"strategy"}),
		ZeroFrontSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "zero_front_size",
			Help:      "Number of solutions in front 0 after the last ranking pass.",
		}, []string{"strategy"}),
		Unranked: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Subsystem: subsystem,
			Name:      "unranked_solutions",
			Help:      "Number of solutions left outside every front by the last ranking pass.",
		}, []string{"strategy"}),
	}
}

// Register registers every collector with r.
func (m *Metrics) Register(r prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.PassDuration, m.Passes, m.Fronts, m.ZeroFrontSize, m.Unranked} {
		if err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// instrumented records every pass of the wrapped ranking function.
type instrumented struct {
	algorithms.RankingFunction
	metrics *Metrics
}

// Instrument wraps rf so that each ComputeRankingAssignment is observed.
func Instrument(rf algorithms.RankingFunction, m *Metrics) algorithms.RankingFunction {
	return &instrumented{RankingFunction: rf, metrics: m}
}

func (i *instrumented) ComputeRankingAssignment(population []framework.Solution, objectives []framework.Objective) {
	strategy := i.Name()
	start := time.Now()
	i.RankingFunction.ComputeRankingAssignment(population, objectives)
	i.metrics.PassDuration.WithLabelValues(strategy).Observe(time.Since(start).Seconds())
	i.metrics.Passes.WithLabelValues(strategy).Inc()

	i.metrics.Fronts.WithLabelValues(strategy).Set(float64(i.NumberOfSubfronts()))
	i.metrics.ZeroFrontSize.WithLabelValues(strategy).Set(float64(len(i.Subfront(0))))
	unranked := 0
	for _, s := range i.Scores() {
		if s.Rank == framework.Unranked {
			unranked++
		}
	}
	i.metrics.Unranked.WithLabelValues(strategy).Set(float64(unranked))
}
