package metrics

import (
	"errors"
	"strconv"

	coremetrics "github.com/kilianp07/batterycf/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink exposes the latest evaluation as Prometheus metrics.
type PromSink struct {
	components *prometheus.GaugeVec
	survival   *prometheus.GaugeVec
	totals     *prometheus.GaugeVec
	runs       *prometheus.CounterVec
	duration   prometheus.Histogram
}

// NewPromSink registers the cash-flow metrics on the default Prometheus registerer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already present on reg are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	components, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "battery_cashflow_component",
		Help: "Nominal value of a cash-flow term for a period",
	}, []string{"model", "period", "component"}))
	if err != nil {
		return nil, err
	}
	survival, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "battery_survival_probability",
		Help: "Probability that no battery has failed by the period",
	}, []string{"model", "period"}))
	if err != nil {
		return nil, err
	}
	totals, err := register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "battery_cashflow_total",
		Help: "Sum of the cash flow over the horizon",
	}, []string{"model", "kind"}))
	if err != nil {
		return nil, err
	}
	runs, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "battery_cashflow_runs_total",
		Help: "Total number of model evaluations",
	}, []string{"model", "status"}))
	if err != nil {
		return nil, err
	}
	duration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "battery_cashflow_run_duration_seconds",
		Help:    "Time spent evaluating the model",
		Buckets: prometheus.DefBuckets,
	}))
	if err != nil {
		return nil, err
	}
	return &PromSink{components: components, survival: survival, totals: totals, runs: runs, duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordCashFlow sets one gauge per period and term.
func (s *PromSink) RecordCashFlow(evs []coremetrics.CashFlowEvent) error {
	for _, ev := range evs {
		period := strconv.Itoa(ev.Row.Period)
		for _, f := range ev.Row.Fields() {
			s.components.WithLabelValues(ev.Model, period, f.Name).Set(f.Value)
		}
		s.survival.WithLabelValues(ev.Model, period).Set(ev.Reliability.SurvivalProbability)
	}
	return nil
}

// RecordRun counts the evaluation and, on success, publishes its totals.
func (s *PromSink) RecordRun(ev coremetrics.RunEvent) error {
	status := "ok"
	if ev.Err != "" {
		status = "error"
	}
	s.runs.WithLabelValues(ev.Model, status).Inc()
	s.duration.Observe(ev.Duration.Seconds())
	if ev.Err != "" {
		return nil
	}
	s.totals.WithLabelValues(ev.Model, "hard").Set(ev.Summary.TotalHard)
	s.totals.WithLabelValues(ev.Model, "soft").Set(ev.Summary.TotalSoft)
	s.totals.WithLabelValues(ev.Model, "total").Set(ev.Summary.Total)
	return nil
}
