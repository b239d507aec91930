// Package metrics records evaluation counters in a Prometheus registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"svw.info/eggdrop/internal/domain"
)

// Metrics holds the evaluation collectors.
//
// Metrics:
//   - eggdrop_trials_total{strategy} - trials run
//   - eggdrop_probes_total{strategy} - probes spent across all trials
//   - eggdrop_trial_probes{strategy} - histogram of probes per trial
//   - eggdrop_worst_case_probes{strategy} - worst-case probe count of the last evaluation
//   - eggdrop_worst_case_threshold{strategy} - threshold of that worst case
type Metrics struct {
	TrialsTotal        *prometheus.CounterVec
	ProbesTotal        *prometheus.CounterVec
	TrialProbes        *prometheus.HistogramVec
	WorstCaseProbes    *prometheus.GaugeVec
	WorstCaseThreshold *prometheus.GaugeVec
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		TrialsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eggdrop_trials_total",
				Help: "Total number of hidden-threshold trials run",
			},
			[]string{"strategy"},
		),
		ProbesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eggdrop_probes_total",
				Help: "Total number of probes issued across all trials",
			},
			[]string{"strategy"},
		),
		TrialProbes: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "eggdrop_trial_probes",
				Help:    "Probes needed by a single trial",
				Buckets: prometheus.ExponentialBuckets(1, 2, 8), // 1 to 128
			},
			[]string{"strategy"},
		),
		WorstCaseProbes: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "eggdrop_worst_case_probes",
				Help: "Worst-case probe count of the most recent evaluation",
			},
			[]string{"strategy"},
		),
		WorstCaseThreshold: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "eggdrop_worst_case_threshold",
				Help: "Threshold at which the most recent worst case occurred",
			},
			[]string{"strategy"},
		),
	}
}

// RecordTrial counts one finished trial.
func (m *Metrics) RecordTrial(strategy string, c domain.Case) {
	m.TrialsTotal.WithLabelValues(strategy).Inc()
	m.ProbesTotal.WithLabelValues(strategy).Add(float64(c.Probes))
	m.TrialProbes.WithLabelValues(strategy).Observe(float64(c.Probes))
}

// RecordWorstCase stores the result of a finished evaluation.
func (m *Metrics) RecordWorstCase(strategy string, c domain.Case) {
	m.WorstCaseProbes.WithLabelValues(strategy).Set(float64(c.Probes))
	m.WorstCaseThreshold.WithLabelValues(strategy).Set(float64(c.Threshold))
}
