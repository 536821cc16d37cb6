package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the storm controller.
type Metrics struct {
	Ticks         *prometheus.CounterVec // labels: hook={wave,storm}
	Commands      *prometheus.CounterVec // labels: result={grant,grant_radius,invalid}
	StormsApplied prometheus.Counter
	SessionActive prometheus.Gauge

	// Tunables metrics.
	ConfigLinesSkipped   prometheus.Counter
	ConfigValuesRejected prometheus.Counter
	ConfigReloads        *prometheus.CounterVec // labels: outcome={applied,missing,error}
	TunableValue         *prometheus.GaugeVec   // labels: key
}

// NewMetrics creates and registers all controller metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.Ticks,
		m.Commands,
		m.StormsApplied,
		m.SessionActive,
		m.ConfigLinesSkipped,
		m.ConfigValuesRejected,
		m.ConfigReloads,
		m.TunableValue,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Ticks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storm_controller",
			Name:      "ticks_total",
			Help:      "Host hook invocations by hook.",
		}, []string{"hook"}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storm_controller",
			Name:      "commands_total",
			Help:      "Recognized console commands by result.",
		}, []string{"result"}),
		StormsApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_controller",
			Name:      "storms_applied_total",
			Help:      "Storm requests applied to the host storm.",
		}),
		SessionActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "storm_controller",
			Name:      "session_active",
			Help:      "1 once a session has started and tunables are applied.",
		}),
		ConfigLinesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_controller",
			Name:      "config_lines_skipped_total",
			Help:      "Malformed tunables file lines skipped.",
		}),
		ConfigValuesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "storm_controller",
			Name:      "config_values_rejected_total",
			Help:      "Tunables left at their previous value because the file value was missing or unparsable.",
		}),
		ConfigReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "storm_controller",
			Name:      "config_loads_total",
			Help:      "Tunables file loads by outcome.",
		}, []string{"outcome"}),
		TunableValue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "storm_controller",
			Name:      "tunable_value",
			Help:      "Active value of each tunable.",
		}, []string{"key"}),
	}
}
