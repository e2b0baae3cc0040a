package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	voltagePlanner = "voltage_planner"

	calculationsTotal        = "calculations_total"
	circuitsCalculatedTotal  = "circuits_calculated_total"
	incomputableCircuitTotal = "incomputable_circuits_total"

	// Labels
	triggerLabel = "trigger"
)

var calculationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: voltagePlanner,
		Name:      calculationsTotal,
		Help:      "number of calculation runs executed",
	},
	[]string{triggerLabel},
)

var circuitsCalculatedTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: voltagePlanner,
		Name:      circuitsCalculatedTotal,
		Help:      "number of circuits processed across all runs",
	},
)

var incomputableCircuitsTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: voltagePlanner,
		Name:      incomputableCircuitTotal,
		Help:      "number of circuits whose voltage drop could not be computed",
	},
)

func IncreaseCalculationsTotalMetric(trigger string) {
	calculationsTotalMetric.With(prometheus.Labels{triggerLabel: trigger}).Inc()
}

func AddCircuitsCalculatedMetric(total, incomputable int) {
	circuitsCalculatedTotalMetric.Add(float64(total))
	incomputableCircuitsTotalMetric.Add(float64(incomputable))
}

// PrometheusMetricsHandler serves the default registry.
type PrometheusMetricsHandler struct{}

func NewPrometheusMetricsHandler() *PrometheusMetricsHandler {
	return &PrometheusMetricsHandler{}
}

func (p *PrometheusMetricsHandler) Handler() http.Handler {
	return promhttp.Handler()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(calculationsTotalMetric)
	prometheus.MustRegister(circuitsCalculatedTotalMetric)
	prometheus.MustRegister(incomputableCircuitsTotalMetric)
}
