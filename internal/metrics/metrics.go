package metrics

import (
	"math"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var Observer = &Metrics{
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.collectors()...)
}

type Metrics struct {
	prometheus Prometheus
}

// Simulation records a finished simulation run.
func (m *Metrics) Simulation(rule string, iterations int, finalErrorMagnitude float64) {
	m.prometheus.Simulations.WithLabelValues(rule).Inc()
	m.prometheus.Iterations.WithLabelValues(rule).Add(float64(iterations))
	if iterations > 0 && !math.IsNaN(finalErrorMagnitude) {
		m.prometheus.FinalError.WithLabelValues(rule).Observe(finalErrorMagnitude)
	}
}

// Sweep records the classification of one learning rate.
func (m *Metrics) Sweep(rule string, converged, oscillated bool) {
	m.prometheus.Sweeps.WithLabelValues(rule, strconv.FormatBool(converged), strconv.FormatBool(oscillated)).Inc()
}

// Handler exposes the registered metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
