package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "weightlab"

type Prometheus struct {
	Simulations *prometheus.CounterVec
	Iterations  *prometheus.CounterVec
	Sweeps      *prometheus.CounterVec
	FinalError  *prometheus.HistogramVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Simulations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "simulations_total",
				Help:      "number of simulation runs",
			}, []string{"rule"}),
		Iterations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "iterations_total",
				Help:      "number of simulated iterations",
			}, []string{"rule"}),
		Sweeps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sweep_rows_total",
				Help:      "number of classified learning rates",
			}, []string{"rule", "converged", "oscillated"}),
		FinalError: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "final_error_magnitude",
				Help:      "absolute error at the last iteration of a run",
				Buckets:   prometheus.ExponentialBuckets(0.001, 10, 8),
			}, []string{"rule"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Simulations, p.Iterations, p.Sweeps, p.FinalError}
}
