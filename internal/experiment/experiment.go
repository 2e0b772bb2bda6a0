// Package experiment runs the simulations on behalf of the presentation layers.
// Every call recomputes from scratch, nothing is cached between calls.
package experiment

import (
	"errors"
	"fmt"

	"github.com/drakos74/weight-lab/internal/learn"
	"github.com/drakos74/weight-lab/internal/metrics"
	"github.com/drakos74/weight-lab/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Service validates the parameters and runs the engine.
type Service struct {
	rates    []float64
	defaults model.Parameters
	metrics  *metrics.Metrics
}

// New creates a new service probing the given learning rates,
// or the default ones if none are given.
func New(rates ...float64) *Service {
	if len(rates) == 0 {
		rates = learn.DefaultRates()
	}
	r := make([]float64, len(rates))
	copy(r, rates)
	return &Service{
		rates:    r,
		defaults: model.DefaultParameters(),
		metrics:  metrics.Observer,
	}
}

// WithDefaults sets the parameters used when a request does not specify them.
func (s *Service) WithDefaults(p model.Parameters) *Service {
	s.defaults = p
	return s
}

// Defaults returns the default parameters of the service.
func (s *Service) Defaults() model.Parameters {
	return s.defaults
}

// Rates returns the learning rates probed by the service.
func (s *Service) Rates() []float64 {
	r := make([]float64, len(s.rates))
	copy(r, s.rates)
	return r
}

// Simulate validates the parameters and returns the full trace.
func (s *Service) Simulate(p model.Parameters) ([]model.Observation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	trace := learn.Simulate(p)
	var final float64
	if len(trace) > 0 {
		final = trace[len(trace)-1].ConvergenceMagnitude
	}
	s.metrics.Simulation(p.Rule.String(), len(trace), final)
	log.Debug().
		Str("rule", p.Rule.String()).
		Float64("alpha", p.LearningRate).
		Int("iterations", len(trace)).
		Float64("final", final).
		Msg("simulation")
	return trace, nil
}

// Sweep classifies the run for each of the given rates,
// falling back to the service rates if none are given.
func (s *Service) Sweep(p model.Parameters, rates ...float64) ([]model.SensitivityRow, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(rates) == 0 {
		rates = s.rates
	}
	rows, err := learn.Sweep(p, rates)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		s.metrics.Sweep(p.Rule.String(), row.Converged, row.Oscillated)
	}
	log.Debug().
		Str("rule", p.Rule.String()).
		Floats64("rates", rates).
		Int("rows", len(rows)).
		Msg("sweep")
	return rows, nil
}

// Run creates the full report for the given parameters.
// Without any iteration the report carries no sensitivity rows.
func (s *Service) Run(p model.Parameters) (model.Report, error) {
	trace, err := s.Simulate(p)
	if err != nil {
		return model.Report{}, fmt.Errorf("could not simulate: %w", err)
	}

	rows, err := s.Sweep(p)
	if errors.Is(err, learn.ErrNoIterations) {
		log.Warn().Int("iterations", p.IterationCount).Msg("skipping sensitivity sweep")
		rows = []model.SensitivityRow{}
	} else if err != nil {
		return model.Report{}, fmt.Errorf("could not sweep: %w", err)
	}

	report := model.Report{
		ID:           uuid.New().String(),
		Parameters:   p,
		Observations: trace,
		Sensitivity:  rows,
		Summary:      learn.Summarize(trace),
	}

	log.Info().
		Str("id", report.ID).
		Str("rule", p.Rule.String()).
		Float64("alpha", p.LearningRate).
		Int("iterations", len(trace)).
		Bool("converged", report.Summary.Converged).
		Bool("oscillated", report.Summary.Oscillated).
		Bool("diverged", report.Summary.Diverged).
		Msg("experiment")
	return report, nil
}
