package experiment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	xmath "github.com/drakos74/weight-lab/internal/math"
	"github.com/drakos74/weight-lab/internal/learn"
	"github.com/drakos74/weight-lab/internal/metrics"
	"github.com/drakos74/weight-lab/internal/model"
	"github.com/drakos74/weight-lab/internal/server"
)

const ratesKey = "rates"

// Field extracts one value from an observation.
type Field func(o model.Observation) float64

// fields are the observation values exposed as series.
var fields = map[string]Field{
	"output":      func(o model.Observation) float64 { return o.Output },
	"error":       func(o model.Observation) float64 { return o.Error },
	"convergence": func(o model.Observation) float64 { return o.ConvergenceMagnitude },
	"weight1":     func(o model.Observation) float64 { return o.Weight1 },
	"weight2":     func(o model.Observation) float64 { return o.Weight2 },
}

// Datasource exposes traces as series and sweeps as tables for grafana.
// The target data holds the parameter overrides e.g. {"learningRate":0.1,"rule":"weight"}.
func (s *Service) Datasource() *metrics.Datasource {
	ds := metrics.NewDatasource()
	for name, field := range fields {
		ds.Target(name, s.series(name, field))
	}
	return ds.
		Table("sensitivity", s.sensitivityTable).
		Table("observations", s.observationTable)
}

func (s *Service) series(name string, field Field) metrics.TargetQuery {
	return func(data map[string]interface{}) (metrics.Series, error) {
		p, err := s.parameters(data)
		if err != nil {
			return metrics.Series{}, err
		}
		trace, err := s.Simulate(p)
		if err != nil {
			return metrics.Series{}, badRequest(err)
		}
		return Series(name, trace, field), nil
	}
}

// Series converts the trace into datapoints of [value, iteration].
// Non-finite values cannot be plotted and are left out.
func Series(name string, trace []model.Observation, field Field) metrics.Series {
	points := make([][]float64, 0, len(trace))
	for _, o := range trace {
		v := field(o)
		if !xmath.Finite(v) {
			continue
		}
		points = append(points, []float64{v, float64(o.Iteration)})
	}
	return metrics.Series{
		Target:     name,
		DataPoints: points,
	}
}

func (s *Service) sensitivityTable(data map[string]interface{}) (metrics.Table, error) {
	p, err := s.parameters(data)
	if err != nil {
		return metrics.Table{}, err
	}
	rr, err := rates(data)
	if err != nil {
		return metrics.Table{}, err
	}
	rows, err := s.Sweep(p, rr...)
	if err != nil {
		return metrics.Table{}, badRequest(err)
	}
	table := metrics.NewTable()
	table.Columns = append(table.Columns,
		metrics.Column{Text: "Learning Rate", Type: "number"},
		metrics.Column{Text: "Final Error", Type: "number"},
		metrics.Column{Text: "Converged", Type: "string"},
		metrics.Column{Text: "Oscillated", Type: "string"},
	)
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{
			strconv.FormatFloat(row.LearningRate, 'f', -1, 64),
			xmath.Format(row.FinalErrorMagnitude),
			strconv.FormatBool(row.Converged),
			strconv.FormatBool(row.Oscillated),
		})
	}
	return table, nil
}

func (s *Service) observationTable(data map[string]interface{}) (metrics.Table, error) {
	p, err := s.parameters(data)
	if err != nil {
		return metrics.Table{}, err
	}
	trace, err := s.Simulate(p)
	if err != nil {
		return metrics.Table{}, badRequest(err)
	}
	table := metrics.NewTable()
	table.Columns = append(table.Columns,
		metrics.Column{Text: "Iteration", Type: "number"},
		metrics.Column{Text: "Output", Type: "number"},
		metrics.Column{Text: "Error", Type: "number"},
		metrics.Column{Text: "Weight 1", Type: "number"},
		metrics.Column{Text: "Weight 2", Type: "number"},
	)
	for _, o := range trace {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(o.Iteration),
			strconv.FormatFloat(o.Output, 'f', -1, 64),
			strconv.FormatFloat(o.Error, 'f', -1, 64),
			strconv.FormatFloat(o.Weight1, 'f', -1, 64),
			strconv.FormatFloat(o.Weight2, 'f', -1, 64),
		})
	}
	return table, nil
}

// parameters applies the target data on top of the service defaults.
func (s *Service) parameters(data map[string]interface{}) (model.Parameters, error) {
	p := s.defaults
	if len(data) == 0 {
		return p, nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return p, fmt.Errorf("could not read target data: %w", err)
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return p, fmt.Errorf("could not parse parameters from target data: %s: %w", err.Error(), server.ErrBadRequest)
	}
	return p, nil
}

// badRequest marks validation errors of the target data.
func badRequest(err error) error {
	if errors.Is(err, model.ErrInvalidParameters) || errors.Is(err, learn.ErrNoIterations) {
		return fmt.Errorf("%s: %w", err.Error(), server.ErrBadRequest)
	}
	return err
}

func rates(data map[string]interface{}) ([]float64, error) {
	v, ok := data[ratesKey]
	if !ok {
		return nil, nil
	}
	rr, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("'%s' must be a list of numbers, got %v: %w", ratesKey, v, server.ErrBadRequest)
	}
	rates := make([]float64, len(rr))
	for i, r := range rr {
		f, ok := r.(float64)
		if !ok {
			return nil, fmt.Errorf("'%s' must be a list of numbers, got %v: %w", ratesKey, v, server.ErrBadRequest)
		}
		rates[i] = f
	}
	return rates, nil
}
