package experiment

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/drakos74/weight-lab/internal/model"
	"github.com/drakos74/weight-lab/internal/server"
)

// SweepRequest is the payload of the sweep endpoint.
type SweepRequest struct {
	Parameters model.Parameters `json:"parameters"`
	Rates      []float64        `json:"rates"`
}

// Routes exposes the service over http.
// Fields missing from the request payload are taken from the service defaults.
func (s *Service) Routes(debug bool) []server.Route {
	return []server.Route{
		{Action: server.Api, Path: "simulate", Method: server.POST, Exec: s.simulateHandler(debug)},
		{Action: server.Api, Path: "sweep", Method: server.POST, Exec: s.sweepHandler(debug)},
		{Action: server.Api, Path: "report", Method: server.POST, Exec: s.reportHandler(debug)},
		{Action: server.Api, Path: "defaults", Method: server.GET, Exec: s.defaultsHandler},
	}
}

func (s *Service) simulateHandler(debug bool) server.Handler {
	return func(r *http.Request) ([]byte, int, error) {
		p := s.defaults
		if err := server.ReadJson(r, debug, &p); err != nil {
			return nil, http.StatusBadRequest, err
		}
		trace, err := s.Simulate(p)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		return encode(trace)
	}
}

func (s *Service) sweepHandler(debug bool) server.Handler {
	return func(r *http.Request) ([]byte, int, error) {
		request := SweepRequest{Parameters: s.defaults}
		if err := server.ReadJson(r, debug, &request); err != nil {
			return nil, http.StatusBadRequest, err
		}
		rows, err := s.Sweep(request.Parameters, request.Rates...)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		return encode(rows)
	}
}

func (s *Service) reportHandler(debug bool) server.Handler {
	return func(r *http.Request) ([]byte, int, error) {
		p := s.defaults
		if err := server.ReadJson(r, debug, &p); err != nil {
			return nil, http.StatusBadRequest, err
		}
		report, err := s.Run(p)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		return encode(report)
	}
}

func (s *Service) defaultsHandler(_ *http.Request) ([]byte, int, error) {
	return encode(SweepRequest{
		Parameters: s.defaults,
		Rates:      s.Rates(),
	})
}

func encode(v interface{}) ([]byte, int, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, http.StatusInternalServerError, fmt.Errorf("could not encode response: %w", err)
	}
	return b, http.StatusOK, nil
}
