package metrics

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/drakos74/weight-lab/internal/server"
	"github.com/rs/zerolog/log"
)

const table = "table"

// TargetQuery creates the series for a target, data carries the query arguments.
type TargetQuery func(data map[string]interface{}) (Series, error)

// TableQuery creates the table for a target, data carries the query arguments.
type TableQuery func(data map[string]interface{}) (Table, error)

// Datasource serves series and tables in the grafana simple json format.
type Datasource struct {
	debug   bool
	targets map[string]TargetQuery
	tables  map[string]TableQuery
}

func NewDatasource() *Datasource {
	return &Datasource{
		targets: make(map[string]TargetQuery),
		tables:  make(map[string]TableQuery),
	}
}

// Debug logs the incoming queries.
func (s *Datasource) Debug() *Datasource {
	s.debug = true
	return s
}

func (s *Datasource) Target(target string, query TargetQuery) *Datasource {
	s.targets[target] = query
	return s
}

func (s *Datasource) Table(target string, query TableQuery) *Datasource {
	s.tables[target] = query
	return s
}

// Routes returns the routes grafana expects from a simple json datasource.
func (s *Datasource) Routes() []server.Route {
	return []server.Route{
		server.Live(),
		{Action: server.Data, Path: "search", Method: server.POST, Exec: s.search},
		{Action: server.Data, Path: "query", Method: server.POST, Exec: s.query},
	}
}

func (s *Datasource) query(r *http.Request) (payload []byte, code int, err error) {
	var query Query
	err = server.ReadJson(r, s.debug, &query)
	if err != nil {
		return payload, http.StatusBadRequest, err
	}

	data := make([]Series, 0)
	tables := make([]Table, 0)

	for _, target := range query.Targets {
		switch target.Type {
		case table:
			t, ok := s.tables[target.Target]
			if !ok {
				return payload, http.StatusBadRequest, fmt.Errorf("unknown table: %s", target.Target)
			}
			tt, err := t(target.Data)
			if err != nil {
				return payload, code, fmt.Errorf("could not create table '%s': %w", target.Target, err)
			}
			tables = append(tables, tt)
		default:
			t, ok := s.targets[target.Target]
			if !ok {
				log.Error().Str("target", target.Target).Msg("unknown target")
				return payload, http.StatusBadRequest, fmt.Errorf("unknown target: %s", target.Target)
			}
			series, err := t(target.Data)
			if err != nil {
				return payload, code, fmt.Errorf("could not create series '%s': %w", target.Target, err)
			}
			data = append(data, series)
		}
	}

	response := make([]interface{}, 0)
	for _, table := range tables {
		response = append(response, table)
	}
	for _, d := range data {
		response = append(response, d)
	}

	payload, err = json.Marshal(response)
	return
}

func (s *Datasource) search(_ *http.Request) (payload []byte, code int, err error) {
	targets := make([]string, 0, len(s.targets)+len(s.tables))
	for target := range s.targets {
		targets = append(targets, target)
	}
	for target := range s.tables {
		targets = append(targets, target)
	}
	sort.Strings(targets)
	payload, err = json.Marshal(targets)
	return
}
