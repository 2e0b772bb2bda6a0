package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"reflect"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
)

type Action string

type Method string

const (
	Data Action = "data"
	Api  Action = "api"

	GET  Method = "GET"
	POST Method = "POST"
)

// ErrBadRequest marks errors caused by the request payload.
var ErrBadRequest = errors.New("bad request")

// Handler processes a request and returns the response payload and status code.
// A zero code is treated as http.StatusOK.
type Handler func(r *http.Request) ([]byte, int, error)

type Route struct {
	Action Action
	Path   string
	Method Method
	Exec   Handler
}

// Pattern returns the mux pattern for the route.
func (r Route) Pattern() string {
	if r.Path != "" {
		return fmt.Sprintf("/%s/%s", r.Action, r.Path)
	}
	return fmt.Sprintf("/%s", r.Action)
}

type Server struct {
	name   string
	port   int
	debug  bool
	routes []Route
	raw    map[string]http.Handler
}

func NewServer(name string, port int) *Server {
	return &Server{
		name:   name,
		port:   port,
		routes: make([]Route, 0),
		raw:    make(map[string]http.Handler),
	}
}

// Debug sets the server to debug mode
func (s *Server) Debug() *Server {
	s.debug = true
	return s
}

// Add adds the given routes to the server
func (s *Server) Add(route ...Route) *Server {
	s.routes = append(s.routes, route...)
	return s
}

// Mount exposes a plain http handler under the given pattern.
func (s *Server) Mount(pattern string, handler http.Handler) *Server {
	s.raw[pattern] = handler
	return s
}

// Handler builds the request multiplexer for all registered routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	for _, route := range s.routes {
		mux.HandleFunc(route.Pattern(), s.handle(route.Method, route.Exec))
	}
	for pattern, handler := range s.raw {
		mux.Handle(pattern, handler)
	}
	return mux
}

func (s *Server) handle(method Method, handler Handler) func(w http.ResponseWriter, r *http.Request) {
	name := runtime.FuncForPC(reflect.ValueOf(handler).Pointer()).Name()
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestMethod := Method(r.Method)
		switch requestMethod {
		case method:
			b, code, err := handler(r)
			if err != nil {
				s.error(w, code, err)
			} else if code != 0 && code != http.StatusOK {
				s.code(w, b, code)
			} else {
				s.respond(w, b)
			}
		default:
			w.WriteHeader(http.StatusNotImplemented)
		}
		log.Debug().
			Str("server", s.name).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("handler", name).
			Float64("duration", time.Since(start).Seconds()).
			Msg("completed request")
	}
}

// Run starts the server and blocks until the context is done.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.Error().Err(err).Str("server", s.name).Msg("could not shut down server")
		}
	}()

	log.Info().Str("server", s.name).Int("port", s.port).Int("routes", len(s.routes)).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not start server: %w", err)
	}
	log.Info().Str("server", s.name).Msg("server stopped")
	return nil
}

func (s *Server) code(w http.ResponseWriter, b []byte, code int) {
	w.WriteHeader(code)
	s.respond(w, b)
}

func (s *Server) respond(w http.ResponseWriter, b []byte) {
	_, err := w.Write(b)
	if err != nil {
		log.Error().Err(err).Msg("could not write response")
	}
}

func (s *Server) error(w http.ResponseWriter, code int, err error) {
	if code == 0 || code == http.StatusOK {
		code = http.StatusInternalServerError
		if errors.Is(err, ErrBadRequest) {
			code = http.StatusBadRequest
		}
	}
	log.Error().Err(err).Int("code", code).Msg("error for http request")
	s.code(w, []byte(err.Error()), code)
}

func Live() Route {
	return Route{
		Action: Data,
		Method: GET,
		Exec: func(r *http.Request) (payload []byte, code int, err error) {
			return []byte{}, http.StatusOK, nil
		},
	}
}

// ReadJson decodes the request body into v.
// An empty body leaves v untouched.
func ReadJson(r *http.Request, debug bool, v interface{}) error {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if debug {
		log.Info().
			Str("url", fmt.Sprintf("%+v", r.URL)).
			Str("request", r.RequestURI).
			Str("header", fmt.Sprintf("%+v", r.Header)).
			Str("remote-address", r.RemoteAddr).
			Str("host", r.Host).
			Str("method", r.Method).
			Str("body", string(body)).
			Msg("received payload")
	}
	if len(body) > 0 {
		err = json.Unmarshal(body, v)
		if err != nil {
			return fmt.Errorf("could not decode payload: %s: %w", err.Error(), ErrBadRequest)
		}
	}
	return nil
}
