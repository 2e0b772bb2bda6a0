package metrics

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Simulation(t *testing.T) {
	simulations := testutil.ToFloat64(Observer.prometheus.Simulations.WithLabelValues("test"))
	iterations := testutil.ToFloat64(Observer.prometheus.Iterations.WithLabelValues("test"))

	Observer.Simulation("test", 15, 0.08)
	Observer.Simulation("test", 0, 0)
	Observer.Simulation("test", 3, math.NaN())

	assert.Equal(t, simulations+3, testutil.ToFloat64(Observer.prometheus.Simulations.WithLabelValues("test")))
	assert.Equal(t, iterations+18, testutil.ToFloat64(Observer.prometheus.Iterations.WithLabelValues("test")))
}

func TestMetrics_Sweep(t *testing.T) {
	counter := Observer.prometheus.Sweeps.WithLabelValues("test", "true", "false")
	before := testutil.ToFloat64(counter)

	Observer.Sweep("test", true, false)
	Observer.Sweep("test", false, true)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestHandler(t *testing.T) {
	Observer.Simulation("exposed", 1, 1)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `weightlab_simulations_total{rule="exposed"} 1`))
	assert.True(t, strings.Contains(body, "weightlab_final_error_magnitude_bucket"))
}
