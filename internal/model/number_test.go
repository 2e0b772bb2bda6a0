package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber(t *testing.T) {

	type test struct {
		value float64
		json  string
	}

	tests := map[string]test{
		"zero":     {value: 0, json: `0`},
		"decimal":  {value: 28.48, json: `28.48`},
		"negative": {value: -12.197, json: `-12.197`},
		"pos-inf":  {value: math.Inf(1), json: `"+Inf"`},
		"neg-inf":  {value: math.Inf(-1), json: `"-Inf"`},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b, err := json.Marshal(Number(tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.json, string(b))

			var n Number
			require.NoError(t, json.Unmarshal(b, &n))
			assert.Equal(t, tt.value, float64(n))
		})
	}
}

func TestNumber_NaN(t *testing.T) {
	b, err := json.Marshal(Number(math.NaN()))
	require.NoError(t, err)
	assert.Equal(t, `"NaN"`, string(b))

	var n Number
	require.NoError(t, json.Unmarshal(b, &n))
	assert.True(t, math.IsNaN(float64(n)))

	assert.Error(t, json.Unmarshal([]byte(`"many"`), &n))
	assert.Error(t, json.Unmarshal([]byte(`true`), &n))
}

func TestObservation_Json(t *testing.T) {
	o := Observation{
		Iteration:            9,
		Output:               math.Inf(1),
		Error:                math.Inf(-1),
		Weight1:              math.NaN(),
		Weight2:              1.5,
		ConvergenceMagnitude: math.Inf(1),
	}

	b, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"iteration": 9,
		"output": "+Inf",
		"error": "-Inf",
		"weight1": "NaN",
		"weight2": 1.5,
		"convergenceMagnitude": "+Inf"
	}`, string(b))

	var v Observation
	require.NoError(t, json.Unmarshal(b, &v))
	assert.Equal(t, 9, v.Iteration)
	assert.True(t, math.IsInf(v.Output, 1))
	assert.True(t, math.IsInf(v.Error, -1))
	assert.True(t, math.IsNaN(v.Weight1))
	assert.Equal(t, 1.5, v.Weight2)
}

func TestSensitivityRow_Json(t *testing.T) {
	rows := []SensitivityRow{
		{LearningRate: 0.01, FinalErrorMagnitude: 0.08332457916816693, Converged: true},
		{LearningRate: 0.5, FinalErrorMagnitude: math.Inf(1), Oscillated: true},
	}

	b, err := json.Marshal(rows)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"learningRate": 0.01, "finalErrorMagnitude": 0.08332457916816693, "converged": true, "oscillated": false},
		{"learningRate": 0.5, "finalErrorMagnitude": "+Inf", "converged": false, "oscillated": true}
	]`, string(b))

	var v []SensitivityRow
	require.NoError(t, json.Unmarshal(b, &v))
	require.Equal(t, 2, len(v))
	assert.Equal(t, rows[0], v[0])
	assert.True(t, math.IsInf(v[1].FinalErrorMagnitude, 1))
}

func TestSummary_Json(t *testing.T) {
	s := Summary{Iterations: 1, FinalError: -28, FinalErrorMagnitude: 28, ContractionRate: math.NaN()}

	b, err := json.Marshal(s)
	require.NoError(t, err)

	var v map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &v))
	assert.Equal(t, "NaN", v["contractionRate"])
	assert.Equal(t, -28.0, v["finalError"])

	var back Summary
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, math.IsNaN(back.ContractionRate))
	assert.Equal(t, 28.0, back.FinalErrorMagnitude)
}
