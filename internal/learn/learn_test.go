package learn

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/drakos74/weight-lab/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(rule model.Rule, alpha float64, iterations int) model.Parameters {
	return model.Parameters{
		X1:             5,
		X2:             3,
		Target:         10,
		W1:             4,
		W2:             6,
		LearningRate:   alpha,
		IterationCount: iterations,
		Rule:           rule,
	}
}

func TestSimulate(t *testing.T) {

	type test struct {
		params model.Parameters
		steps  map[int]model.Observation
	}

	tests := map[string]test{
		"input": {
			params: params(model.ProportionalToInput, 0.01, 15),
			steps: map[int]model.Observation{
				0: {Iteration: 0, Output: 38, Error: -28, Weight1: 4, Weight2: 6, ConvergenceMagnitude: 28},
				1: {Iteration: 1, Output: 28.48, Error: -18.48, Weight1: 2.6, Weight2: 5.16},
				2: {Iteration: 2, Output: 22.197, Error: -12.197, Weight1: 1.676, Weight2: 4.606},
			},
		},
		"weight": {
			params: params(model.ProportionalToWeight, 0.01, 15),
			steps: map[int]model.Observation{
				0: {Iteration: 0, Output: 38, Error: -28, Weight1: 4, Weight2: 6, ConvergenceMagnitude: 28},
				1: {Iteration: 1, Output: 27.36, Error: -17.36, Weight1: 2.88, Weight2: 4.32},
				3: {Iteration: 3, Output: 19.759, Error: -9.759, Weight1: 2.08, Weight2: 3.12},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			trace := Simulate(tt.params)
			require.Equal(t, tt.params.IterationCount, len(trace))
			for i, expected := range tt.steps {
				o := trace[i]
				assert.Equal(t, expected.Iteration, o.Iteration)
				assert.Equal(t, expected.Output, o.Output)
				assert.Equal(t, expected.Error, o.Error)
				assert.Equal(t, expected.Weight1, o.Weight1)
				assert.Equal(t, expected.Weight2, o.Weight2)
				assert.InDelta(t, math.Abs(expected.Error), o.ConvergenceMagnitude, 1e-3)
			}
		})
	}
}

func TestSimulate_Properties(t *testing.T) {
	for _, rule := range []model.Rule{model.ProportionalToInput, model.ProportionalToWeight} {
		for _, alpha := range DefaultRates() {
			p := params(rule, alpha, 15)
			trace := Simulate(p)
			require.Equal(t, 15, len(trace))
			for i, o := range trace {
				assert.Equal(t, i, o.Iteration)
				if math.IsInf(o.Error, 0) {
					assert.True(t, math.IsInf(o.ConvergenceMagnitude, 1))
				} else {
					// the error is rounded, the magnitude is not
					assert.InDelta(t, math.Abs(o.Error), o.ConvergenceMagnitude, 5e-4)
				}
			}
			// the first step always sees the initial weights
			assert.Equal(t, p.W1, trace[0].Weight1)
			assert.Equal(t, p.W2, trace[0].Weight2)
			assert.Equal(t, 38.0, trace[0].Output)
			assert.Equal(t, 28.0, trace[0].ConvergenceMagnitude)
		}
	}
}

func TestSimulate_ConvergenceIsUnrounded(t *testing.T) {
	trace := Simulate(params(model.ProportionalToInput, 0.01, 15))
	last := trace[len(trace)-1]
	assert.InDelta(t, 0.08332457916816693, last.ConvergenceMagnitude, 1e-12)
	assert.Equal(t, -0.083, last.Error)
}

func TestSimulate_RuleOnlyChangesUpdate(t *testing.T) {
	input := Simulate(params(model.ProportionalToInput, 0.01, 1))
	weight := Simulate(params(model.ProportionalToWeight, 0.01, 1))
	assert.Equal(t, input, weight)

	input = Simulate(params(model.ProportionalToInput, 0.01, 2))
	weight = Simulate(params(model.ProportionalToWeight, 0.01, 2))
	assert.NotEqual(t, input[1], weight[1])
}

func TestSimulate_NoIterations(t *testing.T) {
	for name, n := range map[string]int{"zero": 0, "negative": -3} {
		t.Run(name, func(t *testing.T) {
			trace := Simulate(params(model.ProportionalToInput, 0.01, n))
			assert.NotNil(t, trace)
			assert.Empty(t, trace)
		})
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	p := params(model.ProportionalToWeight, 0.1, 15)
	expected := Simulate(p)

	var wg sync.WaitGroup
	traces := make([][]model.Observation, 8)
	for i := range traces {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			traces[i] = Simulate(p)
		}(i)
	}
	wg.Wait()

	for _, trace := range traces {
		require.Equal(t, len(expected), len(trace))
		for i := range trace {
			assert.Equal(t, expected[i].Output, trace[i].Output)
			assert.Equal(t, expected[i].Error, trace[i].Error)
			assert.Equal(t, expected[i].Weight1, trace[i].Weight1)
			assert.Equal(t, expected[i].Weight2, trace[i].Weight2)
		}
	}
}

func TestSimulate_NonFinite(t *testing.T) {
	p := params(model.ProportionalToInput, 0.01, 3)
	p.W1 = math.NaN()
	trace := Simulate(p)
	require.Equal(t, 3, len(trace))
	for _, o := range trace {
		assert.True(t, math.IsNaN(o.Output))
		assert.True(t, math.IsNaN(o.Error))
		assert.True(t, math.IsNaN(o.ConvergenceMagnitude))
	}

	p = params(model.ProportionalToInput, 0.01, 2)
	p.Target = math.Inf(1)
	trace = Simulate(p)
	assert.True(t, math.IsInf(trace[0].Error, 1))
	assert.True(t, math.IsInf(trace[0].ConvergenceMagnitude, 1))
}

func TestSimulate_Diverging(t *testing.T) {
	trace := Simulate(params(model.ProportionalToWeight, 0.5, 15))
	require.Equal(t, 15, len(trace))

	assert.True(t, Oscillated(trace))
	assert.Greater(t, trace[1].ConvergenceMagnitude, trace[0].ConvergenceMagnitude)
	assert.True(t, math.IsInf(trace[14].ConvergenceMagnitude, 1))
}

func TestSweep(t *testing.T) {

	type test struct {
		rule       model.Rule
		final      []float64
		converged  []bool
		oscillated []bool
	}

	tests := map[string]test{
		"input": {
			rule:       model.ProportionalToInput,
			final:      []float64{17.251934522141212, 0.08332457916816693, 5890001.634487209, 2.0176126330619822e+18},
			converged:  []bool{false, true, false, false},
			oscillated: []bool{false, false, true, true},
		},
		"weight": {
			rule:       model.ProportionalToWeight,
			final:      []float64{17.62785464199379, 1.7087839796905602, math.Inf(1), math.Inf(1)},
			converged:  []bool{false, false, false, false},
			oscillated: []bool{false, false, true, true},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rates := DefaultRates()
			rows, err := Sweep(params(tt.rule, 0.01, 15), rates)
			require.NoError(t, err)
			require.Equal(t, len(rates), len(rows))
			for i, row := range rows {
				assert.Equal(t, rates[i], row.LearningRate)
				if math.IsInf(tt.final[i], 1) {
					assert.True(t, math.IsInf(row.FinalErrorMagnitude, 1))
				} else {
					assert.InEpsilon(t, tt.final[i], row.FinalErrorMagnitude, 1e-9)
				}
				assert.Equal(t, row.FinalErrorMagnitude < 0.1, row.Converged)
				assert.Equal(t, tt.converged[i], row.Converged)
				assert.Equal(t, tt.oscillated[i], row.Oscillated)
			}
		})
	}
}

func TestSweep_KeepsBase(t *testing.T) {
	base := params(model.ProportionalToInput, 0.01, 15)
	copied := base

	first, err := Sweep(base, DefaultRates())
	require.NoError(t, err)
	second, err := Sweep(base, DefaultRates())
	require.NoError(t, err)

	assert.Equal(t, copied, base)
	assert.Equal(t, first, second)
}

func TestSweep_ArbitraryRates(t *testing.T) {
	rows, err := Sweep(params(model.ProportionalToInput, 0.01, 15), []float64{0.01, 0.01, 0, -0.01})
	require.NoError(t, err)
	require.Equal(t, 4, len(rows))
	assert.Equal(t, rows[0], rows[1])
	// a zero rate never moves the weights
	assert.Equal(t, 28.0, rows[2].FinalErrorMagnitude)
	assert.False(t, rows[2].Oscillated)
	// a negative rate pushes away from the target
	assert.True(t, rows[3].Oscillated)

	rows, err = Sweep(params(model.ProportionalToInput, 0.01, 15), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSweep_NoIterations(t *testing.T) {
	rows, err := Sweep(params(model.ProportionalToInput, 0.01, 0), DefaultRates())
	assert.True(t, errors.Is(err, ErrNoIterations))
	assert.Nil(t, rows)
}

func TestDefaultRates(t *testing.T) {
	rates := DefaultRates()
	assert.Equal(t, []float64{0.001, 0.01, 0.1, 0.5}, rates)
	rates[0] = 42
	assert.Equal(t, 0.001, DefaultRates()[0])
}

func TestOscillated(t *testing.T) {

	type test struct {
		magnitudes []float64
		oscillated bool
	}

	tests := map[string]test{
		"empty":      {magnitudes: []float64{}, oscillated: false},
		"single":     {magnitudes: []float64{3}, oscillated: false},
		"decreasing": {magnitudes: []float64{3, 2, 1}, oscillated: false},
		"flat":       {magnitudes: []float64{2, 2, 2}, oscillated: false},
		"bump-end":   {magnitudes: []float64{3, 2, 1, 1.5}, oscillated: true},
		"bump-start": {magnitudes: []float64{1, 2, 1, 0.5}, oscillated: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			trace := make([]model.Observation, len(tt.magnitudes))
			for i, m := range tt.magnitudes {
				trace[i] = model.Observation{Iteration: i, ConvergenceMagnitude: m}
			}
			assert.Equal(t, tt.oscillated, Oscillated(trace))
		})
	}
}
