package model

import "encoding/json"

// Observation is the state of one simulation step.
// Output, Error and the weights are rounded for display,
// ConvergenceMagnitude keeps the raw absolute error.
type Observation struct {
	Iteration            int     `json:"iteration"`
	Output               float64 `json:"output"`
	Error                float64 `json:"error"`
	Weight1              float64 `json:"weight1"`
	Weight2              float64 `json:"weight2"`
	ConvergenceMagnitude float64 `json:"convergenceMagnitude"`
}

type observation struct {
	Iteration            int    `json:"iteration"`
	Output               Number `json:"output"`
	Error                Number `json:"error"`
	Weight1              Number `json:"weight1"`
	Weight2              Number `json:"weight2"`
	ConvergenceMagnitude Number `json:"convergenceMagnitude"`
}

func (o Observation) MarshalJSON() ([]byte, error) {
	return json.Marshal(observation{
		Iteration:            o.Iteration,
		Output:               Number(o.Output),
		Error:                Number(o.Error),
		Weight1:              Number(o.Weight1),
		Weight2:              Number(o.Weight2),
		ConvergenceMagnitude: Number(o.ConvergenceMagnitude),
	})
}

func (o *Observation) UnmarshalJSON(b []byte) error {
	var v observation
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Observation{
		Iteration:            v.Iteration,
		Output:               float64(v.Output),
		Error:                float64(v.Error),
		Weight1:              float64(v.Weight1),
		Weight2:              float64(v.Weight2),
		ConvergenceMagnitude: float64(v.ConvergenceMagnitude),
	}
	return nil
}

// SensitivityRow classifies a full run at one learning rate.
type SensitivityRow struct {
	LearningRate        float64 `json:"learningRate"`
	FinalErrorMagnitude float64 `json:"finalErrorMagnitude"`
	Converged           bool    `json:"converged"`
	Oscillated          bool    `json:"oscillated"`
}

type sensitivityRow struct {
	LearningRate        Number `json:"learningRate"`
	FinalErrorMagnitude Number `json:"finalErrorMagnitude"`
	Converged           bool   `json:"converged"`
	Oscillated          bool   `json:"oscillated"`
}

func (r SensitivityRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(sensitivityRow{
		LearningRate:        Number(r.LearningRate),
		FinalErrorMagnitude: Number(r.FinalErrorMagnitude),
		Converged:           r.Converged,
		Oscillated:          r.Oscillated,
	})
}

func (r *SensitivityRow) UnmarshalJSON(b []byte) error {
	var v sensitivityRow
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = SensitivityRow{
		LearningRate:        float64(v.LearningRate),
		FinalErrorMagnitude: float64(v.FinalErrorMagnitude),
		Converged:           v.Converged,
		Oscillated:          v.Oscillated,
	}
	return nil
}
