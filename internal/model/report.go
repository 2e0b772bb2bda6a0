package model

import "encoding/json"

// Summary describes the shape of a single trace.
type Summary struct {
	Iterations          int     `json:"iterations"`
	FinalError          float64 `json:"finalError"`
	FinalErrorMagnitude float64 `json:"finalErrorMagnitude"`
	MinMagnitude        float64 `json:"minMagnitude"`
	MaxMagnitude        float64 `json:"maxMagnitude"`
	MeanMagnitude       float64 `json:"meanMagnitude"`
	Converged           bool    `json:"converged"`
	Oscillated          bool    `json:"oscillated"`
	Diverged            bool    `json:"diverged"`
	// ContractionRate is the fitted per-step factor of the error magnitude.
	ContractionRate float64 `json:"contractionRate"`
}

type summary struct {
	Iterations          int    `json:"iterations"`
	FinalError          Number `json:"finalError"`
	FinalErrorMagnitude Number `json:"finalErrorMagnitude"`
	MinMagnitude        Number `json:"minMagnitude"`
	MaxMagnitude        Number `json:"maxMagnitude"`
	MeanMagnitude       Number `json:"meanMagnitude"`
	Converged           bool   `json:"converged"`
	Oscillated          bool   `json:"oscillated"`
	Diverged            bool   `json:"diverged"`
	ContractionRate     Number `json:"contractionRate"`
}

func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(summary{
		Iterations:          s.Iterations,
		FinalError:          Number(s.FinalError),
		FinalErrorMagnitude: Number(s.FinalErrorMagnitude),
		MinMagnitude:        Number(s.MinMagnitude),
		MaxMagnitude:        Number(s.MaxMagnitude),
		MeanMagnitude:       Number(s.MeanMagnitude),
		Converged:           s.Converged,
		Oscillated:          s.Oscillated,
		Diverged:            s.Diverged,
		ContractionRate:     Number(s.ContractionRate),
	})
}

func (s *Summary) UnmarshalJSON(b []byte) error {
	var v summary
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Summary{
		Iterations:          v.Iterations,
		FinalError:          float64(v.FinalError),
		FinalErrorMagnitude: float64(v.FinalErrorMagnitude),
		MinMagnitude:        float64(v.MinMagnitude),
		MaxMagnitude:        float64(v.MaxMagnitude),
		MeanMagnitude:       float64(v.MeanMagnitude),
		Converged:           v.Converged,
		Oscillated:          v.Oscillated,
		Diverged:            v.Diverged,
		ContractionRate:     float64(v.ContractionRate),
	}
	return nil
}

// Report bundles everything computed for one set of parameters.
type Report struct {
	ID           string           `json:"id"`
	Parameters   Parameters       `json:"parameters"`
	Observations []Observation    `json:"observations"`
	Sensitivity  []SensitivityRow `json:"sensitivity"`
	Summary      Summary          `json:"summary"`
}
