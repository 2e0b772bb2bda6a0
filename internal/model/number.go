package model

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

const (
	nan    = "NaN"
	posInf = "+Inf"
	negInf = "-Inf"
)

// Number is a float that survives json encoding even when it is not finite.
// NOTE : diverging runs produce Inf and NaN values, which encoding/json refuses to write.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return json.Marshal(nan)
	case math.IsInf(f, 1):
		return json.Marshal(posInf)
	case math.IsInf(f, -1):
		return json.Marshal(negInf)
	}
	return json.Marshal(f)
}

func (n *Number) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("could not decode number from '%s': %w", string(b), err)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("could not parse number '%s': %w", s, err)
	}
	*n = Number(f)
	return nil
}
