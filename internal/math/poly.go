package math

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrNotEnoughPoints is returned when a fit has fewer points than coefficients.
var ErrNotEnoughPoints = errors.New("not enough points for fit")

// Fit fits the given series of x and y into a polynomial function of the given degree
// out put is a vector with the coefficients of the corresponding powers of x
// c[0] + c[1]x + c[2]x^2 + c[3]x^3 + ...
func Fit(x, y []float64, degree int) ([]float64, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y lengths differ (%d != %d)", len(x), len(y))
	}
	if degree < 0 || len(x) < degree+1 {
		return nil, fmt.Errorf("%d points for degree %d: %w", len(x), degree, ErrNotEnoughPoints)
	}

	a := vandermonde(x, degree)
	b := mat.NewDense(len(y), 1, y)
	c := mat.NewDense(degree+1, 1, nil)

	qr := new(mat.QR)
	qr.Factorize(a)

	if err := qr.SolveTo(c, false, b); err != nil {
		return nil, fmt.Errorf("could not solve least squares: %w", err)
	}

	return mat.Col(nil, 0, c), nil
}

func vandermonde(a []float64, degree int) *mat.Dense {
	x := mat.NewDense(len(a), degree+1, nil)
	for i := range a {
		for j, p := 0, 1.; j <= degree; j, p = j+1, p*a[i] {
			x.Set(i, j, p)
		}
	}
	return x
}
