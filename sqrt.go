package calc

import (
	"math"
	"math/big"
)

// Sqrt computes the square root of x to the context's precision. If x is
// negative, the error is a DomainError matching ErrInvalidInput.
func (ctx *Context) Sqrt(x *big.Float) (*big.Float, error) {
	if x.Sign() < 0 {
		return nil, DomainError{X: new(big.Float).Copy(x), Func: "sqrt"}
	}
	r := new(big.Float).SetPrec(ctx.prec)
	if x.Sign() == 0 {
		// Also turns -0 into 0.
		return r, nil
	}
	return r.Sqrt(x), nil
}

// SquareRoot computes the square root of a float64. If value is negative or
// NaN, the error is a DomainError matching ErrInvalidInput.
func SquareRoot(value float64) (float64, error) {
	if math.IsNaN(value) {
		return 0, DomainError{Func: "sqrt"}
	}
	r, err := NewContext().Sqrt(big.NewFloat(value))
	if err != nil {
		return 0, err
	}
	f, _ := r.Float64()
	return f, nil
}
