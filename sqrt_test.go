package calc_test

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestSquareRoot(t *testing.T) {
	cases := []struct {
		name string
		x, r float64
	}{
		{"nine", 9, 3},
		{"two", 2, math.Sqrt(2)},
		{"quarter", 0.25, 0.5},
		{"zero", 0, 0},
		{"neg-zero", math.Copysign(0, -1), 0},
		{"inf", math.Inf(1), math.Inf(1)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.SquareRoot(c.x)
			if err != nil {
				t.Fatalf("sqrt %g: unexpected error %v", c.x, err)
			}
			if r != c.r || math.Signbit(r) {
				t.Errorf("sqrt %g: want %g, got %g", c.x, c.r, r)
			}
		})
	}
}

func TestSquareRootDomain(t *testing.T) {
	for _, x := range []float64{-1, -0.5, math.Inf(-1), math.NaN()} {
		_, err := calc.SquareRoot(x)
		if !errors.Is(err, calc.ErrInvalidInput) {
			t.Errorf("sqrt %g: want ErrInvalidInput, got %v", x, err)
		}
		if errors.Is(err, calc.ErrDivisionByZero) {
			t.Errorf("sqrt %g: %v matches ErrDivisionByZero", x, err)
		}
	}
}

func TestContextSqrt(t *testing.T) {
	ctx := calc.NewContext(calc.Prec(100))
	r, err := ctx.Sqrt(big.NewFloat(2))
	if err != nil {
		t.Fatal(err)
	}
	want := new(big.Float).SetPrec(100).Sqrt(big.NewFloat(2))
	if r.Cmp(want) != 0 || r.Prec() != 100 {
		t.Errorf("want %g, got %g with precision %d", want, r, r.Prec())
	}
	x := big.NewFloat(-4)
	_, err = ctx.Sqrt(x)
	var de calc.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("want DomainError, got %#v", err)
	}
	if de.X.Cmp(x) != 0 || de.Func != "sqrt" {
		t.Errorf("wrong error: %+v", de)
	}
}
