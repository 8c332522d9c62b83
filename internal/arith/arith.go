// Package arith holds the integer steps used to exercise Maybe and Result
// pipelines: multiply by one, 42 mod x and square root.
package arith

import (
	"math"

	"github.com/ib-77/monads/pkg/rop"
	"github.com/ib-77/monads/pkg/rop/maybe"
)

const Dividend = 42

const (
	ErrDivisionByZero        rop.Marker = "Division by zero"
	ErrSqrtNegative          rop.Marker = "Trying to square root negative integer"
	ErrInvalidInitialization rop.Marker = "Invalid initialization"
)

func MultiplyOneMaybe(a int) maybe.Maybe[int] {
	return maybe.Some(1 * a)
}

// ModuloMaybe is absent for a zero divisor.
func ModuloMaybe(a int) maybe.Maybe[int] {
	if a == 0 {
		return maybe.None[int]()
	}
	return maybe.Some(Dividend % a)
}

// SquareRootMaybe is absent for negative input.
func SquareRootMaybe(a int) maybe.Maybe[float32] {
	if a < 0 {
		return maybe.None[float32]()
	}
	return maybe.Some(float32(math.Sqrt(float64(a))))
}

func MultiplyOne(a int) rop.Result[int] {
	return rop.Success(1 * a)
}

func Modulo(a int) rop.Result[int] {
	if a == 0 {
		return rop.Fail[int](ErrDivisionByZero)
	}
	return rop.Success(Dividend % a)
}

func SquareRoot(a int) rop.Result[float32] {
	if a < 0 {
		return rop.Fail[float32](ErrSqrtNegative)
	}
	return rop.Success(float32(math.Sqrt(float64(a))))
}
