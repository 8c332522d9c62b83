package maybe

import (
	"fmt"

	"github.com/ib-77/monads/pkg/rop"
)

// Maybe holds zero or one value of type T. The zero value is absent.
type Maybe[T any] struct {
	value T
	ok    bool
}

var _ rop.ValueProvider[struct{}] = Maybe[struct{}]{}

func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr is absent for a nil pointer and holds a copy of *p otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk lifts a comma-ok pair.
func FromOk[T any](v T, ok bool) Maybe[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (m Maybe[T]) IsSome() bool {
	return m.ok
}

func (m Maybe[T]) IsNone() bool {
	return !m.ok
}

// Get is the checked access: it never fails, ok reports presence.
func (m Maybe[T]) Get() (v T, ok bool) {
	return m.value, m.ok
}

func (m Maybe[T]) Value() (T, error) {
	if !m.ok {
		var zero T
		return zero, fmt.Errorf("%w: maybe is empty", rop.ErrInvalidAccess)
	}
	return m.value, nil
}

func (m Maybe[T]) MustValue() T {
	v, err := m.Value()
	if err != nil {
		panic(err)
	}
	return v
}

func (m Maybe[T]) Or(fallback T) T {
	if !m.ok {
		return fallback
	}
	return m.value
}

func (m Maybe[T]) String() string {
	if !m.ok {
		return "No value"
	}
	return fmt.Sprint(m.value)
}

// Bind applies f to a present value. An absent m yields None[R] without
// calling f.
func Bind[T, R any](m Maybe[T], f func(T) Maybe[R]) Maybe[R] {
	if !m.ok {
		return None[R]()
	}
	return f(m.value)
}

func Map[T, R any](m Maybe[T], f func(T) R) Maybe[R] {
	return Bind(m, func(v T) Maybe[R] {
		return Some(f(v))
	})
}

func (m Maybe[T]) Then(f func(T) Maybe[T]) Maybe[T] {
	return Bind(m, f)
}

func Pipe[T any](m Maybe[T], steps ...func(T) Maybe[T]) Maybe[T] {
	for _, step := range steps {
		if !m.ok {
			return m
		}
		m = step(m.value)
	}
	return m
}

func Pipe2[A, B, C any](m Maybe[A], f1 func(A) Maybe[B], f2 func(B) Maybe[C]) Maybe[C] {
	return Bind(Bind(m, f1), f2)
}

func Pipe3[A, B, C, D any](m Maybe[A],
	f1 func(A) Maybe[B], f2 func(B) Maybe[C], f3 func(C) Maybe[D]) Maybe[D] {
	return Bind(Pipe2(m, f1, f2), f3)
}

func Pipe4[A, B, C, D, E any](m Maybe[A],
	f1 func(A) Maybe[B], f2 func(B) Maybe[C], f3 func(C) Maybe[D], f4 func(D) Maybe[E]) Maybe[E] {
	return Bind(Pipe3(m, f1, f2, f3), f4)
}

// FromResult keeps the success value and drops the error.
func FromResult[T any](r rop.Result[T]) Maybe[T] {
	v, err := r.Value()
	if err != nil {
		return None[T]()
	}
	return Some(v)
}

// ToResult turns absence into a failure carrying err.
func ToResult[T any](m Maybe[T], err error) rop.Result[T] {
	if !m.ok {
		return rop.Fail[T](err)
	}
	return rop.Success(m.value)
}
