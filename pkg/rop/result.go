package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// channel is the closed set of Result alternatives: success[T] or failure.
type channel[T any] interface {
	isChannel()
}

type success[T any] struct {
	value T
}

func (success[T]) isChannel() {}

type failure struct {
	err error
}

func (failure) isChannel() {}

// Result holds exactly one of a success value of type T or an error.
// The zero value is a failure carrying ErrEmptyResult.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	ch        channel[T]
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		ch:        success[T]{value: r},
	}
}

// Fail builds a failed Result. A nil err is replaced by ErrNilError.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilError
	}
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		ch:        failure{err: err},
	}
}

// FailFrom re-expresses a failure over another payload type. The error value,
// id and creation time are carried unchanged.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.IsSuccess() {
		return Fail[Out](fmt.Errorf("%w: success carried as failure", ErrWrongChannel))
	}
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		ch:        failure{err: from.Err()},
	}
}

func (r Result[T]) IsSuccess() bool {
	_, ok := r.ch.(success[T])
	return ok
}

func (r Result[T]) IsFailure() bool {
	return !r.IsSuccess()
}

// Value returns the success value. On a failure it returns an error that
// wraps both ErrWrongChannel and the carried failure.
func (r Result[T]) Value() (T, error) {
	if s, ok := r.ch.(success[T]); ok {
		return s.value, nil
	}
	var zero T
	return zero, fmt.Errorf("%w: %w", ErrWrongChannel, r.Err())
}

func (r Result[T]) MustValue() T {
	v, err := r.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Err returns the carried error, or nil on success.
func (r Result[T]) Err() error {
	switch c := r.ch.(type) {
	case success[T]:
		return nil
	case failure:
		return c.err
	default:
		return ErrEmptyResult
	}
}

// Failure returns the carried error. Reading it from a success is an
// ErrWrongChannel access error.
func (r Result[T]) Failure() (err, accessErr error) {
	if r.IsSuccess() {
		return nil, fmt.Errorf("%w: result holds a value", ErrWrongChannel)
	}
	return r.Err(), nil
}

func (r Result[T]) MustErr() error {
	err, accessErr := r.Failure()
	if accessErr != nil {
		panic(accessErr)
	}
	return err
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

func (r Result[T]) String() string {
	if s, ok := r.ch.(success[T]); ok {
		return fmt.Sprint(s.value)
	}
	return r.Err().Error()
}
