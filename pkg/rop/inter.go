package rop

import (
	"time"

	"github.com/google/uuid"
)

// ValueProvider is implemented by containers that may hold a value of T.
type ValueProvider[T any] interface {
	// Value returns the held value or an access error
	Value() (T, error)
	// MustValue returns the held value and panics when there is none
	MustValue() T
}

// WithError defines an interface for types that hold either a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure is the complement of IsSuccess
	IsFailure() bool
}

// Traceable is implemented by values that keep their identity while being
// carried through a pipeline.
type Traceable interface {
	// Id identifies the value; a failure keeps its id across Bind
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

var (
	_ WithError[struct{}] = Result[struct{}]{}
	_ Traceable           = Result[struct{}]{}
)
