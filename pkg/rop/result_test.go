package rop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const errBoom Marker = "boom"

func TestSuccess_Channels(t *testing.T) {
	t.Parallel()

	r := Success(42)
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.NoError(t, r.Err())

	v, err := r.Value()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, "42", r.String())
	assert.NotZero(t, r.Id())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestFail_Channels(t *testing.T) {
	t.Parallel()

	r := Fail[int](errBoom)
	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.Equal(t, errBoom, r.Err())
	assert.Equal(t, "boom", r.String())

	err, accessErr := r.Failure()
	require.NoError(t, accessErr)
	assert.Equal(t, errBoom, err)
}

func TestValue_WrongChannel(t *testing.T) {
	t.Parallel()

	r := Fail[int](errBoom)
	v, err := r.Value()
	assert.Zero(t, v)
	assert.ErrorIs(t, err, ErrWrongChannel)
	assert.ErrorIs(t, err, errBoom)

	assert.PanicsWithError(t, err.Error(), func() {
		r.MustValue()
	})
}

func TestFailure_WrongChannel(t *testing.T) {
	t.Parallel()

	r := Success("ok")
	err, accessErr := r.Failure()
	assert.NoError(t, err)
	assert.ErrorIs(t, accessErr, ErrWrongChannel)

	assert.Panics(t, func() {
		_ = r.MustErr()
	})
}

func TestZeroValue_IsEmptyFailure(t *testing.T) {
	t.Parallel()

	var r Result[string]
	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), ErrEmptyResult)

	_, err := r.Value()
	assert.ErrorIs(t, err, ErrWrongChannel)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestFail_NilError(t *testing.T) {
	t.Parallel()

	r := Fail[int](nil)
	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), ErrNilError)
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	from := Fail[int](cause)
	to := FailFrom[int, string](from)

	assert.Equal(t, from.Id(), to.Id())
	assert.Equal(t, from.CreatedAt(), to.CreatedAt())
	assert.Same(t, cause, to.Err())
}

func TestFailFrom_Success(t *testing.T) {
	t.Parallel()

	to := FailFrom[int, string](Success(1))
	assert.ErrorIs(t, to.Err(), ErrWrongChannel)
}

func TestMarker_Is(t *testing.T) {
	t.Parallel()

	wrapped := errors.Join(errors.New("other"), errBoom)
	assert.ErrorIs(t, wrapped, errBoom)
	assert.NotErrorIs(t, wrapped, Marker("bam"))
}
