package chain

import (
	"context"

	"github.com/ib-77/monads/pkg/rop"
	"github.com/ib-77/monads/pkg/rop/maybe"
	"github.com/ib-77/monads/pkg/rop/solo"
)

type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: result}
}

func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// FromMaybe starts from m; an absent m becomes a failure carrying err.
func FromMaybe[T any](ctx context.Context, m maybe.Maybe[T], err error) *Chain[T] {
	return Start(ctx, maybe.ToResult(m, err))
}

func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Maybe drops the failure reason.
func (c *Chain[T]) Maybe() maybe.Maybe[T] {
	return maybe.FromResult(c.result)
}

func (c *Chain[T]) Err() error {
	return c.result.Err()
}

func follow[T, U any](c *Chain[T], next rop.Result[U]) *Chain[U] {
	return &Chain[U]{ctx: c.ctx, result: next}
}

func Then[T, U any](c *Chain[T], step func(context.Context, T) rop.Result[U]) *Chain[U] {
	return follow(c, rop.Bind(c.result, func(v T) rop.Result[U] {
		return step(c.ctx, v)
	}))
}

// ThenTry lifts a (U, error) step, e.g. a repository call.
func ThenTry[T, U any](c *Chain[T], step func(context.Context, T) (U, error)) *Chain[U] {
	return follow(c, rop.Bind(c.result, func(v T) rop.Result[U] {
		out, err := step(c.ctx, v)
		if err != nil {
			return rop.Fail[U](err)
		}
		return rop.Success(out)
	}))
}

func Map[T, U any](c *Chain[T], f func(context.Context, T) U) *Chain[U] {
	return follow(c, rop.Map(c.result, func(v T) U {
		return f(c.ctx, v)
	}))
}

// Validate fails with rop.Marker(errMsg) when check rejects the value.
func (c *Chain[T]) Validate(check func(context.Context, T) (ok bool, errMsg string)) *Chain[T] {
	return follow(c, c.result.Then(func(v T) rop.Result[T] {
		if ok, errMsg := check(c.ctx, v); !ok {
			return rop.Fail[T](rop.Marker(errMsg))
		}
		return c.result
	}))
}

// Ensure runs a side effect on success and returns c unchanged.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	if v, err := c.result.Value(); err == nil {
		onSuccess(c.ctx, v)
	}
	return c
}

func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
