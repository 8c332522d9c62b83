package expensive

import (
	"go.uber.org/zap"

	"github.com/ib-77/monads/pkg/rop"
	"github.com/ib-77/monads/pkg/rop/maybe"
)

const ErrFailedToCreate rop.Marker = "Failed to create 'ExpensiveToCopy'"

// Accumulated is the value every Accumulate step produces.
const Accumulated = 42

const transformFill = 3

func (f *Factory) CreateMaybe(success bool) maybe.Maybe[Expensive] {
	if !success {
		return maybe.None[Expensive]()
	}
	return maybe.Some(f.New())
}

func (f *Factory) CreateResult(success bool) rop.Result[Expensive] {
	if !success {
		return rop.Fail[Expensive](ErrFailedToCreate)
	}
	return rop.Success(f.New())
}

// transform builds a fresh payload filled with transformFill and moves it
// out, closing the moved-from local.
func (f *Factory) transform(src Expensive) Expensive {
	f.log.Info("Transforming "+src.String(), zap.Int("id", src.id))
	local := f.New()
	for i := range local.data {
		local.data[i] = transformFill
	}
	out := local.Move()
	local.Close()
	return out
}

func (f *Factory) TransformMaybe(src Expensive) maybe.Maybe[Expensive] {
	return maybe.Some(f.transform(src))
}

func (f *Factory) TransformResult(src Expensive) rop.Result[Expensive] {
	return rop.Success(f.transform(src))
}

func (f *Factory) accumulate(src Expensive) int {
	f.log.Info("Accumulating "+src.String(), zap.Int("id", src.id))
	return Accumulated
}

func (f *Factory) AccumulateMaybe(src Expensive) maybe.Maybe[int] {
	return maybe.Some(f.accumulate(src))
}

func (f *Factory) AccumulateResult(src Expensive) rop.Result[int] {
	return rop.Success(f.accumulate(src))
}
