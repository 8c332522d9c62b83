// Package demo runs the labelled Maybe and Result demonstrations against the
// traced expensive payload.
package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/ib-77/monads/internal/expensive"
	"github.com/ib-77/monads/pkg/rop"
	"github.com/ib-77/monads/pkg/rop/chain"
	"github.com/ib-77/monads/pkg/rop/maybe"
)

type run struct {
	label string
	exec  func(ctx context.Context, f *expensive.Factory) fmt.Stringer
}

type section struct {
	title string
	runs  []run
}

var sections = []section{
	{
		title: "Maybe type demo:",
		runs: []run{
			{"Binding a temporary that failed to create ...", func(ctx context.Context, f *expensive.Factory) fmt.Stringer {
				return maybe.Bind(f.CreateMaybe(false), f.AccumulateMaybe)
			}},
			{"Binding a retained instance ...", func(ctx context.Context, f *expensive.Factory) fmt.Stringer {
				named := f.CreateMaybe(true)
				return maybe.Bind(maybe.Map(named, expensive.Expensive.Clone), f.AccumulateMaybe)
			}},
			{"Binding a temporary ...", func(ctx context.Context, f *expensive.Factory) fmt.Stringer {
				return maybe.Bind(f.CreateMaybe(true), f.AccumulateMaybe)
			}},
			{"Binding a named instance handed over ...", func(ctx context.Context, f *expensive.Factory) fmt.Stringer {
				named := f.CreateMaybe(true)
				return maybe.Bind(named, f.AccumulateMaybe)
			}},
			{"Piping operations from an error value ...", func(ctx context.Context, f *expensive.Factory) fmt.Stringer {
				return maybe.Pipe2(f.CreateMaybe(false), f.TransformMaybe, f.AccumulateMaybe)
			}},
			{"Piping operations from a valid value ...", func(ctx context.Context, f *expensive.Factory) fmt.Stringer {
				return maybe.Pipe2(f.CreateMaybe(true), f.TransformMaybe, f.AccumulateMaybe)
			}},
		},
	},
	{
		title: "Result type demo:",
		runs: []run{
			{"Binding a temporary that failed to create ...", func(ctx context.Context, f *expensive.Factory) fmt.Stringer {
				return rop.Bind(f.CreateResult(false), f.AccumulateResult)
			}},
			{"Binding a retained instance ...", func(ctx context.Context, f *expensive.Factory) fmt.Stringer {
				named := f.CreateResult(true)
				return rop.Bind(rop.Map(named, expensive.Expensive.Clone), f.AccumulateResult)
			}},
			{"Binding a temporary ...", func(ctx context.Context, f *expensive.Factory) fmt.Stringer {
				return rop.Bind(f.CreateResult(true), f.AccumulateResult)
			}},
			{"Binding a named instance handed over ...", func(ctx context.Context, f *expensive.Factory) fmt.Stringer {
				named := f.CreateResult(true)
				return rop.Bind(named, f.AccumulateResult)
			}},
			{"Piping operations from an error value ...", func(ctx context.Context, f *expensive.Factory) fmt.Stringer {
				return chainSteps(ctx, f, f.CreateResult(false))
			}},
			{"Piping operations from a valid value ...", func(ctx context.Context, f *expensive.Factory) fmt.Stringer {
				return chainSteps(ctx, f, f.CreateResult(true))
			}},
		},
	},
}

func chainSteps(ctx context.Context, f *expensive.Factory, src rop.Result[expensive.Expensive]) rop.Result[int] {
	transform := func(_ context.Context, e expensive.Expensive) rop.Result[expensive.Expensive] {
		return f.TransformResult(e)
	}
	accumulate := func(_ context.Context, e expensive.Expensive) rop.Result[int] {
		return f.AccumulateResult(e)
	}
	return chain.Then(chain.Then(chain.Start(ctx, src), transform), accumulate).Result()
}

// Run writes every section to w, prefixing each line with execName. Every
// payload still alive at the end of a run is destroyed before the next one.
func Run(ctx context.Context, w io.Writer, execName string, f *expensive.Factory) {
	for _, s := range sections {
		fmt.Fprintf(w, "%s: %s\n", execName, s.title)
		for _, r := range s.runs {
			fmt.Fprintf(w, "%s: %s\n", execName, r.label)
			result := r.exec(ctx, f)
			f.ReleaseAll()
			fmt.Fprintf(w, "%s: %s\n\n", execName, result)
		}
	}
}
