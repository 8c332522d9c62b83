// Package maybe provides Maybe[T], an optional value that is either present
// or absent, with the same chaining surface as rop.Result:
// - Some/None/FromPtr/FromOk: construct a Maybe
// - Bind/Map: apply a step to a present value, skip it otherwise
// - Then/Pipe/Pipe2..Pipe4: chain steps, stopping at the first absence
// - FromResult/ToResult: move between Maybe and rop.Result
//
// Absence carries no diagnostic. Use rop.Result when the reason matters.
package maybe
