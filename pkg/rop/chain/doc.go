// Package chain threads a context through a sequence of Result steps.
//
// A Chain[T] is a rop.Result[T] plus the context every step receives. Steps
// are applied with rop.Bind, so the first failure stops the chain and is
// carried to the end untouched: same error value, same id, same creation
// time, whatever payload types the later steps would have produced.
//
// FromMaybe and (*Chain).Maybe move between a chain and maybe.Maybe.
package chain
