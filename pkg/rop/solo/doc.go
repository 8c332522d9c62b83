// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T] and pass a context to every step. These functions form the
// core building blocks for error-aware pipelines without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out] (rop.Bind with a context)
// - Map/DoubleMap: transform successful values (with optional error map)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
//
// A failure is always carried forward unchanged; the first failure wins.
package solo
