package rop

// Bind applies f to the success value of r. A failure is carried over to
// Result[R] unchanged and f is not called.
func Bind[T, R any](r Result[T], f func(T) Result[R]) Result[R] {
	s, ok := r.ch.(success[T])
	if !ok {
		return FailFrom[T, R](r)
	}
	return f(s.value)
}

// Map is Bind for steps that cannot fail.
func Map[T, R any](r Result[T], f func(T) R) Result[R] {
	return Bind(r, func(v T) Result[R] {
		return Success(f(v))
	})
}

// Then is the same-type pipe: r.Then(f).Then(g) stops at the first failure.
func (r Result[T]) Then(f func(T) Result[T]) Result[T] {
	return Bind(r, f)
}

func Pipe[T any](r Result[T], steps ...func(T) Result[T]) Result[T] {
	for _, step := range steps {
		if r.IsFailure() {
			return r
		}
		r = step(r.MustValue())
	}
	return r
}

func Pipe2[A, B, C any](r Result[A], f1 func(A) Result[B], f2 func(B) Result[C]) Result[C] {
	return Bind(Bind(r, f1), f2)
}

func Pipe3[A, B, C, D any](r Result[A],
	f1 func(A) Result[B], f2 func(B) Result[C], f3 func(C) Result[D]) Result[D] {
	return Bind(Pipe2(r, f1, f2), f3)
}

func Pipe4[A, B, C, D, E any](r Result[A],
	f1 func(A) Result[B], f2 func(B) Result[C], f3 func(C) Result[D], f4 func(D) Result[E]) Result[E] {
	return Bind(Pipe3(r, f1, f2, f3), f4)
}
