package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/monads/pkg/rop"
)

func TestValidate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	even := func(ctx context.Context, in int) (bool, string) { return in%2 == 0, "odd" }

	if r := Validate(ctx, 2, even); !r.IsSuccess() || r.MustValue() != 2 {
		t.Fatalf("expected success with 2, got %v", r)
	}

	r := Validate(ctx, 3, even)
	if !errors.Is(r.Err(), rop.Marker("odd")) {
		t.Fatalf("expected 'odd' failure, got %v", r.Err())
	}

	called := false
	failed := AndValidate(ctx, Fail[int](errors.New("first")), func(ctx context.Context, in int) (bool, string) {
		called = true
		return false, "second"
	})
	if called || failed.Err().Error() != "first" {
		t.Fatalf("expected first failure to win, called=%v err=%v", called, failed.Err())
	}
}

func TestSwitch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Switch(ctx, Succeed(4), func(ctx context.Context, r int) rop.Result[string] {
		return rop.Success(strconv.Itoa(r))
	})
	if out.MustValue() != "4" {
		t.Fatalf("expected '4', got %v", out)
	}

	cause := errors.New("cause")
	calls := 0
	failed := Switch(ctx, Fail[int](cause), func(ctx context.Context, r int) rop.Result[string] {
		calls++
		return rop.Success("x")
	})
	if calls != 0 || !errors.Is(failed.Err(), cause) {
		t.Fatalf("expected carried failure and no call, calls=%d err=%v", calls, failed.Err())
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ok := Try(ctx, Succeed("12"), func(ctx context.Context, r string) (int, error) {
		return strconv.Atoi(r)
	})
	if ok.MustValue() != 12 {
		t.Fatalf("expected 12, got %v", ok)
	}

	bad := Try(ctx, Succeed("x"), func(ctx context.Context, r string) (int, error) {
		return strconv.Atoi(r)
	})
	var numErr *strconv.NumError
	if !errors.As(bad.Err(), &numErr) {
		t.Fatalf("expected strconv error, got %v", bad.Err())
	}
}

func TestTeeAndDoubleTee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seen := 0
	Tee(ctx, Succeed(1), func(ctx context.Context, r rop.Result[int]) { seen += r.MustValue() })
	Tee(ctx, Fail[int](errors.New("x")), func(ctx context.Context, r rop.Result[int]) { seen += 100 })
	TeeIf(ctx, Succeed(2),
		func(ctx context.Context, r rop.Result[int]) bool { return r.MustValue() > 1 },
		func(ctx context.Context, r rop.Result[int]) { seen += r.MustValue() })
	TeeIf(ctx, Succeed(0),
		func(ctx context.Context, r rop.Result[int]) bool { return r.MustValue() > 1 },
		func(ctx context.Context, r rop.Result[int]) { seen += 100 })
	if seen != 3 {
		t.Fatalf("expected 3, got %d", seen)
	}

	var onOk, onErr int
	DoubleTee(ctx, Succeed(1),
		func(ctx context.Context, r int) { onOk++ },
		func(ctx context.Context, err error) { onErr++ })
	DoubleTee(ctx, Fail[int](errors.New("x")),
		func(ctx context.Context, r int) { onOk++ },
		func(ctx context.Context, err error) { onErr++ })
	if onOk != 1 || onErr != 1 {
		t.Fatalf("expected one call each, got ok=%d err=%d", onOk, onErr)
	}
}

func TestDoubleMap(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := DoubleMap(ctx, Succeed(2),
		func(ctx context.Context, r int) string { return strconv.Itoa(r) },
		func(ctx context.Context, err error) string { return "" })
	if out.MustValue() != "2" {
		t.Fatalf("expected '2', got %v", out)
	}

	cause := errors.New("cause")
	seen := ""
	failed := DoubleMap(ctx, Fail[int](cause),
		func(ctx context.Context, r int) string { return "" },
		func(ctx context.Context, err error) string { seen = err.Error(); return seen })
	if seen != "cause" || !errors.Is(failed.Err(), cause) {
		t.Fatalf("expected carried failure, seen=%q err=%v", seen, failed.Err())
	}
}

func TestFailOnErrorAndFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	errTooBig := rop.Marker("too big")

	check := func(ctx context.Context, in int) error {
		if in > 10 {
			return errTooBig
		}
		return nil
	}

	render := func(r rop.Result[int]) string {
		return Finally(ctx, r,
			func(ctx context.Context, v int) string { return "ok:" + strconv.Itoa(v) },
			func(ctx context.Context, err error) string { return "err:" + err.Error() })
	}

	if got := render(FailOnError(ctx, Succeed(5), check)); got != "ok:5" {
		t.Fatalf("expected ok:5, got %q", got)
	}
	if got := render(FailOnError(ctx, Succeed(50), check)); got != "err:too big" {
		t.Fatalf("expected err:too big, got %q", got)
	}
}
