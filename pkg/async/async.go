package async

import (
	"context"
	"fmt"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await waits for the computation to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext waits for completion or for ctx to be done, whichever comes first.
// The computation keeps running when ctx ends first; only the wait is abandoned.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// IsComplete reports whether the computation has finished without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Resolved returns a Future that is already complete with v.
func Resolved[U any](v U) *Future[U] {
	f := &Future[U]{result: v, done: make(chan struct{})}
	close(f.done)
	return f
}

// Failed returns a Future that is already complete with err.
func Failed[U any](err error) *Future[U] {
	f := &Future[U]{err: err, done: make(chan struct{})}
	close(f.done)
	return f
}

// Async executes fn in its own goroutine and returns a Future for its result.
// A panic inside fn completes the Future with an error wrapping ErrPanicked.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				var zero U
				f.result = zero
				f.err = fmt.Errorf("%w: %v", ErrPanicked, r)
			}
		}()

		// Early exit prevents running work nobody is waiting for
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Then maps the result of f with fn once f completes.
// An error from f short-circuits fn.
func Then[U any, V any](ctx context.Context, f *Future[U], fn func(U) (V, error)) *Future[V] {
	if f.IsComplete() {
		res, err := f.Await()
		if err != nil {
			return Failed[V](err)
		}
		v, err := fn(res)
		if err != nil {
			return Failed[V](err)
		}
		return Resolved(v)
	}

	return Async(ctx, f, func(_ context.Context, src *Future[U]) (V, error) {
		res, err := src.Await()
		if err != nil {
			var zero V
			return zero, err
		}
		return fn(res)
	})
}

// WaitAll waits for every future and returns their results in order.
// The first error encountered (in slice order) is returned, but all futures
// are still awaited so no computation is left behind.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))

	var firstErr error
	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}

// All combines futures into a single Future completing with every result.
func All[U any](ctx context.Context, futures ...*Future[U]) *Future[[]U] {
	if len(futures) == 0 {
		return Resolved([]U{})
	}

	return Async(ctx, futures, func(_ context.Context, fs []*Future[U]) ([]U, error) {
		return WaitAll(fs...)
	})
}
