// Package async runs functions in goroutines and collects their results as
// futures.
//
//	futures := make([]*async.Future[Receipt], len(sinks))
//	for i, s := range sinks {
//		futures[i] = async.Run(ctx, sub, s.Deliver)
//	}
//	receipts, err := async.All(ctx, futures...)
package async

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrTimeout   = errors.New("async: timed out waiting for result")
	ErrNoFutures = errors.New("async: no futures to wait for")
)

// Future is the pending result of a function started by Run.
type Future[U any] struct {
	done   chan struct{}
	result U
	err    error
}

// Run calls fn(ctx, param) in a new goroutine. fn is not called when ctx is
// already done; the future then holds ctx.Err(). A panic in fn is recovered
// into the future's error.
func Run[T, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("async: panic: %v", r)
			}
		}()
		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}
		f.result, f.err = fn(ctx, param)
	}()
	return f
}

// Done is closed when the result is available.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the result is ready or ctx is done.
func (f *Future[U]) Await(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// AwaitWithTimeout is Await bounded by d; it returns ErrTimeout when d elapses first.
func (f *Future[U]) AwaitWithTimeout(d time.Duration) (U, error) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-f.done:
		return f.result, f.err
	case <-t.C:
		var zero U
		return zero, ErrTimeout
	}
}

func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// All waits for every future and returns results in order. Errors of all
// failed futures are joined; results of successful ones are still returned.
func All[U any](ctx context.Context, futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	errs := make([]error, 0, len(futures))
	for i, f := range futures {
		res, err := f.Await(ctx)
		results[i] = res
		if err != nil {
			errs = append(errs, err)
		}
	}
	return results, errors.Join(errs...)
}

// Any returns the index and outcome of the first future to complete.
func Any[U any](ctx context.Context, futures ...*Future[U]) (int, U, error) {
	var zero U
	if len(futures) == 0 {
		return -1, zero, ErrNoFutures
	}

	first := make(chan int, len(futures))
	for i, f := range futures {
		go func() {
			select {
			case <-f.done:
				first <- i
			case <-ctx.Done():
			}
		}()
	}

	select {
	case i := <-first:
		return i, futures[i].result, futures[i].err
	case <-ctx.Done():
		return -1, zero, ctx.Err()
	}
}
