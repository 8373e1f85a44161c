package lite

import (
	"context"
	"runtime"
	"sync"

	"github.com/ib-77/safevalidation/pkg/rop"
	"github.com/ib-77/safevalidation/pkg/rop/core"
	"github.com/ib-77/safevalidation/pkg/rop/solo"
	"go.uber.org/zap"
)

// Stage transforms one result into another.
type Stage[In, Out any] func(ctx context.Context, input rop.Result[In]) rop.Result[Out]

func Run[T any](ctx context.Context, inputCh <-chan rop.Result[T], engine Stage[T, T], lines int) <-chan rop.Result[T] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout runs engine on lines goroutines. A non-positive lines falls back to
// the worker count stored in ctx, then to GOMAXPROCS.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine Stage[In, Out], lines int) <-chan rop.Result[Out] {

	if lines <= 0 {
		lines = core.GetWorkerMaxCount(ctx, runtime.GOMAXPROCS(0))
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Validate[T any](valid func(ctx context.Context, in T) bool, errMsg string) Stage[T, T] {
	return func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.AndValidate(input, func(in T) bool { return valid(ctx, in) }, errMsg)
	}
}

// Check runs an accumulating validator on every successful item.
func Check[T any](validate func(ctx context.Context, in T) rop.Result[T]) Stage[T, T] {
	return func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Bind(input, func(in T) rop.Result[T] { return validate(ctx, in) })
	}
}

func Bind[In, Out any](bindOnSuccess func(ctx context.Context, r In) rop.Result[Out]) Stage[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Bind(input, func(r In) rop.Result[Out] { return bindOnSuccess(ctx, r) })
	}
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) Stage[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Map(input, func(r In) Out { return mapOnSuccess(ctx, r) })
	}
}

// Try calls a (value, error) function on every successful item. Its panics and
// errors become failures of that item only.
func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Stage[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Bind(input, func(r In) rop.Result[Out] {
			return rop.TryErr(func() (Out, error) { return onTryExecute(ctx, r) })
		})
	}
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnFailure func(ctx context.Context, errs []string) Out
}

func Finally[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	out := make(chan Out)
	log := core.LoggerFrom(ctx)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				log.Debug("finally stopped", zap.Error(ctx.Err()))
				return
			case in, ok := <-input:
				if !ok {
					return
				}

				v := solo.Finally(in,
					func(r In) Out { return handlers.OnSuccess(ctx, r) },
					func(errs []string) Out { return handlers.OnFailure(ctx, errs) })

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
