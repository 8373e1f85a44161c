package core

import (
	"context"
	"sync"

	"github.com/ib-77/safevalidation/pkg/rop"
	"go.uber.org/zap"
)

// Locomotive pulls results from inputCh, runs engine on each and pushes the
// output to outCh until the input is drained or ctx is done.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out],
	engine func(ctx context.Context, input rop.Result[In]) rop.Result[Out],
	onProcessed func(ctx context.Context, out rop.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	log := LoggerFrom(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Debug("locomotive stopped", zap.Error(ctx.Err()))
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			pr := engine(ctx, in)
			if pr.IsFailure() {
				log.Debug("stage produced failure", zap.Strings("errors", pr.Errors()))
			}

			select {
			case <-ctx.Done():
				log.Debug("dropping processed result", zap.Error(ctx.Err()))
				return
			case outCh <- pr:
				if onProcessed != nil {
					onProcessed(ctx, pr)
				}
			}
		}
	}
}
