package hdkey

import (
	"context"
	"fmt"
	"runtime"

	"github.com/kaspanet/hdkeychain/infrastructure/logger"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DeriveRange derives the count children of parent starting at index first,
// using up to workers goroutines. If workers is not positive, runtime.NumCPU
// goroutines are used. The children are returned in index order. The first
// failing index or the cancellation of ctx aborts the whole range.
func DeriveRange(ctx context.Context, parent *ExtendedKey, first, count uint32, workers int) ([]*ExtendedKey, error) {
	if count == 0 {
		return nil, nil
	}
	if uint64(first)+uint64(count) > 1<<32 {
		str := fmt.Sprintf("range of %d children starting at %d overflows the index space", count, first)
		return nil, makeError(ErrInvalidPath, str)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	onEnd := logger.LogAndMeasureExecutionTime(log, "DeriveRange")
	defer onEnd()

	children := make([]*ExtendedKey, count)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for i := uint32(0); i < count; i++ {
		if groupCtx.Err() != nil {
			break
		}
		i := i
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			child, err := parent.Derive(first + i)
			if err != nil {
				return errors.Wrapf(err, "error deriving child %d", first+i)
			}
			children[i] = child
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	log.Debugf("Derived %d children starting at index %d", count, first)
	return children, nil
}
