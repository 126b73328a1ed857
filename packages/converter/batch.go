package converter

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
)

// ConvertFunc converts a single input. Converter.Convert is the default.
type ConvertFunc func(input string) Result

// BatchConverter converts many inputs concurrently on a bounded worker pool.
type BatchConverter struct {
	convert ConvertFunc
	pool    *ants.Pool
}

// NewBatchConverter creates a BatchConverter that runs convert on at most workerCount goroutines.
func NewBatchConverter(convert ConvertFunc, workerCount int) (*BatchConverter, error) {
	pool, err := ants.NewPool(workerCount, ants.WithNonblocking(false))
	if err != nil {
		return nil, errors.Errorf("failed to create worker pool: %w", err)
	}

	return &BatchConverter{
		convert: convert,
		pool:    pool,
	}, nil
}

// ConvertBatch converts all inputs and returns their results in input order. Every result carries its own
// error. Inputs that were not converted before ctx is done fail with the context error.
func (b *BatchConverter) ConvertBatch(ctx context.Context, inputs []string) []Result {
	results := make([]Result, len(inputs))

	var wg sync.WaitGroup
	for i, input := range inputs {
		i, input := i, input

		if err := ctx.Err(); err != nil {
			results[i] = abortedResult(input, err)
			continue
		}

		wg.Add(1)
		if err := b.pool.Submit(func() {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				results[i] = abortedResult(input, err)
				return
			}
			results[i] = b.convert(input)
		}); err != nil {
			wg.Done()
			results[i] = abortedResult(input, errors.Errorf("failed to schedule conversion: %w", err))
		}
	}
	wg.Wait()

	return results
}

// Running returns the number of workers that are currently converting.
func (b *BatchConverter) Running() int {
	return b.pool.Running()
}

// Shutdown releases the worker pool.
func (b *BatchConverter) Shutdown() {
	b.pool.Release()
}

func abortedResult(input string, err error) Result {
	return Result{
		Input:     input,
		Direction: DirectionOf(input),
		Err:       errors.WithStack(err),
	}
}
