package fit

import (
	"context"
	"sync"
)

// FitTables fits a batch of tables and returns one TableResult per table,
// in input order. It is FitTablesContext with a background context.
func (a *Analyzer) FitTables(tables []Table, onProgress func(fraction float64)) ([]*TableResult, error) {
	return a.FitTablesContext(context.Background(), tables, onProgress)
}

// FitTablesContext fits a batch of tables, optionally in parallel
// (WithTableWorkers), and returns one TableResult per table in input order
// regardless of completion order.
//
// onProgress, when non-nil, is invoked after each table completes with the
// fraction completed/total. Invocations are serialized on a single
// goroutine; observed fractions are strictly increasing and reach 1.0 when
// the whole batch succeeds.
//
// Cancelling ctx stops feeding and fitting as soon as practical and returns
// ctx.Err(). On any error the partial results are discarded.
func (a *Analyzer) FitTablesContext(ctx context.Context, tables []Table, onProgress func(fraction float64)) ([]*TableResult, error) {
	total := len(tables)
	results := make([]*TableResult, total)

	workers := min(a.cfg.tableWorkers, total)
	if workers <= 1 {
		for i, t := range tables {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			r, err := a.fitTable(ctx, t)
			if err != nil {
				return nil, err
			}

			results[i] = r
			reportProgress(onProgress, i+1, total)
		}

		return results, nil
	}

	type job struct {
		index int
		table Table
	}
	type msg struct {
		index  int
		result *TableResult
		err    error
	}
	jobs := make(chan job, workers*2)
	out := make(chan msg, workers*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}

					r, err := a.fitTable(ctx, j.table)

					select {
					case out <- msg{index: j.index, result: r, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: re-sequences results and serializes progress callbacks.
	var (
		cerr      error
		cwg       sync.WaitGroup
		completed int
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for m := range out {
			if cerr != nil {
				continue
			}
			if m.err != nil {
				cerr = m.err
				continue
			}

			results[m.index] = m.result
			completed++
			reportProgress(onProgress, completed, total)
		}
	}()

	// Feed work
feed:
	for i, t := range tables {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{index: i, table: t}:
		}
	}

	close(jobs)
	wg.Wait()
	close(out)
	cwg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cerr != nil {
		return nil, cerr
	}

	return results, nil
}

func reportProgress(onProgress func(float64), completed, total int) {
	if onProgress != nil {
		onProgress(float64(completed) / float64(total))
	}
}
