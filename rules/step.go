package rules

import (
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"golife/model"
)

// Step computes the next generation of the given grid. The input is read-only
// and is never modified; the result is a freshly allocated grid of the same
// dimension. Identical inputs always produce identical outputs.
func Step(g *model.Grid) (*model.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(err, "[Step] refusing to step invalid grid")
	}

	next, err := model.New(g.Size())
	if err != nil {
		return nil, errors.Wrap(err, "[Step] failed to allocate next generation")
	}

	stepRows(g, next, 0, g.Size())
	return next, nil
}

// StepParallel computes the next generation with rows sharded across one
// worker per CPU. Workers read the shared input and write disjoint rows of
// the output, so no locking is needed beyond the final join. A non-nil pool
// supplies the output grid; pass superseded grids back via pool.Put.
func StepParallel(g *model.Grid, pool *model.GridPool) (*model.Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(err, "[StepParallel] refusing to step invalid grid")
	}

	var next *model.Grid
	if pool != nil {
		next = pool.Get(g.Size())
	} else {
		var err error
		if next, err = model.New(g.Size()); err != nil {
			return nil, errors.Wrap(err, "[StepParallel] failed to allocate next generation")
		}
	}

	var (
		eg            errgroup.Group
		size          = g.Size()
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (size + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, size)
		)
		if startRow >= size {
			break
		}

		eg.Go(func() error {
			stepRows(g, next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[StepParallel] worker failed")
	}

	return next, nil
}

// stepRows applies the rule to every cell in rows [startRow, endRow) of cur,
// writing results into the corresponding rows of next
func stepRows(cur, next *model.Grid, startRow, endRow int) {
	size := cur.Size()
	for y := startRow; y < endRow; y++ {
		for x := 0; x < size; x++ {
			next.Set(x, y, ApplyConwayRules(cur.CountNeighbors(x, y), cur.Get(x, y)))
		}
	}
}
