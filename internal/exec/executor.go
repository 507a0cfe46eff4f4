package exec

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/domain"
	"github.com/mmrzaf/dataz/internal/logging"
)

// Target is a destination for generated relations.
type Target interface {
	Connect() error
	Close() error
	// Open prepares the destination of one relation according to mode.
	Open(name string, schema dataset.Schema, mode string) (BatchWriter, error)
}

// BatchWriter receives the batches of one relation in index order. A batch
// is reused after WriteBatch returns, so writers must copy what they keep.
type BatchWriter interface {
	WriteBatch(b dataset.Batch) error
	Close() error
}

// Progress observes batch delivery. Implementations are called from the
// writing goroutine only.
type Progress interface {
	Start(relation string, batches int)
	Add(rows, goodBytes int)
	Finish()
}

// batchesInFlight bounds how many generated batches each worker may hold
// while the writer catches up.
const batchesInFlight = 2

type Executor struct {
	workers  int
	logger   *logging.Logger
	progress Progress
}

func NewExecutor(workers int, logger *logging.Logger) *Executor {
	return &Executor{workers: max(workers, 1), logger: logger}
}

// WithProgress sets the progress observer.
func (e *Executor) WithProgress(p Progress) *Executor {
	e.progress = p
	return e
}

// Execute writes every relation to target, one relation after another.
func (e *Executor) Execute(ctx context.Context, rels []dataset.Relation, target Target, mode string) (*domain.RunStats, error) {
	if err := target.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to target: %w", err)
	}
	defer target.Close()

	start := time.Now()
	stats := &domain.RunStats{
		RelationStats: make([]domain.RelationRunStats, 0, len(rels)),
	}

	for _, rel := range rels {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		w, err := target.Open(rel.Name(), rel.Schema(), mode)
		if err != nil {
			return stats, fmt.Errorf("failed to open relation '%s': %w", rel.Name(), err)
		}

		rs, err := e.executeRelation(ctx, rel, w)
		if cerr := w.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to finish relation '%s': %w", rel.Name(), cerr)
		}
		if err != nil {
			return stats, err
		}

		e.logger.Debugw("relation written", map[string]any{
			"relation":   rs.Relation,
			"batches":    rs.Batches,
			"rows":       rs.RowsGenerated,
			"good_bytes": rs.GoodBytes,
			"seconds":    rs.DurationSeconds,
		})
		stats.RelationStats = append(stats.RelationStats, rs)
		stats.TotalRows += rs.RowsGenerated
		stats.TotalBatches += rs.Batches
		stats.GoodBytes += rs.GoodBytes
	}

	stats.RelationsGenerated = len(rels)
	stats.DurationSeconds = time.Since(start).Seconds()
	return stats, nil
}

// executeRelation generates batches on e.workers goroutines and hands them to
// w in index order. Worker k owns its own fork of rel and generates batches
// k, k+n, k+2n, ... so its output queue is already ordered.
func (e *Executor) executeRelation(ctx context.Context, rel dataset.Relation, w BatchWriter) (domain.RelationRunStats, error) {
	start := time.Now()
	numBatches := rel.NumBatches()
	n := min(e.workers, max(numBatches, 1))

	rs := domain.RelationRunStats{Relation: rel.Name()}
	if e.progress != nil {
		e.progress.Start(rel.Name(), numBatches)
		defer e.progress.Finish()
	}

	g, ctx := errgroup.WithContext(ctx)

	ready := make([]chan dataset.Batch, n)
	free := make([]chan dataset.Batch, n)
	for k := 0; k < n; k++ {
		fork := rel.Fork()
		ready[k] = make(chan dataset.Batch, batchesInFlight)
		free[k] = make(chan dataset.Batch, batchesInFlight)
		for i := 0; i < batchesInFlight; i++ {
			free[k] <- fork.NewBatch()
		}

		g.Go(func() error {
			for idx := k; idx < numBatches; idx += n {
				var b dataset.Batch
				select {
				case b = <-free[k]:
				case <-ctx.Done():
					return ctx.Err()
				}
				fork.GenBatch(idx, b)
				select {
				case ready[k] <- b:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	g.Go(func() error {
		for idx := 0; idx < numBatches; idx++ {
			k := idx % n
			var b dataset.Batch
			select {
			case b = <-ready[k]:
			case <-ctx.Done():
				return ctx.Err()
			}
			if err := w.WriteBatch(b); err != nil {
				return fmt.Errorf("failed to write batch %d of relation '%s': %w", idx, rel.Name(), err)
			}
			rs.Batches++
			rs.RowsGenerated += int64(b.Len())
			rs.GoodBytes += int64(b.GoodBytes())
			if e.progress != nil {
				e.progress.Add(b.Len(), b.GoodBytes())
			}
			free[k] <- b
		}
		return nil
	})

	err := g.Wait()
	rs.DurationSeconds = time.Since(start).Seconds()
	return rs, err
}
