package discard

import (
	"context"
	"io"
	"testing"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/exec"
	"github.com/mmrzaf/dataz/internal/kvtd"
	"github.com/mmrzaf/dataz/internal/logging"
)

func TestCountsRows(t *testing.T) {
	tg := NewDiscardTarget()
	rels := dataset.Relations(kvtd.New(kvtd.Config{ValBytes: 8, NumRows: 1234, MaxRowsPerBatch: 100}))
	stats, err := exec.NewExecutor(3, logging.NewLoggerWithWriter("error", io.Discard)).Execute(context.Background(), rels, tg, "create")
	if err != nil {
		t.Fatal(err)
	}
	if tg.Rows() != 1234 || stats.TotalRows != 1234 || stats.TotalBatches != 13 {
		t.Fatalf("unexpected counts: target %d, stats %+v", tg.Rows(), stats)
	}
}
