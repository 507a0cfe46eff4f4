package kvtd

import (
	"bytes"
	"testing"

	"github.com/mmrzaf/dataz/internal/col"
	"github.com/mmrzaf/dataz/internal/dataset"
)

func TestAppendHex(t *testing.T) {
	cases := map[uint64]string{
		0:          "0000000000000000",
		1:          "0000000000000001",
		2:          "0000000000000002",
		9:          "0000000000000009",
		10:         "000000000000000a",
		15:         "000000000000000f",
		16:         "0000000000000010",
		17:         "0000000000000011",
		0xdeadbeef: "00000000deadbeef",
		^uint64(0): "ffffffffffffffff",
	}
	for x, want := range cases {
		if got := string(AppendHex(nil, x)); got != want {
			t.Fatalf("AppendHex(%d) = %q, want %q", x, got, want)
		}
	}
}

func TestSingleBatch(t *testing.T) {
	c := NewChangelog(Config{ValBytes: 4, NumRows: 3, MaxRowsPerBatch: 3})
	if c.NumBatches() != 1 {
		t.Fatalf("expected 1 batch, got %d", c.NumBatches())
	}
	b := c.NewBatch()
	c.GenBatch(0, b)
	if b.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", b.Len())
	}

	wantKeys := []string{"0000000000000000", "0000000000000001", "0000000000000002"}
	wantVals := [][]byte{{197, 153, 189, 113}, {138, 50, 122, 226}, {79, 203, 55, 83}}
	for i := 0; i < 3; i++ {
		row := b.Get(i)
		if row.V0 != wantKeys[i] {
			t.Fatalf("row %d key: %q", i, row.V0)
		}
		if !bytes.Equal(row.V1, wantVals[i]) {
			t.Fatalf("row %d value: %v", i, row.V1)
		}
		if row.V2 != uint64(i) || row.V3 != 1 {
			t.Fatalf("row %d time/diff: %d/%d", i, row.V2, row.V3)
		}
	}
}

func TestBatchSizes(t *testing.T) {
	cases := []struct {
		cfg     Config
		batches int
	}{
		{Config{ValBytes: 1, NumRows: 0, MaxRowsPerBatch: 10}, 0},
		{Config{ValBytes: 1, NumRows: 5, MaxRowsPerBatch: 100}, 1},
		{Config{ValBytes: 1, NumRows: 25, MaxRowsPerBatch: 10}, 3},
		{Config{ValBytes: 1, NumRows: 30, MaxRowsPerBatch: 10}, 3},
	}
	for _, tc := range cases {
		c := NewChangelog(tc.cfg)
		if c.NumBatches() != tc.batches {
			t.Fatalf("%+v: expected %d batches, got %d", tc.cfg, tc.batches, c.NumBatches())
		}
		b := c.NewBatch()
		total := 0
		for idx := 0; idx <= c.NumBatches(); idx++ {
			c.GenBatch(idx, b)
			want := 0
			if idx < c.NumBatches() {
				want = min(tc.cfg.MaxRowsPerBatch, tc.cfg.NumRows-idx*tc.cfg.MaxRowsPerBatch)
			}
			if b.Len() != want {
				t.Fatalf("%+v batch %d: len %d, want %d", tc.cfg, idx, b.Len(), want)
			}
			total += b.Len()
		}
		if total != tc.cfg.NumRows {
			t.Fatalf("%+v: expected %d rows, got %d", tc.cfg, tc.cfg.NumRows, total)
		}
	}
}

func TestGlobalRowIndex(t *testing.T) {
	c := NewChangelog(Config{ValBytes: 4, NumRows: 25, MaxRowsPerBatch: 10})
	b := c.NewBatch()
	c.GenBatch(2, b)
	first := b.Get(0)
	if first.V0 != "0000000000000014" || first.V2 != 20 {
		t.Fatalf("batch 2 should start at row 20, got key %q time %d", first.V0, first.V2)
	}
	if !bytes.Equal(first.V1, AppendValue(nil, 20, 4)) {
		t.Fatalf("value not seeded by the global index: %v", first.V1)
	}
}

func TestDeterministic(t *testing.T) {
	cfg := Config{ValBytes: 16, NumRows: 1000, MaxRowsPerBatch: 64}
	a, b := NewChangelog(cfg), NewChangelog(cfg)
	ba, bb := a.NewBatch(), b.NewBatch()

	// Different generation orders must agree.
	b.GenBatch(3, bb)
	b.GenBatch(7, bb)
	for _, idx := range []int{7, 0, 15} {
		a.GenBatch(idx, ba)
		b.GenBatch(idx, bb)
		if !sameBatch(ba, bb) {
			t.Fatalf("batch %d differs between instances", idx)
		}
	}
}

func TestSet(t *testing.T) {
	set := New(Config{ValBytes: 4, NumRows: 3, MaxRowsPerBatch: 2})
	dts := dataset.DynTables(set)
	if len(dts) != 1 || dts[0].Name() != "kvtd" || dts[0].NumBatches() != 2 {
		t.Fatalf("unexpected tables: %+v", dts)
	}
	rows := dataset.Head(dataset.Relations(set)[0], 10)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[2][0] != "0000000000000002" || rows[2][2] != uint64(2) || rows[2][3] != int64(1) {
		t.Fatalf("unexpected projected row %#v", rows[2])
	}
}

func TestBatchLargerThanRelation(t *testing.T) {
	c := NewChangelog(Config{ValBytes: 4, NumRows: 3, MaxRowsPerBatch: 1 << 40})
	if c.NumBatches() != 1 {
		t.Fatalf("expected 1 batch, got %d", c.NumBatches())
	}
	b := c.NewBatch()
	c.GenBatch(0, b)
	if b.Len() != 3 || b.Get(2).V0 != "0000000000000002" {
		t.Fatalf("unexpected batch of %d rows", b.Len())
	}
	c.GenBatch(1, b)
	if b.Len() != 0 {
		t.Fatalf("expected empty batch past the end, got %d rows", b.Len())
	}
}

func TestWideBatchReservationIsBounded(t *testing.T) {
	c := NewChangelog(Config{ValBytes: 1 << 20, NumRows: 1 << 30, MaxRowsPerBatch: 1 << 30})
	b := c.NewBatch()
	if b.Len() != 0 || b.GoodBytes() != 0 {
		t.Fatalf("new batch should be empty, got %d rows", b.Len())
	}
}

func sameBatch(a, b col.Col[Row]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		ra, rb := a.Get(i), b.Get(i)
		if ra.V0 != rb.V0 || !bytes.Equal(ra.V1, rb.V1) || ra.V2 != rb.V2 || ra.V3 != rb.V3 {
			return false
		}
	}
	return true
}
