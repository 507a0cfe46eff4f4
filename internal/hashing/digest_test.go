package hashing

import (
	"testing"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/kvtd"
	"github.com/mmrzaf/dataz/internal/tpcc"
)

func changelog(cfg kvtd.Config) dataset.Relation {
	return dataset.Erase[kvtd.Row](kvtd.NewChangelog(cfg))
}

func TestDigestIndependentOfBatching(t *testing.T) {
	a, rowsA := Relation(changelog(kvtd.Config{ValBytes: 16, NumRows: 100, MaxRowsPerBatch: 7}))
	b, rowsB := Relation(changelog(kvtd.Config{ValBytes: 16, NumRows: 100, MaxRowsPerBatch: 100}))
	if rowsA != 100 || rowsB != 100 {
		t.Fatalf("unexpected row counts %d %d", rowsA, rowsB)
	}
	if a != b {
		t.Fatal("same rows in different batch sizes should digest equal")
	}

	c, _ := Relation(changelog(kvtd.Config{ValBytes: 17, NumRows: 100, MaxRowsPerBatch: 7}))
	if a == c {
		t.Fatal("different values should digest differently")
	}
}

func TestDigestOfForkMatches(t *testing.T) {
	r := dataset.Erase[tpcc.WarehouseRow](tpcc.NewWarehouse(tpcc.Config{Warehouses: 3, Now: tpcc.Feb182023At1PM}))
	want, _ := Relation(r)
	got, _ := Relation(r.Fork())
	if got != want {
		t.Fatal("fork should produce identical rows")
	}
}

func TestDigestEmpty(t *testing.T) {
	got, rows := Relation(changelog(kvtd.Config{ValBytes: 4}))
	if rows != 0 {
		t.Fatalf("expected no rows, got %d", rows)
	}
	// sha256 of the empty input.
	if got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Fatalf("unexpected empty digest %s", got)
	}
}

func TestDigestDistinguishesTypes(t *testing.T) {
	if tagOf(nil) == tagOf("") {
		t.Fatal("null and empty string share a tag")
	}
	if tagOf(uint64(1)) == tagOf("1") {
		t.Fatal("number and string share a tag")
	}
}
