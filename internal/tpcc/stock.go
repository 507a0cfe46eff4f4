package tpcc

import (
	"fmt"

	"github.com/mmrzaf/dataz/internal/col"
	"github.com/mmrzaf/dataz/internal/dataset"
	g "github.com/mmrzaf/dataz/internal/generators"
	"github.com/mmrzaf/dataz/internal/rng"
)

// emittedDists is how many of the ten s_dist_xx strings appear in rows.
// All ten are drawn so the s_data draw stays in place.
const emittedDists = 5

// StockRow is (s_i_id, s_w_id, s_quantity, s_dist_01..s_dist_05, s_ytd,
// s_order_cnt, s_remote_cnt, s_data).
type StockRow = col.T12[uint64, uint64, uint64, string, string, string, string, string, uint64, uint64, uint64, string]

// Stock is the STOCK relation. Each batch is one stock entry.
type Stock struct {
	config Config
	rng    rng.Rand

	dists [10][]byte
	data  []byte
}

var (
	_ dataset.Table[StockRow]  = (*Stock)(nil)
	_ dataset.Forker[StockRow] = (*Stock)(nil)
)

// NewStock returns a STOCK instance with its own scratch buffers.
func NewStock(config Config) *Stock {
	t := &Stock{config: config, data: make([]byte, 0, 50)}
	for i := range t.dists {
		t.dists[i] = make([]byte, 0, 24)
	}
	return t
}

func (t *Stock) Name() string    { return "stock" }
func (t *Stock) NumBatches() int { return t.config.Warehouses * NumStockPerWarehouse }

func (t *Stock) Schema() dataset.Schema {
	s := dataset.Schema{
		dataset.F("s_i_id", dataset.TypeUint64),
		dataset.F("s_w_id", dataset.TypeUint64),
		dataset.F("s_quantity", dataset.TypeUint64),
	}
	for i := 1; i <= emittedDists; i++ {
		s = append(s, dataset.F(fmt.Sprintf("s_dist_%02d", i), dataset.TypeString))
	}
	return append(s,
		dataset.F("s_ytd", dataset.TypeUint64),
		dataset.F("s_order_cnt", dataset.TypeUint64),
		dataset.F("s_remote_cnt", dataset.TypeUint64),
		dataset.F("s_data", dataset.TypeString),
	)
}

func (t *Stock) NewBatch() col.Col[StockRow] {
	return col.NewTuple12[uint64, uint64, uint64, string, string, string, string, string, uint64, uint64, uint64, string](
		col.NewVec[uint64](1), col.NewVec[uint64](1), col.NewVec[uint64](1),
		col.NewStrings(1, 24), col.NewStrings(1, 24), col.NewStrings(1, 24),
		col.NewStrings(1, 24), col.NewStrings(1, 24),
		col.NewVec[uint64](1), col.NewVec[uint64](1), col.NewVec[uint64](1),
		col.NewStrings(1, 50),
	)
}

func (t *Stock) Fork() dataset.Table[StockRow] { return NewStock(t.config) }

func (t *Stock) GenBatch(idx int, batch col.Col[StockRow]) {
	batch.Clear()
	if idx < 0 || idx >= t.NumBatches() {
		return
	}
	r := &t.rng
	r.Seed(uint64(idx))

	sID := uint64(idx)
	sQuantity := uint64(g.Int(r, 10, 100))
	for i := range t.dists {
		t.dists[i] = g.AppendString(t.dists[i][:0], r, g.AString, 24)
	}
	t.data = g.AppendOriginal(t.data[:0], r)

	batch.Push(StockRow{
		V0:  sID,
		V1:  sID / NumStockPerWarehouse,
		V2:  sQuantity,
		V3:  g.View(t.dists[0]),
		V4:  g.View(t.dists[1]),
		V5:  g.View(t.dists[2]),
		V6:  g.View(t.dists[3]),
		V7:  g.View(t.dists[4]),
		V8:  0,
		V9:  0,
		V10: 0,
		V11: g.View(t.data),
	})
}
