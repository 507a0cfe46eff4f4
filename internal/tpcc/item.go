package tpcc

import (
	"github.com/mmrzaf/dataz/internal/col"
	"github.com/mmrzaf/dataz/internal/dataset"
	g "github.com/mmrzaf/dataz/internal/generators"
	"github.com/mmrzaf/dataz/internal/rng"
)

// ItemRow is (i_id, i_im_id, i_name, i_price, i_data).
type ItemRow = col.T5[uint64, uint64, string, float64, string]

// Item is the ITEM relation. Each batch is one item.
type Item struct {
	config Config
	rng    rng.Rand

	iName []byte
	iData []byte
}

var (
	_ dataset.Table[ItemRow]  = (*Item)(nil)
	_ dataset.Forker[ItemRow] = (*Item)(nil)
)

// NewItem returns an ITEM instance with its own scratch buffers.
func NewItem(config Config) *Item {
	return &Item{
		config: config,
		iName:  make([]byte, 0, 24),
		iData:  make([]byte, 0, 50),
	}
}

func (t *Item) Name() string    { return "item" }
func (t *Item) NumBatches() int { return NumItems }

func (t *Item) Schema() dataset.Schema {
	return dataset.Schema{
		dataset.F("i_id", dataset.TypeUint64),
		dataset.F("i_im_id", dataset.TypeUint64),
		dataset.F("i_name", dataset.TypeString),
		dataset.F("i_price", dataset.TypeFloat64),
		dataset.F("i_data", dataset.TypeString),
	}
}

func (t *Item) NewBatch() col.Col[ItemRow] {
	return col.NewTuple5[uint64, uint64, string, float64, string](
		col.NewVec[uint64](1), col.NewVec[uint64](1), col.NewStrings(1, 24),
		col.NewVec[float64](1), col.NewStrings(1, 50),
	)
}

func (t *Item) Fork() dataset.Table[ItemRow] { return NewItem(t.config) }

func (t *Item) GenBatch(idx int, batch col.Col[ItemRow]) {
	batch.Clear()
	if idx < 0 || idx >= t.NumBatches() {
		return
	}
	r := &t.rng
	r.Seed(uint64(idx))

	iImID := uint64(g.Int(r, 1, 10_000))
	t.iName = g.AppendStringLen(t.iName[:0], r, g.AString, 14, 24)
	iPrice := g.Cents(r, 100, 10_000)
	t.iData = g.AppendOriginal(t.iData[:0], r)

	batch.Push(ItemRow{
		V0: uint64(idx),
		V1: iImID,
		V2: g.View(t.iName),
		V3: iPrice,
		V4: g.View(t.iData),
	})
}
