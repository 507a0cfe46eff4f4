package tpcc

import (
	"github.com/mmrzaf/dataz/internal/col"
	"github.com/mmrzaf/dataz/internal/dataset"
	g "github.com/mmrzaf/dataz/internal/generators"
	"github.com/mmrzaf/dataz/internal/rng"
)

// delivered reports whether order oID of a district has been delivered.
// The undelivered orders are exactly the NEW-ORDER window.
func delivered(oID uint64) bool {
	return oID < firstNewOrder
}

// orderLineCount returns the number of lines of the order with global index
// orderIdx. It is the first draw of ORDER-LINE batch orderIdx, so ORDER and
// ORDER-LINE agree.
func orderLineCount(r *rng.Rand, orderIdx int) int {
	r.Seed(uint64(orderIdx))
	return g.Int(r, 5, 15)
}

// OrderRow is (o_id, o_c_id, o_d_id, o_w_id, o_entry_d, o_carrier_id,
// o_ol_cnt, o_all_local).
type OrderRow = col.T8[uint64, uint64, uint64, uint64, DateTime, col.Option[uint64], uint64, uint64]

// Order is the ORDER relation. Each batch is the orders of one district,
// assigned to the district's customers by a random permutation.
type Order struct {
	config Config
	rng    rng.Rand
	lines  rng.Rand

	cIDs []uint64
}

var (
	_ dataset.Table[OrderRow]  = (*Order)(nil)
	_ dataset.Forker[OrderRow] = (*Order)(nil)
)

// NewOrder returns an ORDER instance with its own scratch buffers.
func NewOrder(config Config) *Order {
	return &Order{config: config, cIDs: make([]uint64, 0, NumOrdersPerDistrict)}
}

func (t *Order) Name() string    { return "order" }
func (t *Order) NumBatches() int { return t.config.districts() }

func (t *Order) Schema() dataset.Schema {
	return dataset.Schema{
		dataset.F("o_id", dataset.TypeUint64),
		dataset.F("o_c_id", dataset.TypeUint64),
		dataset.F("o_d_id", dataset.TypeUint64),
		dataset.F("o_w_id", dataset.TypeUint64),
		dataset.F("o_entry_d", dataset.TypeUint64),
		dataset.Null("o_carrier_id", dataset.TypeUint64),
		dataset.F("o_ol_cnt", dataset.TypeUint64),
		dataset.F("o_all_local", dataset.TypeUint64),
	}
}

func (t *Order) NewBatch() col.Col[OrderRow] {
	n := NumOrdersPerDistrict
	return col.NewTuple8[uint64, uint64, uint64, uint64, DateTime, col.Option[uint64], uint64, uint64](
		col.NewVec[uint64](n), col.NewVec[uint64](n), col.NewVec[uint64](n), col.NewVec[uint64](n),
		NewDateTimes(n), col.NewOptions[uint64](col.NewVec[uint64](n)),
		col.NewVec[uint64](n), col.NewVec[uint64](n),
	)
}

func (t *Order) Fork() dataset.Table[OrderRow] { return NewOrder(t.config) }

func (t *Order) GenBatch(idx int, batch col.Col[OrderRow]) {
	batch.Clear()
	if idx < 0 || idx >= t.NumBatches() {
		return
	}
	r := &t.rng
	r.Seed(uint64(idx))

	oDID := uint64(idx)
	oWID := oDID / NumDistrictsPerWarehouse

	t.cIDs = t.cIDs[:0]
	for i := 0; i < NumOrdersPerDistrict; i++ {
		t.cIDs = append(t.cIDs, uint64(i))
	}
	rng.Shuffle(r, t.cIDs)

	for i := 0; i < NumOrdersPerDistrict; i++ {
		oID := uint64(i)
		carrier := col.None[uint64]()
		if delivered(oID) {
			carrier = col.Some(uint64(g.Int(r, 1, 10)))
		}
		olCnt := orderLineCount(&t.lines, idx*NumOrdersPerDistrict+i)

		batch.Push(OrderRow{
			V0: oID,
			V1: t.cIDs[i],
			V2: oDID,
			V3: oWID,
			V4: t.config.Now,
			V5: carrier,
			V6: uint64(olCnt),
			V7: 1,
		})
	}
}

// OrderLineRow is (ol_o_id, ol_d_id, ol_w_id, ol_number, ol_i_id,
// ol_supply_w_id, ol_delivery_d, ol_quantity, ol_amount, ol_dist_info).
type OrderLineRow = col.T10[uint64, uint64, uint64, uint64, uint64, uint64, col.Option[DateTime], uint64, float64, string]

// OrderLine is the ORDER-LINE relation. Each batch is the 5 to 15 lines of
// one order, so NumBatches is the total order count.
type OrderLine struct {
	config Config
	rng    rng.Rand

	distInfo []byte
}

var (
	_ dataset.Table[OrderLineRow]  = (*OrderLine)(nil)
	_ dataset.Forker[OrderLineRow] = (*OrderLine)(nil)
)

// NewOrderLine returns an ORDER-LINE instance with its own scratch buffer.
func NewOrderLine(config Config) *OrderLine {
	return &OrderLine{config: config, distInfo: make([]byte, 0, 24)}
}

func (t *OrderLine) Name() string    { return "order-line" }
func (t *OrderLine) NumBatches() int { return t.config.orders() }

func (t *OrderLine) Schema() dataset.Schema {
	return dataset.Schema{
		dataset.F("ol_o_id", dataset.TypeUint64),
		dataset.F("ol_d_id", dataset.TypeUint64),
		dataset.F("ol_w_id", dataset.TypeUint64),
		dataset.F("ol_number", dataset.TypeUint64),
		dataset.F("ol_i_id", dataset.TypeUint64),
		dataset.F("ol_supply_w_id", dataset.TypeUint64),
		dataset.Null("ol_delivery_d", dataset.TypeUint64),
		dataset.F("ol_quantity", dataset.TypeUint64),
		dataset.F("ol_amount", dataset.TypeFloat64),
		dataset.F("ol_dist_info", dataset.TypeString),
	}
}

func (t *OrderLine) NewBatch() col.Col[OrderLineRow] {
	n := 15
	return col.NewTuple10[uint64, uint64, uint64, uint64, uint64, uint64, col.Option[DateTime], uint64, float64, string](
		col.NewVec[uint64](n), col.NewVec[uint64](n), col.NewVec[uint64](n),
		col.NewVec[uint64](n), col.NewVec[uint64](n), col.NewVec[uint64](n),
		col.NewOptions[DateTime](NewDateTimes(n)),
		col.NewVec[uint64](n), col.NewVec[float64](n), col.NewStrings(n, 24),
	)
}

func (t *OrderLine) Fork() dataset.Table[OrderLineRow] { return NewOrderLine(t.config) }

func (t *OrderLine) GenBatch(idx int, batch col.Col[OrderLineRow]) {
	batch.Clear()
	if idx < 0 || idx >= t.NumBatches() {
		return
	}
	r := &t.rng

	olOID := uint64(idx % NumOrdersPerDistrict)
	olDID := uint64(idx / NumOrdersPerDistrict)
	olWID := olDID / NumDistrictsPerWarehouse
	isDelivered := delivered(olOID)

	cnt := orderLineCount(r, idx)
	for n := 0; n < cnt; n++ {
		olIID := uint64(g.Int(r, 1, NumItems))
		deliveryD := col.None[DateTime]()
		amount := 0.0
		if isDelivered {
			deliveryD = col.Some(t.config.Now)
			amount = g.Float(r, 0.01, 9_999.99)
		}
		t.distInfo = g.AppendString(t.distInfo[:0], r, g.AString, 24)

		batch.Push(OrderLineRow{
			V0: olOID,
			V1: olDID,
			V2: olWID,
			V3: uint64(n),
			V4: olIID,
			V5: olWID,
			V6: deliveryD,
			V7: 5,
			V8: amount,
			V9: g.View(t.distInfo),
		})
	}
}

// NewOrderRow is (no_o_id, no_d_id, no_w_id).
type NewOrderRow = col.T3[uint64, uint64, uint64]

// NewOrderTable is the NEW-ORDER relation: the last 900 orders of every
// district. It draws nothing.
type NewOrderTable struct {
	config Config
}

var _ dataset.Table[NewOrderRow] = (*NewOrderTable)(nil)

// NewNewOrder returns a NEW-ORDER instance.
func NewNewOrder(config Config) *NewOrderTable {
	return &NewOrderTable{config: config}
}

func (t *NewOrderTable) Name() string { return "new-order" }

func (t *NewOrderTable) NumBatches() int {
	return t.config.districts() * NumNewOrdersPerDistrict
}

func (t *NewOrderTable) Schema() dataset.Schema {
	return dataset.Schema{
		dataset.F("no_o_id", dataset.TypeUint64),
		dataset.F("no_d_id", dataset.TypeUint64),
		dataset.F("no_w_id", dataset.TypeUint64),
	}
}

func (t *NewOrderTable) NewBatch() col.Col[NewOrderRow] {
	return col.NewTuple3[uint64, uint64, uint64](col.NewVec[uint64](1), col.NewVec[uint64](1), col.NewVec[uint64](1))
}

func (t *NewOrderTable) GenBatch(idx int, batch col.Col[NewOrderRow]) {
	batch.Clear()
	if idx < 0 || idx >= t.NumBatches() {
		return
	}
	noDID := uint64(idx / NumNewOrdersPerDistrict)
	batch.Push(NewOrderRow{
		V0: firstNewOrder + uint64(idx%NumNewOrdersPerDistrict),
		V1: noDID,
		V2: noDID / NumDistrictsPerWarehouse,
	})
}
