package tpcc

import (
	"github.com/mmrzaf/dataz/internal/col"
	"github.com/mmrzaf/dataz/internal/dataset"
	g "github.com/mmrzaf/dataz/internal/generators"
	"github.com/mmrzaf/dataz/internal/rng"
)

var lastNameSyllables = [10]string{"BAR", "OUGHT", "ABLE", "PRI", "PRES", "ESE", "ANTI", "CALLY", "ATION", "EING"}

// appendLastName appends the C_LAST name for n in [0, 999]: one syllable
// per decimal digit.
func appendLastName(dst []byte, n int) []byte {
	dst = append(dst, lastNameSyllables[n/100]...)
	dst = append(dst, lastNameSyllables[n/10%10]...)
	return append(dst, lastNameSyllables[n%10]...)
}

// CustomerRow is (c_id, c_d_id, c_w_id, c_last, c_middle, c_first,
// c_street_1, c_street_2, c_city, c_state, c_zip, c_data).
type CustomerRow = col.T12[uint64, uint64, uint64, string, string, string, string, string, string, string, string, string]

// Customer is the CUSTOMER relation. Each batch is one customer.
//
// c_phone, c_credit and c_discount are drawn, which keeps c_data at its
// place in the stream, but they are not part of the row.
type Customer struct {
	config Config
	rng    rng.Rand

	cLast  []byte
	cFirst []byte
	addr   address
	cPhone []byte
	cData  []byte
}

var (
	_ dataset.Table[CustomerRow]  = (*Customer)(nil)
	_ dataset.Forker[CustomerRow] = (*Customer)(nil)
)

// NewCustomer returns a CUSTOMER instance with its own scratch buffers.
func NewCustomer(config Config) *Customer {
	return &Customer{
		config: config,
		cLast:  make([]byte, 0, 15),
		cFirst: make([]byte, 0, 16),
		addr:   newAddress(),
		cPhone: make([]byte, 0, 16),
		cData:  make([]byte, 0, 500),
	}
}

func (t *Customer) Name() string    { return "customer" }
func (t *Customer) NumBatches() int { return t.config.customers() }

func (t *Customer) Schema() dataset.Schema {
	s := dataset.Schema{
		dataset.F("c_id", dataset.TypeUint64),
		dataset.F("c_d_id", dataset.TypeUint64),
		dataset.F("c_w_id", dataset.TypeUint64),
		dataset.F("c_last", dataset.TypeString),
		dataset.F("c_middle", dataset.TypeString),
		dataset.F("c_first", dataset.TypeString),
	}
	s = append(s, addressFields("c_")...)
	return append(s, dataset.F("c_data", dataset.TypeString))
}

func (t *Customer) NewBatch() col.Col[CustomerRow] {
	return col.NewTuple12[uint64, uint64, uint64, string, string, string, string, string, string, string, string, string](
		col.NewVec[uint64](1), col.NewVec[uint64](1), col.NewVec[uint64](1),
		col.NewStrings(1, 15), col.NewStrings(1, 2), col.NewStrings(1, 16),
		col.NewStrings(1, 20), col.NewStrings(1, 20), col.NewStrings(1, 20),
		col.NewStrings(1, 2), col.NewStrings(1, 9), col.NewStrings(1, 500),
	)
}

func (t *Customer) Fork() dataset.Table[CustomerRow] { return NewCustomer(t.config) }

func (t *Customer) GenBatch(idx int, batch col.Col[CustomerRow]) {
	batch.Clear()
	if idx < 0 || idx >= t.NumBatches() {
		return
	}
	r := &t.rng
	r.Seed(uint64(idx))

	cID := uint64(idx)
	cDID := cID / NumCustomersPerDistrict
	t.cLast = appendLastName(t.cLast[:0], idx%1000)
	t.cFirst = g.AppendStringLen(t.cFirst[:0], r, g.AString, 8, 16)
	t.addr.gen(r)
	t.cPhone = g.AppendString(t.cPhone[:0], r, g.NString, 16)
	// c_credit is BC one time in ten, else GC. c_discount is in [0, 0.5).
	_ = g.OneIn(r, 10)
	_ = g.Float(r, 0.0, 0.5)
	t.cData = g.AppendStringLen(t.cData[:0], r, g.AString, 300, 500)

	batch.Push(CustomerRow{
		V0:  cID,
		V1:  cDID,
		V2:  cDID / NumDistrictsPerWarehouse,
		V3:  g.View(t.cLast),
		V4:  "OE",
		V5:  g.View(t.cFirst),
		V6:  g.View(t.addr.street1),
		V7:  g.View(t.addr.street2),
		V8:  g.View(t.addr.city),
		V9:  g.View(t.addr.state),
		V10: g.View(t.addr.zip),
		V11: g.View(t.cData),
	})
}

// HistoryRow is (h_c_id, h_c_d_id, h_c_w_id, h_d_id, h_w_id, h_date,
// h_amount, h_data).
type HistoryRow = col.T8[uint64, uint64, uint64, uint64, uint64, DateTime, float64, string]

// History is the HISTORY relation. Each batch is the history row of one
// customer.
type History struct {
	config Config
	rng    rng.Rand

	hData []byte
}

var (
	_ dataset.Table[HistoryRow]  = (*History)(nil)
	_ dataset.Forker[HistoryRow] = (*History)(nil)
)

// NewHistory returns a HISTORY instance with its own scratch buffer.
func NewHistory(config Config) *History {
	return &History{config: config, hData: make([]byte, 0, 24)}
}

func (t *History) Name() string { return "history" }

func (t *History) NumBatches() int {
	return t.config.customers() * NumHistoryPerCustomer
}

func (t *History) Schema() dataset.Schema {
	return dataset.Schema{
		dataset.F("h_c_id", dataset.TypeUint64),
		dataset.F("h_c_d_id", dataset.TypeUint64),
		dataset.F("h_c_w_id", dataset.TypeUint64),
		dataset.F("h_d_id", dataset.TypeUint64),
		dataset.F("h_w_id", dataset.TypeUint64),
		dataset.F("h_date", dataset.TypeUint64),
		dataset.F("h_amount", dataset.TypeFloat64),
		dataset.F("h_data", dataset.TypeString),
	}
}

func (t *History) NewBatch() col.Col[HistoryRow] {
	return col.NewTuple8[uint64, uint64, uint64, uint64, uint64, DateTime, float64, string](
		col.NewVec[uint64](1), col.NewVec[uint64](1), col.NewVec[uint64](1),
		col.NewVec[uint64](1), col.NewVec[uint64](1), NewDateTimes(1),
		col.NewVec[float64](1), col.NewStrings(1, 24),
	)
}

func (t *History) Fork() dataset.Table[HistoryRow] { return NewHistory(t.config) }

func (t *History) GenBatch(idx int, batch col.Col[HistoryRow]) {
	batch.Clear()
	if idx < 0 || idx >= t.NumBatches() {
		return
	}
	r := &t.rng
	r.Seed(uint64(idx))

	hCID := uint64(idx)
	hCDID := hCID / NumCustomersPerDistrict
	hCWID := hCDID / NumDistrictsPerWarehouse
	t.hData = g.AppendStringLen(t.hData[:0], r, g.AString, 12, 24)

	batch.Push(HistoryRow{
		V0: hCID,
		V1: hCDID,
		V2: hCWID,
		V3: hCDID,
		V4: hCWID,
		V5: t.config.Now,
		V6: 10.00,
		V7: g.View(t.hData),
	})
}
