package tpcc

import (
	"github.com/mmrzaf/dataz/internal/col"
	"github.com/mmrzaf/dataz/internal/dataset"
	g "github.com/mmrzaf/dataz/internal/generators"
	"github.com/mmrzaf/dataz/internal/rng"
)

// address holds scratch buffers for the street/city/state/zip block shared
// by WAREHOUSE, DISTRICT and CUSTOMER.
type address struct {
	street1 []byte
	street2 []byte
	city    []byte
	state   []byte
	zip     []byte
}

func newAddress() address {
	return address{
		street1: make([]byte, 0, 20),
		street2: make([]byte, 0, 20),
		city:    make([]byte, 0, 20),
		state:   make([]byte, 0, 2),
		zip:     make([]byte, 0, 9),
	}
}

func (a *address) gen(r *rng.Rand) {
	a.street1 = g.AppendStringLen(a.street1[:0], r, g.AString, 10, 20)
	a.street2 = g.AppendStringLen(a.street2[:0], r, g.AString, 10, 20)
	a.city = g.AppendStringLen(a.city[:0], r, g.AString, 10, 20)
	a.state = g.AppendState(a.state[:0], r)
	a.zip = g.AppendZip(a.zip[:0], r)
}

func addressFields(prefix string) dataset.Schema {
	return dataset.Schema{
		dataset.F(prefix+"street_1", dataset.TypeString),
		dataset.F(prefix+"street_2", dataset.TypeString),
		dataset.F(prefix+"city", dataset.TypeString),
		dataset.F(prefix+"state", dataset.TypeString),
		dataset.F(prefix+"zip", dataset.TypeString),
	}
}

// WarehouseRow is (w_id, w_name, w_street_1, w_street_2, w_city, w_state,
// w_zip, w_tax, w_ytd).
type WarehouseRow = col.T9[uint64, string, string, string, string, string, string, float64, float64]

// Warehouse is the WAREHOUSE relation. Each batch is one warehouse.
type Warehouse struct {
	config Config
	rng    rng.Rand

	wName []byte
	addr  address
}

var (
	_ dataset.Table[WarehouseRow]  = (*Warehouse)(nil)
	_ dataset.Forker[WarehouseRow] = (*Warehouse)(nil)
)

// NewWarehouse returns a WAREHOUSE instance with its own scratch buffers.
func NewWarehouse(config Config) *Warehouse {
	return &Warehouse{config: config, wName: make([]byte, 0, 10), addr: newAddress()}
}

func (t *Warehouse) Name() string    { return "warehouse" }
func (t *Warehouse) NumBatches() int { return t.config.Warehouses }

func (t *Warehouse) Schema() dataset.Schema {
	s := dataset.Schema{dataset.F("w_id", dataset.TypeUint64), dataset.F("w_name", dataset.TypeString)}
	s = append(s, addressFields("w_")...)
	return append(s, dataset.F("w_tax", dataset.TypeFloat64), dataset.F("w_ytd", dataset.TypeFloat64))
}

func (t *Warehouse) NewBatch() col.Col[WarehouseRow] {
	return col.NewTuple9[uint64, string, string, string, string, string, string, float64, float64](
		col.NewVec[uint64](1), col.NewStrings(1, 10), col.NewStrings(1, 20), col.NewStrings(1, 20),
		col.NewStrings(1, 20), col.NewStrings(1, 2), col.NewStrings(1, 9),
		col.NewVec[float64](1), col.NewVec[float64](1),
	)
}

func (t *Warehouse) Fork() dataset.Table[WarehouseRow] { return NewWarehouse(t.config) }

func (t *Warehouse) GenBatch(idx int, batch col.Col[WarehouseRow]) {
	batch.Clear()
	if idx < 0 || idx >= t.NumBatches() {
		return
	}
	r := &t.rng
	r.Seed(uint64(idx))

	t.wName = g.AppendStringLen(t.wName[:0], r, g.AString, 6, 10)
	t.addr.gen(r)
	wTax := g.Tax(r)

	batch.Push(WarehouseRow{
		V0: uint64(idx),
		V1: g.View(t.wName),
		V2: g.View(t.addr.street1),
		V3: g.View(t.addr.street2),
		V4: g.View(t.addr.city),
		V5: g.View(t.addr.state),
		V6: g.View(t.addr.zip),
		V7: wTax,
		V8: initialYTD,
	})
}

// DistrictRow is (d_id, d_w_id, d_name, d_street_1, d_street_2, d_city,
// d_state, d_zip, d_tax, d_ytd, d_next_o_id).
type DistrictRow = col.T11[uint64, uint64, string, string, string, string, string, string, float64, float64, uint64]

// District is the DISTRICT relation. Each batch is one district.
type District struct {
	config Config
	rng    rng.Rand

	dName []byte
	addr  address
}

var (
	_ dataset.Table[DistrictRow]  = (*District)(nil)
	_ dataset.Forker[DistrictRow] = (*District)(nil)
)

// NewDistrict returns a DISTRICT instance with its own scratch buffers.
func NewDistrict(config Config) *District {
	return &District{config: config, dName: make([]byte, 0, 10), addr: newAddress()}
}

func (t *District) Name() string    { return "district" }
func (t *District) NumBatches() int { return t.config.districts() }

func (t *District) Schema() dataset.Schema {
	s := dataset.Schema{
		dataset.F("d_id", dataset.TypeUint64),
		dataset.F("d_w_id", dataset.TypeUint64),
		dataset.F("d_name", dataset.TypeString),
	}
	s = append(s, addressFields("d_")...)
	return append(s,
		dataset.F("d_tax", dataset.TypeFloat64),
		dataset.F("d_ytd", dataset.TypeFloat64),
		dataset.F("d_next_o_id", dataset.TypeUint64),
	)
}

func (t *District) NewBatch() col.Col[DistrictRow] {
	return col.NewTuple11[uint64, uint64, string, string, string, string, string, string, float64, float64, uint64](
		col.NewVec[uint64](1), col.NewVec[uint64](1), col.NewStrings(1, 10),
		col.NewStrings(1, 20), col.NewStrings(1, 20), col.NewStrings(1, 20),
		col.NewStrings(1, 2), col.NewStrings(1, 9),
		col.NewVec[float64](1), col.NewVec[float64](1), col.NewVec[uint64](1),
	)
}

func (t *District) Fork() dataset.Table[DistrictRow] { return NewDistrict(t.config) }

func (t *District) GenBatch(idx int, batch col.Col[DistrictRow]) {
	batch.Clear()
	if idx < 0 || idx >= t.NumBatches() {
		return
	}
	r := &t.rng
	r.Seed(uint64(idx))

	dID := uint64(idx)
	t.dName = g.AppendStringLen(t.dName[:0], r, g.AString, 6, 10)
	t.addr.gen(r)
	dTax := g.Tax(r)

	batch.Push(DistrictRow{
		V0:  dID,
		V1:  dID / NumDistrictsPerWarehouse,
		V2:  g.View(t.dName),
		V3:  g.View(t.addr.street1),
		V4:  g.View(t.addr.street2),
		V5:  g.View(t.addr.city),
		V6:  g.View(t.addr.state),
		V7:  g.View(t.addr.zip),
		V8:  dTax,
		V9:  initialYTD,
		V10: nextOrderID,
	})
}
