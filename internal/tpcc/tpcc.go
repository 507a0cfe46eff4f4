// Package tpcc generates the initial database population of the TPC-C
// OLTP benchmark (https://www.tpc.org/tpcc/).
//
// Every batch seeds its own generator from the batch index, so any batch can
// be produced alone. Identifiers are 0-based and child rows find their
// parent by integer division with the fan-out constants below.
package tpcc

import "github.com/mmrzaf/dataz/internal/dataset"

// Name is the set name.
const Name = "tpcc"

// Fan-out constants fixed by the benchmark. They are not knobs.
const (
	NumItems                 = 100_000
	NumStockPerWarehouse     = 100_000
	NumDistrictsPerWarehouse = 10
	NumCustomersPerDistrict  = 3_000
	NumHistoryPerCustomer    = 1
	NumOrdersPerDistrict     = 3_000
	NumNewOrdersPerDistrict  = 900
)

const (
	initialYTD    = 300_000.00
	nextOrderID   = NumOrdersPerDistrict + 1
	firstNewOrder = NumOrdersPerDistrict - NumNewOrdersPerDistrict
)

// Feb182023At1PM is a fixed DateTime for tests and reproducible runs.
var Feb182023At1PM = DateTime{Date: 44_973, Time: 13 * 60 * 60}

// Config configures a TPC-C population.
type Config struct {
	// Warehouses is the scale factor.
	Warehouses int
	// Now is used for every timestamp field.
	Now DateTime
}

// Tpcc is the set of nine TPC-C relations.
type Tpcc struct {
	config Config
}

var _ dataset.Set = (*Tpcc)(nil)

// New returns the set for config.
func New(config Config) *Tpcc {
	return &Tpcc{config: config}
}

func (t *Tpcc) Name() string { return Name }

func (t *Tpcc) Tables(fn func(dataset.Relation)) {
	fn(dataset.Erase[ItemRow](NewItem(t.config)))
	fn(dataset.Erase[WarehouseRow](NewWarehouse(t.config)))
	fn(dataset.Erase[StockRow](NewStock(t.config)))
	fn(dataset.Erase[DistrictRow](NewDistrict(t.config)))
	fn(dataset.Erase[CustomerRow](NewCustomer(t.config)))
	fn(dataset.Erase[HistoryRow](NewHistory(t.config)))
	fn(dataset.Erase[OrderRow](NewOrder(t.config)))
	fn(dataset.Erase[OrderLineRow](NewOrderLine(t.config)))
	fn(dataset.Erase[NewOrderRow](NewNewOrder(t.config)))
}

func (c Config) districts() int {
	return c.Warehouses * NumDistrictsPerWarehouse
}

func (c Config) customers() int {
	return c.districts() * NumCustomersPerDistrict
}

func (c Config) orders() int {
	return c.districts() * NumOrdersPerDistrict
}
