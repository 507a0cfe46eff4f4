// Package kvtd generates (key, value, time, diff) changelog tuples in the
// style of differential dataflow: every row is an insert at its own time.
package kvtd

import (
	"github.com/mmrzaf/dataz/internal/col"
	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/generators"
)

// Name is the name of both the set and its single relation.
const Name = "kvtd"

const keyBytes = 64 / 4

// maxReservedBytes caps the up-front allocation of one batch.
const maxReservedBytes = 64 << 20

// rowOverheadBytes is the per-row cost besides key and value payload: two
// end offsets, the time and the diff.
const rowOverheadBytes = 4 * 8

// Knuth's multiplicative hashing constant, the largest prime below 2^64.
const largePrime uint64 = 18_446_744_073_709_551_557

// Config configures the changelog.
type Config struct {
	// ValBytes is the length of every value.
	ValBytes int `json:"val_bytes" yaml:"val_bytes" toml:"val_bytes"`
	// NumRows is the total number of rows across all batches.
	NumRows int `json:"num_rows" yaml:"num_rows" toml:"num_rows"`
	// MaxRowsPerBatch bounds the size of each batch.
	MaxRowsPerBatch int `json:"max_rows_per_batch" yaml:"max_rows_per_batch" toml:"max_rows_per_batch"`
}

// Row is (key, value, time, diff).
type Row = col.T4[string, []byte, uint64, int64]

// Kvtd is the changelog set.
type Kvtd struct {
	config Config
}

var _ dataset.Set = (*Kvtd)(nil)

// New returns the set for config.
func New(config Config) *Kvtd {
	return &Kvtd{config: config}
}

func (k *Kvtd) Name() string { return Name }

func (k *Kvtd) Tables(fn func(dataset.Relation)) {
	fn(dataset.Erase[Row](NewChangelog(k.config)))
}

// Changelog is the single relation of Kvtd.
type Changelog struct {
	config Config

	key []byte
	val []byte
}

var (
	_ dataset.Table[Row]  = (*Changelog)(nil)
	_ dataset.Forker[Row] = (*Changelog)(nil)
)

// NewChangelog returns a relation instance with its own scratch buffers.
func NewChangelog(config Config) *Changelog {
	return &Changelog{
		config: config,
		key:    make([]byte, 0, keyBytes),
		val:    make([]byte, 0, max(config.ValBytes, 0)),
	}
}

func (c *Changelog) Name() string { return Name }

func (c *Changelog) NumBatches() int {
	return dataset.CeilDiv(c.config.NumRows, c.config.MaxRowsPerBatch)
}

func (c *Changelog) Schema() dataset.Schema {
	return dataset.Schema{
		dataset.F("key", dataset.TypeString),
		dataset.F("value", dataset.TypeBytes),
		dataset.F("time", dataset.TypeUint64),
		dataset.F("diff", dataset.TypeInt64),
	}
}

// NewBatch reserves room for the largest real batch, bounded by
// maxReservedBytes. Columns grow past the reservation on demand.
func (c *Changelog) NewBatch() col.Col[Row] {
	valBytes := max(c.config.ValBytes, 0)
	n := min(max(c.config.MaxRowsPerBatch, 0), max(c.config.NumRows, 0))
	n = min(n, maxReservedBytes/(keyBytes+valBytes+rowOverheadBytes))
	return col.NewTuple4[string, []byte, uint64, int64](
		col.NewStrings(n, keyBytes),
		col.NewBytes(n, valBytes),
		col.NewVec[uint64](n),
		col.NewVec[int64](n),
	)
}

func (c *Changelog) Fork() dataset.Table[Row] {
	return NewChangelog(c.config)
}

func (c *Changelog) GenBatch(idx int, batch col.Col[Row]) {
	batch.Clear()
	if idx < 0 || idx >= c.NumBatches() {
		return
	}
	start, end := dataset.BatchRange(idx, c.config.MaxRowsPerBatch, c.config.NumRows)
	for i := start; i < end; i++ {
		row := uint64(i)
		c.key = AppendHex(c.key[:0], row)
		c.val = AppendValue(c.val[:0], row, c.config.ValBytes)
		batch.Push(Row{V0: generators.View(c.key), V1: c.val, V2: row, V3: 1})
	}
}

// AppendHex appends x as 16 lowercase hex digits, most significant first.
func AppendHex(dst []byte, x uint64) []byte {
	const digits = "0123456789abcdef"
	for i := 0; i < keyBytes; i++ {
		dst = append(dst, digits[x>>60])
		x <<= 4
	}
	return dst
}

// AppendValue appends n bytes of the multiplicative hash chain started at
// row+1, taking the low byte of each product.
func AppendValue(dst []byte, row uint64, n int) []byte {
	x := row + 1
	for i := 0; i < n; i++ {
		x *= largePrime
		dst = append(dst, byte(x))
	}
	return dst
}
