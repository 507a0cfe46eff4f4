package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"

	"github.com/mmrzaf/dataz/internal/dataset"
)

// Field tags keep values of different types with equal text apart.
const (
	tagNull byte = iota
	tagBool
	tagInt
	tagUint
	tagFloat
	tagString
	tagBytes
	tagOther
)

// Digest is a running SHA-256 over the rows of one relation. Batches must be
// written in index order; the result is then independent of how the batches
// were produced.
type Digest struct {
	h    hash.Hash
	rows int64
	vals []any
	text []byte
	buf  []byte
}

func NewDigest() *Digest {
	return &Digest{h: sha256.New()}
}

// WriteBatch adds every row of b.
func (d *Digest) WriteBatch(b dataset.Batch) {
	for i := 0; i < b.Len(); i++ {
		d.vals = b.AppendRow(i, d.vals[:0])
		d.buf = d.buf[:0]
		for _, v := range d.vals {
			d.buf = append(d.buf, tagOf(v))
			d.text = dataset.AppendText(d.text[:0], v)
			d.buf = binary.AppendUvarint(d.buf, uint64(len(d.text)))
			d.buf = append(d.buf, d.text...)
		}
		d.h.Write(d.buf)
		d.rows++
	}
}

func (d *Digest) Rows() int64 { return d.rows }

// Sum returns the hex digest of the rows written so far.
func (d *Digest) Sum() string {
	return hex.EncodeToString(d.h.Sum(nil))
}

func tagOf(v any) byte {
	switch v.(type) {
	case nil:
		return tagNull
	case bool:
		return tagBool
	case int, int64:
		return tagInt
	case uint32, uint64:
		return tagUint
	case float64:
		return tagFloat
	case string:
		return tagString
	case []byte:
		return tagBytes
	default:
		return tagOther
	}
}

// Relation digests every batch of r in order.
func Relation(r dataset.Relation) (string, int64) {
	d := NewDigest()
	_ = dataset.Walk(r, func(_ int, b dataset.Batch) error {
		d.WriteBatch(b)
		return nil
	})
	return d.Sum(), d.Rows()
}
