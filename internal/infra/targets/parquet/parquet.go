// Package parquet writes one Parquet file per relation, one row group per
// batch.
package parquet

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/schema"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/domain"
	"github.com/mmrzaf/dataz/internal/exec"
	"github.com/mmrzaf/dataz/internal/infra/targets/files"
)

const Ext = "parquet"

const DefaultPageSize = 1 << 20

type ParquetTarget struct {
	dir         string
	pageSize    int64
	compression compress.Compression
}

// NewParquetTarget returns a target writing under dir. An empty compression
// name means snappy.
func NewParquetTarget(dir string, pageSize int64, compression string) (*ParquetTarget, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if compression == "" {
		compression = "snappy"
	}
	codec, err := CompressionCodec(compression)
	if err != nil {
		return nil, err
	}
	return &ParquetTarget{dir: dir, pageSize: pageSize, compression: codec}, nil
}

func CompressionCodec(name string) (compress.Compression, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "snappy":
		return compress.Codecs.Snappy, nil
	case "zstd":
		return compress.Codecs.Zstd, nil
	case "gzip":
		return compress.Codecs.Gzip, nil
	case "brotli":
		return compress.Codecs.Brotli, nil
	case "lz4_raw", "lz4":
		return compress.Codecs.Lz4Raw, nil
	case "uncompressed", "none":
		return compress.Codecs.Uncompressed, nil
	default:
		return compress.Codecs.Uncompressed, fmt.Errorf("unsupported parquet compression: %q", name)
	}
}

func (t *ParquetTarget) Connect() error {
	return os.MkdirAll(t.dir, 0o755)
}

func (t *ParquetTarget) Close() error { return nil }

func (t *ParquetTarget) Open(name string, sc dataset.Schema, mode string) (exec.BatchWriter, error) {
	if mode == domain.TableModeAppend {
		return nil, errors.New("parquet targets do not support append")
	}
	node, err := SchemaNode(sc)
	if err != nil {
		return nil, err
	}

	f, _, err := files.Open(t.dir, name, Ext, mode)
	if err != nil {
		return nil, err
	}

	opts := []parquet.WriterProperty{
		parquet.WithDataPageSize(t.pageSize),
		parquet.WithCompression(t.compression),
	}
	// Dictionary encoding for text fields only.
	for _, fld := range sc {
		opts = append(opts, parquet.WithDictionaryFor(fld.Name, fld.Type == dataset.TypeString))
	}

	w := &writer{
		f:      f,
		w:      file.NewParquetWriter(f, node, file.WithWriterProps(parquet.NewWriterProperties(opts...))),
		schema: sc,
		cols:   make([]column, len(sc)),
	}
	return w, nil
}

// SchemaNode maps a relation schema to a Parquet group node. Unsigned
// fields are stored as INT64 annotated as unsigned.
func SchemaNode(sc dataset.Schema) (*schema.GroupNode, error) {
	fields := make(schema.FieldList, len(sc))
	for i, f := range sc {
		rep := parquet.Repetitions.Required
		if f.Nullable {
			rep = parquet.Repetitions.Optional
		}

		var (
			node schema.Node
			err  error
		)
		switch f.Type {
		case dataset.TypeBool:
			node, err = schema.NewPrimitiveNode(f.Name, rep, parquet.Types.Boolean, -1, -1)
		case dataset.TypeInt64:
			node, err = schema.NewPrimitiveNodeLogical(f.Name, rep, schema.NewIntLogicalType(64, true), parquet.Types.Int64, -1, -1)
		case dataset.TypeUint64:
			node, err = schema.NewPrimitiveNodeLogical(f.Name, rep, schema.NewIntLogicalType(64, false), parquet.Types.Int64, -1, -1)
		case dataset.TypeFloat64:
			node, err = schema.NewPrimitiveNode(f.Name, rep, parquet.Types.Double, -1, -1)
		case dataset.TypeString:
			node, err = schema.NewPrimitiveNodeLogical(f.Name, rep, schema.StringLogicalType{}, parquet.Types.ByteArray, -1, -1)
		case dataset.TypeBytes:
			node, err = schema.NewPrimitiveNode(f.Name, rep, parquet.Types.ByteArray, -1, -1)
		default:
			return nil, fmt.Errorf("field %s: unsupported type %s", f.Name, f.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		fields[i] = node
	}
	return schema.NewGroupNode("schema", parquet.Repetitions.Required, fields, -1)
}

// column buffers the values of one field for the current batch. Only the
// slice matching the field type is used; defLevels is nil for required
// fields.
type column struct {
	bools     []bool
	ints      []int64
	floats    []float64
	bytes     []parquet.ByteArray
	arena     []byte
	lens      []int
	defLevels []int16
}

func (c *column) reset() {
	c.bools = c.bools[:0]
	c.ints = c.ints[:0]
	c.floats = c.floats[:0]
	c.bytes = c.bytes[:0]
	c.arena = c.arena[:0]
	c.lens = c.lens[:0]
	c.defLevels = c.defLevels[:0]
}

type writer struct {
	f      *os.File
	w      *file.Writer
	schema dataset.Schema
	cols   []column
	vals   []any
}

func (w *writer) WriteBatch(b dataset.Batch) error {
	if b.Len() == 0 {
		return nil
	}
	for j := range w.cols {
		w.cols[j].reset()
	}
	for i := 0; i < b.Len(); i++ {
		w.vals = b.AppendRow(i, w.vals[:0])
		for j, v := range w.vals {
			if err := w.buffer(j, v); err != nil {
				return err
			}
		}
	}
	for j := range w.cols {
		c := &w.cols[j]
		start := 0
		for _, n := range c.lens {
			end := start + n
			c.bytes = append(c.bytes, c.arena[start:end:end])
			start = end
		}
	}

	rgw := w.w.AppendRowGroup()
	for j := range w.cols {
		if err := w.writeColumn(rgw, j); err != nil {
			rgw.Close()
			return fmt.Errorf("column %s: %w", w.schema[j].Name, err)
		}
	}
	return rgw.Close()
}

// buffer stores one projected value. Byte values are copied into the arena
// and sliced out once the batch is complete, since the arena may grow.
func (w *writer) buffer(j int, v any) error {
	f, c := w.schema[j], &w.cols[j]
	if f.Nullable {
		if v == nil {
			c.defLevels = append(c.defLevels, 0)
			return nil
		}
		c.defLevels = append(c.defLevels, 1)
	} else if v == nil {
		return fmt.Errorf("field %s: null in required field", f.Name)
	}

	switch v := v.(type) {
	case bool:
		c.bools = append(c.bools, v)
	case int64:
		c.ints = append(c.ints, v)
	case uint64:
		c.ints = append(c.ints, int64(v))
	case float64:
		c.floats = append(c.floats, v)
	case string:
		c.arena = append(c.arena, v...)
		c.lens = append(c.lens, len(v))
	case []byte:
		c.arena = append(c.arena, v...)
		c.lens = append(c.lens, len(v))
	default:
		return fmt.Errorf("field %s: unsupported value %T", f.Name, v)
	}
	return nil
}

func (w *writer) writeColumn(rgw file.SerialRowGroupWriter, j int) error {
	cw, err := rgw.NextColumn()
	if err != nil {
		return err
	}

	c := &w.cols[j]
	var defLevels []int16
	if w.schema[j].Nullable {
		defLevels = c.defLevels
	}

	switch cw := cw.(type) {
	case *file.BooleanColumnChunkWriter:
		_, err = cw.WriteBatch(c.bools, defLevels, nil)
	case *file.Int64ColumnChunkWriter:
		_, err = cw.WriteBatch(c.ints, defLevels, nil)
	case *file.Float64ColumnChunkWriter:
		_, err = cw.WriteBatch(c.floats, defLevels, nil)
	case *file.ByteArrayColumnChunkWriter:
		_, err = cw.WriteBatch(c.bytes, defLevels, nil)
	default:
		err = fmt.Errorf("unsupported column writer %T", cw)
	}
	if cerr := cw.Close(); err == nil {
		err = cerr
	}
	return err
}

func (w *writer) Close() error {
	err := w.w.Close()
	// The parquet writer closes the sink it was given.
	if cerr := w.f.Close(); err == nil && cerr != nil && !errors.Is(cerr, os.ErrClosed) {
		err = cerr
	}
	return err
}
