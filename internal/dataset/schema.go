package dataset

// FieldType is the adapter-facing type of a field after projection.
type FieldType string

const (
	TypeBool    FieldType = "bool"
	TypeInt64   FieldType = "int64"
	TypeUint64  FieldType = "uint64"
	TypeFloat64 FieldType = "float64"
	TypeString  FieldType = "string"
	TypeBytes   FieldType = "bytes"
)

// Field describes one field of a relation's row.
type Field struct {
	Name     string    `json:"name" yaml:"name"`
	Type     FieldType `json:"type" yaml:"type"`
	Nullable bool      `json:"nullable,omitempty" yaml:"nullable,omitempty"`
}

// Schema is the ordered field list of a relation.
type Schema []Field

// Names returns the field names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// F is shorthand for a non-nullable field.
func F(name string, typ FieldType) Field {
	return Field{Name: name, Type: typ}
}

// Null is shorthand for a nullable field.
func Null(name string, typ FieldType) Field {
	return Field{Name: name, Type: typ, Nullable: true}
}
