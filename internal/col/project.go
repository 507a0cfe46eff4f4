package col

// Projector is implemented by field types that adapters should see as a
// different value, such as a packed timestamp or an optional.
type Projector interface {
	Project() any
}

// Row is implemented by every tuple row type.
type Row interface {
	// AppendValues appends the row's fields, in order, to dst.
	AppendValues(dst []any) []any
}

// Project returns the scalar an adapter writes for v.
func Project(v any) any {
	if p, ok := v.(Projector); ok {
		return p.Project()
	}
	return v
}
