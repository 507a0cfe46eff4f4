// Command gen writes the tuple row and column types of package col.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const maxArity = 12

var tmpl = template.Must(template.New("tuple").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`{{range .}}
// T{{.N}} is a row of {{.N}} fields.
type T{{.N}}[{{join .Params ", "}} any] struct {
{{- range $i, $p := .Params}}
	V{{$i}} {{$p}}
{{- end}}
}

// AppendValues implements Row.
func (t T{{.N}}[{{join .Params ", "}}]) AppendValues(dst []any) []any {
	return append(dst{{range $i, $p := .Params}}, Project(t.V{{$i}}){{end}})
}

// Tuple{{.N}} is the column for T{{.N}}, one column per field.
type Tuple{{.N}}[{{join .Params ", "}} any] struct {
{{- range $i, $p := .Params}}
	C{{$i}} Col[{{$p}}]
{{- end}}
}

// NewTuple{{.N}} composes the given empty columns.
func NewTuple{{.N}}[{{join .Params ", "}} any]({{range $i, $p := .Params}}{{if $i}}, {{end}}c{{$i}} Col[{{$p}}]{{end}}) *Tuple{{.N}}[{{join .Params ", "}}] {
	return &Tuple{{.N}}[{{join .Params ", "}}]{ {{- range $i, $p := .Params}}{{if $i}}, {{end}}C{{$i}}: c{{$i}}{{end -}} }
}

func (t *Tuple{{.N}}[{{join .Params ", "}}]) Len() int {
	if invariants.Enabled {
		invariants.SameLen("Tuple{{.N}}"{{range $i, $p := .Params}}, t.C{{$i}}.Len(){{end}})
	}
	return t.C0.Len()
}

func (t *Tuple{{.N}}[{{join .Params ", "}}]) Get(i int) T{{.N}}[{{join .Params ", "}}] {
	return T{{.N}}[{{join .Params ", "}}]{ {{- range $i, $p := .Params}}{{if $i}}, {{end}}V{{$i}}: t.C{{$i}}.Get(i){{end -}} }
}

func (t *Tuple{{.N}}[{{join .Params ", "}}]) Push(r T{{.N}}[{{join .Params ", "}}]) {
{{- range $i, $p := .Params}}
	t.C{{$i}}.Push(r.V{{$i}})
{{- end}}
}

func (t *Tuple{{.N}}[{{join .Params ", "}}]) Clear() {
{{- range $i, $p := .Params}}
	t.C{{$i}}.Clear()
{{- end}}
}

func (t *Tuple{{.N}}[{{join .Params ", "}}]) GoodBytes() int {
	return {{range $i, $p := .Params}}{{if $i}} + {{end}}t.C{{$i}}.GoodBytes(){{end}}
}
{{end}}`))

type arity struct {
	N      int
	Params []string
}

func main() {
	out := flag.String("out", "tuple.go", "output file")
	flag.Parse()

	var arities []arity
	for n := 2; n <= maxArity; n++ {
		a := arity{N: n}
		for i := 0; i < n; i++ {
			a.Params = append(a.Params, fmt.Sprintf("A%d", i))
		}
		arities = append(arities, a)
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen; DO NOT EDIT.\n\npackage col\n\nimport \"github.com/mmrzaf/dataz/internal/invariants\"\n")
	if err := tmpl.Execute(&buf, arities); err != nil {
		log.Fatalf("execute template: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
}
