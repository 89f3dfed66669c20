package tuplegen

import "text/template"

var sourceTemplate = template.Must(template.New("source").Parse(`// Code generated by tuplegen. DO NOT EDIT.

package {{.Package}}

import "reflect"
{{range .Arities}}
// {{.Name}} holds a tuple of {{.N}} {{if eq .N 1}}value{{else}}values{{end}}.
type {{.Name}}[{{.Params}} any] struct {
{{- range .Slots}}
	{{.Field}} {{.Field}}
{{- end}}
}

// Mk{{.Name}} returns a {{.Name}} holding the given values.
func Mk{{.Name}}[{{.Params}} any]({{.Args}}) {{.Name}}[{{.Params}}] {
	return {{.Name}}[{{.Params}}]{ {{- .ArgNames -}} }
}

// T returns all the values in the tuple.
func (t {{.Name}}[{{.Params}}]) T() {{.Results}} {
	return {{.Fields}}
}

// Len implements [Tuple.Len].
func (*{{.Name}}[{{.Params}}]) Len() int {
	return {{.N}}
}

// SlotType implements [Tuple.SlotType].
func (*{{.Name}}[{{.Params}}]) SlotType(i int) reflect.Type {
	switch i {
{{- range .Slots}}
	case {{.Index}}:
		return reflect.TypeFor[{{.Field}}]()
{{- end}}
	}
	panic(badSlot(i, {{.N}}))
}

func (t *{{.Name}}[{{.Params}}]) slot(i int) any {
	switch i {
{{- range .Slots}}
	case {{.Index}}:
		return &t.{{.Field}}
{{- end}}
	}
	panic(badSlot(i, {{.N}}))
}
{{end}}`))

var testTemplate = template.Must(template.New("test").Parse(`// Code generated by tuplegen. DO NOT EDIT.

package {{.Package}}_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"{{.ImportPath}}"
)
{{range .Arities}}
func Test{{.Name}}(t *testing.T) {
	tup := {{$.Package}}.Mk{{.Name}}({{.UniqueValues}})
	checkUniqueInt32(t, &tup)

	dup := {{$.Package}}.Mk{{.Name}}({{.DupValues}})
	checkAllInt32(t, &dup)
	qt.Assert(t, qt.Equals(dup.A0, int32(100)))
{{- if gt .N 1}}
	qt.Assert(t, qt.Equals(dup.{{.Last.Field}}, int32({{.Last.Index}})))
{{- end}}
}
{{end}}`))
