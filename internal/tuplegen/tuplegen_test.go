package tuplegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/go-quicktest/qt"
	"gotest.tools/v3/golden"
)

func TestSourceGolden(t *testing.T) {
	src, err := Source(Config{
		Package:  "tuple",
		MaxArity: 2,
	})
	qt.Assert(t, qt.IsNil(err))
	golden.Assert(t, string(src), "source2.golden")
}

func TestTestSourceGolden(t *testing.T) {
	src, err := TestSource(Config{
		Package:    "tuple",
		ImportPath: "example.com/tuple",
		MaxArity:   2,
	})
	qt.Assert(t, qt.IsNil(err))
	golden.Assert(t, string(src), "test2.golden")
}

var badConfigTests = []struct {
	testName string
	cfg      Config
	err      string
}{{
	testName: "no-package",
	cfg:      Config{MaxArity: 3},
	err:      "cannot generate tuple source: no package name",
}, {
	testName: "zero-arity",
	cfg:      Config{Package: "tuple"},
	err:      `cannot generate tuple source: max arity 0 out of range \[1, 128\]`,
}, {
	testName: "too-large",
	cfg:      Config{Package: "tuple", MaxArity: 129},
	err:      `cannot generate tuple source: max arity 129 out of range \[1, 128\]`,
}}

func TestSourceBadConfig(t *testing.T) {
	for _, test := range badConfigTests {
		t.Run(test.testName, func(t *testing.T) {
			src, err := Source(test.cfg)
			qt.Assert(t, qt.ErrorMatches(err, test.err))
			qt.Assert(t, qt.IsNil(src))
		})
	}
}

func TestTestSourceNoImportPath(t *testing.T) {
	_, err := TestSource(Config{Package: "tuple", MaxArity: 1})
	qt.Assert(t, qt.ErrorMatches(err, "cannot generate tuple test source: no import path"))
}

func TestSourceDeclarations(t *testing.T) {
	for _, n := range []int{1, DefaultMaxArity, MaxSupportedArity} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			src, err := Source(Config{Package: "tuple", MaxArity: n})
			qt.Assert(t, qt.IsNil(err))
			f, err := parser.ParseFile(token.NewFileSet(), "tuple_gen.go", src, 0)
			qt.Assert(t, qt.IsNil(err))

			var types, funcs []string
			var fields []int
			for _, decl := range f.Decls {
				switch decl := decl.(type) {
				case *ast.GenDecl:
					for _, spec := range decl.Specs {
						if spec, ok := spec.(*ast.TypeSpec); ok {
							types = append(types, spec.Name.Name)
							fields = append(fields, len(spec.Type.(*ast.StructType).Fields.List))
						}
					}
				case *ast.FuncDecl:
					if decl.Recv == nil {
						funcs = append(funcs, decl.Name.Name)
					}
				}
			}
			var wantTypes, wantFuncs []string
			var wantFields []int
			for i := 1; i <= n; i++ {
				wantTypes = append(wantTypes, fmt.Sprintf("T%d", i))
				wantFuncs = append(wantFuncs, fmt.Sprintf("MkT%d", i))
				wantFields = append(wantFields, i)
			}
			qt.Assert(t, qt.DeepEquals(types, wantTypes))
			qt.Assert(t, qt.DeepEquals(funcs, wantFuncs))
			qt.Assert(t, qt.DeepEquals(fields, wantFields))
		})
	}
}

func TestTestSourceDeclarations(t *testing.T) {
	src, err := TestSource(Config{
		Package:    "tuple",
		ImportPath: "example.com/tuple",
		MaxArity:   DefaultMaxArity,
	})
	qt.Assert(t, qt.IsNil(err))
	f, err := parser.ParseFile(token.NewFileSet(), "tuple_gen_test.go", src, 0)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(f.Name.Name, "tuple_test"))

	var tests []string
	for _, decl := range f.Decls {
		if decl, ok := decl.(*ast.FuncDecl); ok {
			tests = append(tests, decl.Name.Name)
		}
	}
	qt.Assert(t, qt.HasLen(tests, DefaultMaxArity))
	qt.Assert(t, qt.Equals(tests[0], "TestT1"))
	qt.Assert(t, qt.Equals(tests[DefaultMaxArity-1], "TestT64"))
}

func TestAritySlots(t *testing.T) {
	as := arities(3)
	qt.Assert(t, qt.HasLen(as, 3))
	a := as[2]
	qt.Assert(t, qt.Equals(a.Name, "T3"))
	qt.Assert(t, qt.Equals(a.Params, "A0, A1, A2"))
	qt.Assert(t, qt.Equals(a.Args(), "a0 A0, a1 A1, a2 A2"))
	qt.Assert(t, qt.Equals(a.ArgNames(), "a0, a1, a2"))
	qt.Assert(t, qt.Equals(a.Results(), "(A0, A1, A2)"))
	qt.Assert(t, qt.Equals(a.Fields(), "t.A0, t.A1, t.A2"))
	qt.Assert(t, qt.Equals(a.UniqueValues(), "int32(42), [1]byte{}, [2]byte{}"))
	qt.Assert(t, qt.Equals(a.DupValues(), "int32(0), int32(1), int32(2)"))
	qt.Assert(t, qt.DeepEquals(a.Last(), slot{Index: 2, Field: "A2", Arg: "a2"}))
	qt.Assert(t, qt.Equals(as[0].Results(), "A0"))
}
