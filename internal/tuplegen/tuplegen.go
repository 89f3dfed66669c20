// Package tuplegen generates the fixed-arity tuple types of package
// tuple together with the per-arity slot enumeration that the
// type-indexed accessors dispatch on.
//
// Each generated type TN holds N slots A0 ... AN-1. Its Len, SlotType
// and slot methods enumerate the slots in declaration order, which is
// what gives "first occurrence" its meaning.
package tuplegen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

const (
	// DefaultMaxArity is the largest tuple generated by default.
	DefaultMaxArity = 64

	// MaxSupportedArity bounds Config.MaxArity.
	MaxSupportedArity = 128
)

// Config holds the parameters of a generation run.
type Config struct {
	// Package holds the package name of the generated code.
	Package string

	// ImportPath holds the import path of Package.
	// It is only used by TestSource.
	ImportPath string

	// MaxArity holds the largest arity to generate.
	// Types are generated for every arity from 1 to MaxArity inclusive.
	MaxArity int
}

func (cfg Config) validate() error {
	if cfg.Package == "" {
		return fmt.Errorf("no package name")
	}
	if cfg.MaxArity < 1 || cfg.MaxArity > MaxSupportedArity {
		return fmt.Errorf("max arity %d out of range [1, %d]", cfg.MaxArity, MaxSupportedArity)
	}
	return nil
}

// Source returns the formatted source of the tuple types
// for all arities up to cfg.MaxArity.
func Source(cfg Config) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("cannot generate tuple source: %w", err)
	}
	return execute(sourceTemplate, "tuple_gen.go", cfg)
}

// TestSource returns the formatted source of a test file that
// exercises every generated arity through the package's
// accessor functions. The test file relies on the helpers
// checkUniqueInt32 and checkAllInt32 being defined by
// another test file in the same package.
func TestSource(cfg Config) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("cannot generate tuple test source: %w", err)
	}
	if cfg.ImportPath == "" {
		return nil, fmt.Errorf("cannot generate tuple test source: no import path")
	}
	return execute(testTemplate, "tuple_gen_test.go", cfg)
}

func execute(tmpl *template.Template, filename string, cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, struct {
		Config
		Arities []arity
	}{cfg, arities(cfg.MaxArity)})
	if err != nil {
		return nil, fmt.Errorf("cannot execute template for %s: %w", filename, err)
	}
	src, err := imports.Process(filename, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot format %s: %w", filename, err)
	}
	return src, nil
}

// arity holds the template parameters for a single tuple type.
type arity struct {
	N    int
	Name string

	// Params holds the type parameter list, for example "A0, A1".
	Params string

	Slots []slot
}

type slot struct {
	Index int
	Field string
	Arg   string
}

func arities(maxArity int) []arity {
	as := make([]arity, 0, maxArity)
	for n := 1; n <= maxArity; n++ {
		a := arity{
			N:    n,
			Name: fmt.Sprintf("T%d", n),
		}
		for i := range n {
			a.Slots = append(a.Slots, slot{
				Index: i,
				Field: fmt.Sprintf("A%d", i),
				Arg:   fmt.Sprintf("a%d", i),
			})
		}
		a.Params = a.join(func(s slot) string { return s.Field })
		as = append(as, a)
	}
	return as
}

func (a arity) join(f func(slot) string) string {
	ss := make([]string, len(a.Slots))
	for i, s := range a.Slots {
		ss[i] = f(s)
	}
	return strings.Join(ss, ", ")
}

// Args returns the constructor's parameter list.
func (a arity) Args() string {
	return a.join(func(s slot) string { return s.Arg + " " + s.Field })
}

// ArgNames returns the constructor's argument names.
func (a arity) ArgNames() string {
	return a.join(func(s slot) string { return s.Arg })
}

// Results returns the result list of the T method.
func (a arity) Results() string {
	if a.N == 1 {
		return a.Params
	}
	return "(" + a.Params + ")"
}

// Fields returns the receiver's fields as a return list.
func (a arity) Fields() string {
	return a.join(func(s slot) string { return "t." + s.Field })
}

// Last returns the final slot.
func (a arity) Last() slot {
	return a.Slots[len(a.Slots)-1]
}

// UniqueValues returns constructor arguments with an int32 of 42
// in slot 0 and the distinct type [i]byte in every other slot i.
func (a arity) UniqueValues() string {
	return a.join(func(s slot) string {
		if s.Index == 0 {
			return "int32(42)"
		}
		return fmt.Sprintf("[%d]byte{}", s.Index)
	})
}

// DupValues returns constructor arguments holding int32(i) in every slot i.
func (a arity) DupValues() string {
	return a.join(func(s slot) string {
		return fmt.Sprintf("int32(%d)", s.Index)
	})
}
