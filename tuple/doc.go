// Package tuple provides a collection of generic struct types
// that hold a specific number of values, T1 to T64, and functions
// that find, read, write or transform a tuple's values by their
// static type alone.
//
// A type-indexed accessor such as [Get] looks at the declared type of
// each slot in order and acts on the one whose type is identical to
// the requested type. Only identical types match: a defined type
// does not match its underlying type, and an interface type does not
// match the types that implement it.
//
// The checked accessors ([Get], [Ref], [Set], [Map], [Take]) succeed only
// when exactly one slot has the requested type; otherwise they leave the
// tuple alone and report failure. The unchecked accessors ([GetUnchecked],
// [RefUnchecked], [SetUnchecked], [MapUnchecked]) skip the uniqueness check.
// When the type occurs more than once they act on the first such slot;
// when it does not occur at all they panic.
//
// For example:
//
//	t := tuple.MkT3(int32(42), "hello", 3.14)
//	n, _ := tuple.Get[int32](&t)          // 42
//	_, ok := tuple.Set(&t, true)          // false: there is no bool slot
//	tuple.Map(&t, func(s *string) int {   // t.A1 == "hello, world"
//		*s += ", world"
//		return len(*s)
//	})
//
// A tuple is a plain value: none of the functions here
// synchronize access to it.
package tuple

//go:generate go run generate.go
