package tuple

import (
	"fmt"
	"reflect"
)

// Tuple is implemented by pointers to the tuple types in this package.
// Its methods enumerate a tuple's slots in declaration order.
type Tuple interface {
	// Len returns the number of slots in the tuple.
	Len() int

	// SlotType returns the declared type of slot i.
	// It panics if i is out of range.
	SlotType(i int) reflect.Type

	// slot returns a pointer to slot i. Its dynamic
	// type is always *X where X is SlotType(i).
	slot(i int) any
}

// Count returns the number of slots in t whose declared type is T.
func Count[T any](t Tuple) int {
	want := reflect.TypeFor[T]()
	n := 0
	for i := range t.Len() {
		if t.SlotType(i) == want {
			n++
		}
	}
	return n
}

// ContainsUnique reports whether exactly one slot in t has type T.
func ContainsUnique[T any](t Tuple) bool {
	return Count[T](t) == 1
}

// Index returns the index of the first slot in t of type T,
// or -1 if there is none.
func Index[T any](t Tuple) int {
	want := reflect.TypeFor[T]()
	for i := range t.Len() {
		if t.SlotType(i) == want {
			return i
		}
	}
	return -1
}

// Map calls f with a pointer to the slot of type T and returns its result.
// If t does not hold exactly one slot of type T, f is not called,
// t is unchanged and Map returns the zero R and false.
func Map[T, R any](t Tuple, f func(*T) R) (R, bool) {
	if !ContainsUnique[T](t) {
		return *new(R), false
	}
	return MapUnchecked(t, f), true
}

// Get returns the value of the slot of type T.
// It returns false if t does not hold exactly one slot of type T.
func Get[T any](t Tuple) (T, bool) {
	return Map(t, deref[T])
}

// Ref returns a pointer to the slot of type T, or nil
// if t does not hold exactly one slot of type T.
func Ref[T any](t Tuple) *T {
	p, _ := Map(t, identity[T])
	return p
}

// Set stores x in the slot of type T and returns the zero T and true.
// If t does not hold exactly one slot of type T, it leaves
// t unchanged and returns x and false.
func Set[T any](t Tuple, x T) (T, bool) {
	if _, ok := Map(t, func(p *T) struct{} {
		*p = x
		return struct{}{}
	}); !ok {
		return x, false
	}
	return *new(T), true
}

// Take returns the value of the slot of type T, leaving the
// zero value of T in its place.
// It returns false and leaves t unchanged if t does not hold
// exactly one slot of type T.
func Take[T any](t Tuple) (T, bool) {
	return Map(t, func(p *T) T {
		x := *p
		*p = *new(T)
		return x
	})
}

// MapUnchecked is like [Map] except that it does not check that
// the slot of type T is unique: the caller must ensure that it is.
// If there is more than one slot of type T, f is called on the first.
// If there is none, MapUnchecked panics.
func MapUnchecked[T, R any](t Tuple, f func(*T) R) R {
	i := Index[T](t)
	if i < 0 {
		panic(notFound[T](t))
	}
	// The assertion cannot fail: slot i has type *T
	// because SlotType(i) is T.
	return f(t.slot(i).(*T))
}

// GetUnchecked is like [Get] but with the uniqueness
// semantics of [MapUnchecked].
func GetUnchecked[T any](t Tuple) T {
	return MapUnchecked(t, deref[T])
}

// RefUnchecked is like [Ref] but with the uniqueness
// semantics of [MapUnchecked].
func RefUnchecked[T any](t Tuple) *T {
	return MapUnchecked(t, identity[T])
}

// SetUnchecked is like [Set] but with the uniqueness
// semantics of [MapUnchecked].
func SetUnchecked[T any](t Tuple, x T) {
	MapUnchecked(t, func(p *T) struct{} {
		*p = x
		return struct{}{}
	})
}

func deref[T any](p *T) T {
	return *p
}

func identity[T any](p *T) *T {
	return p
}

func notFound[T any](t Tuple) string {
	return fmt.Sprintf("tuple: type %v not found in %v", reflect.TypeFor[T](), reflect.TypeOf(t))
}

func badSlot(i, n int) string {
	return fmt.Sprintf("tuple: slot index %d out of range [0, %d)", i, n)
}
