package tuple_test

import (
	"errors"
	"io"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rogpeppe/tupleset/tuple"
)

type celsius float64

func TestCount(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", 2.5)
	qt.Assert(t, qt.Equals(tuple.Count[int32](&tup), 1))
	qt.Assert(t, qt.Equals(tuple.Count[string](&tup), 1))
	qt.Assert(t, qt.Equals(tuple.Count[float64](&tup), 1))
	qt.Assert(t, qt.Equals(tuple.Count[bool](&tup), 0))
	qt.Assert(t, qt.Equals(tuple.Count[uint16](&tup), 0))
}

func TestCountDuplicates(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", int32(100))
	qt.Assert(t, qt.Equals(tuple.Count[int32](&tup), 2))
	qt.Assert(t, qt.IsFalse(tuple.ContainsUnique[int32](&tup)))

	all := tuple.MkT5(int32(1), int32(2), int32(3), int32(4), int32(5))
	qt.Assert(t, qt.Equals(tuple.Count[int32](&all), 5))
}

func TestCountExactTypeIdentity(t *testing.T) {
	var r io.Reader = strings.NewReader("x")
	tup := tuple.MkT5(celsius(20), r, errors.New("oops"), byte(1), &strings.Builder{})

	// A defined type does not match its underlying type.
	qt.Assert(t, qt.Equals(tuple.Count[float64](&tup), 0))
	qt.Assert(t, qt.Equals(tuple.Count[celsius](&tup), 1))

	// Interface slots match only the interface type itself.
	qt.Assert(t, qt.Equals(tuple.Count[io.Reader](&tup), 1))
	qt.Assert(t, qt.Equals(tuple.Count[*strings.Reader](&tup), 0))
	qt.Assert(t, qt.Equals(tuple.Count[io.Writer](&tup), 0))
	qt.Assert(t, qt.Equals(tuple.Count[error](&tup), 1))
	qt.Assert(t, qt.Equals(tuple.Count[*strings.Builder](&tup), 1))

	// Aliases denote the same type.
	qt.Assert(t, qt.Equals(tuple.Count[uint8](&tup), 1))
}

func TestContainsUnique(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", 2.5)
	qt.Assert(t, qt.IsTrue(tuple.ContainsUnique[int32](&tup)))
	qt.Assert(t, qt.IsTrue(tuple.ContainsUnique[string](&tup)))
	qt.Assert(t, qt.IsTrue(tuple.ContainsUnique[float64](&tup)))
	qt.Assert(t, qt.IsFalse(tuple.ContainsUnique[bool](&tup)))
}

func TestIndex(t *testing.T) {
	tup := tuple.MkT4("a", int32(1), "b", int32(2))
	qt.Assert(t, qt.Equals(tuple.Index[string](&tup), 0))
	qt.Assert(t, qt.Equals(tuple.Index[int32](&tup), 1))
	qt.Assert(t, qt.Equals(tuple.Index[bool](&tup), -1))
}

func TestSlotType(t *testing.T) {
	tup := tuple.MkT2(int32(1), "x")
	qt.Assert(t, qt.Equals(tup.Len(), 2))
	qt.Assert(t, qt.Equals(tup.SlotType(0), reflect.TypeFor[int32]()))
	qt.Assert(t, qt.Equals(tup.SlotType(1), reflect.TypeFor[string]()))
	qt.Assert(t, qt.PanicMatches(func() {
		tup.SlotType(2)
	}, `tuple: slot index 2 out of range \[0, 2\)`))
}

func TestGet(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", 3.14)
	n, ok := tuple.Get[int32](&tup)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(n, int32(42)))

	s, ok := tuple.Get[string](&tup)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(s, "hello"))

	b, ok := tuple.Get[bool](&tup)
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.IsFalse(b))
}

func TestGetDuplicates(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", int32(100))
	n, ok := tuple.Get[int32](&tup)
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Equals(n, int32(0)))
}

func TestRef(t *testing.T) {
	tup := tuple.MkT2(int32(42), "hello")
	p := tuple.Ref[string](&tup)
	qt.Assert(t, qt.Equals(p, &tup.A1))
	*p = "goodbye"
	qt.Assert(t, qt.Equals(tup.A1, "goodbye"))

	qt.Assert(t, qt.IsNil(tuple.Ref[bool](&tup)))

	dup := tuple.MkT2("a", "b")
	qt.Assert(t, qt.IsNil(tuple.Ref[string](&dup)))
}

func TestSet(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", 3.14)
	old, ok := tuple.Set(&tup, int32(100))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(old, int32(0)))
	qt.Assert(t, qt.Equals(tup.A0, int32(100)))

	_, ok = tuple.Set(&tup, "world")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(tup.A1, "world"))
}

func TestSetNotFound(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", 3.14)
	before := tup
	x, ok := tuple.Set(&tup, true)
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.IsTrue(x))
	qt.Assert(t, qt.Equals(tup, before))
}

func TestSetDuplicates(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", int32(100))
	before := tup
	x, ok := tuple.Set(&tup, int32(7))
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Equals(x, int32(7)))
	qt.Assert(t, qt.Equals(tup, before))
}

func TestFailureLeavesNaNUnchanged(t *testing.T) {
	tup := tuple.MkT3(math.NaN(), "x", math.NaN())
	before := tup
	_, ok := tuple.Set(&tup, 1.0)
	qt.Assert(t, qt.IsFalse(ok))
	_, ok = tuple.Take[float64](&tup)
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.CmpEquals(tup, before, cmpopts.EquateNaNs()))
}

func TestMap(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", 3.14)
	old, ok := tuple.Map(&tup, func(x *int32) int32 {
		old := *x
		*x *= 2
		return old
	})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(old, int32(42)))
	qt.Assert(t, qt.Equals(tup.A0, int32(84)))

	n, ok := tuple.Map(&tup, func(s *string) int {
		*s += ", world"
		return len(*s)
	})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(n, 12))
	qt.Assert(t, qt.Equals(tup.A1, "hello, world"))
}

func TestMapNotUnique(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", int32(100))
	before := tup
	called := false
	f := func(x *int32) int {
		called = true
		*x = 0
		return 1
	}
	r, ok := tuple.Map(&tup, f)
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Equals(r, 0))
	qt.Assert(t, qt.IsFalse(called))
	qt.Assert(t, qt.Equals(tup, before))

	_, ok = tuple.Map(&tup, func(*bool) int {
		called = true
		return 1
	})
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.IsFalse(called))
}

func TestTake(t *testing.T) {
	n, f := int32(42), 2.5
	tup := tuple.MkT3(&n, "hello", &f)

	p, ok := tuple.Take[*int32](&tup)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(p, &n))
	qt.Assert(t, qt.IsNil(tup.A0))

	q, ok := tuple.Take[*float64](&tup)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(*q, 2.5))
	qt.Assert(t, qt.IsNil(tup.A2))
}

func TestTakeSingleSlot(t *testing.T) {
	n := int32(42)
	tup := tuple.MkT1(&n)
	p, ok := tuple.Take[*int32](&tup)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(*p, int32(42)))
	qt.Assert(t, qt.IsNil(tup.A0))
}

func TestTakeSlice(t *testing.T) {
	tup := tuple.MkT3([]int{1, 2, 3}, "hello", int32(42))
	s, ok := tuple.Take[[]int](&tup)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.DeepEquals(s, []int{1, 2, 3}))
	qt.Assert(t, qt.IsNil(tup.A0))
}

func TestTakeNotUnique(t *testing.T) {
	n, m := int32(42), int32(100)
	tup := tuple.MkT3(&n, "hello", &m)

	p, ok := tuple.Take[*int32](&tup)
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.IsNil(p))
	qt.Assert(t, qt.Equals(tup.A0, &n))
	qt.Assert(t, qt.Equals(tup.A2, &m))

	_, ok = tuple.Take[bool](&tup)
	qt.Assert(t, qt.IsFalse(ok))
}

func TestGetUnchecked(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", 2.5)
	qt.Assert(t, qt.Equals(tuple.GetUnchecked[int32](&tup), int32(42)))
	qt.Assert(t, qt.Equals(tuple.GetUnchecked[string](&tup), "hello"))
	qt.Assert(t, qt.Equals(tuple.GetUnchecked[float64](&tup), 2.5))
}

func TestGetUncheckedFirstOccurrence(t *testing.T) {
	tup := tuple.MkT3("x", int32(10), int32(20))
	qt.Assert(t, qt.Equals(tuple.GetUnchecked[int32](&tup), int32(10)))
	qt.Assert(t, qt.Equals(tuple.RefUnchecked[int32](&tup), &tup.A1))
}

func TestSetUnchecked(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", 2.5)
	tuple.SetUnchecked(&tup, int32(200))
	qt.Assert(t, qt.Equals(tup.A0, int32(200)))
}

func TestSetUncheckedFirstOccurrence(t *testing.T) {
	tup := tuple.MkT3(int32(10), "x", int32(20))
	tuple.SetUnchecked(&tup, int32(99))
	qt.Assert(t, qt.Equals(tup, tuple.MkT3(int32(99), "x", int32(20))))
}

func TestMapUnchecked(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", 2.5)
	r := tuple.MapUnchecked(&tup, func(x *int32) int32 {
		*x *= 2
		return *x
	})
	qt.Assert(t, qt.Equals(r, int32(84)))
	qt.Assert(t, qt.Equals(tup.A0, int32(84)))
}

func TestMapUncheckedFirstOccurrence(t *testing.T) {
	tup := tuple.MkT3(int32(10), int32(20), "x")
	r := tuple.MapUnchecked(&tup, func(x *int32) int32 {
		*x++
		return *x
	})
	qt.Assert(t, qt.Equals(r, int32(11)))
	qt.Assert(t, qt.Equals(tup, tuple.MkT3(int32(11), int32(20), "x")))
}

func TestMapUncheckedLargeTuple(t *testing.T) {
	tup := tuple.MkT8(int32(1), uint32(2), int64(3), uint64(4), float32(5), 6.0, false, 'x')
	r := tuple.MapUnchecked(&tup, func(b *bool) bool {
		*b = true
		return *b
	})
	qt.Assert(t, qt.IsTrue(r))
	qt.Assert(t, qt.IsTrue(tup.A6))
}

func TestUncheckedNotFoundPanics(t *testing.T) {
	tup := tuple.MkT1(true)
	qt.Assert(t, qt.PanicMatches(func() {
		tuple.GetUnchecked[string](&tup)
	}, `tuple: type string not found in \*tuple\.T1\[.*`))
	qt.Assert(t, qt.PanicMatches(func() {
		tuple.RefUnchecked[string](&tup)
	}, `tuple: type string not found in .*`))
	qt.Assert(t, qt.PanicMatches(func() {
		tuple.SetUnchecked(&tup, "x")
	}, `tuple: type string not found in .*`))
	qt.Assert(t, qt.PanicMatches(func() {
		tuple.MapUnchecked(&tup, func(*int) int { return 0 })
	}, `tuple: type int not found in .*`))
	qt.Assert(t, qt.IsTrue(tup.A0))
}

func TestT(t *testing.T) {
	tup := tuple.MkT3(int32(42), "hello", 2.5)
	n, s, f := tup.T()
	qt.Assert(t, qt.Equals(n, int32(42)))
	qt.Assert(t, qt.Equals(s, "hello"))
	qt.Assert(t, qt.Equals(f, 2.5))

	qt.Assert(t, qt.Equals(tuple.MkT1("x").T(), "x"))
}

// checkUniqueInt32 checks a tuple holding int32(42) in slot 0 and
// a value of type [i]byte in every other slot i.
func checkUniqueInt32(t *testing.T, tup tuple.Tuple) {
	t.Helper()
	n := tup.Len()
	qt.Assert(t, qt.Equals(tuple.Count[int32](tup), 1))
	qt.Assert(t, qt.IsTrue(tuple.ContainsUnique[int32](tup)))
	qt.Assert(t, qt.Equals(tuple.Index[int32](tup), 0))
	qt.Assert(t, qt.Equals(tup.SlotType(0), reflect.TypeFor[int32]()))
	for i := 1; i < n; i++ {
		qt.Assert(t, qt.Equals(tup.SlotType(i), reflect.ArrayOf(i, reflect.TypeFor[byte]())))
	}

	x, ok := tuple.Get[int32](tup)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(x, int32(42)))
	qt.Assert(t, qt.Equals(tuple.GetUnchecked[int32](tup), int32(42)))

	r, ok := tuple.Map(tup, func(x *int32) int32 {
		*x *= 2
		return *x
	})
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(r, int32(84)))
	qt.Assert(t, qt.Equals(*tuple.Ref[int32](tup), int32(84)))

	_, ok = tuple.Set(tup, int32(42))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(tuple.GetUnchecked[int32](tup), int32(42)))

	_, ok = tuple.Get[bool](tup)
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.PanicMatches(func() {
		tuple.GetUnchecked[bool](tup)
	}, `tuple: type bool not found in .*`))
	qt.Assert(t, qt.PanicMatches(func() {
		tuple.MapUnchecked(tup, func(*bool) int { return 0 })
	}, `tuple: type bool not found in .*`))
}

// checkAllInt32 checks a tuple holding int32(i) in every slot i.
// It leaves 100 in slot 0.
func checkAllInt32(t *testing.T, tup tuple.Tuple) {
	t.Helper()
	n := tup.Len()
	qt.Assert(t, qt.Equals(tuple.Count[int32](tup), n))
	qt.Assert(t, qt.Equals(tuple.ContainsUnique[int32](tup), n == 1))
	qt.Assert(t, qt.Equals(tuple.Index[int32](tup), 0))

	_, ok := tuple.Get[int32](tup)
	qt.Assert(t, qt.Equals(ok, n == 1))
	if n > 1 {
		x, ok := tuple.Set(tup, int32(7))
		qt.Assert(t, qt.IsFalse(ok))
		qt.Assert(t, qt.Equals(x, int32(7)))
	}
	qt.Assert(t, qt.Equals(tuple.GetUnchecked[int32](tup), int32(0)))
	r := tuple.MapUnchecked(tup, func(x *int32) int32 {
		*x += 100
		return *x
	})
	qt.Assert(t, qt.Equals(r, int32(100)))
	qt.Assert(t, qt.Equals(tuple.GetUnchecked[int32](tup), int32(100)))
}
