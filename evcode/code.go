// Package evcode defines the kernel input code spaces (event kinds, keys,
// axes, switches...) as dense uint16 enumerations.
//
// Every ordinal below a code space's count is valid, even when the kernel
// has no name for it yet. Such ordinals print as UnknownXX. Only ordinals
// at or above the count are errors.
package evcode

import (
	"fmt"
	"iter"

	"github.com/juju/errors"
)

// Code is a closed, contiguous code space indexed from 0.
// Ordinals must not depend on the receiver value.
type Code interface {
	~uint16
	Ordinals() int
	String() string
}

// Count returns the number of valid ordinals of T, reserved slots included.
func Count[T Code]() int {
	var zero T
	return zero.Ordinals()
}

// Next maps ordinal v to (v+1, value at v).
// ok=false means the code space is exhausted.
func Next[T Code](v int) (next int, value T, ok bool) {
	if v < 0 || v >= Count[T]() {
		return v, value, false
	}
	return v + 1, T(v), true
}

// FromCode is the single gate turning a raw kernel code into T.
func FromCode[T Code](code uint16) (T, error) {
	if n := Count[T](); int(code) >= n {
		var zero T
		return zero, RangeError{Space: spaceName(zero), Code: code, Count: n}
	}
	return T(code), nil
}

// MustFromCode panics on codes outside T.
func MustFromCode[T Code](code uint16) T {
	v, err := FromCode[T](code)
	if err != nil {
		panic(err)
	}
	return v
}

// All yields every ordinal of T in ascending order.
// Each range over the returned sequence starts again from 0.
func All[T Code]() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, value, ok := Next[T](0); ok; v, value, ok = Next[T](v) {
			if !yield(value) {
				return
			}
		}
	}
}

// Values returns All as a slice.
func Values[T Code]() []T {
	out := make([]T, 0, Count[T]())
	for v := range All[T]() {
		out = append(out, v)
	}
	return out
}

// Iterator steps through a code space by hand.
//
//	it := evcode.Iterate[evcode.Key]()
//	for it.Next() {
//		use(it.Value())
//	}
type Iterator[T Code] struct {
	next  int
	value T
}

func Iterate[T Code]() *Iterator[T] { return &Iterator[T]{} }

func (it *Iterator[T]) Next() bool {
	next, value, ok := Next[T](it.next)
	if ok {
		it.next, it.value = next, value
	}
	return ok
}

func (it *Iterator[T]) Value() T { return it.value }

// Reset restarts iteration at ordinal 0.
func (it *Iterator[T]) Reset() { *it = Iterator[T]{} }

// Parse finds the ordinal whose String() is name.
func Parse[T Code](name string) (T, error) {
	for v := range All[T]() {
		if v.String() == name {
			return v, nil
		}
	}
	var zero T
	return zero, errors.NotValidf("%s name=%q", spaceName(zero), name)
}

// RangeError reports a code at or beyond the count of its code space.
type RangeError struct {
	Space string
	Code  uint16
	Count int
}

func (e RangeError) Error() string {
	if e.Space == "" {
		return "event code out of range"
	}
	return fmt.Sprintf("event code out of range: %s code=%#x count=%#x", e.Space, e.Code, e.Count)
}

// IsRangeError looks through juju/errors annotations.
func IsRangeError(err error) bool {
	_, ok := errors.Cause(err).(RangeError)
	return ok
}

func spaceName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}

func unknownName(v uint16) string {
	return fmt.Sprintf("Unknown%02X", v)
}

// nameOf looks up v in a dense name table, falling back to UnknownXX.
func nameOf(names []string, v uint16) string {
	if int(v) < len(names) && names[v] != "" {
		return names[v]
	}
	return unknownName(v)
}
