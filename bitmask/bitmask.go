// Package bitmask holds sets of event codes as one bit per ordinal,
// the same way the kernel fills EVIOCGBIT buffers.
package bitmask

import (
	"fmt"
	"iter"
	"strings"

	"github.com/temoto/inputlinux/evcode"
)

func spaceName(v interface{}) string { return fmt.Sprintf("%T", v) }

func byteLen(bits int) int { return (bits + 7) / 8 }

func position(ordinal int) (int, byte) {
	return ordinal / 8, 1 << uint(ordinal%8)
}

// Bitmask is a fixed size set over code space T.
// Zero value is an empty set ready to use.
type Bitmask[T evcode.Code] struct {
	bits []byte
}

func New[T evcode.Code]() *Bitmask[T] {
	return &Bitmask[T]{bits: make([]byte, Size[T]())}
}

// FromBytes copies a kernel bit buffer. Bytes past Size[T]() are ignored,
// a shorter buffer leaves the rest of the set empty.
func FromBytes[T evcode.Code](b []byte) *Bitmask[T] {
	self := New[T]()
	copy(self.bits, b)
	return self
}

// Size is the backing length in bytes, ceil(COUNT/8).
func Size[T evcode.Code]() int { return byteLen(evcode.Count[T]()) }

func (self *Bitmask[T]) init() {
	if self.bits == nil {
		self.bits = make([]byte, Size[T]())
	}
}

// Get reports membership. Values outside T, such as EventUInput, are
// never members.
func (self *Bitmask[T]) Get(v T) bool {
	if int(v) >= evcode.Count[T]() {
		return false
	}
	i, m := position(int(v))
	return i < len(self.bits) && self.bits[i]&m != 0
}

// Insert panics on values outside T.
func (self *Bitmask[T]) Insert(v T) {
	self.init()
	i, m := position(self.ordinal(v))
	self.bits[i] |= m
}

func (self *Bitmask[T]) Remove(v T) {
	if int(v) >= evcode.Count[T]() {
		return
	}
	i, m := position(int(v))
	if i < len(self.bits) {
		self.bits[i] &^= m
	}
}

// Toggle panics on values outside T.
func (self *Bitmask[T]) Toggle(v T) {
	self.init()
	i, m := position(self.ordinal(v))
	self.bits[i] ^= m
}

func (self *Bitmask[T]) Merge(vs ...T) {
	for _, v := range vs {
		self.Insert(v)
	}
}

// Union inserts every member of other.
func (self *Bitmask[T]) Union(other *Bitmask[T]) {
	self.init()
	for i := range other.bits {
		self.bits[i] |= other.bits[i]
	}
}

func (self *Bitmask[T]) Clear() { clear(self.bits) }

func (self *Bitmask[T]) ordinal(v T) int {
	if n := evcode.Count[T](); int(v) >= n {
		panic(evcode.RangeError{Space: spaceName(v), Code: uint16(v), Count: n})
	}
	return int(v)
}

// All yields members in ascending ordinal order.
func (self *Bitmask[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range evcode.All[T]() {
			if self.Get(v) && !yield(v) {
				return
			}
		}
	}
}

func (self *Bitmask[T]) Slice() []T {
	var out []T
	for v := range self.All() {
		out = append(out, v)
	}
	return out
}

func (self *Bitmask[T]) Len() int {
	n := 0
	for range self.All() {
		n++
	}
	return n
}

func (self *Bitmask[T]) IsEmpty() bool {
	for range self.All() {
		return false
	}
	return true
}

// Bytes returns the backing buffer, suitable for EVIOCGBIT or EVIOCSMASK.
// Writes through it change the set.
func (self *Bitmask[T]) Bytes() []byte {
	self.init()
	return self.bits
}

func (self *Bitmask[T]) Equal(other *Bitmask[T]) bool {
	for v := range evcode.All[T]() {
		if self.Get(v) != other.Get(v) {
			return false
		}
	}
	return true
}

func (self *Bitmask[T]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for v := range self.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(v.String())
	}
	b.WriteByte('}')
	return b.String()
}
