package bitmask

import (
	"fmt"
	"iter"
	"strings"

	"github.com/temoto/inputlinux/evcode"
)

const (
	// VecDefaultSize is enough for the EventKind space.
	VecDefaultSize = 0x10

	// bits assumed for kinds without a code space
	vecFallbackBits = 0x80
)

// Vec is a growable bit set indexed by raw uint16 codes, for buffers
// whose code space is chosen at runtime.
// Queries past capacity are false. Iteration stops at capacity.
type Vec struct {
	bits []byte
}

func NewVec() *Vec { return &Vec{bits: make([]byte, VecDefaultSize)} }

func VecFromBytes(b []byte) *Vec {
	return &Vec{bits: append([]byte(nil), b...)}
}

// Cap is capacity in bits.
func (self *Vec) Cap() int { return len(self.bits) * 8 }

func (self *Vec) valid(i uint16) bool { return int(i) < self.Cap() }

func (self *Vec) Get(i uint16) bool {
	if !self.valid(i) {
		return false
	}
	b, m := position(int(i))
	return self.bits[b]&m != 0
}

// Insert panics when i is past capacity.
func (self *Vec) Insert(i uint16) {
	b, m := position(int(i))
	self.bits[b] |= m
}

func (self *Vec) Remove(i uint16) {
	if !self.valid(i) {
		return
	}
	b, m := position(int(i))
	self.bits[b] &^= m
}

// Toggle panics when i is past capacity.
func (self *Vec) Toggle(i uint16) {
	b, m := position(int(i))
	self.bits[b] ^= m
}

func (self *Vec) Merge(is ...uint16) {
	for _, i := range is {
		self.Insert(i)
	}
}

func (self *Vec) Clear() { clear(self.bits) }

// Resize sets length to fit the bit buffer of kind, see
// evcode.EventKind.CodeCountBits. Growth zero-fills, shrink drops bits.
func (self *Vec) Resize(kind evcode.EventKind) {
	n, ok := kind.CodeCountBits()
	if !ok {
		n = vecFallbackBits
	}
	self.ResizeBytes(byteLen(n))
}

func (self *Vec) ResizeBytes(n int) {
	if n <= len(self.bits) {
		clear(self.bits[n:])
		self.bits = self.bits[:n]
		return
	}
	grown := make([]byte, n)
	copy(grown, self.bits)
	self.bits = grown
}

func (self *Vec) All() iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		for i := 0; i <= 0xffff; i++ {
			if !self.valid(uint16(i)) {
				return
			}
			if self.Get(uint16(i)) && !yield(uint16(i)) {
				return
			}
		}
	}
}

func (self *Vec) Slice() []uint16 {
	var out []uint16
	for i := range self.All() {
		out = append(out, i)
	}
	return out
}

func (self *Vec) Len() int {
	n := 0
	for range self.All() {
		n++
	}
	return n
}

// Bytes returns the backing buffer. Writes through it change the set.
func (self *Vec) Bytes() []byte { return self.bits }

func (self *Vec) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i := range self.All() {
		if b.Len() > 1 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%#x", i)
	}
	b.WriteByte('}')
	return b.String()
}

// Members walks the ordinals of T in v, ascending, and stops at the
// first ordinal past capacity.
func Members[T evcode.Code](v *Vec) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := range evcode.All[T]() {
			if !v.valid(uint16(c)) {
				return
			}
			if v.Get(uint16(c)) && !yield(c) {
				return
			}
		}
	}
}

// Typed copies the first Size[T]() bytes of v into a fixed set.
func Typed[T evcode.Code](v *Vec) *Bitmask[T] {
	return FromBytes[T](v.bits)
}
