// Package caps keeps what a device can emit, as filled by the
// EVIOCGBIT and EVIOCGPROP queries of the kernel.
package caps

import (
	"iter"
	"sort"

	"github.com/temoto/inputlinux/bitmask"
	"github.com/temoto/inputlinux/evcode"
	"github.com/temoto/inputlinux/event"
)

// Profile of one device. Bits of EventSynchronize hold supported kinds,
// like EVIOCGBIT(0). Zero value is an empty profile.
type Profile struct {
	Name  string
	Props bitmask.Bitmask[evcode.InputProperty]
	bits  map[evcode.EventKind]*bitmask.Vec
}

func NewProfile(name string) *Profile {
	return &Profile{
		Name: name,
		bits: make(map[evcode.EventKind]*bitmask.Vec),
	}
}

// SetBits stores a copy of a kernel bit buffer, sized to the code space
// of kind.
func (self *Profile) SetBits(kind evcode.EventKind, buf []byte) {
	v := bitmask.VecFromBytes(buf)
	v.Resize(kind)
	self.put(kind, v)
}

func (self *Profile) put(kind evcode.EventKind, v *bitmask.Vec) {
	if self.bits == nil {
		self.bits = make(map[evcode.EventKind]*bitmask.Vec)
	}
	self.bits[kind] = v
}

// Bits of kind. Never nil, unknown kinds give an empty set.
func (self *Profile) Bits(kind evcode.EventKind) *bitmask.Vec {
	if v, ok := self.bits[kind]; ok {
		return v
	}
	v := bitmask.NewVec()
	v.Resize(kind)
	return v
}

func (self *Profile) Kinds() *bitmask.Bitmask[evcode.EventKind] {
	return bitmask.Typed[evcode.EventKind](self.Bits(evcode.EventSynchronize))
}

// Insert marks code of kind supported, together with kind itself.
func (self *Profile) Insert(kind evcode.EventKind, code uint16) error {
	n, ok := kind.CodeCountBits()
	if ok && int(code) >= n {
		return evcode.RangeError{Space: kind.String(), Code: code, Count: n}
	}
	v, ok := self.bits[kind]
	if !ok {
		v = bitmask.NewVec()
		v.Resize(kind)
		self.put(kind, v)
	}
	if int(code) >= v.Cap() {
		return evcode.RangeError{Space: kind.String(), Code: code, Count: v.Cap()}
	}
	v.Insert(code)
	if kind != evcode.EventSynchronize && int(kind) < evcode.EventKindCount {
		return self.Insert(evcode.EventSynchronize, uint16(kind))
	}
	return nil
}

// Supports reports whether a device with this profile may emit e.
func (self *Profile) Supports(e event.InputEvent) bool {
	return self.Kinds().Get(e.Kind) && self.Bits(e.Kind).Get(e.Code)
}

// kinds with stored bits, ascending
func (self *Profile) storedKinds() []evcode.EventKind {
	ks := make([]evcode.EventKind, 0, len(self.bits))
	for k := range self.bits {
		ks = append(ks, k)
	}
	sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })
	return ks
}

// Codes yields supported codes of kind, typed as T.
//
//	for key := range caps.Codes[evcode.Key](p, evcode.EventKey) {}
func Codes[T evcode.Code](p *Profile, kind evcode.EventKind) iter.Seq[T] {
	return bitmask.Members[T](p.Bits(kind))
}
