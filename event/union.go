package event

import (
	"fmt"
	"unsafe"

	"github.com/temoto/inputlinux/evcode"
)

type kindEntry struct {
	count   int
	space   string
	unknown bool
	owned   func(*InputEvent) Variant
	ref     func(*InputEvent) EventRef
	mut     func(*InputEvent) EventMut
}

func entry[T typed, C evcode.Code]() kindEntry {
	var code C
	return kindEntry{
		count: evcode.Count[C](),
		space: fmt.Sprintf("%T", code),
		owned: func(e *InputEvent) Variant { return *reinterpret[T](e) },
		ref:   func(e *InputEvent) EventRef { return Ref[T]{p: reinterpret[T](e)} },
		mut:   func(e *InputEvent) EventMut { return any(reinterpret[T](e)).(EventMut) },
	}
}

var unknownEntry = kindEntry{
	unknown: true,
	owned:   func(e *InputEvent) Variant { return *e },
	ref:     func(e *InputEvent) EventRef { return Ref[InputEvent]{p: e} },
	mut:     func(e *InputEvent) EventMut { return e },
}

func reinterpret[T typed](e *InputEvent) *T { return (*T)(unsafe.Pointer(e)) }

// classify picks the arm for e. Error means known kind with code outside
// its code space.
func classify(e *InputEvent) (kindEntry, error) {
	k, ok := kinds[e.Kind]
	if !ok {
		return unknownEntry, nil
	}
	if int(e.Code) >= k.count {
		return unknownEntry, evcode.RangeError{Space: k.space, Code: e.Code, Count: k.count}
	}
	return k, nil
}

func lenient(e *InputEvent) kindEntry {
	k, _ := classify(e)
	return k
}

// Event is the owned tagged union. Exactly one arm is active: the typed
// variant of Kind, or the raw record when there is none.
// Event is comparable, == and map keys work on record contents.
type Event struct {
	raw     InputEvent
	unknown bool
}

// NewEvent fails with evcode.RangeError when the kind has a typed view
// but the code is out of its range. Unrecognized kinds are not an error.
func NewEvent(e InputEvent) (Event, error) {
	k, err := classify(&e)
	if err != nil {
		return Event{}, err
	}
	return Event{raw: e, unknown: k.unknown}, nil
}

// WithEvent always succeeds, malformed records become the unknown arm.
func WithEvent(e InputEvent) Event {
	return Event{raw: e, unknown: lenient(&e).unknown}
}

// EventOf wraps a typed variant.
func EventOf(v Variant) Event { return WithEvent(v.InputEvent()) }

func (self Event) Kind() evcode.EventKind { return self.raw.Kind }
func (self Event) IsUnknown() bool        { return self.unknown }
func (self Event) InputEvent() InputEvent { return self.raw }

func (self Event) entry() kindEntry {
	if self.unknown {
		return unknownEntry
	}
	return kinds[self.raw.Kind]
}

// Variant returns a copy of the active arm, use a type switch:
//
//	switch v := ev.Variant().(type) {
//	case event.KeyEvent:
//	case event.InputEvent: // unknown
//	}
func (self Event) Variant() Variant { return self.entry().owned(&self.raw) }

// Ref views the same record, no copy.
func (self *Event) Ref() EventRef { return self.entry().ref(&self.raw) }

// Mut views the same record, no copy. While the result is in use it must
// be the only view of self.
func (self *Event) Mut() EventMut { return self.entry().mut(&self.raw) }

func (self Event) String() string { return self.Variant().String() }

func Equal(a, b Event) bool { return a.raw == b.raw }

// Compare orders by time, kind, code, value.
func Compare(a, b Event) int {
	x, y := a.raw, b.raw
	if c := x.Time.Compare(y.Time); c != 0 {
		return c
	}
	switch {
	case x.Kind != y.Kind:
		return cmp3(int(x.Kind), int(y.Kind))
	case x.Code != y.Code:
		return cmp3(int(x.Code), int(y.Code))
	}
	return cmp3(int(x.Value), int(y.Value))
}

func cmp3(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// EventRef is a read-only tagged union over a borrowed record.
// Its concrete type is Ref[T] for the active arm T.
type EventRef interface {
	Kind() evcode.EventKind
	// Variant copies the current contents of the record.
	Variant() Variant
	InputEvent() InputEvent
	Owned() Event
	String() string
	ref()
}

func NewEventRef(e *InputEvent) (EventRef, error) {
	k, err := classify(e)
	if err != nil {
		return nil, err
	}
	return k.ref(e), nil
}

func WithEventRef(e *InputEvent) EventRef { return lenient(e).ref(e) }

// Ref is a read-only lens of type T over a record owned elsewhere.
// Writes to the record are visible through Get.
type Ref[T typed] struct {
	p *T
}

func (r Ref[T]) Get() T                 { return *r.p }
func (r Ref[T]) Kind() evcode.EventKind { return r.InputEvent().Kind }
func (r Ref[T]) Variant() Variant       { return *r.p }
func (r Ref[T]) InputEvent() InputEvent { return (*r.p).InputEvent() }
func (r Ref[T]) String() string         { return (*r.p).String() }
func (Ref[T]) ref()                     {}
func (r Ref[T]) Owned() Event           { return WithEvent(r.InputEvent()) }

// EventMut is a mutable tagged union over a borrowed record:
// one of *SynchronizeEvent, *KeyEvent ... *UInputEvent, or *InputEvent
// for the unknown arm. Writes go straight to the record.
type EventMut interface {
	Ref() EventRef
	Owned() Event
	mut()
}

func NewEventMut(e *InputEvent) (EventMut, error) {
	k, err := classify(e)
	if err != nil {
		return nil, err
	}
	return k.mut(e), nil
}

func WithEventMut(e *InputEvent) EventMut { return lenient(e).mut(e) }

func isRaw[T typed]() bool {
	var zero T
	_, ok := any(zero).(InputEvent)
	return ok
}

// As reinterprets e as variant T. It fails with evcode.RangeError unless
// e.Kind is the tag of T and e.Code is in range. As[InputEvent] never fails.
func As[T typed](e InputEvent) (T, error) {
	p, err := Borrow[T](&e)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AsUnchecked skips validation. The caller must know e classifies as T.
func AsUnchecked[T typed](e InputEvent) T { return *reinterpret[T](&e) }

// Borrow is As in place: the result points into e.
func Borrow[T typed](e *InputEvent) (*T, error) {
	if err := check[T](e); err != nil {
		return nil, err
	}
	return reinterpret[T](e), nil
}

func BorrowUnchecked[T typed](e *InputEvent) *T { return reinterpret[T](e) }

func check[T typed](e *InputEvent) error {
	if isRaw[T]() {
		return nil
	}
	var zero T
	tag := zero.EventKind()
	if e.Kind != tag {
		// wrong kind for T, Count stays 0
		return evcode.RangeError{Space: fmt.Sprintf("%T", zero), Code: uint16(e.Kind)}
	}
	_, err := classify(e)
	return err
}
