// Package event is the kernel input_event record and typed views over it.
//
// InputEvent matches struct input_event byte for byte. Each typed variant
// (KeyEvent, RelativeEvent...) has the very same layout, so a *InputEvent
// can be viewed as a *KeyEvent in place. Event, EventRef and EventMut are
// the owned, read-only and mutable tagged unions over all variants.
package event

import (
	"fmt"
	"unsafe"

	"github.com/temoto/inputevent-go"
	"github.com/temoto/inputlinux/evcode"
)

type InputEvent struct {
	Time  EventTime
	Kind  evcode.EventKind
	Code  uint16
	Value int32
}

// Size of a record in bytes: 24 on 64-bit platforms, 16 on 32-bit.
const Size = int(unsafe.Sizeof(InputEvent{}))

var _ = [1]struct{}{}[Size-inputevent.EventSizeof]
var _ = [1]struct{}{}[inputevent.EventSizeof-Size]

// Zeroed is Synchronize/Report with zero time and value.
func Zeroed() InputEvent {
	return SynchronizeReport(EventTime{}).InputEvent()
}

func (e InputEvent) EventKind() evcode.EventKind { return e.Kind }
func (e InputEvent) EventCode() uint16           { return e.Code }
func (e InputEvent) EventValue() int32           { return e.Value }
func (e InputEvent) EventTime() EventTime        { return e.Time }
func (e InputEvent) InputEvent() InputEvent      { return e }
func (InputEvent) variant()                      {}

func (e InputEvent) String() string {
	return fmt.Sprintf("%s %s code=%#x value=%d", e.Time, e.Kind, e.Code, e.Value)
}

// FromRaw converts the record type of github.com/temoto/inputevent-go.
// Kind is validated, code is not.
func FromRaw(r inputevent.InputEvent) (InputEvent, error) {
	if _, err := evcode.EventKindFromType(r.Type); err != nil {
		return InputEvent{}, err
	}
	return fromRaw(r), nil
}

func fromRaw(r inputevent.InputEvent) InputEvent {
	return InputEvent{
		Time:  EventTime{tv: timevalFromSyscall(r.Time)},
		Kind:  evcode.EventKind(r.Type),
		Code:  r.Code,
		Value: r.Value,
	}
}

func (e InputEvent) Raw() inputevent.InputEvent {
	return inputevent.InputEvent{
		Time:  e.Time.syscallTimeval(),
		Type:  uint16(e.Kind),
		Code:  e.Code,
		Value: e.Value,
	}
}
