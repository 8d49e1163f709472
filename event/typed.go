package event

import (
	"fmt"
	"unsafe"

	"github.com/temoto/inputlinux/evcode"
)

// Variant is one of the typed events of this package, or InputEvent for
// records without a typed view.
type Variant interface {
	EventKind() evcode.EventKind
	EventCode() uint16
	EventValue() int32
	EventTime() EventTime
	// InputEvent widens to the raw record. Never fails.
	InputEvent() InputEvent
	String() string
	variant()
}

type typed interface {
	SynchronizeEvent |
		KeyEvent |
		RelativeEvent |
		AbsoluteEvent |
		SwitchEvent |
		MiscEvent |
		LedEvent |
		AutorepeatEvent |
		SoundEvent |
		ForceFeedbackEvent |
		ForceFeedbackStatusEvent |
		UInputEvent |
		InputEvent
	Variant
}

// Layout of every variant equals InputEvent.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(SynchronizeEvent{})-unsafe.Sizeof(InputEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(InputEvent{})-unsafe.Sizeof(SynchronizeEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(KeyEvent{})-unsafe.Sizeof(InputEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(InputEvent{})-unsafe.Sizeof(KeyEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(RelativeEvent{})-unsafe.Sizeof(InputEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(InputEvent{})-unsafe.Sizeof(RelativeEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(AbsoluteEvent{})-unsafe.Sizeof(InputEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(InputEvent{})-unsafe.Sizeof(AbsoluteEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(SwitchEvent{})-unsafe.Sizeof(InputEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(InputEvent{})-unsafe.Sizeof(SwitchEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(MiscEvent{})-unsafe.Sizeof(InputEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(InputEvent{})-unsafe.Sizeof(MiscEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(LedEvent{})-unsafe.Sizeof(InputEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(InputEvent{})-unsafe.Sizeof(LedEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(AutorepeatEvent{})-unsafe.Sizeof(InputEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(InputEvent{})-unsafe.Sizeof(AutorepeatEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(SoundEvent{})-unsafe.Sizeof(InputEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(InputEvent{})-unsafe.Sizeof(SoundEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(ForceFeedbackEvent{})-unsafe.Sizeof(InputEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(InputEvent{})-unsafe.Sizeof(ForceFeedbackEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(ForceFeedbackStatusEvent{})-unsafe.Sizeof(InputEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(InputEvent{})-unsafe.Sizeof(ForceFeedbackStatusEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(UInputEvent{})-unsafe.Sizeof(InputEvent{})]
	_ = [1]struct{}{}[unsafe.Sizeof(InputEvent{})-unsafe.Sizeof(UInputEvent{})]
)

// SynchronizeEvent is a synchronization marker, Report ends a packet of events.
type SynchronizeEvent struct {
	Time  EventTime
	event evcode.EventKind
	Kind  evcode.SynchronizeKind
	Value int32
}

func NewSynchronizeEvent(t EventTime, kind evcode.SynchronizeKind, value int32) SynchronizeEvent {
	return SynchronizeEvent{Time: t, event: evcode.EventSynchronize, Kind: kind, Value: value}
}

func (SynchronizeEvent) EventKind() evcode.EventKind { return evcode.EventSynchronize }
func (s SynchronizeEvent) EventCode() uint16         { return uint16(s.Kind) }
func (s SynchronizeEvent) EventValue() int32         { return s.Value }
func (s SynchronizeEvent) EventTime() EventTime      { return s.Time }
func (SynchronizeEvent) variant()                    {}

func (s SynchronizeEvent) InputEvent() InputEvent {
	return InputEvent{Time: s.Time, Kind: evcode.EventSynchronize, Code: uint16(s.Kind), Value: s.Value}
}

func (s SynchronizeEvent) String() string {
	return fmt.Sprintf("%s %s %s %v", s.Time, evcode.EventSynchronize, s.Kind, s.Value)
}

func (s *SynchronizeEvent) Ref() EventRef { return Ref[SynchronizeEvent]{p: s} }
func (s *SynchronizeEvent) Owned() Event  { return Event{raw: s.InputEvent()} }
func (*SynchronizeEvent) mut()            {}

// KeyEvent is a key or button state change.
type KeyEvent struct {
	Time  EventTime
	event evcode.EventKind
	Key   evcode.Key
	Value evcode.KeyState
}

func NewKeyEvent(t EventTime, key evcode.Key, value evcode.KeyState) KeyEvent {
	return KeyEvent{Time: t, event: evcode.EventKey, Key: key, Value: value}
}

func (KeyEvent) EventKind() evcode.EventKind { return evcode.EventKey }
func (k KeyEvent) EventCode() uint16         { return uint16(k.Key) }
func (k KeyEvent) EventValue() int32         { return int32(k.Value) }
func (k KeyEvent) EventTime() EventTime      { return k.Time }
func (KeyEvent) variant()                    {}

func (k KeyEvent) InputEvent() InputEvent {
	return InputEvent{Time: k.Time, Kind: evcode.EventKey, Code: uint16(k.Key), Value: int32(k.Value)}
}

func (k KeyEvent) String() string {
	return fmt.Sprintf("%s %s %s %v", k.Time, evcode.EventKey, k.Key, k.Value)
}

func (k *KeyEvent) Ref() EventRef { return Ref[KeyEvent]{p: k} }
func (k *KeyEvent) Owned() Event  { return Event{raw: k.InputEvent()} }
func (*KeyEvent) mut()            {}

// RelativeEvent is a relative axis motion, such as mouse movement or wheel.
type RelativeEvent struct {
	Time  EventTime
	event evcode.EventKind
	Axis  evcode.RelativeAxis
	Value int32
}

func NewRelativeEvent(t EventTime, axis evcode.RelativeAxis, value int32) RelativeEvent {
	return RelativeEvent{Time: t, event: evcode.EventRelative, Axis: axis, Value: value}
}

func (RelativeEvent) EventKind() evcode.EventKind { return evcode.EventRelative }
func (r RelativeEvent) EventCode() uint16         { return uint16(r.Axis) }
func (r RelativeEvent) EventValue() int32         { return r.Value }
func (r RelativeEvent) EventTime() EventTime      { return r.Time }
func (RelativeEvent) variant()                    {}

func (r RelativeEvent) InputEvent() InputEvent {
	return InputEvent{Time: r.Time, Kind: evcode.EventRelative, Code: uint16(r.Axis), Value: r.Value}
}

func (r RelativeEvent) String() string {
	return fmt.Sprintf("%s %s %s %v", r.Time, evcode.EventRelative, r.Axis, r.Value)
}

func (r *RelativeEvent) Ref() EventRef { return Ref[RelativeEvent]{p: r} }
func (r *RelativeEvent) Owned() Event  { return Event{raw: r.InputEvent()} }
func (*RelativeEvent) mut()            {}

// AbsoluteEvent is a absolute axis position, such as touchscreen or joystick.
type AbsoluteEvent struct {
	Time  EventTime
	event evcode.EventKind
	Axis  evcode.AbsoluteAxis
	Value int32
}

func NewAbsoluteEvent(t EventTime, axis evcode.AbsoluteAxis, value int32) AbsoluteEvent {
	return AbsoluteEvent{Time: t, event: evcode.EventAbsolute, Axis: axis, Value: value}
}

func (AbsoluteEvent) EventKind() evcode.EventKind { return evcode.EventAbsolute }
func (a AbsoluteEvent) EventCode() uint16         { return uint16(a.Axis) }
func (a AbsoluteEvent) EventValue() int32         { return a.Value }
func (a AbsoluteEvent) EventTime() EventTime      { return a.Time }
func (AbsoluteEvent) variant()                    {}

func (a AbsoluteEvent) InputEvent() InputEvent {
	return InputEvent{Time: a.Time, Kind: evcode.EventAbsolute, Code: uint16(a.Axis), Value: a.Value}
}

func (a AbsoluteEvent) String() string {
	return fmt.Sprintf("%s %s %s %v", a.Time, evcode.EventAbsolute, a.Axis, a.Value)
}

func (a *AbsoluteEvent) Ref() EventRef { return Ref[AbsoluteEvent]{p: a} }
func (a *AbsoluteEvent) Owned() Event  { return Event{raw: a.InputEvent()} }
func (*AbsoluteEvent) mut()            {}

// SwitchEvent is a binary switch state.
type SwitchEvent struct {
	Time   EventTime
	event  evcode.EventKind
	Switch evcode.SwitchKind
	Value  int32
}

func NewSwitchEvent(t EventTime, sw evcode.SwitchKind, value int32) SwitchEvent {
	return SwitchEvent{Time: t, event: evcode.EventSwitch, Switch: sw, Value: value}
}

func (SwitchEvent) EventKind() evcode.EventKind { return evcode.EventSwitch }
func (s SwitchEvent) EventCode() uint16         { return uint16(s.Switch) }
func (s SwitchEvent) EventValue() int32         { return s.Value }
func (s SwitchEvent) EventTime() EventTime      { return s.Time }
func (SwitchEvent) variant()                    {}

func (s SwitchEvent) InputEvent() InputEvent {
	return InputEvent{Time: s.Time, Kind: evcode.EventSwitch, Code: uint16(s.Switch), Value: s.Value}
}

func (s SwitchEvent) String() string {
	return fmt.Sprintf("%s %s %s %v", s.Time, evcode.EventSwitch, s.Switch, s.Value)
}

func (s *SwitchEvent) Ref() EventRef { return Ref[SwitchEvent]{p: s} }
func (s *SwitchEvent) Owned() Event  { return Event{raw: s.InputEvent()} }
func (*SwitchEvent) mut()            {}

type MiscEvent struct {
	Time  EventTime
	event evcode.EventKind
	Kind  evcode.MiscKind
	Value int32
}

func NewMiscEvent(t EventTime, kind evcode.MiscKind, value int32) MiscEvent {
	return MiscEvent{Time: t, event: evcode.EventMisc, Kind: kind, Value: value}
}

func (MiscEvent) EventKind() evcode.EventKind { return evcode.EventMisc }
func (m MiscEvent) EventCode() uint16         { return uint16(m.Kind) }
func (m MiscEvent) EventValue() int32         { return m.Value }
func (m MiscEvent) EventTime() EventTime      { return m.Time }
func (MiscEvent) variant()                    {}

func (m MiscEvent) InputEvent() InputEvent {
	return InputEvent{Time: m.Time, Kind: evcode.EventMisc, Code: uint16(m.Kind), Value: m.Value}
}

func (m MiscEvent) String() string {
	return fmt.Sprintf("%s %s %s %v", m.Time, evcode.EventMisc, m.Kind, m.Value)
}

func (m *MiscEvent) Ref() EventRef { return Ref[MiscEvent]{p: m} }
func (m *MiscEvent) Owned() Event  { return Event{raw: m.InputEvent()} }
func (*MiscEvent) mut()            {}

// LedEvent is a LED state.
type LedEvent struct {
	Time  EventTime
	event evcode.EventKind
	Led   evcode.LedKind
	Value int32
}

func NewLedEvent(t EventTime, led evcode.LedKind, value int32) LedEvent {
	return LedEvent{Time: t, event: evcode.EventLed, Led: led, Value: value}
}

func (LedEvent) EventKind() evcode.EventKind { return evcode.EventLed }
func (l LedEvent) EventCode() uint16         { return uint16(l.Led) }
func (l LedEvent) EventValue() int32         { return l.Value }
func (l LedEvent) EventTime() EventTime      { return l.Time }
func (LedEvent) variant()                    {}

func (l LedEvent) InputEvent() InputEvent {
	return InputEvent{Time: l.Time, Kind: evcode.EventLed, Code: uint16(l.Led), Value: l.Value}
}

func (l LedEvent) String() string {
	return fmt.Sprintf("%s %s %s %v", l.Time, evcode.EventLed, l.Led, l.Value)
}

func (l *LedEvent) Ref() EventRef { return Ref[LedEvent]{p: l} }
func (l *LedEvent) Owned() Event  { return Event{raw: l.InputEvent()} }
func (*LedEvent) mut()            {}

// AutorepeatEvent is a autorepeat delay or period, in milliseconds.
type AutorepeatEvent struct {
	Time  EventTime
	event evcode.EventKind
	Kind  evcode.AutorepeatKind
	Value int32
}

func NewAutorepeatEvent(t EventTime, kind evcode.AutorepeatKind, value int32) AutorepeatEvent {
	return AutorepeatEvent{Time: t, event: evcode.EventAutorepeat, Kind: kind, Value: value}
}

func (AutorepeatEvent) EventKind() evcode.EventKind { return evcode.EventAutorepeat }
func (a AutorepeatEvent) EventCode() uint16         { return uint16(a.Kind) }
func (a AutorepeatEvent) EventValue() int32         { return a.Value }
func (a AutorepeatEvent) EventTime() EventTime      { return a.Time }
func (AutorepeatEvent) variant()                    {}

func (a AutorepeatEvent) InputEvent() InputEvent {
	return InputEvent{Time: a.Time, Kind: evcode.EventAutorepeat, Code: uint16(a.Kind), Value: a.Value}
}

func (a AutorepeatEvent) String() string {
	return fmt.Sprintf("%s %s %s %v", a.Time, evcode.EventAutorepeat, a.Kind, a.Value)
}

func (a *AutorepeatEvent) Ref() EventRef { return Ref[AutorepeatEvent]{p: a} }
func (a *AutorepeatEvent) Owned() Event  { return Event{raw: a.InputEvent()} }
func (*AutorepeatEvent) mut()            {}

type SoundEvent struct {
	Time  EventTime
	event evcode.EventKind
	Sound evcode.SoundKind
	Value int32
}

func NewSoundEvent(t EventTime, sound evcode.SoundKind, value int32) SoundEvent {
	return SoundEvent{Time: t, event: evcode.EventSound, Sound: sound, Value: value}
}

func (SoundEvent) EventKind() evcode.EventKind { return evcode.EventSound }
func (s SoundEvent) EventCode() uint16         { return uint16(s.Sound) }
func (s SoundEvent) EventValue() int32         { return s.Value }
func (s SoundEvent) EventTime() EventTime      { return s.Time }
func (SoundEvent) variant()                    {}

func (s SoundEvent) InputEvent() InputEvent {
	return InputEvent{Time: s.Time, Kind: evcode.EventSound, Code: uint16(s.Sound), Value: s.Value}
}

func (s SoundEvent) String() string {
	return fmt.Sprintf("%s %s %s %v", s.Time, evcode.EventSound, s.Sound, s.Value)
}

func (s *SoundEvent) Ref() EventRef { return Ref[SoundEvent]{p: s} }
func (s *SoundEvent) Owned() Event  { return Event{raw: s.InputEvent()} }
func (*SoundEvent) mut()            {}

// ForceFeedbackEvent is a force feedback play request or setting.
type ForceFeedbackEvent struct {
	Time  EventTime
	event evcode.EventKind
	Kind  evcode.ForceFeedbackKind
	Value int32
}

func NewForceFeedbackEvent(t EventTime, kind evcode.ForceFeedbackKind, value int32) ForceFeedbackEvent {
	return ForceFeedbackEvent{Time: t, event: evcode.EventForceFeedback, Kind: kind, Value: value}
}

func (ForceFeedbackEvent) EventKind() evcode.EventKind { return evcode.EventForceFeedback }
func (f ForceFeedbackEvent) EventCode() uint16         { return uint16(f.Kind) }
func (f ForceFeedbackEvent) EventValue() int32         { return f.Value }
func (f ForceFeedbackEvent) EventTime() EventTime      { return f.Time }
func (ForceFeedbackEvent) variant()                    {}

func (f ForceFeedbackEvent) InputEvent() InputEvent {
	return InputEvent{Time: f.Time, Kind: evcode.EventForceFeedback, Code: uint16(f.Kind), Value: f.Value}
}

func (f ForceFeedbackEvent) String() string {
	return fmt.Sprintf("%s %s %s %v", f.Time, evcode.EventForceFeedback, f.Kind, f.Value)
}

func (f *ForceFeedbackEvent) Ref() EventRef { return Ref[ForceFeedbackEvent]{p: f} }
func (f *ForceFeedbackEvent) Owned() Event  { return Event{raw: f.InputEvent()} }
func (*ForceFeedbackEvent) mut()            {}

type ForceFeedbackStatusEvent struct {
	Time  EventTime
	event evcode.EventKind
	Kind  evcode.ForceFeedbackStatusKind
	Value int32
}

func NewForceFeedbackStatusEvent(t EventTime, kind evcode.ForceFeedbackStatusKind, value int32) ForceFeedbackStatusEvent {
	return ForceFeedbackStatusEvent{Time: t, event: evcode.EventForceFeedbackStatus, Kind: kind, Value: value}
}

func (ForceFeedbackStatusEvent) EventKind() evcode.EventKind { return evcode.EventForceFeedbackStatus }
func (f ForceFeedbackStatusEvent) EventCode() uint16         { return uint16(f.Kind) }
func (f ForceFeedbackStatusEvent) EventValue() int32         { return f.Value }
func (f ForceFeedbackStatusEvent) EventTime() EventTime      { return f.Time }
func (ForceFeedbackStatusEvent) variant()                    {}

func (f ForceFeedbackStatusEvent) InputEvent() InputEvent {
	return InputEvent{Time: f.Time, Kind: evcode.EventForceFeedbackStatus, Code: uint16(f.Kind), Value: f.Value}
}

func (f ForceFeedbackStatusEvent) String() string {
	return fmt.Sprintf("%s %s %s %v", f.Time, evcode.EventForceFeedbackStatus, f.Kind, f.Value)
}

func (f *ForceFeedbackStatusEvent) Ref() EventRef { return Ref[ForceFeedbackStatusEvent]{p: f} }
func (f *ForceFeedbackStatusEvent) Owned() Event  { return Event{raw: f.InputEvent()} }
func (*ForceFeedbackStatusEvent) mut()            {}

// UInputEvent is a uinput feedback request, value is the request id.
type UInputEvent struct {
	Time  EventTime
	event evcode.EventKind
	Code  evcode.UInputKind
	Value int32
}

func NewUInputEvent(t EventTime, code evcode.UInputKind, value int32) UInputEvent {
	return UInputEvent{Time: t, event: evcode.EventUInput, Code: code, Value: value}
}

func (UInputEvent) EventKind() evcode.EventKind { return evcode.EventUInput }
func (u UInputEvent) EventCode() uint16         { return uint16(u.Code) }
func (u UInputEvent) EventValue() int32         { return u.Value }
func (u UInputEvent) EventTime() EventTime      { return u.Time }
func (UInputEvent) variant()                    {}

func (u UInputEvent) InputEvent() InputEvent {
	return InputEvent{Time: u.Time, Kind: evcode.EventUInput, Code: uint16(u.Code), Value: u.Value}
}

func (u UInputEvent) String() string {
	return fmt.Sprintf("%s %s %s %v", u.Time, evcode.EventUInput, u.Code, u.Value)
}

func (u *UInputEvent) Ref() EventRef { return Ref[UInputEvent]{p: u} }
func (u *UInputEvent) Owned() Event  { return Event{raw: u.InputEvent()} }
func (*UInputEvent) mut()            {}

// SynchronizeReport ends a packet of events.
func SynchronizeReport(t EventTime) SynchronizeEvent {
	return NewSynchronizeEvent(t, evcode.SynReport, 0)
}

func (e *InputEvent) Ref() EventRef { return Ref[InputEvent]{p: e} }
func (e *InputEvent) Owned() Event  { return WithEvent(*e) }
func (*InputEvent) mut()            {}

// kinds maps a kind to its typed view; absent kinds classify as unknown.
var kinds = map[evcode.EventKind]kindEntry{
	evcode.EventSynchronize:         entry[SynchronizeEvent, evcode.SynchronizeKind](),
	evcode.EventKey:                 entry[KeyEvent, evcode.Key](),
	evcode.EventRelative:            entry[RelativeEvent, evcode.RelativeAxis](),
	evcode.EventAbsolute:            entry[AbsoluteEvent, evcode.AbsoluteAxis](),
	evcode.EventSwitch:              entry[SwitchEvent, evcode.SwitchKind](),
	evcode.EventMisc:                entry[MiscEvent, evcode.MiscKind](),
	evcode.EventLed:                 entry[LedEvent, evcode.LedKind](),
	evcode.EventAutorepeat:          entry[AutorepeatEvent, evcode.AutorepeatKind](),
	evcode.EventSound:               entry[SoundEvent, evcode.SoundKind](),
	evcode.EventForceFeedback:       entry[ForceFeedbackEvent, evcode.ForceFeedbackKind](),
	evcode.EventForceFeedbackStatus: entry[ForceFeedbackStatusEvent, evcode.ForceFeedbackStatusKind](),
	evcode.EventUInput:              entry[UInputEvent, evcode.UInputKind](),
}
