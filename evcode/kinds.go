package evcode

import "fmt"

// EventKind is the type field of an input event (EV_*).
type EventKind uint16

const (
	EventSynchronize         EventKind = 0x00
	EventKey                 EventKind = 0x01
	EventRelative            EventKind = 0x02
	EventAbsolute            EventKind = 0x03
	EventMisc                EventKind = 0x04
	EventSwitch              EventKind = 0x05
	EventLed                 EventKind = 0x11
	EventSound               EventKind = 0x12
	EventAutorepeat          EventKind = 0x14
	EventForceFeedback       EventKind = 0x15
	EventPower               EventKind = 0x16
	EventForceFeedbackStatus EventKind = 0x17

	// EventUInput lives outside the EV_CNT range and has no bit in
	// EVIOCGBIT buffers.
	EventUInput EventKind = 0x0101

	EventKindCount = 0x20
)

var eventKindNames = []string{
	EventSynchronize:         "Synchronize",
	EventKey:                 "Key",
	EventRelative:            "Relative",
	EventAbsolute:            "Absolute",
	EventMisc:                "Misc",
	EventSwitch:              "Switch",
	EventLed:                 "Led",
	EventSound:               "Sound",
	EventAutorepeat:          "Autorepeat",
	EventForceFeedback:       "ForceFeedback",
	EventPower:               "Power",
	EventForceFeedbackStatus: "ForceFeedbackStatus",
}

func (EventKind) Ordinals() int { return EventKindCount }

func (k EventKind) String() string {
	if k == EventUInput {
		return "UInput"
	}
	return nameOf(eventKindNames, uint16(k))
}

// EventKindFromType validates a raw type field.
// Unlike FromCode it also accepts EventUInput.
func EventKindFromType(code uint16) (EventKind, error) {
	if code < EventKindCount || EventKind(code) == EventUInput {
		return EventKind(code), nil
	}
	return 0, RangeError{Space: "evcode.EventKind", Code: code, Count: EventKindCount}
}

// CodeCount returns how many codes the kind's code space holds.
// ok=false for kinds without a code space (Power, reserved kinds).
func (k EventKind) CodeCount() (n int, ok bool) {
	switch k {
	case EventSynchronize:
		return Count[SynchronizeKind](), true
	case EventKey:
		return Count[Key](), true
	case EventRelative:
		return Count[RelativeAxis](), true
	case EventAbsolute:
		return Count[AbsoluteAxis](), true
	case EventMisc:
		return Count[MiscKind](), true
	case EventSwitch:
		return Count[SwitchKind](), true
	case EventLed:
		return Count[LedKind](), true
	case EventSound:
		return Count[SoundKind](), true
	case EventAutorepeat:
		return Count[AutorepeatKind](), true
	case EventForceFeedback:
		return Count[ForceFeedbackKind](), true
	case EventForceFeedbackStatus:
		return Count[ForceFeedbackStatusKind](), true
	case EventUInput:
		return Count[UInputKind](), true
	}
	return 0, false
}

// CodeCountBits is CodeCount as seen by EVIOCGBIT and EVIOCGMASK:
// asking for the Synchronize bits returns the supported event kinds.
// Use it to size bitmask buffers.
func (k EventKind) CodeCountBits() (int, bool) {
	if k == EventSynchronize {
		return EventKindCount, true
	}
	return k.CodeCount()
}

type SynchronizeKind uint16

const (
	SynReport           SynchronizeKind = 0
	SynConfig           SynchronizeKind = 1
	SynMultitouchReport SynchronizeKind = 2
	SynDropped          SynchronizeKind = 3
)

var synchronizeNames = []string{"Report", "Config", "MultitouchReport", "Dropped"}

func (SynchronizeKind) Ordinals() int    { return 0x10 }
func (k SynchronizeKind) String() string { return nameOf(synchronizeNames, uint16(k)) }

// KeyState is the value of a key event. Values other than the three
// named states are kept as is.
type KeyState int32

const (
	KeyReleased   KeyState = 0
	KeyPressed    KeyState = 1
	KeyAutorepeat KeyState = 2
)

func KeyStatePressed(pressed bool) KeyState {
	if pressed {
		return KeyPressed
	}
	return KeyReleased
}

func (s KeyState) IsPressed() bool { return s == KeyPressed }

func (s KeyState) String() string {
	switch s {
	case KeyReleased:
		return "released"
	case KeyPressed:
		return "pressed"
	case KeyAutorepeat:
		return "autorepeat"
	}
	return fmt.Sprintf("KeyState(%d)", int32(s))
}

type RelativeAxis uint16

const (
	RelX                    RelativeAxis = 0x00
	RelY                    RelativeAxis = 0x01
	RelZ                    RelativeAxis = 0x02
	RelRX                   RelativeAxis = 0x03
	RelRY                   RelativeAxis = 0x04
	RelRZ                   RelativeAxis = 0x05
	RelHorizontalWheel      RelativeAxis = 0x06
	RelDial                 RelativeAxis = 0x07
	RelWheel                RelativeAxis = 0x08
	RelMisc                 RelativeAxis = 0x09
	RelReserved             RelativeAxis = 0x0a
	RelWheelHiRes           RelativeAxis = 0x0b
	RelHorizontalWheelHiRes RelativeAxis = 0x0c
)

var relativeNames = []string{
	"X", "Y", "Z", "RX", "RY", "RZ", "HorizontalWheel", "Dial", "Wheel", "Misc",
	"Reserved", "WheelHiRes", "HorizontalWheelHiRes",
}

func (RelativeAxis) Ordinals() int    { return 0x10 }
func (a RelativeAxis) String() string { return nameOf(relativeNames, uint16(a)) }

type AbsoluteAxis uint16

const (
	AbsX                     AbsoluteAxis = 0x00
	AbsY                     AbsoluteAxis = 0x01
	AbsZ                     AbsoluteAxis = 0x02
	AbsRX                    AbsoluteAxis = 0x03
	AbsRY                    AbsoluteAxis = 0x04
	AbsRZ                    AbsoluteAxis = 0x05
	AbsThrottle              AbsoluteAxis = 0x06
	AbsRudder                AbsoluteAxis = 0x07
	AbsWheel                 AbsoluteAxis = 0x08
	AbsGas                   AbsoluteAxis = 0x09
	AbsBrake                 AbsoluteAxis = 0x0a
	AbsHat0X                 AbsoluteAxis = 0x10
	AbsHat0Y                 AbsoluteAxis = 0x11
	AbsHat1X                 AbsoluteAxis = 0x12
	AbsHat1Y                 AbsoluteAxis = 0x13
	AbsHat2X                 AbsoluteAxis = 0x14
	AbsHat2Y                 AbsoluteAxis = 0x15
	AbsHat3X                 AbsoluteAxis = 0x16
	AbsHat3Y                 AbsoluteAxis = 0x17
	AbsPressure              AbsoluteAxis = 0x18
	AbsDistance              AbsoluteAxis = 0x19
	AbsTiltX                 AbsoluteAxis = 0x1a
	AbsTiltY                 AbsoluteAxis = 0x1b
	AbsToolWidth             AbsoluteAxis = 0x1c
	AbsVolume                AbsoluteAxis = 0x20
	AbsProfile               AbsoluteAxis = 0x21
	AbsMisc                  AbsoluteAxis = 0x28
	AbsReserved              AbsoluteAxis = 0x2e
	AbsMultitouchSlot        AbsoluteAxis = 0x2f
	AbsMultitouchTouchMajor  AbsoluteAxis = 0x30
	AbsMultitouchTouchMinor  AbsoluteAxis = 0x31
	AbsMultitouchWidthMajor  AbsoluteAxis = 0x32
	AbsMultitouchWidthMinor  AbsoluteAxis = 0x33
	AbsMultitouchOrientation AbsoluteAxis = 0x34
	AbsMultitouchPositionX   AbsoluteAxis = 0x35
	AbsMultitouchPositionY   AbsoluteAxis = 0x36
	AbsMultitouchToolType    AbsoluteAxis = 0x37
	AbsMultitouchBlobID      AbsoluteAxis = 0x38
	AbsMultitouchTrackingID  AbsoluteAxis = 0x39
	AbsMultitouchPressure    AbsoluteAxis = 0x3a
	AbsMultitouchDistance    AbsoluteAxis = 0x3b
	AbsMultitouchToolX       AbsoluteAxis = 0x3c
	AbsMultitouchToolY       AbsoluteAxis = 0x3d
)

var absoluteNames = []string{
	AbsX: "X", AbsY: "Y", AbsZ: "Z", AbsRX: "RX", AbsRY: "RY", AbsRZ: "RZ",
	AbsThrottle: "Throttle", AbsRudder: "Rudder", AbsWheel: "Wheel", AbsGas: "Gas", AbsBrake: "Brake",
	AbsHat0X: "Hat0X", AbsHat0Y: "Hat0Y", AbsHat1X: "Hat1X", AbsHat1Y: "Hat1Y",
	AbsHat2X: "Hat2X", AbsHat2Y: "Hat2Y", AbsHat3X: "Hat3X", AbsHat3Y: "Hat3Y",
	AbsPressure: "Pressure", AbsDistance: "Distance", AbsTiltX: "TiltX", AbsTiltY: "TiltY",
	AbsToolWidth: "ToolWidth", AbsVolume: "Volume", AbsProfile: "Profile", AbsMisc: "Misc",
	AbsReserved:              "Reserved",
	AbsMultitouchSlot:        "MultitouchSlot",
	AbsMultitouchTouchMajor:  "MultitouchTouchMajor",
	AbsMultitouchTouchMinor:  "MultitouchTouchMinor",
	AbsMultitouchWidthMajor:  "MultitouchWidthMajor",
	AbsMultitouchWidthMinor:  "MultitouchWidthMinor",
	AbsMultitouchOrientation: "MultitouchOrientation",
	AbsMultitouchPositionX:   "MultitouchPositionX",
	AbsMultitouchPositionY:   "MultitouchPositionY",
	AbsMultitouchToolType:    "MultitouchToolType",
	AbsMultitouchBlobID:      "MultitouchBlobID",
	AbsMultitouchTrackingID:  "MultitouchTrackingID",
	AbsMultitouchPressure:    "MultitouchPressure",
	AbsMultitouchDistance:    "MultitouchDistance",
	AbsMultitouchToolX:       "MultitouchToolX",
	AbsMultitouchToolY:       "MultitouchToolY",
}

func (AbsoluteAxis) Ordinals() int    { return 0x40 }
func (a AbsoluteAxis) String() string { return nameOf(absoluteNames, uint16(a)) }

type SwitchKind uint16

const (
	SwitchLid                SwitchKind = 0x00 // set = lid shut
	SwitchTabletMode         SwitchKind = 0x01
	SwitchHeadphoneInsert    SwitchKind = 0x02
	SwitchRfKillAll          SwitchKind = 0x03 // set = radio enabled
	SwitchMicrophoneInsert   SwitchKind = 0x04
	SwitchDock               SwitchKind = 0x05
	SwitchLineoutInsert      SwitchKind = 0x06
	SwitchJackPhysicalInsert SwitchKind = 0x07
	SwitchVideoOutInsert     SwitchKind = 0x08
	SwitchCameraLensCover    SwitchKind = 0x09
	SwitchKeypadSlide        SwitchKind = 0x0a
	SwitchFrontProximity     SwitchKind = 0x0b
	SwitchRotateLock         SwitchKind = 0x0c
	SwitchLineInInsert       SwitchKind = 0x0d
	SwitchMuteDevice         SwitchKind = 0x0e
	SwitchPenInserted        SwitchKind = 0x0f
	SwitchMachineCover       SwitchKind = 0x10
)

var switchNames = []string{
	"Lid", "TabletMode", "HeadphoneInsert", "RfKillAll", "MicrophoneInsert", "Dock",
	"LineoutInsert", "JackPhysicalInsert", "VideoOutInsert", "CameraLensCover",
	"KeypadSlide", "FrontProximity", "RotateLock", "LineInInsert", "MuteDevice",
	"PenInserted", "MachineCover",
}

func (SwitchKind) Ordinals() int    { return 0x11 }
func (k SwitchKind) String() string { return nameOf(switchNames, uint16(k)) }

type MiscKind uint16

const (
	MiscSerial    MiscKind = 0x00
	MiscPulseLed  MiscKind = 0x01
	MiscGesture   MiscKind = 0x02
	MiscRaw       MiscKind = 0x03
	MiscScancode  MiscKind = 0x04
	MiscTimestamp MiscKind = 0x05
)

var miscNames = []string{"Serial", "PulseLed", "Gesture", "Raw", "Scancode", "Timestamp"}

func (MiscKind) Ordinals() int    { return 0x08 }
func (k MiscKind) String() string { return nameOf(miscNames, uint16(k)) }

type LedKind uint16

const (
	LedNumLock    LedKind = 0x00
	LedCapsLock   LedKind = 0x01
	LedScrollLock LedKind = 0x02
	LedCompose    LedKind = 0x03
	LedKana       LedKind = 0x04
	LedSleep      LedKind = 0x05
	LedSuspend    LedKind = 0x06
	LedMute       LedKind = 0x07
	LedMisc       LedKind = 0x08
	LedMail       LedKind = 0x09
	LedCharging   LedKind = 0x0a
)

var ledNames = []string{
	"NumLock", "CapsLock", "ScrollLock", "Compose", "Kana", "Sleep", "Suspend",
	"Mute", "Misc", "Mail", "Charging",
}

func (LedKind) Ordinals() int    { return 0x10 }
func (k LedKind) String() string { return nameOf(ledNames, uint16(k)) }

type AutorepeatKind uint16

const (
	AutorepeatDelay  AutorepeatKind = 0x00
	AutorepeatPeriod AutorepeatKind = 0x01
)

var autorepeatNames = []string{"Delay", "Period"}

func (AutorepeatKind) Ordinals() int    { return 0x02 }
func (k AutorepeatKind) String() string { return nameOf(autorepeatNames, uint16(k)) }

type SoundKind uint16

const (
	SoundClick SoundKind = 0x00
	SoundBell  SoundKind = 0x01
	SoundTone  SoundKind = 0x02
)

var soundNames = []string{"Click", "Bell", "Tone"}

func (SoundKind) Ordinals() int    { return 0x08 }
func (k SoundKind) String() string { return nameOf(soundNames, uint16(k)) }

// ForceFeedbackKind codes below ForceFeedbackRumble are effect ids.
type ForceFeedbackKind uint16

const (
	ForceFeedbackRumble     ForceFeedbackKind = 0x50
	ForceFeedbackPeriodic   ForceFeedbackKind = 0x51
	ForceFeedbackConstant   ForceFeedbackKind = 0x52
	ForceFeedbackSpring     ForceFeedbackKind = 0x53
	ForceFeedbackFriction   ForceFeedbackKind = 0x54
	ForceFeedbackDamper     ForceFeedbackKind = 0x55
	ForceFeedbackInertia    ForceFeedbackKind = 0x56
	ForceFeedbackRamp       ForceFeedbackKind = 0x57
	ForceFeedbackSquare     ForceFeedbackKind = 0x58
	ForceFeedbackTriangle   ForceFeedbackKind = 0x59
	ForceFeedbackSine       ForceFeedbackKind = 0x5a
	ForceFeedbackSawUp      ForceFeedbackKind = 0x5b
	ForceFeedbackSawDown    ForceFeedbackKind = 0x5c
	ForceFeedbackCustom     ForceFeedbackKind = 0x5d
	ForceFeedbackGain       ForceFeedbackKind = 0x60
	ForceFeedbackAutocenter ForceFeedbackKind = 0x61
)

var forceFeedbackNames = []string{
	ForceFeedbackRumble:     "Rumble",
	ForceFeedbackPeriodic:   "Periodic",
	ForceFeedbackConstant:   "Constant",
	ForceFeedbackSpring:     "Spring",
	ForceFeedbackFriction:   "Friction",
	ForceFeedbackDamper:     "Damper",
	ForceFeedbackInertia:    "Inertia",
	ForceFeedbackRamp:       "Ramp",
	ForceFeedbackSquare:     "Square",
	ForceFeedbackTriangle:   "Triangle",
	ForceFeedbackSine:       "Sine",
	ForceFeedbackSawUp:      "SawUp",
	ForceFeedbackSawDown:    "SawDown",
	ForceFeedbackCustom:     "Custom",
	ForceFeedbackGain:       "Gain",
	ForceFeedbackAutocenter: "Autocenter",
}

func (ForceFeedbackKind) Ordinals() int    { return 0x80 }
func (k ForceFeedbackKind) String() string { return nameOf(forceFeedbackNames, uint16(k)) }

type ForceFeedbackStatusKind uint16

const (
	ForceFeedbackStatusStopped ForceFeedbackStatusKind = 0x00
	ForceFeedbackStatusPlaying ForceFeedbackStatusKind = 0x01
)

var forceFeedbackStatusNames = []string{"Stopped", "Playing"}

func (ForceFeedbackStatusKind) Ordinals() int { return 0x02 }
func (k ForceFeedbackStatusKind) String() string {
	return nameOf(forceFeedbackStatusNames, uint16(k))
}

// UInputKind is the code of EventUInput feedback requests.
type UInputKind uint16

const (
	UInputForceFeedbackUpload UInputKind = 0x01
	UInputForceFeedbackErase  UInputKind = 0x02
)

var uinputNames = []string{"", "ForceFeedbackUpload", "ForceFeedbackErase"}

func (UInputKind) Ordinals() int    { return 0x03 }
func (k UInputKind) String() string { return nameOf(uinputNames, uint16(k)) }

// InputProperty is a device property or quirk (INPUT_PROP_*).
type InputProperty uint16

const (
	PropPointer        InputProperty = 0x00
	PropDirect         InputProperty = 0x01
	PropButtonPad      InputProperty = 0x02
	PropSemiMultiTouch InputProperty = 0x03
	PropTopButtonPad   InputProperty = 0x04
	PropPointingStick  InputProperty = 0x05
	PropAccelerometer  InputProperty = 0x06
)

var propertyNames = []string{
	"Pointer", "Direct", "ButtonPad", "SemiMultiTouch", "TopButtonPad", "PointingStick", "Accelerometer",
}

func (InputProperty) Ordinals() int    { return 0x20 }
func (p InputProperty) String() string { return nameOf(propertyNames, uint16(p)) }
