package compose

import (
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/temoto/inputlinux/evcode"
	"github.com/temoto/inputlinux/event"
)

type codeParser func(string) (uint16, error)

func parseCode[T evcode.Code](s string) (uint16, error) {
	if v, err := evcode.Parse[T](s); err == nil {
		return uint16(v), nil
	}
	return parseNumber(s)
}

func parseNumber(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, errors.NotValidf("code=%q", s)
	}
	return uint16(n), nil
}

var codeParsers = map[evcode.EventKind]codeParser{
	evcode.EventSynchronize:         parseCode[evcode.SynchronizeKind],
	evcode.EventKey:                 parseCode[evcode.Key],
	evcode.EventRelative:            parseCode[evcode.RelativeAxis],
	evcode.EventAbsolute:            parseCode[evcode.AbsoluteAxis],
	evcode.EventMisc:                parseCode[evcode.MiscKind],
	evcode.EventSwitch:              parseCode[evcode.SwitchKind],
	evcode.EventLed:                 parseCode[evcode.LedKind],
	evcode.EventSound:               parseCode[evcode.SoundKind],
	evcode.EventAutorepeat:          parseCode[evcode.AutorepeatKind],
	evcode.EventForceFeedback:       parseCode[evcode.ForceFeedbackKind],
	evcode.EventForceFeedbackStatus: parseCode[evcode.ForceFeedbackStatusKind],
	evcode.EventUInput:              parseCode[evcode.UInputKind],
}

func parseKind(s string) (evcode.EventKind, error) {
	if s == evcode.EventUInput.String() {
		return evcode.EventUInput, nil
	}
	if k, err := evcode.Parse[evcode.EventKind](s); err == nil {
		return k, nil
	}
	n, err := parseNumber(s)
	if err != nil {
		return 0, errors.NotValidf("kind=%q", s)
	}
	return evcode.EventKindFromType(n)
}

func parseValue(kind evcode.EventKind, s string) (int32, error) {
	if kind == evcode.EventKey {
		for _, st := range []evcode.KeyState{evcode.KeyReleased, evcode.KeyPressed, evcode.KeyAutorepeat} {
			if s == st.String() {
				return int32(st), nil
			}
		}
	}
	n, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, errors.NotValidf("value=%q", s)
	}
	return int32(n), nil
}

func parseTime(s string) (event.EventTime, bool) {
	sec, usec, ok := strings.Cut(s, ".")
	if !ok || len(usec) != 6 {
		return event.EventTime{}, false
	}
	a, err1 := strconv.ParseInt(sec, 10, 64)
	b, err2 := strconv.ParseInt(usec, 10, 64)
	if err1 != nil || err2 != nil {
		return event.EventTime{}, false
	}
	return event.NewEventTime(a, b), true
}

// ParseLine reads one event in the form printed by Event.String:
//
//	[sec.usec] Kind Code [Value]
//
// Names follow String of each code space, numbers are accepted for
// kind, code and value. Key values also take pressed/released/autorepeat.
// Without time, now is used. Synchronize alone is a report.
func ParseLine(line string, now func() event.EventTime, strict bool) (event.Event, error) {
	words := strings.Fields(line)
	if len(words) == 0 {
		return event.Event{}, errors.NotValidf("empty line")
	}
	t, ok := parseTime(words[0])
	if ok {
		words = words[1:]
	} else {
		t = now()
	}
	if len(words) == 0 || len(words) > 3 {
		return event.Event{}, errors.NotValidf("line=%q expected [time] kind code [value]", line)
	}

	kind, err := parseKind(words[0])
	if err != nil {
		return event.Event{}, err
	}
	ie := event.InputEvent{Time: t, Kind: kind}
	if len(words) == 1 {
		if kind != evcode.EventSynchronize {
			return event.Event{}, errors.NotValidf("line=%q missing code", line)
		}
		return event.WithEvent(ie), nil
	}

	parse, ok := codeParsers[kind]
	if !ok {
		parse = parseNumber
	}
	if ie.Code, err = parse(strings.TrimPrefix(words[1], "code=")); err != nil {
		return event.Event{}, errors.Annotatef(err, "kind=%s", kind)
	}
	if len(words) == 3 {
		if ie.Value, err = parseValue(kind, strings.TrimPrefix(words[2], "value=")); err != nil {
			return event.Event{}, err
		}
	}
	if strict {
		return event.NewEvent(ie)
	}
	return event.WithEvent(ie), nil
}
