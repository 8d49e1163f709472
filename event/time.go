package event

import (
	"fmt"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// EventTime is the timeval header of a record, native word size.
type EventTime struct {
	tv unix.Timeval
}

// timeval fields are int32 or int64 depending on platform
func setField[T ~int32 | ~int64](p *T, v int64) { *p = T(v) }

// NewEventTime stores sec and usec as given, usec is not normalized.
func NewEventTime(sec, usec int64) EventTime {
	var t EventTime
	setField(&t.tv.Sec, sec)
	setField(&t.tv.Usec, usec)
	return t
}

// EventTimeOf truncates t to microseconds, like the kernel.
func EventTimeOf(t time.Time) EventTime {
	return NewEventTime(t.Unix(), int64(t.Nanosecond()/1000))
}

func (t EventTime) Seconds() int64      { return int64(t.tv.Sec) }
func (t EventTime) Microseconds() int64 { return int64(t.tv.Usec) }

func (t *EventTime) SetSeconds(sec int64)       { setField(&t.tv.Sec, sec) }
func (t *EventTime) SetMicroseconds(usec int64) { setField(&t.tv.Usec, usec) }

func (t EventTime) Time() time.Time { return time.Unix(t.tv.Unix()) }

func (t EventTime) IsZero() bool { return t.tv.Sec == 0 && t.tv.Usec == 0 }

func (t EventTime) Compare(other EventTime) int {
	switch {
	case t.Seconds() < other.Seconds():
		return -1
	case t.Seconds() > other.Seconds():
		return 1
	case t.Microseconds() < other.Microseconds():
		return -1
	case t.Microseconds() > other.Microseconds():
		return 1
	}
	return 0
}

func (t EventTime) String() string {
	return fmt.Sprintf("%d.%06d", t.Seconds(), t.Microseconds())
}

func (t EventTime) syscallTimeval() syscall.Timeval {
	var tv syscall.Timeval
	setField(&tv.Sec, t.Seconds())
	setField(&tv.Usec, t.Microseconds())
	return tv
}

func timevalFromSyscall(tv syscall.Timeval) unix.Timeval {
	return NewEventTime(int64(tv.Sec), int64(tv.Usec)).tv
}
