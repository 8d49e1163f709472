// Package log2 is leveled logging for evtool over stdlib log.
// Nil *Log is valid and discards everything.
// Named children share level with their parent, so -debug
// reaches input, caps and mqtt loggers at once.
package log2

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sync/atomic"
	"testing"
)

const ContextKey = "evtool/log"

const (
	// type specified here helped against accidentally passing flags as level
	Lmicroseconds     int = log.Lmicroseconds
	Lshortfile        int = log.Lshortfile
	LStdFlags         int = log.Ltime | Lshortfile
	LInteractiveFlags int = log.Ltime | Lshortfile | Lmicroseconds
	LServiceFlags     int = Lshortfile
	LTestFlags        int = Lshortfile | Lmicroseconds
)

func ContextValueLogger(ctx context.Context) *Log {
	v := ctx.Value(ContextKey)
	if v == nil {
		return nil
	}
	if log, ok := v.(*Log); ok {
		return log
	}
	panic(fmt.Errorf("context['%v'] expected type *Log", ContextKey))
}

type Level int32

const (
	LError Level = iota
	LInfo
	LDebug
	LAll Level = math.MaxInt32
)

func (l Level) prefix() string {
	switch l {
	case LError:
		return "error: "
	case LInfo:
		return ""
	}
	return "debug: "
}

type FmtFunc func(format string, args ...interface{})

type Log struct {
	out   *log.Logger
	w     io.Writer
	level *int32
	name  string
	fatal FmtFunc
}

func NewStderr(level Level) *Log { return NewWriter(os.Stderr, level) }

// NewWriter returns nil for io.Discard.
func NewWriter(w io.Writer, level Level) *Log {
	if w == io.Discard {
		return nil
	}
	lv := int32(level)
	return &Log{
		out:   log.New(w, "", LStdFlags),
		w:     w,
		level: &lv,
	}
}

type funcWriter FmtFunc

func (f funcWriter) Write(b []byte) (int, error) {
	f("%s", b)
	return len(b), nil
}

func NewTest(t testing.TB, level Level) *Log {
	self := NewWriter(funcWriter(t.Logf), level)
	self.SetFlags(LTestFlags)
	self.fatal = t.Fatalf
	return self
}

// Named returns child logger with "name: " before each message.
// Level is shared with self.
func (self *Log) Named(name string) *Log {
	if self == nil {
		return nil
	}
	child := *self
	if self.name != "" {
		name = self.name + name
	}
	child.name = name + ": "
	return &child
}

// Clone returns logger with own level, same output and name.
func (self *Log) Clone(level Level) *Log {
	if self == nil {
		return nil
	}
	lv := int32(level)
	child := *self
	child.level = &lv
	return &child
}

func (self *Log) SetLevel(l Level) {
	if self == nil {
		return
	}
	atomic.StoreInt32(self.level, int32(l))
}

// SetFlags changes output shared by all Named children.
func (self *Log) SetFlags(f int) {
	if self == nil {
		return
	}
	self.out.SetFlags(f)
}

func (self *Log) Enabled(level Level) bool {
	if self == nil {
		return false
	}
	return atomic.LoadInt32(self.level) >= int32(level)
}

func (self *Log) output(level Level, s string) {
	if self.Enabled(level) {
		_ = self.out.Output(3, level.prefix()+self.name+s)
	}
}

func (self *Log) Error(args ...interface{}) { self.output(LError, fmt.Sprint(args...)) }
func (self *Log) Errorf(format string, args ...interface{}) {
	self.output(LError, fmt.Sprintf(format, args...))
}
func (self *Log) Info(args ...interface{}) { self.output(LInfo, fmt.Sprint(args...)) }
func (self *Log) Infof(format string, args ...interface{}) {
	self.output(LInfo, fmt.Sprintf(format, args...))
}
func (self *Log) Debug(args ...interface{}) { self.output(LDebug, fmt.Sprint(args...)) }
func (self *Log) Debugf(format string, args ...interface{}) {
	self.output(LDebug, fmt.Sprintf(format, args...))
}

// Fatal fails the test under NewTest, otherwise exits.
func (self *Log) Fatal(args ...interface{}) {
	s := fmt.Sprint(args...)
	if self != nil && self.fatal != nil {
		self.fatal("%s", self.name+s)
		return
	}
	self.output(LError, "fatal: "+s)
	os.Exit(1)
}

// Printer fits Println/Printf logger hooks, like mqtt.ERROR.
type Printer struct {
	l     *Log
	level Level
}

func (self *Log) Printer(level Level) Printer { return Printer{l: self, level: level} }

func (p Printer) Println(args ...interface{}) { p.l.output(p.level, fmt.Sprint(args...)) }
func (p Printer) Printf(format string, args ...interface{}) {
	p.l.output(p.level, fmt.Sprintf(format, args...))
}
