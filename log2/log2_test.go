package log2

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/temoto/inputlinux/helpers"
)

// caller returns "file:line: " of the line above the call
func caller() string {
	_, file, line, _ := runtime.Caller(1)
	return fmt.Sprintf("%s:%d: ", filepath.Base(file), line-1)
}

func TestLog2(t *testing.T) {
	t.Parallel()

	type Case struct {
		name string
		fun  func(l *Log) string
	}
	cases := []Case{
		{"caller/debug", func(l *Log) string {
			l.Debugf("low level var=%d", 42)
			return caller() + "debug: low level var=42\n"
		}},
		{"caller/info", func(l *Log) string {
			l.Info("source ", "open")
			return caller() + "source open\n"
		}},
		{"caller/error", func(l *Log) string {
			l.Errorf("short read n=%d", 7)
			return caller() + "error: short read n=7\n"
		}},
		{"named", func(l *Log) string {
			l.Named("input").Named("spool").Infof("idle")
			return caller() + "input: spool: idle\n"
		}},
		{"printer", func(l *Log) string {
			var p interface {
				Println(...interface{})
				Printf(string, ...interface{})
			} = l.Named("mqtt").Printer(LError)
			p.Printf("[client] %s", "lost")
			return caller() + "error: mqtt: [client] lost\n"
		}},
	}
	helpers.Shuffle(cases)
	for _, c := range cases {
		c := c
		t.Run(c.name+"/logger=nil", func(t *testing.T) {
			c.fun(nil)
		})
		t.Run(c.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWriter(&buf, LAll)
			l.SetFlags(log.Lshortfile)
			expect := c.fun(l)
			assert.Equal(t, expect, buf.String())
		})
	}
}

func TestLevel(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	l := NewWriter(&buf, LInfo)
	l.SetFlags(0)
	named := l.Named("caps")
	l.Debugf("hidden")
	named.Debug("hidden too")
	l.Infof("shown")
	assert.Equal(t, "shown\n", buf.String())
	assert.False(t, l.Enabled(LDebug))

	debug := l.Clone(LDebug)
	debug.Debug("now shown")
	assert.Equal(t, "shown\ndebug: now shown\n", buf.String())
	assert.False(t, l.Enabled(LDebug), "clone must not change level of origin")

	l.SetLevel(LDebug)
	assert.True(t, named.Enabled(LDebug), "named must follow origin level")
	buf.Reset()
	named.Debug("visible")
	assert.Equal(t, "debug: caps: visible\n", buf.String())

	var nilLog *Log
	assert.Nil(t, nilLog.Clone(LAll))
	assert.Nil(t, nilLog.Named("x"))
	assert.False(t, nilLog.Enabled(LError))
	assert.Nil(t, NewWriter(io.Discard, LAll))
}

func TestContextValueLogger(t *testing.T) {
	t.Parallel()
	l := NewTest(t, LDebug)
	assert.Nil(t, ContextValueLogger(context.Background()))
	assert.Same(t, l, ContextValueLogger(context.WithValue(context.Background(), ContextKey, l)))
	assert.Panics(t, func() {
		ContextValueLogger(context.WithValue(context.Background(), ContextKey, "wrong"))
	})
}

func BenchmarkLog2(b *testing.B) {
	type Case struct {
		name  string
		level Level
		w     io.Writer
	}
	cases := []Case{
		{"skip-level", LError, new(bytes.Buffer)},
		{"buffer", LInfo, new(bytes.Buffer)},
		{"discard", LAll, io.Discard},
	}
	for _, c := range cases {
		c := c
		b.Run(c.name, func(b *testing.B) {
			l := NewWriter(c.w, c.level).Named("input")
			l.SetFlags(0)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				l.Infof("source=%s events=%d", "/dev/input/event0", i)
			}
		})
	}
}
