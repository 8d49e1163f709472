package input

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/alive/v2"
	"github.com/temoto/inputlinux/bitmask"
	"github.com/temoto/inputlinux/evcode"
	"github.com/temoto/inputlinux/event"
	"github.com/temoto/inputlinux/log2"
)

func sampleEvents() []event.Event {
	t0 := event.NewEventTime(1, 500)
	t1 := event.NewEventTime(1, 9000)
	return []event.Event{
		event.EventOf(event.NewKeyEvent(t0, evcode.KeyA, evcode.KeyPressed)),
		event.EventOf(event.SynchronizeReport(t0)),
		event.EventOf(event.NewRelativeEvent(t1, evcode.RelX, -3)),
		event.EventOf(event.NewKeyEvent(t1, evcode.KeyA, evcode.KeyReleased)),
		event.EventOf(event.SynchronizeReport(t1)),
	}
}

func rawStream(t testing.TB, events []event.Event) []byte {
	var buf bytes.Buffer
	for _, e := range events {
		require.NoError(t, event.WriteEvent(&buf, e.InputEvent()))
	}
	return buf.Bytes()
}

type collector struct {
	sync.Mutex
	events []event.Event
}

func (c *collector) add(e event.Event) {
	c.Lock()
	c.events = append(c.events, e)
	c.Unlock()
}

func TestDispatchDoubleSubscribe(t *testing.T) {
	t.Parallel()
	log := log2.NewTest(t, log2.LDebug)
	d := NewDispatch(log, nil)

	go func() {
		sub1stop := make(chan struct{})
		d.SubscribeChan("name", sub1stop)
		close(sub1stop)
		sub2stop := make(chan struct{})
		d.SubscribeChan("name", sub2stop)
		d.Stop()
	}()

	assert.NoError(t, d.Run(nil))
}

func TestDispatchDuplicateSubscribePanics(t *testing.T) {
	t.Parallel()
	d := NewDispatch(log2.NewTest(t, log2.LDebug), nil)
	d.SubscribeFunc("name", func(event.Event) {}, make(chan struct{}))
	assert.Panics(t, func() { d.SubscribeFunc("name", func(event.Event) {}, nil) })
	d.Unsubscribe("name")
	assert.Panics(t, func() { d.Unsubscribe("name") })
}

func TestDispatchRun(t *testing.T) {
	t.Parallel()
	events := sampleEvents()
	type Case struct {
		name   string
		kinds  []evcode.EventKind
		expect []event.Event
	}
	cases := []Case{
		{"all", nil, events},
		{"key", []evcode.EventKind{evcode.EventKey}, []event.Event{events[0], events[3]}},
		{"key+rel", []evcode.EventKind{evcode.EventKey, evcode.EventRelative}, []event.Event{events[0], events[2], events[3]}},
		{"none", []evcode.EventKind{evcode.EventLed}, nil},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			log := log2.NewTest(t, log2.LDebug)
			d := NewDispatch(log, nil)
			if c.kinds != nil {
				m := bitmask.New[evcode.EventKind]()
				m.Merge(c.kinds...)
				d.SetFilter(m)
			}
			var got collector
			d.SubscribeFunc("collect", got.add, nil)
			src := NewReaderSource("test", bytes.NewReader(rawStream(t, events)), true)
			require.NoError(t, d.Run([]Source{src}))
			assert.Equal(t, c.expect, got.events)
		})
	}
}

func TestDispatchManySources(t *testing.T) {
	t.Parallel()
	events := sampleEvents()
	d := NewDispatch(log2.NewTest(t, log2.LDebug), nil)
	var got collector
	d.SubscribeFunc("collect", got.add, nil)
	sources := make([]Source, 3)
	for i := range sources {
		sources[i] = NewReaderSource(fmt.Sprintf("test%d", i), bytes.NewReader(rawStream(t, events)), false)
	}
	require.NoError(t, d.Run(sources))
	d.Wait()
	assert.Equal(t, len(events)*len(sources), len(got.events))
}

func TestDispatchStrictSource(t *testing.T) {
	t.Parallel()
	bad := event.InputEvent{Kind: evcode.EventKey, Code: 0x300, Value: 1}
	stream := rawStream(t, []event.Event{event.WithEvent(bad)})

	d := NewDispatch(log2.NewTest(t, log2.LDebug), nil)
	d.SubscribeFunc("collect", func(event.Event) { t.Error("unexpected event") }, nil)
	err := d.Run([]Source{NewReaderSource("strict", bytes.NewReader(stream), true)})
	require.Error(t, err)
	assert.True(t, evcode.IsRangeError(err), err.Error())

	d = NewDispatch(log2.NewTest(t, log2.LDebug), nil)
	var got collector
	d.SubscribeFunc("collect", got.add, nil)
	require.NoError(t, d.Run([]Source{NewReaderSource("lenient", bytes.NewReader(stream), false)}))
	require.Equal(t, 1, len(got.events))
	assert.True(t, got.events[0].IsUnknown())
	assert.Equal(t, bad, got.events[0].InputEvent())
}

func TestDispatchTruncatedSource(t *testing.T) {
	t.Parallel()
	stream := rawStream(t, sampleEvents())
	d := NewDispatch(log2.NewTest(t, log2.LDebug), nil)
	var got collector
	d.SubscribeFunc("collect", got.add, nil)
	err := d.Run([]Source{NewReaderSource("cut", bytes.NewReader(stream[:len(stream)-3]), true)})
	assert.Error(t, err)
	assert.Equal(t, len(sampleEvents())-1, len(got.events))
}

type failSink struct{ n int }

func (s *failSink) Write(event.Event) error {
	s.n++
	return fmt.Errorf("sink full")
}
func (s *failSink) Close() error { return nil }

func TestDispatchSinkError(t *testing.T) {
	t.Parallel()
	d := NewDispatch(log2.NewTest(t, log2.LDebug), nil)
	sink := &failSink{}
	d.SubscribeSink("fail", sink)
	err := d.Run([]Source{NewReaderSource("test", bytes.NewReader(rawStream(t, sampleEvents())), true)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink full")
	assert.GreaterOrEqual(t, sink.n, 1)
}

func TestDispatchEmitChan(t *testing.T) {
	t.Parallel()
	parent := alive.NewAlive()
	d := NewDispatch(log2.NewTest(t, log2.LDebug), parent)
	substop := make(chan struct{})
	ch := d.SubscribeChan("chan", substop)
	done := make(chan error)
	go func() { done <- d.Run(nil) }()

	events := sampleEvents()
	go func() {
		for _, e := range events {
			d.Emit(e)
		}
	}()
	for _, e := range events {
		assert.Equal(t, e, <-ch)
	}
	parent.Stop()
	assert.NoError(t, <-done)
	assert.False(t, d.Emit(events[0]))
}
