// Package input moves classified events from sources to subscribers.
package input

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/juju/errors"
	"github.com/temoto/alive/v2"
	"github.com/temoto/inputlinux/bitmask"
	"github.com/temoto/inputlinux/evcode"
	"github.com/temoto/inputlinux/event"
	"github.com/temoto/inputlinux/helpers"
	"github.com/temoto/inputlinux/log2"
)

func Drain(ch <-chan event.Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

// Source returns io.EOF when there are no more events.
type Source interface {
	Read() (event.Event, error)
	String() string
}

type Sink interface {
	Write(event.Event) error
	Close() error
}

type EventFunc func(event.Event)
type sub struct {
	name string
	ch   chan<- event.Event
	fun  EventFunc
	stop <-chan struct{}
}

type Dispatch struct {
	Log    *log2.Log
	alive  *alive.Alive
	bus    chan event.Event
	mu     sync.Mutex
	subs   map[string]*sub
	filter *bitmask.Bitmask[evcode.EventKind]
	active int32
	err    helpers.FirstError
}

// NewDispatch stops together with parent, which may be nil.
func NewDispatch(log *log2.Log, parent *alive.Alive) *Dispatch {
	self := &Dispatch{
		Log:   log,
		alive: alive.NewAlive(),
		bus:   make(chan event.Event),
		subs:  make(map[string]*sub, 16),
	}
	if parent != nil {
		go helpers.AliveSub(parent, self.alive)
	}
	return self
}

// SetFilter passes only events of kinds in m. Nil passes everything.
// Call before Run.
func (self *Dispatch) SetFilter(m *bitmask.Bitmask[evcode.EventKind]) { self.filter = m }

func (self *Dispatch) Stop()                     { self.alive.Stop() }
func (self *Dispatch) StopChan() <-chan struct{} { return self.alive.StopChan() }

// Wait returns after Stop and all sources returned.
func (self *Dispatch) Wait() { self.alive.Wait() }

func (self *Dispatch) SubscribeChan(name string, substop <-chan struct{}) chan event.Event {
	target := make(chan event.Event)
	sub := &sub{
		name: name,
		ch:   target,
		stop: substop,
	}
	self.safeSubscribe(sub)
	return target
}

func (self *Dispatch) SubscribeFunc(name string, fun EventFunc, substop <-chan struct{}) {
	sub := &sub{
		name: name,
		fun:  fun,
		stop: substop,
	}
	self.safeSubscribe(sub)
}

// SubscribeSink writes every event to sink. First write error stops dispatch
// and is returned by Run.
func (self *Dispatch) SubscribeSink(name string, sink Sink) {
	self.SubscribeFunc(name, func(e event.Event) {
		if err := sink.Write(e); err != nil {
			self.fail(errors.Annotatef(err, "input sink=%s", name))
		}
	}, nil)
}

func (self *Dispatch) Unsubscribe(name string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if sub, ok := self.subs[name]; ok {
		self.subClose(sub)
	} else {
		panic("code error input sub not found name=" + name)
	}
}

// Run fans events out to subscribers until Stop, a source error or end of
// all sources. Zero sources run until Stop, see Emit.
func (self *Dispatch) Run(sources []Source) error {
	atomic.StoreInt32(&self.active, int32(len(sources)))
	for _, source := range sources {
		if !self.alive.Add(1) {
			break
		}
		go self.readSource(source)
	}

	stopch := self.alive.StopChan()
	for {
		select {
		case e := <-self.bus:
			handled := false
			self.mu.Lock()
			for _, sub := range self.subs {
				self.subFire(sub, e)
				handled = true
			}
			self.mu.Unlock()
			if !handled {
				self.Log.Debugf("input is not handled event=%s", e)
			}

		case <-stopch:
			Drain(self.bus)
			return self.err.Err()
		}
	}
}

// Emit blocks until Run takes the event or dispatch stops.
// Returns false when e was not delivered.
func (self *Dispatch) Emit(e event.Event) bool {
	if self.filter != nil && !self.filter.Get(e.Kind()) {
		self.Log.Debugf("input filter skip event=%s", e)
		return false
	}
	select {
	case self.bus <- e:
		self.Log.Debugf("input emit=%s", e)
		return true
	case <-self.alive.StopChan():
		return false
	}
}

func (self *Dispatch) fail(err error) {
	if self.err.Set(err) {
		self.Log.Error(err)
	}
	self.alive.Stop()
}

func (self *Dispatch) subFire(sub *sub, e event.Event) {
	select {
	case <-sub.stop:
		self.subClose(sub)
		return
	default:
	}

	if sub.ch == nil && sub.fun == nil {
		panic(fmt.Sprintf("input sub=%s ch=nil fun=nil", sub.name))
	}
	if sub.fun != nil {
		sub.fun(e)
	}
	if sub.ch != nil {
		select {
		case sub.ch <- e:
		case <-sub.stop:
			self.subClose(sub)
		}
	}
}

func (self *Dispatch) subClose(s *sub) {
	if s.ch != nil {
		close(s.ch)
	}
	delete(self.subs, s.name)
}

func (self *Dispatch) safeSubscribe(s *sub) {
	self.mu.Lock()
	defer self.mu.Unlock()
	if existing, ok := self.subs[s.name]; ok {
		select {
		case <-s.stop:
			panic("code error input subscribe already closed name=" + s.name)
		case <-existing.stop:
			self.subClose(existing)
		default:
			panic("code error input duplicate subscribe name=" + s.name)
		}
	}
	self.subs[s.name] = s
}

func (self *Dispatch) readSource(source Source) {
	defer self.alive.Done()
	tag := source.String()
	defer func() {
		if atomic.AddInt32(&self.active, -1) == 0 {
			self.Log.Debugf("input all sources done")
			self.alive.Stop()
		}
	}()
	for self.alive.IsRunning() {
		e, err := source.Read()
		if err == io.EOF {
			self.Log.Debugf("input source=%s end", tag)
			return
		}
		if err != nil {
			self.fail(errors.Annotatef(err, "input source=%s", tag))
			return
		}
		self.Emit(e)
	}
}
