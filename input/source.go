package input

import (
	"expvar"
	"io"
	"os"
	"time"

	"github.com/juju/errors"
	"github.com/temoto/inputlinux/event"
	"github.com/temoto/inputlinux/helpers"
	"github.com/temoto/spq"
)

var (
	statReadBytes  = expvar.NewInt("input.read_bytes")
	statWriteBytes = expvar.NewInt("input.write_bytes")
)

// Classify turns a record into an event, see event.NewEvent.
// Strict rejects known kinds with out of range codes,
// otherwise such records become unknown events.
func Classify(e event.InputEvent, strict bool) (event.Event, error) {
	if strict {
		return event.NewEvent(e)
	}
	return event.WithEvent(e), nil
}

// ReaderSource reads native records from a stream: captured device
// output, a file or a pipe.
type ReaderSource struct {
	r      io.Reader
	c      io.Closer
	tag    string
	strict bool
}

// compile-time interface compliance test
var _ Source = new(ReaderSource)

func NewReaderSource(tag string, r io.Reader, strict bool) *ReaderSource {
	self := &ReaderSource{
		r:      helpers.CountReader(r, statReadBytes),
		tag:    tag,
		strict: strict,
	}
	if c, ok := r.(io.Closer); ok {
		self.c = c
	}
	return self
}

// OpenFileSource reads records from path, "-" is stdin.
func OpenFileSource(path string, strict bool) (*ReaderSource, error) {
	if path == "-" || path == "" {
		return NewReaderSource("stdin", os.Stdin, strict), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Annotate(err, "input open")
	}
	return NewReaderSource(path, f, strict), nil
}

func (self *ReaderSource) String() string { return self.tag }

func (self *ReaderSource) Read() (event.Event, error) {
	ie, err := event.ReadEvent(self.r)
	if err != nil {
		return event.Event{}, err
	}
	e, err := Classify(ie, self.strict)
	return e, errors.Annotatef(err, "record=%s", ie)
}

func (self *ReaderSource) Close() error {
	if self.c == nil {
		return nil
	}
	return self.c.Close()
}

// SpoolSource takes records from a persistent queue, written by SpoolSink.
// A record is deleted from the queue after Read returns it.
// Read returns io.EOF when the queue stays empty for idle duration,
// zero idle blocks until Close.
type SpoolSource struct {
	q      *spq.Queue
	tag    string
	idle   time.Duration
	strict bool
}

var _ Source = new(SpoolSource)

func OpenSpoolSource(path string, idle time.Duration, strict bool) (*SpoolSource, error) {
	q, err := spq.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "input spool path=%s", path)
	}
	return NewSpoolSource(q, idle, strict), nil
}

func NewSpoolSource(q *spq.Queue, idle time.Duration, strict bool) *SpoolSource {
	return &SpoolSource{q: q, tag: "spool", idle: idle, strict: strict}
}

func (self *SpoolSource) String() string { return self.tag }

func (self *SpoolSource) Read() (event.Event, error) {
	if self.idle > 0 {
		t := time.AfterFunc(self.idle, func() { _ = self.q.Close() })
		defer t.Stop()
	}
	box, err := self.q.Peek()
	switch err {
	case nil:
	case spq.ErrClosed:
		return event.Event{}, io.EOF
	default:
		return event.Event{}, errors.Annotate(err, "spool peek")
	}

	var ie event.InputEvent
	if err = box.Unmarshal(&ie); err != nil {
		// retry will not help
		_ = self.q.Delete(box)
		return event.Event{}, errors.Annotatef(err, "spool b=%x", box.Bytes())
	}
	// closed by idle timer right after Peek, the record stays queued
	if err = self.q.Delete(box); err != nil && err != spq.ErrClosed {
		return event.Event{}, errors.Annotate(err, "spool delete")
	}
	e, err := Classify(ie, self.strict)
	return e, errors.Annotatef(err, "record=%s", ie)
}

func (self *SpoolSource) Close() error { return self.q.Close() }
