package input

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/temoto/inputlinux/evcode"
	"github.com/temoto/inputlinux/event"
	"github.com/temoto/inputlinux/helpers"
	"github.com/temoto/spq"
)

type Format uint8

const (
	FormatInvalid Format = iota
	// native records, readable back by ReaderSource
	FormatRaw
	// one record per line as hex bytes
	FormatHex
	// one event per line, Event.String
	FormatText
)

func ParseFormat(s string) (Format, error) {
	switch s {
	case "raw":
		return FormatRaw, nil
	case "hex":
		return FormatHex, nil
	case "text":
		return FormatText, nil
	}
	return FormatInvalid, errors.NotValidf("output format=%q", s)
}

func (f Format) String() string {
	switch f {
	case FormatRaw:
		return "raw"
	case FormatHex:
		return "hex"
	case FormatText:
		return "text"
	}
	return fmt.Sprintf("Format(%d)", f)
}

type WriterSink struct {
	w      *bufio.Writer
	c      io.Closer
	format Format
}

// compile-time interface compliance test
var _ Sink = new(WriterSink)

func NewWriterSink(w io.Writer, format Format) *WriterSink {
	self := &WriterSink{
		w:      bufio.NewWriter(helpers.CountWriter(w, statWriteBytes)),
		format: format,
	}
	if c, ok := w.(io.Closer); ok && w != os.Stdout && w != os.Stderr {
		self.c = c
	}
	return self
}

// CreateFileSink writes to path, "-" is stdout.
func CreateFileSink(path string, format Format) (*WriterSink, error) {
	if path == "-" || path == "" {
		return NewWriterSink(os.Stdout, format), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Annotate(err, "output create")
	}
	return NewWriterSink(f, format), nil
}

func (self *WriterSink) Write(e event.Event) error {
	ie := e.InputEvent()
	var err error
	switch self.format {
	case FormatRaw:
		err = event.WriteEvent(self.w, ie)
	case FormatHex:
		b := ie.Bytes()
		_, err = fmt.Fprintf(self.w, "%s\n", hex.EncodeToString(b[:]))
	case FormatText:
		_, err = fmt.Fprintf(self.w, "%s\n", e)
	default:
		panic("code error input sink format=" + self.format.String())
	}
	if err != nil {
		return err
	}
	// keep pipes interactive, one flush per synchronize report
	if ie.Kind == evcode.EventSynchronize {
		return self.w.Flush()
	}
	return nil
}

func (self *WriterSink) Close() error {
	err := self.w.Flush()
	if self.c != nil {
		if cerr := self.c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// SpoolSink persists records in a queue, read back with SpoolSource.
type SpoolSink struct {
	q *spq.Queue
}

var _ Sink = new(SpoolSink)

func OpenSpoolSink(path string) (*SpoolSink, error) {
	q, err := spq.Open(path)
	if err != nil {
		return nil, errors.Annotatef(err, "output spool path=%s", path)
	}
	return NewSpoolSink(q), nil
}

func NewSpoolSink(q *spq.Queue) *SpoolSink { return &SpoolSink{q: q} }

func (self *SpoolSink) Write(e event.Event) error {
	return self.q.MarshalPush(e.InputEvent())
}

func (self *SpoolSink) Close() error { return self.q.Close() }

// MultiSink writes to every sink in order, stops at first error.
type MultiSink []Sink

var _ Sink = MultiSink(nil)

func (self MultiSink) Write(e event.Event) error {
	for _, s := range self {
		if err := s.Write(e); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink, returns all errors folded.
func (self MultiSink) Close() error {
	errs := make([]error, 0, len(self))
	for _, s := range self {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return helpers.FoldErrors(errs)
}
