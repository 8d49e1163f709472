package event

import (
	"io"
	"unsafe"

	"github.com/juju/errors"
	"github.com/temoto/inputevent-go"
	"github.com/temoto/inputlinux/helpers"
)

// Bytes is the record as the kernel reads and writes it, native byte order.
func (e InputEvent) Bytes() [Size]byte {
	return *(*[Size]byte)(unsafe.Pointer(&e))
}

// Decode reads one record from the start of b.
func Decode(b []byte) (InputEvent, error) {
	var e InputEvent
	if len(b) < Size {
		return e, errors.Annotatef(io.ErrUnexpectedEOF, "event.Decode len=%d expected=%d", len(b), Size)
	}
	copy((*[Size]byte)(unsafe.Pointer(&e))[:], b)
	return e, nil
}

// Split decodes every whole record of b and returns the remainder.
func Split(b []byte) (events []InputEvent, rest []byte) {
	for len(b) >= Size {
		e, _ := Decode(b)
		events = append(events, e)
		b = b[Size:]
	}
	return events, b
}

func (e InputEvent) MarshalBinary() ([]byte, error) {
	b := e.Bytes()
	return b[:], nil
}

func (e *InputEvent) UnmarshalBinary(b []byte) error {
	if len(b) != Size {
		return errors.NotValidf("event record len=%d expected=%d", len(b), Size)
	}
	d, err := Decode(b)
	*e = d
	return err
}

type fullReader struct{ io.Reader }

func (r fullReader) Read(b []byte) (int, error) {
	n, err := io.ReadFull(r.Reader, b)
	if err == io.ErrUnexpectedEOF {
		err = errors.Annotatef(err, "event record n=%d expected=%d", n, len(b))
	}
	return n, err
}

// ReadEvent blocks until one whole record is read.
// Clean end of stream between records is io.EOF.
// Kind is not validated, see NewEvent and WithEvent.
func ReadEvent(r io.Reader) (InputEvent, error) {
	raw, err := inputevent.ReadOne(fullReader{r})
	if err != nil {
		return InputEvent{}, err
	}
	return fromRaw(raw), nil
}

func WriteEvent(w io.Writer, e InputEvent) error {
	b := e.Bytes()
	return helpers.WriteAll(w, b[:])
}
