package caps

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/juju/errors"
	"github.com/temoto/inputlinux/bitmask"
	"github.com/temoto/inputlinux/evcode"
)

const magic = "EVCP"

// MarshalBinary layout, integers little endian:
// magic, u16 name length, name, u16 props length, props,
// u16 kind count, then per kind: u16 kind, u16 length, bits.
func (self *Profile) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(magic)
	writeChunk(&buf, []byte(self.Name))
	writeChunk(&buf, self.Props.Bytes())
	kinds := self.storedKinds()
	writeU16(&buf, uint16(len(kinds)))
	for _, k := range kinds {
		writeU16(&buf, uint16(k))
		writeChunk(&buf, self.bits[k].Bytes())
	}
	return buf.Bytes(), nil
}

func (self *Profile) UnmarshalBinary(b []byte) error {
	r := bytes.NewReader(b)
	head := make([]byte, len(magic))
	if _, err := io.ReadFull(r, head); err != nil || string(head) != magic {
		return errors.NotValidf("caps profile magic=%x", head)
	}
	name, err := readChunk(r)
	if err != nil {
		return errors.Annotate(err, "caps profile name")
	}
	props, err := readChunk(r)
	if err != nil {
		return errors.Annotate(err, "caps profile props")
	}
	count, err := readU16(r)
	if err != nil {
		return errors.Annotate(err, "caps profile kind count")
	}
	p := NewProfile(string(name))
	p.Props = *bitmask.FromBytes[evcode.InputProperty](props)
	for i := 0; i < int(count); i++ {
		k, err := readU16(r)
		if err != nil {
			return errors.Annotatef(err, "caps profile kind index=%d", i)
		}
		bits, err := readChunk(r)
		if err != nil {
			return errors.Annotatef(err, "caps profile kind=%s", evcode.EventKind(k))
		}
		p.SetBits(evcode.EventKind(k), bits)
	}
	if r.Len() != 0 {
		return errors.NotValidf("caps profile trailing bytes=%d", r.Len())
	}
	*self = *p
	return nil
}

func writeU16(buf *bytes.Buffer, v uint16) {
	buf.Write(binary.LittleEndian.AppendUint16(nil, v))
}

func writeChunk(buf *bytes.Buffer, b []byte) {
	writeU16(buf, uint16(len(b)))
	buf.Write(b)
}

func readU16(r io.Reader) (uint16, error) {
	var v uint16
	err := binary.Read(r, binary.LittleEndian, &v)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return v, err
}

func readChunk(r io.Reader) ([]byte, error) {
	n, err := readU16(r)
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	_, err = io.ReadFull(r, b)
	return b, err
}
