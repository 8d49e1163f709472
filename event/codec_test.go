package event

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"
	"testing/iotest"
	"unsafe"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/inputevent-go"
	"github.com/temoto/inputlinux/evcode"
	"github.com/temoto/inputlinux/helpers"
)

func TestSize(t *testing.T) {
	t.Parallel()
	word := int(unsafe.Sizeof(uintptr(0)))
	assert.Equal(t, 2*word+8, Size)
	assert.Equal(t, inputevent.EventSizeof, Size)
}

func TestBytes(t *testing.T) {
	t.Parallel()
	e := NewKeyEvent(NewEventTime(7, 9), evcode.KeyEnter, evcode.KeyAutorepeat).InputEvent()
	b := e.Bytes()
	tail := b[Size-8:]
	assert.Equal(t, uint16(evcode.EventKey), binary.NativeEndian.Uint16(tail[0:]))
	assert.Equal(t, uint16(evcode.KeyEnter), binary.NativeEndian.Uint16(tail[2:]))
	assert.Equal(t, uint32(2), binary.NativeEndian.Uint32(tail[4:]))

	back, err := Decode(b[:])
	require.NoError(t, err)
	assert.Equal(t, e, back)

	_, err = Decode(b[:Size-1])
	assert.Equal(t, io.ErrUnexpectedEOF, errors.Cause(err))
}

func TestDecodeKernelRecord(t *testing.T) {
	t.Parallel()
	if Size != 24 || binary.NativeEndian.Uint16([]byte{1, 0}) != 1 {
		t.Skip("fixture is 64-bit little endian")
	}
	// KEY_A press at 1.000002
	b := helpers.MustHex(`
		01000000 00000000  02000000 00000000
		0100 1e00 01000000`)
	e, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, NewKeyEvent(NewEventTime(1, 2), evcode.KeyA, evcode.KeyPressed).InputEvent(), e)
}

func TestMarshalBinary(t *testing.T) {
	t.Parallel()
	e := NewSwitchEvent(NewEventTime(1, 1), evcode.SwitchLid, 1).InputEvent()
	b, err := e.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, Size)
	var back InputEvent
	require.NoError(t, back.UnmarshalBinary(b))
	assert.Equal(t, e, back)
	err = back.UnmarshalBinary(append(b, 0))
	assert.True(t, errors.IsNotValid(err), "err=%v", err)
}

func TestReadWriteStream(t *testing.T) {
	t.Parallel()
	t0 := NewEventTime(1600000000, 42)
	events := []InputEvent{
		NewRelativeEvent(t0, evcode.RelX, -5).InputEvent(),
		NewRelativeEvent(t0, evcode.RelY, 3).InputEvent(),
		SynchronizeReport(t0).InputEvent(),
		{Time: t0, Kind: 0x3333, Code: 1, Value: 2},
	}
	var buf bytes.Buffer
	for _, e := range events {
		require.NoError(t, WriteEvent(&buf, e))
	}
	require.Equal(t, len(events)*Size, buf.Len())

	split, rest := Split(buf.Bytes())
	assert.Equal(t, events, split)
	assert.Empty(t, rest)

	// byte at a time exercises short reads
	r := iotest.OneByteReader(bytes.NewReader(buf.Bytes()))
	for _, expect := range events {
		e, err := ReadEvent(r)
		require.NoError(t, err)
		assert.Equal(t, expect, e)
	}
	_, err := ReadEvent(r)
	assert.Equal(t, io.EOF, err)

	truncated := bytes.NewReader(buf.Bytes()[:Size+3])
	_, err = ReadEvent(truncated)
	require.NoError(t, err)
	_, err = ReadEvent(truncated)
	assert.Equal(t, io.ErrUnexpectedEOF, errors.Cause(err))
}

func TestRaw(t *testing.T) {
	t.Parallel()
	e := NewLedEvent(NewEventTime(5, 6), evcode.LedCapsLock, 1).InputEvent()
	raw := e.Raw()
	assert.Equal(t, uint16(evcode.EventLed), raw.Type)
	assert.Equal(t, int64(5), int64(raw.Time.Sec))
	assert.Equal(t, int64(6), int64(raw.Time.Usec))
	back, err := FromRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, e, back)

	raw.Type = 0x30
	_, err = FromRaw(raw)
	assert.True(t, evcode.IsRangeError(err))
	raw.Type = uint16(evcode.EventUInput)
	_, err = FromRaw(raw)
	assert.NoError(t, err)
}
