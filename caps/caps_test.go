package caps

import (
	"fmt"
	"slices"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/inputlinux/evcode"
	"github.com/temoto/inputlinux/event"
	"github.com/temoto/inputlinux/log2"
)

func keyboard(t testing.TB) *Profile {
	p := NewProfile("kbd")
	for _, k := range []evcode.Key{evcode.KeyA, evcode.KeyLeftCtrl, evcode.KeyEnter} {
		require.NoError(t, p.Insert(evcode.EventKey, uint16(k)))
	}
	require.NoError(t, p.Insert(evcode.EventLed, uint16(evcode.LedCapsLock)))
	require.NoError(t, p.Insert(evcode.EventSynchronize, uint16(evcode.EventSynchronize)))
	p.Props.Insert(evcode.PropPointer)
	return p
}

func TestProfileInsert(t *testing.T) {
	t.Parallel()
	p := keyboard(t)
	assert.Equal(t,
		[]evcode.EventKind{evcode.EventSynchronize, evcode.EventKey, evcode.EventLed},
		p.Kinds().Slice())
	assert.Equal(t,
		[]evcode.Key{evcode.KeyEnter, evcode.KeyLeftCtrl, evcode.KeyA},
		slices.Collect(Codes[evcode.Key](p, evcode.EventKey)))
	assert.Equal(t,
		[]evcode.LedKind{evcode.LedCapsLock},
		slices.Collect(Codes[evcode.LedKind](p, evcode.EventLed)))
	assert.Empty(t, slices.Collect(Codes[evcode.RelativeAxis](p, evcode.EventRelative)))

	err := p.Insert(evcode.EventKey, 0x300)
	require.Error(t, err)
	assert.True(t, evcode.IsRangeError(err))
	err = p.Insert(evcode.EventLed, 0x10)
	assert.True(t, evcode.IsRangeError(err))
}

func TestProfileZeroValue(t *testing.T) {
	t.Parallel()
	var p Profile
	assert.Empty(t, p.Kinds().Slice())
	require.NoError(t, p.Insert(evcode.EventRelative, uint16(evcode.RelWheel)))
	assert.Equal(t, []evcode.EventKind{evcode.EventRelative}, p.Kinds().Slice())

	var q Profile
	q.SetBits(evcode.EventKey, []byte{0, 0, 0, 0x40}) // KeyA
	assert.Equal(t, []evcode.Key{evcode.KeyA}, slices.Collect(Codes[evcode.Key](&q, evcode.EventKey)))
}

func TestProfileSupports(t *testing.T) {
	t.Parallel()
	p := keyboard(t)
	var tm event.EventTime
	cases := []struct {
		e      event.InputEvent
		expect bool
	}{
		{event.NewKeyEvent(tm, evcode.KeyA, evcode.KeyPressed).InputEvent(), true},
		{event.NewKeyEvent(tm, evcode.KeyB, evcode.KeyPressed).InputEvent(), false},
		{event.NewLedEvent(tm, evcode.LedCapsLock, 1).InputEvent(), true},
		{event.NewLedEvent(tm, evcode.LedNumLock, 1).InputEvent(), false},
		{event.NewRelativeEvent(tm, evcode.RelX, 1).InputEvent(), false},
		{event.InputEvent{Kind: 0x1f, Code: 1}, false},
		{event.InputEvent{Kind: evcode.EventUInput, Code: 1}, false},
	}
	for _, c := range cases {
		c := c
		t.Run(c.e.String(), func(t *testing.T) {
			assert.Equal(t, c.expect, p.Supports(c.e))
		})
	}
}

func TestSetBits(t *testing.T) {
	t.Parallel()
	p := NewProfile("mouse")
	// kernel returns as many bytes as it likes, extra is dropped
	p.SetBits(evcode.EventRelative, []byte{0x03, 0x01, 0xff, 0xff})
	p.SetBits(evcode.EventSynchronize, []byte{1 << evcode.EventRelative})
	assert.Equal(t, 2, len(p.Bits(evcode.EventRelative).Bytes()))
	assert.Equal(t,
		[]evcode.RelativeAxis{evcode.RelX, evcode.RelY, evcode.RelWheel},
		slices.Collect(Codes[evcode.RelativeAxis](p, evcode.EventRelative)))
	assert.True(t, p.Kinds().Get(evcode.EventRelative))
	assert.False(t, p.Kinds().Get(evcode.EventKey))
	// caller buffer is copied
	buf := []byte{0x01}
	p.SetBits(evcode.EventSwitch, buf)
	buf[0] = 0
	assert.True(t, p.Bits(evcode.EventSwitch).Get(uint16(evcode.SwitchLid)))
}

func TestMarshalBinary(t *testing.T) {
	t.Parallel()
	p := keyboard(t)
	b, err := p.MarshalBinary()
	require.NoError(t, err)

	var p2 Profile
	require.NoError(t, p2.UnmarshalBinary(b))
	assert.Equal(t, p.Name, p2.Name)
	assert.True(t, p.Props.Equal(&p2.Props))
	for _, k := range []evcode.EventKind{evcode.EventSynchronize, evcode.EventKey, evcode.EventLed, evcode.EventSwitch} {
		assert.Equal(t, p.Bits(k).Slice(), p2.Bits(k).Slice(), k.String())
	}

	for i := 0; i < len(b); i++ {
		err = p2.UnmarshalBinary(b[:i])
		assert.Error(t, err, fmt.Sprintf("truncated len=%d", i))
	}
	err = p2.UnmarshalBinary(append(b, 0))
	assert.True(t, errors.IsNotValid(err))
	err = p2.UnmarshalBinary([]byte("JUNKJUNK"))
	assert.True(t, errors.IsNotValid(err))
}

func TestStore(t *testing.T) {
	t.Parallel()
	log := log2.NewTest(t, log2.LDebug)
	s, err := NewStore(t.TempDir(), log)
	require.NoError(t, err)

	_, err = s.Load("kbd")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err), errors.ErrorStack(err))

	p := keyboard(t)
	require.NoError(t, s.Save(p))
	p2, err := s.Load("kbd")
	require.NoError(t, err)
	assert.Equal(t, p.Bits(evcode.EventKey).Slice(), p2.Bits(evcode.EventKey).Slice())

	p.Name = ""
	assert.True(t, errors.IsNotValid(s.Save(p)))

	_, err = NewStore("", log)
	assert.Error(t, err)
}

type mockStorage struct{ data []byte }

func (m *mockStorage) Read() ([]byte, error)       { return m.data, nil }
func (m *mockStorage) Write(b []byte) (int, error) { m.data = b; return len(b), nil }

func TestStoreCorrupt(t *testing.T) {
	t.Parallel()
	s, err := NewStore("/nonexistent", log2.NewTest(t, log2.LDebug))
	require.NoError(t, err)
	m := &mockStorage{data: []byte("EVCP\xff")}
	s.open = func(string) storage { return m }
	_, err = s.Load("bad")
	assert.Error(t, err)
}
