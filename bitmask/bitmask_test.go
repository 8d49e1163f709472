package bitmask

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/temoto/inputlinux/evcode"
	"github.com/temoto/inputlinux/helpers"
)

func TestSize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 4, Size[evcode.EventKind]())
	assert.Equal(t, 0x60, Size[evcode.Key]())
	assert.Equal(t, 3, Size[evcode.SwitchKind]())
	assert.Equal(t, 1, Size[evcode.AutorepeatKind]())
	assert.Len(t, New[evcode.AbsoluteAxis]().Bytes(), 8)
}

func TestSetGetEveryOrdinal(t *testing.T) {
	t.Parallel()
	var m Bitmask[evcode.Key]
	for k := range evcode.All[evcode.Key]() {
		require.False(t, m.Get(k))
		m.Insert(k)
		require.True(t, m.Get(k), "key=%s", k)
		m.Remove(k)
		require.False(t, m.Get(k), "key=%s", k)
		m.Toggle(k)
		m.Toggle(k)
		require.False(t, m.Get(k), "key=%s", k)
	}
	assert.True(t, m.IsEmpty())
}

func TestBitPosition(t *testing.T) {
	t.Parallel()
	m := New[evcode.Key]()
	m.Insert(evcode.KeyA) // 30 = byte 3, bit 6
	b := m.Bytes()
	assert.Equal(t, byte(0x40), b[3])
	for i, x := range b {
		if i != 3 {
			assert.Equal(t, byte(0), x, "byte=%d", i)
		}
	}

	fb := FromBytes[evcode.EventKind]([]byte{0x0b, 0x00, 0x02})
	assert.Equal(t, []evcode.EventKind{evcode.EventSynchronize, evcode.EventKey, evcode.EventAbsolute, evcode.EventLed}, fb.Slice())
}

func TestIterationOrder(t *testing.T) {
	t.Parallel()
	rnd := helpers.RandUnix()
	var m Bitmask[evcode.Key]
	expect := map[evcode.Key]bool{}
	for i := 0; i < 100; i++ {
		k := evcode.Key(rnd.Intn(evcode.Count[evcode.Key]()))
		m.Insert(k)
		expect[k] = true
	}
	got := m.Slice()
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }))
	assert.Len(t, got, len(expect))
	assert.Equal(t, len(expect), m.Len())
	for _, k := range got {
		assert.True(t, expect[k])
	}
}

func TestMergeUnionClear(t *testing.T) {
	t.Parallel()
	var a, b Bitmask[evcode.LedKind]
	a.Merge(evcode.LedNumLock, evcode.LedCapsLock)
	b.Merge(evcode.LedCapsLock, evcode.LedMail)
	a.Union(&b)
	assert.Equal(t, "{NumLock, CapsLock, Mail}", a.String())
	assert.False(t, a.Equal(&b))
	a.Clear()
	assert.True(t, a.IsEmpty())
	assert.Equal(t, "{}", a.String())
	assert.True(t, a.Equal(New[evcode.LedKind]()))
}

func TestOutOfBandKind(t *testing.T) {
	t.Parallel()
	var m Bitmask[evcode.EventKind]
	assert.False(t, m.Get(evcode.EventUInput))
	m.Remove(evcode.EventUInput)
	assert.Panics(t, func() { m.Insert(evcode.EventUInput) })
	assert.Panics(t, func() { m.Toggle(evcode.EventUInput) })
}

func TestVecCapacity(t *testing.T) {
	t.Parallel()
	v := NewVec()
	assert.Equal(t, 0x80, v.Cap())
	v.Insert(0x7f)
	assert.True(t, v.Get(0x7f))
	assert.False(t, v.Get(0x80))
	assert.False(t, v.Get(0xffff))
	v.Remove(0x1000)
	assert.Panics(t, func() { v.Insert(0x80) })
	assert.Panics(t, func() { v.Toggle(0x80) })
	assert.Equal(t, []uint16{0x7f}, v.Slice())

	var zero Vec
	assert.False(t, zero.Get(0))
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, "{}", zero.String())
}

func TestVecResize(t *testing.T) {
	t.Parallel()
	type Case struct {
		name   string
		kind   evcode.EventKind
		expect int
	}
	cases := []Case{
		{"syn-counts-kinds", evcode.EventSynchronize, 4},
		{"key", evcode.EventKey, 0x60},
		{"switch", evcode.EventSwitch, 3},
		{"autorepeat", evcode.EventAutorepeat, 1},
		{"uinput", evcode.EventUInput, 1},
		{"power-fallback", evcode.EventPower, 0x10},
		{"reserved-fallback", evcode.EventKind(0x1c), 0x10},
	}
	helpers.Shuffle(cases)
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			v := NewVec()
			v.Resize(c.kind)
			assert.Len(t, v.Bytes(), c.expect)
		})
	}
}

func TestVecResizeTruncates(t *testing.T) {
	t.Parallel()
	v := NewVec()
	v.Resize(evcode.EventKey)
	v.Merge(uint16(evcode.KeyEsc), uint16(evcode.KeyA), uint16(evcode.KeySpace), uint16(evcode.ButtonLeft))
	v.Resize(evcode.EventSynchronize) // 0x20 bits, keeps 0..31
	assert.Equal(t, 4, v.Cap()/8)
	assert.Equal(t, []uint16{uint16(evcode.KeyEsc), uint16(evcode.KeyA)}, v.Slice())
	v.Resize(evcode.EventKey)
	assert.False(t, v.Get(uint16(evcode.KeySpace)))
	assert.False(t, v.Get(uint16(evcode.ButtonLeft)))
	assert.True(t, v.Get(uint16(evcode.KeyA)))
	assert.True(t, v.Get(uint16(evcode.KeyEsc)))
}

func TestMembers(t *testing.T) {
	t.Parallel()
	v := VecFromBytes([]byte{0x02, 0x80})
	assert.Equal(t, "{0x1, 0xf}", v.String())
	var got []evcode.Key
	for k := range Members[evcode.Key](v) {
		got = append(got, k)
	}
	// stops at capacity 16, does not walk all of Key
	assert.Equal(t, []evcode.Key{evcode.KeyEsc, evcode.KeyTab}, got)

	typed := Typed[evcode.Key](v)
	assert.Equal(t, got, typed.Slice())
	assert.Len(t, typed.Bytes(), 0x60)
}
