package helpers

import (
	"bytes"
	"expvar"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accepts at most n bytes per Write
type chunkWriter struct {
	w io.Writer
	n int
}

func (self *chunkWriter) Write(p []byte) (int, error) {
	return self.w.Write(p[:min(len(p), self.n)])
}

func TestWriteAll(t *testing.T) {
	t.Parallel()
	content := []byte("0123456789abcdefghijklmn")
	type Case struct {
		chunk  int
		expect error
	}
	cases := []Case{{1, nil}, {7, nil}, {24, nil}, {100, nil}, {0, io.ErrShortWrite}}
	RandUnix().Shuffle(len(cases), func(a int, b int) { cases[a], cases[b] = cases[b], cases[a] })
	for _, c := range cases {
		var buf bytes.Buffer
		err := WriteAll(&chunkWriter{&buf, c.chunk}, content)
		assert.Equal(t, c.expect, err, "chunk=%d", c.chunk)
		if c.expect == nil {
			assert.Equal(t, content, buf.Bytes(), "chunk=%d", c.chunk)
		}
	}
}

func TestCount(t *testing.T) {
	t.Parallel()
	var rc, wc expvar.Int
	r := CountReader(strings.NewReader(strings.Repeat(".", 40)), &rc)
	var buf bytes.Buffer
	w := CountWriter(&buf, &wc)
	n, err := io.CopyBuffer(w, r, make([]byte, 16))
	require.NoError(t, err)
	assert.Equal(t, int64(40), n)
	assert.Equal(t, int64(40), rc.Value())
	assert.Equal(t, int64(40), wc.Value())
}
