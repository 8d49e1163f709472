package helpers

import (
	"expvar"
	"io"
)

// WriteAll repeats short writes until b is written.
func WriteAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		b = b[n:]
	}
	return nil
}

// CountReader adds every byte read from r to counter.
func CountReader(r io.Reader, counter *expvar.Int) io.Reader {
	return &countReader{r, counter}
}

// CountWriter adds every byte written to w to counter.
func CountWriter(w io.Writer, counter *expvar.Int) io.Writer {
	return &countWriter{w, counter}
}

type countReader struct {
	r io.Reader
	c *expvar.Int
}

func (self *countReader) Read(p []byte) (int, error) {
	n, err := self.r.Read(p)
	self.c.Add(int64(n))
	return n, err
}

type countWriter struct {
	w io.Writer
	c *expvar.Int
}

func (self *countWriter) Write(p []byte) (int, error) {
	n, err := self.w.Write(p)
	self.c.Add(int64(n))
	return n, err
}
