package helpers

import (
	"fmt"
	"sync"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestMustHex(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []byte{0x01, 0xab, 0xff}, MustHex("01ab ff"))
	assert.Equal(t, []byte{}, MustHex(""))
	assert.Panics(t, func() { MustHex("0") })
}

func TestFirstError(t *testing.T) {
	t.Parallel()
	var fe FirstError
	assert.NoError(t, fe.Err())
	assert.False(t, fe.Set(nil))

	var wg sync.WaitGroup
	stored := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := fmt.Errorf("worker %d", i)
			if fe.Set(err) {
				stored <- err
			}
		}(i)
	}
	wg.Wait()
	close(stored)
	assert.Equal(t, 1, len(stored))
	assert.Equal(t, <-stored, fe.Err())
}

func TestFoldErrors(t *testing.T) {
	t.Parallel()
	assert.NoError(t, FoldErrors(nil))
	assert.NoError(t, FoldErrors([]error{nil, nil}))

	notFound := errors.NotFoundf("config x")
	err := FoldErrors([]error{nil, errors.Annotate(notFound, "read")})
	assert.True(t, errors.IsNotFound(err))

	err = FoldErrors([]error{fmt.Errorf("a"), nil, fmt.Errorf("b")})
	assert.EqualError(t, err, "a\nb")
}
