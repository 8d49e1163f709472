package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	t.Parallel()
	input := "key A press\n\n   # only comment\nrel X 5 # move right\n  syn  \n"
	var got []string
	err := ReadLines(strings.NewReader(input), func(line string) { got = append(got, line) })
	require.NoError(t, err)
	assert.Equal(t, []string{"key A press", "rel X 5", "syn"}, got)
}
