package helpers

import (
	"math/rand"
	"time"
)

func RandUnix() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Shuffle table test cases, order must not matter.
func Shuffle[T any](cases []T) {
	RandUnix().Shuffle(len(cases), func(a, b int) { cases[a], cases[b] = cases[b], cases[a] })
}
