package helpers

import (
	"sync"

	"github.com/temoto/alive/v2"
)

// AliveSub stops leaf when root stops. Returns when either one stops.
func AliveSub(root, leaf *alive.Alive) {
	select {
	case <-root.StopChan():
		leaf.Stop()
	case <-leaf.StopChan():
	}
}

// FirstError keeps the first error reported by concurrent workers.
type FirstError struct {
	mu  sync.Mutex
	err error
}

// Set reports whether err was stored. Nil is never stored.
func (self *FirstError) Set(err error) bool {
	if err == nil {
		return false
	}
	self.mu.Lock()
	defer self.mu.Unlock()
	if self.err != nil {
		return false
	}
	self.err = err
	return true
}

func (self *FirstError) Err() error {
	self.mu.Lock()
	defer self.mu.Unlock()
	return self.err
}
