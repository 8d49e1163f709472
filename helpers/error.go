package helpers

import (
	"strings"

	"github.com/juju/errors"
)

// FoldErrors skips nil entries. One error is returned as is,
// to keep its cause; more are joined by newline.
func FoldErrors(errs []error) error {
	ss := make([]string, 0, len(errs))
	var first error
	for _, e := range errs {
		if e == nil {
			continue
		}
		if first == nil {
			first = e
		}
		ss = append(ss, e.Error())
	}
	if len(ss) <= 1 {
		return first
	}
	return errors.New(strings.Join(ss, "\n"))
}
