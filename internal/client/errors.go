package client

import (
	"errors"
	"fmt"
)

// ErrSendFailed marks an outbound send that did not complete. The caller
// keeps the optimistic entry visible with a failed status instead of
// removing it.
var ErrSendFailed = errors.New("send failed")

// FetchError is a transient failure while reading relay or backend data
// (timeout, network error, unexpected status). Callers on the poll path
// treat the result as empty for that cycle rather than surfacing it.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
