package domain

import "fmt"

// TransientFetchError marks a failed call to the remote API. Whatever was
// accumulated before the failure is still returned next to it.
type TransientFetchError struct {
	Op  string
	Err error
}

func (e *TransientFetchError) Error() string {
	return fmt.Sprintf("transient fetch error in %s: %v", e.Op, e.Err)
}

func (e *TransientFetchError) Unwrap() error {
	return e.Err
}
