package api

import "fmt"

// UnknownOperationError is returned when the store fails in a way the handler
// cannot describe with a response: anything other than not-found or an
// internal store failure. It signals a defect, not a client error.
type UnknownOperationError struct {
	Op  string
	Err error
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("Unhandled error raised when %s - %v", e.Op, e.Err)
}

func (e *UnknownOperationError) Unwrap() error {
	return e.Err
}

func unknown(op string, err error) error {
	return &UnknownOperationError{Op: op, Err: err}
}
