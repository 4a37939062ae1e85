package domain

import "errors"

var ErrNotFound = errors.New("not found")

var ErrNameRequired = errors.New("name required")

// StorageError marks a failure that originated in the database layer.
// The underlying driver message is surfaced verbatim to the caller.
type StorageError struct {
	Err error
}

func NewStorageError(err error) *StorageError {
	return &StorageError{Err: err}
}

func (e *StorageError) Error() string {
	return e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
