package service

import (
	"github.com/pkg/errors"
)

var (
	// ErrAuthentication covers both unknown identity numbers and wrong passwords.
	ErrAuthentication = errors.New("incorrect credentials")
	// ErrDuplicateEntity is a unique-key conflict on identity number or class code.
	ErrDuplicateEntity = errors.New("already registered")
	// ErrInvalidInput is returned when the hashing utility refuses the password.
	ErrInvalidInput = errors.New("invalid input")
)

// StorageError wraps any failure of the underlying data store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err originated in the data store.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
