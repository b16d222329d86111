package storage

import "fmt"

// StorageError wraps a driver failure together with the operation and the
// statement that produced it.
type StorageError struct {
	Op    string
	Query string
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

// Unwrap exposes the driver error so callers can match sql.ErrNoRows and friends.
func (e *StorageError) Unwrap() error {
	return e.Err
}
