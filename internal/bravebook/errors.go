package bravebook

import (
	"errors"
	"fmt"
)

// ErrUnregistered is matched by every UnregisteredError.
var ErrUnregistered = errors.New("unregistered identifier")

// ErrBookNotFound is returned by GetValue when the dataset has no book with the given ID.
var ErrBookNotFound = errors.New("brave book not found")

// UnregisteredError reports a row ID referenced by the game data that has no
// entry in one of the curated tables. It means the tables need maintenance,
// never that the ID is merely unknown.
type UnregisteredError struct {
	Table string
	ID    uint32
}

func (e *UnregisteredError) Error() string {
	return fmt.Sprintf("unregistered %s: %d", e.Table, e.ID)
}

// Is reports whether target is ErrUnregistered.
func (e *UnregisteredError) Is(target error) bool {
	return target == ErrUnregistered
}
