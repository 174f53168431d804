package flat

import (
	"errors"
	"fmt"
)

var (
	// ErrCategoryTooBig is returned when a key or prefix has more
	// categories than the depth of the store.
	ErrCategoryTooBig = errors.New("category has more tokens than the store depth")
	// ErrCategoryTooSmall is returned when a key that must be complete
	// has fewer categories than the depth of the store. Lookups and
	// inserts never return it; Edit reports it for keys shortened
	// during an edit.
	ErrCategoryTooSmall = errors.New("category has fewer tokens than the store depth")
	// ErrNotFound is returned when an exact lookup or removal
	// finds no entry with that key.
	ErrNotFound = errors.New("no entry with that category")
	// ErrAlreadyExists is returned when adding a complete key that
	// is already present in the store.
	ErrAlreadyExists = errors.New("an entry with that category already exists")
)

func wrapError(err error, keyLen int, depth int) error {
	return fmt.Errorf("%w: key has %d categories, store depth is %d", err, keyLen, depth)
}
