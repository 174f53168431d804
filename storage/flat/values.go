package flat

import (
	"github.com/jrife/flatpack/storage/category"
)

// GetValueRefs is like GetValues but returns pointers to
// the values held by the store so that payloads and sizes
// can be updated in place. The pointers are valid until the
// next operation that adds, removes or reorders entries.
func (store *Store[C, T]) GetValueRefs(prefix category.Key[C]) ([]*Value[T], error) {
	indexes, err := store.match(prefix)

	if err != nil {
		return nil, err
	}

	values := make([]*Value[T], len(indexes))

	for i, index := range indexes {
		values[i] = &store.entries[index].Value
	}

	return values, nil
}

// UpdateValues calls fn for every entry matching prefix in
// key order. fn may modify the value but receives a copy of
// the key. Iteration stops at the first error returned by fn.
func (store *Store[C, T]) UpdateValues(prefix category.Key[C], fn func(key category.Key[C], value *Value[T]) error) error {
	indexes, err := store.match(prefix)

	if err != nil {
		return err
	}

	for _, index := range indexes {
		entry := &store.entries[index]

		if err := fn(entry.Key.Copy(), &entry.Value); err != nil {
			return err
		}
	}

	return nil
}
