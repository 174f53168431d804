package flat

import (
	"github.com/jrife/flatpack/storage/category"
)

// Edit gives fn mutable access to the entries matching
// prefix, keys included. Once fn returns, or panics, the
// store is re-sorted so key order holds again. The matched
// entries are passed in key order and must not be retained
// after fn returns.
//
// If fn returns an error Edit returns it. Otherwise Edit
// checks the edited store and reports ErrCategoryTooBig or
// ErrCategoryTooSmall for keys that are no longer complete
// and ErrAlreadyExists for keys that now collide. Edits are
// never rolled back.
func (store *Store[C, T]) Edit(prefix category.Key[C], fn func(entries []*Entry[C, T]) error) error {
	indexes, err := store.match(prefix)

	if err != nil {
		return err
	}

	entries := make([]*Entry[C, T], len(indexes))

	for i, index := range indexes {
		entries[i] = &store.entries[index]
	}

	if err := store.edit(entries, fn); err != nil {
		return err
	}

	return store.validate()
}

func (store *Store[C, T]) edit(entries []*Entry[C, T], fn func(entries []*Entry[C, T]) error) error {
	defer store.Fix()

	return fn(entries)
}

// validate checks that every key is complete and unique.
// It assumes the entries are sorted.
func (store *Store[C, T]) validate() error {
	for i, entry := range store.entries {
		if len(entry.Key) > store.depth {
			return wrapError(ErrCategoryTooBig, len(entry.Key), store.depth)
		}

		if len(entry.Key) < store.depth {
			return wrapError(ErrCategoryTooSmall, len(entry.Key), store.depth)
		}

		if i > 0 && category.Compare(store.compare, store.entries[i-1].Key, entry.Key) == 0 {
			return wrapError(ErrAlreadyExists, len(entry.Key), store.depth)
		}
	}

	return nil
}
