// Package flat implements a categorized store: a flat, sorted
// collection of payloads addressed by fixed-depth composite
// category keys.
//
// Every entry of a store with depth N has a key of exactly N
// category tokens and keys are unique. Entries are kept sorted
// by key so that a complete key is found with a binary search
// while shorter keys act as prefixes matching every entry that
// starts with them:
//
//	depth 2
//	- [fruit apple]  -> (payload, 12)
//	- [fruit pear]   -> (payload, 7)
//	- [veg   leek]   -> (payload, 30)
//
//	Get([fruit])      -> apple, pear
//	Get([fruit pear]) -> pear
//	Get([])           -> apple, pear, leek
//
// Payloads are opaque to the store. Each entry carries a size
// supplied by the caller which the partitioning operations use
// as the weight of the entry.
//
// A store is not safe for concurrent use.
package flat

import (
	"github.com/jrife/flatpack/storage/category"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Value is a payload along with its size
type Value[T any] struct {
	Payload T
	Size    uint64
}

// Entry is a single categorized value
type Entry[C any, T any] struct {
	Key   category.Key[C]
	Value Value[T]
}

// Store is a sorted collection of entries keyed
// by complete category keys.
type Store[C any, T any] struct {
	depth   int
	compare category.Comparator[C]
	entries []Entry[C, T]
}

// New creates an empty store whose keys have depth
// categories ordered by compare. It panics if depth
// is negative.
func New[C any, T any](depth int, compare category.Comparator[C]) *Store[C, T] {
	if depth < 0 {
		panic("flat: negative store depth")
	}

	return &Store[C, T]{
		depth:   depth,
		compare: compare,
		entries: []Entry[C, T]{},
	}
}

// NewOrdered creates an empty store for naturally ordered
// category tokens.
func NewOrdered[C constraints.Ordered, T any](depth int) *Store[C, T] {
	return New[C, T](depth, category.Ordered[C]())
}

// Depth returns the number of categories in a complete key
func (store *Store[C, T]) Depth() int {
	return store.depth
}

// Comparator returns the token comparator of the store
func (store *Store[C, T]) Comparator() category.Comparator[C] {
	return store.compare
}

// Compare compares two keys with the ordering used by the store
func (store *Store[C, T]) Compare(a, b category.Key[C]) int {
	return category.Compare(store.compare, a, b)
}

// Size returns the sum of the sizes of all entries
func (store *Store[C, T]) Size() uint64 {
	var size uint64

	for _, entry := range store.entries {
		size += entry.Value.Size
	}

	return size
}

// Len returns the number of entries
func (store *Store[C, T]) Len() int {
	return len(store.entries)
}

// IsEmpty returns true if the store has no entries
func (store *Store[C, T]) IsEmpty() bool {
	return len(store.entries) == 0
}

// Get returns the entries matching prefix in key order.
// If prefix is shorter than the store depth every entry
// whose key starts with prefix is returned. If prefix is
// a complete key the single entry with that key is returned
// or ErrNotFound if there is none. Longer prefixes fail
// with ErrCategoryTooBig. Returned keys are copies.
func (store *Store[C, T]) Get(prefix category.Key[C]) ([]Entry[C, T], error) {
	indexes, err := store.match(prefix)

	if err != nil {
		return nil, err
	}

	entries := make([]Entry[C, T], len(indexes))

	for i, index := range indexes {
		entries[i] = Entry[C, T]{
			Key:   store.entries[index].Key.Copy(),
			Value: store.entries[index].Value,
		}
	}

	return entries, nil
}

// GetValues is like Get but returns only the values
func (store *Store[C, T]) GetValues(prefix category.Key[C]) ([]Value[T], error) {
	indexes, err := store.match(prefix)

	if err != nil {
		return nil, err
	}

	values := make([]Value[T], len(indexes))

	for i, index := range indexes {
		values[i] = store.entries[index].Value
	}

	return values, nil
}

// Count returns the number of entries Get would return.
// An exact lookup of a missing key counts zero rather
// than failing.
func (store *Store[C, T]) Count(prefix category.Key[C]) (int, error) {
	switch {
	case len(prefix) < store.depth:
		entries, err := store.Scan(prefix)

		if err != nil {
			return 0, err
		}

		count := 0

		for entries.Next() {
			count++
		}

		return count, nil
	case len(prefix) == store.depth:
		if _, ok := store.search(prefix); ok {
			return 1, nil
		}

		return 0, nil
	}

	return 0, wrapError(ErrCategoryTooBig, len(prefix), store.depth)
}

// Add inserts payload under key. Keys shorter than the
// store depth are ignored. Adding a complete key that is
// already present fails with ErrAlreadyExists and leaves
// the store unchanged.
func (store *Store[C, T]) Add(key category.Key[C], payload T, size uint64) error {
	if len(key) > store.depth {
		return wrapError(ErrCategoryTooBig, len(key), store.depth)
	}

	if len(key) < store.depth {
		return nil
	}

	i, ok := store.search(key)

	if ok {
		return wrapError(ErrAlreadyExists, len(key), store.depth)
	}

	store.entries = slices.Insert(store.entries, i, Entry[C, T]{
		Key:   key.Copy(),
		Value: Value[T]{Payload: payload, Size: size},
	})

	return nil
}

// Remove removes the entries matching prefix and returns
// their values in key order. It follows the same rules
// as Get.
func (store *Store[C, T]) Remove(prefix category.Key[C]) ([]Value[T], error) {
	switch {
	case len(prefix) < store.depth:
		removed := []Value[T]{}
		kept := store.entries[:0]

		for _, entry := range store.entries {
			if category.HasPrefix(store.compare, entry.Key, prefix) {
				removed = append(removed, entry.Value)

				continue
			}

			kept = append(kept, entry)
		}

		store.truncate(kept)

		return removed, nil
	case len(prefix) == store.depth:
		i, ok := store.search(prefix)

		if !ok {
			return nil, wrapError(ErrNotFound, len(prefix), store.depth)
		}

		value := store.entries[i].Value
		store.entries = slices.Delete(store.entries, i, i+1)

		return []Value[T]{value}, nil
	}

	return nil, wrapError(ErrCategoryTooBig, len(prefix), store.depth)
}

// Clear removes all entries
func (store *Store[C, T]) Clear() {
	store.entries = []Entry[C, T]{}
}

// Fix restores key order with a stable sort. Entries
// whose keys compare equal keep their relative order.
func (store *Store[C, T]) Fix() {
	slices.SortStableFunc(store.entries, func(a, b Entry[C, T]) int {
		return category.Compare(store.compare, a.Key, b.Key)
	})
}

// Clone returns a copy of the store. Keys are copied,
// payloads are copied by value.
func (store *Store[C, T]) Clone() *Store[C, T] {
	return &Store[C, T]{
		depth:   store.depth,
		compare: store.compare,
		entries: copyEntries(store.entries),
	}
}

// Entries returns a copy of all entries in key order
func (store *Store[C, T]) Entries() []Entry[C, T] {
	return copyEntries(store.entries)
}

// Drain removes and returns all entries in key order
func (store *Store[C, T]) Drain() []Entry[C, T] {
	entries := store.entries
	store.entries = []Entry[C, T]{}

	return entries
}

// match returns the indexes of the entries matching prefix
func (store *Store[C, T]) match(prefix category.Key[C]) ([]int, error) {
	switch {
	case len(prefix) < store.depth:
		indexes := []int{}

		for i, entry := range store.entries {
			if category.HasPrefix(store.compare, entry.Key, prefix) {
				indexes = append(indexes, i)
			}
		}

		return indexes, nil
	case len(prefix) == store.depth:
		i, ok := store.search(prefix)

		if !ok {
			return nil, wrapError(ErrNotFound, len(prefix), store.depth)
		}

		return []int{i}, nil
	}

	return nil, wrapError(ErrCategoryTooBig, len(prefix), store.depth)
}

// search finds the position of key. If key is not present
// it returns the position where it would be inserted.
func (store *Store[C, T]) search(key category.Key[C]) (int, bool) {
	return slices.BinarySearchFunc(store.entries, key, func(entry Entry[C, T], key category.Key[C]) int {
		return category.Compare(store.compare, entry.Key, key)
	})
}

// truncate replaces the entries with kept, which must
// share the backing array of the current entries, and
// zeroes the abandoned tail so it doesn't pin payloads.
func (store *Store[C, T]) truncate(kept []Entry[C, T]) {
	tail := store.entries[len(kept):]

	for i := range tail {
		tail[i] = Entry[C, T]{}
	}

	store.entries = kept
}

func copyEntries[C any, T any](entries []Entry[C, T]) []Entry[C, T] {
	cp := make([]Entry[C, T], len(entries))

	for i, entry := range entries {
		cp[i] = Entry[C, T]{Key: entry.Key.Copy(), Value: entry.Value}
	}

	return cp
}
