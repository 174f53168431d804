package flat

import (
	"github.com/jrife/flatpack/storage/category"
	"github.com/jrife/flatpack/utils/stream"
)

// Stream returns a stream of the entries in key order.
// Each call starts a new traversal. The store must not
// be modified while the stream is in use and keys read
// from the stream must not be modified.
func (store *Store[C, T]) Stream() stream.Stream[Entry[C, T]] {
	return stream.FromSlice(store.entries)
}

// ValueStream is like Stream but only streams values
func (store *Store[C, T]) ValueStream() stream.Stream[Value[T]] {
	return stream.Map(store.Stream(), func(entry Entry[C, T]) Value[T] {
		return entry.Value
	})
}

// Scan is like Stream but only streams the entries matching
// prefix. A complete key matches at most one entry and a
// missing one yields an empty stream rather than an error.
// Prefixes longer than the store depth fail with
// ErrCategoryTooBig.
func (store *Store[C, T]) Scan(prefix category.Key[C]) (stream.Stream[Entry[C, T]], error) {
	if len(prefix) > store.depth {
		return nil, wrapError(ErrCategoryTooBig, len(prefix), store.depth)
	}

	limit := 0

	if len(prefix) == store.depth {
		limit = 1
	}

	return stream.Pipeline(
		store.Stream(),
		stream.Filter(func(entry Entry[C, T]) bool {
			return category.HasPrefix(store.compare, entry.Key, prefix)
		}),
		stream.Limit[Entry[C, T]](limit),
	), nil
}
