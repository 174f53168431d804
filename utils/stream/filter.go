package stream

// Filter filters out elements from the source stream for
// which the filter function returns false
func Filter[V any](filter func(value V) bool) Processor[V] {
	return func(stream Stream[V]) Stream[V] {
		return &filteredStream[V]{stream, filter}
	}
}

type filteredStream[V any] struct {
	Stream[V]
	filter func(value V) bool
}

func (stream *filteredStream[V]) Next() bool {
	hasMore := false

	for hasMore = stream.Stream.Next(); hasMore && !stream.filter(stream.Value()); hasMore = stream.Stream.Next() {
	}

	return hasMore
}
