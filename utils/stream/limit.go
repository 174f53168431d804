package stream

// Limit limits the number of streamed elements
// If limit <= 0 then there is no limit, it will
// return all elements from the source stream.
// Otherwise it will only return up to the first limit
// elements.
func Limit[V any](limit int) Processor[V] {
	return func(stream Stream[V]) Stream[V] {
		if limit <= 0 {
			return stream
		}

		return &limitedStream[V]{stream, limit}
	}
}

type limitedStream[V any] struct {
	Stream[V]
	remaining int
}

func (stream *limitedStream[V]) Next() bool {
	if stream.remaining <= 0 {
		return false
	}

	stream.remaining--

	return stream.Stream.Next()
}
