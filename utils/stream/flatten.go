package stream

// Flatten streams the values of every stream produced
// by outer, one after the other. Inner streams are only
// created as iteration reaches them.
func Flatten[O any, V any](outer Stream[O], inner func(O) Stream[V]) Stream[V] {
	return &flattenedStream[O, V]{outer: outer, inner: inner}
}

type flattenedStream[O any, V any] struct {
	outer   Stream[O]
	inner   func(O) Stream[V]
	current Stream[V]
}

func (stream *flattenedStream[O, V]) Next() bool {
	for {
		if stream.current != nil && stream.current.Next() {
			return true
		}

		if !stream.outer.Next() {
			stream.current = nil

			return false
		}

		stream.current = stream.inner(stream.outer.Value())
	}
}

func (stream *flattenedStream[O, V]) Value() V {
	if stream.current == nil {
		var zero V

		return zero
	}

	return stream.current.Value()
}
