package stream

// FromSlice streams the elements of values in order.
// The slice is not copied.
func FromSlice[V any](values []V) Stream[V] {
	return &sliceStream[V]{values: values, i: -1}
}

type sliceStream[V any] struct {
	values []V
	i      int
}

func (stream *sliceStream[V]) Next() bool {
	if stream.i < len(stream.values) {
		stream.i++
	}

	return stream.i < len(stream.values)
}

func (stream *sliceStream[V]) Value() V {
	if stream.i < 0 || stream.i >= len(stream.values) {
		var zero V

		return zero
	}

	return stream.values[stream.i]
}

// Map returns a stream whose values are fn applied to
// each value of the source stream
func Map[V any, W any](stream Stream[V], fn func(V) W) Stream[W] {
	return &mappedStream[V, W]{stream, fn}
}

type mappedStream[V any, W any] struct {
	source Stream[V]
	fn     func(V) W
}

func (stream *mappedStream[V, W]) Next() bool {
	return stream.source.Next()
}

func (stream *mappedStream[V, W]) Value() W {
	return stream.fn(stream.source.Value())
}
