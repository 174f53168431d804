package stream

import (
	"github.com/emirpasic/gods/trees/binaryheap"
)

// Sort returns the elements of a stream in ascending order as defined
// by the comparison function. The whole source stream is buffered on
// the first call to Next. Elements that compare equal are all kept.
func Sort[V any](compare func(a, b V) int) Processor[V] {
	return func(stream Stream[V]) Stream[V] {
		return &sortedStream[V]{
			Stream: stream,
			heap: binaryheap.NewWith(func(a, b interface{}) int {
				return compare(a.(V), b.(V))
			}),
		}
	}
}

type sortedStream[V any] struct {
	Stream[V]
	heap    *binaryheap.Heap
	filled  bool
	current V
}

func (stream *sortedStream[V]) Next() bool {
	if !stream.filled {
		for stream.Stream.Next() {
			stream.heap.Push(stream.Stream.Value())
		}

		stream.filled = true
	}

	value, ok := stream.heap.Pop()

	if !ok {
		var zero V
		stream.current = zero

		return false
	}

	stream.current = value.(V)

	return true
}

func (stream *sortedStream[V]) Value() V {
	return stream.current
}
