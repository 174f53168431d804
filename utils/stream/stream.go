package stream

// Stream describes a stream of values
type Stream[V any] interface {
	// Next advances the stream. It must
	// be called once at the start to advance
	// to the first item in the stream. It returns
	// true if there is a value available
	// or false otherwise.
	Next() bool
	// Value returns the value at the current position
	// or the zero value if iteration is done.
	Value() V
}

// Processor is a function that returns a stream
// derived from a source stream.
type Processor[V any] func(Stream[V]) Stream[V]

// Pipeline connects a series of processors to a source
// stream and returns the derived stream. Pipeline can
// be useful to create code that is more readable than
// simply invoking processor functions in a nested way
// like this processor3(processor2(processor1(stream)))
func Pipeline[V any](stream Stream[V], processors ...Processor[V]) Stream[V] {
	for _, processor := range processors {
		if processor == nil {
			continue
		}

		stream = processor(stream)
	}

	return stream
}

// Collect drains the stream into a slice
func Collect[V any](stream Stream[V]) []V {
	values := []V{}

	for stream.Next() {
		values = append(values, stream.Value())
	}

	return values
}
