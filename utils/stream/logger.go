package stream

import "go.uber.org/zap"

// Log logs values as they pass through.
func Log[V any](logger *zap.Logger) Processor[V] {
	return func(stream Stream[V]) Stream[V] {
		return &loggedStream[V]{stream, logger}
	}
}

type loggedStream[V any] struct {
	Stream[V]
	logger *zap.Logger
}

func (stream *loggedStream[V]) Next() bool {
	if !stream.Stream.Next() {
		return false
	}

	stream.logger.Debug("next value", zap.Any("value", stream.Value()))

	return true
}
