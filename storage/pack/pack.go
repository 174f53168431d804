// Package pack splits a categorized store into buckets that
// respect a maximum entry count and a maximum total size.
//
// Construction happens in two stages. First the store is cut
// into chunks of at most MaxLen entries, taking the entries
// with the highest keys first. Whatever is left once the store
// fits within MaxLen becomes the last chunk. Then each chunk
// is split first fit into buckets of at most MaxSize. A zero
// limit skips its stage, letting every chunk through as is.
//
// An entry whose size alone exceeds MaxSize can never satisfy
// the size limit. It is given a bucket of its own.
package pack

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jrife/flatpack/storage/category"
	"github.com/jrife/flatpack/storage/flat"
	"github.com/jrife/flatpack/utils/stream"
	"go.uber.org/zap"
)

// Pack is an ordered list of buckets produced
// from a single store.
type Pack[C any, T any] struct {
	logger  *zap.Logger
	compare category.Comparator[C]
	maxSize uint64
	maxLen  int
	buckets []*flat.Store[C, T]
}

// New partitions store into buckets according to config.
// Every entry is moved out of store, leaving it empty.
func New[C any, T any](store *flat.Store[C, T], config Config) *Pack[C, T] {
	pack := &Pack[C, T]{
		logger:  config.Logger,
		compare: store.Comparator(),
		maxSize: config.MaxSize,
		maxLen:  config.MaxLen,
		buckets: []*flat.Store[C, T]{},
	}

	if pack.logger == nil {
		pack.logger = zap.L()
	}

	if pack.maxLen < 0 {
		pack.maxLen = 0
	}

	pack.logger = pack.logger.With(
		zap.String("pack", uuid.New().String()),
		zap.Uint64("max_size", pack.maxSize),
		zap.Int("max_len", pack.maxLen),
	)

	pack.add(store)

	return pack
}

func (pack *Pack[C, T]) add(store *flat.Store[C, T]) {
	pack.logger.Debug("start add()", zap.Int("len", store.Len()), zap.Uint64("size", store.Size()))

	for _, chunk := range pack.chunk(store) {
		if pack.maxSize == 0 {
			pack.push(chunk)

			continue
		}

		for !chunk.IsEmpty() {
			bucket := chunk.SplitBySize(pack.maxSize)

			if bucket == nil {
				// Nothing left in the chunk fits. Give the
				// first oversized entry a bucket of its own.
				bucket = chunk.SplitToCount(chunk.Len() - 1)

				pack.logger.Warn("entry exceeds max size", zap.Uint64("size", bucket.Size()))
			}

			pack.push(bucket)
		}
	}

	pack.logger.Debug("return from add()", zap.Int("buckets", len(pack.buckets)))
}

// chunk cuts store into chunks of at most maxLen entries.
// The remainder is always the last chunk.
func (pack *Pack[C, T]) chunk(store *flat.Store[C, T]) []*flat.Store[C, T] {
	chunks := []*flat.Store[C, T]{}

	if pack.maxLen != 0 {
		for store.Len() > pack.maxLen {
			chunks = append(chunks, store.SplitByCount(pack.maxLen))
		}
	}

	if rest := store.SplitToCount(0); rest != nil {
		chunks = append(chunks, rest)
	}

	return chunks
}

func (pack *Pack[C, T]) push(bucket *flat.Store[C, T]) {
	pack.logger.Debug("bucket", zap.Int("index", len(pack.buckets)), zap.Int("len", bucket.Len()), zap.Uint64("size", bucket.Size()))
	pack.buckets = append(pack.buckets, bucket)
}

// MaxSize returns the size limit of a bucket
func (pack *Pack[C, T]) MaxSize() uint64 {
	return pack.maxSize
}

// MaxLen returns the entry limit of a bucket
func (pack *Pack[C, T]) MaxLen() int {
	return pack.maxLen
}

// Len returns the number of buckets
func (pack *Pack[C, T]) Len() int {
	return len(pack.buckets)
}

// Size returns the total size of all buckets
func (pack *Pack[C, T]) Size() uint64 {
	var size uint64

	for _, bucket := range pack.buckets {
		size += bucket.Size()
	}

	return size
}

// Buckets returns the buckets in the order they were created.
// The buckets themselves are not copied.
func (pack *Pack[C, T]) Buckets() []*flat.Store[C, T] {
	buckets := make([]*flat.Store[C, T], len(pack.buckets))

	copy(buckets, pack.buckets)

	return buckets
}

// Stream returns a stream of the buckets in the order
// they were created. Each call starts a new traversal.
func (pack *Pack[C, T]) Stream() stream.Stream[*flat.Store[C, T]] {
	return stream.FromSlice(pack.Buckets())
}

// Items returns a stream of the entries of every bucket,
// bucket by bucket.
func (pack *Pack[C, T]) Items() stream.Stream[flat.Entry[C, T]] {
	items := stream.Flatten(pack.Stream(), func(bucket *flat.Store[C, T]) stream.Stream[flat.Entry[C, T]] {
		return bucket.Stream()
	})

	return stream.Pipeline(items, stream.Log[flat.Entry[C, T]](pack.logger))
}

// SortedItems is like Items but streams the entries of
// all buckets in key order.
func (pack *Pack[C, T]) SortedItems() stream.Stream[flat.Entry[C, T]] {
	return stream.Pipeline(pack.Items(), stream.Sort(func(a, b flat.Entry[C, T]) int {
		return category.Compare(pack.compare, a.Key, b.Key)
	}))
}

// UpdateItems calls fn for every entry of every bucket.
// fn may modify the value but receives a copy of the key.
func (pack *Pack[C, T]) UpdateItems(fn func(key category.Key[C], value *flat.Value[T]) error) error {
	for _, bucket := range pack.buckets {
		if err := bucket.UpdateValues(nil, fn); err != nil {
			return err
		}
	}

	return nil
}

// Edit gives fn mutable access to the entries of every
// bucket, keys included, grouped by bucket in bucket order.
// Each bucket is re-sorted once fn returns or panics. Edits
// may move an entry outside of the key range of its bucket
// but they never move it to another bucket.
//
// If fn returns an error Edit returns it. Otherwise each
// bucket is checked as flat.Store.Edit does and a key held
// by more than one bucket is reported as flat.ErrAlreadyExists.
// Edits are never rolled back.
func (pack *Pack[C, T]) Edit(fn func(buckets [][]*flat.Entry[C, T]) error) error {
	if err := editAll(pack.buckets, [][]*flat.Entry[C, T]{}, fn); err != nil {
		return err
	}

	return pack.validate()
}

// EditItems is like Edit but passes the entries of all
// buckets to fn as a single list.
func (pack *Pack[C, T]) EditItems(fn func(entries []*flat.Entry[C, T]) error) error {
	return pack.Edit(func(buckets [][]*flat.Entry[C, T]) error {
		entries := []*flat.Entry[C, T]{}

		for _, bucket := range buckets {
			entries = append(entries, bucket...)
		}

		return fn(entries)
	})
}

func editAll[C any, T any](buckets []*flat.Store[C, T], groups [][]*flat.Entry[C, T], fn func(buckets [][]*flat.Entry[C, T]) error) error {
	if len(buckets) == 0 {
		return fn(groups)
	}

	return buckets[0].Edit(nil, func(entries []*flat.Entry[C, T]) error {
		return editAll(buckets[1:], append(groups, entries), fn)
	})
}

// validate reports keys that are held by more than one bucket
func (pack *Pack[C, T]) validate() error {
	var last category.Key[C]

	for i, items := 0, pack.SortedItems(); items.Next(); i++ {
		key := items.Value().Key

		if i > 0 && category.Compare(pack.compare, last, key) == 0 {
			return fmt.Errorf("%w: key %v is held by more than one bucket", flat.ErrAlreadyExists, key)
		}

		last = key
	}

	return nil
}

// Clear discards all buckets
func (pack *Pack[C, T]) Clear() {
	pack.buckets = []*flat.Store[C, T]{}
}

// Clone returns a copy of the pack with every bucket cloned
func (pack *Pack[C, T]) Clone() *Pack[C, T] {
	buckets := make([]*flat.Store[C, T], len(pack.buckets))

	for i, bucket := range pack.buckets {
		buckets[i] = bucket.Clone()
	}

	return &Pack[C, T]{
		logger:  pack.logger,
		compare: pack.compare,
		maxSize: pack.maxSize,
		maxLen:  pack.maxLen,
		buckets: buckets,
	}
}
