package flat

// SplitByCount moves up to count entries with the highest
// keys into a new store and returns it. It returns nil if
// nothing was moved. Both stores stay sorted.
func (store *Store[C, T]) SplitByCount(count int) *Store[C, T] {
	head, tail := store.cut(count)

	if len(tail) == 0 {
		return nil
	}

	store.entries = head

	return store.derive(tail)
}

// SplitToCount is SplitByCount with the roles swapped: the
// store keeps up to count entries with the highest keys and
// the rest is returned. It returns nil if the store keeps
// everything. A count of zero moves every entry out.
func (store *Store[C, T]) SplitToCount(count int) *Store[C, T] {
	head, tail := store.cut(count)

	store.entries = tail

	if len(head) == 0 {
		return nil
	}

	return store.derive(head)
}

// SplitByPredicate moves every entry for which fn returns
// true into a new store and returns it. It returns nil if
// nothing matched. fn receives a copy of the entry key.
// Both stores stay sorted.
func (store *Store[C, T]) SplitByPredicate(fn func(entry Entry[C, T]) bool) *Store[C, T] {
	kept := []Entry[C, T]{}
	moved := []Entry[C, T]{}

	for _, entry := range store.entries {
		if fn(Entry[C, T]{Key: entry.Key.Copy(), Value: entry.Value}) {
			moved = append(moved, entry)

			continue
		}

		kept = append(kept, entry)
	}

	if len(moved) == 0 {
		return nil
	}

	store.entries = kept

	return store.derive(moved)
}

// SplitBySize moves entries into a new store, first fit,
// until no remaining entry fits the budget. Entries are
// visited in key order and an entry fits while its size is
// no more than what is left of a nonzero budget. Entries
// that don't fit are skipped rather than ending the scan,
// so a small entry after a large one can still be taken.
// It returns nil if nothing fit. Both stores stay sorted.
func (store *Store[C, T]) SplitBySize(budget uint64) *Store[C, T] {
	kept, moved := store.fit(budget)

	if len(moved) == 0 {
		return nil
	}

	store.entries = kept

	return store.derive(moved)
}

// SplitToSize is SplitBySize with the roles swapped: the
// store keeps the entries that fit the budget and the rest
// is returned. It returns nil if every entry fit.
func (store *Store[C, T]) SplitToSize(budget uint64) *Store[C, T] {
	kept, moved := store.fit(budget)

	store.entries = moved

	if len(kept) == 0 {
		return nil
	}

	return store.derive(kept)
}

// cut splits the entries before the last count entries
func (store *Store[C, T]) cut(count int) (head []Entry[C, T], tail []Entry[C, T]) {
	if count < 0 {
		count = 0
	}

	if count > len(store.entries) {
		count = len(store.entries)
	}

	i := len(store.entries) - count
	head = make([]Entry[C, T], i)
	tail = make([]Entry[C, T], count)

	copy(head, store.entries[:i])
	copy(tail, store.entries[i:])

	return head, tail
}

// fit partitions the entries into those that don't fit the
// budget and those that do, first fit in key order.
func (store *Store[C, T]) fit(budget uint64) (kept []Entry[C, T], moved []Entry[C, T]) {
	kept = []Entry[C, T]{}
	moved = []Entry[C, T]{}

	for _, entry := range store.entries {
		if budget > 0 && entry.Value.Size <= budget {
			budget -= entry.Value.Size
			moved = append(moved, entry)

			continue
		}

		kept = append(kept, entry)
	}

	return kept, moved
}

func (store *Store[C, T]) derive(entries []Entry[C, T]) *Store[C, T] {
	return &Store[C, T]{
		depth:   store.depth,
		compare: store.compare,
		entries: entries,
	}
}
