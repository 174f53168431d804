package flat_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jrife/flatpack/storage/flat"
)

func TestStoreEdit(t *testing.T) {
	errEdit := errors.New("edit failed")

	testCases := map[string]struct {
		prefix key
		edit   func(entries []*entry) error
		err    error
		result []entry
	}{
		"reorder": {
			prefix: key{0},
			edit: func(entries []*entry) error {
				for _, entry := range entries {
					entry.Key[0] = 3
				}

				return nil
			},
			result: []entry{
				e("10", 10, 1, 0), e("11", 11, 1, 1), e("12", 12, 1, 2),
				e("20", 20, 2, 0), e("21", 21, 2, 1), e("22", 22, 2, 2),
				e("00", 0, 3, 0), e("01", 1, 3, 1), e("02", 2, 3, 2),
			},
		},
		"exact": {
			prefix: key{2, 2},
			edit: func(entries []*entry) error {
				entries[0].Key = key{0, 5}
				entries[0].Value.Size = 7

				return nil
			},
			result: []entry{
				e("00", 0, 0, 0), e("01", 1, 0, 1), e("02", 2, 0, 2), e("22", 7, 0, 5),
				e("10", 10, 1, 0), e("11", 11, 1, 1), e("12", 12, 1, 2),
				e("20", 20, 2, 0), e("21", 21, 2, 1),
			},
		},
		"error-still-fixes": {
			prefix: key{2, 0},
			edit: func(entries []*entry) error {
				entries[0].Key = key{0, 3}

				return errEdit
			},
			err: errEdit,
			result: []entry{
				e("00", 0, 0, 0), e("01", 1, 0, 1), e("02", 2, 0, 2), e("20", 20, 0, 3),
				e("10", 10, 1, 0), e("11", 11, 1, 1), e("12", 12, 1, 2),
				e("21", 21, 2, 1), e("22", 22, 2, 2),
			},
		},
		"collision": {
			prefix: key{1, 1},
			edit: func(entries []*entry) error {
				entries[0].Key = key{2, 2}

				return nil
			},
			err: flat.ErrAlreadyExists,
			result: []entry{
				e("00", 0, 0, 0), e("01", 1, 0, 1), e("02", 2, 0, 2),
				e("10", 10, 1, 0), e("12", 12, 1, 2),
				e("20", 20, 2, 0), e("21", 21, 2, 1), e("11", 11, 2, 2), e("22", 22, 2, 2),
			},
		},
		"too-small": {
			prefix: key{0, 0},
			edit: func(entries []*entry) error {
				entries[0].Key = key{0}

				return nil
			},
			err: flat.ErrCategoryTooSmall,
			result: []entry{
				e("00", 0, 0), e("01", 1, 0, 1), e("02", 2, 0, 2),
				e("10", 10, 1, 0), e("11", 11, 1, 1), e("12", 12, 1, 2),
				e("20", 20, 2, 0), e("21", 21, 2, 1), e("22", 22, 2, 2),
			},
		},
		"too-big": {
			prefix: key{0, 0},
			edit: func(entries []*entry) error {
				entries[0].Key = key{9, 0, 0}

				return nil
			},
			err: flat.ErrCategoryTooBig,
			result: []entry{
				e("01", 1, 0, 1), e("02", 2, 0, 2),
				e("10", 10, 1, 0), e("11", 11, 1, 1), e("12", 12, 1, 2),
				e("20", 20, 2, 0), e("21", 21, 2, 1), e("22", 22, 2, 2),
				e("00", 0, 9, 0, 0),
			},
		},
		"bad-prefix": {
			prefix: key{0, 0, 0},
			edit: func(entries []*entry) error {
				t.Fatalf("edit should not be called")

				return nil
			},
			err: flat.ErrCategoryTooBig,
			result: []entry{
				e("00", 0, 0, 0), e("01", 1, 0, 1), e("02", 2, 0, 2),
				e("10", 10, 1, 0), e("11", 11, 1, 1), e("12", 12, 1, 2),
				e("20", 20, 2, 0), e("21", 21, 2, 1), e("22", 22, 2, 2),
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase

		t.Run(name, func(t *testing.T) {
			store := grid(t)
			err := store.Edit(testCase.prefix, testCase.edit)

			if !errors.Is(err, testCase.err) {
				t.Fatalf("expected err to be %#v, got %#v", testCase.err, err)
			}

			if diff := cmp.Diff(testCase.result, store.Entries()); diff != "" {
				t.Fatalf(diff)
			}
		})
	}
}

func TestStoreEditPanicStillFixes(t *testing.T) {
	store := grid(t)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected a panic")
			}
		}()

		store.Edit(key{}, func(entries []*entry) error {
			entries[0].Key = key{9, 9}

			panic("edit panicked")
		})
	}()

	checkSorted(t, store)

	if _, err := store.Get(key{9, 9}); err != nil {
		t.Fatalf("expected edited key to be found, got %#v", err)
	}
}

func TestStoreFix(t *testing.T) {
	store := grid(t)
	refs, err := store.GetValueRefs(key{})

	if err != nil {
		t.Fatalf("expected err to be nil, got %#v", err)
	}

	// Fix is stable and never reorders a sorted store
	store.Fix()

	if diff := cmp.Diff(mustGet(t, store, key{0, 0}), []entry{e("00", 0, 0, 0)}); diff != "" {
		t.Fatalf(diff)
	}

	if len(refs) != store.Len() {
		t.Fatalf("expected %d refs, got %d", store.Len(), len(refs))
	}
}
