package category_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jrife/flatpack/storage/category"
)

func TestCompare(t *testing.T) {
	testCases := map[string]struct {
		a      category.Key[int]
		b      category.Key[int]
		result int
	}{
		"both-empty": {
			a:      category.Key[int]{},
			b:      nil,
			result: 0,
		},
		"equal": {
			a:      category.Key[int]{1, 2, 3},
			b:      category.Key[int]{1, 2, 3},
			result: 0,
		},
		"first-token-less": {
			a:      category.Key[int]{0, 9, 9},
			b:      category.Key[int]{1, 0, 0},
			result: -1,
		},
		"last-token-greater": {
			a:      category.Key[int]{1, 2, 4},
			b:      category.Key[int]{1, 2, 3},
			result: 1,
		},
		"prefix-first": {
			a:      category.Key[int]{1, 2},
			b:      category.Key[int]{1, 2, 3},
			result: -1,
		},
		"longer-after-prefix": {
			a:      category.Key[int]{1, 2, 0},
			b:      category.Key[int]{1, 2},
			result: 1,
		},
		"token-beats-length": {
			a:      category.Key[int]{2},
			b:      category.Key[int]{1, 5, 5},
			result: 1,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase

		t.Run(name, func(t *testing.T) {
			result := category.Compare(category.Ordered[int](), testCase.a, testCase.b)

			if result != testCase.result {
				t.Fatalf("expected %d, got %d", testCase.result, result)
			}

			reversed := category.Compare(category.Ordered[int](), testCase.b, testCase.a)

			if reversed != -testCase.result {
				t.Fatalf("expected reversed comparison %d, got %d", -testCase.result, reversed)
			}
		})
	}
}

func TestHasPrefix(t *testing.T) {
	testCases := map[string]struct {
		key    category.Key[string]
		prefix category.Key[string]
		result bool
	}{
		"empty-prefix": {
			key:    category.Key[string]{"a", "b"},
			prefix: category.Key[string]{},
			result: true,
		},
		"match": {
			key:    category.Key[string]{"a", "b", "c"},
			prefix: category.Key[string]{"a", "b"},
			result: true,
		},
		"mismatch": {
			key:    category.Key[string]{"a", "b", "c"},
			prefix: category.Key[string]{"a", "c"},
			result: false,
		},
		"full-match": {
			key:    category.Key[string]{"a", "b"},
			prefix: category.Key[string]{"a", "b"},
			result: true,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase

		t.Run(name, func(t *testing.T) {
			result := category.HasPrefix(category.Ordered[string](), testCase.key, testCase.prefix)

			if result != testCase.result {
				t.Fatalf("expected %t, got %t", testCase.result, result)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	compare := category.Reverse(category.Ordered[int]())

	if compare(1, 2) != 1 || compare(2, 1) != -1 || compare(3, 3) != 0 {
		t.Fatalf("expected reverse ordering")
	}
}

func TestCopy(t *testing.T) {
	key := category.Key[int]{1, 2, 3}
	cp := key.Copy()
	cp[0] = 9

	if diff := cmp.Diff(category.Key[int]{1, 2, 3}, key); diff != "" {
		t.Fatalf(diff)
	}

	if category.Key[int](nil).Copy() != nil {
		t.Fatalf("expected nil copy of nil key")
	}

	if key.Len() != 3 {
		t.Fatalf("expected length 3, got %d", key.Len())
	}
}
