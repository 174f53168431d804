// Package category defines composite category keys: fixed
// sequences of ordered tokens compared element by element.
package category

import (
	"golang.org/x/exp/constraints"
)

// Comparator is a function that compares two tokens
// return 0 if they are equal
// return -1 if a < b
// return 1 if a > b
type Comparator[C any] func(a, b C) int

// Ordered returns a comparator for any naturally
// ordered token type.
func Ordered[C constraints.Ordered]() Comparator[C] {
	return func(a, b C) int {
		if a < b {
			return -1
		} else if a > b {
			return 1
		}

		return 0
	}
}

// Reverse returns a comparator that orders tokens
// opposite to compare.
func Reverse[C any](compare Comparator[C]) Comparator[C] {
	return func(a, b C) int {
		return compare(b, a)
	}
}

// Key is a sequence of category tokens
type Key[C any] []C

// Len returns the number of tokens in the key
func (key Key[C]) Len() int {
	return len(key)
}

// Copy returns a copy of key that shares no
// memory with it
func (key Key[C]) Copy() Key[C] {
	if key == nil {
		return nil
	}

	cp := make(Key[C], len(key))

	copy(cp, key)

	return cp
}

// Compare compares two keys token by token.
// If one key is a prefix of the other the shorter
// key comes first.
func Compare[C any](compare Comparator[C], a, b Key[C]) int {
	var i int
	var cmp int

	for ; i < len(a) && i < len(b) && cmp == 0; cmp, i = compare(a[i], b[i]), i+1 {
	}

	if cmp != 0 {
		return cmp
	}

	if len(a) < len(b) {
		return -1
	} else if len(a) > len(b) {
		return 1
	}

	return 0
}

// HasPrefix returns true if every token of prefix
// equals the token at the same position in key.
// Tokens of prefix beyond the end of key are ignored.
func HasPrefix[C any](compare Comparator[C], key, prefix Key[C]) bool {
	for i := 0; i < len(key) && i < len(prefix); i++ {
		if compare(key[i], prefix[i]) != 0 {
			return false
		}
	}

	return true
}
