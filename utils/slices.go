package utils

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// GetKeys returns the keys of the input map.
// Order is not guaranteed.
func GetKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {

	keys = make([]K, len(m))

	var i int
	for key := range m {
		keys[i] = key
		i++
	}

	return
}

// GetSortedKeys returns the sorted keys of a map.
func GetSortedKeys[K constraints.Ordered, V any](m map[K]V) (keys []K) {
	keys = GetKeys(m)
	SortSlice(keys)
	return
}

// SortSlice sorts a slice in place.
func SortSlice[T constraints.Ordered](s []T) {
	sort.Slice(s, func(i, j int) bool {
		return s[i] < s[j]
	})
}

// ReverseSlice returns a new slice with the elements of s in reverse order.
func ReverseSlice[V any](s []V) []V {
	ret := make([]V, len(s))
	ReverseSliceAllocFree(s, ret)
	return ret
}

// ReverseSliceAllocFree writes s in reverse order in sout
// without allocating new memory.
func ReverseSliceAllocFree[V any](s, sout []V) {

	if len(s) != len(sout) {
		panic("cannot ReverseSliceAllocFree: s and sout of different lengths")
	}

	if len(s) == 0 {
		return
	}

	if &s[0] == &sout[0] { // checks if the two slice share the same backing array
		ReverseSliceInPlace(s)
		return
	}

	n := len(s) - 1
	for i := range s {
		sout[n-i] = s[i]
	}
}

// ReverseSliceInPlace reverses s in place.
func ReverseSliceInPlace[V any](s []V) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// TrimTrailing returns s re-sliced without its trailing elements
// equal to v. At least one element is always kept, so a non-empty
// input never yields an empty slice.
func TrimTrailing[V comparable](s []V, v V) []V {
	n := len(s)
	for n > 1 && s[n-1] == v {
		n--
	}
	return s[:n]
}
