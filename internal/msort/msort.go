// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package msort implements a stable merge sort over slices.
package msort

// Stable sorts xs in place in the order defined by less, keeping elements
// that compare equal in their original relative order.  The less function
// must define a strict weak ordering.
func Stable[T any](xs []T, less func(a, b T) bool) {
	if len(xs) < 2 {
		return
	}
	tmp := make([]T, len(xs))
	mergeSort(xs, tmp, less)
}

// Sorted returns a sorted copy of xs, leaving xs unmodified.
func Sorted[T any](xs []T, less func(a, b T) bool) []T {
	cp := make([]T, len(xs))
	copy(cp, xs)
	Stable(cp, less)
	return cp
}

// mergeSort sorts xs using tmp (of the same length) as scratch space.
func mergeSort[T any](xs, tmp []T, less func(a, b T) bool) {
	const insertionMax = 12
	if len(xs) <= insertionMax {
		insertionSort(xs, less)
		return
	}
	mid := len(xs) / 2
	mergeSort(xs[:mid], tmp[:mid], less)
	mergeSort(xs[mid:], tmp[mid:], less)
	if !less(xs[mid], xs[mid-1]) {
		return // already in order
	}

	copy(tmp, xs)
	i, j, k := 0, mid, 0
	for i < mid && j < len(xs) {
		// Take from the right only when strictly less, so that ties keep the
		// element from the left half first.
		if less(tmp[j], tmp[i]) {
			xs[k] = tmp[j]
			j++
		} else {
			xs[k] = tmp[i]
			i++
		}
		k++
	}
	k += copy(xs[k:], tmp[i:mid])
	copy(xs[k:], tmp[j:])
}

func insertionSort[T any](xs []T, less func(a, b T) bool) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && less(xs[j], xs[j-1]); j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
