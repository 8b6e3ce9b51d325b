// Package list implements a growable contiguous array with explicit
// capacity control.
//
// List keeps its elements in one backing buffer and tracks length and
// capacity separately, so callers can reason about allocation behavior:
// appends double the capacity when full, batch appends reallocate at most
// once, and Resize/Reserve/Trim give direct control over the buffer size.
//
// Lists are single-owner: no internal locking. Every method tolerates a
// nil receiver and reports failure through its return value instead of
// panicking, so optional containers can flow through call chains without
// guards at every site.
//
// Pointers obtained from At are borrowed: they remain valid only until
// the next mutating call on the same list. Mutations that grow the buffer
// or shift elements make previously returned pointers point at stale or
// moved data.
package list

import (
	"iter"
	"slices"
)

// DefaultCapacity is the capacity used when New is given a size of zero,
// and the floor Resize snaps small nonzero requests up to.
const DefaultCapacity = 8

// growthFactor doubles the capacity on overflow so the average cost per
// append stays O(1).
const growthFactor = 2

// End is the sentinel end index for Slice, meaning "through the last
// element".
const End = -1

// List is a growable contiguous array of T.
type List[T any] struct {
	buf    []T // len(buf) is the capacity
	length int
}

// New creates a list with the given capacity. A capacity of zero or less
// selects DefaultCapacity.
func New[T any](capacity int) *List[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List[T]{buf: make([]T, capacity)}
}

// Len returns the number of elements in the list, or 0 for a nil list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Cap returns the current capacity, or 0 for a nil list.
func (l *List[T]) Cap() int {
	if l == nil {
		return 0
	}
	return len(l.buf)
}

// Get returns a copy of the element at index i.
// The boolean is false when the list is nil or i is out of range.
func (l *List[T]) Get(i int) (T, bool) {
	if l == nil || i < 0 || i >= l.length {
		var zero T
		return zero, false
	}
	return l.buf[i], true
}

// At returns a pointer to the element at index i, or nil when the list is
// nil or i is out of range. The pointer is borrowed: it is valid only
// until the next mutating call on the list.
func (l *List[T]) At(i int) *T {
	if l == nil || i < 0 || i >= l.length {
		return nil
	}
	return &l.buf[i]
}

// Set overwrites the element at index i.
// Returns false when the list is nil or i is out of range.
func (l *List[T]) Set(i int, v T) bool {
	if l == nil || i < 0 || i >= l.length {
		return false
	}
	l.buf[i] = v
	return true
}

// ensure grows the buffer when it is full: the capacity doubles, or seeds
// to DefaultCapacity when currently zero.
func (l *List[T]) ensure() {
	if l.length < len(l.buf) {
		return
	}
	newCap := len(l.buf) * growthFactor
	if newCap == 0 {
		newCap = DefaultCapacity
	}
	l.Resize(newCap)
}

// Push appends v to the end of the list. Amortized O(1).
// Returns false for a nil list.
func (l *List[T]) Push(v T) bool {
	if l == nil {
		return false
	}
	l.ensure()
	l.buf[l.length] = v
	l.length++
	return true
}

// PushBatch appends all given items with at most one reallocation.
// When the batch does not fit, the capacity is set to
// (length+len(items)) * 2 in a single resize. An empty or nil batch
// fails, as does a nil list.
func (l *List[T]) PushBatch(items []T) bool {
	if l == nil || len(items) == 0 {
		return false
	}
	if l.length+len(items) > len(l.buf) {
		l.Resize((l.length + len(items)) * growthFactor)
	}
	copy(l.buf[l.length:], items)
	l.length += len(items)
	return true
}

// Pop removes and returns the last element.
// The boolean is false when the list is nil or empty.
func (l *List[T]) Pop() (T, bool) {
	var zero T
	if l == nil || l.length == 0 {
		return zero, false
	}
	l.length--
	v := l.buf[l.length]
	l.buf[l.length] = zero // release the slot for the GC
	return v, true
}

// Unshift inserts v at the front, shifting all existing elements right by
// one slot in a single block move. O(n). Returns false for a nil list.
func (l *List[T]) Unshift(v T) bool {
	if l == nil {
		return false
	}
	l.ensure()
	if l.length > 0 {
		copy(l.buf[1:l.length+1], l.buf[:l.length])
	}
	l.buf[0] = v
	l.length++
	return true
}

// Shift removes and returns the first element, moving the remainder left
// by one slot in a single block move. O(n).
// The boolean is false when the list is nil or empty.
func (l *List[T]) Shift() (T, bool) {
	var zero T
	if l == nil || l.length == 0 {
		return zero, false
	}
	v := l.buf[0]
	if l.length > 1 {
		copy(l.buf[:l.length-1], l.buf[1:l.length])
	}
	l.length--
	l.buf[l.length] = zero
	return v, true
}

// Slice returns a new list holding a copy of the half-open range
// [start, end). Pass End (or any negative end) to slice through the last
// element; an end beyond the list clamps to the length. Returns nil when
// the list is nil, start is negative, start exceeds the length, or start
// exceeds the resolved end. An empty range yields an empty list with
// DefaultCapacity; otherwise the result capacity equals the range size.
func (l *List[T]) Slice(start, end int) *List[T] {
	if l == nil || start < 0 {
		return nil
	}
	if end < 0 || end > l.length {
		end = l.length
	}
	if start > l.length || start > end {
		return nil
	}

	n := end - start
	out := New[T](n)
	copy(out.buf, l.buf[start:end])
	out.length = n
	return out
}

// Concat returns a new list containing a's elements followed by b's.
// Returns nil when either input is nil. The result capacity equals the
// combined length (DefaultCapacity when both are empty).
func Concat[T any](a, b *List[T]) *List[T] {
	if a == nil || b == nil {
		return nil
	}
	out := New[T](a.length + b.length)
	copy(out.buf, a.buf[:a.length])
	copy(out.buf[a.length:], b.buf[:b.length])
	out.length = a.length + b.length
	return out
}

// Clone returns a deep copy of the list, preserving its exact capacity so
// the copy can absorb the same number of pushes before reallocating.
// Returns nil for a nil list.
func (l *List[T]) Clone() *List[T] {
	if l == nil {
		return nil
	}
	out := New[T](len(l.buf))
	copy(out.buf, l.buf[:l.length])
	out.length = l.length
	return out
}

// Reverse reverses the list in place by swapping symmetric index pairs.
// A list with fewer than two elements is left unchanged.
// Returns false for a nil list.
func (l *List[T]) Reverse() bool {
	if l == nil {
		return false
	}
	for i, j := 0, l.length-1; i < j; i, j = i+1, j-1 {
		l.buf[i], l.buf[j] = l.buf[j], l.buf[i]
	}
	return true
}

// Sort sorts the list in place using the comparison function, which must
// return a negative number when a orders before b, zero when they are
// equal, and a positive number otherwise. The sort is not stable.
// Returns false when the list or cmp is nil.
func (l *List[T]) Sort(cmp func(a, b T) int) bool {
	if l == nil || cmp == nil {
		return false
	}
	if l.length > 1 {
		slices.SortFunc(l.buf[:l.length], cmp)
	}
	return true
}

// Filter returns a new list with the elements for which keep returns
// true, preserving their relative order. The input list is not modified.
// Two passes: the first counts matches so the result is sized exactly
// (DefaultCapacity when nothing matches); when every element matches the
// copy is a single bulk operation. Returns nil when the list or keep is
// nil.
func (l *List[T]) Filter(keep func(T) bool) *List[T] {
	if l == nil || keep == nil {
		return nil
	}

	matches := 0
	for i := 0; i < l.length; i++ {
		if keep(l.buf[i]) {
			matches++
		}
	}

	out := New[T](matches)
	if matches == 0 {
		return out
	}
	if matches == l.length {
		copy(out.buf, l.buf[:l.length])
		out.length = l.length
		return out
	}
	for i := 0; i < l.length; i++ {
		if keep(l.buf[i]) {
			out.buf[out.length] = l.buf[i]
			out.length++
		}
	}
	return out
}

// Reserve ensures the capacity is at least n, growing via Resize when it
// is not. Returns true when the capacity is already sufficient.
func (l *List[T]) Reserve(n int) bool {
	if l == nil {
		return false
	}
	if n <= len(l.buf) {
		return true
	}
	return l.Resize(n)
}

// Resize sets the capacity to n. Requests below the current length are
// clamped up to the length, so a resize never truncates. A nonzero
// request below DefaultCapacity snaps up to DefaultCapacity to dampen
// repeated small reallocations. Returns false for a nil list.
func (l *List[T]) Resize(n int) bool {
	if l == nil {
		return false
	}
	if n < l.length {
		n = l.length
	}
	if n == len(l.buf) {
		return true
	}
	if n > 0 && n < DefaultCapacity {
		n = DefaultCapacity
		if n == len(l.buf) {
			return true
		}
	}
	buf := make([]T, n)
	copy(buf, l.buf[:l.length])
	l.buf = buf
	return true
}

// Clear removes all elements without changing the capacity. The vacated
// slots are zeroed so stale references do not pin memory.
// Returns false for a nil list.
func (l *List[T]) Clear() bool {
	if l == nil {
		return false
	}
	clear(l.buf[:l.length])
	l.length = 0
	return true
}

// Trim releases excess capacity. A non-empty list resizes to its length
// (floored at DefaultCapacity by the resize minimum); an empty list
// resets to DefaultCapacity. A list whose capacity already equals its
// length is left untouched. Returns false for a nil list.
func (l *List[T]) Trim() bool {
	if l == nil {
		return false
	}
	if l.length == 0 {
		return l.Resize(DefaultCapacity)
	}
	if len(l.buf) > l.length {
		return l.Resize(l.length)
	}
	return true
}

// All returns an iterator over index/element pairs in order.
// The list must not be mutated during iteration.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		for i := 0; i < l.length; i++ {
			if !yield(i, l.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
// The list must not be mutated during iteration.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		for i := 0; i < l.length; i++ {
			if !yield(l.buf[i]) {
				return
			}
		}
	}
}
