// Package hmap implements a separate-chaining hash map keyed by strings.
//
// Map hashes keys with FNV-1a and resolves collisions by chaining entry
// nodes per bucket. When the entry count crosses three quarters of the
// bucket count, the next insert doubles the bucket array first, so the
// insert that tips the map over the threshold is served from the grown
// table. Rehashing relinks the existing entry nodes instead of copying
// them, which keeps pointers obtained from Ref stable across growth.
//
// Maps are single-owner: no internal locking. Every method tolerates a
// nil receiver and reports failure through its return value instead of
// panicking.
//
// Iteration order (All, Keys, Values) follows bucket index and then chain
// position. That order is an implementation detail: it changes as entries
// are added, removed, or rehashed, and callers must treat it as
// unordered.
package hmap

import (
	"iter"

	"github.com/larsonjj/mvn/list"
)

// DefaultCapacity is the bucket count used when New is given a size of
// zero.
const DefaultCapacity = 16

// growthFactor doubles the bucket count when the load factor is crossed.
const growthFactor = 2

// FNV-1a parameters, applied byte-by-byte on a native word accumulator.
const (
	fnvOffsetBasis = 2166136261
	fnvPrime       = 16777619
)

// hashString returns the FNV-1a hash of the key.
func hashString(key string) uint {
	h := uint(fnvOffsetBasis)
	for i := 0; i < len(key); i++ {
		h ^= uint(key[i])
		h *= fnvPrime
	}
	return h
}

// entry is a chain node owning one key/value pair.
type entry[V any] struct {
	key   string
	value V
	next  *entry[V]
}

// Map is a string-keyed hash map with separate chaining.
type Map[V any] struct {
	buckets []*entry[V]
	length  int
}

// New creates a map with the given bucket count. A count of zero or less
// selects DefaultCapacity.
func New[V any](capacity int) *Map[V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Map[V]{buckets: make([]*entry[V], capacity)}
}

// Len returns the number of entries, or 0 for a nil map.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return m.length
}

// BucketCount returns the current size of the bucket array, or 0 for a
// nil map.
func (m *Map[V]) BucketCount() int {
	if m == nil {
		return 0
	}
	return len(m.buckets)
}

// Set stores v under key, overwriting the value in place when the key is
// already present (the entry keeps its chain position and Len does not
// change). A new key is prepended to its bucket's chain. Before an
// insert, the map doubles its bucket count when the entry count exceeds
// three quarters of it. The empty string is a valid key.
// Returns false for a nil map.
func (m *Map[V]) Set(key string, v V) bool {
	if m == nil {
		return false
	}

	// Grow before inserting so the tipping insert lands in the new table.
	if m.length > len(m.buckets)*3/4 {
		m.rehash(len(m.buckets) * growthFactor)
	}

	idx := hashString(key) % uint(len(m.buckets))
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			e.value = v
			return true
		}
	}

	m.buckets[idx] = &entry[V]{key: key, value: v, next: m.buckets[idx]}
	m.length++
	return true
}

// Get returns a copy of the value stored under key.
// The boolean is false when the map is nil or the key is absent.
// Average O(1), worst case O(chain length).
func (m *Map[V]) Get(key string) (V, bool) {
	if e := m.lookup(key); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Ref returns a pointer to the value stored under key for in-place
// mutation, or nil when the map is nil or the key is absent. The pointer
// stays valid across growth (rehashing relinks entries without copying
// them) and is invalidated only by deleting the key.
func (m *Map[V]) Ref(key string) *V {
	if e := m.lookup(key); e != nil {
		return &e.value
	}
	return nil
}

func (m *Map[V]) lookup(key string) *entry[V] {
	if m == nil {
		return nil
	}
	idx := hashString(key) % uint(len(m.buckets))
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// Delete removes the entry stored under key, unlinking it from its
// bucket's chain. Returns false when the map is nil or the key is absent,
// leaving the map unmodified.
func (m *Map[V]) Delete(key string) bool {
	if m == nil {
		return false
	}

	idx := hashString(key) % uint(len(m.buckets))
	var prev *entry[V]
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			if prev == nil {
				m.buckets[idx] = e.next
			} else {
				prev.next = e.next
			}
			e.next = nil
			m.length--
			return true
		}
		prev = e
	}
	return false
}

// Resize rehashes the map into a bucket array of the given size.
// Fails when the map is nil, the size is not positive, or the size is
// smaller than the current entry count.
func (m *Map[V]) Resize(bucketCount int) bool {
	if m == nil || bucketCount <= 0 || bucketCount < m.length {
		return false
	}
	m.rehash(bucketCount)
	return true
}

// rehash transfers every entry node into a new bucket array, recomputing
// each node's bucket from its hash. Nodes are relinked, not copied, so
// keys and values never move.
func (m *Map[V]) rehash(bucketCount int) {
	buckets := make([]*entry[V], bucketCount)
	for _, e := range m.buckets {
		for e != nil {
			next := e.next
			idx := hashString(e.key) % uint(bucketCount)
			e.next = buckets[idx]
			buckets[idx] = e
			e = next
		}
	}
	m.buckets = buckets
}

// Keys returns a new list holding every key. The order is unspecified.
// Returns nil for a nil map; an empty map yields an empty list.
func (m *Map[V]) Keys() *list.List[string] {
	if m == nil {
		return nil
	}
	out := list.New[string](m.length)
	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			out.Push(e.key)
		}
	}
	return out
}

// Values returns a new list holding a copy of every value, in the same
// unspecified order Keys uses for an unmutated map.
// Returns nil for a nil map; an empty map yields an empty list.
func (m *Map[V]) Values() *list.List[V] {
	if m == nil {
		return nil
	}
	out := list.New[V](m.length)
	for _, e := range m.buckets {
		for ; e != nil; e = e.next {
			out.Push(e.value)
		}
	}
	return out
}

// Clear removes every entry, keeping the current bucket count.
// Returns false for a nil map.
func (m *Map[V]) Clear() bool {
	if m == nil {
		return false
	}
	clear(m.buckets)
	m.length = 0
	return true
}

// All returns an iterator over key/value pairs. The order is unspecified.
// The map must not be mutated during iteration.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, e := range m.buckets {
			for ; e != nil; e = e.next {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}
