// Package ordered provides a small map that remembers insertion order.
//
// Go's built-in map iterates in an unspecified order; lookup tables that are
// printed (status codes, menu entries) usually want the order they were
// written in.
package ordered

import (
	"fmt"
	"iter"
)

// Pair is one key/value entry, used to build a Map from literals.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// KV is shorthand for building a Pair inside a literal list.
func KV[K comparable, V any](k K, v V) Pair[K, V] { return Pair[K, V]{Key: k, Value: v} }

// String renders the pair as "key : value".
func (p Pair[K, V]) String() string { return fmt.Sprintf("%v : %v", p.Key, p.Value) }

// Map is an insertion-ordered map. Setting an existing key replaces its value
// but keeps its original position.
//
// The zero value is an empty map ready to use. A Map is not safe for
// concurrent use.
type Map[K comparable, V any] struct {
	index map[K]int
	pairs []Pair[K, V]
}

// New builds a Map from pairs, in order.
func New[K comparable, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := &Map[K, V]{index: make(map[K]int, len(pairs)), pairs: make([]Pair[K, V], 0, len(pairs))}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set stores v under k and returns m for chaining.
func (m *Map[K, V]) Set(k K, v V) *Map[K, V] {
	if m.index == nil {
		m.index = make(map[K]int)
	}
	if i, ok := m.index[k]; ok {
		m.pairs[i].Value = v
		return m
	}
	m.index[k] = len(m.pairs)
	m.pairs = append(m.pairs, Pair[K, V]{Key: k, Value: v})
	return m
}

// Get returns the value for k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	i, ok := m.index[k]
	if !ok {
		var zero V
		return zero, false
	}
	return m.pairs[i].Value, true
}

// Delete removes k and reports whether it was present.
func (m *Map[K, V]) Delete(k K) bool {
	if m == nil {
		return false
	}
	i, ok := m.index[k]
	if !ok {
		return false
	}
	delete(m.index, k)
	m.pairs = append(m.pairs[:i], m.pairs[i+1:]...)
	for j := i; j < len(m.pairs); j++ {
		m.index[m.pairs[j].Key] = j
	}
	return true
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// All iterates entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for _, p := range m.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys iterates keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Pairs returns a copy of the entries in insertion order.
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	if m == nil {
		return nil
	}
	return append([]Pair[K, V](nil), m.pairs...)
}
