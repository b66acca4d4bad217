// Package multicast composes several callbacks behind one invocation target.
//
// A Multicast keeps an ordered list of callbacks. Add appends, Remove deletes
// the first entry registered under a handle and Invoke calls every remaining
// callback once, in the order they were added.
//
// Go funcs are not comparable, so removal works through the Handle returned by
// Add instead of through the function value itself.
//
// A Multicast is not safe for concurrent use.
package multicast

import (
	"errors"
	"strconv"
)

// ErrNilCallback is returned when Add is given a nil function.
var ErrNilCallback = errors.New("multicast: nil callback")

// Handle identifies one registration. Handles are never reused within a
// Multicast, so removing a stale handle is a no-op.
type Handle uint64

// String implements fmt.Stringer.
func (h Handle) String() string { return "handle#" + strconv.FormatUint(uint64(h), 10) }

type entry[T any] struct {
	h  Handle
	fn func(T)
}

// Multicast is an ordered sequence of callbacks taking a T.
//
// The zero value is an empty, ready to use target.
type Multicast[T any] struct {
	last    Handle
	entries []entry[T]
}

// New returns a Multicast with fns already added in order.
// Nil functions are skipped.
func New[T any](fns ...func(T)) *Multicast[T] {
	m := &Multicast[T]{}
	for _, fn := range fns {
		_, _ = m.Add(fn)
	}
	return m
}

// Add appends fn and returns the handle needed to remove it later.
func (m *Multicast[T]) Add(fn func(T)) (Handle, error) {
	if fn == nil {
		return 0, ErrNilCallback
	}
	m.last++
	m.entries = append(m.entries, entry[T]{h: m.last, fn: fn})
	return m.last, nil
}

// Remove deletes the first callback registered under h.
// It reports whether anything was removed.
func (m *Multicast[T]) Remove(h Handle) bool {
	for i, e := range m.entries {
		if e.h == h {
			m.entries = append(m.entries[:i:i], m.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Combine appends other's callbacks, in order, after m's own.
//
// The appended callbacks get fresh handles in m; the returned slice holds them
// in the same order as other's callbacks.
func (m *Multicast[T]) Combine(other *Multicast[T]) []Handle {
	if other == nil {
		return nil
	}
	// snapshot so m.Combine(m) terminates
	src := append([]entry[T](nil), other.entries...)
	hs := make([]Handle, 0, len(src))
	for _, e := range src {
		h, _ := m.Add(e.fn)
		hs = append(hs, h)
	}
	return hs
}

// Invoke calls every callback once with arg, in registration order.
// Invoking an empty Multicast does nothing.
func (m *Multicast[T]) Invoke(arg T) {
	if m == nil {
		return
	}
	// callbacks may Add/Remove while we iterate; they only affect later calls
	snapshot := append([]entry[T](nil), m.entries...)
	for _, e := range snapshot {
		e.fn(arg)
	}
}

// Len returns the number of registered callbacks.
func (m *Multicast[T]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Handles returns the registered handles in invocation order.
func (m *Multicast[T]) Handles() []Handle {
	if m == nil {
		return nil
	}
	hs := make([]Handle, len(m.entries))
	for i, e := range m.entries {
		hs[i] = e.h
	}
	return hs
}

// Clear removes every callback. Handles already issued stay retired.
func (m *Multicast[T]) Clear() {
	if m == nil {
		return
	}
	m.entries = nil
}
