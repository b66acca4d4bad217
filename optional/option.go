// Package optional provides an explicit "maybe absent" value and a few
// combinators for chaining lookups that may come up empty.
//
// An absent value never turns into a panic: indexing past the end of a slice,
// following a missing link in a chain or printing an absent value all produce
// another absent value (or the empty string when rendered).
//
// Typical use:
//
//	author := optional.Then(optional.At(books, 2), func(b Book) optional.Option[string] {
//		return b.Author
//	})
//	fmt.Println(author) // empty line when the author is missing
package optional

// Option holds either a value of type T or nothing.
//
// The zero value is absent, so struct fields of type Option[T] default to
// "not supplied".
type Option[T any] struct {
	val T
	ok  bool
}

// Some wraps v as a present value.
func Some[T any](v T) Option[T] { return Option[T]{val: v, ok: true} }

// None returns an absent value.
func None[T any]() Option[T] { return Option[T]{} }

// FromPtr returns Some(*p), or None when p is nil.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.val, o.ok }

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// IsNone reports whether the value is absent.
func (o Option[T]) IsNone() bool { return !o.ok }

// Or returns the value if present, otherwise fallback.
func (o Option[T]) Or(fallback T) T {
	if o.ok {
		return o.val
	}
	return fallback
}

// OrElse is like Or but only calls fn when the value is absent.
func (o Option[T]) OrElse(fn func() T) T {
	if o.ok {
		return o.val
	}
	return fn()
}

// Ptr returns a pointer to a copy of the value, or nil when absent.
func (o Option[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.val
	return &v
}

// Then chains a lookup that may itself come up empty.
//
// f is not called when o is absent.
func Then[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return f(o.val)
}

// Map transforms a present value. f is not called when o is absent.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(f(o.val))
}

// Coalesce returns the first present option, or None when all are absent.
func Coalesce[T any](opts ...Option[T]) Option[T] {
	for _, o := range opts {
		if o.ok {
			return o
		}
	}
	return None[T]()
}

// At returns s[i], or None when s is nil or i is out of range.
func At[T any](s []T, i int) Option[T] {
	if i < 0 || i >= len(s) {
		return None[T]()
	}
	return Some(s[i])
}

// Lookup returns m[k], or None when m is nil or the key is missing.
func Lookup[K comparable, V any](m map[K]V, k K) Option[V] {
	v, ok := m[k]
	if !ok {
		return None[V]()
	}
	return Some(v)
}
