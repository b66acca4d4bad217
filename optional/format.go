package optional

import "fmt"

// String renders the value with fmt's default format.
// An absent value renders as the empty string.
func (o Option[T]) String() string {
	if !o.ok {
		return ""
	}
	return fmt.Sprint(o.val)
}

// GoString makes %#v output readable in test failures.
func (o Option[T]) GoString() string {
	if !o.ok {
		return "optional.None()"
	}
	return fmt.Sprintf("optional.Some(%#v)", o.val)
}
