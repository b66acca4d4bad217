package optional_test

import (
	"fmt"
	"testing"

	"github.com/sghaida/idioms/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type book struct {
	Title  string
	Author optional.Option[string]
}

func TestZeroValueIsAbsent(t *testing.T) {
	t.Parallel()

	var o optional.Option[int]
	assert.True(t, o.IsNone())
	assert.False(t, o.IsSome())

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	v, ok := optional.Some(7).Get()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	assert.True(t, optional.None[string]().IsNone())
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	var nilPtr *string
	assert.True(t, optional.FromPtr(nilPtr).IsNone())

	s := "x"
	got := optional.FromPtr(&s)
	require.True(t, got.IsSome())
	assert.Equal(t, "x", got.Or(""))

	// the option holds a copy
	s = "y"
	assert.Equal(t, "x", got.Or(""))
}

func TestPtr(t *testing.T) {
	t.Parallel()

	assert.Nil(t, optional.None[int]().Ptr())

	p := optional.Some(3).Ptr()
	require.NotNil(t, p)
	assert.Equal(t, 3, *p)
}

func TestOr(t *testing.T) {
	t.Parallel()

	var greeting optional.Option[string]
	assert.Equal(t, "Hello World!", greeting.Or("Hello")+" World!")
	assert.Equal(t, "Hi", optional.Some("Hi").Or("Hello"))

	// an explicitly supplied empty value is not replaced
	assert.Equal(t, "", optional.Some("").Or("Hello"))
}

func TestOrElse_LazyFallback(t *testing.T) {
	t.Parallel()

	calls := 0
	fallback := func() int { calls++; return 42 }

	assert.Equal(t, 1, optional.Some(1).OrElse(fallback))
	assert.Equal(t, 0, calls)

	assert.Equal(t, 42, optional.None[int]().OrElse(fallback))
	assert.Equal(t, 1, calls)
}

func TestThen_ShortCircuits(t *testing.T) {
	t.Parallel()

	books := []book{
		{Title: "Don Quixote", Author: optional.Some("Miguel De Cervantes")},
		{Title: "The Red Badge of Courage", Author: optional.Some("Stephen Crane")},
		{Title: "The Secret Garden"},
	}
	author := func(b book) optional.Option[string] { return b.Author }

	cases := []struct {
		name  string
		books []book
		idx   int
		want  optional.Option[string]
	}{
		{name: "present", books: books, idx: 1, want: optional.Some("Stephen Crane")},
		{name: "missing author", books: books, idx: 2, want: optional.None[string]()},
		{name: "out of range", books: books, idx: 3, want: optional.None[string]()},
		{name: "negative index", books: books, idx: -1, want: optional.None[string]()},
		{name: "nil list", books: nil, idx: 0, want: optional.None[string]()},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := optional.Then(optional.At(tc.books, tc.idx), author)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestThen_DoesNotEvaluateLaterStages(t *testing.T) {
	t.Parallel()

	called := false
	got := optional.Then(optional.None[int](), func(int) optional.Option[int] {
		called = true
		return optional.Some(1)
	})

	assert.True(t, got.IsNone())
	assert.False(t, called)
}

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(n int) int { return n * 2 }
	assert.Equal(t, optional.Some(8), optional.Map(optional.Some(4), double))
	assert.True(t, optional.Map(optional.None[int](), double).IsNone())
}

func TestCoalesce(t *testing.T) {
	t.Parallel()

	got := optional.Coalesce(optional.None[string](), optional.Some("b"), optional.Some("c"))
	assert.Equal(t, optional.Some("b"), got)
	assert.True(t, optional.Coalesce[string]().IsNone())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	codes := map[int]string{404: "Not Found"}
	assert.Equal(t, optional.Some("Not Found"), optional.Lookup(codes, 404))
	assert.True(t, optional.Lookup(codes, 500).IsNone())

	var nilMap map[int]string
	assert.True(t, optional.Lookup(nilMap, 1).IsNone())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", optional.None[string]().String())
	assert.Equal(t, "992", optional.Some(992).String())
	assert.Equal(t, "\n", fmt.Sprintln(optional.None[string]()))
	assert.Equal(t, "optional.None()", fmt.Sprintf("%#v", optional.None[int]()))
	assert.Equal(t, `optional.Some("a")`, fmt.Sprintf("%#v", optional.Some("a")))
}

func ExampleThen() {
	books := []book{
		{Title: "Don Quixote", Author: optional.Some("Miguel De Cervantes")},
		{Title: "The Secret Garden"},
	}
	author := func(b book) optional.Option[string] { return b.Author }

	fmt.Printf("[%s]\n", optional.Then(optional.At(books, 0), author))
	fmt.Printf("[%s]\n", optional.Then(optional.At(books, 1), author))
	fmt.Printf("[%s]\n", optional.Then(optional.At(books, 5), author))
	// Output:
	// [Miguel De Cervantes]
	// []
	// []
}
