package ordered_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/sghaida/idioms/ordered"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[K comparable, V any](m *ordered.Map[K, V]) []ordered.Pair[K, V] {
	var out []ordered.Pair[K, V]
	for k, v := range m.All() {
		out = append(out, ordered.KV(k, v))
	}
	return out
}

func TestNew_IteratesInInsertionOrder(t *testing.T) {
	t.Parallel()

	codes := ordered.New(
		ordered.KV(404, "Not Found"),
		ordered.KV(400, "Bad Request"),
		ordered.KV(201, "Created"),
	)

	assert.Equal(t, []ordered.Pair[int, string]{
		{Key: 404, Value: "Not Found"},
		{Key: 400, Value: "Bad Request"},
		{Key: 201, Value: "Created"},
	}, collect(codes))
	assert.Equal(t, []int{404, 400, 201}, slices.Collect(codes.Keys()))
}

func TestSet_ExistingKeyKeepsPosition(t *testing.T) {
	t.Parallel()

	var m ordered.Map[string, int]
	m.Set("a", 1).Set("b", 2).Set("a", 3)

	require.Equal(t, 2, m.Len())
	assert.Equal(t, []ordered.Pair[string, int]{{Key: "a", Value: 3}, {Key: "b", Value: 2}}, m.Pairs())
}

func TestGet(t *testing.T) {
	t.Parallel()

	m := ordered.New(ordered.KV(200, "OK"))
	v, ok := m.Get(200)
	require.True(t, ok)
	assert.Equal(t, "OK", v)

	_, ok = m.Get(500)
	assert.False(t, ok)

	var nilMap *ordered.Map[int, string]
	_, ok = nilMap.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, nilMap.Len())
	assert.Nil(t, nilMap.Pairs())
	assert.Empty(t, collect(nilMap))
}

func TestDelete_ReindexesLaterEntries(t *testing.T) {
	t.Parallel()

	m := ordered.New(ordered.KV("a", 1), ordered.KV("b", 2), ordered.KV("c", 3))

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"))

	v, ok := m.Get("c")
	require.True(t, ok)
	assert.Equal(t, 3, v)

	m.Set("c", 30)
	assert.Equal(t, []ordered.Pair[string, int]{{Key: "b", Value: 2}, {Key: "c", Value: 30}}, m.Pairs())
}

func TestAll_StopsEarly(t *testing.T) {
	t.Parallel()

	m := ordered.New(ordered.KV(1, "x"), ordered.KV(2, "y"), ordered.KV(3, "z"))
	var seen []int
	for k := range m.All() {
		seen = append(seen, k)
		if k == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestEachEntryExactlyOnce(t *testing.T) {
	t.Parallel()

	m := ordered.New(ordered.KV(400, "Bad Request"), ordered.KV(404, "Not Found"))
	counts := map[int]int{}
	for k := range m.All() {
		counts[k]++
	}
	assert.Equal(t, map[int]int{400: 1, 404: 1}, counts)
}

func TestPairString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "404 : Not Found", ordered.KV(404, "Not Found").String())
}

func ExampleMap_All() {
	codes := ordered.New(
		ordered.KV(400, "Bad Request"),
		ordered.KV(404, "Not Found"),
	)
	for code, text := range codes.All() {
		fmt.Printf("%d : %s\n", code, text)
	}
	// Output:
	// 400 : Bad Request
	// 404 : Not Found
}
