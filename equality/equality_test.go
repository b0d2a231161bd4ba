package equality_test

import (
	"testing"

	"github.com/delaneyj/storeparty/equality"
	"github.com/stretchr/testify/assert"
)

// comparable values go through ==
func TestIdenticalComparable(t *testing.T) {
	assert.True(t, equality.Identical(1, 1))
	assert.True(t, equality.Identical("a", "a"))
	assert.False(t, equality.Identical(1, 2))
	assert.False(t, equality.Identical(1, "1"))
	assert.False(t, equality.Identical(1, int64(1)))
	assert.True(t, equality.Identical(nil, nil))
	assert.False(t, equality.Identical(nil, 1))
}

// reference types compare by reference, not content
func TestIdenticalReferences(t *testing.T) {
	m := map[string]any{"a": 1}
	assert.True(t, equality.Identical(m, m))
	assert.False(t, equality.Identical(m, map[string]any{"a": 1}))

	s := []int{1, 2}
	assert.True(t, equality.Identical(s, s))
	assert.False(t, equality.Identical(s, []int{1, 2}))

	p := &struct{ X int }{X: 1}
	assert.True(t, equality.Identical(p, p))
	assert.False(t, equality.Identical(p, &struct{ X int }{X: 1}))
}

// typed nils of the same type are identical
func TestIdenticalTypedNil(t *testing.T) {
	var a, b map[string]any
	assert.True(t, equality.Identical(a, b))

	var p1, p2 *int
	assert.True(t, equality.Identical(p1, p2))
}

// the same function value is identical to itself
func TestIdenticalFuncs(t *testing.T) {
	fn := func() int { return 1 }
	assert.True(t, equality.Identical(fn, fn))

	var nil1, nil2 func()
	assert.True(t, equality.Identical(nil1, nil2))
	assert.False(t, equality.Identical(fn, func() string { return "x" }))
}

// uncomparable values that are not the same reference are never identical
func TestIdenticalUncomparable(t *testing.T) {
	type holder struct{ Items []int }
	assert.False(t, equality.Identical(holder{Items: []int{1}}, holder{Items: []int{1}}))
}

// one structural level deep, leaves by identity
func TestShallowMaps(t *testing.T) {
	assert.True(t, equality.Shallow(
		map[string]any{"a": 1, "b": "x"},
		map[string]any{"a": 1, "b": "x"},
	))
	assert.False(t, equality.Shallow(
		map[string]any{"a": 1},
		map[string]any{"a": 2},
	))
	assert.False(t, equality.Shallow(
		map[string]any{"a": 1},
		map[string]any{"b": 1},
	))
	assert.False(t, equality.Shallow(
		map[string]any{"a": 1},
		map[string]any{"a": 1, "b": 2},
	))

	// nested values need the same reference
	inner := map[string]any{"deep": true}
	assert.True(t, equality.Shallow(
		map[string]any{"a": inner},
		map[string]any{"a": inner},
	))
	assert.False(t, equality.Shallow(
		map[string]any{"a": map[string]any{"deep": true}},
		map[string]any{"a": map[string]any{"deep": true}},
	))
}

// nil and empty maps hold the same nothing
func TestShallowNilVsEmptyMap(t *testing.T) {
	assert.True(t, equality.Shallow(map[string]any{}, map[string]any(nil)))
}

func TestShallowSlices(t *testing.T) {
	assert.True(t, equality.Shallow([]int{1, 2, 3}, []int{1, 2, 3}))
	assert.False(t, equality.Shallow([]int{1, 2, 3}, []int{1, 2}))
	assert.False(t, equality.Shallow([]int{1, 2, 3}, []int{1, 2, 4}))
}

// exported struct fields only
func TestShallowStructs(t *testing.T) {
	type point struct {
		X, Y int
	}
	assert.True(t, equality.Shallow(point{1, 2}, point{1, 2}))
	assert.False(t, equality.Shallow(point{1, 2}, point{1, 3}))
	assert.True(t, equality.Shallow(&point{1, 2}, &point{1, 2}))
	assert.False(t, equality.Shallow(&point{1, 2}, &point{2, 2}))
}

func TestShallowMismatchedTypes(t *testing.T) {
	assert.False(t, equality.Shallow(map[string]any{"a": 1}, []int{1}))
	assert.False(t, equality.Shallow(1, "1"))
}

func TestDeep(t *testing.T) {
	assert.True(t, equality.Deep(
		map[string]any{"a": map[string]any{"deep": true}},
		map[string]any{"a": map[string]any{"deep": true}},
	))
	assert.False(t, equality.Deep(
		map[string]any{"a": map[string]any{"deep": true}},
		map[string]any{"a": map[string]any{"deep": false}},
	))
}
