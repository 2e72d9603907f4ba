package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_ShortCircuits(t *testing.T) {
	var seen []any
	ok := All([]any{1, "2", 3}, func(item any) bool {
		seen = append(seen, item)
		return isNumber(item)
	})

	assert.False(t, ok)
	assert.Equal(t, []any{1, "2"}, seen)
}

func TestAll_Vacuous(t *testing.T) {
	assert.True(t, All([]int{}, func(any) bool { return false }))
	assert.True(t, All([0]string{}, func(any) bool { return false }))
}

func TestAll_NotASequence(t *testing.T) {
	assert.False(t, All(nil, func(any) bool { return true }))
	assert.False(t, All("abc", func(any) bool { return true }))
	assert.False(t, All([]int(nil), func(any) bool { return true }))
}

func TestSome_StopsAtFirstMatch(t *testing.T) {
	calls := 0
	ok := Some([]int{1, 2, 3}, func(item any) bool {
		calls++
		return item == 2
	})

	assert.True(t, ok)
	assert.Equal(t, 2, calls)
}

func TestSome_EmptyAndNonSequence(t *testing.T) {
	assert.False(t, Some([]int{}, func(any) bool { return true }))
	assert.False(t, Some(map[string]int{"a": 1}, func(any) bool { return true }))
}

func TestExpectAllMembers_DelegatesByName(t *testing.T) {
	r := NewRegistry()
	strings := r.ExpectAllMembers(IsString)

	assert.True(t, strings([]any{"a", "b"}))
	assert.False(t, strings([]any{"a", 1}))
	assert.False(t, r.ExpectAllMembers("missing")([]any{}))
}

func TestExpectAllMembers_LateBinding(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(IsNumber, func(actual any, _ ...any) bool {
		return actual == "n"
	}))

	ok, err := r.Evaluate(IsArrayOfNumbers, []any{"n", "n"})
	require.NoError(t, err)
	assert.True(t, ok)
}
