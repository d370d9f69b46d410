package dinject

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Resolve lets a generated Register function pull a dependency another
// package's Register call already registered, before any Scope exists.
func TestBuilderResolveFindsEarlierRegistration(t *testing.T) {
	b := NewBuilder()
	b.Register(&Entry{Instance: "motor-instance", AssignableTypes: []string{"Motor"}})

	got, err := b.Resolve("Motor", "")
	require.NoError(t, err)
	assert.Equal(t, "motor-instance", got)
}

func TestBuilderResolveNotFound(t *testing.T) {
	b := NewBuilder()

	_, err := b.Resolve("Missing", "")
	require.Error(t, err)
	var scopeErr *ScopeError
	require.True(t, errors.As(err, &scopeErr))
	assert.Equal(t, NotFound, scopeErr.Kind)
}

func TestBuilderResolveAppliesSameLadderAsScope(t *testing.T) {
	b := NewBuilder()
	b.Register(&Entry{Instance: "Normal1", AssignableTypes: []string{"Pump"}, PriorityClass: Normal})
	b.Register(&Entry{Instance: "Primary1", AssignableTypes: []string{"Pump"}, PriorityClass: Primary})

	got, err := b.Resolve("Pump", "")
	require.NoError(t, err)
	assert.Equal(t, "Primary1", got)
}

func TestResolveAsTypeAssertion(t *testing.T) {
	b := NewBuilder()
	b.Register(&Entry{Instance: 7, AssignableTypes: []string{"Count"}})

	v, err := ResolveAs[int](b, "Count", "")
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = ResolveAs[string](b, "Count", "")
	assert.Error(t, err)
}
