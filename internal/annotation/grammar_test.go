package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarParseBareKeyword(t *testing.T) {
	g := NewGrammar()
	parsed, err := g.Parse("inject")
	require.NoError(t, err)
	assert.Equal(t, Inject, parsed.Type)
	assert.False(t, parsed.HasStr)
	assert.False(t, parsed.HasInt)
}

func TestGrammarParseStringArgument(t *testing.T) {
	g := NewGrammar()
	parsed, err := g.Parse(`named "electric"`)
	require.NoError(t, err)
	assert.Equal(t, Named, parsed.Type)
	require.True(t, parsed.HasStr)
	assert.Equal(t, "electric", parsed.StrValue)
}

func TestGrammarParseNumberArgument(t *testing.T) {
	g := NewGrammar()
	parsed, err := g.Parse("priority 100")
	require.NoError(t, err)
	assert.Equal(t, Priority, parsed.Type)
	require.True(t, parsed.HasInt)
	assert.Equal(t, 100, parsed.IntValue)
}

func TestGrammarParseUnknownKeyword(t *testing.T) {
	g := NewGrammar()
	_, err := g.Parse("bogus")
	assert.Error(t, err)
}

func TestGrammarParseEmpty(t *testing.T) {
	g := NewGrammar()
	_, err := g.Parse("   ")
	assert.Error(t, err)
}

func TestGrammarParseQuotedEscaping(t *testing.T) {
	g := NewGrammar()
	parsed, err := g.Parse(`named "hot\"water"`)
	require.NoError(t, err)
	assert.Equal(t, `hot"water`, parsed.StrValue)
}
