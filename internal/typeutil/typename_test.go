package typeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnwrapProvider(t *testing.T) {
	assert.Equal(t, "Heater", UnwrapProvider("Provider[Heater]"))
	assert.Equal(t, "Heater", UnwrapProvider("Heater"))
	assert.Equal(t, "Provider[]", UnwrapProvider("Provider[]"))
	assert.Equal(t, "Repository[User]", UnwrapProvider("Repository[User]"))
}

func TestIsGeneric(t *testing.T) {
	assert.True(t, IsGeneric("Provider[Heater]"))
	assert.True(t, IsGeneric("Repository[User]"))
	assert.False(t, IsGeneric("Heater"))
	assert.False(t, IsGeneric(""))
}
