package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registrySource = `package sample

type Heater struct{}

func (h *Heater) Heat() {}

type ElectricHeater struct {
	Heater
}

func NewElectricHeater() *ElectricHeater { return nil }

func (h *ElectricHeater) Heat() {}
`

func TestTypeIndexAddFileAndLookup(t *testing.T) {
	idx := NewTypeIndex()
	_, err := AddSource(idx, "sample.go", registrySource)
	require.NoError(t, err)

	entry, ok := idx.Lookup("ElectricHeater")
	require.True(t, ok)
	assert.Equal(t, "ElectricHeater", entry.Name)
	require.NotNil(t, entry.Struct)

	assert.True(t, idx.Has("Heater"))
	assert.False(t, idx.Has("GasHeater"))

	names := idx.Names()
	assert.Contains(t, names, "Heater")
	assert.Contains(t, names, "ElectricHeater")
}

func TestTypeIndexMethodsOf(t *testing.T) {
	idx := NewTypeIndex()
	_, err := AddSource(idx, "sample.go", registrySource)
	require.NoError(t, err)

	methods := idx.MethodsOf("ElectricHeater")
	require.Len(t, methods, 1)
	assert.Equal(t, "Heat", methods[0].Name.Name)

	assert.Empty(t, idx.MethodsOf("Nonexistent"))
}

func TestTypeIndexFunc(t *testing.T) {
	idx := NewTypeIndex()
	_, err := AddSource(idx, "sample.go", registrySource)
	require.NoError(t, err)

	fd, ok := idx.Func("NewElectricHeater")
	require.True(t, ok)
	assert.Equal(t, "NewElectricHeater", fd.Name.Name)

	_, ok = idx.Func("Heat")
	assert.False(t, ok)
}

func TestNewUnknownTypeError(t *testing.T) {
	err := NewUnknownTypeError("Ghost")
	assert.ErrorContains(t, err, "Ghost")
}
