package collector

import (
	"testing"

	"github.com/dinject/dinject/internal/annotation"
	"github.com/dinject/dinject/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collectorSource = `package sample

type Heater struct {
	Logger Logger ` + "`inject:\"qualifier=base\"`" + `
}

//dinject:postconstruct
func (h *Heater) WarmBase() {}

//dinject:predestroy
func (h *Heater) Cool() {}

//dinject:inject
func (h *Heater) Configure(cfg Config) {}

//dinject:inject
//dinject:named "electric"
type ElectricHeater struct {
	Heater
	Coil Coil ` + "`inject:\"\"`" + `
}

func NewElectricHeater(coil Coil) *ElectricHeater { return nil }

//dinject:postconstruct
func (h *ElectricHeater) WarmDerived() {}

func (h *ElectricHeater) Configure(cfg Config) {}
`

func buildIndex(t *testing.T) *registry.TypeIndex {
	t.Helper()
	idx := registry.NewTypeIndex()
	_, err := registry.AddSource(idx, "sample.go", collectorSource)
	require.NoError(t, err)
	return idx
}

func TestCollectorOverrideSuppression(t *testing.T) {
	idx := buildIndex(t)
	probe := annotation.NewProbe()
	c := New(idx, probe, false)

	require.NoError(t, c.Read("ElectricHeater", true))
	require.NoError(t, c.Read("Heater", false))

	methods := c.InjectMethods()
	for _, m := range methods {
		assert.NotEqual(t, "Configure", m.MethodName, "derived override without @Inject must suppress base's @Inject method")
	}
}

func TestCollectorPostConstructMostDerivedWins(t *testing.T) {
	idx := buildIndex(t)
	probe := annotation.NewProbe()
	c := New(idx, probe, false)

	require.NoError(t, c.Read("ElectricHeater", true))
	require.NoError(t, c.Read("Heater", false))

	assert.Equal(t, "WarmDerived", c.PostConstruct(), "nearest (most-derived) declaration wins over the base type's")
	assert.Equal(t, "Cool", c.PreDestroy())
}

func TestCollectorInjectFieldsBaseToDerivedOrder(t *testing.T) {
	idx := buildIndex(t)
	probe := annotation.NewProbe()
	c := New(idx, probe, false)

	require.NoError(t, c.Read("ElectricHeater", true))
	require.NoError(t, c.Read("Heater", false))

	fields := c.InjectFields()
	require.Len(t, fields, 2)
	assert.Equal(t, "Heater", fields[0].DeclaringType)
	assert.Equal(t, "ElectricHeater", fields[1].DeclaringType)
}

func TestCollectorConstructorResolution(t *testing.T) {
	idx := buildIndex(t)
	probe := annotation.NewProbe()
	c := New(idx, probe, false)

	require.NoError(t, c.Read("ElectricHeater", true))

	ctor := c.Constructor()
	require.NotNil(t, ctor)
	require.Len(t, ctor.Parameters, 1)
	assert.Equal(t, "coil", ctor.Parameters[0].Name)
}

func TestCollectorNoConstructor(t *testing.T) {
	idx := buildIndex(t)
	probe := annotation.NewProbe()
	c := New(idx, probe, false)

	require.NoError(t, c.Read("Heater", true))
	assert.Nil(t, c.Constructor())
}

func TestCollectorUnknownType(t *testing.T) {
	idx := registry.NewTypeIndex()
	c := New(idx, annotation.NewProbe(), false)
	assert.Error(t, c.Read("Ghost", true))
}
