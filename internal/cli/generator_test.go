package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinject/dinject/internal/diagnostics"
)

func writeGoMod(t *testing.T, dir, moduleName string) {
	t.Helper()
	content := "module " + moduleName + "\n\ngo 1.21\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0644))
}

func writeSource(t *testing.T, dir, fileName, source string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte(source), 0644))
}

const motorSource = `package motor

//dinject:singleton
type Motor struct{}

func NewMotor() *Motor { return nil }
`

const pumpSource = `package pump

import "example.com/widgets/internal/motor"

//dinject:singleton
type Pump struct {
	Motor *motor.Motor ` + "`inject:\"\"`" + `
}

func NewPump() *Pump { return nil }
`

func TestRunGeneratesOneModulePerDirectory(t *testing.T) {
	root := t.TempDir()
	writeGoMod(t, root, "example.com/widgets")

	motorDir := filepath.Join(root, "internal", "motor")
	pumpDir := filepath.Join(root, "internal", "pump")
	require.NoError(t, os.MkdirAll(motorDir, 0755))
	require.NoError(t, os.MkdirAll(pumpDir, 0755))
	writeSource(t, motorDir, "motor.go", motorSource)
	writeSource(t, pumpDir, "pump.go", pumpSource)

	g := NewGenerator(diagnostics.Quiet())
	summary, err := g.Run(Config{Directories: []string{motorDir, pumpDir}})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.PackagesScanned)
	assert.Equal(t, 2, summary.BeansRegistered)
	assert.Len(t, summary.ModulesWritten, 2)

	motorModule, err := os.ReadFile(filepath.Join(motorDir, "autogen_module.go"))
	require.NoError(t, err)
	assert.Contains(t, string(motorModule), "package motor")
	assert.Contains(t, string(motorModule), "NewMotor()")

	pumpModule, err := os.ReadFile(filepath.Join(pumpDir, "autogen_module.go"))
	require.NoError(t, err)
	assert.Contains(t, string(pumpModule), "package pump")
	assert.Contains(t, string(pumpModule), "NewPump()")
}

func TestRunSkipsDirectoryWithNoSingletons(t *testing.T) {
	root := t.TempDir()
	writeGoMod(t, root, "example.com/widgets")

	plainDir := filepath.Join(root, "internal", "plain")
	require.NoError(t, os.MkdirAll(plainDir, 0755))
	writeSource(t, plainDir, "plain.go", "package plain\n\ntype Helper struct{}\n")

	g := NewGenerator(diagnostics.Quiet())
	summary, err := g.Run(Config{Directories: []string{plainDir}})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.PackagesScanned)
	assert.Equal(t, 0, summary.BeansRegistered)
	assert.Empty(t, summary.ModulesWritten)

	_, err = os.Stat(filepath.Join(plainDir, "autogen_module.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestRunNoDirectoriesReturnsEmptySummary(t *testing.T) {
	g := NewGenerator(diagnostics.Quiet())
	summary, err := g.Run(Config{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.PackagesScanned)
}

func TestRunUnresolvableDirectoryErrors(t *testing.T) {
	g := NewGenerator(diagnostics.Quiet())
	_, err := g.Run(Config{Directories: []string{filepath.Join(t.TempDir(), "missing")}})
	assert.Error(t, err)
}
