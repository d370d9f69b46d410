package modresolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGoMod(t *testing.T, dir, moduleName string) {
	t.Helper()
	content := "module " + moduleName + "\n\ngo 1.21\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(content), 0644))
}

func TestNewFindsGoModInStartDir(t *testing.T) {
	tempDir := t.TempDir()
	writeGoMod(t, tempDir, "github.com/example/widgets")

	r, err := New(tempDir)
	require.NoError(t, err)
	assert.Equal(t, "github.com/example/widgets", r.ModuleName())
}

func TestNewWalksUpParentDirectories(t *testing.T) {
	tempDir := t.TempDir()
	writeGoMod(t, tempDir, "github.com/example/widgets")

	nested := filepath.Join(tempDir, "internal", "heaters")
	require.NoError(t, os.MkdirAll(nested, 0755))

	r, err := New(nested)
	require.NoError(t, err)
	assert.Equal(t, "github.com/example/widgets", r.ModuleName())
}

func TestNewNoGoModReturnsError(t *testing.T) {
	tempDir := t.TempDir()

	_, err := New(tempDir)
	assert.Error(t, err)
}

func TestPackageImportPath(t *testing.T) {
	tempDir := t.TempDir()
	writeGoMod(t, tempDir, "github.com/example/widgets")

	nested := filepath.Join(tempDir, "internal", "heaters")
	require.NoError(t, os.MkdirAll(nested, 0755))

	r, err := New(tempDir)
	require.NoError(t, err)

	importPath, err := r.PackageImportPath(nested)
	require.NoError(t, err)
	assert.Equal(t, "github.com/example/widgets/internal/heaters", importPath)

	rootImportPath, err := r.PackageImportPath(tempDir)
	require.NoError(t, err)
	assert.Equal(t, "github.com/example/widgets", rootImportPath)
}

func TestPackageImportPathOutsideModuleErrors(t *testing.T) {
	tempDir := t.TempDir()
	writeGoMod(t, tempDir, "github.com/example/widgets")

	r, err := New(tempDir)
	require.NoError(t, err)

	_, err = r.PackageImportPath(filepath.Dir(tempDir))
	assert.Error(t, err)
}
