// Package modresolver locates the enclosing Go module and turns a
// scanned package directory into its fully-qualified import path, the
// information the generator needs to write a correct import block into
// autogen_module.go. Grounded on Toyz-axon/internal/utils/gomod.go's
// GoModParser (modfile.Parse over a cached file read) and
// Toyz-axon/internal/cli/module_resolver.go's ModuleResolver
// (BuildPackagePath's relative-path-to-import-path conversion),
// collapsed into one resolver rather than split across utils/cli.
package modresolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// Resolver resolves module and package import paths relative to the
// go.mod it finds walking up from a starting directory.
type Resolver struct {
	moduleName string
	moduleDir  string
}

// New locates go.mod by walking up from startDir and parses its module
// declaration with golang.org/x/mod/modfile, the same ecosystem parser
// Toyz-axon/internal/utils/gomod.go uses instead of hand-rolled line
// scanning.
func New(startDir string) (*Resolver, error) {
	goModPath, err := findGoMod(startDir)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(goModPath)
	if err != nil {
		return nil, fmt.Errorf("modresolver: read %s: %w", goModPath, err)
	}

	modFile, err := modfile.Parse(goModPath, content, nil)
	if err != nil {
		return nil, fmt.Errorf("modresolver: parse %s: %w", goModPath, err)
	}
	if modFile.Module == nil {
		return nil, fmt.Errorf("modresolver: no module declaration in %s", goModPath)
	}

	return &Resolver{
		moduleName: modFile.Module.Mod.Path,
		moduleDir:  filepath.Dir(goModPath),
	}, nil
}

// OverrideModuleName replaces the module path read from go.mod, for the
// CLI driver's -module flag (Toyz-axon/cmd/axon/main.go's moduleFlag).
func (r *Resolver) OverrideModuleName(moduleName string) {
	r.moduleName = moduleName
}

// findGoMod walks up from startDir looking for a go.mod file, mirroring
// ModuleResolver.readGoModFile's parent-directory walk.
func findGoMod(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("modresolver: resolve %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(dir, "go.mod")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("modresolver: no go.mod found above %s", startDir)
		}
		dir = parent
	}
}

// ModuleName returns the module path declared in go.mod.
func (r *Resolver) ModuleName() string {
	return r.moduleName
}

// PackageImportPath builds the full import path for packageDir, a
// directory somewhere under the module root, mirroring
// ModuleResolver.BuildPackagePath's relative-path construction.
func (r *Resolver) PackageImportPath(packageDir string) (string, error) {
	absDir, err := filepath.Abs(packageDir)
	if err != nil {
		return "", fmt.Errorf("modresolver: resolve %s: %w", packageDir, err)
	}

	rel, err := filepath.Rel(r.moduleDir, absDir)
	if err != nil {
		return "", fmt.Errorf("modresolver: relativize %s: %w", packageDir, err)
	}
	rel = filepath.ToSlash(rel)

	if rel == "." {
		return r.moduleName, nil
	}
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("modresolver: %s is outside module %s", packageDir, r.moduleName)
	}

	return r.moduleName + "/" + rel, nil
}
