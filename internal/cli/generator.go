package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dinject/dinject/internal/annotation"
	"github.com/dinject/dinject/internal/beanreader"
	"github.com/dinject/dinject/internal/diagnostics"
	"github.com/dinject/dinject/internal/generator"
	"github.com/dinject/dinject/internal/model"
	"github.com/dinject/dinject/internal/modresolver"
	"github.com/dinject/dinject/internal/registry"
)

// Summary reports the outcome of one generation run, the dinject
// equivalent of Toyz-axon/internal/cli/generator.go's GenerationSummary
// — trimmed to the counts that make sense for bean registration rather
// than controller/route generation.
type Summary struct {
	PackagesScanned int
	BeansRegistered int
	ModulesWritten  []string
}

// Generator orchestrates one full generation run: resolve the module,
// scan every requested directory's declarations, read each package's
// candidate beans, and emit one autogen_module.go per package.
// Grounded on the two-phase "discover across all packages, then
// generate" shape of Toyz-axon/internal/cli/generator.go's Run, with
// the teacher's parser/middleware discovery phase replaced by a single
// cross-package import-path index (dinject has no analogous validation
// phase — a bean's dependencies are resolved at emission time, not
// cross-validated up front).
type Generator struct {
	scanner  *DirectoryScanner
	reporter *diagnostics.Reporter
}

// NewGenerator constructs a Generator reporting through reporter.
func NewGenerator(reporter *diagnostics.Reporter) *Generator {
	return &Generator{
		scanner:  NewDirectoryScanner(),
		reporter: reporter,
	}
}

// unit is one scanned package directory's indexed declarations and
// resolved identity.
type unit struct {
	dir         string
	packageName string
	importPath  string
	index       *registry.TypeIndex
}

// Run executes a complete generation pass over config.Directories.
func (g *Generator) Run(config Config) (*Summary, error) {
	summary := &Summary{}

	dirs, err := g.scanner.ScanDirectories(config.Directories)
	if err != nil {
		g.reporter.Error("failed to resolve directories: %v", err)
		return nil, fmt.Errorf("cli: %w", err)
	}
	if len(dirs) == 0 {
		g.reporter.Warn("no directories given, nothing to generate")
		return summary, nil
	}

	resolver, err := modresolver.New(dirs[0])
	if err != nil {
		g.reporter.Error("failed to resolve module: %v", err)
		return nil, fmt.Errorf("cli: %w", err)
	}
	if config.ModuleName != "" {
		resolver.OverrideModuleName(config.ModuleName)
		g.reporter.Verbose("using module name override %q", config.ModuleName)
	}

	probe := annotation.NewProbe()

	g.reporter.Section("Scanning packages")
	units := make([]unit, 0, len(dirs))
	for _, dir := range dirs {
		idx := registry.NewTypeIndex()
		if err := registry.ScanDirectory(idx, dir); err != nil {
			g.reporter.Error("failed to scan %s: %v", dir, err)
			return nil, fmt.Errorf("cli: scan %s: %w", dir, err)
		}

		importPath, err := resolver.PackageImportPath(dir)
		if err != nil {
			g.reporter.Error("failed to resolve import path for %s: %v", dir, err)
			return nil, fmt.Errorf("cli: %w", err)
		}

		u := unit{
			dir:         dir,
			packageName: packageNameOf(idx, dir),
			importPath:  importPath,
			index:       idx,
		}
		units = append(units, u)
		g.reporter.Info("scanned %s (package %s)", dir, u.packageName)
	}
	summary.PackagesScanned = len(units)

	// Cross-package import-path index: lets a package whose constructor
	// or field depends on another scanned package's selector-qualified
	// type ("motor.Motor") find that package's import path without
	// re-scanning it.
	importPathOf := make(map[string]string, len(units))
	for _, u := range units {
		importPathOf[u.packageName] = u.importPath
	}

	g.reporter.Section("Reading beans")
	for _, u := range units {
		candidates := beanreader.CandidateTypes(u.index, probe)
		if len(candidates) == 0 {
			g.reporter.Warn("no //dinject:singleton types in %s, skipping", u.dir)
			continue
		}

		reader := beanreader.New(u.index, probe)
		descs := make([]*model.BeanDescriptor, 0, len(candidates))
		for _, name := range candidates {
			isFactory := beanreader.IsFactoryType(u.index, probe, name)
			desc, err := reader.Read(name, isFactory)
			if err != nil {
				g.reporter.Error("failed to read bean %s in %s: %v", name, u.dir, err)
				return nil, fmt.Errorf("cli: read %s: %w", name, err)
			}
			descs = append(descs, desc)
			g.reporter.Verbose("bean %s: %d inject field(s), %d inject method(s), %d factory method(s)",
				name, len(desc.InjectFields), len(desc.InjectMethods), len(desc.FactoryMethods))
			summary.BeansRegistered++
		}

		importPaths := crossPackageImportPaths(descs, u.packageName, importPathOf)

		mod, err := generator.New().GenerateModule(u.packageName, filepath.Join(u.dir, "autogen_module.go"), descs, importPaths)
		if err != nil {
			g.reporter.Error("failed to generate module for %s: %v", u.dir, err)
			return nil, fmt.Errorf("cli: generate %s: %w", u.dir, err)
		}

		if err := os.WriteFile(mod.FilePath, []byte(mod.Content), 0o644); err != nil {
			g.reporter.Error("failed to write %s: %v", mod.FilePath, err)
			return nil, fmt.Errorf("cli: write %s: %w", mod.FilePath, err)
		}

		summary.ModulesWritten = append(summary.ModulesWritten, mod.FilePath)
		g.reporter.Success("wrote %s (%d bean(s))", mod.FilePath, len(descs))
	}

	return summary, nil
}

// packageNameOf reads the Go package name any of idx's indexed types
// was declared under; every type indexed from the same ScanDirectory
// call shares one package name. Falls back to the directory's base
// name for an (unreachable in practice) empty index.
func packageNameOf(idx *registry.TypeIndex, dir string) string {
	for _, name := range idx.Names() {
		if entry, ok := idx.Lookup(name); ok && entry.PkgName != "" {
			return entry.PkgName
		}
	}
	return filepath.Base(dir)
}

// crossPackageImportPaths scans every dependency type name referenced
// by descs — constructor parameters, injected fields/methods, and
// factory method parameters — for the "pkgname.Type" selector shape a
// cross-package dependency takes, and resolves each pkgname prefix to
// an import path via importPathOf. selfPackage's own types need no
// import. The result is sorted for deterministic output.
func crossPackageImportPaths(descs []*model.BeanDescriptor, selfPackage string, importPathOf map[string]string) []string {
	seen := make(map[string]bool)
	var add = func(typeName string) {
		pkg, ok := selectorPackage(typeName)
		if !ok || pkg == selfPackage {
			return
		}
		if path, ok := importPathOf[pkg]; ok {
			seen[path] = true
		}
	}

	for _, d := range descs {
		if d.Constructor != nil {
			for _, p := range d.Constructor.Parameters {
				add(p.TypeName)
			}
		}
		for _, f := range d.InjectFields {
			add(f.DeclaredType)
		}
		for _, m := range d.InjectMethods {
			for _, p := range m.Parameters {
				add(p.TypeName)
			}
		}
		for _, m := range d.FactoryMethods {
			for _, p := range m.Parameters {
				add(p.TypeName)
			}
			add(m.ReturnType)
		}
	}

	out := make([]string, 0, len(seen))
	for path := range seen {
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

// selectorPackage splits a "pkgname.Type"-shaped type name into its
// package prefix, first stripping the pointer/slice prefixes
// sigreader.TypeString renders ("*pkg.Type", "[]pkg.Type"). A bare,
// unqualified name (the common same-package case) reports ok=false.
func selectorPackage(typeName string) (string, bool) {
	bare := strings.TrimLeft(typeName, "*[]")
	idx := strings.Index(bare, ".")
	if idx <= 0 {
		return "", false
	}
	return bare[:idx], true
}
