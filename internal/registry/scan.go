package registry

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
)

// ScanDirectory parses every Go source file under dir (non-recursively,
// matching a single package directory) and adds its declarations to idx.
// Grounded on Toyz-axon/internal/parser/parser.go's ParseDirectory,
// generalized to accept directories containing test files (skipped,
// since bean declarations never live in _test.go) and to tolerate
// multiple build-tag-separated files of the same package name.
func ScanDirectory(idx *TypeIndex, dir string) error {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, dir, skipTestFiles, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("scan directory %s: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("no Go packages found in directory %s", dir)
	}
	for _, pkg := range pkgs {
		for fileName, file := range pkg.Files {
			idx.AddFile(file, fileName)
		}
	}
	return nil
}

func skipTestFiles(info fs.FileInfo) bool {
	name := info.Name()
	return len(name) < 8 || name[len(name)-8:] != "_test.go"
}

// AddSource parses a single in-memory source (used by tests and by
// callers that already hold file content without touching disk) and
// adds its declarations to idx.
func AddSource(idx *TypeIndex, filename, source string) (*ast.File, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, source, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	idx.AddFile(f, filename)
	return f, nil
}
