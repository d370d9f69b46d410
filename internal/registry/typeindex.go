// Package registry indexes every type declaration and method declaration
// found across a scanned directory, the way Toyz-axon/internal/registry's
// ParserRegistry and MiddlewareRegistry index route parsers and
// middleware by name: a mutex-guarded map behind a small
// Register/Get/List surface. Here the indexed declarations are the raw
// material the bean reader walks to resolve a bean's embedded-field
// "superclass chain" and its declared methods.
package registry

import (
	"fmt"
	"go/ast"
	"sync"
)

// TypeEntry is one indexed type declaration.
type TypeEntry struct {
	Name    string
	Spec    *ast.TypeSpec
	Struct  *ast.StructType // nil if the declaration isn't a struct
	PkgName string
	File    string
}

// TypeIndex resolves a type name to its declaration and its declared
// methods across every file handed to AddFile. It is the Go-native stand-in
// for the original's javax.lang.model TypeElement/Elements lookup.
type TypeIndex struct {
	mu      sync.RWMutex
	types   map[string]TypeEntry
	methods map[string][]*ast.FuncDecl // receiver type name -> methods
	funcs   map[string]*ast.FuncDecl   // package-level function name -> decl
}

// NewTypeIndex constructs an empty TypeIndex.
func NewTypeIndex() *TypeIndex {
	return &TypeIndex{
		types:   make(map[string]TypeEntry),
		methods: make(map[string][]*ast.FuncDecl),
		funcs:   make(map[string]*ast.FuncDecl),
	}
}

// AddFile walks one parsed file's top-level declarations, registering
// every type declaration and every method (func with a receiver).
func (idx *TypeIndex) AddFile(file *ast.File, fileName string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	pkgName := ""
	if file.Name != nil {
		pkgName = file.Name.Name
	}

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				// An unparenthesized "type X ..." declaration carries its
				// doc comment on the GenDecl rather than on the TypeSpec.
				if ts.Doc == nil && !d.Lparen.IsValid() {
					ts.Doc = d.Doc
				}
				entry := TypeEntry{
					Name:    ts.Name.Name,
					Spec:    ts,
					PkgName: pkgName,
					File:    fileName,
				}
				if st, ok := ts.Type.(*ast.StructType); ok {
					entry.Struct = st
				}
				idx.types[ts.Name.Name] = entry
			}
		case *ast.FuncDecl:
			recv := receiverTypeName(d)
			if recv == "" {
				idx.funcs[d.Name.Name] = d
				continue
			}
			idx.methods[recv] = append(idx.methods[recv], d)
		}
	}
}

func receiverTypeName(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return ""
	}
	switch t := fd.Recv.List[0].Type.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		if ident, ok := t.X.(*ast.Ident); ok {
			return ident.Name
		}
	case *ast.IndexExpr:
		if ident, ok := t.X.(*ast.Ident); ok {
			return ident.Name
		}
	}
	return ""
}

// Lookup returns the type declaration registered under name.
func (idx *TypeIndex) Lookup(name string) (TypeEntry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	e, ok := idx.types[name]
	return e, ok
}

// MethodsOf returns every method declared with a receiver of the given
// type name, in declaration order.
func (idx *TypeIndex) MethodsOf(typeName string) []*ast.FuncDecl {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return append([]*ast.FuncDecl(nil), idx.methods[typeName]...)
}

// Func returns the package-level function declared with the given name.
func (idx *TypeIndex) Func(name string) (*ast.FuncDecl, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	fd, ok := idx.funcs[name]
	return fd, ok
}

// Names lists every indexed type name.
func (idx *TypeIndex) Names() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]string, 0, len(idx.types))
	for n := range idx.types {
		out = append(out, n)
	}
	return out
}

// Has reports whether name is indexed.
func (idx *TypeIndex) Has(name string) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	_, ok := idx.types[name]
	return ok
}

// NewUnknownTypeError builds the error callers return when a type they
// require (e.g. an embedded field's type) is not present in the index.
func NewUnknownTypeError(name string) error {
	return fmt.Errorf("type %q not found in index", name)
}
