package generator

import "github.com/dinject/dinject/internal/model"

// ModuleGenerator is the method set of the concrete Generator, the same
// seam Toyz-axon/internal/generator/interfaces.go drew around its
// CodeGenerator interface. internal/cli's driver calls the concrete
// Generator directly, not through this interface.
type ModuleGenerator interface {
	GenerateModule(packageName, filePath string, descs []*model.BeanDescriptor, importPaths []string) (*GeneratedModule, error)
}
