// Package generator turns a package's []model.BeanDescriptor into one
// autogen_module.go, computing a construction order via Kahn's algorithm
// over constructor-parameter dependencies and rendering each bean's
// registration through internal/templates. Grounded on
// Toyz-axon/internal/generator/generator.go's GenerateModuleWithRequiredPackages
// (strings.Builder-composed header/imports/body) and on spec.md §4.7's
// "cycle detected during emission's topological sort ⇒ fatal".
package generator

import (
	"fmt"

	"github.com/dinject/dinject/internal/model"
)

// CycleError is returned when the dependency graph among a package's
// bean descriptors contains a cycle, per spec.md §4.7.
type CycleError struct {
	Remaining []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle detected among beans: %v", e.Remaining)
}

// TopoSort orders descs so that every bean whose constructor depends on
// another bean in this same set (matched by TypeName against BaseType)
// comes after it. Beans with no local dependency, or whose dependency
// isn't satisfied by another descriptor in this set (resolved instead at
// runtime via an already-registered scope bean from another package),
// are treated as having no edge.
func TopoSort(descs []*model.BeanDescriptor) ([]*model.BeanDescriptor, error) {
	indexByType := make(map[string]int, len(descs))
	for i, d := range descs {
		if d.BaseType != "" {
			indexByType[d.BaseType] = i
		}
	}

	adj := make([][]int, len(descs)) // adj[i] = beans depending on i
	indegree := make([]int, len(descs))

	for i, d := range descs {
		if d.Constructor == nil {
			continue
		}
		seen := make(map[int]bool)
		for _, p := range d.Constructor.Parameters {
			depIdx, ok := indexByType[p.TypeName]
			if !ok || depIdx == i || seen[depIdx] {
				continue
			}
			seen[depIdx] = true
			adj[depIdx] = append(adj[depIdx], i)
			indegree[i]++
		}
	}

	var queue []int
	for i := range descs {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	out := make([]*model.BeanDescriptor, 0, len(descs))
	resolved := make([]bool, len(descs))
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, descs[n])
		resolved[n] = true
		for _, next := range adj[n] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(out) != len(descs) {
		var remaining []string
		for i, d := range descs {
			if !resolved[i] {
				name := d.BaseType
				if name == "" {
					name = fmt.Sprintf("<generic #%d>", i)
				}
				remaining = append(remaining, name)
			}
		}
		return nil, &CycleError{Remaining: remaining}
	}

	return out, nil
}
