// Package typeutil normalizes canonical type-name strings used throughout
// the bean reader: unwrapping Provider[T] to T and detecting generic
// signatures that must be excluded from a bean's assignable-type set.
package typeutil

import "strings"

const providerPrefix = "Provider["

// UnwrapProvider returns T when name has the shape Provider[T], and name
// unchanged otherwise. Go generic instantiation syntax (square brackets)
// is used here rather than Java's Provider<T> angle brackets.
func UnwrapProvider(name string) string {
	if !strings.HasPrefix(name, providerPrefix) || !strings.HasSuffix(name, "]") {
		return name
	}
	inner := name[len(providerPrefix) : len(name)-1]
	if inner == "" {
		return name
	}
	return inner
}

// IsGeneric reports whether name contains a type-argument list, i.e. a
// '[' occurring before the end of the string. Both Provider[T] itself and
// arbitrary generic instantiations like Repository[User] are generic.
func IsGeneric(name string) bool {
	return strings.Contains(name, "[")
}
