package dinject

import (
	"sort"
	"sync"
)

// Scope is the runtime bean container consumed by generated
// autogen_module.go code and by hand-written main packages. It stores
// built beans in a BeanMap, resolves single-candidate lookups with the
// Supplied → Primary → Normal → Secondary ladder, and drives ordered
// lifecycle activation/teardown under a single exclusion lock — spec.md
// §2's runtime bean scope, and §5's concurrency model (reads need no
// synchronization once built; start/close serialize against each other
// and themselves via mu).
type Scope struct {
	beans     *BeanMap
	lifecycle []*Entry

	mu     sync.Mutex
	closed bool
}

func newScope(beans *BeanMap, lifecycle []*Entry) *Scope {
	return &Scope{beans: beans, lifecycle: lifecycle}
}

// Get resolves the single bean assignable to typeName under qualifier,
// applying the Supplied → Primary → Normal → Secondary ladder (spec.md
// §4.6). The original_source ground truth
// (inject/spi/DBeanScope.java's EntrySort.get()) checks primaryCount
// before normalCount — i.e. a single @Primary bean wins even when
// Normal candidates also exist — which this mirrors; see SPEC_FULL.md §9
// for why this is followed over spec.md §4.6's literal step ordering.
func (s *Scope) Get(typeName, qualifier string) (any, error) {
	entry, err := s.resolve(typeName, qualifier)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, newNotFoundError(typeName, qualifier)
	}
	return entry.Instance, nil
}

// Candidate returns the resolved Entry itself rather than its instance,
// for callers that need the full CandidateEntry (spec.md §6).
func (s *Scope) Candidate(typeName, qualifier string) (*Entry, error) {
	return s.resolve(typeName, qualifier)
}

func (s *Scope) resolve(typeName, qualifier string) (*Entry, error) {
	return resolveFromMap(s.beans, typeName, qualifier)
}

// resolveFromMap implements the Supplied → Primary → Normal → Secondary
// ladder against any BeanMap, shared by Scope.resolve (post-Build
// lookups) and Builder.Resolve (mid-registration lookups a generated
// constructor needs for a cross-bean dependency built earlier in
// topological order).
func resolveFromMap(beans *BeanMap, typeName, qualifier string) (*Entry, error) {
	candidates := beans.Candidates(typeName, qualifier)

	var supplied, primary, secondary, normal *Entry
	var primaryCount, secondaryCount, normalCount int

	for _, c := range candidates {
		switch c.PriorityClass {
		case Supplied:
			supplied = c
		case Primary:
			primary = c
			primaryCount++
		case Secondary:
			secondary = c
			secondaryCount++
		default:
			normal = c
			normalCount++
		}
	}

	if supplied != nil {
		return supplied, nil
	}
	if primaryCount > 1 {
		return nil, newAmbiguousError(MultiplePrimary, typeName, qualifier)
	}
	if primaryCount == 1 {
		return primary, nil
	}
	if normalCount > 1 {
		return nil, newAmbiguousError(MultipleNormal, typeName, qualifier)
	}
	if normalCount == 1 {
		return normal, nil
	}
	if secondaryCount > 1 {
		return nil, newAmbiguousError(MultipleSecondary, typeName, qualifier)
	}
	if secondary != nil {
		return secondary, nil
	}
	return nil, nil
}

// List returns every bean assignable to typeName, in insertion order.
func (s *Scope) List(typeName string) []any {
	entries := s.beans.All(typeName)
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e.Instance
	}
	return out
}

// ListByPriority returns every bean assignable to typeName, stable-
// sorted ascending by numeric priority when at least one carries an
// explicit @Priority(n) value; otherwise insertion order is preserved
// unchanged, per spec.md §4.6.
func (s *Scope) ListByPriority(typeName string) []any {
	entries := s.beans.All(typeName)

	anyPrioritized := false
	for _, e := range entries {
		if e.PriorityValue != nil {
			anyPrioritized = true
			break
		}
	}

	if anyPrioritized {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].priorityValueOrDefault() < entries[j].priorityValueOrDefault()
		})
	}

	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e.Instance
	}
	return out
}

// BeansWithAnnotation returns every bean carrying the named annotation,
// in insertion order — e.g. every factory-method product, which the
// generator tags with the "bean" annotation.
func (s *Scope) BeansWithAnnotation(name string) []any {
	entries := s.beans.WithAnnotation(name)
	out := make([]any, len(entries))
	for i, e := range entries {
		out[i] = e.Instance
	}
	return out
}

// Start invokes PostConstruct on each lifecycle bean in insertion order,
// under the exclusion lock. Not idempotent — callers must invoke it at
// most once per scope, per spec.md §4.6/§5.
func (s *Scope) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.lifecycle {
		if e.PostConstruct == nil {
			continue
		}
		if err := e.PostConstruct(); err != nil {
			return err
		}
	}
	return nil
}

// Close invokes PreDestroy on each lifecycle bean in insertion order
// (not reversed — spec.md §5 pins this explicitly) exactly once, under
// the same exclusion lock Start uses. A second and subsequent Close
// call is a silent no-op (spec.md §7's DoubleClose). Close marks itself
// closed before running callbacks so a concurrent Close blocked on the
// lock sees closed already set once it acquires it, and returns
// immediately instead of running teardown again.
func (s *Scope) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	for _, e := range s.lifecycle {
		if e.PreDestroy == nil {
			continue
		}
		if err := e.PreDestroy(); err != nil {
			return err
		}
	}
	return nil
}
