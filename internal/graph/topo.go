package graph

import (
	"sort"

	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/domain"
)

// TopologicalOrder returns every catalog code ordered so that each
// prerequisite precedes its dependents, using Kahn's algorithm. When
// several nodes are ready at once the smallest code goes first, so the
// result is fully deterministic. If the graph is cyclic it fails with a
// CycleError carrying the unresolved nodes and the detected cycles; no
// partial order is ever returned.
func TopologicalOrder(cat *catalog.Catalog) ([]string, error) {
	return TopologicalOrderSubset(cat, cat.Codes())
}

// TopologicalOrderSubset is TopologicalOrder restricted to a subset of
// codes. Prerequisite edges with either endpoint outside the subset are
// ignored, so the subset should be closed under prerequisites when the
// caller needs a takable sequence (see PrereqClosure).
func TopologicalOrderSubset(cat *catalog.Catalog, subset []string) ([]string, error) {
	inScope := make(map[string]bool, len(subset))
	for _, code := range subset {
		inScope[domain.NormalizeCode(code)] = true
	}

	inDegree := make(map[string]int, len(inScope))
	for code := range inScope {
		deg := 0
		for _, pre := range cat.Prerequisites(code) {
			if inScope[pre] {
				deg++
			}
		}
		inDegree[code] = deg
	}

	var ready []string
	for code, deg := range inDegree {
		if deg == 0 {
			ready = append(ready, code)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(inScope))
	for len(ready) > 0 {
		node := ready[0]
		ready = ready[1:]
		order = append(order, node)

		for _, dep := range cat.Dependents(node) {
			if !inScope[dep] {
				continue
			}
			inDegree[dep]--
			if inDegree[dep] == 0 {
				ready = insertSorted(ready, dep)
			}
		}
	}

	if len(order) != len(inScope) {
		var unresolved []string
		for code, deg := range inDegree {
			if deg > 0 {
				unresolved = append(unresolved, code)
			}
		}
		sort.Strings(unresolved)
		return nil, &domain.CycleError{
			Cycles:     FindCyclesIn(cat, unresolved),
			Unresolved: unresolved,
		}
	}
	return order, nil
}

// insertSorted inserts code into an already-sorted ready list, keeping the
// lexicographic tie-break invariant.
func insertSorted(ready []string, code string) []string {
	i := sort.SearchStrings(ready, code)
	ready = append(ready, "")
	copy(ready[i+1:], ready[i:])
	ready[i] = code
	return ready
}
