// Package graph implements the algorithms over the prerequisite graph:
// cycle detection, topological ordering, and transitive prerequisite
// closure. All functions are pure; they read the shared Catalog and return
// fresh values.
package graph

import (
	"sort"

	"github.com/alexanderramin/curricle/internal/catalog"
)

// Node colors for the iterative DFS.
const (
	white = 0 // unvisited
	gray  = 1 // on the current DFS path
	black = 2 // fully processed
)

// FindCycles returns every distinct prerequisite cycle in the catalog.
// Each cycle is the ordered sequence of module codes forming the loop,
// rotated so the smallest code leads; a self-prerequisite is a length-1
// cycle. Disjoint components are all searched, and duplicates (the same
// loop reached from different roots) are collapsed.
func FindCycles(cat *catalog.Catalog) [][]string {
	return findCyclesIn(cat.Codes(), cat.Dependents)
}

// FindCyclesIn is FindCycles restricted to a node subset. Edges leaving the
// subset are ignored.
func FindCyclesIn(cat *catalog.Catalog, subset []string) [][]string {
	inScope := make(map[string]bool, len(subset))
	for _, code := range subset {
		inScope[code] = true
	}
	neighbors := func(code string) []string {
		var out []string
		for _, dep := range cat.Dependents(code) {
			if inScope[dep] {
				out = append(out, dep)
			}
		}
		return out
	}
	nodes := make([]string, len(subset))
	copy(nodes, subset)
	sort.Strings(nodes)
	return findCyclesIn(nodes, neighbors)
}

func findCyclesIn(nodes []string, neighbors func(string) []string) [][]string {
	color := make(map[string]int, len(nodes))
	var path []string
	onPath := make(map[string]int) // code -> index in path
	seen := make(map[string]bool)  // canonical cycle keys
	var cycles [][]string

	var visit func(node string)
	visit = func(node string) {
		color[node] = gray
		onPath[node] = len(path)
		path = append(path, node)

		for _, next := range neighbors(node) {
			switch color[next] {
			case gray:
				// Back edge: the cycle is the path suffix from next.
				cyc := append([]string(nil), path[onPath[next]:]...)
				cyc = canonicalize(cyc)
				key := cycleKey(cyc)
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, cyc)
				}
			case white:
				visit(next)
			}
		}

		path = path[:len(path)-1]
		delete(onPath, node)
		color[node] = black
	}

	for _, node := range nodes {
		if color[node] == white {
			visit(node)
		}
	}
	return cycles
}

// canonicalize rotates a cycle so its lexicographically smallest code leads.
// The traversal order within the cycle is preserved.
func canonicalize(cycle []string) []string {
	if len(cycle) <= 1 {
		return cycle
	}
	min := 0
	for i, code := range cycle {
		if code < cycle[min] {
			min = i
		}
	}
	out := make([]string, 0, len(cycle))
	out = append(out, cycle[min:]...)
	out = append(out, cycle[:min]...)
	return out
}

func cycleKey(cycle []string) string {
	key := ""
	for _, code := range cycle {
		key += code + "\x00"
	}
	return key
}
