package graph

import (
	"sort"

	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/domain"
)

// PrereqClosure returns the given codes plus every module transitively
// required by them, sorted. The result is closed under prerequisites, which
// makes it a valid subset for TopologicalOrderSubset.
func PrereqClosure(cat *catalog.Catalog, codes []string) []string {
	seen := make(map[string]bool)
	var stack []string
	for _, code := range codes {
		code = domain.NormalizeCode(code)
		if cat.Has(code) && !seen[code] {
			seen[code] = true
			stack = append(stack, code)
		}
	}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, pre := range cat.Prerequisites(node) {
			if !seen[pre] {
				seen[pre] = true
				stack = append(stack, pre)
			}
		}
	}
	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
