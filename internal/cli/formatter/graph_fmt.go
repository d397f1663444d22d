package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/curricle/internal/contract"
)

// FormatGraph renders the prerequisite graph as a forest: modules with no
// in-scope prerequisites are roots, and each module's dependents hang
// beneath it. A module reachable along several prerequisite chains is
// shown once per chain. Cycles are listed as warnings below the tree.
func FormatGraph(resp *contract.GraphResponse) string {
	if len(resp.Nodes) == 0 {
		return Dim("No modules in scope.") + "\n"
	}

	byCode := make(map[string]contract.GraphNode, len(resp.Nodes))
	for _, n := range resp.Nodes {
		byCode[n.Code] = n
	}

	var items []TreeItem
	onPath := make(map[string]bool)

	var walk func(code string, level int, isLast bool)
	walk = func(code string, level int, isLast bool) {
		n := byCode[code]
		items = append(items, TreeItem{
			Code:      n.Code,
			Name:      n.Name,
			Level:     level,
			IsLast:    isLast,
			Completed: n.Completed,
			Eligible:  n.Eligible,
		})
		if onPath[code] {
			return
		}
		onPath[code] = true
		for i, dep := range n.Dependents {
			walk(dep, level+1, i == len(n.Dependents)-1)
		}
		delete(onPath, code)
	}

	for _, n := range resp.Nodes {
		if len(n.Prerequisites) == 0 {
			walk(n.Code, 0, false)
		}
	}
	if len(items) == 0 {
		// Every node has prerequisites, so the scope is one big loop;
		// fall back to a flat listing.
		for _, n := range resp.Nodes {
			walk(n.Code, 0, false)
		}
	}

	var b strings.Builder
	b.WriteString(RenderTree(items))

	if len(resp.Cycles) > 0 {
		b.WriteString("\n")
		for _, cycle := range resp.Cycles {
			b.WriteString(StyleRed.Render(fmt.Sprintf("  CYCLE: %s", strings.Join(cycle, " → "))) + "\n")
		}
	}

	title := fmt.Sprintf("Prerequisite graph — %s (%s)", resp.StudentID, resp.Course)
	return RenderBox(title, b.String())
}
