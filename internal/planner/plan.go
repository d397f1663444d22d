package planner

import (
	"fmt"

	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/domain"
	"github.com/alexanderramin/curricle/internal/graph"
)

// Plan partitions the student's remaining modules into semesters under a
// per-semester credit cap, respecting prerequisite order.
//
// The scope is the transitive prerequisite closure of the modules relevant
// to the student's track (own plus related), minus what is already
// completed. Modules are considered in deterministic topological order and
// placed greedily: a module joins the open semester unless that would
// exceed the cap or one of its prerequisites sits in the open semester
// itself (prerequisites must be completed or placed strictly earlier);
// such modules are deferred, and a new semester opens once a full pass
// places nothing more. Closed semesters are never revisited, so the result
// is deterministic but not guaranteed minimal in semester count.
//
// Fails with CycleError when the restricted subgraph is cyclic and with
// UnplaceableModuleError when a single module's credits exceed the cap.
func Plan(cat *catalog.Catalog, student *domain.Student, creditCap int, related *domain.RelatedTracks) ([]SemesterGroup, error) {
	if creditCap <= 0 {
		return nil, fmt.Errorf("credit cap must be positive, got %d", creditCap)
	}

	tracks := append([]string{student.Course}, related.RelatedTo(student.Course)...)
	scope := graph.PrereqClosure(cat, cat.TrackModules(tracks...))

	var pendingScope []string
	for _, code := range scope {
		if !student.Completed[code] {
			pendingScope = append(pendingScope, code)
		}
	}
	if len(pendingScope) == 0 {
		return nil, nil
	}

	pending, err := graph.TopologicalOrderSubset(cat, pendingScope)
	if err != nil {
		return nil, err
	}

	completed := student.CompletedCopy()
	placedIn := make(map[string]int, len(pending)) // code -> 1-based semester
	var semesters []SemesterGroup

	for len(pending) > 0 {
		idx := len(semesters) + 1
		var group []string
		var deferred []string
		credits := 0

		for _, code := range pending {
			m, _ := cat.Get(code)
			if !placeable(cat, code, completed, placedIn, idx) || credits+m.Credits > creditCap {
				deferred = append(deferred, code)
				continue
			}
			group = append(group, code)
			credits += m.Credits
			placedIn[code] = idx
		}

		if len(group) == 0 {
			// The topologically first deferred module has every
			// prerequisite in a closed semester, so the stall can only be
			// its own credit weight.
			first := deferred[0]
			m, _ := cat.Get(first)
			return nil, &domain.UnplaceableModuleError{Code: first, Credits: m.Credits, Cap: creditCap}
		}

		semesters = append(semesters, SemesterGroup{Index: idx, Modules: group, Credits: credits})
		pending = deferred
	}
	return semesters, nil
}

// placeable reports whether every prerequisite of code is completed or
// placed in a semester strictly before current.
func placeable(cat *catalog.Catalog, code string, completed map[string]bool, placedIn map[string]int, current int) bool {
	for _, pre := range cat.Prerequisites(code) {
		if completed[pre] {
			continue
		}
		if sem, ok := placedIn[pre]; ok && sem < current {
			continue
		}
		return false
	}
	return true
}
