// Package planner implements the eligibility evaluator, the path simulator
// and the greedy semester planner. Everything here is pure computation over
// an immutable Catalog and copied student snapshots; no function mutates
// its inputs, so concurrent calls need no coordination.
package planner

import (
	"sort"

	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/domain"
)

// EligibleModules returns the codes the student can take now, sorted: not
// yet completed, every prerequisite completed, and belonging to the
// student's track or a track related to it via the supplied relation.
// An empty result is not an error.
func EligibleModules(cat *catalog.Catalog, student *domain.Student, related *domain.RelatedTracks) []string {
	tracks := append([]string{student.Course}, related.RelatedTo(student.Course)...)

	var eligible []string
	for _, code := range cat.Codes() {
		if student.Completed[code] {
			continue
		}
		m, _ := cat.Get(code)
		if !m.HasAnyTrack(tracks) {
			continue
		}
		if missingPrereqs(cat, code, student.Completed) != nil {
			continue
		}
		eligible = append(eligible, code)
	}
	return eligible
}

// missingPrereqs returns the prerequisites of code absent from the
// completed set, sorted, or nil when all are met.
func missingPrereqs(cat *catalog.Catalog, code string, completed map[string]bool) []string {
	var missing []string
	for _, pre := range cat.Prerequisites(code) {
		if !completed[pre] {
			missing = append(missing, pre)
		}
	}
	sort.Strings(missing)
	return missing
}
