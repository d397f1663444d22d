package planner

import (
	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/domain"
)

// Simulate validates a proposed module sequence against the catalog.
// It walks the sequence in order, growing a running completed set seeded
// from the request: a module earlier in the sequence satisfies
// prerequisites for later ones, but never its own. It fails with
// UnknownModuleError for a code absent from the catalog,
// PrerequisiteUnmetError at the first ordering violation, and, when a
// semester grouping plus credit cap is supplied, CreditOverflowError for
// the first group whose sum exceeds the cap. The simulator validates; it
// never repairs.
func Simulate(cat *catalog.Catalog, req PlanRequest) (*PlanResult, error) {
	groups := req.Semesters
	if groups == nil {
		groups = [][]string{req.Sequence}
	}

	completed := make(map[string]bool, len(req.StartingCompleted))
	for code := range req.StartingCompleted {
		completed[domain.NormalizeCode(code)] = true
	}

	result := &PlanResult{Completed: completed}
	for gi, group := range groups {
		groupCredits := 0
		var placed []string
		for _, raw := range group {
			code := domain.NormalizeCode(raw)
			m, ok := cat.Get(code)
			if !ok {
				return nil, &domain.UnknownModuleError{Code: code}
			}
			if missing := missingPrereqs(cat, code, completed); missing != nil {
				return nil, &domain.PrerequisiteUnmetError{Module: code, Missing: missing}
			}
			completed[code] = true
			placed = append(placed, code)
			groupCredits += m.Credits
			result.Sequence = append(result.Sequence, code)
			result.TotalCredits += m.Credits
		}
		if req.Semesters != nil && req.CreditCap > 0 && groupCredits > req.CreditCap {
			return nil, &domain.CreditOverflowError{
				SemesterIndex: gi + 1,
				Total:         groupCredits,
				Cap:           req.CreditCap,
			}
		}
		if req.Semesters != nil {
			result.Semesters = append(result.Semesters, SemesterGroup{
				Index:   gi + 1,
				Modules: placed,
				Credits: groupCredits,
			})
		}
	}
	return result, nil
}
