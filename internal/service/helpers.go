package service

import (
	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/contract"
	"github.com/alexanderramin/curricle/internal/domain"
	"github.com/alexanderramin/curricle/internal/graph"
)

// courseScope returns the module codes a student's course reaches: every
// module on the course's track or a related track, plus the transitive
// prerequisite closure of those modules. Sorted.
func courseScope(cat *catalog.Catalog, related *domain.RelatedTracks, student *domain.Student) []string {
	tracks := append([]string{student.Course}, related.RelatedTo(student.Course)...)
	return graph.PrereqClosure(cat, cat.TrackModules(tracks...))
}

// pendingInScope filters scope down to the codes the student has not
// completed, preserving order.
func pendingInScope(scope []string, student *domain.Student) []string {
	var pending []string
	for _, code := range scope {
		if !student.Completed[code] {
			pending = append(pending, code)
		}
	}
	return pending
}

func moduleInfo(cat *catalog.Catalog, code string) contract.ModuleInfo {
	m, _ := cat.Get(code)
	return contract.ModuleInfo{
		Code:          m.Code,
		Name:          m.Name,
		Tracks:        m.Tracks,
		Prerequisites: cat.Prerequisites(code),
		Credits:       m.Credits,
	}
}

// upcomingEntries maps an ordered code list to 1-based UpcomingModule rows.
func upcomingEntries(cat *catalog.Catalog, codes []string) []contract.UpcomingModule {
	out := make([]contract.UpcomingModule, 0, len(codes))
	for i, code := range codes {
		m, _ := cat.Get(code)
		out = append(out, contract.UpcomingModule{
			Order:         i + 1,
			Code:          m.Code,
			Name:          m.Name,
			Prerequisites: cat.Prerequisites(code),
			Credits:       m.Credits,
		})
	}
	return out
}

func plannedModule(cat *catalog.Catalog, code string) contract.PlannedModule {
	m, _ := cat.Get(code)
	return contract.PlannedModule{Code: m.Code, Name: m.Name, Credits: m.Credits}
}
