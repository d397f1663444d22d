package importer

import "github.com/alexanderramin/curricle/internal/domain"

// ToModules converts validated catalog records into domain modules,
// applying the default credit weight where the record omitted it.
func ToModules(records []ModuleRecord) []domain.Module {
	out := make([]domain.Module, 0, len(records))
	for _, rec := range records {
		credits := domain.DefaultCredits
		if rec.Credits != nil {
			credits = *rec.Credits
		}
		out = append(out, domain.Module{
			Code:          domain.NormalizeCode(rec.Code),
			Name:          rec.Name,
			Tracks:        rec.Tracks,
			Prerequisites: rec.Prerequisites,
			Credits:       credits,
		})
	}
	return out
}

// ToStudent converts a validated student record into a domain student with
// a normalized completed set.
func ToStudent(rec StudentRecord) *domain.Student {
	completed := make(map[string]bool, len(rec.Completed))
	for _, code := range rec.Completed {
		completed[domain.NormalizeCode(code)] = true
	}
	return &domain.Student{
		ID:        rec.StudentID,
		Name:      rec.Name,
		Course:    rec.Course,
		Year:      rec.Year,
		Semester:  rec.Semester,
		Completed: completed,
	}
}
