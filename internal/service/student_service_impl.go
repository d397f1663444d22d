package service

import (
	"context"

	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/contract"
	"github.com/alexanderramin/curricle/internal/domain"
	"github.com/alexanderramin/curricle/internal/planner"
	"github.com/alexanderramin/curricle/internal/repository"
)

type studentService struct {
	cat      *catalog.Catalog
	related  *domain.RelatedTracks
	students repository.StudentRepo
}

func NewStudentService(cat *catalog.Catalog, related *domain.RelatedTracks, students repository.StudentRepo) StudentService {
	return &studentService{cat: cat, related: related, students: students}
}

func (s *studentService) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	return s.students.GetByID(ctx, id)
}

func (s *studentService) List(ctx context.Context) ([]*domain.Student, error) {
	return s.students.List(ctx)
}

// Progress measures a student against the modules their course reaches
// (own track, related tracks, and all transitive prerequisites). Completed
// modules outside that scope exist on the record but do not count toward
// course progress.
func (s *studentService) Progress(ctx context.Context, id string) (*contract.ProgressReport, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	scope := courseScope(s.cat, s.related, student)
	var done []string
	for _, code := range scope {
		if student.Completed[code] {
			done = append(done, code)
		}
	}

	totalCredits := s.cat.SumCredits(scope)
	earnedCredits := s.cat.SumCredits(done)

	report := &contract.ProgressReport{
		StudentID:        student.ID,
		Name:             student.Name,
		Course:           student.Course,
		Year:             student.Year,
		Semester:         student.Semester,
		TotalModules:     len(scope),
		CompletedModules: len(done),
		RemainingModules: len(scope) - len(done),
		TotalCredits:     totalCredits,
		EarnedCredits:    earnedCredits,
		RemainingCredits: totalCredits - earnedCredits,
		Recommended:      upcomingEntries(s.cat, planner.EligibleModules(s.cat, student, s.related)),
	}
	if totalCredits > 0 {
		report.ProgressPct = float64(earnedCredits) / float64(totalCredits) * 100
	}
	return report, nil
}
