package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/contract"
	"github.com/alexanderramin/curricle/internal/db"
	"github.com/alexanderramin/curricle/internal/domain"
	"github.com/alexanderramin/curricle/internal/planner"
	"github.com/alexanderramin/curricle/internal/repository"
)

type planningService struct {
	cat      *catalog.Catalog
	related  *domain.RelatedTracks
	students repository.StudentRepo
	uow      db.UnitOfWork
	obs      UseCaseObserver
}

func NewPlanningService(cat *catalog.Catalog, related *domain.RelatedTracks, students repository.StudentRepo, uow db.UnitOfWork, observers ...UseCaseObserver) PlanningService {
	return &planningService{cat: cat, related: related, students: students, uow: uow, obs: useCaseObserverOrNoop(observers)}
}

func (s *planningService) Plan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.obs, "plan", started, err, map[string]any{"student_id": req.StudentID})
	}()

	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	creditCap := req.CreditCap
	if creditCap <= 0 {
		creditCap = contract.DefaultCreditCap
	}

	groups, err := planner.Plan(s.cat, student, creditCap, s.related)
	if err != nil {
		return nil, err
	}

	resp = &contract.PlanResponse{
		StudentID: student.ID,
		Course:    student.Course,
		CreditCap: creditCap,
		Semesters: make([]contract.SemesterPlan, 0, len(groups)),
	}
	for _, g := range groups {
		resp.Semesters = append(resp.Semesters, semesterPlan(s.cat, g))
		resp.TotalCredits += g.Credits
	}
	return resp, nil
}

// Simulate validates the proposed sequence against the student's current
// record. With Commit set, the modules the walk newly completes are
// written to the record in one transaction under a fresh commit ID; a
// simulation that completes nothing new commits nothing.
func (s *planningService) Simulate(ctx context.Context, req contract.SimulateRequest) (resp *contract.SimulateResponse, err error) {
	started := time.Now()
	defer func() {
		observe(ctx, s.obs, "simulate", started, err, map[string]any{"student_id": req.StudentID, "commit": req.Commit})
	}()

	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	result, err := planner.Simulate(s.cat, planner.PlanRequest{
		StartingCompleted: student.Completed,
		Sequence:          req.Sequence,
		Semesters:         req.Semesters,
		CreditCap:         req.CreditCap,
	})
	if err != nil {
		return nil, err
	}

	var newly []string
	for code := range result.Completed {
		if !student.Completed[code] {
			newly = append(newly, code)
		}
	}
	sort.Strings(newly)

	resp = &contract.SimulateResponse{
		StudentID:      student.ID,
		Sequence:       make([]contract.PlannedModule, 0, len(result.Sequence)),
		TotalCredits:   result.TotalCredits,
		NewlyCompleted: newly,
	}
	for _, code := range result.Sequence {
		resp.Sequence = append(resp.Sequence, plannedModule(s.cat, code))
	}
	for _, g := range result.Semesters {
		resp.Semesters = append(resp.Semesters, semesterPlan(s.cat, g))
	}

	if req.Commit && len(newly) > 0 {
		commitID := uuid.New().String()
		err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			return repository.NewSQLiteStudentRepo(tx).CommitCompletions(ctx, student.ID, commitID, "simulation", newly)
		})
		if err != nil {
			return nil, err
		}
		resp.CommitID = commitID
	}
	return resp, nil
}

func semesterPlan(cat *catalog.Catalog, g planner.SemesterGroup) contract.SemesterPlan {
	plan := contract.SemesterPlan{Index: g.Index, Credits: g.Credits, Modules: make([]contract.PlannedModule, 0, len(g.Modules))}
	for _, code := range g.Modules {
		plan.Modules = append(plan.Modules, plannedModule(cat, code))
	}
	return plan
}
