package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/contract"
	"github.com/alexanderramin/curricle/internal/domain"
	"github.com/alexanderramin/curricle/internal/graph"
	"github.com/alexanderramin/curricle/internal/planner"
	"github.com/alexanderramin/curricle/internal/repository"
)

type advisorService struct {
	cat      *catalog.Catalog
	related  *domain.RelatedTracks
	students repository.StudentRepo
}

func NewAdvisorService(cat *catalog.Catalog, related *domain.RelatedTracks, students repository.StudentRepo) AdvisorService {
	return &advisorService{cat: cat, related: related, students: students}
}

func (s *advisorService) Eligible(ctx context.Context, studentID string) (*contract.EligibilityResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	codes := planner.EligibleModules(s.cat, student, s.related)
	resp := &contract.EligibilityResponse{
		StudentID: student.ID,
		Course:    student.Course,
		Modules:   make([]contract.ModuleInfo, 0, len(codes)),
	}
	for _, code := range codes {
		resp.Modules = append(resp.Modules, moduleInfo(s.cat, code))
	}
	return resp, nil
}

// Upcoming lists the student's remaining course modules in an order that
// never places a module before its prerequisites. Fails with CycleError
// when the remaining modules contain a prerequisite loop.
func (s *advisorService) Upcoming(ctx context.Context, studentID string) (*contract.UpcomingResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	pending := pendingInScope(courseScope(s.cat, s.related, student), student)
	ordered, err := graph.TopologicalOrderSubset(s.cat, pending)
	if err != nil {
		return nil, err
	}

	return &contract.UpcomingResponse{
		StudentID: student.ID,
		Course:    student.Course,
		Modules:   upcomingEntries(s.cat, ordered),
	}, nil
}

// Search matches the query case-insensitively against module codes and
// names across the whole catalog.
func (s *advisorService) Search(ctx context.Context, query string) ([]contract.ModuleInfo, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, nil
	}

	var out []contract.ModuleInfo
	for _, code := range s.cat.Codes() {
		m, _ := s.cat.Get(code)
		if strings.Contains(strings.ToLower(m.Code), needle) || strings.Contains(strings.ToLower(m.Name), needle) {
			out = append(out, moduleInfo(s.cat, code))
		}
	}
	return out, nil
}

// Graph returns the student's course modules with both adjacency
// directions plus per-node completion and eligibility flags. Unlike the
// ordered views it tolerates cycles and reports them alongside the nodes,
// so the view stays usable for diagnosing bad catalog data.
func (s *advisorService) Graph(ctx context.Context, studentID string) (*contract.GraphResponse, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	scope := courseScope(s.cat, s.related, student)
	inScope := make(map[string]bool, len(scope))
	for _, code := range scope {
		inScope[code] = true
	}

	eligible := make(map[string]bool)
	for _, code := range planner.EligibleModules(s.cat, student, s.related) {
		eligible[code] = true
	}

	resp := &contract.GraphResponse{
		StudentID: student.ID,
		Course:    student.Course,
		Nodes:     make([]contract.GraphNode, 0, len(scope)),
		Cycles:    graph.FindCyclesIn(s.cat, scope),
	}
	for _, code := range scope {
		m, _ := s.cat.Get(code)
		var dependents []string
		for _, dep := range s.cat.Dependents(code) {
			if inScope[dep] {
				dependents = append(dependents, dep)
			}
		}
		resp.Nodes = append(resp.Nodes, contract.GraphNode{
			Code:          m.Code,
			Name:          m.Name,
			Prerequisites: s.cat.Prerequisites(code),
			Dependents:    dependents,
			Completed:     student.Completed[code],
			Eligible:      eligible[code],
		})
	}
	return resp, nil
}
