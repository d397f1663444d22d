package service

import (
	"context"

	"github.com/alexanderramin/curricle/internal/contract"
	"github.com/alexanderramin/curricle/internal/domain"
)

type StudentService interface {
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)
	Progress(ctx context.Context, id string) (*contract.ProgressReport, error)
}

type AdvisorService interface {
	Eligible(ctx context.Context, studentID string) (*contract.EligibilityResponse, error)
	Upcoming(ctx context.Context, studentID string) (*contract.UpcomingResponse, error)
	Search(ctx context.Context, query string) ([]contract.ModuleInfo, error)
	Graph(ctx context.Context, studentID string) (*contract.GraphResponse, error)
}

type PlanningService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
	Simulate(ctx context.Context, req contract.SimulateRequest) (*contract.SimulateResponse, error)
}

type ImportService interface {
	ImportStudents(ctx context.Context, req contract.ImportRequest) (*contract.ImportResult, error)
}
