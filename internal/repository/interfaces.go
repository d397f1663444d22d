package repository

import (
	"context"

	"github.com/alexanderramin/curricle/internal/domain"
)

// StudentRepo persists student records and their committed completions.
// The planning engine never writes through this interface; only the
// service layer does, and only on an explicit commit.
type StudentRepo interface {
	Create(ctx context.Context, s *domain.Student) error
	GetByID(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context) ([]*domain.Student, error)

	// CommitCompletions records newly completed module codes for a student
	// under a single commit ID. Codes already recorded are an error; the
	// caller diffs against the current record first.
	CommitCompletions(ctx context.Context, studentID, commitID, source string, codes []string) error
}

// NotFoundError reports a lookup for an ID with no student row.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "student " + e.ID + " not found"
}
