package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/contract"
	"github.com/alexanderramin/curricle/internal/db"
	"github.com/alexanderramin/curricle/internal/domain"
	"github.com/alexanderramin/curricle/internal/repository"
	"github.com/alexanderramin/curricle/internal/testutil"
)

// serviceEnv bundles the shared fixtures for service tests: a small
// Computer Science curriculum with a related Mathematics track, one
// unrelated Statistics module, and an in-memory student store.
type serviceEnv struct {
	cat      *catalog.Catalog
	related  *domain.RelatedTracks
	students repository.StudentRepo
	uow      db.UnitOfWork
}

func newServiceEnv(t *testing.T) *serviceEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	cat := testutil.MustBuildCatalog(t,
		testutil.NewTestModule("CS101", "Intro to Programming"),
		testutil.NewTestModule("CS201", "Data Structures", testutil.WithPrereqs("CS101"), testutil.WithCredits(6)),
		testutil.NewTestModule("CS301", "Algorithms", testutil.WithPrereqs("CS201"), testutil.WithCredits(6)),
		testutil.NewTestModule("MA100", "Calculus I", testutil.WithTracks("Mathematics")),
		testutil.NewTestModule("ST200", "Regression", testutil.WithTracks("Statistics"), testutil.WithPrereqs("MA100")),
	)

	return &serviceEnv{
		cat:      cat,
		related:  domain.NewRelatedTracks(map[string][]string{"Computer Science": {"Mathematics"}}),
		students: repository.NewSQLiteStudentRepo(database),
		uow:      testutil.NewTestUoW(database),
	}
}

// seedStudent persists a student and returns it.
func (e *serviceEnv) seedStudent(t *testing.T, s *domain.Student) *domain.Student {
	t.Helper()
	require.NoError(t, e.students.Create(context.Background(), s))
	return s
}

func planReq(studentID string, creditCap int) contract.PlanRequest {
	return contract.PlanRequest{StudentID: studentID, CreditCap: creditCap}
}

func simulateReq(studentID string, sequence []string, commit bool) contract.SimulateRequest {
	return contract.SimulateRequest{StudentID: studentID, Sequence: sequence, Commit: commit}
}

// planCodes projects a planned-module list onto its codes.
func planCodes(modules []contract.PlannedModule) []string {
	var codes []string
	for _, m := range modules {
		codes = append(codes, m.Code)
	}
	return codes
}
