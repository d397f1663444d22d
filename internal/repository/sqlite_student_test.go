package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/curricle/internal/db"
	"github.com/alexanderramin/curricle/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLiteStudentRepo {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return NewSQLiteStudentRepo(database)
}

func testStudent(id string, completed ...string) *domain.Student {
	set := make(map[string]bool, len(completed))
	for _, code := range completed {
		set[code] = true
	}
	return &domain.Student{
		ID:        id,
		Name:      "Ada Lovelace",
		Course:    "Computer Science",
		Year:      2,
		Semester:  1,
		Completed: set,
	}
}

func TestStudentRepo_CreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testStudent("100001", "CS101", "MA100")))

	got, err := repo.GetByID(ctx, "100001")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "Computer Science", got.Course)
	assert.Equal(t, map[string]bool{"CS101": true, "MA100": true}, got.Completed)
}

func TestStudentRepo_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByID(context.Background(), "999999")
	require.Error(t, err)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "999999", notFound.ID)
}

func TestStudentRepo_List(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testStudent("100002")))
	require.NoError(t, repo.Create(ctx, testStudent("100001", "CS101")))

	students, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "100001", students[0].ID, "ordered by ID")
	assert.Equal(t, map[string]bool{"CS101": true}, students[0].Completed)
	assert.Empty(t, students[1].Completed)
}

func TestStudentRepo_CommitCompletions(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testStudent("100001", "CS101")))

	commitID := uuid.NewString()
	require.NoError(t, repo.CommitCompletions(ctx, "100001", commitID, "simulation", []string{"cs201", "CS301"}))

	got, err := repo.GetByID(ctx, "100001")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"CS101": true, "CS201": true, "CS301": true}, got.Completed)
}

func TestStudentRepo_CommitDuplicateCompletionFails(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testStudent("100001", "CS101")))

	err := repo.CommitCompletions(ctx, "100001", uuid.NewString(), "manual", []string{"CS101"})
	assert.Error(t, err, "primary key on (student, module) rejects re-completion")
}

func TestStudentRepo_TransactionalCommit(t *testing.T) {
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	ctx := context.Background()
	require.NoError(t, NewSQLiteStudentRepo(database).Create(ctx, testStudent("100001", "CS101")))

	uow := db.NewSQLiteUnitOfWork(database)
	// CS101 is already recorded, so the batch must roll back entirely.
	err = uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteStudentRepo(tx).CommitCompletions(ctx, "100001", uuid.NewString(), "plan", []string{"CS201", "CS101"})
	})
	require.Error(t, err)

	got, err := NewSQLiteStudentRepo(database).GetByID(ctx, "100001")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"CS101": true}, got.Completed, "partial batch rolled back")
}
