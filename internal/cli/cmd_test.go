package cli

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/curricle/internal/domain"
	"github.com/alexanderramin/curricle/internal/repository"
	"github.com/alexanderramin/curricle/internal/service"
	"github.com/alexanderramin/curricle/internal/testutil"
)

// newTestApp wires a full App over an in-memory database with a small
// Computer Science curriculum and one seeded student.
func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	cat := testutil.MustBuildCatalog(t,
		testutil.NewTestModule("CS101", "Intro to Programming"),
		testutil.NewTestModule("CS201", "Data Structures", testutil.WithPrereqs("CS101"), testutil.WithCredits(6)),
		testutil.NewTestModule("CS301", "Algorithms", testutil.WithPrereqs("CS201"), testutil.WithCredits(6)),
		testutil.NewTestModule("MA100", "Calculus I", testutil.WithTracks("Mathematics")),
	)
	related := domain.NewRelatedTracks(map[string][]string{"Computer Science": {"Mathematics"}})
	students := repository.NewSQLiteStudentRepo(database)
	uow := testutil.NewTestUoW(database)

	require.NoError(t, students.Create(context.Background(),
		testutil.NewTestStudent("100001", testutil.WithCompleted("CS101"))))

	return &App{
		Students: service.NewStudentService(cat, related, students),
		Advisor:  service.NewAdvisorService(cat, related, students),
		Planning: service.NewPlanningService(cat, related, students, uow),
		Import:   service.NewImportService(cat, uow),
	}
}

// runCommand executes the cobra tree with args, capturing everything the
// handlers print to stdout.
func runCommand(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	pr, pw, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = pw

	root := NewRootCmd(app)
	root.SetOut(pw)
	root.SetErr(pw)
	root.SetArgs(args)
	root.SilenceUsage = true
	root.SilenceErrors = true

	execErr := root.Execute()

	pw.Close()
	os.Stdout = origStdout
	out, readErr := io.ReadAll(pr)
	require.NoError(t, readErr)

	return string(out), execErr
}

func TestStudentsCommand(t *testing.T) {
	app := newTestApp(t)
	out, err := runCommand(t, app, "students")
	require.NoError(t, err)
	assert.Contains(t, out, "100001")
	assert.Contains(t, out, "Test Student 100001")
}

func TestEligibleCommand(t *testing.T) {
	app := newTestApp(t)
	out, err := runCommand(t, app, "eligible", "100001")
	require.NoError(t, err)
	assert.Contains(t, out, "CS201")
	assert.Contains(t, out, "MA100")
	assert.NotContains(t, out, "CS301")
}

func TestEligibleCommand_UnknownStudent(t *testing.T) {
	app := newTestApp(t)
	_, err := runCommand(t, app, "eligible", "999999")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPlanCommand(t *testing.T) {
	app := newTestApp(t)
	out, err := runCommand(t, app, "plan", "100001", "--credit-cap", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Semester 1")
	assert.Contains(t, out, "CS201")
}

func TestSimulateCommand_Commit(t *testing.T) {
	app := newTestApp(t)
	out, err := runCommand(t, app, "simulate", "100001", "CS201", "--commit")
	require.NoError(t, err)
	assert.Contains(t, out, "PASS:")
	assert.Contains(t, out, "Committed:")

	// The commit is visible to subsequent commands.
	out, err = runCommand(t, app, "eligible", "100001")
	require.NoError(t, err)
	assert.Contains(t, out, "CS301")
}

func TestSimulateCommand_RejectsBadSequence(t *testing.T) {
	app := newTestApp(t)
	_, err := runCommand(t, app, "simulate", "100001", "CS301")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CS201")
}

func TestSearchCommand(t *testing.T) {
	app := newTestApp(t)
	out, err := runCommand(t, app, "search", "calculus")
	require.NoError(t, err)
	assert.Contains(t, out, "MA100")
}

func TestParseSemesterGroups(t *testing.T) {
	groups := parseSemesterGroups("CS101, MA100; CS201 ;;")
	assert.Equal(t, [][]string{{"CS101", "MA100"}, {"CS201"}}, groups)

	assert.Nil(t, parseSemesterGroups("  ;  "))
}

func TestSimulateCommand_SemesterGrouping(t *testing.T) {
	app := newTestApp(t)
	out, err := runCommand(t, app, "simulate", "100001",
		"--semesters", "CS201;CS301", "--credit-cap", "6")
	require.NoError(t, err)
	assert.Contains(t, out, "Semester 1")
	assert.Contains(t, out, "Semester 2")
}
