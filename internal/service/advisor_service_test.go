package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/curricle/internal/domain"
	"github.com/alexanderramin/curricle/internal/repository"
	"github.com/alexanderramin/curricle/internal/testutil"
)

func TestAdvisorEligible(t *testing.T) {
	env := newServiceEnv(t)
	env.seedStudent(t, testutil.NewTestStudent("100001", testutil.WithCompleted("CS101")))

	svc := NewAdvisorService(env.cat, env.related, env.students)
	resp, err := svc.Eligible(context.Background(), "100001")
	require.NoError(t, err)

	var codes []string
	for _, m := range resp.Modules {
		codes = append(codes, m.Code)
	}
	// CS301 still blocked on CS201; ST200 belongs to an unrelated track.
	assert.Equal(t, []string{"CS201", "MA100"}, codes)
	assert.Equal(t, "Computer Science", resp.Course)
}

func TestAdvisorEligible_UnknownStudent(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewAdvisorService(env.cat, env.related, env.students)

	_, err := svc.Eligible(context.Background(), "999999")
	var notFound *repository.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAdvisorUpcoming_PrerequisiteOrder(t *testing.T) {
	env := newServiceEnv(t)
	env.seedStudent(t, testutil.NewTestStudent("100001", testutil.WithCompleted("CS101")))

	svc := NewAdvisorService(env.cat, env.related, env.students)
	resp, err := svc.Upcoming(context.Background(), "100001")
	require.NoError(t, err)

	require.Len(t, resp.Modules, 3)
	assert.Equal(t, 1, resp.Modules[0].Order)
	assert.Equal(t, "CS201", resp.Modules[0].Code)
	assert.Equal(t, "CS301", resp.Modules[1].Code)
	assert.Equal(t, "MA100", resp.Modules[2].Code)
}

func TestAdvisorSearch(t *testing.T) {
	env := newServiceEnv(t)
	svc := NewAdvisorService(env.cat, env.related, env.students)
	ctx := context.Background()

	byCode, err := svc.Search(ctx, "cs2")
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, "CS201", byCode[0].Code)

	byName, err := svc.Search(ctx, "calculus")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "MA100", byName[0].Code)

	empty, err := svc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	none, err := svc.Search(ctx, "quantum basket weaving")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAdvisorGraph(t *testing.T) {
	env := newServiceEnv(t)
	env.seedStudent(t, testutil.NewTestStudent("100001", testutil.WithCompleted("CS101")))

	svc := NewAdvisorService(env.cat, env.related, env.students)
	resp, err := svc.Graph(context.Background(), "100001")
	require.NoError(t, err)

	nodes := make(map[string]domainGraphNode, len(resp.Nodes))
	for _, n := range resp.Nodes {
		nodes[n.Code] = domainGraphNode{completed: n.Completed, eligible: n.Eligible, dependents: n.Dependents}
	}

	require.Len(t, nodes, 4, "ST200 is outside the course scope")
	assert.True(t, nodes["CS101"].completed)
	assert.True(t, nodes["CS201"].eligible)
	assert.False(t, nodes["CS301"].eligible)
	assert.Equal(t, []string{"CS201"}, nodes["CS101"].dependents)
	// ST200 depends on MA100 but sits outside the scope, so it must not
	// leak into MA100's dependents.
	assert.Empty(t, nodes["MA100"].dependents)
	assert.Empty(t, resp.Cycles)
}

type domainGraphNode struct {
	completed  bool
	eligible   bool
	dependents []string
}

func TestAdvisorUpcoming_CyclicCatalog(t *testing.T) {
	cat := testutil.MustBuildCatalog(t,
		testutil.NewTestModule("M1", "One", testutil.WithPrereqs("M3")),
		testutil.NewTestModule("M2", "Two", testutil.WithPrereqs("M1")),
		testutil.NewTestModule("M3", "Three", testutil.WithPrereqs("M2")),
	)
	database := testutil.NewTestDB(t)
	students := repository.NewSQLiteStudentRepo(database)
	require.NoError(t, students.Create(context.Background(), testutil.NewTestStudent("100001")))

	svc := NewAdvisorService(cat, domain.NewRelatedTracks(nil), students)
	_, err := svc.Upcoming(context.Background(), "100001")

	var cycleErr *domain.CycleError
	require.ErrorAs(t, err, &cycleErr)
	require.Len(t, cycleErr.Cycles, 1)
	assert.Equal(t, []string{"M1", "M2", "M3"}, cycleErr.Cycles[0])
}
