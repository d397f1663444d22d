package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/curricle/internal/testutil"
)

func TestStudentProgress(t *testing.T) {
	env := newServiceEnv(t)
	env.seedStudent(t, testutil.NewTestStudent("100001",
		testutil.WithCompleted("CS101"),
		testutil.WithStanding(2, 1),
	))

	svc := NewStudentService(env.cat, env.related, env.students)
	report, err := svc.Progress(context.Background(), "100001")
	require.NoError(t, err)

	// Course scope is CS101, CS201, CS301 and the related-track MA100;
	// ST200 does not count.
	assert.Equal(t, 4, report.TotalModules)
	assert.Equal(t, 1, report.CompletedModules)
	assert.Equal(t, 3, report.RemainingModules)
	assert.Equal(t, 18, report.TotalCredits)
	assert.Equal(t, 3, report.EarnedCredits)
	assert.Equal(t, 15, report.RemainingCredits)
	assert.InDelta(t, 16.67, report.ProgressPct, 0.01)
	assert.Equal(t, 2, report.Year)

	var recommended []string
	for _, m := range report.Recommended {
		recommended = append(recommended, m.Code)
	}
	assert.Equal(t, []string{"CS201", "MA100"}, recommended)
}

func TestStudentProgress_NothingCompleted(t *testing.T) {
	env := newServiceEnv(t)
	env.seedStudent(t, testutil.NewTestStudent("100002"))

	svc := NewStudentService(env.cat, env.related, env.students)
	report, err := svc.Progress(context.Background(), "100002")
	require.NoError(t, err)

	assert.Zero(t, report.CompletedModules)
	assert.Zero(t, report.EarnedCredits)
	assert.Zero(t, report.ProgressPct)
}

func TestStudentList(t *testing.T) {
	env := newServiceEnv(t)
	env.seedStudent(t, testutil.NewTestStudent("100002"))
	env.seedStudent(t, testutil.NewTestStudent("100001"))

	svc := NewStudentService(env.cat, env.related, env.students)
	students, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "100001", students[0].ID)
}
