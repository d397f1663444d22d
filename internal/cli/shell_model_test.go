package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/curricle/internal/teatest"
)

func newShellDriver(t *testing.T) *teatest.Driver {
	t.Helper()
	app := newTestApp(t)
	student, err := app.Students.GetByID(context.Background(), "100001")
	require.NoError(t, err)
	return teatest.New(t, newShellModel(app, student), 100, 40)
}

func shellState(t *testing.T, d *teatest.Driver) shellModel {
	t.Helper()
	m, ok := d.Model.(shellModel)
	require.True(t, ok)
	return m
}

func TestShellMenuNavigation(t *testing.T) {
	d := newShellDriver(t)
	assert.Equal(t, 0, shellState(t, d).cursor)

	d.Press("down")
	assert.Equal(t, 1, shellState(t, d).cursor)

	d.Press("up")
	assert.Equal(t, 0, shellState(t, d).cursor)

	// The cursor stops at the search row, one past the fixed actions.
	for i := 0; i < 20; i++ {
		d.Press("down")
	}
	m := shellState(t, d)
	assert.Equal(t, len(m.actions), m.cursor)
}

func TestShellRunAction(t *testing.T) {
	d := newShellDriver(t)

	// Enter on the first row runs the progress view.
	d.Press("enter")
	m := shellState(t, d)
	assert.True(t, m.showOutput)
	assert.Contains(t, d.View(), "Test Student 100001")

	d.Press("esc")
	assert.False(t, shellState(t, d).showOutput)
}

func TestShellSearchFlow(t *testing.T) {
	d := newShellDriver(t)

	for i := 0; i < len(shellState(t, d).actions)+1; i++ {
		d.Press("down")
	}
	d.Press("enter")
	assert.True(t, shellState(t, d).searching)

	d.Press("calculus")
	d.Press("enter")

	m := shellState(t, d)
	assert.False(t, m.searching)
	assert.True(t, m.showOutput)
	assert.Contains(t, d.View(), "MA100")
}

func TestShellActionError(t *testing.T) {
	d := newShellDriver(t)

	// Break the student mid-session so the action fails.
	m := shellState(t, d)
	m.student.ID = "999999"
	d.Model = m

	d.Press("enter")
	m = shellState(t, d)
	assert.False(t, m.showOutput)
	assert.Contains(t, d.View(), "not found")
}

func TestShellQuit(t *testing.T) {
	d := newShellDriver(t)
	d.Press("q")
	assert.True(t, d.Quitting)
}
