package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/curricle/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive planner session for one student",
		Long: `Start an interactive session: sign in with a student ID, then browse
progress, eligibility, the upcoming order, plans and the prerequisite
graph without retyping the ID.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("shell requires an interactive terminal")
			}

			student, err := loginStudent(app)
			if err != nil {
				return err
			}

			program := tea.NewProgram(newShellModel(app, student), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}
}

// loginStudent prompts for a student ID and loads the record, re-prompting
// on format errors and failing on unknown IDs.
func loginStudent(app *App) (*domain.Student, error) {
	var id string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Student ID").
				Placeholder("100001").
				Value(&id).
				Validate(func(s string) error {
					return (&domain.Student{ID: s}).ValidateID()
				}),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}
	return app.Students.GetByID(context.Background(), id)
}
