package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/curricle/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStudentsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "students",
		Short: "List registered students",
		RunE: func(cmd *cobra.Command, args []string) error {
			students, err := app.Students.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStudentList(students))
			return nil
		},
	}
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <student-id>",
		Short: "Show a student's course progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Students.Progress(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatProgress(report))
			return nil
		},
	}
}
