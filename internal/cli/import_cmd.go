package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/curricle/internal/cli/formatter"
	"github.com/alexanderramin/curricle/internal/contract"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <students.json>",
		Short: "Import student records from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportStudents(context.Background(), contract.ImportRequest{StudentsPath: args[0]})
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatImportResult(result))
			return nil
		},
	}
}
