package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/curricle/internal/cli/formatter"
	"github.com/alexanderramin/curricle/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var creditCap int

	cmd := &cobra.Command{
		Use:   "plan <student-id>",
		Short: "Plan remaining modules into semesters under a credit cap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewPlanRequest(args[0])
			if cmd.Flags().Changed("credit-cap") {
				req.CreditCap = creditCap
			}

			resp, err := app.Planning.Plan(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlan(resp))
			return nil
		},
	}

	cmd.Flags().IntVar(&creditCap, "credit-cap", contract.DefaultCreditCap, "Maximum credits per semester")

	return cmd
}
