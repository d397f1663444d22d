package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/curricle/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newEligibleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "eligible <student-id>",
		Short: "List modules a student can take now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Advisor.Eligible(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatEligibility(resp))
			return nil
		},
	}
}

func newUpcomingCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming <student-id>",
		Short: "Show remaining modules in prerequisite order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Advisor.Upcoming(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatUpcoming(resp))
			return nil
		},
	}
}

func newSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the module catalog by code or name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			results, err := app.Advisor.Search(context.Background(), query)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSearchResults(query, results))
			return nil
		},
	}
}

func newGraphCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "graph <student-id>",
		Short: "Show the prerequisite graph for a student's course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Advisor.Graph(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatGraph(resp))
			return nil
		},
	}
}
