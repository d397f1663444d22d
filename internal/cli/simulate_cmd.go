package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/curricle/internal/cli/formatter"
	"github.com/alexanderramin/curricle/internal/contract"
	"github.com/spf13/cobra"
)

func newSimulateCmd(app *App) *cobra.Command {
	var semesters string
	var creditCap int
	var commit bool

	cmd := &cobra.Command{
		Use:   "simulate <student-id> <module>...",
		Short: "Validate a proposed module sequence",
		Long: `Validate a proposed module sequence against the catalog and the
student's record. With --semesters the sequence is grouped (semicolon
between semesters, comma within) and each group's credit sum is checked
against --credit-cap. With --commit the newly completed modules are
written to the student record.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.SimulateRequest{
				StudentID: args[0],
				Sequence:  args[1:],
				CreditCap: creditCap,
				Commit:    commit,
			}
			if semesters != "" {
				if len(req.Sequence) > 0 {
					return fmt.Errorf("pass modules either as arguments or via --semesters, not both")
				}
				req.Semesters = parseSemesterGroups(semesters)
			}
			if len(req.Sequence) == 0 && req.Semesters == nil {
				return fmt.Errorf("no modules to simulate")
			}

			resp, err := app.Planning.Simulate(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatSimulation(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&semesters, "semesters", "", "Semester grouping, e.g. 'CS101,MA100;CS201'")
	cmd.Flags().IntVar(&creditCap, "credit-cap", 0, "Per-semester credit limit (0 disables the check)")
	cmd.Flags().BoolVar(&commit, "commit", false, "Write newly completed modules to the student record")

	return cmd
}

// parseSemesterGroups splits "A,B;C" into [[A B] [C]]. Empty groups and
// blank codes are dropped.
func parseSemesterGroups(s string) [][]string {
	var groups [][]string
	for _, rawGroup := range strings.Split(s, ";") {
		var group []string
		for _, code := range strings.Split(rawGroup, ",") {
			if code = strings.TrimSpace(code); code != "" {
				group = append(group, code)
			}
		}
		if len(group) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}
