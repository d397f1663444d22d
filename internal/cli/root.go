package cli

import (
	"github.com/alexanderramin/curricle/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Students service.StudentService
	Advisor  service.AdvisorService
	Planning service.PlanningService
	Import   service.ImportService

	// IsInteractive reports whether stdin is a terminal; the shell refuses
	// to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "curricle" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "curricle",
		Short: "Module dependency and study planner",
	}

	root.AddCommand(
		newStudentsCmd(app),
		newProgressCmd(app),
		newEligibleCmd(app),
		newUpcomingCmd(app),
		newPlanCmd(app),
		newSimulateCmd(app),
		newSearchCmd(app),
		newGraphCmd(app),
		newImportCmd(app),
		newShellCmd(app),
	)

	return root
}
