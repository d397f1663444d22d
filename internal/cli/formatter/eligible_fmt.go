package formatter

import (
	"fmt"

	"github.com/alexanderramin/curricle/internal/contract"
)

// FormatEligibility renders the modules a student can enrol in now.
func FormatEligibility(resp *contract.EligibilityResponse) string {
	if len(resp.Modules) == 0 {
		return Dim(fmt.Sprintf("No eligible modules for student %s right now.", resp.StudentID)) + "\n"
	}

	headers := []string{"CODE", "NAME", "CREDITS", "PREREQUISITES"}
	rows := make([][]string, 0, len(resp.Modules))
	for _, m := range resp.Modules {
		rows = append(rows, []string{
			Bold(m.Code),
			StyleFg.Render(m.Name),
			FormatCredits(m.Credits),
			JoinOrDash(m.Prerequisites),
		})
	}

	title := fmt.Sprintf("Eligible now — %s (%s)", resp.StudentID, resp.Course)
	return RenderBox(title, RenderTable(headers, rows))
}
