package formatter

import (
	"fmt"

	"github.com/alexanderramin/curricle/internal/contract"
)

// FormatUpcoming renders the remaining modules in prerequisite order.
func FormatUpcoming(resp *contract.UpcomingResponse) string {
	if len(resp.Modules) == 0 {
		return StyleGreen.Render(fmt.Sprintf("Student %s has completed every module in scope.", resp.StudentID)) + "\n"
	}

	headers := []string{"#", "CODE", "NAME", "CREDITS", "AFTER"}
	rows := make([][]string, 0, len(resp.Modules))
	for _, m := range resp.Modules {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", m.Order)),
			Bold(m.Code),
			StyleFg.Render(m.Name),
			FormatCredits(m.Credits),
			JoinOrDash(m.Prerequisites),
		})
	}

	title := fmt.Sprintf("Upcoming — %s (%s)", resp.StudentID, resp.Course)
	return RenderBox(title, RenderTable(headers, rows))
}
