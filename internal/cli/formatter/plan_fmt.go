package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/curricle/internal/contract"
)

// FormatPlan renders a semester-by-semester plan.
func FormatPlan(resp *contract.PlanResponse) string {
	if len(resp.Semesters) == 0 {
		return StyleGreen.Render(fmt.Sprintf("Student %s has nothing left to plan.", resp.StudentID)) + "\n"
	}

	var b strings.Builder
	for i, sem := range resp.Semesters {
		if i > 0 {
			b.WriteString("\n")
		}
		capNote := Dim(fmt.Sprintf("%d / %d credits", sem.Credits, resp.CreditCap))
		b.WriteString(fmt.Sprintf("%s  %s\n", SemesterLabel(sem.Index), capNote))
		for _, m := range sem.Modules {
			b.WriteString(fmt.Sprintf("  %s %s  %s %s\n",
				StyleBlue.Render("·"),
				Bold(m.Code),
				StyleFg.Render(m.Name),
				Dim(fmt.Sprintf("(%s)", FormatCredits(m.Credits))),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s over %d semesters\n",
		Bold("Total:"),
		StyleFg.Render(FormatCredits(resp.TotalCredits)),
		len(resp.Semesters),
	))

	title := fmt.Sprintf("Study plan — %s (%s)", resp.StudentID, resp.Course)
	return RenderBox(title, b.String())
}
