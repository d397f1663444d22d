package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/curricle/internal/contract"
)

const progressBarWidth = 20

// FormatProgress renders a student's standing as a dashboard.
func FormatProgress(report *contract.ProgressReport) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(report.Name), Dim(report.StudentID)))
	b.WriteString(fmt.Sprintf("%s  %s\n\n", TrackBadge(report.Course), Dim(fmt.Sprintf("Year %d, Semester %d", report.Year, report.Semester))))

	b.WriteString(RenderProgress(report.ProgressPct/100, progressBarWidth))
	b.WriteString("\n\n")

	headers := []string{"", "MODULES", "CREDITS"}
	rows := [][]string{
		{StyleGreen.Render("Completed"), fmt.Sprintf("%d", report.CompletedModules), fmt.Sprintf("%d", report.EarnedCredits)},
		{StyleYellow.Render("Remaining"), fmt.Sprintf("%d", report.RemainingModules), fmt.Sprintf("%d", report.RemainingCredits)},
		{Bold("Total"), fmt.Sprintf("%d", report.TotalModules), fmt.Sprintf("%d", report.TotalCredits)},
	}
	b.WriteString(RenderTable(headers, rows))

	if len(report.Recommended) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Recommended next"))
		b.WriteString("\n")
		for _, m := range report.Recommended {
			b.WriteString(fmt.Sprintf("  %s %s  %s %s\n",
				StyleBlue.Render("●"),
				Bold(m.Code),
				StyleFg.Render(m.Name),
				Dim(fmt.Sprintf("(%s)", FormatCredits(m.Credits))),
			))
		}
	}

	return RenderBox("Progress", b.String())
}
