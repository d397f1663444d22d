package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/curricle/internal/contract"
)

// FormatSimulation renders a validated sequence walk.
func FormatSimulation(resp *contract.SimulateResponse) string {
	var b strings.Builder

	if len(resp.Semesters) > 0 {
		for i, sem := range resp.Semesters {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(fmt.Sprintf("%s  %s\n", SemesterLabel(sem.Index), Dim(fmt.Sprintf("%d credits", sem.Credits))))
			for _, m := range sem.Modules {
				b.WriteString(fmt.Sprintf("  %s %s  %s\n", StyleGreen.Render("✔"), Bold(m.Code), StyleFg.Render(m.Name)))
			}
		}
	} else {
		for i, m := range resp.Sequence {
			b.WriteString(fmt.Sprintf("%s %s %s  %s\n",
				Dim(fmt.Sprintf("%2d.", i+1)),
				StyleGreen.Render("✔"),
				Bold(m.Code),
				StyleFg.Render(m.Name),
			))
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s valid sequence, %s\n",
		StyleGreen.Render("PASS:"),
		StyleFg.Render(FormatCredits(resp.TotalCredits)),
	))

	if len(resp.NewlyCompleted) > 0 {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Newly completed:"), strings.Join(resp.NewlyCompleted, ", ")))
	}
	if resp.CommitID != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleYellow.Render("Committed:"), Dim(resp.CommitID)))
	}

	return RenderBox(fmt.Sprintf("Simulation — %s", resp.StudentID), b.String())
}
