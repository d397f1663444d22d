package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/curricle/internal/contract"
)

// FormatSearchResults renders catalog search hits.
func FormatSearchResults(query string, results []contract.ModuleInfo) string {
	if len(results) == 0 {
		return Dim(fmt.Sprintf("No modules matching %q.", query)) + "\n"
	}

	headers := []string{"CODE", "NAME", "TRACKS", "CREDITS", "PREREQUISITES"}
	rows := make([][]string, 0, len(results))
	for _, m := range results {
		rows = append(rows, []string{
			Bold(m.Code),
			StyleFg.Render(m.Name),
			StylePurple.Render(strings.Join(m.Tracks, ", ")),
			FormatCredits(m.Credits),
			JoinOrDash(m.Prerequisites),
		})
	}
	return RenderTable(headers, rows)
}
