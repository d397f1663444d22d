package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/curricle/internal/contract"
)

// FormatImportResult renders the outcome of a student import.
func FormatImportResult(result *contract.ImportResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %d students imported", StyleGreen.Render("OK:"), result.StudentsImported))
	if result.StudentsSkipped > 0 {
		b.WriteString(Dim(fmt.Sprintf(", %d skipped", result.StudentsSkipped)))
	}
	b.WriteString("\n")
	for _, w := range result.Warnings {
		b.WriteString(StyleYellow.Render(fmt.Sprintf("  WARNING: %s", w)) + "\n")
	}
	return b.String()
}
