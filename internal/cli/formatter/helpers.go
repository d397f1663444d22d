package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FormatCredits renders a credit count like "6 cr".
func FormatCredits(credits int) string {
	return fmt.Sprintf("%d cr", credits)
}

// JoinOrDash joins codes with commas, or returns a dimmed dash for none.
func JoinOrDash(codes []string) string {
	if len(codes) == 0 {
		return StyleDim.Render("--")
	}
	return strings.Join(codes, ", ")
}

// TrackBadge returns a capitalized, purple-styled track label.
func TrackBadge(track string) string {
	if track == "" {
		return StyleDim.Render("--")
	}
	return StylePurple.Render(track)
}

// SemesterLabel renders a 1-based semester heading like "Semester 2".
func SemesterLabel(index int) string {
	return StyleBold.Render(fmt.Sprintf("Semester %d", index))
}
