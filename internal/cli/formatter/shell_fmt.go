package formatter

import "strings"

// FormatShellWelcome renders the shell banner.
func FormatShellWelcome(studentID, name string) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("curricle") + Dim(" — module planner") + "\n")
	if name != "" {
		b.WriteString("Signed in as " + Bold(name) + " " + Dim(studentID) + "\n")
	}
	b.WriteString(Dim("↑/↓ to choose, enter to run, q to quit") + "\n")
	return b.String()
}
