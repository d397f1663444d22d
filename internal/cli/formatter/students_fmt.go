package formatter

import (
	"fmt"

	"github.com/alexanderramin/curricle/internal/domain"
)

// FormatStudentList renders all students as a table.
func FormatStudentList(students []*domain.Student) string {
	if len(students) == 0 {
		return Dim("No students found.") + "\n"
	}

	headers := []string{"ID", "NAME", "COURSE", "YEAR", "COMPLETED"}
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			Bold(s.ID),
			StyleFg.Render(s.Name),
			TrackBadge(s.Course),
			fmt.Sprintf("Y%d S%d", s.Year, s.Semester),
			fmt.Sprintf("%d modules", len(s.Completed)),
		})
	}
	return RenderTable(headers, rows)
}
