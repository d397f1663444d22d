package domain

import (
	"fmt"
	"regexp"
)

var studentIDPattern = regexp.MustCompile(`^[0-9]{6}$`)

// Student is a planning subject. Completed holds normalized module codes.
// The engine never mutates a Student; simulations return proposed updates
// that the caller commits explicitly through the repository.
type Student struct {
	ID        string
	Name      string
	Course    string
	Year      int
	Semester  int
	Completed map[string]bool
}

// ValidateID checks that ID is a 6-digit student number.
func (s *Student) ValidateID() error {
	if s.ID == "" {
		return fmt.Errorf("student ID is required")
	}
	if !studentIDPattern.MatchString(s.ID) {
		return fmt.Errorf("student ID %q must be exactly 6 digits", s.ID)
	}
	return nil
}

// CompletedCopy returns an independent copy of the completed set, so callers
// can extend it (e.g. during simulation) without touching the student record.
func (s *Student) CompletedCopy() map[string]bool {
	out := make(map[string]bool, len(s.Completed))
	for code := range s.Completed {
		out[code] = true
	}
	return out
}
