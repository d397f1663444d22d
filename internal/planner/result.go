package planner

// SemesterGroup is one semester's worth of modules in a plan or a grouped
// simulation. Index is 1-based.
type SemesterGroup struct {
	Index   int
	Modules []string
	Credits int
}

// PlanRequest is the ephemeral input to Simulate: an ordered candidate
// sequence (or a semester grouping of one) plus constraints. It is never
// persisted.
type PlanRequest struct {
	// StartingCompleted seeds the running completed set. The map is read
	// only; Simulate works on a copy.
	StartingCompleted map[string]bool

	// Sequence is the proposed order of module codes. Ignored when
	// Semesters is set.
	Sequence []string

	// Semesters optionally groups the sequence; the flattened groups form
	// the walk order and each group's credit sum is checked against
	// CreditCap.
	Semesters [][]string

	// CreditCap is the per-semester credit limit. Zero disables the check;
	// it only applies when Semesters is set.
	CreditCap int
}

// PlanResult is the successful outcome of a simulation: the validated
// sequence, its grouping (when requested), credit totals, and the resulting
// completed set for chaining further simulations. It is advisory until the
// caller commits it to the student record.
type PlanResult struct {
	Sequence     []string
	Semesters    []SemesterGroup
	TotalCredits int
	Completed    map[string]bool
}
