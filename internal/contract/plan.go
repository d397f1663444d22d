package contract

// PlanRequest asks for a full semester-by-semester plan of a student's
// remaining modules.
type PlanRequest struct {
	StudentID string
	CreditCap int
}

// NewPlanRequest returns a PlanRequest with the default credit cap.
func NewPlanRequest(studentID string) PlanRequest {
	return PlanRequest{StudentID: studentID, CreditCap: DefaultCreditCap}
}

// DefaultCreditCap is the per-semester credit target used when the caller
// does not supply one.
const DefaultCreditCap = 15

// PlannedModule is one placed module in a semester group.
type PlannedModule struct {
	Code    string
	Name    string
	Credits int
}

// SemesterPlan is one semester of a plan.
type SemesterPlan struct {
	Index   int
	Modules []PlannedModule
	Credits int
}

// PlanResponse is a complete semester plan.
type PlanResponse struct {
	StudentID    string
	Course       string
	CreditCap    int
	Semesters    []SemesterPlan
	TotalCredits int
}

// SimulateRequest asks to validate a proposed module sequence for a
// student. When Semesters is set it groups the walk and enables the
// per-semester credit check; Commit persists the resulting completions.
type SimulateRequest struct {
	StudentID string
	Sequence  []string
	Semesters [][]string
	CreditCap int
	Commit    bool
}

// SimulateResponse is the outcome of a valid simulation.
type SimulateResponse struct {
	StudentID      string
	Sequence       []PlannedModule
	Semesters      []SemesterPlan
	TotalCredits   int
	NewlyCompleted []string
	// CommitID is set when the request asked for the result to be
	// committed to the student record.
	CommitID string
}
