// Package contract defines the request/response shapes exchanged between
// the CLI and the service layer. The engine's own types stay in planner;
// these carry the extra display context (names, tracks, student identity)
// the presentation layer needs.
package contract

// ModuleInfo is the display view of one catalog module.
type ModuleInfo struct {
	Code          string
	Name          string
	Tracks        []string
	Prerequisites []string
	Credits       int
}

// EligibilityResponse lists the modules a student can take now.
type EligibilityResponse struct {
	StudentID string
	Course    string
	Modules   []ModuleInfo
}

// UpcomingModule is one entry of the topologically ordered "what comes
// next" view. Order is 1-based.
type UpcomingModule struct {
	Order         int
	Code          string
	Name          string
	Prerequisites []string
	Credits       int
}

// UpcomingResponse is the student's remaining core modules in prerequisite
// order.
type UpcomingResponse struct {
	StudentID string
	Course    string
	Modules   []UpcomingModule
}

// ProgressReport summarizes a student's standing in their course.
type ProgressReport struct {
	StudentID        string
	Name             string
	Course           string
	Year             int
	Semester         int
	TotalModules     int
	CompletedModules int
	RemainingModules int
	TotalCredits     int
	EarnedCredits    int
	RemainingCredits int
	ProgressPct      float64
	Recommended      []UpcomingModule
}

// GraphNode is one node of the prerequisite-graph view, annotated for
// rendering (the engine emits plain data; coloring is the caller's job).
type GraphNode struct {
	Code          string
	Name          string
	Prerequisites []string
	Dependents    []string
	Completed     bool
	Eligible      bool
}

// GraphResponse is the dependency view of a student's course modules.
type GraphResponse struct {
	StudentID string
	Course    string
	Nodes     []GraphNode
	Cycles    [][]string
}
