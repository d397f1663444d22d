package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/curricle/internal/contract"
)

func TestFormatGraph_Forest(t *testing.T) {
	resp := &contract.GraphResponse{
		StudentID: "100001",
		Course:    "Computer Science",
		Nodes: []contract.GraphNode{
			{Code: "CS101", Name: "Intro", Dependents: []string{"CS201"}, Completed: true},
			{Code: "CS201", Name: "Data Structures", Prerequisites: []string{"CS101"}, Dependents: []string{"CS301"}, Eligible: true},
			{Code: "CS301", Name: "Algorithms", Prerequisites: []string{"CS201"}},
			{Code: "MA100", Name: "Calculus I"},
		},
	}

	out := stripANSI(FormatGraph(resp))
	assert.Contains(t, out, "CS101")
	assert.Contains(t, out, "└─ ")
	assert.Contains(t, out, "✔ ")
	assert.Contains(t, out, "● ")
	assert.Contains(t, out, "MA100")
	assert.NotContains(t, out, "CYCLE")
}

func TestFormatGraph_CycleWarning(t *testing.T) {
	resp := &contract.GraphResponse{
		StudentID: "100001",
		Course:    "Computer Science",
		Nodes: []contract.GraphNode{
			{Code: "M1", Name: "One", Prerequisites: []string{"M2"}, Dependents: []string{"M2"}},
			{Code: "M2", Name: "Two", Prerequisites: []string{"M1"}, Dependents: []string{"M1"}},
		},
		Cycles: [][]string{{"M1", "M2"}},
	}

	out := stripANSI(FormatGraph(resp))
	assert.Contains(t, out, "CYCLE: M1 → M2")
	// The flat fallback still lists both modules.
	assert.Contains(t, out, "M1")
	assert.Contains(t, out, "M2")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"CODE", "NAME"},
		[][]string{{"CS101", "Intro"}, {"MA100", "Calculus I"}},
	))
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "─")
	assert.Contains(t, out, "CS101")
	assert.Contains(t, out, "Calculus I")
}

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, stripANSI(RenderProgress(0, 10)), "0%")
	assert.Contains(t, stripANSI(RenderProgress(1, 10)), "100%")
	assert.Contains(t, stripANSI(RenderProgress(2.5, 10)), "100%", "clamped above 1")
	assert.Contains(t, stripANSI(RenderProgress(0.5, 10)), "50%")
}
