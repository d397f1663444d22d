package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCycleError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  CycleError
		want string
	}{
		{
			name: "with detected cycles",
			err:  CycleError{Cycles: [][]string{{"M1", "M2", "M3"}}},
			want: "prerequisite cycle: M1 -> M2 -> M3",
		},
		{
			name: "multiple cycles",
			err:  CycleError{Cycles: [][]string{{"A1", "A2"}, {"B1", "B2"}}},
			want: "prerequisite cycle: A1 -> A2; B1 -> B2",
		},
		{
			name: "unresolved nodes only",
			err:  CycleError{Unresolved: []string{"M1", "M2"}},
			want: "prerequisite cycle among M1, M2",
		},
		{
			name: "zero value",
			err:  CycleError{},
			want: "prerequisite cycle detected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
