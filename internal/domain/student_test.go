package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudent_ValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid six digits", "123456", false},
		{"empty", "", true},
		{"too short", "12345", true},
		{"too long", "1234567", true},
		{"letters", "12a456", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Student{ID: tt.id}
			err := s.ValidateID()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStudent_CompletedCopy(t *testing.T) {
	s := &Student{Completed: map[string]bool{"CS101": true}}

	cp := s.CompletedCopy()
	cp["CS201"] = true

	assert.Equal(t, map[string]bool{"CS101": true}, s.Completed)
	assert.Len(t, cp, 2)
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "CS101", NormalizeCode(" cs101 "))
	assert.Equal(t, "MA100", NormalizeCode("MA100"))
}
