package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRelatedTracks_SymmetricClosure(t *testing.T) {
	r := NewRelatedTracks(map[string][]string{
		"Data Science": {"Mathematics", "Computer Science"},
	})

	assert.True(t, r.Related("Data Science", "Mathematics"))
	assert.True(t, r.Related("Mathematics", "Data Science"), "relation is symmetric regardless of config direction")
	assert.False(t, r.Related("Mathematics", "Computer Science"), "relatedness is not transitive")
	assert.False(t, r.Related("Data Science", "Data Science"), "a track is not related to itself")
}

func TestRelatedTracks_RelatedToSorted(t *testing.T) {
	r := NewRelatedTracks(map[string][]string{
		"History": {"Sociology", "English", "Philosophy"},
	})

	assert.Equal(t, []string{"English", "Philosophy", "Sociology"}, r.RelatedTo("History"))
	assert.Equal(t, []string{"History"}, r.RelatedTo("English"))
	assert.Empty(t, r.RelatedTo("Chemistry"))
}

func TestRelatedTracks_NilSafe(t *testing.T) {
	var r *RelatedTracks
	assert.False(t, r.Related("A", "B"))
	assert.Empty(t, r.RelatedTo("A"))
}

func TestNewRelatedTracks_DropsSelfPairs(t *testing.T) {
	r := NewRelatedTracks(map[string][]string{"Law": {"Law", "Economics"}})
	assert.False(t, r.Related("Law", "Law"))
	assert.True(t, r.Related("Law", "Economics"))
}
