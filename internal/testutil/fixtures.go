package testutil

import (
	"testing"

	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/domain"
)

// Module options
type ModuleOption func(*domain.Module)

func WithTracks(tracks ...string) ModuleOption {
	return func(m *domain.Module) {
		m.Tracks = tracks
	}
}

func WithPrereqs(codes ...string) ModuleOption {
	return func(m *domain.Module) {
		m.Prerequisites = codes
	}
}

func WithCredits(c int) ModuleOption {
	return func(m *domain.Module) {
		m.Credits = c
	}
}

// NewTestModule builds a module on the "Computer Science" track with the
// default credit weight; options override.
func NewTestModule(code, name string, opts ...ModuleOption) domain.Module {
	m := domain.Module{
		Code:    code,
		Name:    name,
		Tracks:  []string{"Computer Science"},
		Credits: domain.DefaultCredits,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Student options
type StudentOption func(*domain.Student)

func WithCourse(course string) StudentOption {
	return func(s *domain.Student) {
		s.Course = course
	}
}

func WithCompleted(codes ...string) StudentOption {
	return func(s *domain.Student) {
		for _, code := range codes {
			s.Completed[domain.NormalizeCode(code)] = true
		}
	}
}

func WithStanding(year, semester int) StudentOption {
	return func(s *domain.Student) {
		s.Year = year
		s.Semester = semester
	}
}

func NewTestStudent(id string, opts ...StudentOption) *domain.Student {
	s := &domain.Student{
		ID:        id,
		Name:      "Test Student " + id,
		Course:    "Computer Science",
		Year:      1,
		Semester:  1,
		Completed: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MustBuildCatalog builds a catalog from modules, failing the test on any
// validation error.
func MustBuildCatalog(t *testing.T, modules ...domain.Module) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Build(modules)
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return cat
}
