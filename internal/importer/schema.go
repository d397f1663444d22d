// Package importer loads and validates the external data files the engine
// is fed from: the module catalog, student records, and the related-track
// configuration. File-level concerns (missing file, JSON syntax) surface as
// plain errors; record-level defects become MalformedRecordError values,
// collected rather than stopped at the first.
package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ModuleRecord is one catalog entry as it appears in modules.json.
type ModuleRecord struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	Tracks        []string `json:"tracks"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Credits       *int     `json:"credits,omitempty"` // nil means default
}

// StudentRecord is one student entry as it appears in students.json.
type StudentRecord struct {
	StudentID string   `json:"student_id"`
	Name      string   `json:"name"`
	Course    string   `json:"course"`
	Year      int      `json:"year"`
	Semester  int      `json:"semester"`
	Completed []string `json:"completed,omitempty"`
}

// LoadModuleRecords reads and parses a modules.json catalog file.
func LoadModuleRecords(path string) ([]ModuleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []ModuleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return records, nil
}

// LoadStudentRecords reads and parses a students.json file.
func LoadStudentRecords(path string) ([]StudentRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []StudentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing students file: %w", err)
	}
	return records, nil
}

// LoadRelatedTracks reads a related_tracks.json mapping of track name to
// related track names.
func LoadRelatedTracks(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pairs map[string][]string
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parsing related tracks file: %w", err)
	}
	return pairs, nil
}
