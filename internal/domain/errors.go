package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Catalog and request errors. Catalog-construction errors are fatal to
// building a Catalog; per-request errors (simulation, planning) are scoped
// to the request and never touch shared state.

// DuplicateModuleError reports two catalog records sharing a code.
type DuplicateModuleError struct {
	Code string
}

func (e *DuplicateModuleError) Error() string {
	return fmt.Sprintf("duplicate module code %q in catalog", e.Code)
}

// DanglingPrerequisiteError reports prerequisite codes that never appear as
// modules. All offenders are collected so the caller sees the full defect.
type DanglingPrerequisiteError struct {
	// Missing maps each dangling prerequisite code to the modules that
	// reference it.
	Missing map[string][]string
}

func (e *DanglingPrerequisiteError) Error() string {
	codes := make([]string, 0, len(e.Missing))
	for code := range e.Missing {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = fmt.Sprintf("%s (required by %s)", code, strings.Join(e.Missing[code], ", "))
	}
	return "dangling prerequisites: " + strings.Join(parts, "; ")
}

// MalformedRecordError reports a bad external input record: a missing or
// invalid field in a module/student record, or a student completion code
// that does not exist in the catalog.
type MalformedRecordError struct {
	Record string
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %s: field %s: %s", e.Record, e.Field, e.Reason)
}

// CycleError reports that the prerequisite graph (or a restricted subset of
// it) contains a cycle. Cycles holds the detected loops when cycle search
// ran; Unresolved holds the nodes left with nonzero in-degree when Kahn's
// algorithm stalled.
type CycleError struct {
	Cycles     [][]string
	Unresolved []string
}

func (e *CycleError) Error() string {
	if len(e.Cycles) > 0 {
		parts := make([]string, len(e.Cycles))
		for i, cyc := range e.Cycles {
			parts[i] = strings.Join(cyc, " -> ")
		}
		return "prerequisite cycle: " + strings.Join(parts, "; ")
	}
	if len(e.Unresolved) > 0 {
		return fmt.Sprintf("prerequisite cycle among %s", strings.Join(e.Unresolved, ", "))
	}
	return "prerequisite cycle detected"
}

// UnknownModuleError reports a request referencing a code absent from the
// catalog.
type UnknownModuleError struct {
	Code string
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("unknown module %q", e.Code)
}

// PrerequisiteUnmetError reports a simulation-time ordering violation: at
// the point Module appears in the sequence, Missing prerequisites are not
// in the running completed set.
type PrerequisiteUnmetError struct {
	Module  string
	Missing []string
}

func (e *PrerequisiteUnmetError) Error() string {
	return fmt.Sprintf("cannot take %s: missing prerequisites %s", e.Module, strings.Join(e.Missing, ", "))
}

// CreditOverflowError reports a semester group whose credit sum exceeds the
// cap. SemesterIndex is 1-based.
type CreditOverflowError struct {
	SemesterIndex int
	Total         int
	Cap           int
}

func (e *CreditOverflowError) Error() string {
	return fmt.Sprintf("semester %d: %d credits exceeds cap %d", e.SemesterIndex, e.Total, e.Cap)
}

// UnplaceableModuleError reports a module whose single-module credit weight
// exceeds the per-semester cap, so no plan can ever place it.
type UnplaceableModuleError struct {
	Code    string
	Credits int
	Cap     int
}

func (e *UnplaceableModuleError) Error() string {
	return fmt.Sprintf("module %s (%d credits) can never fit under cap %d", e.Code, e.Credits, e.Cap)
}
