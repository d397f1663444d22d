package importer

import (
	"fmt"

	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/domain"
)

// ValidateModuleRecords checks catalog records field by field before
// conversion, returning every defect found. Cross-record integrity
// (duplicate codes, dangling prerequisites) is the catalog builder's job.
func ValidateModuleRecords(records []ModuleRecord) []error {
	var errs []error
	for i, rec := range records {
		ref := recordRef("modules", i, rec.Code)

		if rec.Code == "" {
			errs = append(errs, &domain.MalformedRecordError{Record: ref, Field: "code", Reason: "required"})
		}
		if rec.Name == "" {
			errs = append(errs, &domain.MalformedRecordError{Record: ref, Field: "name", Reason: "required"})
		}
		if len(rec.Tracks) == 0 {
			errs = append(errs, &domain.MalformedRecordError{Record: ref, Field: "tracks", Reason: "at least one track required"})
		}
		for _, track := range rec.Tracks {
			if track == "" {
				errs = append(errs, &domain.MalformedRecordError{Record: ref, Field: "tracks", Reason: "empty track name"})
			}
		}
		for _, pre := range rec.Prerequisites {
			if domain.NormalizeCode(pre) == "" {
				errs = append(errs, &domain.MalformedRecordError{Record: ref, Field: "prerequisites", Reason: "empty prerequisite code"})
			}
		}
		if rec.Credits != nil && *rec.Credits < 0 {
			errs = append(errs, &domain.MalformedRecordError{
				Record: ref, Field: "credits",
				Reason: fmt.Sprintf("must be non-negative, got %d", *rec.Credits),
			})
		}
	}
	return errs
}

// ValidateStudentRecords checks student records against the already-built
// catalog: IDs must be 6 digits and unique, and every completed code must
// exist in the catalog (unknown codes are an error, never silently
// dropped).
func ValidateStudentRecords(records []StudentRecord, cat *catalog.Catalog) []error {
	var errs []error
	seenIDs := make(map[string]bool, len(records))

	for i, rec := range records {
		ref := recordRef("students", i, rec.StudentID)

		student := domain.Student{ID: rec.StudentID}
		if err := student.ValidateID(); err != nil {
			errs = append(errs, &domain.MalformedRecordError{Record: ref, Field: "student_id", Reason: err.Error()})
		} else if seenIDs[rec.StudentID] {
			errs = append(errs, &domain.MalformedRecordError{Record: ref, Field: "student_id", Reason: "duplicate"})
		} else {
			seenIDs[rec.StudentID] = true
		}

		if rec.Name == "" {
			errs = append(errs, &domain.MalformedRecordError{Record: ref, Field: "name", Reason: "required"})
		}
		if rec.Course == "" {
			errs = append(errs, &domain.MalformedRecordError{Record: ref, Field: "course", Reason: "required"})
		}

		seenCodes := make(map[string]bool, len(rec.Completed))
		for _, raw := range rec.Completed {
			code := domain.NormalizeCode(raw)
			if seenCodes[code] {
				errs = append(errs, &domain.MalformedRecordError{
					Record: ref, Field: "completed",
					Reason: fmt.Sprintf("duplicate module %s", code),
				})
				continue
			}
			seenCodes[code] = true
			if !cat.Has(code) {
				errs = append(errs, &domain.MalformedRecordError{
					Record: ref, Field: "completed",
					Reason: fmt.Sprintf("module %s not in catalog", code),
				})
			}
		}
	}
	return errs
}

func recordRef(kind string, index int, id string) string {
	if id != "" {
		return fmt.Sprintf("%s[%d] (%s)", kind, index, id)
	}
	return fmt.Sprintf("%s[%d]", kind, index)
}
