package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/curricle/internal/catalog"
	"github.com/alexanderramin/curricle/internal/contract"
	"github.com/alexanderramin/curricle/internal/db"
	"github.com/alexanderramin/curricle/internal/importer"
	"github.com/alexanderramin/curricle/internal/repository"
)

type importService struct {
	cat *catalog.Catalog
	uow db.UnitOfWork
}

func NewImportService(cat *catalog.Catalog, uow db.UnitOfWork) ImportService {
	return &importService{cat: cat, uow: uow}
}

// ImportStudents loads a students file, validates every record against
// the catalog, and inserts the valid ones in a single transaction.
// Validation defects abort the whole import; a student whose ID already
// exists in the store is skipped with a warning rather than failing the
// batch.
func (s *importService) ImportStudents(ctx context.Context, req contract.ImportRequest) (*contract.ImportResult, error) {
	records, err := importer.LoadStudentRecords(req.StudentsPath)
	if err != nil {
		return nil, fmt.Errorf("loading students file: %w", err)
	}

	if errs := importer.ValidateStudentRecords(records, s.cat); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	result := &contract.ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		students := repository.NewSQLiteStudentRepo(tx)
		for _, rec := range records {
			_, err := students.GetByID(ctx, rec.StudentID)
			if err == nil {
				result.StudentsSkipped++
				result.Warnings = append(result.Warnings, fmt.Sprintf("student %s already exists, skipped", rec.StudentID))
				continue
			}
			var notFound *repository.NotFoundError
			if !errors.As(err, &notFound) {
				return err
			}
			if err := students.Create(ctx, importer.ToStudent(rec)); err != nil {
				return fmt.Errorf("creating student %s: %w", rec.StudentID, err)
			}
			result.StudentsImported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
