package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/curricle/internal/db"
	"github.com/alexanderramin/curricle/internal/domain"
)

// SQLiteStudentRepo implements StudentRepo over SQLite. It accepts a DBTX
// so the same implementation works inside and outside transactions.
type SQLiteStudentRepo struct {
	db db.DBTX
}

// NewSQLiteStudentRepo creates a new SQLiteStudentRepo.
func NewSQLiteStudentRepo(conn db.DBTX) *SQLiteStudentRepo {
	return &SQLiteStudentRepo{db: conn}
}

func (r *SQLiteStudentRepo) Create(ctx context.Context, s *domain.Student) error {
	query := `INSERT INTO students (id, name, course, year, semester) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Course, s.Year, s.Semester); err != nil {
		return fmt.Errorf("inserting student: %w", err)
	}
	for code := range s.Completed {
		if err := r.insertCompletion(ctx, s.ID, code, ""); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteStudentRepo) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	query := `SELECT id, name, course, year, semester FROM students WHERE id = ?`
	var s domain.Student
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Course, &s.Year, &s.Semester)
	if err == sql.ErrNoRows {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("loading student: %w", err)
	}

	completed, err := r.loadCompleted(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Completed = completed
	return &s, nil
}

func (r *SQLiteStudentRepo) List(ctx context.Context) ([]*domain.Student, error) {
	query := `SELECT id, name, course, year, semester FROM students ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing students: %w", err)
	}
	defer rows.Close()

	var students []*domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Course, &s.Year, &s.Semester); err != nil {
			return nil, fmt.Errorf("scanning student: %w", err)
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating students: %w", err)
	}

	for _, s := range students {
		completed, err := r.loadCompleted(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Completed = completed
	}
	return students, nil
}

func (r *SQLiteStudentRepo) CommitCompletions(ctx context.Context, studentID, commitID, source string, codes []string) error {
	query := `INSERT INTO commits (id, student_id, source) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, commitID, studentID, source); err != nil {
		return fmt.Errorf("inserting commit: %w", err)
	}
	for _, code := range codes {
		if err := r.insertCompletion(ctx, studentID, domain.NormalizeCode(code), commitID); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteStudentRepo) insertCompletion(ctx context.Context, studentID, code, commitID string) error {
	query := `INSERT INTO completed_modules (student_id, module_code, commit_id) VALUES (?, ?, ?)`
	var commit any
	if commitID != "" {
		commit = commitID
	}
	if _, err := r.db.ExecContext(ctx, query, studentID, code, commit); err != nil {
		return fmt.Errorf("inserting completion %s for %s: %w", code, studentID, err)
	}
	return nil
}

func (r *SQLiteStudentRepo) loadCompleted(ctx context.Context, studentID string) (map[string]bool, error) {
	query := `SELECT module_code FROM completed_modules WHERE student_id = ?`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("loading completions: %w", err)
	}
	defer rows.Close()

	completed := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scanning completion: %w", err)
		}
		completed[code] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating completions: %w", err)
	}
	return completed, nil
}
