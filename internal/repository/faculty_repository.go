package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campuskit/timetable-api/internal/models"
)

// FacultyRepository provides read access to faculty members and their
// subject qualifications.
type FacultyRepository struct {
	db *sqlx.DB
}

// NewFacultyRepository creates a new faculty repository.
func NewFacultyRepository(db *sqlx.DB) *FacultyRepository {
	return &FacultyRepository{db: db}
}

type facultySubjectRow struct {
	FacultyID string `db:"faculty_id"`
	SubjectID string `db:"subject_id"`
}

// ListWithSubjects returns the faculty snapshot with SubjectIDs hydrated from
// the qualification join table. Snapshot order is creation order, which fixes
// the engine's first-qualified-match behaviour.
func (r *FacultyRepository) ListWithSubjects(ctx context.Context, departmentID string) ([]models.FacultyMember, error) {
	query := "SELECT id, full_name, email, department_id, created_at, updated_at FROM faculty WHERE 1=1"
	var args []interface{}
	if departmentID != "" {
		query += " AND department_id = $1"
		args = append(args, departmentID)
	}
	query += " ORDER BY created_at ASC"

	var faculty []models.FacultyMember
	if err := r.db.SelectContext(ctx, &faculty, query, args...); err != nil {
		return nil, fmt.Errorf("list faculty: %w", err)
	}
	if len(faculty) == 0 {
		return faculty, nil
	}

	var rows []facultySubjectRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT faculty_id, subject_id FROM faculty_subjects ORDER BY faculty_id, subject_id"); err != nil {
		return nil, fmt.Errorf("list faculty qualifications: %w", err)
	}

	bySubjects := make(map[string][]string, len(faculty))
	for _, row := range rows {
		bySubjects[row.FacultyID] = append(bySubjects[row.FacultyID], row.SubjectID)
	}
	for i := range faculty {
		faculty[i].SubjectIDs = bySubjects[faculty[i].ID]
	}
	return faculty, nil
}
