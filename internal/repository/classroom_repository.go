package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campuskit/timetable-api/internal/models"
)

// ClassroomRepository provides read access to classrooms.
type ClassroomRepository struct {
	db *sqlx.DB
}

// NewClassroomRepository creates a new classroom repository.
func NewClassroomRepository(db *sqlx.DB) *ClassroomRepository {
	return &ClassroomRepository{db: db}
}

// List returns classrooms, optionally scoped to a department, in creation
// order so the engine's first-free-room choice is stable.
func (r *ClassroomRepository) List(ctx context.Context, departmentID string) ([]models.Classroom, error) {
	query := "SELECT id, name, is_lab, capacity, department_id, created_at, updated_at FROM classrooms WHERE 1=1"
	var args []interface{}
	if departmentID != "" {
		query += " AND department_id = $1"
		args = append(args, departmentID)
	}
	query += " ORDER BY created_at ASC"

	var classrooms []models.Classroom
	if err := r.db.SelectContext(ctx, &classrooms, query, args...); err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	return classrooms, nil
}
