package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campuskit/timetable-api/internal/models"
)

const timetableColumns = "id, subject_id, faculty_id, classroom_id, day_of_week, start_time, end_time, class_type, is_rescheduled, original_entry_id, created_by, created_at, updated_at"

// TimetableRepository persists timetable entries. Replace-all generation and
// incremental rescheduling both run inside a single transaction so concurrent
// invocations never observe a half-written week.
type TimetableRepository struct {
	db *sqlx.DB
}

// NewTimetableRepository creates a new timetable repository.
func NewTimetableRepository(db *sqlx.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

// List returns entries matching the filter ordered by day and start time.
func (r *TimetableRepository) List(ctx context.Context, filter models.TimetableFilter) ([]models.TimetableEntry, error) {
	query := "SELECT " + timetableColumns + " FROM timetable_entries WHERE 1=1"
	var conditions []string
	var args []interface{}

	if filter.FacultyID != "" {
		conditions = append(conditions, fmt.Sprintf("faculty_id = $%d", len(args)+1))
		args = append(args, filter.FacultyID)
	}
	if filter.DayOfWeek > 0 {
		conditions = append(conditions, fmt.Sprintf("day_of_week = $%d", len(args)+1))
		args = append(args, filter.DayOfWeek)
	}
	if len(conditions) > 0 {
		query += " AND " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY day_of_week ASC, start_time ASC"

	var entries []models.TimetableEntry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("list timetable entries: %w", err)
	}
	return entries, nil
}

// ListAll returns the full persisted week ordered by day and start time.
func (r *TimetableRepository) ListAll(ctx context.Context) ([]models.TimetableEntry, error) {
	return r.List(ctx, models.TimetableFilter{})
}

// ReplaceAll deletes the entire prior entry set and inserts the generated one
// atomically.
func (r *TimetableRepository) ReplaceAll(ctx context.Context, entries []models.TimetableEntry) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace timetable: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM timetable_entries"); err != nil {
		return fmt.Errorf("clear timetable entries: %w", err)
	}

	if err = insertEntries(ctx, tx, entries); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace timetable: %w", err)
	}
	return nil
}

// ApplyReschedule inserts the relocated entries and flags their originals as
// rescheduled in one transaction. Originals are retained for the audit trail.
func (r *TimetableRepository) ApplyReschedule(ctx context.Context, relocated []models.TimetableEntry) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin apply reschedule: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = insertEntries(ctx, tx, relocated); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, entry := range relocated {
		if entry.OriginalEntryID == nil {
			continue
		}
		if _, err = tx.ExecContext(ctx,
			"UPDATE timetable_entries SET is_rescheduled = TRUE, updated_at = $2 WHERE id = $1",
			*entry.OriginalEntryID, now,
		); err != nil {
			return fmt.Errorf("flag original entry %s: %w", *entry.OriginalEntryID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit apply reschedule: %w", err)
	}
	return nil
}

func insertEntries(ctx context.Context, exec sqlx.ExtContext, entries []models.TimetableEntry) error {
	now := time.Now().UTC()
	for i := range entries {
		payload := entries[i]
		if payload.ID == "" {
			payload.ID = uuid.NewString()
		}
		if payload.CreatedAt.IsZero() {
			payload.CreatedAt = now
		}
		payload.UpdatedAt = now

		if _, err := sqlx.NamedExecContext(ctx, exec,
			`INSERT INTO timetable_entries (id, subject_id, faculty_id, classroom_id, day_of_week, start_time, end_time, class_type, is_rescheduled, original_entry_id, created_by, created_at, updated_at)
			 VALUES (:id, :subject_id, :faculty_id, :classroom_id, :day_of_week, :start_time, :end_time, :class_type, :is_rescheduled, :original_entry_id, :created_by, :created_at, :updated_at)`,
			&payload,
		); err != nil {
			return fmt.Errorf("insert timetable entry: %w", err)
		}
		entries[i] = payload
	}
	return nil
}
