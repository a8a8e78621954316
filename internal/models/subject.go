package models

import "time"

// Subject represents a course offered by a department.
type Subject struct {
	ID           string    `db:"id" json:"id"`
	Code         string    `db:"code" json:"code"`
	Name         string    `db:"name" json:"name"`
	WeeklyHours  float64   `db:"weekly_hours" json:"weekly_hours"`
	IsLab        bool      `db:"is_lab" json:"is_lab"`
	DepartmentID string    `db:"department_id" json:"department_id"`
	Semester     int       `db:"semester" json:"semester"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// SubjectFilter narrows the scheduling input scope. Department and semester are
// filters only; the generator itself never reads them.
type SubjectFilter struct {
	DepartmentID string
	Semester     int
}
