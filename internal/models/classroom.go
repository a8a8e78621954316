package models

import "time"

// Classroom represents a teaching room. Lab subjects may only be placed in lab
// rooms and vice versa.
type Classroom struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	IsLab        bool      `db:"is_lab" json:"is_lab"`
	Capacity     int       `db:"capacity" json:"capacity"`
	DepartmentID string    `db:"department_id" json:"department_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
