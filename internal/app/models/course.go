package models

// Course defines the course model based on the 'courses' table
type Course struct {
	ID        string `json:"course_id" db:"course_id"`
	Name      string `json:"name" db:"name"`
	Credits   int    `json:"credits" db:"credits"`
	Capacity  int    `json:"capacity" db:"capacity"`
	TeacherID string `json:"teacher_id" db:"teacher_id"`
}
