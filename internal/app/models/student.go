package models

// Student defines the student model based on the 'students' table
type Student struct {
	ID       string `json:"student_id" db:"student_id"`
	Name     string `json:"name" db:"name"`
	Password string `json:"-" db:"password"` // plaintext credential, excluded from JSON
	ClassID  string `json:"class_id" db:"class_id"`
	Email    string `json:"email" db:"email"`
	DeptID   string `json:"dept_id" db:"dept_id"`
}
