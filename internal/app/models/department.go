package models

// Department defines the department model based on the 'departments' table
type Department struct {
	ID   string `json:"dept_id" db:"dept_id"`
	Name string `json:"name" db:"name"`
}
