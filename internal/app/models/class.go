package models

// Class defines the class model based on the 'classes' table
type Class struct {
	ID   string `json:"class_id" db:"class_id"`
	Name string `json:"name" db:"name"`
}
