package models

// Teacher defines the staff model based on the 'teachers' table.
// Admins and counselors live in the same table; RollType selects the
// authorization class.
type Teacher struct {
	ID       string `json:"teacher_id" db:"teacher_id"`
	Name     string `json:"name" db:"name"`
	Password string `json:"-" db:"password"`
	RollType Role   `json:"roll_type" db:"roll_type"`
}
