package dto

// EnrollRequest represents an enroll or drop request body
type EnrollRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	CourseID  string `json:"course_id" binding:"required"`
}

// UpdateProfileRequest represents a student profile update.
// At least one of the optional fields must be present; the controller
// enforces that because binding tags cannot express it.
type UpdateProfileRequest struct {
	StudentID   string `json:"student_id" binding:"required"`
	NewPassword string `json:"new_password"`
	NewEmail    string `json:"new_email"`
}

// AvailableCourse is a course the student may still enroll in
type AvailableCourse struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Credits    int    `json:"credits"`
	Capacity   int    `json:"capacity"`
	Remaining  int    `json:"remaining"`
}

// EnrolledCourse is a course the student is enrolled in, with its grade
type EnrolledCourse struct {
	CourseID    string   `json:"course_id"`
	CourseName  string   `json:"course_name"`
	Credits     int      `json:"credits"`
	Score       *float64 `json:"score"`
	TeacherName string   `json:"teacher_name"`
}
