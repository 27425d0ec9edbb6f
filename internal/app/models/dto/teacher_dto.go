package dto

// UpdateScoreRequest represents a grade entry for one enrollment.
// Score arrives as a string in some clients, so it is parsed and
// range-checked in the service rather than bound numerically.
type UpdateScoreRequest struct {
	CourseID  string      `json:"course_id" binding:"required"`
	StudentID string      `json:"student_id" binding:"required"`
	Score     interface{} `json:"score" binding:"required"`
}

// CourseStudent is one enrolled student on a taught course roster
type CourseStudent struct {
	StudentID   string   `json:"student_id"`
	StudentName string   `json:"student_name"`
	Score       *float64 `json:"score"`
	Status      string   `json:"status"`
}

// TaughtCourse is a course with its enrollment roster
type TaughtCourse struct {
	CourseID   string          `json:"course_id"`
	CourseName string          `json:"course_name"`
	Credits    int             `json:"credits"`
	Capacity   int             `json:"capacity"`
	Students   []CourseStudent `json:"students"`
}

// CourseAnalysis aggregates scored enrollments for one course.
// Every field defaults to zero when no scored rows exist.
type CourseAnalysis struct {
	TotalStudents int     `json:"total_students"`
	AvgScore      float64 `json:"avg_score"`
	PassRate      float64 `json:"pass_rate"`
	MaxScore      float64 `json:"max_score"`
	MinScore      float64 `json:"min_score"`
}
