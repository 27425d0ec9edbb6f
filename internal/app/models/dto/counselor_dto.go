package dto

// ClassGrade is one student/course score row for a class listing
type ClassGrade struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	CourseName  string  `json:"course_name"`
	Score       float64 `json:"score"`
	Credits     int     `json:"credits,omitempty"`
}

// ClassCourseAnalysis aggregates one course inside a class
type ClassCourseAnalysis struct {
	CourseName    string  `json:"course_name"`
	AvgScore      float64 `json:"avg_score"`
	FailedCount   int     `json:"failed_count"`
	TotalStudents int     `json:"total_students"`
}

// AcademicReport composes a class-level report
type AcademicReport struct {
	ClassName      string                `json:"class_name"`
	FailedSummary  string                `json:"failed_summary"`
	CourseAnalysis []ClassCourseAnalysis `json:"course_analysis"`
	FailedDetails  []ClassGrade          `json:"failed_details"`
}

// AnalyzeStudentRequest selects the student to analyze
type AnalyzeStudentRequest struct {
	StudentID string `json:"student_id" binding:"required"`
}

// StudentGrade is one scored course for a single student
type StudentGrade struct {
	CourseName string  `json:"course_name"`
	Score      float64 `json:"score"`
}

// StudentReport is the deterministic per-student grade summary
type StudentReport struct {
	StudentName   string  `json:"student_name"`
	TotalCourses  int     `json:"total_courses"`
	FailedCourses int     `json:"failed_courses"`
	AvgScore      float64 `json:"avg_score"`
	Suggestion    string  `json:"suggestion"`
}

// StudentAnalysis wraps a report with the analyzed student id
type StudentAnalysis struct {
	StudentID string        `json:"student_id"`
	Report    StudentReport `json:"report"`
}
