package dto

// CreateDepartmentRequest represents department creation data
type CreateDepartmentRequest struct {
	DeptID string `json:"dept_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
}

// UpdateDepartmentRequest renames an existing department
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateClassRequest represents class creation data
type CreateClassRequest struct {
	ClassID string `json:"class_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
}

// UpdateClassRequest renames an existing class
type UpdateClassRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	CourseID  string `json:"course_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Credits   int    `json:"credits" binding:"required,gt=0"`
	Capacity  int    `json:"capacity" binding:"required,gt=0"`
	TeacherID string `json:"teacher_id" binding:"required"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Name      string `json:"name" binding:"required"`
	Credits   int    `json:"credits" binding:"required,gt=0"`
	Capacity  int    `json:"capacity" binding:"required,gt=0"`
	TeacherID string `json:"teacher_id" binding:"required"`
}

// CreateStudentRequest represents student creation data
type CreateStudentRequest struct {
	StudentID string `json:"student_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Password  string `json:"password" binding:"required"`
	ClassID   string `json:"class_id" binding:"required"`
	Email     string `json:"email"`
	DeptID    string `json:"dept_id" binding:"required"`
}

// UpdateTeacherRoleRequest changes a staff member's roll_type.
// OperatorID is re-verified against the database, not trusted from the
// request's own token.
type UpdateTeacherRoleRequest struct {
	TeacherID  string `json:"teacher_id" binding:"required"`
	RollType   string `json:"roll_type" binding:"required"`
	OperatorID string `json:"operator_id" binding:"required"`
}

// EnrollmentReportRow is one course line in the enrollment report
type EnrollmentReportRow struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Enrolled   int    `json:"enrolled"`
	Capacity   int    `json:"capacity"`
	Remaining  int    `json:"remaining"`
}
