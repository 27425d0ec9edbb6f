package models

// Role defines the actor role type
type Role string

const (
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RoleAdmin     Role = "admin"
	RoleCounselor Role = "counselor"
)

// ValidLoginRole reports whether the role is accepted by the login endpoint.
func ValidLoginRole(r Role) bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin, RoleCounselor:
		return true
	}
	return false
}

// ValidStaffRole reports whether the role may be stored in teachers.roll_type.
func ValidStaffRole(r Role) bool {
	switch r {
	case RoleTeacher, RoleAdmin, RoleCounselor:
		return true
	}
	return false
}

// EnrollStatus represents the lifecycle state of an enrollment record
type EnrollStatus string

const (
	EnrollStatusEnrolled  EnrollStatus = "enrolled"
	EnrollStatusCompleted EnrollStatus = "completed"
)

// Status tokens returned by the sp_student_enroll database procedure
const (
	EnrollResultSuccess         = "Success"
	EnrollResultAlreadyEnrolled = "Already Enrolled"
	EnrollResultCourseFull      = "Course Full"
)

// PassingScore is the threshold below which a score counts as failed.
const PassingScore = 60
