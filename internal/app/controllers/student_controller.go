package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/app/services"
	"github.com/aydink/acadmin/internal/middleware"
)

// StudentController handles student-facing endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Enroll enrolls a student in a course
// @Summary Enroll in a course
// @Description Enrolls the student; duplicate and capacity checks run inside the database procedure
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Student and course"
// @Success 200 {object} dto.Response "Enrolled"
// @Failure 400 {object} dto.Response "Already enrolled or course full"
// @Failure 500 {object} dto.Response "Internal server error"
// @Router /student/enroll [post]
func (ctrl *StudentController) Enroll(c *gin.Context) {
	var req dto.EnrollRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	if err := ctrl.studentService.Enroll(c.Request.Context(), req.StudentID, req.CourseID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("course enrolled successfully"))
}

// Drop removes a course enrollment
// @Summary Drop a course
// @Description Deletes the enrollment; rejected once a grade has been recorded
// @Tags student
// @Accept json
// @Produce json
// @Param request body dto.EnrollRequest true "Student and course"
// @Success 200 {object} dto.Response "Dropped"
// @Failure 403 {object} dto.Response "Grade already recorded"
// @Failure 404 {object} dto.Response "Enrollment record not found"
// @Router /student/drop [post]
func (ctrl *StudentController) Drop(c *gin.Context) {
	var req dto.EnrollRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	if err := ctrl.studentService.Drop(c.Request.Context(), req.StudentID, req.CourseID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("course dropped successfully"))
}

// AvailableCourses lists courses the student can still enroll in
func (ctrl *StudentController) AvailableCourses(c *gin.Context) {
	studentID, ok := middleware.RequireQuery(c, "student_id")
	if !ok {
		return
	}

	courses, err := ctrl.studentService.AvailableCourses(c.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(courses))
}

// EnrolledCourses lists the student's enrollments with grades
func (ctrl *StudentController) EnrolledCourses(c *gin.Context) {
	studentID, ok := middleware.RequireQuery(c, "student_id")
	if !ok {
		return
	}

	courses, err := ctrl.studentService.EnrolledCourses(c.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(courses))
}

// UpdateProfile updates the student's password and/or email
func (ctrl *StudentController) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	if err := ctrl.studentService.UpdateProfile(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("profile updated successfully"))
}
