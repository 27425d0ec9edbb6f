package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/app/services"
	"github.com/aydink/acadmin/internal/middleware"
)

// TeacherController handles teacher-facing endpoints
type TeacherController struct {
	teacherService services.TeacherService
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

// TaughtCourses lists the caller's courses with their rosters. The
// teacher id comes from the token, never from client input.
func (ctrl *TeacherController) TaughtCourses(c *gin.Context) {
	teacherID, _ := middleware.CallerIdentity(c)

	courses, err := ctrl.teacherService.TaughtCourses(c.Request.Context(), teacherID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(courses))
}

// UpdateScore records a grade for one enrollment
// @Summary Record a grade
// @Description Sets the score and marks the enrollment completed; non-admin callers must own the course
// @Tags teacher
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateScoreRequest true "Course, student and score"
// @Success 200 {object} dto.Response "Score updated"
// @Failure 400 {object} dto.Response "Score out of range"
// @Failure 403 {object} dto.Response "Course not owned by caller"
// @Failure 404 {object} dto.Response "Enrollment record not found"
// @Router /teacher/update_score [post]
func (ctrl *TeacherController) UpdateScore(c *gin.Context) {
	var req dto.UpdateScoreRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	callerID, callerRole := middleware.CallerIdentity(c)
	if err := ctrl.teacherService.UpdateScore(c.Request.Context(), callerID, callerRole, req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("score updated successfully"))
}

// CourseAnalysis returns aggregate grade statistics for one course
func (ctrl *TeacherController) CourseAnalysis(c *gin.Context) {
	courseID, ok := middleware.RequireQuery(c, "course_id")
	if !ok {
		return
	}

	callerID, callerRole := middleware.CallerIdentity(c)
	analysis, err := ctrl.teacherService.AnalyzeCourse(c.Request.Context(), callerID, callerRole, courseID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(analysis))
}
