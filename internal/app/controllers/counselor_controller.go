package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/app/services"
	"github.com/aydink/acadmin/internal/middleware"
)

// CounselorController handles class-level analysis endpoints
type CounselorController struct {
	counselorService services.CounselorService
}

// NewCounselorController creates a new CounselorController
func NewCounselorController(counselorService services.CounselorService) *CounselorController {
	return &CounselorController{counselorService: counselorService}
}

// ClassGrades lists every graded record for a class
// @Summary List class grades
// @Description Returns all graded enrollment records for the given class
// @Tags counselor
// @Produce json
// @Security BearerAuth
// @Param class_id query string true "Class ID"
// @Success 200 {object} dto.Response "Grade records"
// @Failure 404 {object} dto.Response "Class not found"
// @Router /counselor/class_grades [get]
func (ctrl *CounselorController) ClassGrades(c *gin.Context) {
	classID, ok := middleware.RequireQuery(c, "class_id")
	if !ok {
		return
	}

	grades, err := ctrl.counselorService.ClassGrades(c.Request.Context(), classID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(grades))
}

// FailedStudents lists the failing grade records for a class
func (ctrl *CounselorController) FailedStudents(c *gin.Context) {
	classID, ok := middleware.RequireQuery(c, "class_id")
	if !ok {
		return
	}

	grades, err := ctrl.counselorService.FailedStudents(c.Request.Context(), classID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(grades))
}

// ClassAnalysis returns per-course aggregates for a class
func (ctrl *CounselorController) ClassAnalysis(c *gin.Context) {
	classID, ok := middleware.RequireQuery(c, "class_id")
	if !ok {
		return
	}

	analysis, err := ctrl.counselorService.ClassAnalysis(c.Request.Context(), classID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(analysis))
}

// AcademicReport combines class aggregates with a failing-record summary
func (ctrl *CounselorController) AcademicReport(c *gin.Context) {
	classID, ok := middleware.RequireQuery(c, "class_id")
	if !ok {
		return
	}

	report, err := ctrl.counselorService.AcademicReport(c.Request.Context(), classID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(report))
}

// AnalyzeStudent builds a per-student report with a suggestion
// @Summary Analyze one student
// @Description Returns the student's grades, averages and a study suggestion
// @Tags counselor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AnalyzeStudentRequest true "Student ID"
// @Success 200 {object} dto.Response "Student analysis"
// @Failure 404 {object} dto.Response "Student not found or no grade records"
// @Router /counselor/analyze_student [post]
func (ctrl *CounselorController) AnalyzeStudent(c *gin.Context) {
	var req dto.AnalyzeStudentRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	analysis, err := ctrl.counselorService.AnalyzeStudent(c.Request.Context(), req.StudentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(analysis))
}
