package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/app/services"
	"github.com/aydink/acadmin/internal/middleware"
)

// AdminController handles reference-data management and role administration
type AdminController struct {
	adminService services.AdminService
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService) *AdminController {
	return &AdminController{adminService: adminService}
}

// ListDepartments returns all departments
func (ctrl *AdminController) ListDepartments(c *gin.Context) {
	departments, err := ctrl.adminService.ListDepartments(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(departments))
}

// CreateDepartment adds a new department
// @Summary Create department
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department data"
// @Success 200 {object} dto.Response "Department created"
// @Failure 400 {object} dto.Response "Duplicate department ID"
// @Router /admin/departments [post]
func (ctrl *AdminController) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	department := &models.Department{ID: req.DeptID, Name: req.Name}
	if err := ctrl.adminService.CreateDepartment(c.Request.Context(), department); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("department created successfully"))
}

// UpdateDepartment renames a department
func (ctrl *AdminController) UpdateDepartment(c *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	if err := ctrl.adminService.UpdateDepartment(c.Request.Context(), c.Param("id"), req.Name); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("department updated successfully"))
}

// DeleteDepartment removes a department
// @Summary Delete department
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} dto.Response "Department deleted"
// @Failure 403 {object} dto.Response "Department still referenced"
// @Failure 404 {object} dto.Response "Department not found"
// @Router /admin/departments/{id} [delete]
func (ctrl *AdminController) DeleteDepartment(c *gin.Context) {
	if err := ctrl.adminService.DeleteDepartment(c.Request.Context(), c.Param("id")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("department deleted successfully"))
}

// ListClasses returns all classes
func (ctrl *AdminController) ListClasses(c *gin.Context) {
	classes, err := ctrl.adminService.ListClasses(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(classes))
}

// CreateClass adds a new class
func (ctrl *AdminController) CreateClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	class := &models.Class{ID: req.ClassID, Name: req.Name}
	if err := ctrl.adminService.CreateClass(c.Request.Context(), class); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("class created successfully"))
}

// UpdateClass renames a class
func (ctrl *AdminController) UpdateClass(c *gin.Context) {
	var req dto.UpdateClassRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	if err := ctrl.adminService.UpdateClass(c.Request.Context(), c.Param("id"), req.Name); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("class updated successfully"))
}

// DeleteClass removes a class
func (ctrl *AdminController) DeleteClass(c *gin.Context) {
	if err := ctrl.adminService.DeleteClass(c.Request.Context(), c.Param("id")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("class deleted successfully"))
}

// ListCourses returns all courses
func (ctrl *AdminController) ListCourses(c *gin.Context) {
	courses, err := ctrl.adminService.ListCourses(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(courses))
}

// CreateCourse adds a new course
func (ctrl *AdminController) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	course := &models.Course{
		ID:        req.CourseID,
		Name:      req.Name,
		Credits:   req.Credits,
		Capacity:  req.Capacity,
		TeacherID: req.TeacherID,
	}
	if err := ctrl.adminService.CreateCourse(c.Request.Context(), course); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("course created successfully"))
}

// UpdateCourse replaces a course's mutable fields
func (ctrl *AdminController) UpdateCourse(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	course := &models.Course{
		ID:        c.Param("id"),
		Name:      req.Name,
		Credits:   req.Credits,
		Capacity:  req.Capacity,
		TeacherID: req.TeacherID,
	}
	if err := ctrl.adminService.UpdateCourse(c.Request.Context(), course); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("course updated successfully"))
}

// DeleteCourse removes a course
func (ctrl *AdminController) DeleteCourse(c *gin.Context) {
	if err := ctrl.adminService.DeleteCourse(c.Request.Context(), c.Param("id")); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("course deleted successfully"))
}

// ListStudents returns all student records
func (ctrl *AdminController) ListStudents(c *gin.Context) {
	students, err := ctrl.adminService.ListStudents(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(students))
}

// CreateStudent registers a new student account
func (ctrl *AdminController) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	student := &models.Student{
		ID:       req.StudentID,
		Name:     req.Name,
		Password: req.Password,
		ClassID:  req.ClassID,
		Email:    req.Email,
		DeptID:   req.DeptID,
	}
	if err := ctrl.adminService.CreateStudent(c.Request.Context(), student); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("student created successfully"))
}

// EnrollmentReport summarizes enrollment counts per course
func (ctrl *AdminController) EnrollmentReport(c *gin.Context) {
	report, err := ctrl.adminService.EnrollmentReport(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(report))
}

// UpdateTeacherRole changes a staff member's roll_type
// @Summary Update staff role
// @Description Changes a teacher's roll_type; the operator must hold the admin role in the database
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateTeacherRoleRequest true "Target teacher, new role and operator"
// @Success 200 {object} dto.Response "Role updated"
// @Failure 400 {object} dto.Response "Unknown roll_type"
// @Failure 403 {object} dto.Response "Operator is not an administrator"
// @Failure 404 {object} dto.Response "Teacher not found"
// @Router /admin/update_teacher_role [post]
func (ctrl *AdminController) UpdateTeacherRole(c *gin.Context) {
	var req dto.UpdateTeacherRoleRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	if err := ctrl.adminService.UpdateTeacherRole(c.Request.Context(), req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("role updated successfully"))
}
