package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/controllers"
	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	teacherController *controllers.TeacherController,
	counselorController *controllers.CounselorController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"service": "acadmin", "status": "running"}))
	})

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewDataResponse(gin.H{"status": "ok"}))
	})

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Student routes (public, identified by student_id) ---
	student := api.Group("/student")
	{
		student.POST("/enroll", studentController.Enroll)
		student.POST("/drop", studentController.Drop)
		student.GET("/available_courses", studentController.AvailableCourses)
		student.GET("/enrolled_courses", studentController.EnrolledCourses)
		student.POST("/update_profile", studentController.UpdateProfile)
	}

	// --- Teacher routes (token required) ---
	teacher := api.Group("/teacher")
	teacher.Use(authMiddleware.JWTAuth())
	{
		teacherOnly := teacher.Group("")
		teacherOnly.Use(authMiddleware.RoleRequired(models.RoleTeacher, models.RoleAdmin))
		{
			teacherOnly.GET("/courses", teacherController.TaughtCourses)
			teacherOnly.POST("/update_score", teacherController.UpdateScore)
		}

		// Counselors may read course aggregates too
		analysis := teacher.Group("")
		analysis.Use(authMiddleware.RoleRequired(models.RoleTeacher, models.RoleCounselor, models.RoleAdmin))
		{
			analysis.GET("/course_analysis", teacherController.CourseAnalysis)
		}
	}

	// --- Counselor routes (token required) ---
	counselor := api.Group("/counselor")
	counselor.Use(authMiddleware.JWTAuth())
	counselor.Use(authMiddleware.RoleRequired(models.RoleCounselor, models.RoleAdmin))
	{
		counselor.GET("/class_grades", counselorController.ClassGrades)
		counselor.GET("/failed_students", counselorController.FailedStudents)
		counselor.GET("/class_analysis", counselorController.ClassAnalysis)
		counselor.GET("/academic_report", counselorController.AcademicReport)
		counselor.POST("/analyze_student", counselorController.AnalyzeStudent)
	}

	// --- Admin routes (token required) ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
	{
		departments := admin.Group("/departments")
		{
			departments.GET("", adminController.ListDepartments)
			departments.POST("", adminController.CreateDepartment)
			departments.PUT("/:id", adminController.UpdateDepartment)
			departments.DELETE("/:id", adminController.DeleteDepartment)
		}

		classes := admin.Group("/classes")
		{
			classes.GET("", adminController.ListClasses)
			classes.POST("", adminController.CreateClass)
			classes.PUT("/:id", adminController.UpdateClass)
			classes.DELETE("/:id", adminController.DeleteClass)
		}

		courses := admin.Group("/courses")
		{
			courses.GET("", adminController.ListCourses)
			courses.POST("", adminController.CreateCourse)
			courses.PUT("/:id", adminController.UpdateCourse)
			courses.DELETE("/:id", adminController.DeleteCourse)
		}

		students := admin.Group("/students")
		{
			students.GET("", adminController.ListStudents)
			students.POST("", adminController.CreateStudent)
		}

		admin.GET("/reports/enrollment", adminController.EnrollmentReport)
		admin.POST("/update_teacher_role", adminController.UpdateTeacherRole)
	}
}
